package sqlite

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/infinitechange/coaching-site/internal/core/domain"
	"github.com/infinitechange/coaching-site/internal/core/ports"
)

type serviceRecord struct {
	ID          string `gorm:"primaryKey"`
	Kind        string `gorm:"index"`
	Title       string
	Description string
	Duration    string
	Level       string
	Icon        string
	Category    string
	Features    []string `gorm:"serializer:json"`
	BookingLink string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (serviceRecord) TableName() string { return "services" }

// CatalogRepository persists all four service catalogues in a single table,
// discriminated by the kind column.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

var _ ports.CatalogRepository = (*CatalogRepository)(nil)

func (r *CatalogRepository) List(ctx context.Context, kind domain.ServiceKind, newestFirst bool) ([]domain.Service, error) {
	order := "created_at ASC"
	if newestFirst {
		order = "created_at DESC"
	}

	var recs []serviceRecord
	err := r.db.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Order(order).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	services := make([]domain.Service, 0, len(recs))
	for i := range recs {
		services = append(services, *recs[i].toDomain())
	}
	return services, nil
}

func (r *CatalogRepository) Get(ctx context.Context, kind domain.ServiceKind, id string) (*domain.Service, error) {
	var rec serviceRecord
	err := r.db.WithContext(ctx).
		Where("id = ? AND kind = ?", id, string(kind)).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *CatalogRepository) Create(ctx context.Context, svc *domain.Service) error {
	if svc.ID == "" {
		svc.ID = uuid.NewString()
	}
	rec := toServiceRecord(svc)
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return err
	}
	svc.CreatedAt = rec.CreatedAt
	svc.UpdatedAt = rec.UpdatedAt
	return nil
}

func (r *CatalogRepository) Update(ctx context.Context, svc *domain.Service) error {
	rec := toServiceRecord(svc)
	res := r.db.WithContext(ctx).
		Where("id = ? AND kind = ?", rec.ID, rec.Kind).
		Select("title", "description", "duration", "level", "icon", "category", "features", "booking_link", "updated_at").
		Updates(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CatalogRepository) Delete(ctx context.Context, kind domain.ServiceKind, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND kind = ?", id, string(kind)).
		Delete(&serviceRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CatalogRepository) CountByKind(ctx context.Context) (map[domain.ServiceKind]int64, error) {
	counts := make(map[domain.ServiceKind]int64, len(domain.ServiceKinds))
	for _, kind := range domain.ServiceKinds {
		var n int64
		err := r.db.WithContext(ctx).
			Model(&serviceRecord{}).
			Where("kind = ?", string(kind)).
			Count(&n).Error
		if err != nil {
			return nil, err
		}
		counts[kind] = n
	}
	return counts, nil
}

func toServiceRecord(svc *domain.Service) *serviceRecord {
	return &serviceRecord{
		ID:          svc.ID,
		Kind:        string(svc.Kind),
		Title:       svc.Title,
		Description: svc.Description,
		Duration:    svc.Duration,
		Level:       svc.Level,
		Icon:        svc.Icon,
		Category:    svc.Category,
		Features:    svc.Features,
		BookingLink: svc.BookingLink,
		CreatedAt:   svc.CreatedAt,
		UpdatedAt:   svc.UpdatedAt,
	}
}

func (rec *serviceRecord) toDomain() *domain.Service {
	return &domain.Service{
		ID:          rec.ID,
		Kind:        domain.ServiceKind(rec.Kind),
		Title:       rec.Title,
		Description: rec.Description,
		Duration:    rec.Duration,
		Level:       rec.Level,
		Icon:        rec.Icon,
		Category:    rec.Category,
		Features:    rec.Features,
		BookingLink: rec.BookingLink,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}
