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

type testimonialRecord struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	Role      string
	Company   string
	Content   string
	Rating    int
	Image     string
	IsActive  bool `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (testimonialRecord) TableName() string { return "testimonials" }

// TestimonialRepository persists testimonials in SQLite.
type TestimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

var _ ports.TestimonialRepository = (*TestimonialRepository)(nil)

func (r *TestimonialRepository) List(ctx context.Context, activeOnly bool) ([]domain.Testimonial, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var recs []testimonialRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Testimonial, 0, len(recs))
	for i := range recs {
		out = append(out, *recs[i].toDomain())
	}
	return out, nil
}

func (r *TestimonialRepository) Get(ctx context.Context, id string) (*domain.Testimonial, error) {
	var rec testimonialRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec.toDomain(), nil
}

func (r *TestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	rec := toTestimonialRecord(t)
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return err
	}
	t.CreatedAt = rec.CreatedAt
	t.UpdatedAt = rec.UpdatedAt
	return nil
}

func (r *TestimonialRepository) Update(ctx context.Context, t *domain.Testimonial) error {
	rec := toTestimonialRecord(t)
	res := r.db.WithContext(ctx).
		Where("id = ?", rec.ID).
		Select("name", "role", "company", "content", "rating", "image", "is_active", "updated_at").
		Updates(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&testimonialRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toTestimonialRecord(t *domain.Testimonial) *testimonialRecord {
	return &testimonialRecord{
		ID:        t.ID,
		Name:      t.Name,
		Role:      t.Role,
		Company:   t.Company,
		Content:   t.Content,
		Rating:    t.Rating,
		Image:     t.Image,
		IsActive:  t.IsActive,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (rec *testimonialRecord) toDomain() *domain.Testimonial {
	return &domain.Testimonial{
		ID:        rec.ID,
		Name:      rec.Name,
		Role:      rec.Role,
		Company:   rec.Company,
		Content:   rec.Content,
		Rating:    rec.Rating,
		Image:     rec.Image,
		IsActive:  rec.IsActive,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
