package ports

import (
	"context"

	"github.com/infinitechange/coaching-site/internal/core/domain"
)

// CatalogRepository persists service offerings across the four catalogues.
type CatalogRepository interface {
	// List returns every service of a kind. newestFirst selects the admin
	// ordering (created descending); the public listings use ascending.
	List(ctx context.Context, kind domain.ServiceKind, newestFirst bool) ([]domain.Service, error)
	Get(ctx context.Context, kind domain.ServiceKind, id string) (*domain.Service, error)
	Create(ctx context.Context, svc *domain.Service) error
	Update(ctx context.Context, svc *domain.Service) error
	Delete(ctx context.Context, kind domain.ServiceKind, id string) error
	CountByKind(ctx context.Context) (map[domain.ServiceKind]int64, error)
}

// CatalogService is the business layer over the service catalogues.
type CatalogService interface {
	ListPublic(ctx context.Context, kind domain.ServiceKind) ([]domain.Service, error)
	ListAdmin(ctx context.Context, kind domain.ServiceKind) ([]domain.Service, error)
	Get(ctx context.Context, kind domain.ServiceKind, id string) (*domain.Service, error)
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	Delete(ctx context.Context, kind domain.ServiceKind, id string) error
	Counts(ctx context.Context) (map[domain.ServiceKind]int64, error)
}
