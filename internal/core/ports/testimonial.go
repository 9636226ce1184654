package ports

import (
	"context"

	"github.com/infinitechange/coaching-site/internal/core/domain"
)

// TestimonialRepository persists client testimonials.
type TestimonialRepository interface {
	// List returns testimonials newest first; activeOnly filters to the
	// entries shown on the public site.
	List(ctx context.Context, activeOnly bool) ([]domain.Testimonial, error)
	Get(ctx context.Context, id string) (*domain.Testimonial, error)
	Create(ctx context.Context, t *domain.Testimonial) error
	Update(ctx context.Context, t *domain.Testimonial) error
	Delete(ctx context.Context, id string) error
}

// TestimonialService is the business layer over testimonials.
type TestimonialService interface {
	ListActive(ctx context.Context) ([]domain.Testimonial, error)
	ListAll(ctx context.Context) ([]domain.Testimonial, error)
	Get(ctx context.Context, id string) (*domain.Testimonial, error)
	Create(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error)
	Update(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error)
	Delete(ctx context.Context, id string) error
}
