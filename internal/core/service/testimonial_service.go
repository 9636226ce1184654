package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/infinitechange/coaching-site/internal/core/domain"
	"github.com/infinitechange/coaching-site/internal/core/ports"
)

// TestimonialService implements CRUD over testimonials.
type TestimonialService struct {
	repo   ports.TestimonialRepository
	logger zerolog.Logger
}

func NewTestimonialService(repo ports.TestimonialRepository, logger zerolog.Logger) *TestimonialService {
	return &TestimonialService{repo: repo, logger: logger}
}

// ListActive returns the testimonials shown on the public site, newest first.
func (s *TestimonialService) ListActive(ctx context.Context) ([]domain.Testimonial, error) {
	return s.repo.List(ctx, true)
}

func (s *TestimonialService) ListAll(ctx context.Context) ([]domain.Testimonial, error) {
	return s.repo.List(ctx, false)
}

func (s *TestimonialService) Get(ctx context.Context, id string) (*domain.Testimonial, error) {
	return s.repo.Get(ctx, id)
}

func (s *TestimonialService) Create(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	s.logger.Info().Str("id", t.ID).Str("name", t.Name).Msg("testimonial created")
	return t, nil
}

func (s *TestimonialService) Update(ctx context.Context, t *domain.Testimonial) (*domain.Testimonial, error) {
	existing, err := s.repo.Get(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	t.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	s.logger.Info().Str("id", t.ID).Msg("testimonial updated")
	return t, nil
}

func (s *TestimonialService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("id", id).Msg("testimonial deleted")
	return nil
}
