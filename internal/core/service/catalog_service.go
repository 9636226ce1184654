package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/infinitechange/coaching-site/internal/core/domain"
	"github.com/infinitechange/coaching-site/internal/core/ports"
)

// CatalogService implements CRUD over the four service catalogues.
type CatalogService struct {
	repo   ports.CatalogRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// ListPublic returns a catalogue oldest first, the order the site renders.
func (s *CatalogService) ListPublic(ctx context.Context, kind domain.ServiceKind) ([]domain.Service, error) {
	return s.repo.List(ctx, kind, false)
}

// ListAdmin returns a catalogue newest first for the admin panel.
func (s *CatalogService) ListAdmin(ctx context.Context, kind domain.ServiceKind) ([]domain.Service, error) {
	return s.repo.List(ctx, kind, true)
}

func (s *CatalogService) Get(ctx context.Context, kind domain.ServiceKind, id string) (*domain.Service, error) {
	return s.repo.Get(ctx, kind, id)
}

func (s *CatalogService) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}
	s.logger.Info().Str("kind", string(svc.Kind)).Str("id", svc.ID).Str("title", svc.Title).Msg("service created")
	return svc, nil
}

// Update rewrites an existing service. The record must exist; absent ids
// surface as domain.ErrNotFound.
func (s *CatalogService) Update(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	existing, err := s.repo.Get(ctx, svc.Kind, svc.ID)
	if err != nil {
		return nil, err
	}
	svc.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	s.logger.Info().Str("kind", string(svc.Kind)).Str("id", svc.ID).Msg("service updated")
	return svc, nil
}

func (s *CatalogService) Delete(ctx context.Context, kind domain.ServiceKind, id string) error {
	if _, err := s.repo.Get(ctx, kind, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, kind, id); err != nil {
		return err
	}
	s.logger.Info().Str("kind", string(kind)).Str("id", id).Msg("service deleted")
	return nil
}

// Counts returns per-catalogue record counts for the dashboard.
func (s *CatalogService) Counts(ctx context.Context) (map[domain.ServiceKind]int64, error) {
	return s.repo.CountByKind(ctx)
}
