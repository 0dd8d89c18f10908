package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/lib/logger/sl"
	"fosfenos/internal/lib/sanitize"
	"fosfenos/internal/repository"
	"fosfenos/internal/services/reader"
	"fosfenos/internal/transport/http/dto"

	"github.com/google/uuid"
)

const DefaultPageSize = 20

// CatalogService manages the services the company offers and their
// feature bullet lists.
type CatalogService struct {
	log   *slog.Logger
	repo  repository.ServiceRepository
	cache reader.Invalidator
}

func NewCatalogService(log *slog.Logger, repo repository.ServiceRepository, cache reader.Invalidator) *CatalogService {
	return &CatalogService{log: log, repo: repo, cache: cache}
}

func (s *CatalogService) GetAll(ctx context.Context, f models.ListFilter) (models.Page[models.Service], error) {
	const op = "catalog_service.GetAll"

	f = f.Normalize(DefaultPageSize)

	items, total, err := s.repo.GetAll(ctx, f)
	if err != nil {
		s.log.Error("failed to list services", slog.String("op", op), sl.Err(err))
		return models.Page[models.Service]{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.NewPage(items, total, f), nil
}

func (s *CatalogService) GetByID(ctx context.Context, id uuid.UUID) (models.Service, error) {
	const op = "catalog_service.GetByID"

	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Service{}, fmt.Errorf("%s: %w", op, err)
	}

	return svc, nil
}

func (s *CatalogService) Create(ctx context.Context, req dto.CreateServiceRequest) (models.Service, error) {
	const op = "catalog_service.Create"
	log := s.log.With(slog.String("op", op))

	svc := models.Service{
		Title:       sanitize.Text(req.Title),
		Description: sanitize.Text(req.Description),
		Icon:        strings.TrimSpace(req.Icon),
		Gradient:    strings.TrimSpace(req.Gradient),
		Order:       req.Order,
		Active:      true,
		Features:    toFeatures(req.Features),
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	created, err := s.repo.Create(ctx, svc)
	if err != nil {
		log.Error("failed to create service", sl.Err(err))
		return models.Service{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx, reader.ResourceServices)
	log.Info("service created", slog.String("id", created.ID.String()), slog.Int("features", len(created.Features)))

	return created, nil
}

func (s *CatalogService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateServiceRequest) (models.Service, error) {
	const op = "catalog_service.Update"
	log := s.log.With(slog.String("op", op), slog.String("id", id.String()))

	upd := models.ServiceUpdate{Fields: make(map[string]any)}
	if req.Title != nil {
		upd.Fields["title"] = sanitize.Text(*req.Title)
	}
	if req.Description != nil {
		upd.Fields["description"] = sanitize.Text(*req.Description)
	}
	if req.Icon != nil {
		upd.Fields["icon"] = strings.TrimSpace(*req.Icon)
	}
	if req.Gradient != nil {
		upd.Fields["gradient"] = strings.TrimSpace(*req.Gradient)
	}
	if req.Order != nil {
		upd.Fields["sort_order"] = *req.Order
	}
	if req.Active != nil {
		upd.Fields["active"] = *req.Active
	}
	if req.Features != nil {
		features := toFeatures(*req.Features)
		upd.Features = &features
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		log.Error("failed to update service", sl.Err(err))
		return models.Service{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx, reader.ResourceServices)
	log.Info("service updated")

	return updated, nil
}

func (s *CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "catalog_service.Delete"

	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error("failed to delete service", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx, reader.ResourceServices)

	return nil
}

func (s *CatalogService) Reorder(ctx context.Context, items []models.OrderItem) error {
	const op = "catalog_service.Reorder"

	if err := s.repo.Reorder(ctx, items); err != nil {
		s.log.Error("failed to reorder services", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx, reader.ResourceServices)

	return nil
}

// Upsert stores a service keyed by title with exactly the given features.
func (s *CatalogService) Upsert(ctx context.Context, svc models.Service) (models.Service, error) {
	const op = "catalog_service.Upsert"

	saved, err := s.repo.Upsert(ctx, svc)
	if err != nil {
		return models.Service{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx, reader.ResourceServices)

	return saved, nil
}

func toFeatures(in []dto.ServiceFeatureInput) []models.ServiceFeature {
	out := make([]models.ServiceFeature, 0, len(in))
	for _, f := range in {
		out = append(out, models.ServiceFeature{
			ID:    f.ID,
			Title: sanitize.Text(f.Title),
			Order: f.Order,
		})
	}
	return out
}
