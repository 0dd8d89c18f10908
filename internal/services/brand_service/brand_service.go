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

type BrandService struct {
	log   *slog.Logger
	repo  repository.BrandRepository
	cache reader.Invalidator
}

func NewBrandService(log *slog.Logger, repo repository.BrandRepository, cache reader.Invalidator) *BrandService {
	return &BrandService{log: log, repo: repo, cache: cache}
}

func (s *BrandService) GetAll(ctx context.Context, f models.ListFilter) (models.Page[models.Brand], error) {
	const op = "brand_service.GetAll"

	f = f.Normalize(DefaultPageSize)

	items, total, err := s.repo.GetAll(ctx, f)
	if err != nil {
		s.log.Error("failed to list brands", slog.String("op", op), sl.Err(err))
		return models.Page[models.Brand]{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.NewPage(items, total, f), nil
}

func (s *BrandService) GetByID(ctx context.Context, id uuid.UUID) (models.Brand, error) {
	const op = "brand_service.GetByID"

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Brand{}, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (s *BrandService) Create(ctx context.Context, req dto.CreateBrandRequest) (models.Brand, error) {
	const op = "brand_service.Create"
	log := s.log.With(slog.String("op", op))

	b := models.Brand{
		Name:       sanitize.Text(req.Name),
		Href:       strings.TrimSpace(req.Href),
		Image:      strings.TrimSpace(req.Image),
		ImageLight: strings.TrimSpace(req.ImageLight),
		Order:      req.Order,
		Active:     true,
	}
	if req.Active != nil {
		b.Active = *req.Active
	}

	created, err := s.repo.Create(ctx, b)
	if err != nil {
		log.Error("failed to create brand", sl.Err(err))
		return models.Brand{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx, reader.ResourceBrands)
	log.Info("brand created", slog.String("id", created.ID.String()))

	return created, nil
}

func (s *BrandService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateBrandRequest) (models.Brand, error) {
	const op = "brand_service.Update"
	log := s.log.With(slog.String("op", op), slog.String("id", id.String()))

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = sanitize.Text(*req.Name)
	}
	if req.Href != nil {
		updates["href"] = strings.TrimSpace(*req.Href)
	}
	if req.Image != nil {
		updates["image"] = strings.TrimSpace(*req.Image)
	}
	if req.ImageLight != nil {
		updates["image_light"] = strings.TrimSpace(*req.ImageLight)
	}
	if req.Order != nil {
		updates["sort_order"] = *req.Order
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	updated, err := s.repo.UpdateFields(ctx, id, updates)
	if err != nil {
		log.Error("failed to update brand", sl.Err(err))
		return models.Brand{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx, reader.ResourceBrands)
	log.Info("brand updated")

	return updated, nil
}

func (s *BrandService) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "brand_service.Delete"
	log := s.log.With(slog.String("op", op), slog.String("id", id.String()))

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("failed to delete brand", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx, reader.ResourceBrands)
	log.Info("brand deleted")

	return nil
}

func (s *BrandService) Reorder(ctx context.Context, items []models.OrderItem) error {
	const op = "brand_service.Reorder"

	if err := s.repo.Reorder(ctx, items); err != nil {
		s.log.Error("failed to reorder brands", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx, reader.ResourceBrands)

	return nil
}

// Upsert stores a brand keyed by name. Used by seeding.
func (s *BrandService) Upsert(ctx context.Context, b models.Brand) (models.Brand, error) {
	const op = "brand_service.Upsert"

	saved, err := s.repo.Upsert(ctx, b)
	if err != nil {
		return models.Brand{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx, reader.ResourceBrands)

	return saved, nil
}
