package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/lib/logger/sl"
	"fosfenos/internal/lib/sanitize"
	"fosfenos/internal/lib/slug"
	"fosfenos/internal/repository"
	"fosfenos/internal/services/reader"
	"fosfenos/internal/storage"
	"fosfenos/internal/transport/http/dto"

	"github.com/google/uuid"
)

const (
	DefaultPageSize = 10

	maxSlugAttempts = 1000
	maxSaveAttempts = 3
)

var ErrSlugExhausted = errors.New("no free slug")

type ContentService struct {
	log   *slog.Logger
	repo  repository.ContentRepository
	cache reader.Invalidator
}

func NewContentService(log *slog.Logger, repo repository.ContentRepository, cache reader.Invalidator) *ContentService {
	return &ContentService{log: log, repo: repo, cache: cache}
}

func (s *ContentService) GetAll(ctx context.Context, f models.ListFilter) (models.Page[models.ChildContent], error) {
	const op = "content_service.GetAll"

	f = f.Normalize(DefaultPageSize)

	items, total, err := s.repo.GetAll(ctx, f)
	if err != nil {
		s.log.Error("failed to list content", slog.String("op", op), sl.Err(err))
		return models.Page[models.ChildContent]{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.NewPage(items, total, f), nil
}

func (s *ContentService) GetByID(ctx context.Context, id uuid.UUID) (models.ChildContent, error) {
	const op = "content_service.GetByID"

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.ChildContent{}, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (s *ContentService) GetBySlug(ctx context.Context, slug string) (models.ChildContent, error) {
	const op = "content_service.GetBySlug"

	c, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return models.ChildContent{}, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (s *ContentService) Create(ctx context.Context, req dto.CreateChildContentRequest) (models.ChildContent, error) {
	const op = "content_service.Create"
	log := s.log.With(slog.String("op", op))

	c := models.ChildContent{
		Title:          sanitize.Text(req.Title),
		Subtitle:       sanitize.Ptr(req.Subtitle),
		VideoURL:       strings.TrimSpace(req.VideoURL),
		PosterImage:    strings.TrimSpace(req.PosterImage),
		Synopsis:       sanitize.Text(req.Synopsis),
		Published:      true,
		Order:          req.Order,
		TechnicalInfo:  toTechnicalInfo(req.TechnicalInfo),
		Awards:         toAwards(req.Awards),
		Platforms:      toPlatforms(req.Platforms),
		AdditionalInfo: toAdditionalInfo(req.AdditionalInfo),
	}
	if req.Published != nil {
		c.Published = *req.Published
	}

	base := slug.Make(c.Title)

	var (
		created models.ChildContent
		err     error
	)
	// a concurrent writer can take the slug between the check and the insert
	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		c.Slug, err = s.uniqueSlug(ctx, base, uuid.Nil)
		if err != nil {
			log.Error("failed to pick slug", sl.Err(err))
			return models.ChildContent{}, fmt.Errorf("%s: %w", op, err)
		}

		created, err = s.repo.Create(ctx, c)
		if !errors.Is(err, storage.ErrConflict) {
			break
		}
		log.Warn("slug taken concurrently, retrying", slog.String("slug", c.Slug))
	}
	if err != nil {
		log.Error("failed to create content", sl.Err(err))
		return models.ChildContent{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx, reader.ResourceContent)
	log.Info("content created", slog.String("id", created.ID.String()), slog.String("slug", created.Slug))

	return created, nil
}

// Update applies the fields present in req. A changed title regenerates the
// slug. Awards and platforms are replaced only when submitted.
func (s *ContentService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateChildContentRequest) (models.ChildContent, error) {
	const op = "content_service.Update"
	log := s.log.With(slog.String("op", op), slog.String("id", id.String()))

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.ChildContent{}, fmt.Errorf("%s: %w", op, err)
	}

	upd := models.ContentUpdate{
		Fields:         make(map[string]any),
		TechnicalInfo:  toTechnicalInfo(req.TechnicalInfo),
		AdditionalInfo: toAdditionalInfo(req.AdditionalInfo),
	}

	if req.Title != nil {
		title := sanitize.Text(*req.Title)
		upd.Fields["title"] = title

		if title != existing.Title {
			newSlug, err := s.uniqueSlug(ctx, slug.Make(title), id)
			if err != nil {
				return models.ChildContent{}, fmt.Errorf("%s: %w", op, err)
			}
			upd.Fields["slug"] = newSlug
			log.Debug("slug regenerated", slog.String("slug", newSlug))
		}
	}
	if req.Subtitle != nil {
		upd.Fields["subtitle"] = sanitize.Ptr(req.Subtitle)
	}
	if req.VideoURL != nil {
		upd.Fields["video_url"] = strings.TrimSpace(*req.VideoURL)
	}
	if req.PosterImage != nil {
		upd.Fields["poster_image"] = strings.TrimSpace(*req.PosterImage)
	}
	if req.Synopsis != nil {
		upd.Fields["synopsis"] = sanitize.Text(*req.Synopsis)
	}
	if req.Published != nil {
		upd.Fields["published"] = *req.Published
	}
	if req.Order != nil {
		upd.Fields["sort_order"] = *req.Order
	}
	if req.Awards != nil {
		awards := toAwards(*req.Awards)
		upd.Awards = &awards
	}
	if req.Platforms != nil {
		platforms := toPlatforms(*req.Platforms)
		upd.Platforms = &platforms
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		log.Error("failed to update content", sl.Err(err))
		return models.ChildContent{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx, reader.ResourceContent)
	log.Info("content updated")

	return updated, nil
}

func (s *ContentService) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "content_service.Delete"
	log := s.log.With(slog.String("op", op), slog.String("id", id.String()))

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("failed to delete content", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx, reader.ResourceContent)
	log.Info("content deleted")

	return nil
}

// uniqueSlug returns base, or base-2, base-3, ... whichever is free first.
func (s *ContentService) uniqueSlug(ctx context.Context, base string, exclude uuid.UUID) (string, error) {
	for n := 1; n <= maxSlugAttempts; n++ {
		candidate := slug.WithSuffix(base, n)

		exists, err := s.repo.SlugExists(ctx, candidate, exclude)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrSlugExhausted, base)
}

func toTechnicalInfo(in *dto.TechnicalInfoInput) *models.TechnicalInfo {
	if in == nil {
		return nil
	}

	return &models.TechnicalInfo{
		Formato:             sanitize.Text(in.Formato),
		Duracion:            sanitize.Text(in.Duracion),
		Genero:              sanitize.Text(in.Genero),
		Publico:             sanitize.Text(in.Publico),
		Estado:              sanitize.Text(in.Estado),
		EmpresaProductora:   sanitize.Text(in.EmpresaProductora),
		PaisProductora:      sanitize.Text(in.PaisProductora),
		EmpresaCoproductora: sanitize.Ptr(in.EmpresaCoproductora),
		PaisCoproductora:    sanitize.Ptr(in.PaisCoproductora),
	}
}

func toAdditionalInfo(in *dto.AdditionalInfoInput) *models.AdditionalInfo {
	if in == nil {
		return nil
	}

	return &models.AdditionalInfo{
		Pressbook: trimPtr(in.Pressbook),
		Website:   trimPtr(in.Website),
		Facebook:  trimPtr(in.Facebook),
		Instagram: trimPtr(in.Instagram),
	}
}

func toAwards(in []dto.AwardInput) []models.Award {
	out := make([]models.Award, 0, len(in))
	for _, a := range in {
		out = append(out, models.Award{
			ID:       a.ID,
			Title:    sanitize.Text(a.Title),
			Category: sanitize.Text(a.Category),
			Year:     a.Year,
			Country:  sanitize.Text(a.Country),
			Status:   models.ParseAwardStatus(a.Status),
			Festival: sanitize.Text(a.Festival),
			Order:    a.Order,
		})
	}
	return out
}

func toPlatforms(in []dto.PlatformInput) []models.Platform {
	out := make([]models.Platform, 0, len(in))
	for _, p := range in {
		out = append(out, models.Platform{
			ID:    p.ID,
			Name:  sanitize.Text(p.Name),
			URL:   strings.TrimSpace(p.URL),
			Icon:  strings.TrimSpace(p.Icon),
			Order: p.Order,
		})
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
