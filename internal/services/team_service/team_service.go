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

type TeamService struct {
	log   *slog.Logger
	repo  repository.TeamRepository
	cache reader.Invalidator
}

func NewTeamService(log *slog.Logger, repo repository.TeamRepository, cache reader.Invalidator) *TeamService {
	return &TeamService{log: log, repo: repo, cache: cache}
}

func (s *TeamService) GetAll(ctx context.Context, f models.ListFilter) (models.Page[models.TeamMember], error) {
	const op = "team_service.GetAll"
	log := s.log.With(slog.String("op", op))

	f = f.Normalize(DefaultPageSize)

	items, total, err := s.repo.GetAll(ctx, f)
	if err != nil {
		log.Error("failed to list team members", sl.Err(err))
		return models.Page[models.TeamMember]{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.NewPage(items, total, f), nil
}

func (s *TeamService) GetByID(ctx context.Context, id uuid.UUID) (models.TeamMember, error) {
	const op = "team_service.GetByID"

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.TeamMember{}, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}

func (s *TeamService) Create(ctx context.Context, req dto.CreateTeamMemberRequest) (models.TeamMember, error) {
	const op = "team_service.Create"
	log := s.log.With(slog.String("op", op))

	m := models.TeamMember{
		Nombre:     sanitize.Text(req.Nombre),
		Cargo:      sanitize.Text(req.Cargo),
		Imagen:     strings.TrimSpace(req.Imagen),
		ImagenDark: trimPtr(req.ImagenDark),
		Order:      req.Order,
		Active:     true,
	}
	if req.Active != nil {
		m.Active = *req.Active
	}

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		log.Error("failed to create team member", sl.Err(err))
		return models.TeamMember{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx, reader.ResourceTeam)
	log.Info("team member created", slog.String("id", created.ID.String()))

	return created, nil
}

func (s *TeamService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateTeamMemberRequest) (models.TeamMember, error) {
	const op = "team_service.Update"
	log := s.log.With(slog.String("op", op), slog.String("id", id.String()))

	updates := make(map[string]interface{})
	if req.Nombre != nil {
		updates["nombre"] = sanitize.Text(*req.Nombre)
	}
	if req.Cargo != nil {
		updates["cargo"] = sanitize.Text(*req.Cargo)
	}
	if req.Imagen != nil {
		updates["imagen"] = strings.TrimSpace(*req.Imagen)
	}
	if req.ImagenDark != nil {
		updates["imagen_dark"] = trimPtr(req.ImagenDark)
	}
	if req.Order != nil {
		updates["sort_order"] = *req.Order
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	updated, err := s.repo.UpdateFields(ctx, id, updates)
	if err != nil {
		log.Error("failed to update team member", sl.Err(err))
		return models.TeamMember{}, fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx, reader.ResourceTeam)
	log.Info("team member updated")

	return updated, nil
}

func (s *TeamService) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "team_service.Delete"
	log := s.log.With(slog.String("op", op), slog.String("id", id.String()))

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("failed to delete team member", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx, reader.ResourceTeam)
	log.Info("team member deleted")

	return nil
}

// Reorder applies every position in items or none of them.
func (s *TeamService) Reorder(ctx context.Context, items []models.OrderItem) error {
	const op = "team_service.Reorder"
	log := s.log.With(slog.String("op", op), slog.Int("items", len(items)))

	if err := s.repo.Reorder(ctx, items); err != nil {
		log.Error("failed to reorder team members", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	s.cache.Invalidate(ctx, reader.ResourceTeam)
	log.Info("team members reordered")

	return nil
}

// trimPtr keeps nil as nil and turns a blank string into nil.
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
