// Package seed loads the demo catalog shipped with a fresh installation.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/lib/logger/sl"
	"fosfenos/internal/lib/slug"
	"fosfenos/internal/storage"
	"fosfenos/internal/transport/http/dto"

	"github.com/google/uuid"
)

type ContentStore interface {
	GetBySlug(ctx context.Context, slug string) (models.ChildContent, error)
	Create(ctx context.Context, req dto.CreateChildContentRequest) (models.ChildContent, error)
}

type TeamStore interface {
	GetAll(ctx context.Context, f models.ListFilter) (models.Page[models.TeamMember], error)
	Create(ctx context.Context, req dto.CreateTeamMemberRequest) (models.TeamMember, error)
}

type BrandStore interface {
	Upsert(ctx context.Context, b models.Brand) (models.Brand, error)
}

type CatalogStore interface {
	Upsert(ctx context.Context, svc models.Service) (models.Service, error)
}

type SiteConfigStore interface {
	Upsert(ctx context.Context, key, value string, typ models.ConfigType) (models.SiteConfig, error)
}

type AdminEnsurer interface {
	EnsureAdmin(ctx context.Context, email, password, name string) (uuid.UUID, error)
}

// Admin holds the credentials of the bootstrap account. An empty Password
// skips admin creation.
type Admin struct {
	Email    string
	Password string
	Name     string
}

// Report counts what a run created; existing rows are counted as skipped.
type Report struct {
	Admin           bool
	ContentsCreated int
	ContentsSkipped int
	TeamCreated     int
	TeamSkipped     int
	Services        int
	Brands          int
	SiteConfig      int
}

type Seeder struct {
	log      *slog.Logger
	admins   AdminEnsurer
	contents ContentStore
	team     TeamStore
	brands   BrandStore
	catalog  CatalogStore
	config   SiteConfigStore
}

func New(
	log *slog.Logger,
	admins AdminEnsurer,
	contents ContentStore,
	team TeamStore,
	brands BrandStore,
	catalog CatalogStore,
	config SiteConfigStore,
) *Seeder {
	return &Seeder{
		log:      log,
		admins:   admins,
		contents: contents,
		team:     team,
		brands:   brands,
		catalog:  catalog,
		config:   config,
	}
}

// Run is safe to repeat: contents are matched by slug, team members by
// name and role, and brands, services and config keys are upserted.
func (s *Seeder) Run(ctx context.Context, admin Admin) (Report, error) {
	const op = "seed.Run"
	log := s.log.With(slog.String("op", op))

	var rep Report

	if admin.Password != "" {
		if _, err := s.admins.EnsureAdmin(ctx, admin.Email, admin.Password, admin.Name); err != nil {
			log.Error("failed to ensure admin", sl.Err(err))
			return rep, fmt.Errorf("%s: %w", op, err)
		}
		rep.Admin = true
	}

	steps := []func(context.Context, *Report) error{
		s.seedContents,
		s.seedTeam,
		s.seedServices,
		s.seedBrands,
		s.seedSiteConfig,
	}
	for _, step := range steps {
		if err := step(ctx, &rep); err != nil {
			log.Error("seed step failed", sl.Err(err))
			return rep, fmt.Errorf("%s: %w", op, err)
		}
	}

	log.Info("seed completed",
		slog.Int("contents", rep.ContentsCreated),
		slog.Int("team", rep.TeamCreated),
		slog.Int("services", rep.Services),
		slog.Int("brands", rep.Brands),
	)

	return rep, nil
}

func (s *Seeder) seedContents(ctx context.Context, rep *Report) error {
	published := true
	for _, c := range contents {
		_, err := s.contents.GetBySlug(ctx, slug.Make(c.Title))
		if err == nil {
			rep.ContentsSkipped++
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("lookup %q: %w", c.Title, err)
		}

		c.Published = &published
		if _, err := s.contents.Create(ctx, c); err != nil {
			return fmt.Errorf("create content %q: %w", c.Title, err)
		}
		rep.ContentsCreated++
	}
	return nil
}

func (s *Seeder) seedTeam(ctx context.Context, rep *Report) error {
	existing, err := s.team.GetAll(ctx, models.ListFilter{PageSize: 1000}.Normalize(1000))
	if err != nil {
		return fmt.Errorf("list team: %w", err)
	}

	seen := make(map[[2]string]struct{}, len(existing.Data))
	for _, m := range existing.Data {
		seen[[2]string{m.Nombre, m.Cargo}] = struct{}{}
	}

	for i, m := range team {
		if _, ok := seen[[2]string{m.nombre, m.cargo}]; ok {
			rep.TeamSkipped++
			continue
		}
		_, err := s.team.Create(ctx, dto.CreateTeamMemberRequest{
			Nombre: m.nombre,
			Cargo:  m.cargo,
			Imagen: defaultTeamImage,
			Order:  i,
		})
		if err != nil {
			return fmt.Errorf("create team member %q: %w", m.nombre, err)
		}
		rep.TeamCreated++
	}
	return nil
}

func (s *Seeder) seedServices(ctx context.Context, rep *Report) error {
	for i, svc := range services {
		features := make([]models.ServiceFeature, 0, len(svc.features))
		for j, f := range svc.features {
			features = append(features, models.ServiceFeature{Title: f, Order: j})
		}

		_, err := s.catalog.Upsert(ctx, models.Service{
			Title:       svc.title,
			Description: svc.description,
			Icon:        svc.icon,
			Gradient:    svc.gradient,
			Order:       i,
			Active:      true,
			Features:    features,
		})
		if err != nil {
			return fmt.Errorf("upsert service %q: %w", svc.title, err)
		}
		rep.Services++
	}
	return nil
}

func (s *Seeder) seedBrands(ctx context.Context, rep *Report) error {
	for i, b := range brands {
		_, err := s.brands.Upsert(ctx, models.Brand{
			Name:       b.name,
			Image:      b.image,
			ImageLight: b.image,
			Order:      i,
			Active:     true,
		})
		if err != nil {
			return fmt.Errorf("upsert brand %q: %w", b.name, err)
		}
		rep.Brands++
	}
	return nil
}

func (s *Seeder) seedSiteConfig(ctx context.Context, rep *Report) error {
	for _, c := range siteConfig {
		if _, err := s.config.Upsert(ctx, c.Key, c.Value, c.Type); err != nil {
			return fmt.Errorf("upsert config %q: %w", c.Key, err)
		}
		rep.SiteConfig++
	}
	return nil
}
