// Package services serves the public site. Every read forces the visibility
// flag on and goes through the shared read layer.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/lib/logger/sl"
	"fosfenos/internal/services/reader"
	"fosfenos/internal/storage"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultPageSize        = 50
	DefaultContentPageSize = 10
)

type TeamLister interface {
	GetAll(ctx context.Context, f models.ListFilter) (models.Page[models.TeamMember], error)
}

type BrandLister interface {
	GetAll(ctx context.Context, f models.ListFilter) (models.Page[models.Brand], error)
}

type ServiceLister interface {
	GetAll(ctx context.Context, f models.ListFilter) (models.Page[models.Service], error)
}

type ContentProvider interface {
	GetAll(ctx context.Context, f models.ListFilter) (models.Page[models.ChildContent], error)
	GetBySlug(ctx context.Context, slug string) (models.ChildContent, error)
}

type SiteConfigProvider interface {
	Map(ctx context.Context) (map[string]string, error)
}

// Home is everything the landing page renders.
type Home struct {
	Config   map[string]string     `json:"config"`
	Contents []models.ChildContent `json:"contents"`
	Team     []models.TeamMember   `json:"team"`
	Services []models.Service      `json:"services"`
	Brands   []models.Brand        `json:"brands"`
}

type PublicService struct {
	log      *slog.Logger
	reader   *reader.Reader
	team     TeamLister
	brands   BrandLister
	services ServiceLister
	content  ContentProvider
	config   SiteConfigProvider
}

func NewPublicService(
	log *slog.Logger,
	r *reader.Reader,
	team TeamLister,
	brands BrandLister,
	services ServiceLister,
	content ContentProvider,
	config SiteConfigProvider,
) *PublicService {
	return &PublicService{
		log:      log,
		reader:   r,
		team:     team,
		brands:   brands,
		services: services,
		content:  content,
		config:   config,
	}
}

func visible(f models.ListFilter, pageSize int) models.ListFilter {
	on := true
	f.Active = &on
	f.Published = nil
	return f.Normalize(pageSize)
}

func published(f models.ListFilter, pageSize int) models.ListFilter {
	on := true
	f.Published = &on
	f.Active = nil
	return f.Normalize(pageSize)
}

func (s *PublicService) Team(ctx context.Context, f models.ListFilter) (models.Page[models.TeamMember], error) {
	const op = "public_service.Team"

	f = visible(f, DefaultPageSize)
	page, err := reader.Read(ctx, s.reader, reader.ResourceTeam, f, func(ctx context.Context) (models.Page[models.TeamMember], error) {
		return s.team.GetAll(ctx, f)
	})
	if err != nil {
		return page, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

func (s *PublicService) Brands(ctx context.Context, f models.ListFilter) (models.Page[models.Brand], error) {
	const op = "public_service.Brands"

	f = visible(f, DefaultPageSize)
	page, err := reader.Read(ctx, s.reader, reader.ResourceBrands, f, func(ctx context.Context) (models.Page[models.Brand], error) {
		return s.brands.GetAll(ctx, f)
	})
	if err != nil {
		return page, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

func (s *PublicService) Services(ctx context.Context, f models.ListFilter) (models.Page[models.Service], error) {
	const op = "public_service.Services"

	f = visible(f, DefaultPageSize)
	page, err := reader.Read(ctx, s.reader, reader.ResourceServices, f, func(ctx context.Context) (models.Page[models.Service], error) {
		return s.services.GetAll(ctx, f)
	})
	if err != nil {
		return page, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

func (s *PublicService) Contents(ctx context.Context, f models.ListFilter) (models.Page[models.ChildContent], error) {
	const op = "public_service.Contents"

	f = published(f, DefaultContentPageSize)
	page, err := reader.Read(ctx, s.reader, reader.ResourceContent, f, func(ctx context.Context) (models.Page[models.ChildContent], error) {
		return s.content.GetAll(ctx, f)
	})
	if err != nil {
		return page, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

// ContentBySlug hides unpublished titles behind storage.ErrNotFound.
func (s *PublicService) ContentBySlug(ctx context.Context, slug string) (models.ChildContent, error) {
	const op = "public_service.ContentBySlug"

	params := struct {
		Slug string `json:"slug"`
	}{Slug: slug}

	c, err := reader.Read(ctx, s.reader, reader.ResourceContent, params, func(ctx context.Context) (models.ChildContent, error) {
		c, err := s.content.GetBySlug(ctx, slug)
		if err != nil {
			return models.ChildContent{}, err
		}
		if !c.Published {
			return models.ChildContent{}, storage.ErrNotFound
		}
		return c, nil
	})
	if err != nil {
		return models.ChildContent{}, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (s *PublicService) SiteConfig(ctx context.Context) (map[string]string, error) {
	const op = "public_service.SiteConfig"

	m, err := reader.Read(ctx, s.reader, reader.ResourceSiteConfig, nil, s.config.Map)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}

// Home loads every landing page section concurrently.
func (s *PublicService) Home(ctx context.Context) (Home, error) {
	const op = "public_service.Home"

	var home Home
	all := models.ListFilter{PageSize: DefaultPageSize}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := s.SiteConfig(gctx)
		home.Config = m
		return err
	})
	g.Go(func() error {
		p, err := s.Contents(gctx, all)
		home.Contents = p.Data
		return err
	})
	g.Go(func() error {
		p, err := s.Team(gctx, all)
		home.Team = p.Data
		return err
	})
	g.Go(func() error {
		p, err := s.Services(gctx, all)
		home.Services = p.Data
		return err
	})
	g.Go(func() error {
		p, err := s.Brands(gctx, all)
		home.Brands = p.Data
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.With(slog.String("op", op)).Error("failed to load home", sl.Err(err))
		return Home{}, fmt.Errorf("%s: %w", op, err)
	}

	return home, nil
}
