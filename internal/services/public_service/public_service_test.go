package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/services/reader"
	"fosfenos/internal/storage"
	"fosfenos/internal/storage/cache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTeam struct {
	calls int32
	last  models.ListFilter
}

func (s *stubTeam) GetAll(_ context.Context, f models.ListFilter) (models.Page[models.TeamMember], error) {
	atomic.AddInt32(&s.calls, 1)
	s.last = f
	return models.NewPage([]models.TeamMember{{ID: uuid.New(), Nombre: "Ana", Active: true}}, 1, f), nil
}

type stubBrands struct{}

func (stubBrands) GetAll(_ context.Context, f models.ListFilter) (models.Page[models.Brand], error) {
	return models.NewPage([]models.Brand{{Name: "Canal"}}, 1, f), nil
}

type stubServices struct{}

func (stubServices) GetAll(_ context.Context, f models.ListFilter) (models.Page[models.Service], error) {
	return models.NewPage([]models.Service{{Title: "Producción"}}, 1, f), nil
}

type stubContent struct {
	bySlug map[string]models.ChildContent
	last   models.ListFilter
}

func (s *stubContent) GetAll(_ context.Context, f models.ListFilter) (models.Page[models.ChildContent], error) {
	s.last = f
	return models.NewPage([]models.ChildContent{{Slug: "nueva-serie", Published: true}}, 1, f), nil
}

func (s *stubContent) GetBySlug(_ context.Context, slug string) (models.ChildContent, error) {
	c, ok := s.bySlug[slug]
	if !ok {
		return models.ChildContent{}, storage.ErrNotFound
	}
	return c, nil
}

type stubConfig struct{ err error }

func (s stubConfig) Map(context.Context) (map[string]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return map[string]string{"hero_title": "Fosfenos Media"}, nil
}

func newPublic(cfg stubConfig) (*PublicService, *reader.Reader, *stubTeam, *stubContent) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := reader.New(log, cache.NewMemoryCache(time.Minute))
	team := &stubTeam{}
	content := &stubContent{bySlug: map[string]models.ChildContent{
		"nueva-serie": {Slug: "nueva-serie", Published: true},
		"borrador":    {Slug: "borrador", Published: false},
	}}
	return NewPublicService(log, r, team, stubBrands{}, stubServices{}, content, cfg), r, team, content
}

func TestPublicService_TeamForcesActive(t *testing.T) {
	svc, _, team, _ := newPublic(stubConfig{})
	off := false

	page, err := svc.Team(context.Background(), models.ListFilter{Active: &off})
	require.NoError(t, err)
	require.NotNil(t, team.last.Active)
	assert.True(t, *team.last.Active)
	assert.Equal(t, DefaultPageSize, team.last.PageSize)
	assert.Len(t, page.Data, 1)
}

func TestPublicService_CachesUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	svc, r, team, _ := newPublic(stubConfig{})

	_, err := svc.Team(ctx, models.ListFilter{})
	require.NoError(t, err)
	_, err = svc.Team(ctx, models.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&team.calls))

	r.Invalidate(ctx, reader.ResourceTeam)

	_, err = svc.Team(ctx, models.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&team.calls))
}

func TestPublicService_ContentsForcePublished(t *testing.T) {
	svc, _, _, content := newPublic(stubConfig{})
	off := false

	_, err := svc.Contents(context.Background(), models.ListFilter{Published: &off})
	require.NoError(t, err)
	require.NotNil(t, content.last.Published)
	assert.True(t, *content.last.Published)
	assert.Equal(t, DefaultContentPageSize, content.last.PageSize)
}

func TestPublicService_ContentBySlug(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newPublic(stubConfig{})

	c, err := svc.ContentBySlug(ctx, "nueva-serie")
	require.NoError(t, err)
	assert.Equal(t, "nueva-serie", c.Slug)

	_, err = svc.ContentBySlug(ctx, "borrador")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = svc.ContentBySlug(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPublicService_Home(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates sections", func(t *testing.T) {
		svc, _, _, _ := newPublic(stubConfig{})

		home, err := svc.Home(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Fosfenos Media", home.Config["hero_title"])
		assert.Len(t, home.Contents, 1)
		assert.Len(t, home.Team, 1)
		assert.Len(t, home.Services, 1)
		assert.Len(t, home.Brands, 1)
	})

	t.Run("section failure fails the page", func(t *testing.T) {
		svc, _, _, _ := newPublic(stubConfig{err: errors.New("db down")})

		_, err := svc.Home(ctx)
		assert.Error(t, err)
	})
}
