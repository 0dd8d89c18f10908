package seed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/storage"
	"fosfenos/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStores struct{ mock.Mock }

func (m *MockStores) EnsureAdmin(ctx context.Context, email, password, name string) (uuid.UUID, error) {
	args := m.Called(ctx, email, password, name)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockStores) GetBySlug(ctx context.Context, slug string) (models.ChildContent, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(models.ChildContent), args.Error(1)
}

func (m *MockStores) Create(ctx context.Context, req dto.CreateChildContentRequest) (models.ChildContent, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.ChildContent), args.Error(1)
}

type MockTeam struct{ mock.Mock }

func (m *MockTeam) GetAll(ctx context.Context, f models.ListFilter) (models.Page[models.TeamMember], error) {
	args := m.Called(ctx, f)
	return args.Get(0).(models.Page[models.TeamMember]), args.Error(1)
}

func (m *MockTeam) Create(ctx context.Context, req dto.CreateTeamMemberRequest) (models.TeamMember, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.TeamMember), args.Error(1)
}

type MockUpserts struct{ mock.Mock }

func (m *MockUpserts) UpsertBrand(ctx context.Context, b models.Brand) (models.Brand, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(models.Brand), args.Error(1)
}

func (m *MockUpserts) UpsertService(ctx context.Context, svc models.Service) (models.Service, error) {
	args := m.Called(ctx, svc)
	return args.Get(0).(models.Service), args.Error(1)
}

func (m *MockUpserts) UpsertConfig(ctx context.Context, key, value string, typ models.ConfigType) (models.SiteConfig, error) {
	args := m.Called(ctx, key, value, typ)
	return args.Get(0).(models.SiteConfig), args.Error(1)
}

type brandFunc func(context.Context, models.Brand) (models.Brand, error)

func (f brandFunc) Upsert(ctx context.Context, b models.Brand) (models.Brand, error) {
	return f(ctx, b)
}

type catalogFunc func(context.Context, models.Service) (models.Service, error)

func (f catalogFunc) Upsert(ctx context.Context, s models.Service) (models.Service, error) {
	return f(ctx, s)
}

type configFunc func(context.Context, string, string, models.ConfigType) (models.SiteConfig, error)

func (f configFunc) Upsert(ctx context.Context, k, v string, t models.ConfigType) (models.SiteConfig, error) {
	return f(ctx, k, v, t)
}

func newSeeder(stores *MockStores, tm *MockTeam, up *MockUpserts) *Seeder {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(log, stores, stores, tm,
		brandFunc(up.UpsertBrand),
		catalogFunc(up.UpsertService),
		configFunc(up.UpsertConfig),
	)
}

func expectUpserts(up *MockUpserts) {
	up.On("UpsertBrand", mock.Anything, mock.Anything).Return(models.Brand{}, nil)
	up.On("UpsertService", mock.Anything, mock.Anything).Return(models.Service{}, nil)
	up.On("UpsertConfig", mock.Anything, mock.Anything, mock.Anything, models.ConfigTypeText).Return(models.SiteConfig{}, nil)
}

func TestSeeder_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh database", func(t *testing.T) {
		stores, tm, up := new(MockStores), new(MockTeam), new(MockUpserts)

		stores.On("EnsureAdmin", ctx, "admin@fosfenosmedia.com", "secret123", "Admin").Return(uuid.New(), nil)
		stores.On("GetBySlug", ctx, mock.Anything).Return(models.ChildContent{}, storage.ErrNotFound)
		stores.On("Create", ctx, mock.MatchedBy(func(r dto.CreateChildContentRequest) bool {
			return r.Published != nil && *r.Published
		})).Return(models.ChildContent{}, nil)
		tm.On("GetAll", ctx, mock.Anything).Return(models.Page[models.TeamMember]{}, nil)
		tm.On("Create", ctx, mock.MatchedBy(func(r dto.CreateTeamMemberRequest) bool {
			return r.Imagen == defaultTeamImage
		})).Return(models.TeamMember{}, nil)
		expectUpserts(up)

		rep, err := newSeeder(stores, tm, up).Run(ctx, Admin{Email: "admin@fosfenosmedia.com", Password: "secret123", Name: "Admin"})
		require.NoError(t, err)

		assert.True(t, rep.Admin)
		assert.Equal(t, len(contents), rep.ContentsCreated)
		assert.Equal(t, len(team), rep.TeamCreated)
		assert.Equal(t, len(services), rep.Services)
		assert.Equal(t, len(brands), rep.Brands)
		assert.Equal(t, len(siteConfig), rep.SiteConfig)

		stores.AssertCalled(t, "GetBySlug", ctx, "el-libro-de-lila")
		up.AssertCalled(t, "UpsertService", mock.Anything, mock.MatchedBy(func(s models.Service) bool {
			return s.Title == "Postproducción" && len(s.Features) == 4 && s.Features[3].Order == 3
		}))
		up.AssertCalled(t, "UpsertBrand", mock.Anything, mock.MatchedBy(func(b models.Brand) bool {
			return b.Name == "ABC" && b.ImageLight == b.Image && b.Href == ""
		}))
	})

	t.Run("rerun skips existing rows", func(t *testing.T) {
		stores, tm, up := new(MockStores), new(MockTeam), new(MockUpserts)

		stores.On("GetBySlug", ctx, mock.Anything).Return(models.ChildContent{ID: uuid.New()}, nil)

		existing := make([]models.TeamMember, 0, len(team))
		for _, m := range team {
			existing = append(existing, models.TeamMember{Nombre: m.nombre, Cargo: m.cargo})
		}
		tm.On("GetAll", ctx, mock.Anything).Return(models.Page[models.TeamMember]{Data: existing, Total: len(existing)}, nil)
		expectUpserts(up)

		rep, err := newSeeder(stores, tm, up).Run(ctx, Admin{})
		require.NoError(t, err)

		assert.False(t, rep.Admin)
		assert.Zero(t, rep.ContentsCreated)
		assert.Equal(t, len(contents), rep.ContentsSkipped)
		assert.Zero(t, rep.TeamCreated)
		assert.Equal(t, len(team), rep.TeamSkipped)
		stores.AssertNotCalled(t, "EnsureAdmin", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		stores.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		tm.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("lookup failure aborts", func(t *testing.T) {
		stores, tm, up := new(MockStores), new(MockTeam), new(MockUpserts)
		dbErr := errors.New("connection reset")

		stores.On("GetBySlug", ctx, mock.Anything).Return(models.ChildContent{}, dbErr)

		_, err := newSeeder(stores, tm, up).Run(ctx, Admin{})
		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		tm.AssertNotCalled(t, "GetAll", mock.Anything, mock.Anything)
	})
}

func TestSeedData(t *testing.T) {
	slugs := map[string]bool{}
	for _, c := range contents {
		assert.NotEmpty(t, c.Synopsis, c.Title)
		require.NotNil(t, c.TechnicalInfo, c.Title)
		slugs[c.Title] = true
	}
	assert.Len(t, slugs, 3)
	assert.Len(t, contents[0].Awards, 10)
	assert.Len(t, contents[0].Platforms, 2)

	for _, s := range services {
		assert.Len(t, s.features, 4, s.title)
	}
	assert.Len(t, team, 15)
	assert.Len(t, brands, 9)
}
