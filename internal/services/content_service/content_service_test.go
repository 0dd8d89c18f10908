package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/services/reader"
	"fosfenos/internal/storage"
	"fosfenos/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) GetAll(ctx context.Context, f models.ListFilter) ([]models.ChildContent, int, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.ChildContent), args.Int(1), args.Error(2)
}

func (m *MockContentRepository) GetByID(ctx context.Context, id uuid.UUID) (models.ChildContent, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.ChildContent), args.Error(1)
}

func (m *MockContentRepository) GetBySlug(ctx context.Context, slug string) (models.ChildContent, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(models.ChildContent), args.Error(1)
}

func (m *MockContentRepository) SlugExists(ctx context.Context, slug string, exclude uuid.UUID) (bool, error) {
	args := m.Called(ctx, slug, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *MockContentRepository) Create(ctx context.Context, c models.ChildContent) (models.ChildContent, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(models.ChildContent), args.Error(1)
}

func (m *MockContentRepository) Update(ctx context.Context, id uuid.UUID, upd models.ContentUpdate) (models.ChildContent, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(models.ChildContent), args.Error(1)
}

func (m *MockContentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func newContentService() (*ContentService, *MockContentRepository) {
	repo := new(MockContentRepository)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewContentService(log, repo, reader.Nop{}), repo
}

func validCreate(title string) dto.CreateChildContentRequest {
	return dto.CreateChildContentRequest{
		Title:       title,
		VideoURL:    "https://youtu.be/x",
		PosterImage: "/posters/p.jpg",
		Synopsis:    "Una historia",
	}
}

func TestContentService_CreateGeneratesSlug(t *testing.T) {
	ctx := context.Background()
	svc, repo := newContentService()

	repo.On("SlugExists", ctx, "nueva-serie", uuid.Nil).Return(false, nil).Once()
	repo.On("Create", ctx, mock.MatchedBy(func(c models.ChildContent) bool {
		return c.Slug == "nueva-serie" && c.Published && c.Awards != nil && c.Platforms != nil
	})).Return(models.ChildContent{ID: uuid.New(), Slug: "nueva-serie", Awards: []models.Award{}, Platforms: []models.Platform{}}, nil).Once()

	created, err := svc.Create(ctx, validCreate("Nueva Serie"))
	require.NoError(t, err)
	assert.Equal(t, "nueva-serie", created.Slug)
	assert.NotNil(t, created.Awards)
	assert.Empty(t, created.Awards)
	repo.AssertExpectations(t)
}

func TestContentService_CreateAppendsSuffixOnCollision(t *testing.T) {
	ctx := context.Background()
	svc, repo := newContentService()

	repo.On("SlugExists", ctx, "el-libro-de-lila", uuid.Nil).Return(true, nil).Once()
	repo.On("SlugExists", ctx, "el-libro-de-lila-2", uuid.Nil).Return(true, nil).Once()
	repo.On("SlugExists", ctx, "el-libro-de-lila-3", uuid.Nil).Return(false, nil).Once()
	repo.On("Create", ctx, mock.MatchedBy(func(c models.ChildContent) bool {
		return c.Slug == "el-libro-de-lila-3"
	})).Return(models.ChildContent{Slug: "el-libro-de-lila-3"}, nil).Once()

	created, err := svc.Create(ctx, validCreate("El Libro de Lila"))
	require.NoError(t, err)
	assert.Equal(t, "el-libro-de-lila-3", created.Slug)
	repo.AssertExpectations(t)
}

func TestContentService_CreateRetriesOnConcurrentConflict(t *testing.T) {
	ctx := context.Background()
	svc, repo := newContentService()

	repo.On("SlugExists", ctx, "lila", uuid.Nil).Return(false, nil).Once()
	repo.On("Create", ctx, mock.MatchedBy(func(c models.ChildContent) bool { return c.Slug == "lila" })).
		Return(models.ChildContent{}, storage.ErrConflict).Once()
	repo.On("SlugExists", ctx, "lila", uuid.Nil).Return(true, nil).Once()
	repo.On("SlugExists", ctx, "lila-2", uuid.Nil).Return(false, nil).Once()
	repo.On("Create", ctx, mock.MatchedBy(func(c models.ChildContent) bool { return c.Slug == "lila-2" })).
		Return(models.ChildContent{Slug: "lila-2"}, nil).Once()

	created, err := svc.Create(ctx, validCreate("Lila"))
	require.NoError(t, err)
	assert.Equal(t, "lila-2", created.Slug)
}

func TestContentService_CreateMapsNested(t *testing.T) {
	ctx := context.Background()
	svc, repo := newContentService()

	req := validCreate("Señal")
	req.Published = boolPtr(false)
	req.TechnicalInfo = &dto.TechnicalInfoInput{
		Formato: "Serie", Duracion: "10'", Genero: "Animación", Publico: "Infantil",
		Estado: "Terminado", EmpresaProductora: "Fosfenos", PaisProductora: "Colombia",
	}
	req.Awards = []dto.AwardInput{{Title: "Mejor serie", Category: "Animación", Year: 2023, Country: "Chile", Status: "ganador", Festival: "Chilemonos"}}
	req.Platforms = []dto.PlatformInput{{Name: "YouTube", URL: "https://youtube.com", Icon: "youtube"}}

	repo.On("SlugExists", ctx, "senal", uuid.Nil).Return(false, nil).Once()
	repo.On("Create", ctx, mock.MatchedBy(func(c models.ChildContent) bool {
		return !c.Published &&
			c.TechnicalInfo != nil && c.TechnicalInfo.EmpresaProductora == "Fosfenos" &&
			len(c.Awards) == 1 && c.Awards[0].Status == models.AwardGanador &&
			len(c.Platforms) == 1 && c.AdditionalInfo == nil
	})).Return(models.ChildContent{Slug: "senal"}, nil).Once()

	_, err := svc.Create(ctx, req)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestContentService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	existing := models.ChildContent{ID: id, Title: "Lila", Slug: "lila"}

	t.Run("unknown id", func(t *testing.T) {
		svc, repo := newContentService()
		repo.On("GetByID", ctx, id).Return(models.ChildContent{}, storage.ErrNotFound).Once()

		_, err := svc.Update(ctx, id, dto.UpdateChildContentRequest{})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("title change regenerates slug", func(t *testing.T) {
		svc, repo := newContentService()
		repo.On("GetByID", ctx, id).Return(existing, nil).Once()
		repo.On("SlugExists", ctx, "lila-y-el-mar", id).Return(false, nil).Once()
		repo.On("Update", ctx, id, mock.MatchedBy(func(u models.ContentUpdate) bool {
			return u.Fields["slug"] == "lila-y-el-mar" && u.Fields["title"] == "Lila y el Mar" &&
				u.Awards == nil && u.Platforms == nil
		})).Return(models.ChildContent{ID: id, Slug: "lila-y-el-mar"}, nil).Once()

		got, err := svc.Update(ctx, id, dto.UpdateChildContentRequest{Title: strPtr("Lila y el Mar")})
		require.NoError(t, err)
		assert.Equal(t, "lila-y-el-mar", got.Slug)
		repo.AssertExpectations(t)
	})

	t.Run("same title keeps slug", func(t *testing.T) {
		svc, repo := newContentService()
		repo.On("GetByID", ctx, id).Return(existing, nil).Once()
		repo.On("Update", ctx, id, mock.MatchedBy(func(u models.ContentUpdate) bool {
			_, hasSlug := u.Fields["slug"]
			return !hasSlug
		})).Return(existing, nil).Once()

		_, err := svc.Update(ctx, id, dto.UpdateChildContentRequest{Title: strPtr("Lila")})
		require.NoError(t, err)
		repo.AssertNotCalled(t, "SlugExists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty awards replaces with nothing, platforms untouched", func(t *testing.T) {
		svc, repo := newContentService()
		repo.On("GetByID", ctx, id).Return(existing, nil).Once()
		repo.On("Update", ctx, id, mock.MatchedBy(func(u models.ContentUpdate) bool {
			return u.Awards != nil && len(*u.Awards) == 0 && u.Platforms == nil
		})).Return(existing, nil).Once()

		empty := []dto.AwardInput{}
		_, err := svc.Update(ctx, id, dto.UpdateChildContentRequest{Awards: &empty})
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestContentService_GetAllDefaults(t *testing.T) {
	ctx := context.Background()
	svc, repo := newContentService()

	repo.On("GetAll", ctx, mock.MatchedBy(func(f models.ListFilter) bool {
		return f.Page == 1 && f.PageSize == DefaultPageSize && f.OrderBy == "order"
	})).Return([]models.ChildContent{}, 0, nil).Once()

	page, err := svc.GetAll(ctx, models.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 10, page.PageSize)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
