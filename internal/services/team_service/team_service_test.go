package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/services/reader"
	"fosfenos/internal/storage"
	"fosfenos/internal/transport/http/dto"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) GetAll(ctx context.Context, f models.ListFilter) ([]models.TeamMember, int, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.TeamMember), args.Int(1), args.Error(2)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id uuid.UUID) (models.TeamMember, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.TeamMember), args.Error(1)
}

func (m *MockTeamRepository) Create(ctx context.Context, tm models.TeamMember) (models.TeamMember, error) {
	args := m.Called(ctx, tm)
	return args.Get(0).(models.TeamMember), args.Error(1)
}

func (m *MockTeamRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (models.TeamMember, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(models.TeamMember), args.Error(1)
}

func (m *MockTeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTeamRepository) Reorder(ctx context.Context, items []models.OrderItem) error {
	return m.Called(ctx, items).Error(0)
}

type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) Invalidate(ctx context.Context, resource string) {
	m.Called(ctx, resource)
}

func newTestService() (*TeamService, *MockTeamRepository, *MockInvalidator) {
	repo := new(MockTeamRepository)
	inv := new(MockInvalidator)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewTeamService(log, repo, inv), repo, inv
}

func TestTeamService_GetAll(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService()

	members := []models.TeamMember{{ID: uuid.New(), Nombre: gofakeit.Name()}}
	expected := models.ListFilter{Page: 1, PageSize: DefaultPageSize, OrderBy: "order", OrderDirection: models.SortAsc}
	repo.On("GetAll", ctx, expected).Return(members, 21, nil).Once()

	page, err := svc.GetAll(ctx, models.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, members, page.Data)
	assert.Equal(t, 21, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	repo.AssertExpectations(t)
}

func TestTeamService_GetAllInvalidSort(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService()

	repo.On("GetAll", ctx, mock.Anything).Return([]models.TeamMember(nil), 0, storage.ErrInvalidSort).Once()

	_, err := svc.GetAll(ctx, models.ListFilter{OrderBy: "password"})
	assert.ErrorIs(t, err, storage.ErrInvalidSort)
}

func TestTeamService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		req        dto.CreateTeamMemberRequest
		wantActive bool
		repoErr    error
	}{
		{
			name:       "defaults to active and strips markup",
			req:        dto.CreateTeamMemberRequest{Nombre: "<b>Ana</b>", Cargo: "Directora", Imagen: " /team/ana.png "},
			wantActive: true,
		},
		{
			name:       "explicit inactive",
			req:        dto.CreateTeamMemberRequest{Nombre: "Luis", Cargo: "Productor", Imagen: "/team/luis.png", Active: boolPtr(false)},
			wantActive: false,
		},
		{
			name:       "repository failure",
			req:        dto.CreateTeamMemberRequest{Nombre: "Eva", Cargo: "Editora", Imagen: "/x.png"},
			wantActive: true,
			repoErr:    errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, inv := newTestService()

			repo.On("Create", ctx, mock.MatchedBy(func(m models.TeamMember) bool {
				return m.Active == tt.wantActive && m.Nombre != "" && m.Nombre[0] != '<' && m.Imagen[0] == '/'
			})).Return(models.TeamMember{ID: uuid.New()}, tt.repoErr).Once()

			if tt.repoErr == nil {
				inv.On("Invalidate", ctx, reader.ResourceTeam).Once()
			}

			_, err := svc.Create(ctx, tt.req)
			if tt.repoErr != nil {
				assert.ErrorIs(t, err, tt.repoErr)
			} else {
				assert.NoError(t, err)
			}

			repo.AssertExpectations(t)
			inv.AssertExpectations(t)
		})
	}
}

func TestTeamService_UpdateOnlyTouchesSubmittedFields(t *testing.T) {
	ctx := context.Background()
	svc, repo, inv := newTestService()

	id := uuid.New()
	repo.On("UpdateFields", ctx, id, map[string]interface{}{
		"cargo":  "Productora",
		"active": false,
	}).Return(models.TeamMember{ID: id, Cargo: "Productora"}, nil).Once()
	inv.On("Invalidate", ctx, reader.ResourceTeam).Once()

	got, err := svc.Update(ctx, id, dto.UpdateTeamMemberRequest{
		Cargo:  strPtr("Productora"),
		Active: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Productora", got.Cargo)
	repo.AssertExpectations(t)
	inv.AssertExpectations(t)
}

func TestTeamService_UpdateNotFound(t *testing.T) {
	ctx := context.Background()
	svc, repo, inv := newTestService()

	id := uuid.New()
	repo.On("UpdateFields", ctx, id, mock.Anything).Return(models.TeamMember{}, storage.ErrNotFound).Once()

	_, err := svc.Update(ctx, id, dto.UpdateTeamMemberRequest{Nombre: strPtr("X")})
	assert.ErrorIs(t, err, storage.ErrNotFound)
	inv.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestTeamService_Reorder(t *testing.T) {
	ctx := context.Background()
	items := []models.OrderItem{{ID: uuid.New(), Order: 1}, {ID: uuid.New(), Order: 0}}

	t.Run("success", func(t *testing.T) {
		svc, repo, inv := newTestService()
		repo.On("Reorder", ctx, items).Return(nil).Once()
		inv.On("Invalidate", ctx, reader.ResourceTeam).Once()

		require.NoError(t, svc.Reorder(ctx, items))
		inv.AssertExpectations(t)
	})

	t.Run("unknown id rolls back", func(t *testing.T) {
		svc, repo, inv := newTestService()
		repo.On("Reorder", ctx, items).Return(storage.ErrNotFound).Once()

		err := svc.Reorder(ctx, items)
		assert.ErrorIs(t, err, storage.ErrNotFound)
		inv.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	})
}

func TestTeamService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, repo, inv := newTestService()

	id := uuid.New()
	repo.On("Delete", ctx, id).Return(nil).Once()
	inv.On("Invalidate", ctx, reader.ResourceTeam).Once()

	require.NoError(t, svc.Delete(ctx, id))
	repo.AssertExpectations(t)
}

func TestTrimPtr(t *testing.T) {
	assert.Nil(t, trimPtr(nil))
	assert.Nil(t, trimPtr(strPtr("   ")))
	assert.Equal(t, "x", *trimPtr(strPtr(" x ")))
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
