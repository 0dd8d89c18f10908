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

type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) GetAll(ctx context.Context, f models.ListFilter) ([]models.Brand, int, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Brand), args.Int(1), args.Error(2)
}

func (m *MockBrandRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Brand, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Brand), args.Error(1)
}

func (m *MockBrandRepository) Create(ctx context.Context, b models.Brand) (models.Brand, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(models.Brand), args.Error(1)
}

func (m *MockBrandRepository) Upsert(ctx context.Context, b models.Brand) (models.Brand, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(models.Brand), args.Error(1)
}

func (m *MockBrandRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (models.Brand, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(models.Brand), args.Error(1)
}

func (m *MockBrandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBrandRepository) Reorder(ctx context.Context, items []models.OrderItem) error {
	return m.Called(ctx, items).Error(0)
}

type countingInvalidator struct {
	calls []string
}

func (c *countingInvalidator) Invalidate(_ context.Context, resource string) {
	c.calls = append(c.calls, resource)
}

func TestBrandService(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("create conflict is passed through", func(t *testing.T) {
		repo := new(MockBrandRepository)
		inv := &countingInvalidator{}
		svc := NewBrandService(log, repo, inv)

		repo.On("Create", ctx, mock.AnythingOfType("models.Brand")).
			Return(models.Brand{}, storage.ErrConflict).Once()

		_, err := svc.Create(ctx, dto.CreateBrandRequest{Name: "Señal Colombia", Href: "https://x", Image: "a", ImageLight: "b"})
		assert.ErrorIs(t, err, storage.ErrConflict)
		assert.Empty(t, inv.calls)
	})

	t.Run("update maps json names to columns", func(t *testing.T) {
		repo := new(MockBrandRepository)
		inv := &countingInvalidator{}
		svc := NewBrandService(log, repo, inv)

		id := uuid.New()
		light := "/brands/light.png"
		repo.On("UpdateFields", ctx, id, map[string]interface{}{"image_light": light}).
			Return(models.Brand{ID: id, ImageLight: light}, nil).Once()

		got, err := svc.Update(ctx, id, dto.UpdateBrandRequest{ImageLight: &light})
		require.NoError(t, err)
		assert.Equal(t, light, got.ImageLight)
		assert.Equal(t, []string{reader.ResourceBrands}, inv.calls)
	})

	t.Run("list keeps large page sizes", func(t *testing.T) {
		repo := new(MockBrandRepository)
		svc := NewBrandService(log, repo, reader.Nop{})

		repo.On("GetAll", ctx, mock.MatchedBy(func(f models.ListFilter) bool {
			return f.PageSize == 500 && f.Page == 1
		})).Return([]models.Brand{}, 0, nil).Once()

		page, err := svc.GetAll(ctx, models.ListFilter{PageSize: 500})
		require.NoError(t, err)
		assert.NotNil(t, page.Data)
		assert.Equal(t, 0, page.TotalPages)
	})
}
