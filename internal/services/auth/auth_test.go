package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/lib/jwt"
	"fosfenos/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserProvider struct {
	mock.Mock
}

func (m *MockUserProvider) UserByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.Error(1)
}

func TestAuth_Login(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := models.User{
		ID:       uuid.New(),
		Email:    "admin@fosfenosmedia.com",
		Name:     "Administrador",
		Password: hash,
		Role:     models.RoleAdmin,
	}

	tests := []struct {
		name      string
		email     string
		password  string
		setup     func(p *MockUserProvider)
		wantErr   error
		wantOther bool
	}{
		{
			name:     "success",
			email:    "Admin@FosfenosMedia.com",
			password: "admin123",
			setup: func(p *MockUserProvider) {
				p.On("UserByEmail", ctx, "admin@fosfenosmedia.com").Return(admin, nil).Once()
			},
		},
		{
			name:     "wrong password",
			email:    admin.Email,
			password: "nope",
			setup: func(p *MockUserProvider) {
				p.On("UserByEmail", ctx, admin.Email).Return(admin, nil).Once()
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "ghost@fosfenosmedia.com",
			password: "admin123",
			setup: func(p *MockUserProvider) {
				p.On("UserByEmail", ctx, "ghost@fosfenosmedia.com").Return(models.User{}, storage.ErrUserNotFound).Once()
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "empty input",
			email:    "",
			password: "",
			setup:    func(p *MockUserProvider) {},
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "storage failure is not a credential error",
			email:    admin.Email,
			password: "admin123",
			setup: func(p *MockUserProvider) {
				p.On("UserByEmail", ctx, admin.Email).Return(models.User{}, errors.New("db down")).Once()
			},
			wantOther: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(MockUserProvider)
			tt.setup(provider)
			a := New(log, provider, "secret", time.Hour)

			sess, err := a.Login(ctx, tt.email, tt.password)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantOther:
				require.Error(t, err)
				assert.NotErrorIs(t, err, ErrInvalidCredentials)
			default:
				require.NoError(t, err)
				assert.Equal(t, admin.ID, sess.User.ID)
				assert.Equal(t, models.RoleAdmin, sess.User.Role)

				user, err := a.Verify(sess.Token)
				require.NoError(t, err)
				assert.Equal(t, admin.Email, user.Email)
			}

			provider.AssertExpectations(t)
		})
	}
}

func TestAuth_LoginHashesOnEveryCredentialPath(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := models.User{ID: uuid.New(), Email: "admin@fosfenosmedia.com", Password: hash, Role: models.RoleAdmin}

	tests := []struct {
		name     string
		email    string
		user     models.User
		err      error
		wantHash []byte
	}{
		{name: "unknown email", email: "ghost@fosfenosmedia.com", err: storage.ErrUserNotFound, wantHash: dummyHash()},
		{name: "wrong password", email: admin.Email, user: admin, wantHash: hash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(MockUserProvider)
			provider.On("UserByEmail", ctx, tt.email).Return(tt.user, tt.err).Once()

			a := New(log, provider, "secret", time.Hour)
			var compared [][]byte
			a.compare = func(h, pw []byte) error {
				compared = append(compared, h)
				return bcrypt.CompareHashAndPassword(h, pw)
			}

			_, err := a.Login(ctx, tt.email, "wrong-password")
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			require.Len(t, compared, 1)
			assert.Equal(t, tt.wantHash, compared[0])
		})
	}

	assert.Equal(t, bcrypt.DefaultCost, mustCost(t, dummyHash()))
}

func mustCost(t *testing.T, h []byte) int {
	t.Helper()
	c, err := bcrypt.Cost(h)
	require.NoError(t, err)
	return c
}

func TestAuth_VerifyRejectsForeignSecret(t *testing.T) {
	a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), new(MockUserProvider), "secret", time.Hour)

	token, _, err := jwt.NewToken(models.User{ID: uuid.New(), Role: models.RoleAdmin}, "other", time.Hour)
	require.NoError(t, err)

	_, err = a.Verify(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
