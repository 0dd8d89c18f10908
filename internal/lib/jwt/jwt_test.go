package jwt

import (
	"testing"
	"time"

	"fosfenos/internal/domain/models"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenRoundTrip(t *testing.T) {
	user := models.User{
		ID:    uuid.New(),
		Email: "admin@fosfenosmedia.com",
		Name:  "Administrador",
		Role:  models.RoleAdmin,
	}

	token, expires, err := NewToken(user, "secret", time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, 2*time.Second)

	claims, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)

	su, err := claims.SessionUser()
	require.NoError(t, err)
	assert.Equal(t, user.ID, su.ID)
	assert.Equal(t, user.Name, su.Name)
}

func TestParseTokenRejects(t *testing.T) {
	user := models.User{ID: uuid.New(), Email: "a@b.c", Role: models.RoleUser}

	valid, _, err := NewToken(user, "secret", time.Hour)
	require.NoError(t, err)

	expired, _, err := NewToken(user, "secret", -time.Minute)
	require.NoError(t, err)

	none := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{"sub": user.ID.String()})
	unsigned, err := none.SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", valid, "other"},
		{"expired", expired, "secret"},
		{"alg none", unsigned, "secret"},
		{"garbage", "not-a-token", "secret"},
		{"empty", "", "secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.token, tt.secret)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
