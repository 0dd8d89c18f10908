package jwt

import (
	"errors"
	"fmt"
	"time"

	"fosfenos/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

// SessionUser converts the claims back into the user they were issued for.
func (c *Claims) SessionUser() (models.SessionUser, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return models.SessionUser{}, ErrInvalidToken
	}

	return models.SessionUser{
		ID:    id,
		Email: c.Email,
		Name:  c.Name,
		Role:  c.Role,
	}, nil
}

func NewToken(user models.User, secret string, duration time.Duration) (string, time.Time, error) {
	now := time.Now()
	expires := now.Add(duration)

	claims := Claims{
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expires, nil
}

func ParseToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
