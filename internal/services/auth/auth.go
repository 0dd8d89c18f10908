package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/lib/jwt"
	"fosfenos/internal/lib/logger/sl"
	"fosfenos/internal/storage"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyHash is compared against when the email is unknown so both failure
// paths pay for one bcrypt comparison.
var dummyHash = sync.OnceValue(func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("fosfenos-unknown-user"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return h
})

type Auth struct {
	log         *slog.Logger
	usrProvider UserProvider
	secret      string
	tokenTTL    time.Duration
	compare     func(hash, password []byte) error
}

type UserProvider interface {
	UserByEmail(ctx context.Context, email string) (models.User, error)
}

func New(log *slog.Logger, userProvider UserProvider, secret string, tokenTTL time.Duration) *Auth {
	return &Auth{
		log:         log,
		usrProvider: userProvider,
		secret:      secret,
		tokenTTL:    tokenTTL,
		compare:     bcrypt.CompareHashAndPassword,
	}
}

// Login checks the credentials and issues a signed session token. Every
// credential failure returns ErrInvalidCredentials so callers cannot tell an
// unknown email from a wrong password.
func (a *Auth) Login(ctx context.Context, email, password string) (models.Session, error) {
	const op = "auth.Login"

	email = strings.ToLower(strings.TrimSpace(email))

	log := a.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	log.Info("attempting to login user")

	if email == "" || password == "" {
		log.Warn("empty credentials")

		return models.Session{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	user, err := a.usrProvider.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Warn("user not found", sl.Err(err))
			_ = a.compare(dummyHash(), []byte(password))

			return models.Session{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		log.Error("failed to get user", sl.Err(err))

		return models.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := a.compare(user.Password, []byte(password)); err != nil {
		log.Info("invalid credentials", sl.Err(err))

		return models.Session{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, expires, err := jwt.NewToken(user, a.secret, a.tokenTTL)
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))

		return models.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user logged in successfully")

	return models.Session{
		User: models.SessionUser{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
		Token:     token,
		ExpiresAt: expires,
	}, nil
}

// Verify returns the user a token was issued for.
func (a *Auth) Verify(token string) (models.SessionUser, error) {
	claims, err := jwt.ParseToken(token, a.secret)
	if err != nil {
		return models.SessionUser{}, err
	}

	return claims.SessionUser()
}
