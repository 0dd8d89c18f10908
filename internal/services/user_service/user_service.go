package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/lib/apperr"
	"fosfenos/internal/lib/logger/sl"
	"fosfenos/internal/repository"
	"fosfenos/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

var (
	ErrUserExist    = errors.New("user already exist")
	ErrUserNotFound = errors.New("user not found")
)

type UserService struct {
	log  *slog.Logger
	repo repository.UserRepository
}

func NewUserService(log *slog.Logger, repo repository.UserRepository) *UserService {
	return &UserService{log: log, repo: repo}
}

func (s *UserService) RegisterNewUser(ctx context.Context, email, password, name string, role models.Role) (uuid.UUID, error) {
	const op = "user_service.RegisterNewUser"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	log.Info("register user")

	user, err := newUser(email, password, name, role)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := s.repo.SaveUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			log.Warn("user already exist", sl.Err(err))

			return uuid.Nil, apperr.Conflict("User already exists", fmt.Errorf("%s: %w", op, ErrUserExist))
		}

		log.Error("failed to save user", sl.Err(err))

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user registered")

	return id, nil
}

// EnsureAdmin creates an ADMIN account or resets the existing account with
// that email to the given password and name.
func (s *UserService) EnsureAdmin(ctx context.Context, email, password, name string) (uuid.UUID, error) {
	const op = "user_service.EnsureAdmin"

	log := s.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	user, err := newUser(email, password, name, models.RoleAdmin)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := s.repo.UpsertUser(ctx, user)
	if err != nil {
		log.Error("failed to save admin", sl.Err(err))

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("admin ensured", slog.String("user_id", id.String()))

	return id, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	const op = "user_service.GetUserByID"

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *UserService) AdminCount(ctx context.Context) (int, error) {
	const op = "user_service.AdminCount"

	n, err := s.repo.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

func newUser(email, password, name string, role models.Role) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return models.User{}, apperr.Validation("valid email is required", nil)
	}
	if len(password) < minPasswordLen {
		return models.User{}, apperr.Validation(fmt.Sprintf("password must be at least %d characters", minPasswordLen), nil)
	}
	if role != models.RoleAdmin && role != models.RoleUser {
		return models.User{}, apperr.Validation("unknown role", nil)
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to generate password hash: %w", err)
	}

	return models.User{
		Email:    email,
		Name:     strings.TrimSpace(name),
		Password: passHash,
		Role:     role,
	}, nil
}
