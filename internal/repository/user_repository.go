package repository

import (
	"context"
	"errors"
	"fmt"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var userColumns = []string{"id", "email", "name", "password", "role", "created_at", "updated_at"}

type UserRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewUserRepository(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *UserRepo) SaveUser(ctx context.Context, user models.User) (uuid.UUID, error) {
	const op = "repository.user_repository.SaveUser"

	query, args, err := r.sb.Insert("users").
		Columns("email", "name", "password", "role").
		Values(user.Email, user.Name, user.Password, user.Role).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if errors.Is(mapErr(err), storage.ErrConflict) {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrUserExists)
		}
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// UpsertUser creates the user or, when the email is taken, overwrites its
// name, password and role.
func (r *UserRepo) UpsertUser(ctx context.Context, user models.User) (uuid.UUID, error) {
	const op = "repository.user_repository.UpsertUser"

	query, args, err := r.sb.Insert("users").
		Columns("email", "name", "password", "role").
		Values(user.Email, user.Name, user.Password, user.Role).
		Suffix(`ON CONFLICT (email) DO UPDATE SET
			name = EXCLUDED.name,
			password = EXCLUDED.password,
			role = EXCLUDED.role,
			updated_at = NOW()
		RETURNING id`).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (r *UserRepo) UserByEmail(ctx context.Context, email string) (models.User, error) {
	const op = "repository.user_repository.UserByEmail"

	return r.userBy(ctx, op, sq.Eq{"email": email})
}

func (r *UserRepo) GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	const op = "repository.user_repository.GetUserByID"

	return r.userBy(ctx, op, sq.Eq{"id": userID})
}

func (r *UserRepo) CountByRole(ctx context.Context, role models.Role) (int, error) {
	const op = "repository.user_repository.CountByRole"

	sql, args, err := r.sb.Select("COUNT(*)").From("users").Where(sq.Eq{"role": role}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var n int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

func (r *UserRepo) userBy(ctx context.Context, op string, where sq.Eq) (models.User, error) {
	sql, args, err := r.sb.Select(userColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var u models.User
	err = r.db.QueryRow(ctx, sql, args...).
		Scan(&u.ID, &u.Email, &u.Name, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}
