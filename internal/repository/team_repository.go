package repository

import (
	"context"
	"fmt"

	"fosfenos/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var teamSpec = listSpec{
	table: "team_members",
	columns: []string{
		"id", "nombre", "cargo", "imagen", "imagen_dark",
		"sort_order", "active", "created_at", "updated_at",
	},
	searchCols: []string{"nombre", "cargo"},
	flagCol:    "active",
	sortFields: models.TeamSortFields,
}

var teamUpdatable = map[string]bool{
	"nombre":      true,
	"cargo":       true,
	"imagen":      true,
	"imagen_dark": true,
	"sort_order":  true,
	"active":      true,
}

type TeamRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewTeamRepository(db *pgxpool.Pool) *TeamRepo {
	return &TeamRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func scanTeamMember(row pgx.Row) (models.TeamMember, error) {
	var m models.TeamMember
	err := row.Scan(
		&m.ID, &m.Nombre, &m.Cargo, &m.Imagen, &m.ImagenDark,
		&m.Order, &m.Active, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func (r *TeamRepo) GetAll(ctx context.Context, f models.ListFilter) ([]models.TeamMember, int, error) {
	const op = "repository.team_repository.GetAll"

	items, total, err := list(ctx, r.db, r.sb, teamSpec, f, f.Active, scanTeamMember)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return items, total, nil
}

func (r *TeamRepo) GetByID(ctx context.Context, id uuid.UUID) (models.TeamMember, error) {
	const op = "repository.team_repository.GetByID"

	sql, args, err := r.sb.Select(teamSpec.columns...).From(teamSpec.table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.TeamMember{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	m, err := scanTeamMember(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return models.TeamMember{}, fmt.Errorf("%s: %w", op, mapErr(err))
	}

	return m, nil
}

func (r *TeamRepo) Create(ctx context.Context, m models.TeamMember) (models.TeamMember, error) {
	const op = "repository.team_repository.Create"

	sql, args, err := r.sb.Insert(teamSpec.table).
		Columns("nombre", "cargo", "imagen", "imagen_dark", "sort_order", "active").
		Values(m.Nombre, m.Cargo, m.Imagen, m.ImagenDark, m.Order, m.Active).
		Suffix("RETURNING " + joinColumns(teamSpec.columns)).
		ToSql()
	if err != nil {
		return models.TeamMember{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	created, err := scanTeamMember(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return models.TeamMember{}, fmt.Errorf("%s: %w", op, mapErr(err))
	}

	return created, nil
}

// UpdateFields applies a partial update keyed by column name.
func (r *TeamRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (models.TeamMember, error) {
	const op = "repository.team_repository.UpdateFields"

	if err := updateFields(ctx, r.db, r.sb, teamSpec.table, id, fields, teamUpdatable); err != nil {
		return models.TeamMember{}, fmt.Errorf("%s: %w", op, err)
	}

	return r.GetByID(ctx, id)
}

func (r *TeamRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "repository.team_repository.Delete"

	if err := deleteByID(ctx, r.db, r.sb, teamSpec.table, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *TeamRepo) Reorder(ctx context.Context, items []models.OrderItem) error {
	const op = "repository.team_repository.Reorder"

	if err := reorder(ctx, r.db, r.sb, teamSpec.table, items); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
