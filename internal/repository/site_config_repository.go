package repository

import (
	"context"
	"fmt"

	"fosfenos/internal/domain/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var siteConfigColumns = []string{"id", "key", "value", "type", "created_at", "updated_at"}

type SiteConfigRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewSiteConfigRepository(db *pgxpool.Pool) *SiteConfigRepo {
	return &SiteConfigRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func scanSiteConfig(row pgx.Row) (models.SiteConfig, error) {
	var c models.SiteConfig
	err := row.Scan(&c.ID, &c.Key, &c.Value, &c.Type, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *SiteConfigRepo) List(ctx context.Context) ([]models.SiteConfig, error) {
	const op = "repository.site_config_repository.List"

	sql, args, err := r.sb.Select(siteConfigColumns...).From("site_configs").OrderBy("key ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	configs := make([]models.SiteConfig, 0)
	for rows.Next() {
		c, err := scanSiteConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		configs = append(configs, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return configs, nil
}

func (r *SiteConfigRepo) Get(ctx context.Context, key string) (models.SiteConfig, error) {
	const op = "repository.site_config_repository.Get"

	sql, args, err := r.sb.Select(siteConfigColumns...).From("site_configs").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return models.SiteConfig{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	c, err := scanSiteConfig(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return models.SiteConfig{}, fmt.Errorf("%s: %w", op, mapErr(err))
	}

	return c, nil
}

func (r *SiteConfigRepo) Upsert(ctx context.Context, key, value string, typ models.ConfigType) (models.SiteConfig, error) {
	const op = "repository.site_config_repository.Upsert"

	sql, args, err := r.sb.Insert("site_configs").
		Columns("key", "value", "type").
		Values(key, value, typ).
		Suffix(`ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			type = EXCLUDED.type,
			updated_at = NOW()
		RETURNING ` + joinColumns(siteConfigColumns)).
		ToSql()
	if err != nil {
		return models.SiteConfig{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	c, err := scanSiteConfig(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return models.SiteConfig{}, fmt.Errorf("%s: %w", op, mapErr(err))
	}

	return c, nil
}

func (r *SiteConfigRepo) Delete(ctx context.Context, key string) error {
	const op = "repository.site_config_repository.Delete"

	sql, args, err := r.sb.Delete("site_configs").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, mapErr(pgx.ErrNoRows))
	}

	return nil
}
