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

var brandSpec = listSpec{
	table: "brands",
	columns: []string{
		"id", "name", "href", "image", "image_light",
		"sort_order", "active", "created_at", "updated_at",
	},
	searchCols: []string{"name"},
	flagCol:    "active",
	sortFields: models.BrandSortFields,
}

var brandUpdatable = map[string]bool{
	"name":        true,
	"href":        true,
	"image":       true,
	"image_light": true,
	"sort_order":  true,
	"active":      true,
}

type BrandRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewBrandRepository(db *pgxpool.Pool) *BrandRepo {
	return &BrandRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func scanBrand(row pgx.Row) (models.Brand, error) {
	var b models.Brand
	err := row.Scan(
		&b.ID, &b.Name, &b.Href, &b.Image, &b.ImageLight,
		&b.Order, &b.Active, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *BrandRepo) GetAll(ctx context.Context, f models.ListFilter) ([]models.Brand, int, error) {
	const op = "repository.brand_repository.GetAll"

	items, total, err := list(ctx, r.db, r.sb, brandSpec, f, f.Active, scanBrand)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return items, total, nil
}

func (r *BrandRepo) GetByID(ctx context.Context, id uuid.UUID) (models.Brand, error) {
	const op = "repository.brand_repository.GetByID"

	sql, args, err := r.sb.Select(brandSpec.columns...).From(brandSpec.table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Brand{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	b, err := scanBrand(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return models.Brand{}, fmt.Errorf("%s: %w", op, mapErr(err))
	}

	return b, nil
}

func (r *BrandRepo) Create(ctx context.Context, b models.Brand) (models.Brand, error) {
	const op = "repository.brand_repository.Create"

	sql, args, err := r.sb.Insert(brandSpec.table).
		Columns("name", "href", "image", "image_light", "sort_order", "active").
		Values(b.Name, b.Href, b.Image, b.ImageLight, b.Order, b.Active).
		Suffix("RETURNING " + joinColumns(brandSpec.columns)).
		ToSql()
	if err != nil {
		return models.Brand{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	created, err := scanBrand(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return models.Brand{}, fmt.Errorf("%s: %w", op, mapErr(err))
	}

	return created, nil
}

// Upsert inserts the brand or refreshes the row with the same name.
func (r *BrandRepo) Upsert(ctx context.Context, b models.Brand) (models.Brand, error) {
	const op = "repository.brand_repository.Upsert"

	sql, args, err := r.sb.Insert(brandSpec.table).
		Columns("name", "href", "image", "image_light", "sort_order", "active").
		Values(b.Name, b.Href, b.Image, b.ImageLight, b.Order, b.Active).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			href = EXCLUDED.href,
			image = EXCLUDED.image,
			image_light = EXCLUDED.image_light,
			sort_order = EXCLUDED.sort_order,
			active = EXCLUDED.active,
			updated_at = NOW()
		RETURNING ` + joinColumns(brandSpec.columns)).
		ToSql()
	if err != nil {
		return models.Brand{}, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	saved, err := scanBrand(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return models.Brand{}, fmt.Errorf("%s: %w", op, mapErr(err))
	}

	return saved, nil
}

func (r *BrandRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (models.Brand, error) {
	const op = "repository.brand_repository.UpdateFields"

	if err := updateFields(ctx, r.db, r.sb, brandSpec.table, id, fields, brandUpdatable); err != nil {
		return models.Brand{}, fmt.Errorf("%s: %w", op, err)
	}

	return r.GetByID(ctx, id)
}

func (r *BrandRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "repository.brand_repository.Delete"

	if err := deleteByID(ctx, r.db, r.sb, brandSpec.table, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *BrandRepo) Reorder(ctx context.Context, items []models.OrderItem) error {
	const op = "repository.brand_repository.Reorder"

	if err := reorder(ctx, r.db, r.sb, brandSpec.table, items); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
