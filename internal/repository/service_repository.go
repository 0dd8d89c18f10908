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

var serviceSpec = listSpec{
	table: "services",
	columns: []string{
		"id", "title", "description", "icon", "gradient",
		"sort_order", "active", "created_at", "updated_at",
	},
	searchCols: []string{"title", "description"},
	flagCol:    "active",
	sortFields: models.ServiceSortFields,
}

var serviceUpdatable = map[string]bool{
	"title":       true,
	"description": true,
	"icon":        true,
	"gradient":    true,
	"sort_order":  true,
	"active":      true,
}

var featureTable = childTable{
	table:     "service_features",
	parentCol: "service_id",
	columns:   []string{"title", "sort_order"},
}

type ServiceRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepo {
	return &ServiceRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func scanService(row pgx.Row) (models.Service, error) {
	var s models.Service
	err := row.Scan(
		&s.ID, &s.Title, &s.Description, &s.Icon, &s.Gradient,
		&s.Order, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	s.Features = []models.ServiceFeature{}
	return s, err
}

func featureRows(features []models.ServiceFeature) []childRow {
	rows := make([]childRow, 0, len(features))
	for _, f := range features {
		rows = append(rows, childRow{ID: f.ID, Values: []interface{}{f.Title, f.Order}})
	}
	return rows
}

func (r *ServiceRepo) GetAll(ctx context.Context, f models.ListFilter) ([]models.Service, int, error) {
	const op = "repository.service_repository.GetAll"

	items, total, err := list(ctx, r.db, r.sb, serviceSpec, f, f.Active, scanService)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.loadFeatures(ctx, r.db, items); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return items, total, nil
}

func (r *ServiceRepo) GetByID(ctx context.Context, id uuid.UUID) (models.Service, error) {
	const op = "repository.service_repository.GetByID"

	s, err := r.getByID(ctx, r.db, id)
	if err != nil {
		return models.Service{}, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

func (r *ServiceRepo) getByID(ctx context.Context, q querier, id uuid.UUID) (models.Service, error) {
	sql, args, err := r.sb.Select(serviceSpec.columns...).From(serviceSpec.table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Service{}, fmt.Errorf("can't build sql: %w", err)
	}

	s, err := scanService(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return models.Service{}, mapErr(err)
	}

	items := []models.Service{s}
	if err := r.loadFeatures(ctx, q, items); err != nil {
		return models.Service{}, err
	}

	return items[0], nil
}

// loadFeatures fills Features for every service with one query.
func (r *ServiceRepo) loadFeatures(ctx context.Context, q querier, services []models.Service) error {
	if len(services) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(services))
	index := make(map[uuid.UUID]int, len(services))
	for i, s := range services {
		ids[i] = s.ID
		index[s.ID] = i
	}

	sql, args, err := r.sb.Select("id", "service_id", "title", "sort_order").
		From(featureTable.table).
		Where(sq.Eq{"service_id": ids}).
		OrderBy("sort_order ASC", "id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("can't build sql: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var f models.ServiceFeature
		if err := rows.Scan(&f.ID, &f.ServiceID, &f.Title, &f.Order); err != nil {
			return err
		}
		i := index[f.ServiceID]
		services[i].Features = append(services[i].Features, f)
	}

	return rows.Err()
}

func (r *ServiceRepo) Create(ctx context.Context, s models.Service) (models.Service, error) {
	const op = "repository.service_repository.Create"

	var created models.Service
	err := r.db.BeginFunc(ctx, func(tx pgx.Tx) error {
		sql, args, err := r.sb.Insert(serviceSpec.table).
			Columns("title", "description", "icon", "gradient", "sort_order", "active").
			Values(s.Title, s.Description, s.Icon, s.Gradient, s.Order, s.Active).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("can't build sql: %w", err)
		}

		var id uuid.UUID
		if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			return mapErr(err)
		}

		if err := insertChildren(ctx, tx, r.sb, featureTable, id, featureRows(s.Features)); err != nil {
			return err
		}

		created, err = r.getByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return models.Service{}, fmt.Errorf("%s: %w", op, mapErr(err))
	}

	return created, nil
}

// Update applies flat field changes and, when Features is set, replaces the
// feature set. Everything happens in one transaction.
func (r *ServiceRepo) Update(ctx context.Context, id uuid.UUID, upd models.ServiceUpdate) (models.Service, error) {
	const op = "repository.service_repository.Update"

	var updated models.Service
	err := r.db.BeginFunc(ctx, func(tx pgx.Tx) error {
		if err := updateFields(ctx, tx, r.sb, serviceSpec.table, id, upd.Fields, serviceUpdatable); err != nil {
			return err
		}

		if upd.Features != nil {
			if err := replaceChildren(ctx, tx, r.sb, featureTable, id, featureRows(*upd.Features)); err != nil {
				return err
			}
		}

		var err error
		updated, err = r.getByID(ctx, tx, id)
		return err
	})
	if err != nil {
		// deferred constraints report at commit
		return models.Service{}, fmt.Errorf("%s: %w", op, mapErr(err))
	}

	return updated, nil
}

// Upsert stores a service by title and replaces its features.
func (r *ServiceRepo) Upsert(ctx context.Context, s models.Service) (models.Service, error) {
	const op = "repository.service_repository.Upsert"

	var saved models.Service
	err := r.db.BeginFunc(ctx, func(tx pgx.Tx) error {
		sql, args, err := r.sb.Insert(serviceSpec.table).
			Columns("title", "description", "icon", "gradient", "sort_order", "active").
			Values(s.Title, s.Description, s.Icon, s.Gradient, s.Order, s.Active).
			Suffix(`ON CONFLICT (title) DO UPDATE SET
				description = EXCLUDED.description,
				icon = EXCLUDED.icon,
				gradient = EXCLUDED.gradient,
				sort_order = EXCLUDED.sort_order,
				active = EXCLUDED.active,
				updated_at = NOW()
			RETURNING id`).
			ToSql()
		if err != nil {
			return fmt.Errorf("can't build sql: %w", err)
		}

		var id uuid.UUID
		if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			return mapErr(err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM service_features WHERE service_id = $1`, id); err != nil {
			return err
		}
		if err := insertChildren(ctx, tx, r.sb, featureTable, id, featureRows(s.Features)); err != nil {
			return err
		}

		saved, err = r.getByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return models.Service{}, fmt.Errorf("%s: %w", op, mapErr(err))
	}

	return saved, nil
}

func (r *ServiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "repository.service_repository.Delete"

	if err := deleteByID(ctx, r.db, r.sb, serviceSpec.table, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *ServiceRepo) Reorder(ctx context.Context, items []models.OrderItem) error {
	const op = "repository.service_repository.Reorder"

	if err := reorder(ctx, r.db, r.sb, serviceSpec.table, items); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
