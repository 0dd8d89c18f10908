package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	db         *pgxpool.Pool
	sb         sq.StatementBuilderType
	User       *UserRepo
	Team       *TeamRepo
	Brand      *BrandRepo
	Content    *ContentRepo
	Service    *ServiceRepo
	SiteConfig *SiteConfigRepo
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		db:         db,
		sb:         sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		User:       NewUserRepository(db),
		Team:       NewTeamRepository(db),
		Brand:      NewBrandRepository(db),
		Content:    NewContentRepository(db),
		Service:    NewServiceRepository(db),
		SiteConfig: NewSiteConfigRepository(db),
	}
}

func (r *Repository) Close() {
	r.db.Close()
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// Stats counts the rows of every managed entity in one round trip.
func (r *Repository) Stats(ctx context.Context) (models.Stats, error) {
	const op = "repository.Stats"

	var s models.Stats
	err := r.db.QueryRow(ctx, `SELECT
		(SELECT COUNT(*) FROM team_members),
		(SELECT COUNT(*) FROM brands),
		(SELECT COUNT(*) FROM child_contents),
		(SELECT COUNT(*) FROM services)`).
		Scan(&s.TeamMembers, &s.Brands, &s.ChildContents, &s.Services)
	if err != nil {
		return models.Stats{}, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

// TableCounts returns the row count of each named table.
func (r *Repository) TableCounts(ctx context.Context, tables []string) (map[string]int, error) {
	const op = "repository.TableCounts"

	counts := make(map[string]int, len(tables))
	for _, table := range tables {
		var n int
		err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM "+pq.QuoteIdentifier(table)).Scan(&n)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", op, table, err)
		}
		counts[table] = n
	}

	return counts, nil
}

// Purge deletes every row of the named tables in one transaction, in the
// given order, and reports how many rows each statement removed. Children
// must precede their parents so the counts are not absorbed by ON DELETE
// CASCADE.
func (r *Repository) Purge(ctx context.Context, tables []string) (map[string]int64, error) {
	const op = "repository.Purge"

	deleted := make(map[string]int64, len(tables))
	err := r.db.BeginFunc(ctx, func(tx pgx.Tx) error {
		for _, table := range tables {
			tag, err := tx.Exec(ctx, "DELETE FROM "+pq.QuoteIdentifier(table))
			if err != nil {
				return fmt.Errorf("%s: %w", table, err)
			}
			deleted[table] = tag.RowsAffected()
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return deleted, nil
}

// mapErr translates driver errors into storage sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", storage.ErrConflict, pgErr.ConstraintName)
	}

	return err
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere, with LIKE
// metacharacters in s taken literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

type listSpec struct {
	table      string
	columns    []string
	searchCols []string
	flagCol    string
	sortFields map[string]string
}

// conditions returns the WHERE part shared by the page query and the count.
func (s listSpec) conditions(f models.ListFilter, flag *bool) sq.And {
	where := sq.And{}

	if f.Search != "" && len(s.searchCols) > 0 {
		pattern := containsPattern(f.Search)
		or := sq.Or{}
		for _, col := range s.searchCols {
			or = append(or, sq.ILike{col: pattern})
		}
		where = append(where, or)
	}

	if flag != nil && s.flagCol != "" {
		where = append(where, sq.Eq{s.flagCol: *flag})
	}

	return where
}

func (s listSpec) orderBy(f models.ListFilter) (string, error) {
	key := f.OrderBy
	if key == "" {
		key = "order"
	}

	col, ok := s.sortFields[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", storage.ErrInvalidSort, key)
	}

	dir := "ASC"
	if strings.EqualFold(f.OrderDirection, models.SortDesc) {
		dir = "DESC"
	}

	return fmt.Sprintf("%s %s, id ASC", pq.QuoteIdentifier(col), dir), nil
}

// list runs the page query and the matching count, returning rows for scan.
func list[T any](ctx context.Context, q querier, sb sq.StatementBuilderType, s listSpec, f models.ListFilter, flag *bool, scan func(pgx.Row) (T, error)) ([]T, int, error) {
	order, err := s.orderBy(f)
	if err != nil {
		return nil, 0, err
	}

	where := s.conditions(f, flag)

	countSQL, countArgs, err := sb.Select("COUNT(*)").From(s.table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("can't build count sql: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := sb.Select(s.columns...).From(s.table).Where(where).OrderBy(order)
	if f.PageSize > 0 {
		query = query.Limit(uint64(f.PageSize)).Offset(f.Offset())
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("can't build sql: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}

	return items, total, rows.Err()
}

// updateFields applies a whitelisted partial update and bumps updated_at.
// Unknown keys are rejected rather than silently dropped.
func updateFields(ctx context.Context, q querier, sb sq.StatementBuilderType, table string, id uuid.UUID, fields map[string]interface{}, allowed map[string]bool) error {
	query := sb.Update(table).Set("updated_at", sq.Expr("NOW()"))

	for field, value := range fields {
		if !allowed[field] {
			return fmt.Errorf("field %q is not allowed for update", field)
		}
		query = query.Set(field, value)
	}

	sql, args, err := query.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("can't build sql: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func deleteByID(ctx context.Context, q querier, sb sq.StatementBuilderType, table string, id uuid.UUID) error {
	sql, args, err := sb.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("can't build sql: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// reorder sets sort_order for every item in one transaction. An unknown id
// aborts the batch with storage.ErrNotFound.
func reorder(ctx context.Context, db *pgxpool.Pool, sb sq.StatementBuilderType, table string, items []models.OrderItem) error {
	return db.BeginFunc(ctx, func(tx pgx.Tx) error {
		for _, item := range items {
			sql, args, err := sb.Update(table).
				Set("sort_order", item.Order).
				Set("updated_at", sq.Expr("NOW()")).
				Where(sq.Eq{"id": item.ID}).
				ToSql()
			if err != nil {
				return fmt.Errorf("can't build sql: %w", err)
			}

			tag, err := tx.Exec(ctx, sql, args...)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("%w: %s", storage.ErrNotFound, item.ID)
			}
		}
		return nil
	})
}
