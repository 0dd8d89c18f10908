package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
)

// childTable describes a one-to-many table owned by a parent row.
type childTable struct {
	table     string
	parentCol string
	columns   []string
}

// childRow is one submitted child. ID is uuid.Nil for new children.
type childRow struct {
	ID     uuid.UUID
	Values []interface{}
}

// replaceChildren makes the stored set for parentID exactly rows. Rows whose
// ID matches an existing child are updated in place, existing children not
// mentioned are deleted, and the rest are inserted with fresh ids.
func replaceChildren(ctx context.Context, tx pgx.Tx, sb sq.StatementBuilderType, ct childTable, parentID uuid.UUID, rows []childRow) error {
	existing, err := childIDs(ctx, tx, sb, ct, parentID)
	if err != nil {
		return err
	}

	keep := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		if _, ok := existing[row.ID]; ok {
			keep = append(keep, row.ID)
		}
	}

	sql, args, err := sb.Delete(ct.table).
		Where(sq.Eq{ct.parentCol: parentID}).
		Where(sq.NotEq{"id": keep}).
		ToSql()
	if err != nil {
		return fmt.Errorf("can't build sql: %w", err)
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return err
	}

	seen := make(map[uuid.UUID]struct{}, len(keep))
	for _, row := range rows {
		_, known := existing[row.ID]
		_, dup := seen[row.ID]

		if known && !dup {
			seen[row.ID] = struct{}{}
			if err := updateChild(ctx, tx, sb, ct, row); err != nil {
				return err
			}
			continue
		}

		if err := insertChildren(ctx, tx, sb, ct, parentID, []childRow{row}); err != nil {
			return err
		}
	}

	return nil
}

func childIDs(ctx context.Context, tx pgx.Tx, sb sq.StatementBuilderType, ct childTable, parentID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	sql, args, err := sb.Select("id").From(ct.table).Where(sq.Eq{ct.parentCol: parentID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("can't build sql: %w", err)
	}

	rows, err := tx.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[uuid.UUID]struct{})
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}

	return ids, rows.Err()
}

func updateChild(ctx context.Context, tx pgx.Tx, sb sq.StatementBuilderType, ct childTable, row childRow) error {
	q := sb.Update(ct.table)
	for i, col := range ct.columns {
		q = q.Set(col, row.Values[i])
	}

	sql, args, err := q.Where(sq.Eq{"id": row.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("can't build sql: %w", err)
	}

	_, err = tx.Exec(ctx, sql, args...)
	return mapErr(err)
}

func insertChildren(ctx context.Context, q querier, sb sq.StatementBuilderType, ct childTable, parentID uuid.UUID, rows []childRow) error {
	if len(rows) == 0 {
		return nil
	}

	insert := sb.Insert(ct.table).Columns(append([]string{ct.parentCol}, ct.columns...)...)
	for _, row := range rows {
		insert = insert.Values(append([]interface{}{parentID}, row.Values...)...)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("can't build sql: %w", err)
	}

	_, err = q.Exec(ctx, sql, args...)
	return mapErr(err)
}
