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

var contentSpec = listSpec{
	table: "child_contents",
	columns: []string{
		"id", "slug", "title", "subtitle", "video_url", "poster_image",
		"synopsis", "published", "sort_order", "created_at", "updated_at",
	},
	searchCols: []string{"title", "synopsis"},
	flagCol:    "published",
	sortFields: models.ContentSortFields,
}

var contentUpdatable = map[string]bool{
	"slug":         true,
	"title":        true,
	"subtitle":     true,
	"video_url":    true,
	"poster_image": true,
	"synopsis":     true,
	"published":    true,
	"sort_order":   true,
}

var (
	awardTable = childTable{
		table:     "awards",
		parentCol: "child_content_id",
		columns:   []string{"title", "category", "year", "country", "status", "festival", "sort_order"},
	}
	platformTable = childTable{
		table:     "platforms",
		parentCol: "child_content_id",
		columns:   []string{"name", "url", "icon", "sort_order"},
	}
)

var technicalInfoColumns = []string{
	"formato", "duracion", "genero", "publico", "estado",
	"empresa_productora", "pais_productora", "empresa_coproductora", "pais_coproductora",
}

var additionalInfoColumns = []string{"pressbook", "website", "facebook", "instagram"}

type ContentRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewContentRepository(db *pgxpool.Pool) *ContentRepo {
	return &ContentRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func scanContent(row pgx.Row) (models.ChildContent, error) {
	var c models.ChildContent
	err := row.Scan(
		&c.ID, &c.Slug, &c.Title, &c.Subtitle, &c.VideoURL, &c.PosterImage,
		&c.Synopsis, &c.Published, &c.Order, &c.CreatedAt, &c.UpdatedAt,
	)
	c.Awards = []models.Award{}
	c.Platforms = []models.Platform{}
	return c, err
}

func awardRows(awards []models.Award) []childRow {
	rows := make([]childRow, 0, len(awards))
	for _, a := range awards {
		rows = append(rows, childRow{
			ID:     a.ID,
			Values: []interface{}{a.Title, a.Category, a.Year, a.Country, a.Status, a.Festival, a.Order},
		})
	}
	return rows
}

func platformRows(platforms []models.Platform) []childRow {
	rows := make([]childRow, 0, len(platforms))
	for _, p := range platforms {
		rows = append(rows, childRow{
			ID:     p.ID,
			Values: []interface{}{p.Name, p.URL, p.Icon, p.Order},
		})
	}
	return rows
}

func (r *ContentRepo) GetAll(ctx context.Context, f models.ListFilter) ([]models.ChildContent, int, error) {
	const op = "repository.content_repository.GetAll"

	items, total, err := list(ctx, r.db, r.sb, contentSpec, f, f.Published, scanContent)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.loadRelations(ctx, r.db, items); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return items, total, nil
}

func (r *ContentRepo) GetByID(ctx context.Context, id uuid.UUID) (models.ChildContent, error) {
	const op = "repository.content_repository.GetByID"

	c, err := r.getOne(ctx, r.db, sq.Eq{"id": id})
	if err != nil {
		return models.ChildContent{}, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

func (r *ContentRepo) GetBySlug(ctx context.Context, slug string) (models.ChildContent, error) {
	const op = "repository.content_repository.GetBySlug"

	c, err := r.getOne(ctx, r.db, sq.Eq{"slug": slug})
	if err != nil {
		return models.ChildContent{}, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

// SlugExists reports whether slug is used by a content other than exclude.
func (r *ContentRepo) SlugExists(ctx context.Context, slug string, exclude uuid.UUID) (bool, error) {
	const op = "repository.content_repository.SlugExists"

	sql, args, err := r.sb.Select("1").From(contentSpec.table).
		Where(sq.Eq{"slug": slug}).
		Where(sq.NotEq{"id": exclude}).
		Prefix("SELECT EXISTS (").Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: can't build sql: %w", op, err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

func (r *ContentRepo) getOne(ctx context.Context, q querier, where sq.Eq) (models.ChildContent, error) {
	sql, args, err := r.sb.Select(contentSpec.columns...).From(contentSpec.table).Where(where).ToSql()
	if err != nil {
		return models.ChildContent{}, fmt.Errorf("can't build sql: %w", err)
	}

	c, err := scanContent(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return models.ChildContent{}, mapErr(err)
	}

	items := []models.ChildContent{c}
	if err := r.loadRelations(ctx, q, items); err != nil {
		return models.ChildContent{}, err
	}

	return items[0], nil
}

// loadRelations fills the nested relations of every item, one query per
// relation.
func (r *ContentRepo) loadRelations(ctx context.Context, q querier, items []models.ChildContent) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(items))
	index := make(map[uuid.UUID]int, len(items))
	for i, c := range items {
		ids[i] = c.ID
		index[c.ID] = i
	}

	if err := r.loadTechnicalInfo(ctx, q, ids, func(t models.TechnicalInfo) {
		items[index[t.ChildContentID]].TechnicalInfo = &t
	}); err != nil {
		return fmt.Errorf("technical info: %w", err)
	}

	if err := r.loadAdditionalInfo(ctx, q, ids, func(a models.AdditionalInfo) {
		items[index[a.ChildContentID]].AdditionalInfo = &a
	}); err != nil {
		return fmt.Errorf("additional info: %w", err)
	}

	if err := r.loadAwards(ctx, q, ids, func(a models.Award) {
		i := index[a.ChildContentID]
		items[i].Awards = append(items[i].Awards, a)
	}); err != nil {
		return fmt.Errorf("awards: %w", err)
	}

	if err := r.loadPlatforms(ctx, q, ids, func(p models.Platform) {
		i := index[p.ChildContentID]
		items[i].Platforms = append(items[i].Platforms, p)
	}); err != nil {
		return fmt.Errorf("platforms: %w", err)
	}

	return nil
}

func (r *ContentRepo) queryByParent(ctx context.Context, q querier, table string, columns []string, ids []uuid.UUID, ordered bool) (pgx.Rows, error) {
	cols := append([]string{"id", "child_content_id"}, columns...)
	query := r.sb.Select(cols...).From(table).Where(sq.Eq{"child_content_id": ids})
	if ordered {
		query = query.OrderBy("sort_order ASC", "id ASC")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("can't build sql: %w", err)
	}

	return q.Query(ctx, sql, args...)
}

func (r *ContentRepo) loadTechnicalInfo(ctx context.Context, q querier, ids []uuid.UUID, set func(models.TechnicalInfo)) error {
	rows, err := r.queryByParent(ctx, q, "technical_infos", technicalInfoColumns, ids, false)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var t models.TechnicalInfo
		err := rows.Scan(
			&t.ID, &t.ChildContentID, &t.Formato, &t.Duracion, &t.Genero, &t.Publico, &t.Estado,
			&t.EmpresaProductora, &t.PaisProductora, &t.EmpresaCoproductora, &t.PaisCoproductora,
		)
		if err != nil {
			return err
		}
		set(t)
	}

	return rows.Err()
}

func (r *ContentRepo) loadAdditionalInfo(ctx context.Context, q querier, ids []uuid.UUID, set func(models.AdditionalInfo)) error {
	rows, err := r.queryByParent(ctx, q, "additional_infos", additionalInfoColumns, ids, false)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a models.AdditionalInfo
		err := rows.Scan(&a.ID, &a.ChildContentID, &a.Pressbook, &a.Website, &a.Facebook, &a.Instagram)
		if err != nil {
			return err
		}
		set(a)
	}

	return rows.Err()
}

func (r *ContentRepo) loadAwards(ctx context.Context, q querier, ids []uuid.UUID, add func(models.Award)) error {
	rows, err := r.queryByParent(ctx, q, awardTable.table, awardTable.columns, ids, true)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a models.Award
		err := rows.Scan(
			&a.ID, &a.ChildContentID, &a.Title, &a.Category, &a.Year,
			&a.Country, &a.Status, &a.Festival, &a.Order,
		)
		if err != nil {
			return err
		}
		add(a)
	}

	return rows.Err()
}

func (r *ContentRepo) loadPlatforms(ctx context.Context, q querier, ids []uuid.UUID, add func(models.Platform)) error {
	rows, err := r.queryByParent(ctx, q, platformTable.table, platformTable.columns, ids, true)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Platform
		if err := rows.Scan(&p.ID, &p.ChildContentID, &p.Name, &p.URL, &p.Icon, &p.Order); err != nil {
			return err
		}
		add(p)
	}

	return rows.Err()
}

// Create stores the content together with every nested relation it carries.
func (r *ContentRepo) Create(ctx context.Context, c models.ChildContent) (models.ChildContent, error) {
	const op = "repository.content_repository.Create"

	var created models.ChildContent
	err := r.db.BeginFunc(ctx, func(tx pgx.Tx) error {
		sql, args, err := r.sb.Insert(contentSpec.table).
			Columns("slug", "title", "subtitle", "video_url", "poster_image", "synopsis", "published", "sort_order").
			Values(c.Slug, c.Title, c.Subtitle, c.VideoURL, c.PosterImage, c.Synopsis, c.Published, c.Order).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("can't build sql: %w", err)
		}

		var id uuid.UUID
		if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			return mapErr(err)
		}

		if err := r.writeNested(ctx, tx, id, c.TechnicalInfo, c.AdditionalInfo); err != nil {
			return err
		}
		if err := insertChildren(ctx, tx, r.sb, awardTable, id, awardRows(c.Awards)); err != nil {
			return err
		}
		if err := insertChildren(ctx, tx, r.sb, platformTable, id, platformRows(c.Platforms)); err != nil {
			return err
		}

		created, err = r.getOne(ctx, tx, sq.Eq{"id": id})
		return err
	})
	if err != nil {
		return models.ChildContent{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

// Update applies a partial update. Nested sets are replaced only when
// present in upd.
func (r *ContentRepo) Update(ctx context.Context, id uuid.UUID, upd models.ContentUpdate) (models.ChildContent, error) {
	const op = "repository.content_repository.Update"

	var updated models.ChildContent
	err := r.db.BeginFunc(ctx, func(tx pgx.Tx) error {
		if err := updateFields(ctx, tx, r.sb, contentSpec.table, id, upd.Fields, contentUpdatable); err != nil {
			return err
		}

		if err := r.writeNested(ctx, tx, id, upd.TechnicalInfo, upd.AdditionalInfo); err != nil {
			return err
		}

		if upd.Awards != nil {
			if err := replaceChildren(ctx, tx, r.sb, awardTable, id, awardRows(*upd.Awards)); err != nil {
				return err
			}
		}
		if upd.Platforms != nil {
			if err := replaceChildren(ctx, tx, r.sb, platformTable, id, platformRows(*upd.Platforms)); err != nil {
				return err
			}
		}

		var err error
		updated, err = r.getOne(ctx, tx, sq.Eq{"id": id})
		return err
	})
	if err != nil {
		return models.ChildContent{}, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

// writeNested upserts the one-to-one relations that are not nil.
func (r *ContentRepo) writeNested(ctx context.Context, tx pgx.Tx, id uuid.UUID, tech *models.TechnicalInfo, extra *models.AdditionalInfo) error {
	if tech != nil {
		err := r.upsertOneToOne(ctx, tx, "technical_infos", technicalInfoColumns, id, []interface{}{
			tech.Formato, tech.Duracion, tech.Genero, tech.Publico, tech.Estado,
			tech.EmpresaProductora, tech.PaisProductora, tech.EmpresaCoproductora, tech.PaisCoproductora,
		})
		if err != nil {
			return err
		}
	}

	if extra != nil {
		err := r.upsertOneToOne(ctx, tx, "additional_infos", additionalInfoColumns, id, []interface{}{
			extra.Pressbook, extra.Website, extra.Facebook, extra.Instagram,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *ContentRepo) upsertOneToOne(ctx context.Context, tx pgx.Tx, table string, columns []string, id uuid.UUID, values []interface{}) error {
	suffix := "ON CONFLICT (child_content_id) DO UPDATE SET "
	for i, col := range columns {
		if i > 0 {
			suffix += ", "
		}
		suffix += col + " = EXCLUDED." + col
	}

	sql, args, err := r.sb.Insert(table).
		Columns(append([]string{"child_content_id"}, columns...)...).
		Values(append([]interface{}{id}, values...)...).
		Suffix(suffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("can't build sql: %w", err)
	}

	_, err = tx.Exec(ctx, sql, args...)
	return mapErr(err)
}

func (r *ContentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "repository.content_repository.Delete"

	if err := deleteByID(ctx, r.db, r.sb, contentSpec.table, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
