package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/didi/gendry/builder"

	"github.com/tmplhub/tmplhub/internal/model"
	"github.com/tmplhub/tmplhub/internal/pkg/dbutil"
	appErr "github.com/tmplhub/tmplhub/internal/pkg/errors"
)

type TemplateRepo struct {
	db *sql.DB
}

func NewTemplateRepo(db *sql.DB) *TemplateRepo {
	return &TemplateRepo{db: db}
}

// storeErr marks a driver failure as an unavailable-store condition while
// keeping the underlying error text.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, appErr.ErrUnavailable, err)
}

// ListFilter narrows the active-row set. Empty fields mean "no filter";
// Category is matched exactly, Search is a case-insensitive substring over
// title and description. Values are always bound as query parameters.
type ListFilter struct {
	Category string
	Search   string
}

func (f ListFilter) apply(where map[string]interface{}) {
	if f.Category != "" {
		where["category"] = f.Category
	}
	if f.Search != "" {
		like := "%" + dbutil.EscapeLike(f.Search) + "%"
		where["_custom_search"] = builder.Custom("(title ILIKE ? OR description ILIKE ?)", like, like)
	}
}

func (r *TemplateRepo) Create(ctx context.Context, tpl *model.Template) (int64, error) {
	data := map[string]interface{}{
		"title":          tpl.Title,
		"description":    tpl.Description,
		"category":       tpl.Category,
		"link":           tpl.Link,
		"html_content":   tpl.HTMLContent,
		"content_length": tpl.ContentLength,
		"author":         tpl.Author,
		"views":          tpl.Views,
		"downloads":      tpl.Downloads,
		"rating":         tpl.Rating,
		"is_free":        tpl.IsFree,
		"status":         tpl.Status,
	}
	sqlStr, args, err := builder.BuildInsert("templates", []map[string]interface{}{data})
	if err != nil {
		return 0, fmt.Errorf("build insert: %w", err)
	}
	sqlStr, args = dbutil.Finalize(sqlStr+" RETURNING id", args)
	var id int64
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&id); err != nil {
		if dbutil.IsConflict(err) {
			return 0, appErr.ErrConflict
		}
		return 0, storeErr("create template", err)
	}
	return id, nil
}

func (r *TemplateRepo) GetActiveByID(ctx context.Context, id int64) (*model.Template, error) {
	where := map[string]interface{}{
		"id":     id,
		"status": model.StatusActive,
	}
	sqlStr, args, err := builder.BuildSelect("templates", where, []string{
		"id", "title", "description", "category", "link", "html_content", "content_length",
		"author", "views", "downloads", "rating", "is_free", "created_at", "updated_at", "status",
	})
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, storeErr("get template", err)
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, appErr.ErrNotFound
	}
	var tpl model.Template
	if err := rows.Scan(
		&tpl.ID,
		&tpl.Title,
		&tpl.Description,
		&tpl.Category,
		&tpl.Link,
		&tpl.HTMLContent,
		&tpl.ContentLength,
		&tpl.Author,
		&tpl.Views,
		&tpl.Downloads,
		&tpl.Rating,
		&tpl.IsFree,
		&tpl.CreatedAt,
		&tpl.UpdatedAt,
		&tpl.Status,
	); err != nil {
		return nil, storeErr("scan template", err)
	}
	return &tpl, nil
}

// ListActive returns one page of active rows matching the filter, newest
// first with id as the tiebreaker so pagination stays stable across rows
// created in the same instant.
func (r *TemplateRepo) ListActive(ctx context.Context, filter ListFilter, limit, offset uint) ([]model.TemplateCard, error) {
	where := map[string]interface{}{
		"status":   model.StatusActive,
		"_orderby": "created_at desc, id desc",
		"_limit":   []uint{offset, limit},
	}
	filter.apply(where)
	sqlStr, args, err := builder.BuildSelect("templates", where, []string{
		"id", "title", "description", "category", "link", "author",
		"created_at", "views", "downloads", "rating", "is_free",
	})
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, storeErr("list templates", err)
	}
	defer rows.Close()
	items := make([]model.TemplateCard, 0)
	for rows.Next() {
		var card model.TemplateCard
		if err := rows.Scan(
			&card.ID,
			&card.Title,
			&card.Description,
			&card.Category,
			&card.Link,
			&card.Author,
			&card.CreatedAt,
			&card.Views,
			&card.Downloads,
			&card.Rating,
			&card.IsFree,
		); err != nil {
			return nil, storeErr("scan template row", err)
		}
		items = append(items, card)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list templates", err)
	}
	return items, nil
}

// CountActive counts active rows matching the filter, independent of paging.
func (r *TemplateRepo) CountActive(ctx context.Context, filter ListFilter) (int64, error) {
	where := map[string]interface{}{
		"status": model.StatusActive,
	}
	filter.apply(where)
	sqlStr, args, err := builder.BuildSelect("templates", where, []string{"count(*)"})
	if err != nil {
		return 0, fmt.Errorf("build select: %w", err)
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	var total int64
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&total); err != nil {
		return 0, storeErr("count templates", err)
	}
	return total, nil
}

// ActiveCategories returns the distinct categories across all active rows,
// sorted for deterministic client rendering. Unfiltered on purpose: it
// powers the category selector, not the current result page.
func (r *TemplateRepo) ActiveCategories(ctx context.Context) ([]string, error) {
	sqlStr := `
		SELECT DISTINCT category
		FROM templates
		WHERE status = ?
		ORDER BY category
	`
	args := []interface{}{model.StatusActive}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, storeErr("list categories", err)
	}
	defer rows.Close()
	categories := make([]string, 0)
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, storeErr("scan category", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list categories", err)
	}
	return categories, nil
}

func (r *TemplateRepo) CountAll(ctx context.Context) (int64, error) {
	sqlStr, args := dbutil.Finalize(`SELECT COUNT(*) FROM templates`, nil)
	var total int64
	if err := r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&total); err != nil {
		return 0, storeErr("count all templates", err)
	}
	return total, nil
}
