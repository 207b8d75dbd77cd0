package service

import (
	"context"
	"strings"

	"github.com/tmplhub/tmplhub/internal/model"
	appErr "github.com/tmplhub/tmplhub/internal/pkg/errors"
	"github.com/tmplhub/tmplhub/internal/repo"
)

const (
	DefaultPageSize = 12
	MaxPageSize     = 100

	// CategoryAll is the sentinel meaning "no category filter".
	CategoryAll = "All"
)

// templateDefaults is the single source of field defaults applied at
// creation time. Counters and rating are seeded, not maintained: nothing in
// the read path increments them.
var templateDefaults = model.Template{
	Description: "",
	Category:    "Other",
	Link:        "#",
	Author:      "Anonymous",
	Views:       50000,
	Downloads:   25,
	Rating:      4.5,
	IsFree:      true,
	Status:      model.StatusActive,
}

type TemplateService struct {
	templates *repo.TemplateRepo
}

func NewTemplateService(templates *repo.TemplateRepo) *TemplateService {
	return &TemplateService{templates: templates}
}

// ListQuery carries the raw listing parameters. Zero values mean "use the
// documented default"; out-of-range values are clamped, never propagated.
type ListQuery struct {
	Page     int
	Limit    int
	Category string
	Search   string
}

type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

type ListResult struct {
	Data       []model.TemplateCard `json:"data"`
	Pagination Pagination           `json:"pagination"`
	Categories []string             `json:"categories"`
}

// EmptyListResult is the well-formed zero page returned alongside an error
// when the store cannot be queried.
func EmptyListResult() *ListResult {
	return &ListResult{
		Data:       []model.TemplateCard{},
		Pagination: Pagination{},
		Categories: []string{},
	}
}

func normalizeListQuery(q ListQuery) ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
	if q.Category == CategoryAll {
		q.Category = ""
	}
	q.Search = strings.TrimSpace(q.Search)
	return q
}

func buildPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}

// List resolves one page of the gallery: filtered, newest-first rows plus
// pagination metadata computed from the filtered count, plus the distinct
// categories across all active rows.
func (s *TemplateService) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	q = normalizeListQuery(q)
	filter := repo.ListFilter{Category: q.Category, Search: q.Search}

	total, err := s.templates.CountActive(ctx, filter)
	if err != nil {
		return nil, err
	}
	offset := uint(q.Page-1) * uint(q.Limit)
	items := make([]model.TemplateCard, 0)
	if int64(offset) < total {
		items, err = s.templates.ListActive(ctx, filter, uint(q.Limit), offset)
		if err != nil {
			return nil, err
		}
	}
	categories, err := s.templates.ActiveCategories(ctx)
	if err != nil {
		return nil, err
	}
	return &ListResult{
		Data:       items,
		Pagination: buildPagination(q.Page, q.Limit, total),
		Categories: categories,
	}, nil
}

func (s *TemplateService) Get(ctx context.Context, id int64) (*model.Template, error) {
	return s.templates.GetActiveByID(ctx, id)
}

type CreateTemplateInput struct {
	Title       string
	Description string
	Category    string
	Link        string
	HTMLContent string
	Author      string
}

// Create appends a new active row and returns its assigned id. Title is the
// only required field; everything else falls back to templateDefaults.
// ContentLength is the byte length of HTMLContent, fixed at creation.
func (s *TemplateService) Create(ctx context.Context, input CreateTemplateInput) (int64, error) {
	if strings.TrimSpace(input.Title) == "" {
		return 0, appErr.ErrInvalid
	}
	tpl := applyDefaults(input)
	return s.templates.Create(ctx, &tpl)
}

func applyDefaults(input CreateTemplateInput) model.Template {
	tpl := templateDefaults
	tpl.Title = input.Title
	tpl.Description = input.Description
	if input.Category != "" {
		tpl.Category = input.Category
	}
	if input.Link != "" {
		tpl.Link = input.Link
	}
	if input.Author != "" {
		tpl.Author = input.Author
	}
	tpl.HTMLContent = input.HTMLContent
	tpl.ContentLength = len(input.HTMLContent)
	return tpl
}

func (s *TemplateService) Count(ctx context.Context) (int64, error) {
	return s.templates.CountAll(ctx)
}
