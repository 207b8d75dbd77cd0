package service

import "testing"

func TestNormalizeListQuery(t *testing.T) {
	tests := []struct {
		name string
		in   ListQuery
		want ListQuery
	}{
		{
			name: "zero values get defaults",
			in:   ListQuery{},
			want: ListQuery{Page: 1, Limit: DefaultPageSize},
		},
		{
			name: "negative page clamped to 1",
			in:   ListQuery{Page: -3, Limit: 10},
			want: ListQuery{Page: 1, Limit: 10},
		},
		{
			name: "zero limit falls back to default",
			in:   ListQuery{Page: 2, Limit: 0},
			want: ListQuery{Page: 2, Limit: DefaultPageSize},
		},
		{
			name: "oversized limit capped",
			in:   ListQuery{Page: 1, Limit: 5000},
			want: ListQuery{Page: 1, Limit: MaxPageSize},
		},
		{
			name: "All category means no filter",
			in:   ListQuery{Page: 1, Limit: 12, Category: "All"},
			want: ListQuery{Page: 1, Limit: 12},
		},
		{
			name: "concrete category kept as-is",
			in:   ListQuery{Page: 1, Limit: 12, Category: "AI"},
			want: ListQuery{Page: 1, Limit: 12, Category: "AI"},
		},
		{
			name: "search trimmed",
			in:   ListQuery{Page: 1, Limit: 12, Search: "  guide "},
			want: ListQuery{Page: 1, Limit: 12, Search: "guide"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeListQuery(tt.in)
			if got != tt.want {
				t.Errorf("normalizeListQuery() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int64
		want  Pagination
	}{
		{
			name: "empty set", page: 1, limit: 12, total: 0,
			want: Pagination{CurrentPage: 1, TotalPages: 0, TotalItems: 0, ItemsPerPage: 12},
		},
		{
			name: "exactly one page", page: 1, limit: 12, total: 12,
			want: Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 12, ItemsPerPage: 12},
		},
		{
			name: "14 rows first page", page: 1, limit: 12, total: 14,
			want: Pagination{CurrentPage: 1, TotalPages: 2, TotalItems: 14, ItemsPerPage: 12, HasNextPage: true},
		},
		{
			name: "14 rows second page", page: 2, limit: 12, total: 14,
			want: Pagination{CurrentPage: 2, TotalPages: 2, TotalItems: 14, ItemsPerPage: 12, HasPrevPage: true},
		},
		{
			name: "page past the end keeps real totals", page: 5, limit: 12, total: 14,
			want: Pagination{CurrentPage: 5, TotalPages: 2, TotalItems: 14, ItemsPerPage: 12, HasPrevPage: true},
		},
		{
			name: "limit 1", page: 3, limit: 1, total: 3,
			want: Pagination{CurrentPage: 3, TotalPages: 3, TotalItems: 3, ItemsPerPage: 1, HasPrevPage: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildPagination(tt.page, tt.limit, tt.total)
			if got != tt.want {
				t.Errorf("buildPagination(%d, %d, %d) = %+v, want %+v", tt.page, tt.limit, tt.total, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	tpl := applyDefaults(CreateTemplateInput{Title: "Only title"})
	if tpl.Category != "Other" || tpl.Link != "#" || tpl.Author != "Anonymous" {
		t.Errorf("string defaults not applied: %+v", tpl)
	}
	if tpl.Views != 50000 || tpl.Downloads != 25 || tpl.Rating != 4.5 || !tpl.IsFree {
		t.Errorf("numeric defaults not applied: %+v", tpl)
	}
	if tpl.Status != "active" {
		t.Errorf("status = %q, want active", tpl.Status)
	}
	if tpl.ContentLength != 0 {
		t.Errorf("content length = %d, want 0", tpl.ContentLength)
	}

	tpl = applyDefaults(CreateTemplateInput{
		Title:       "Full",
		Category:    "AI",
		Link:        "https://example.com",
		Author:      "alice",
		HTMLContent: "<h2>héllo</h2>",
	})
	if tpl.Category != "AI" || tpl.Link != "https://example.com" || tpl.Author != "alice" {
		t.Errorf("explicit fields overridden: %+v", tpl)
	}
	if tpl.ContentLength != len("<h2>héllo</h2>") {
		t.Errorf("content length = %d, want byte length %d", tpl.ContentLength, len("<h2>héllo</h2>"))
	}
}
