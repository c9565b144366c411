// Package listview implements the list pipeline every back-office list view
// runs its rows through: tab filter, then free-text search, then pagination.
// The stages always run in that order and never mutate the input slice.
package listview

import (
	"strings"
)

// SentinelLabel is the label of the "show all" tab. A tab carrying this label
// bypasses the classification filter entirely.
const SentinelLabel = "전체보기"

// DefaultPageSize is the page size the back-office uses unless a view asks
// for something else.
const DefaultPageSize = 10

// Tab is one entry of a view's tab bar. Path is the classification value the
// tab selects; the sentinel tab has an empty Path.
type Tab struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// SentinelTab returns the "show all" tab.
func SentinelTab() Tab {
	return Tab{Label: SentinelLabel, Path: ""}
}

func (t Tab) IsSentinel() bool {
	return t.Label == SentinelLabel
}

// Query is the full input state of a list view: which tab is selected, what
// the search box contains, and which page is requested (1-based).
type Query struct {
	Tab    Tab
	Search string
	Page   int
}

// Page is the computed view of one page of filtered rows.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalItems int `json:"total"`
	TotalPages int `json:"totalPages"`
	PageIndex  int `json:"page"`
}

// Pipeline computes pages of rows for one entity type. A classifier extracts
// the field the tab bar filters on; a field accessor returns the strings the
// search box matches against. Numeric fields must be stringified by the
// accessor.
type Pipeline[T any] struct {
	classify func(T) string
	fields   func(T) []string
	pageSize int
}

// New creates a Pipeline. A pageSize below 1 falls back to DefaultPageSize.
func New[T any](classify func(T) string, fields func(T) []string, pageSize int) *Pipeline[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Pipeline[T]{
		classify: classify,
		fields:   fields,
		pageSize: pageSize,
	}
}

func (p *Pipeline[T]) PageSize() int {
	return p.pageSize
}

// Filter applies the tab and search stages, in that order, without paging.
// This is also the row set a bulk "select all" operates on.
func (p *Pipeline[T]) Filter(items []T, q Query) []T {
	return p.bySearch(p.byTab(items, q.Tab), q.Search)
}

// Apply runs the full pipeline. The requested page is clamped into
// [1, max(1, ceil(filtered/pageSize))], so asking for a page past the end
// yields the last page rather than an empty one.
func (p *Pipeline[T]) Apply(items []T, q Query) Page[T] {
	filtered := p.Filter(items, q)

	totalPages := (len(filtered) + p.pageSize - 1) / p.pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * p.pageSize
	end := start + p.pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Page[T]{
		Items:      filtered[start:end],
		TotalItems: len(filtered),
		TotalPages: totalPages,
		PageIndex:  page,
	}
}

func (p *Pipeline[T]) byTab(items []T, tab Tab) []T {
	if tab.IsSentinel() || tab == (Tab{}) {
		return items
	}
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if p.classify(item) == tab.Path {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func (p *Pipeline[T]) bySearch(items []T, term string) []T {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range p.fields(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}
