// Package pagination holds the page-window math and the generic list
// envelope shared by every listing endpoint.
package pagination

import "strings"

// DefaultPageSize applies when the caller omits or zeroes page_size.
const DefaultPageSize = 10

// Params are normalized paging/filter inputs for list queries.
type Params struct {
	Page           int
	PageSize       int
	SearchNameTerm string
}

// Normalize clamps page and pageSize to usable values.
func (p Params) Normalize() Params {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Skip returns the number of matches to skip for the current window.
func (p Params) Skip() int {
	return (p.Page - 1) * p.PageSize
}

// PagesCount is ceil(totalCount/pageSize); zero matches mean zero pages.
func PagesCount(totalCount, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}

// MatchesTerm reports whether a title matches the search term as a
// case-insensitive substring. An empty term matches everything.
func MatchesTerm(title, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(title), strings.ToLower(term))
}

// Page is the response envelope for one window of a filtered listing.
type Page[T any] struct {
	PagesCount int `json:"pagesCount"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	Items      []T `json:"items"`
}

// NewPage assembles the envelope from normalized params and query results.
func NewPage[T any](p Params, totalCount int, items []T) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		PagesCount: PagesCount(totalCount, p.PageSize),
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalCount: totalCount,
		Items:      items,
	}
}
