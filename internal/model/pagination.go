package model

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// MaxPage keeps (page-1)*limit within int for any allowed limit.
	MaxPage = math.MaxInt / MaxLimit
)

// PageQuery is a 1-based page number and page size.
type PageQuery struct {
	Page  int
	Limit int
}

// Normalize clamps the query to valid values: 1 <= page <= MaxPage, 1 <= limit <= MaxLimit.
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Page > MaxPage {
		q.Page = MaxPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

// Offset returns the number of documents to skip.
func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Pagination is the metadata returned alongside a paginated list.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

// NewPagination computes page metadata; TotalPages is ceil(total/limit).
func NewPagination(q PageQuery, total int64) Pagination {
	totalPages := 0
	if q.Limit > 0 {
		totalPages = int((total + int64(q.Limit) - 1) / int64(q.Limit))
	}
	return Pagination{
		CurrentPage:  q.Page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: q.Limit,
		HasNextPage:  q.Page < totalPages,
		HasPrevPage:  q.Page > 1,
	}
}

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}
