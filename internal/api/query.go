package api

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/librisdev/libris/internal/domain"
	"github.com/librisdev/libris/internal/store"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ListQuery is the validated fetch specification for a list operation:
// bounded pagination plus the filter predicates shared by the count and
// page queries.
type ListQuery struct {
	Page   int
	Limit  int
	Filter store.BookFilter
}

// parseListQuery builds a ListQuery from the raw query string, applying
// defaults and bounds. now feeds the year-filter range check.
func parseListQuery(qs url.Values, now func() time.Time) (*ListQuery, error) {
	q := &ListQuery{Page: defaultPage, Limit: defaultLimit}

	if raw := qs.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &PaginationError{Field: "page", Message: "must be an integer"}
		}
		if page < 1 {
			return nil, &PaginationError{Field: "page", Message: "must be at least 1"}
		}
		q.Page = page
	}

	if raw := qs.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &PaginationError{Field: "limit", Message: "must be an integer"}
		}
		if limit < 1 || limit > maxLimit {
			return nil, &PaginationError{
				Field:   "limit",
				Message: fmt.Sprintf("must be between 1 and %d", maxLimit),
			}
		}
		q.Limit = limit
	}

	if raw := qs.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &FilterError{Field: "year", Message: "must be an integer"}
		}
		maxYear := domain.PublishedYearMax(now())
		if year < domain.PublishedYearMin || year > maxYear {
			return nil, &FilterError{
				Field:   "year",
				Message: fmt.Sprintf("must be between %d and %d", domain.PublishedYearMin, maxYear),
			}
		}
		q.Filter.Year = &year
	}

	q.Filter.Genre = qs.Get("genre")
	q.Filter.Author = qs.Get("author")
	q.Filter.ISBN = qs.Get("isbn")

	return q, nil
}

// Offset returns the row offset for the page query.
func (q *ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// AppliedFilters echoes back only the filters the client actually
// supplied.
func (q *ListQuery) AppliedFilters() map[string]any {
	filters := map[string]any{}
	if q.Filter.Year != nil {
		filters["year"] = *q.Filter.Year
	}
	if q.Filter.Genre != "" {
		filters["genre"] = q.Filter.Genre
	}
	if q.Filter.Author != "" {
		filters["author"] = q.Filter.Author
	}
	if q.Filter.ISBN != "" {
		filters["isbn"] = q.Filter.ISBN
	}
	return filters
}

// Pagination is the metadata block returned alongside a page of results.
// NextPage and PrevPage are null when there is no such page.
type Pagination struct {
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
	NextPage   *int `json:"nextPage"`
	PrevPage   *int `json:"prevPage"`
}

// NewPagination computes pagination metadata for the given total row
// count, current page and page size. TotalPages is a ceiling division.
func NewPagination(total, page, limit int) Pagination {
	totalPages := (total + limit - 1) / limit

	p := Pagination{
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		Limit:      limit,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && total > 0,
	}
	if p.HasNext {
		next := page + 1
		p.NextPage = &next
	}
	if p.HasPrev {
		prev := page - 1
		p.PrevPage = &prev
	}
	return p
}
