// Package dto provides Data Transfer Objects for API requests and
// responses.
package dto

import (
	"net/url"
	"strconv"

	"stockroom/internal/domain"
	"stockroom/internal/domain/filter"
)

// --- Response envelopes ---

// ListEnvelope is the success envelope for paginated list endpoints.
type ListEnvelope struct {
	Success bool  `json:"success"`
	Data    any   `json:"data"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
}

// NewListEnvelope wraps mapped rows with the pagination echo.
func NewListEnvelope(data any, total int64, page, limit int) ListEnvelope {
	return ListEnvelope{Success: true, Data: data, Total: total, Page: page, Limit: limit}
}

// DataEnvelope is the success envelope for single-object endpoints.
type DataEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func NewDataEnvelope(data any) DataEnvelope {
	return DataEnvelope{Success: true, Data: data}
}

// MessageEnvelope is the success envelope for operations without data.
type MessageEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// CountEnvelope reports bulk-insert results as a count, not a per-row
// list.
type CountEnvelope struct {
	Success  bool  `json:"success"`
	Inserted int64 `json:"inserted"`
}

// --- List query parsing ---

// ParseListQuery reads the shared list parameters from the query
// string. Malformed numbers and invalid filter JSON degrade to
// defaults, never to an error.
func ParseListQuery(values url.Values) domain.ListQuery {
	q := domain.DefaultListQuery()

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		q.Page = page
	}
	if limit, err := strconv.Atoi(values.Get("limit")); err == nil && limit > 0 {
		q.Limit = limit
	}
	q.Search = values.Get("search")
	q.SortField = values.Get("sortField")
	if order := values.Get("sortOrder"); order == "desc" {
		q.SortOrder = "desc"
	}
	q.Filters = filter.ParseList(values.Get("filters"))

	return q
}

// OrDash substitutes the display placeholder for empty values.
func OrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
