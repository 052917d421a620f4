package dto

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom/internal/domain/filter"
)

func TestParseListQueryDefaults(t *testing.T) {
	q := ParseListQuery(url.Values{})

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, "asc", q.SortOrder)
	assert.Empty(t, q.Filters)
}

func TestParseListQueryMalformedInputDegrades(t *testing.T) {
	q := ParseListQuery(url.Values{
		"page":    {"banana"},
		"limit":   {"-5"},
		"filters": {"{broken json"},
	})

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Empty(t, q.Filters)
}

func TestParseListQueryFull(t *testing.T) {
	q := ParseListQuery(url.Values{
		"page":      {"3"},
		"limit":     {"25"},
		"search":    {"bolt"},
		"sortField": {"stock"},
		"sortOrder": {"desc"},
		"filters":   {`[{"field":"status","operator":"=","value":"Active"}]`},
	})

	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 25, q.Limit)
	assert.Equal(t, "bolt", q.Search)
	assert.Equal(t, "stock", q.SortField)
	assert.Equal(t, "desc", q.SortOrder)
	require.Len(t, q.Filters, 1)
	assert.Equal(t, filter.Equal, q.Filters[0].Operator)
}

func TestParseListQueryIgnoresUnknownSortOrder(t *testing.T) {
	q := ParseListQuery(url.Values{"sortOrder": {"sideways"}})
	assert.Equal(t, "asc", q.SortOrder)
}

func TestOrDash(t *testing.T) {
	assert.Equal(t, "-", OrDash(""))
	assert.Equal(t, "x", OrDash("x"))
}

func TestParseDashboardQueryInclusiveEnd(t *testing.T) {
	q := ParseDashboardQuery(url.Values{
		"from": {"2024-01-01"},
		"to":   {"2024-01-31"},
	})

	require.NotNil(t, q.From)
	require.NotNil(t, q.To)
	// The end bound covers the whole last day.
	assert.Equal(t, 31, q.To.Day())
	assert.Equal(t, 23, q.To.Hour())
}

func TestParseDashboardQueryBadDatesDropped(t *testing.T) {
	q := ParseDashboardQuery(url.Values{"from": {"whenever"}})
	assert.Nil(t, q.From)
	assert.Nil(t, q.To)
}
