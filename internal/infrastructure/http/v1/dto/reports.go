package dto

import (
	"net/url"
	"time"

	"stockroom/internal/domain/filter"
	"stockroom/internal/domain/reports"
)

// ParseDashboardQuery reads the dashboard parameters. Unparsable dates
// are ignored so the dashboard keeps rendering under bad client state.
func ParseDashboardQuery(values url.Values) reports.Query {
	lq := ParseListQuery(values)
	q := reports.Query{
		Search:    lq.Search,
		SortField: lq.SortField,
		SortOrder: lq.SortOrder,
		Page:      lq.Page,
		Limit:     lq.Limit,
	}

	if from, ok := filter.ParseDate(values.Get("from")); ok {
		q.From = &from
	}
	if to, ok := filter.ParseDate(values.Get("to")); ok {
		// Inclusive upper bound over a timestamp column.
		end := to.Add(24*time.Hour - time.Nanosecond)
		q.To = &end
	}
	return q
}

// DashboardResponse wraps the aggregated dashboard in the success
// envelope.
type DashboardResponse struct {
	Success bool                `json:"success"`
	Summary reports.Summary     `json:"summary"`
	Data    []reports.LedgerRow `json:"data"`
	Total   int                 `json:"total"`
	Page    int                 `json:"page"`
	Limit   int                 `json:"limit"`
}

func FromDashboard(d *reports.Dashboard) DashboardResponse {
	return DashboardResponse{
		Success: true,
		Summary: d.Summary,
		Data:    d.Rows,
		Total:   d.Total,
		Page:    d.Page,
		Limit:   d.Limit,
	}
}
