package reports

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Service merges the three ledger sources and serves the dashboard.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Dashboard fetches all sources concurrently, merges them, applies
// whole-row search, sorting and slice pagination, and computes the
// catalog-wide summary.
func (s *Service) Dashboard(ctx context.Context, q Query) (*Dashboard, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}

	var (
		in, out, req []LedgerRow
		stats        ProductStats
		pending      int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		in, err = s.repo.IncomingRows(gctx, q.From, q.To)
		return err
	})
	g.Go(func() error {
		var err error
		out, err = s.repo.OutgoingRows(gctx, q.From, q.To)
		return err
	})
	g.Go(func() error {
		var err error
		req, err = s.repo.RequestRows(gctx, q.From, q.To)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.repo.ProductStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		pending, err = s.repo.PendingRequests(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard fetch: %w", err)
	}

	rows := Merge(in, out, req)
	rows = SearchRows(rows, q.Search)
	SortRows(rows, q.SortField, q.SortOrder)

	total := len(rows)
	page := Paginate(rows, q.Page, q.Limit)

	return &Dashboard{
		Summary: Summary{
			TotalProducts:   stats.Total,
			LowStockItems:   stats.LowStock,
			TotalValue:      stats.TotalValue.StringFixed(2),
			PendingRequests: pending,
		},
		Rows:  page,
		Total: total,
		Page:  q.Page,
		Limit: q.Limit,
	}, nil
}

// Ledger returns the full filtered and sorted row set, unpaginated.
// Used by the spreadsheet export.
func (s *Service) Ledger(ctx context.Context, q Query) ([]LedgerRow, error) {
	var in, out, req []LedgerRow

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		in, err = s.repo.IncomingRows(gctx, q.From, q.To)
		return err
	})
	g.Go(func() error {
		var err error
		out, err = s.repo.OutgoingRows(gctx, q.From, q.To)
		return err
	})
	g.Go(func() error {
		var err error
		req, err = s.repo.RequestRows(gctx, q.From, q.To)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("ledger fetch: %w", err)
	}

	rows := Merge(in, out, req)
	rows = SearchRows(rows, q.Search)
	SortRows(rows, q.SortField, q.SortOrder)
	return rows, nil
}

// Merge concatenates the three sources, prefixing ids to keep them
// globally unique.
func Merge(in, out, req []LedgerRow) []LedgerRow {
	rows := make([]LedgerRow, 0, len(in)+len(out)+len(req))
	for _, r := range in {
		r.ID = PrefixIncoming + r.ID
		rows = append(rows, r)
	}
	for _, r := range out {
		r.ID = PrefixOutgoing + r.ID
		rows = append(rows, r)
	}
	for _, r := range req {
		r.ID = PrefixRequest + r.ID
		rows = append(rows, r)
	}
	return rows
}

// serialize flattens a row for whole-row substring search.
func serialize(r LedgerRow) string {
	return strings.ToLower(strings.Join([]string{
		r.ID,
		r.Date,
		r.PartNumber,
		r.ProductName,
		r.Source,
		strconv.Itoa(r.StockIn),
		strconv.Itoa(r.StockOut),
		r.Destination,
		strconv.Itoa(r.Stock),
		r.Remarks,
	}, " "))
}

// SearchRows keeps rows whose serialized form contains the term,
// case-insensitive. A row matches when the term appears in any field,
// not a named subset.
func SearchRows(rows []LedgerRow, term string) []LedgerRow {
	if term == "" {
		return rows
	}
	term = strings.ToLower(term)
	out := rows[:0:0]
	for _, r := range rows {
		if strings.Contains(serialize(r), term) {
			out = append(out, r)
		}
	}
	return out
}

// sortValue extracts the comparable value for a known row key.
// Numeric columns compare numerically, the rest as text.
func sortValue(r LedgerRow, field string) (any, bool) {
	switch field {
	case "date":
		return r.Date, true
	case "partNumber":
		return r.PartNumber, true
	case "productName":
		return r.ProductName, true
	case "source":
		return r.Source, true
	case "stockIn":
		return float64(r.StockIn), true
	case "stockOut":
		return float64(r.StockOut), true
	case "destination":
		return r.Destination, true
	case "stock":
		return float64(r.Stock), true
	case "remarks":
		return r.Remarks, true
	}
	return nil, false
}

func less(a, b any) bool {
	af, aok := a.(float64)
	bf, bok := b.(float64)
	if aok && bok {
		return af < bf
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

// SortRows orders rows in place. Unknown sort fields fall back to
// descending date-string order.
func SortRows(rows []LedgerRow, field, order string) {
	if _, known := sortValue(LedgerRow{}, field); !known {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Date > rows[j].Date
		})
		return
	}

	desc := order == "desc"
	sort.SliceStable(rows, func(i, j int) bool {
		a, _ := sortValue(rows[i], field)
		b, _ := sortValue(rows[j], field)
		if desc {
			return less(b, a)
		}
		return less(a, b)
	})
}

// Paginate slices one 1-based page out of the sorted sequence. Pages
// past the end yield an empty slice.
func Paginate(rows []LedgerRow, page, limit int) []LedgerRow {
	start := (page - 1) * limit
	if start >= len(rows) || start < 0 {
		return []LedgerRow{}
	}
	end := start + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
