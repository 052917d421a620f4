package reports

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	in, out, req []LedgerRow
	stats        ProductStats
	pending      int64

	gotFrom, gotTo *time.Time
}

func (f *fakeRepo) IncomingRows(ctx context.Context, from, to *time.Time) ([]LedgerRow, error) {
	f.gotFrom, f.gotTo = from, to
	return f.in, nil
}

func (f *fakeRepo) OutgoingRows(ctx context.Context, from, to *time.Time) ([]LedgerRow, error) {
	return f.out, nil
}

func (f *fakeRepo) RequestRows(ctx context.Context, from, to *time.Time) ([]LedgerRow, error) {
	return f.req, nil
}

func (f *fakeRepo) ProductStats(ctx context.Context) (ProductStats, error) {
	return f.stats, nil
}

func (f *fakeRepo) PendingRequests(ctx context.Context) (int64, error) {
	return f.pending, nil
}

func TestMergePrefixesIDs(t *testing.T) {
	rows := Merge(
		[]LedgerRow{{ID: "7"}},
		[]LedgerRow{{ID: "7"}},
		[]LedgerRow{{ID: "7"}},
	)

	require.Len(t, rows, 3)
	assert.Equal(t, "in-7", rows[0].ID)
	assert.Equal(t, "out-7", rows[1].ID)
	assert.Equal(t, "req-7", rows[2].ID)
}

func TestSearchRowsMatchesAnyField(t *testing.T) {
	rows := []LedgerRow{
		{ID: "in-1", ProductName: "Hex Bolt", Remarks: "restock"},
		{ID: "out-2", ProductName: "Grease", Destination: "Main Shop"},
		{ID: "req-3", ProductName: "Washer", Stock: 42},
	}

	t.Run("case-insensitive product name", func(t *testing.T) {
		got := SearchRows(rows, "hex")
		require.Len(t, got, 1)
		assert.Equal(t, "in-1", got[0].ID)
	})

	t.Run("matches destination", func(t *testing.T) {
		got := SearchRows(rows, "main shop")
		require.Len(t, got, 1)
		assert.Equal(t, "out-2", got[0].ID)
	})

	t.Run("matches numeric column as text", func(t *testing.T) {
		got := SearchRows(rows, "42")
		require.Len(t, got, 1)
		assert.Equal(t, "req-3", got[0].ID)
	})

	t.Run("empty term keeps everything", func(t *testing.T) {
		assert.Len(t, SearchRows(rows, ""), 3)
	})
}

func TestSortRows(t *testing.T) {
	mk := func() []LedgerRow {
		return []LedgerRow{
			{ID: "a", Date: "2024-01-02", Stock: 9},
			{ID: "b", Date: "2024-03-01", Stock: 100},
			{ID: "c", Date: "2024-02-10", Stock: 20},
		}
	}

	t.Run("numeric column sorts numerically", func(t *testing.T) {
		rows := mk()
		SortRows(rows, "stock", "asc")
		assert.Equal(t, []int{9, 20, 100}, []int{rows[0].Stock, rows[1].Stock, rows[2].Stock})
	})

	t.Run("descending reverses", func(t *testing.T) {
		rows := mk()
		SortRows(rows, "stock", "desc")
		assert.Equal(t, 100, rows[0].Stock)
	})

	t.Run("text column sorts lexicographically", func(t *testing.T) {
		rows := []LedgerRow{{ProductName: "b"}, {ProductName: "a"}, {ProductName: "c"}}
		SortRows(rows, "productName", "asc")
		assert.Equal(t, "a", rows[0].ProductName)
	})

	t.Run("unknown field falls back to newest first", func(t *testing.T) {
		rows := mk()
		SortRows(rows, "bogus", "asc")
		assert.Equal(t, "2024-03-01", rows[0].Date)
		assert.Equal(t, "2024-01-02", rows[2].Date)
	})
}

func TestPaginate(t *testing.T) {
	rows := []LedgerRow{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}, {ID: "5"}}

	t.Run("middle page", func(t *testing.T) {
		page := Paginate(rows, 2, 2)
		require.Len(t, page, 2)
		assert.Equal(t, "3", page[0].ID)
	})

	t.Run("short last page", func(t *testing.T) {
		page := Paginate(rows, 3, 2)
		require.Len(t, page, 1)
		assert.Equal(t, "5", page[0].ID)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		assert.Empty(t, Paginate(rows, 4, 2))
	})
}

func TestDashboard(t *testing.T) {
	repo := &fakeRepo{
		in:  []LedgerRow{{ID: "1", Date: "2024-01-10", ProductName: "Bolt", StockIn: 5}},
		out: []LedgerRow{{ID: "2", Date: "2024-01-12", ProductName: "Bolt", StockOut: 3}},
		req: []LedgerRow{{ID: "3", Date: "2024-01-11", ProductName: "Washer"}},
		stats: ProductStats{
			Total:      12,
			LowStock:   2,
			TotalValue: decimal.NewFromFloat(1234.5),
		},
		pending: 4,
	}
	svc := NewService(repo)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	dash, err := svc.Dashboard(context.Background(), Query{From: &from, To: &to})
	require.NoError(t, err)

	// The range is pushed down to the row sources.
	require.NotNil(t, repo.gotFrom)
	assert.True(t, repo.gotFrom.Equal(from))
	require.NotNil(t, repo.gotTo)

	// Summary counters are catalog-wide, independent of the range.
	assert.Equal(t, int64(12), dash.Summary.TotalProducts)
	assert.Equal(t, int64(2), dash.Summary.LowStockItems)
	assert.Equal(t, "1234.50", dash.Summary.TotalValue)
	assert.Equal(t, int64(4), dash.Summary.PendingRequests)

	// Default sort is newest first across all three sources.
	assert.Equal(t, 3, dash.Total)
	require.Len(t, dash.Rows, 3)
	assert.Equal(t, "out-2", dash.Rows[0].ID)
	assert.Equal(t, "req-3", dash.Rows[1].ID)
	assert.Equal(t, "in-1", dash.Rows[2].ID)
}

func TestDashboardSearchAndPagination(t *testing.T) {
	repo := &fakeRepo{
		in: []LedgerRow{
			{ID: "1", Date: "2024-01-01", ProductName: "Bolt"},
			{ID: "2", Date: "2024-01-02", ProductName: "Bolt"},
			{ID: "3", Date: "2024-01-03", ProductName: "Grease"},
		},
	}
	svc := NewService(repo)

	dash, err := svc.Dashboard(context.Background(), Query{Search: "bolt", Page: 2, Limit: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, dash.Total)
	require.Len(t, dash.Rows, 1)
	assert.Equal(t, "in-1", dash.Rows[0].ID)
	assert.Equal(t, 2, dash.Page)
	assert.Equal(t, 1, dash.Limit)
}

func TestLedgerIsUnpaginated(t *testing.T) {
	repo := &fakeRepo{
		in:  []LedgerRow{{ID: "1", Date: "2024-01-01"}},
		out: []LedgerRow{{ID: "2", Date: "2024-01-02"}},
	}
	svc := NewService(repo)

	rows, err := svc.Ledger(context.Background(), Query{})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
