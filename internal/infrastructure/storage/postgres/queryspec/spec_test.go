package queryspec

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom/internal/domain/filter"
)

func testSpec() Spec {
	return Spec{
		Columns: map[string]string{
			"name":         "p.name",
			"stock":        "p.stock",
			"date":         "p.date",
			"categoryName": "c.name",
		},
		Search:       []string{"p.name", "p.part_number"},
		Dates:        map[string]bool{"date": true},
		DefaultOrder: "p.name ASC",
	}
}

func renderWhere(t *testing.T, s Spec, conds []filter.Condition, search string) (string, []any) {
	t.Helper()
	w := s.Where(conds, search)
	require.NotNil(t, w)
	sql, args, err := w.ToSql()
	require.NoError(t, err)
	return sql, args
}

func TestWhereNilWhenNothingUsable(t *testing.T) {
	s := testSpec()

	assert.Nil(t, s.Where(nil, ""))
	assert.Nil(t, s.Where([]filter.Condition{
		{Field: "unknown", Operator: filter.Equal, Value: "x"},
		{Field: "name", Operator: filter.Equal, Value: ""},
	}, ""))
}

func TestWhereCombinesFiltersWithAnd(t *testing.T) {
	s := testSpec()
	sql, args := renderWhere(t, s, []filter.Condition{
		{Field: "name", Operator: filter.Contains, Value: "bolt"},
		{Field: "stock", Operator: filter.Greater, Value: float64(10)},
	}, "")

	assert.Contains(t, sql, "p.name ILIKE ?")
	assert.Contains(t, sql, "p.stock > ?")
	assert.Contains(t, sql, " AND ")
	assert.Equal(t, []any{"%bolt%", float64(10)}, args)
}

func TestWhereSearchIsOrAcrossColumns(t *testing.T) {
	s := testSpec()
	sql, args := renderWhere(t, s, []filter.Condition{
		{Field: "stock", Operator: filter.GreaterOrEqual, Value: float64(1)},
	}, "hex")

	assert.Contains(t, sql, "p.name ILIKE ? OR p.part_number ILIKE ?")
	assert.Contains(t, args, "%hex%")
	// Filters and search must both apply.
	assert.Contains(t, sql, "p.stock >= ?")
}

func TestWhereDateConditions(t *testing.T) {
	s := testSpec()

	t.Run("both layouts parse", func(t *testing.T) {
		for _, raw := range []string{"2024-03-15", "15-03-2024"} {
			sql, _ := renderWhere(t, s, []filter.Condition{
				{Field: "date", Operator: filter.GreaterOrEqual, Value: raw},
			}, "")
			assert.Contains(t, sql, "p.date >= ?")
		}
	})

	t.Run("unparsable date drops the condition only", func(t *testing.T) {
		sql, _ := renderWhere(t, s, []filter.Condition{
			{Field: "date", Operator: filter.Equal, Value: "not-a-date"},
			{Field: "name", Operator: filter.Equal, Value: "bolt"},
		}, "")
		assert.NotContains(t, sql, "p.date")
		assert.Contains(t, sql, "p.name = ?")
	})
}

func TestWhereRangedCoercion(t *testing.T) {
	s := testSpec()

	t.Run("numeric string coerces", func(t *testing.T) {
		_, args := renderWhere(t, s, []filter.Condition{
			{Field: "stock", Operator: filter.Less, Value: "25"},
		}, "")
		assert.Equal(t, []any{float64(25)}, args)
	})

	t.Run("non-numeric string compares raw", func(t *testing.T) {
		_, args := renderWhere(t, s, []filter.Condition{
			{Field: "stock", Operator: filter.Less, Value: "low"},
		}, "")
		assert.Equal(t, []any{"low"}, args)
	})
}

func TestWhereJoinedColumnAlias(t *testing.T) {
	s := testSpec()
	sql, _ := renderWhere(t, s, []filter.Condition{
		{Field: "categoryName", Operator: filter.Equal, Value: "Fasteners"},
	}, "")
	assert.Contains(t, sql, "c.name = ?")
}

func TestWhereOperators(t *testing.T) {
	s := testSpec()
	cases := []struct {
		op   filter.Operator
		frag string
		arg  any
	}{
		{filter.Equal, "p.name = ?", "v"},
		{filter.NotEqual, "p.name <> ?", "v"},
		{filter.Contains, "p.name ILIKE ?", "%v%"},
		{filter.NotContains, "p.name NOT ILIKE ?", "%v%"},
		{filter.StartsWith, "p.name ILIKE ?", "v%"},
		{filter.EndsWith, "p.name ILIKE ?", "%v"},
	}
	for _, tc := range cases {
		t.Run(string(tc.op), func(t *testing.T) {
			sql, args := renderWhere(t, s, []filter.Condition{
				{Field: "name", Operator: tc.op, Value: "v"},
			}, "")
			assert.Contains(t, sql, tc.frag)
			assert.Equal(t, []any{tc.arg}, args)
		})
	}
}

func TestOrderBy(t *testing.T) {
	s := testSpec()

	assert.Equal(t, "p.stock ASC", s.OrderBy("stock", "asc"))
	assert.Equal(t, "p.stock DESC", s.OrderBy("stock", "desc"))
	assert.Equal(t, "p.stock ASC", s.OrderBy("stock", "sideways"))
	assert.Equal(t, "p.name ASC", s.OrderBy("nope", "desc"))
	assert.Equal(t, "p.name ASC", s.OrderBy("", ""))
}

// Guard against accidental placeholder-format drift: the repos build
// with Dollar placeholders, the fragments here use squirrel's default.
func TestWhereWorksWithDollarPlaceholders(t *testing.T) {
	s := testSpec()
	w := s.Where([]filter.Condition{
		{Field: "name", Operator: filter.Equal, Value: "x"},
	}, "")
	sql, _, err := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("1").From("products p").Where(w).ToSql()
	require.NoError(t, err)
	assert.Contains(t, sql, "p.name = $1")
}
