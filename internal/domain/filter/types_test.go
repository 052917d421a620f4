package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDropsEmptyConditions(t *testing.T) {
	conds := []Condition{
		{Field: "name", Operator: Contains, Value: "bolt"},
		{Field: "", Operator: Equal, Value: "x"},
		{Field: "stock", Operator: Greater, Value: nil},
		{Field: "status", Operator: Equal, Value: ""},
		{Field: "stock", Operator: "between", Value: 5},
	}

	out := Normalize(conds)

	require.Len(t, out, 1)
	assert.Equal(t, "name", out[0].Field)
}

func TestNormalizeKeepsAllKnownOperators(t *testing.T) {
	ops := []Operator{
		Equal, NotEqual, Greater, Less, GreaterOrEqual, LessOrEqual,
		Contains, NotContains, StartsWith, EndsWith,
	}
	conds := make([]Condition, 0, len(ops))
	for _, op := range ops {
		conds = append(conds, Condition{Field: "f", Operator: op, Value: "v"})
	}

	assert.Len(t, Normalize(conds), len(ops))
}

func TestParseList(t *testing.T) {
	t.Run("valid json", func(t *testing.T) {
		out := ParseList(`[{"field":"stock","operator":">","value":10}]`)
		require.Len(t, out, 1)
		assert.Equal(t, Greater, out[0].Operator)
	})

	t.Run("invalid json means no filters", func(t *testing.T) {
		assert.Nil(t, ParseList(`{"not":"an array"`))
	})

	t.Run("empty string", func(t *testing.T) {
		assert.Nil(t, ParseList(""))
	})
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("iso layout", func(t *testing.T) {
		got, ok := ParseDate("2024-03-15")
		require.True(t, ok)
		assert.True(t, got.Equal(want))
	})

	t.Run("day-first layout", func(t *testing.T) {
		got, ok := ParseDate("15-03-2024")
		require.True(t, ok)
		assert.True(t, got.Equal(want))
	})

	t.Run("garbage is reported, not parsed", func(t *testing.T) {
		_, ok := ParseDate("next tuesday")
		assert.False(t, ok)
	})

	t.Run("time value passes through", func(t *testing.T) {
		got, ok := ParseDate(want)
		require.True(t, ok)
		assert.True(t, got.Equal(want))
	})
}

func TestNumericValue(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"float64", 12.5, 12.5, true},
		{"int", 7, 7, true},
		{"numeric string", "42", 42, true},
		{"plain string", "abc", 0, false},
		{"nil", nil, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NumericValue(tc.in)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
