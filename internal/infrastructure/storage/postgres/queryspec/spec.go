// Package queryspec translates client filter/search/sort descriptions
// into SQL query fragments. Every entity declares a closed mapping from
// public field names to SQL expressions; nothing client-supplied
// reaches the SQL text, only bind values.
package queryspec

import (
	"fmt"

	"github.com/Masterminds/squirrel"

	"stockroom/internal/domain/filter"
)

// Spec is the per-entity description of queryable fields.
type Spec struct {
	// Columns maps public field names to SQL expressions, including
	// joined columns (e.g. "categoryName" -> "c.name").
	Columns map[string]string

	// Search lists the SQL expressions covered by free-text search.
	Search []string

	// Dates marks public fields whose filter values are calendar dates.
	Dates map[string]bool

	// DefaultOrder is the fallback order clause, e.g. "p.name ASC".
	// Used whenever the requested sort field is not in Columns.
	DefaultOrder string
}

// Where combines filter conditions (AND) with free-text search (OR
// across the search columns). Unusable conditions are dropped, never
// rejected: a record must satisfy all surviving filters and match the
// search term in at least one searchable column.
func (s Spec) Where(conds []filter.Condition, search string) squirrel.Sqlizer {
	and := squirrel.And{}

	for _, c := range filter.Normalize(conds) {
		col, ok := s.Columns[c.Field]
		if !ok {
			continue
		}
		pred, ok := s.predicate(col, c)
		if !ok {
			continue
		}
		and = append(and, pred)
	}

	if search != "" && len(s.Search) > 0 {
		or := make(squirrel.Or, 0, len(s.Search))
		pattern := "%" + search + "%"
		for _, col := range s.Search {
			or = append(or, squirrel.ILike{col: pattern})
		}
		and = append(and, or)
	}

	if len(and) == 0 {
		return nil
	}
	return and
}

// predicate builds one SQL predicate for a single condition. The second
// return is false when the condition must be dropped (unparsable date).
func (s Spec) predicate(col string, c filter.Condition) (squirrel.Sqlizer, bool) {
	value := c.Value

	if s.Dates[c.Field] {
		t, ok := filter.ParseDate(c.Value)
		if !ok {
			return nil, false
		}
		value = t
	} else if filter.Ranged(c.Operator) {
		// Range operators coerce to numbers; on coercion failure the
		// raw string is compared as-is. Established behavior, kept.
		if n, ok := filter.NumericValue(c.Value); ok {
			value = n
		}
	}

	switch c.Operator {
	case filter.Equal:
		return squirrel.Eq{col: value}, true
	case filter.NotEqual:
		return squirrel.NotEq{col: value}, true
	case filter.Greater:
		return squirrel.Gt{col: value}, true
	case filter.Less:
		return squirrel.Lt{col: value}, true
	case filter.GreaterOrEqual:
		return squirrel.GtOrEq{col: value}, true
	case filter.LessOrEqual:
		return squirrel.LtOrEq{col: value}, true
	case filter.Contains:
		return squirrel.ILike{col: fmt.Sprintf("%%%v%%", value)}, true
	case filter.NotContains:
		return squirrel.NotILike{col: fmt.Sprintf("%%%v%%", value)}, true
	case filter.StartsWith:
		return squirrel.ILike{col: fmt.Sprintf("%v%%", value)}, true
	case filter.EndsWith:
		return squirrel.ILike{col: fmt.Sprintf("%%%v", value)}, true
	}
	return nil, false
}

// OrderBy resolves the public sort field to an order clause. Unknown
// fields fall back to the entity default and never error.
func (s Spec) OrderBy(field, order string) string {
	col, ok := s.Columns[field]
	if !ok {
		return s.DefaultOrder
	}
	dir := "ASC"
	if order == "desc" {
		dir = "DESC"
	}
	return col + " " + dir
}
