// Package filter defines the filter condition model shared by the client
// contract and the server-side query translator.
package filter

import (
	"encoding/json"
	"strconv"
	"time"
)

// Operator identifies the comparison kind of a single condition.
type Operator string

const (
	Equal          Operator = "="
	NotEqual       Operator = "!="
	Greater        Operator = ">"
	Less           Operator = "<"
	GreaterOrEqual Operator = ">="
	LessOrEqual    Operator = "<="
	Contains       Operator = "contains"
	NotContains    Operator = "not contains"
	StartsWith     Operator = "startsWith"
	EndsWith       Operator = "endsWith"
)

// Condition represents one filter predicate: field, operator, value.
type Condition struct {
	Field    string   `json:"field"`
	Operator Operator `json:"operator"`
	Value    any      `json:"value"`
}

// Empty reports whether the condition carries no usable predicate.
// A condition with an empty field or an empty/undefined value is treated
// as "not yet specified" and must be ignored, not rejected.
func (c Condition) Empty() bool {
	if c.Field == "" || c.Value == nil {
		return true
	}
	if s, ok := c.Value.(string); ok && s == "" {
		return true
	}
	return false
}

// KnownOperator reports whether op is one of the recognized operators.
func KnownOperator(op Operator) bool {
	switch op {
	case Equal, NotEqual, Greater, Less, GreaterOrEqual, LessOrEqual,
		Contains, NotContains, StartsWith, EndsWith:
		return true
	}
	return false
}

// Ranged reports whether op is a range comparison (>, <, >=, <=).
func Ranged(op Operator) bool {
	switch op {
	case Greater, Less, GreaterOrEqual, LessOrEqual:
		return true
	}
	return false
}

// Normalize drops empty conditions and conditions with unknown operators.
// Malformed input degrades to a smaller condition list, never an error.
func Normalize(conds []Condition) []Condition {
	out := make([]Condition, 0, len(conds))
	for _, c := range conds {
		if c.Empty() || !KnownOperator(c.Operator) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ParseList decodes a JSON-encoded condition array as delivered in the
// "filters" query parameter. Invalid JSON means "no filters".
func ParseList(raw string) []Condition {
	if raw == "" {
		return nil
	}
	var conds []Condition
	if err := json.Unmarshal([]byte(raw), &conds); err != nil {
		return nil
	}
	return Normalize(conds)
}

// Date filter values arrive in one of two textual layouts.
var dateLayouts = []string{"2006-01-02", "02-01-2006"}

// ParseDate parses a date filter value. Both yyyy-MM-dd and dd-MM-yyyy
// are accepted; anything else reports ok=false so the caller can drop
// the single condition.
func ParseDate(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		if t, isTime := v.(time.Time); isTime {
			return t, true
		}
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NumericValue attempts numeric coercion of a filter value.
func NumericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}
