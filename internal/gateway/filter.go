package gateway

import (
	"fmt"
	"strconv"
	"strings"
)

type filterOp int

const (
	opEq filterOp = iota
	opGT
	opLT
	opGTE
	opLTE
	opLike
	opStartsWith
	opEndsWith
)

// Longest suffixes first so _gte is never read as _gt plus a stray 'e'.
var opSuffixes = []struct {
	suffix string
	op     filterOp
}{
	{"_startsWith", opStartsWith},
	{"_endsWith", opEndsWith},
	{"_like", opLike},
	{"_gte", opGTE},
	{"_lte", opLTE},
	{"_gt", opGT},
	{"_lt", opLT},
	{"_eq", opEq},
}

// predicate is one parsed filter clause: <prop>_<op>=<value>.
type predicate struct {
	prop  string
	op    filterOp
	value string
}

// parsePredicate splits a query key of the form <propName>_<operatorSuffix>.
// A key without a recognized suffix is treated as an equality match on the
// whole key.
func parsePredicate(key, value string) (predicate, error) {
	for _, s := range opSuffixes {
		if !strings.HasSuffix(key, s.suffix) {
			continue
		}
		prop := strings.TrimSuffix(key, s.suffix)
		if prop == "" {
			return predicate{}, fmt.Errorf("filter key %q has no property name", key)
		}
		return predicate{prop: prop, op: s.op, value: value}, nil
	}
	return predicate{prop: key, op: opEq, value: value}, nil
}

// matches reports whether the row satisfies the predicate. Ordering
// operators coerce both sides to numbers and never match when either side
// is not numeric; the string operators compare case-insensitively.
func (p predicate) matches(row Row) bool {
	raw, ok := row[p.prop]
	if !ok {
		return false
	}
	switch p.op {
	case opGT, opLT, opGTE, opLTE:
		lhs, err := toNumber(raw)
		if err != nil {
			return false
		}
		rhs, err := strconv.ParseFloat(p.value, 64)
		if err != nil {
			return false
		}
		switch p.op {
		case opGT:
			return lhs > rhs
		case opLT:
			return lhs < rhs
		case opGTE:
			return lhs >= rhs
		default:
			return lhs <= rhs
		}
	case opLike:
		return strings.Contains(strings.ToLower(stringify(raw)), strings.ToLower(p.value))
	case opStartsWith:
		return strings.HasPrefix(strings.ToLower(stringify(raw)), strings.ToLower(p.value))
	case opEndsWith:
		return strings.HasSuffix(strings.ToLower(stringify(raw)), strings.ToLower(p.value))
	default:
		return stringify(raw) == p.value
	}
}

// stringify renders a JSON-decoded value the way the wire format would.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func toNumber(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case string:
		return strconv.ParseFloat(t, 64)
	default:
		return 0, fmt.Errorf("value %v is not numeric", v)
	}
}
