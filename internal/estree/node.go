package estree

import (
	"fmt"
	"math"
	"strconv"
)

// node is one decoded ESTree object. JSON and msgpack both decode into it;
// numbers arrive as float64/json.Number from JSON and as sized ints from
// msgpack.
type node map[string]any

func asNode(v any) node {
	switch m := v.(type) {
	case map[string]any:
		return node(m)
	case node:
		return m
	}
	return nil
}

func (n node) typ() string {
	s, _ := n["type"].(string)
	return s
}

func (n node) child(key string) node {
	return asNode(n[key])
}

// list returns the array under key; null elements stay nil (array holes).
func (n node) list(key string) []node {
	raw, ok := n[key].([]any)
	if !ok {
		return nil
	}
	out := make([]node, len(raw))
	for i, v := range raw {
		out[i] = asNode(v)
	}
	return out
}

func (n node) str(key string) string {
	s, _ := n[key].(string)
	return s
}

func (n node) flag(key string) bool {
	b, _ := n[key].(bool)
	return b
}

func (n node) has(key string) bool {
	v, ok := n[key]
	return ok && v != nil
}

// number converts any decoded numeric value to int64.
func number(v any) (int64, bool) {
	switch x := v.(type) {
	case float64:
		if x != math.Trunc(x) {
			return 0, false
		}
		return int64(x), true
	case float32:
		return int64(x), x == float32(math.Trunc(float64(x)))
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), x <= math.MaxInt64
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), x <= math.MaxInt64 //nolint:gosec // checked
	case fmt.Stringer:
		i, err := strconv.ParseInt(x.String(), 10, 64)
		return i, err == nil
	}
	return 0, false
}

// rawLiteral renders a literal value when the document has no "raw".
func rawLiteral(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(x)
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	if i, ok := number(v); ok {
		return strconv.FormatInt(i, 10)
	}
	return fmt.Sprint(v)
}
