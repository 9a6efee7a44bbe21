package property

import (
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Best-effort coercion over untyped document values. Nothing here returns an
// error: a value that cannot be read as the wanted type collapses to the zero
// convention (empty string, 0, empty slice, false).

func asString(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

func asNumber(v interface{}) float64 {
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case float32:
		n = float64(t)
	case int:
		n = float64(t)
	case int32:
		n = float64(t)
	case int64:
		n = float64(t)
	case primitive.Decimal128:
		parsed, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return 0
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0
		}
		n = parsed
	default:
		return 0
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	return n
}

func asInt(v interface{}) int {
	return int(asNumber(v))
}

func asBool(v interface{}) bool {
	b, ok := v.(bool)
	if !ok {
		return false
	}
	return b
}

func asDoc(v interface{}) bson.M {
	switch t := v.(type) {
	case bson.M:
		return t
	case bson.D:
		return t.Map()
	case map[string]interface{}:
		return t
	default:
		return bson.M{}
	}
}

func asSlice(v interface{}) []interface{} {
	switch t := v.(type) {
	case primitive.A:
		return t
	case []interface{}:
		return t
	case []string:
		out := make([]interface{}, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	default:
		return nil
	}
}

// asStringSlice drops entries that are not non-empty strings, keeping order.
func asStringSlice(v interface{}) []string {
	raw := asSlice(v)
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
