package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToInt converts decoded JSON values to int using explicit type switching.
// Jamf's Classic API is inconsistent about numeric fields, so integers may
// arrive as float64, string, or a native integer type.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(v))
		return i
	case nil:
		return 0
	default:
		s := fmt.Sprintf("%v", v)
		i, _ := strconv.Atoi(s)
		return i
	}
}

// ToString converts decoded JSON values to a trimmed string. Nil becomes the
// empty string rather than the literal "<nil>".
func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// ToBool converts decoded JSON values to bool.
// It handles bool, numeric types (1=true), and strings ("1", "true").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int, int64, int32, float64, float32:
		return ToInt(v) == 1
	case string:
		return v == "1" || strings.EqualFold(strings.TrimSpace(v), "true")
	default:
		return false
	}
}
