package repository

// Driver value coercions shared by the typed repositories. The SQLite
// driver hands back int64, float64, string, []byte, or nil.

func asInt64(v any) int64 {
	switch val := v.(type) {
	case int64:
		return val
	case int:
		return int64(val)
	case float64:
		return int64(val)
	}
	return 0
}

func asInt(v any) int {
	return int(asInt64(v))
}

func asString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	}
	return ""
}
