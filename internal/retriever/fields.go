package retriever

// Field helpers for reading decoded JSON payloads. All of them tolerate
// nil maps, absent keys, and wrong types by returning the given default,
// which is what keeps every Parse function total.

// Str reads a string field or returns def.
func Str(m map[string]any, key, def string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return def
}

// Num reads a numeric field or returns def. JSON numbers decode as
// float64 but payloads assembled in-process may carry ints.
func Num(m map[string]any, key string, def float64) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

// Int reads a numeric field as an int or returns def.
func Int(m map[string]any, key string, def int) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// Bool reads a boolean field or returns def.
func Bool(m map[string]any, key string, def bool) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return def
}

// Map reads a nested object field. Absent or mistyped fields yield nil,
// which the other helpers treat like an empty object, so lookups chain
// safely to any depth.
func Map(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return nil
}

// List reads an array field. Absent or mistyped fields yield nil.
func List(m map[string]any, key string) []any {
	if v, ok := m[key].([]any); ok {
		return v
	}
	return nil
}

// StrList reads an array of strings, skipping elements of other types.
// Absent or mistyped fields yield def.
func StrList(m map[string]any, key string, def []string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return def
	}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
