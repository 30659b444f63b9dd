package normalize

import "fmt"

// Map is a JSON object as decoded by encoding/json. All normalization
// functions accept possibly-nil Maps and tolerate error-shaped responses
// such as {"error": "..."} anywhere an entity is expected.
type Map = map[string]any

// Str returns the value under key coerced to a string, or "" when the key
// is absent or null. Numbers and booleans are formatted, matching how the
// remote API mixes string and numeric fields.
func Str(m Map, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// FirstStr returns the first non-empty Str across keys.
func FirstStr(m Map, keys ...string) string {
	for _, key := range keys {
		if v := Str(m, key); v != "" {
			return v
		}
	}
	return ""
}

// Int returns the value under key as an int. JSON numbers decode as
// float64, so both representations are handled. Absent or non-numeric
// values yield 0.
func Int(m Map, key string) int {
	switch n := m[key].(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return 0
}

// Bool returns the value under key if it is a JSON boolean, else false.
func Bool(m Map, key string) bool {
	v, ok := m[key].(bool)
	return ok && v
}

// Child returns the nested object under key. Absent, null, or non-object
// values yield an empty Map so lookups can chain without nil checks.
func Child(m Map, key string) Map {
	if child, ok := m[key].(Map); ok {
		return child
	}
	return Map{}
}

// FirstChild returns the first key that holds a non-empty nested object.
func FirstChild(m Map, keys ...string) Map {
	for _, key := range keys {
		if child, ok := m[key].(Map); ok && len(child) > 0 {
			return child
		}
	}
	return Map{}
}

// List returns the array under key, or nil when absent or not an array.
func List(m Map, key string) []any {
	if list, ok := m[key].([]any); ok {
		return list
	}
	return nil
}

// FirstList returns the first key that holds a non-empty array. The remote
// API is inconsistent about collection envelope keys (events vs items,
// entries vs journal), so callers pass the known spellings in order.
func FirstList(m Map, keys ...string) []any {
	for _, key := range keys {
		if list, ok := m[key].([]any); ok && len(list) > 0 {
			return list
		}
	}
	return nil
}

// MapItems filters an array down to its object elements.
func MapItems(list []any) []Map {
	items := make([]Map, 0, len(list))
	for _, entry := range list {
		if m, ok := entry.(Map); ok {
			items = append(items, m)
		}
	}
	return items
}
