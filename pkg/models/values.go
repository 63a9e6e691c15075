// Package models holds shared value types passed between services,
// pipelines, and the HTTP surface.
package models

// JSONMap is the dynamic payload type used by extra/metadata/attributes
// columns. Schema evolution lives in these accessors, not in struct types:
// callers must never assume a key is present or statically typed.
type JSONMap = map[string]interface{}

// GetString returns m[key] if it is a string.
func GetString(m JSONMap, key string) (string, bool) {
	if m == nil {
		return "", false
	}
	v, ok := m[key].(string)
	return v, ok
}

// GetFloat returns m[key] coerced to float64. JSON numbers decode as
// float64; ints stored by Go code are coerced too.
func GetFloat(m JSONMap, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetInt returns m[key] truncated to int.
func GetInt(m JSONMap, key string) (int, bool) {
	f, ok := GetFloat(m, key)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// GetBool returns m[key] if it is a bool.
func GetBool(m JSONMap, key string) (bool, bool) {
	if m == nil {
		return false, false
	}
	v, ok := m[key].(bool)
	return v, ok
}

// GetMap returns m[key] if it is a nested object.
func GetMap(m JSONMap, key string) (JSONMap, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m[key].(map[string]interface{})
	return v, ok
}

// GetStrings returns m[key] as a string slice, tolerating both []string
// (written by Go code) and []interface{} (decoded from JSON).
func GetStrings(m JSONMap, key string) ([]string, bool) {
	if m == nil {
		return nil, false
	}
	switch v := m[key].(type) {
	case []string:
		return v, true
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// Merge returns a copy of base with overlay's keys applied on top.
// Nil maps are treated as empty.
func Merge(base, overlay JSONMap) JSONMap {
	out := make(JSONMap, len(base)+len(overlay))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}
