// internal/adapters/out/firestore/docutil.go
package firestore

import (
	"strings"
	"time"
)

// Loose decoding helpers shared by the repositories in this package.
// Documents written by earlier versions of the admin UI are not guaranteed to
// carry consistent field types, so decoding tolerates missing keys and
// numeric-type drift instead of failing the whole read.

func getStr(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func getBool(data map[string]any, key string) bool {
	if v, ok := data[key].(bool); ok {
		return v
	}
	return false
}

// getFloat accepts float64 and int64 (Firestore stores whole numbers as int64).
func getFloat(data map[string]any, key string) (float64, bool) {
	switch v := data[key].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	}
	return 0, false
}

func getInt(data map[string]any, key string) (int, bool) {
	switch v := data[key].(type) {
	case int64:
		return int(v), true
	case int:
		return v, true
	case float64:
		return int(v), true
	}
	return 0, false
}

func getTime(data map[string]any, key string) (time.Time, bool) {
	if v, ok := data[key].(time.Time); ok {
		return v.UTC(), !v.IsZero()
	}
	return time.Time{}, false
}
