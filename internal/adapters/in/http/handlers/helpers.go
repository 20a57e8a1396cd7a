// internal/adapters/in/http/handlers/helpers.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"fashionistic/internal/adapters/in/http/middleware"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeErr(w, http.StatusBadRequest, msg)
}

func notFound(w http.ResponseWriter) {
	writeErr(w, http.StatusNotFound, "not_found")
}

func methodNotAllowed(w http.ResponseWriter) {
	writeErr(w, http.StatusMethodNotAllowed, "method_not_allowed")
}

// readSessionID resolves the cart session: X-Session-Id header first,
// then ?sessionId= as a fallback.
func readSessionID(r *http.Request) string {
	if v := strings.TrimSpace(r.Header.Get("X-Session-Id")); v != "" {
		return v
	}
	return strings.TrimSpace(r.URL.Query().Get("sessionId"))
}

// lastPathSegment returns the trailing non-empty path element.
func lastPathSegment(path string) string {
	p := strings.TrimRight(path, "/")
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}

// parsePrice interprets a form price field: empty or non-positive means
// "no price" (nil), matching the stored-record semantics.
func parsePrice(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return nil
	}
	return &v
}

func parseBool(raw string) bool {
	v, _ := strconv.ParseBool(strings.TrimSpace(raw))
	return v
}

// adminActor formats the authenticated admin for mutation audit logs.
func adminActor(ctx context.Context) string {
	uid, ok := middleware.UIDFromContext(ctx)
	if !ok {
		return "unknown"
	}
	if email, ok := middleware.EmailFromContext(ctx); ok {
		return uid + " (" + email + ")"
	}
	return uid
}
