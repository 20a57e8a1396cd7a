// internal/adapters/out/gcs/common/gcs_repository.go
package common

import (
	"fmt"
	"net/url"
	"strings"
)

// PublicURL builds a public GCS URL for bucket/objectPath.
// Leading "/" on objectPath is removed.
func PublicURL(bucket, objectPath string) string {
	obj := strings.TrimLeft(strings.TrimSpace(objectPath), "/")
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", strings.TrimSpace(bucket), obj)
}

// ParseObjectURL parses a public GCS URL and returns (bucket, objectPath, ok).
// Accepted hosts:
//   - storage.googleapis.com
//   - storage.cloud.google.com
func ParseObjectURL(u string) (string, string, bool) {
	parsed, err := url.Parse(strings.TrimSpace(u))
	if err != nil {
		return "", "", false
	}

	host := strings.ToLower(parsed.Host)
	if host != "storage.googleapis.com" && host != "storage.cloud.google.com" {
		return "", "", false
	}

	p := strings.TrimLeft(parsed.EscapedPath(), "/")
	parts := strings.SplitN(p, "/", 2)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}

	objectPath, err := url.PathUnescape(parts[1])
	if err != nil {
		return "", "", false
	}
	return parts[0], objectPath, true
}

// SanitizeFilename strips path separators and whitespace from an uploaded
// filename so it is safe inside an object path.
func SanitizeFilename(name string) string {
	n := strings.TrimSpace(name)
	if i := strings.LastIndexAny(n, "/\\"); i >= 0 {
		n = n[i+1:]
	}
	n = strings.ReplaceAll(n, " ", "_")
	if n == "" {
		n = "upload"
	}
	return n
}
