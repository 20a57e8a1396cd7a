// internal/application/usecase/ports.go
package usecase

import (
	"context"
	"io"
	"time"
)

// Clock provides current time (for testability).
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Upload is one incoming binary from a multipart form.
type Upload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// AssetStorage is the outbound port for object storage.
//
// Upload returns a publicly resolvable URL; a failed upload must abort the
// dependent document write. Delete is best-effort cleanup: callers log
// failures instead of propagating them.
type AssetStorage interface {
	Upload(ctx context.Context, folder, filename, contentType string, src io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}
