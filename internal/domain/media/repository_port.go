// internal/domain/media/repository_port.go
package media

import "context"

// Repository is the outbound port for slider/video media persistence.
// ListByFolder returns raw equality-query results; ordering is applied
// in the usecase (no composite index on the backend).
type Repository interface {
	Create(ctx context.Context, m Media) (string, error)
	GetByID(ctx context.Context, id string) (*Media, error)
	ListByFolder(ctx context.Context, folder string) ([]Media, error)
	Delete(ctx context.Context, id string) error
}
