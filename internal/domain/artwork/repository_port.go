// internal/domain/artwork/repository_port.go
package artwork

import "context"

// Repository is the outbound port for artwork persistence.
//
// ListByCategory returns raw query results (equality match on category only);
// the defensive storageFolder filter and the createdAt sort live in the
// usecase so they stay testable against an in-memory fake.
type Repository interface {
	Create(ctx context.Context, a Artwork) (string, error)
	GetByID(ctx context.Context, id string) (*Artwork, error)
	ListByCategory(ctx context.Context, category Category) ([]Artwork, error)
	Update(ctx context.Context, id string, p Patch) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
