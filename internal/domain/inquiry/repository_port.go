// internal/domain/inquiry/repository_port.go
package inquiry

import "context"

// Repository is the outbound port for inquiry persistence.
type Repository interface {
	Create(ctx context.Context, in Inquiry) (string, error)
}

// Mailer notifies the gallery about a new inquiry.
// Sending is best-effort; the stored record is the source of truth.
type Mailer interface {
	Send(ctx context.Context, in Inquiry) error
}
