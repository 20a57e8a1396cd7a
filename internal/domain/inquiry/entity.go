// internal/domain/inquiry/entity.go
package inquiry

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidName    = errors.New("inquiry: invalid name")
	ErrInvalidEmail   = errors.New("inquiry: invalid email")
	ErrInvalidMessage = errors.New("inquiry: invalid message")
)

// Inquiry is one contact-form submission.
type Inquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// New constructs an Inquiry with required fields validated.
func New(name, email, subject, message string, now time.Time) (Inquiry, error) {
	in := Inquiry{
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Subject:   strings.TrimSpace(subject),
		Message:   strings.TrimSpace(message),
		CreatedAt: now.UTC(),
	}
	if in.Name == "" {
		return Inquiry{}, ErrInvalidName
	}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return Inquiry{}, ErrInvalidEmail
	}
	if in.Message == "" {
		return Inquiry{}, ErrInvalidMessage
	}
	return in, nil
}
