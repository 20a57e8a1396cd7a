// internal/adapters/out/mail/contact_mailer.go
package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	inqdom "fashionistic/internal/domain/inquiry"
)

// ContactMailer implements inquiry.Mailer: it forwards a contact-form
// submission to the gallery inbox.
type ContactMailer struct {
	Client *SendGridClient
	From   string
	To     string
}

func NewContactMailer(client *SendGridClient, from, to string) *ContactMailer {
	return &ContactMailer{
		Client: client,
		From:   strings.TrimSpace(from),
		To:     strings.TrimSpace(to),
	}
}

var _ inqdom.Mailer = (*ContactMailer)(nil)

func (m *ContactMailer) Send(ctx context.Context, in inqdom.Inquiry) error {
	if m == nil || m.Client == nil {
		return errors.New("contact_mailer: mail client is nil")
	}
	if m.From == "" || m.To == "" {
		return errors.New("contact_mailer: from/to address not configured")
	}

	subject := in.Subject
	if subject == "" {
		subject = "New contact inquiry"
	}

	body := fmt.Sprintf(
		"New inquiry from the contact form\n\nName: %s\nEmail: %s\nSubject: %s\n\n%s\n",
		in.Name, in.Email, in.Subject, in.Message,
	)

	return m.Client.Send(ctx, m.From, m.To, subject, body)
}
