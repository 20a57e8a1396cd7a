// internal/application/usecase/inquiry_usecase.go
package usecase

import (
	"context"
	"errors"
	"log"

	inqdom "fashionistic/internal/domain/inquiry"
)

var (
	ErrInquiryInvalidArgument = errors.New("inquiry_usecase: invalid argument")
)

// InquiryUsecase stores contact-form submissions and notifies the gallery.
type InquiryUsecase struct {
	repo   inqdom.Repository
	mailer inqdom.Mailer
	clock  Clock
}

// NewInquiryUsecase wires the usecase. mailer may be nil (mail not
// configured); submissions are then stored without notification.
func NewInquiryUsecase(repo inqdom.Repository, mailer inqdom.Mailer) *InquiryUsecase {
	return &InquiryUsecase{repo: repo, mailer: mailer, clock: systemClock{}}
}

// NewInquiryUsecaseWithClock is useful for tests.
func NewInquiryUsecaseWithClock(repo inqdom.Repository, mailer inqdom.Mailer, clock Clock) *InquiryUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &InquiryUsecase{repo: repo, mailer: mailer, clock: clock}
}

// Submit validates, persists and (best-effort) mails one inquiry.
// The stored record is the source of truth; a mail failure is logged only.
func (uc *InquiryUsecase) Submit(ctx context.Context, name, email, subject, message string) (string, error) {
	if uc == nil || uc.repo == nil {
		return "", errors.New("inquiry_usecase: not configured")
	}

	in, err := inqdom.New(name, email, subject, message, uc.clock.Now())
	if err != nil {
		return "", err
	}

	id, err := uc.repo.Create(ctx, in)
	if err != nil {
		return "", err
	}
	in.ID = id

	if uc.mailer != nil {
		if merr := uc.mailer.Send(ctx, in); merr != nil {
			log.Printf("[inquiry_usecase] notification mail failed id=%s err=%v", id, merr)
		}
	}

	return id, nil
}
