// internal/application/usecase/inquiry_usecase_test.go
package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inqdom "fashionistic/internal/domain/inquiry"
)

func TestInquirySubmitStoresAndMails(t *testing.T) {
	repo := &fakeInquiryRepo{}
	mailer := &fakeMailer{}
	uc := NewInquiryUsecaseWithClock(repo, mailer, fixedClock{t: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)})

	id, err := uc.Submit(context.Background(), "Jane", "jane@example.com", "Commission", "Is the blue piece available?")
	require.NoError(t, err)
	assert.Equal(t, "inq-1", id)

	require.Len(t, repo.stored, 1)
	assert.Equal(t, "Jane", repo.stored[0].Name)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "inq-1", mailer.sent[0].ID, "the mail carries the stored id")
}

func TestInquirySubmitValidation(t *testing.T) {
	uc := NewInquiryUsecase(&fakeInquiryRepo{}, nil)
	ctx := context.Background()

	_, err := uc.Submit(ctx, "", "jane@example.com", "", "hello")
	assert.ErrorIs(t, err, inqdom.ErrInvalidName)

	_, err = uc.Submit(ctx, "Jane", "not-an-email", "", "hello")
	assert.ErrorIs(t, err, inqdom.ErrInvalidEmail)

	_, err = uc.Submit(ctx, "Jane", "jane@example.com", "", "  ")
	assert.ErrorIs(t, err, inqdom.ErrInvalidMessage)
}

func TestInquirySubmitMailFailureIsNotFatal(t *testing.T) {
	repo := &fakeInquiryRepo{}
	mailer := &fakeMailer{err: errors.New("sendgrid down")}
	uc := NewInquiryUsecase(repo, mailer)

	id, err := uc.Submit(context.Background(), "Jane", "jane@example.com", "", "hello")
	require.NoError(t, err, "the stored record is the source of truth")
	assert.NotEmpty(t, id)
	assert.Len(t, repo.stored, 1)
}

func TestInquirySubmitWithoutMailer(t *testing.T) {
	repo := &fakeInquiryRepo{}
	uc := NewInquiryUsecase(repo, nil)

	_, err := uc.Submit(context.Background(), "Jane", "jane@example.com", "", "hello")
	require.NoError(t, err)
	assert.Len(t, repo.stored, 1)
}

func TestInquirySubmitStoreFailure(t *testing.T) {
	repo := &fakeInquiryRepo{err: errors.New("backend down")}
	mailer := &fakeMailer{}
	uc := NewInquiryUsecase(repo, mailer)

	_, err := uc.Submit(context.Background(), "Jane", "jane@example.com", "", "hello")
	require.Error(t, err)
	assert.Empty(t, mailer.sent, "no notification for an unstored inquiry")
}
