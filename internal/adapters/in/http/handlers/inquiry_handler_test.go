// internal/adapters/in/http/handlers/inquiry_handler_test.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usecase "fashionistic/internal/application/usecase"
	inqdom "fashionistic/internal/domain/inquiry"
)

type stubInquiryRepo struct {
	stored []inqdom.Inquiry
	err    error
}

func (s *stubInquiryRepo) Create(_ context.Context, in inqdom.Inquiry) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.stored = append(s.stored, in)
	return "inq-1", nil
}

func postContact(h http.Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body)))
	return rec
}

func TestInquiryHandlerAcceptsSubmission(t *testing.T) {
	repo := &stubInquiryRepo{}
	h := NewInquiryHandler(usecase.NewInquiryUsecase(repo, nil))

	rec := postContact(h, `{"name":"Jane","email":"jane@example.com","subject":"Commission","message":"Hello"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "inq-1", body["id"])
	require.Len(t, repo.stored, 1)
	assert.Equal(t, "Jane", repo.stored[0].Name)
}

func TestInquiryHandlerValidation(t *testing.T) {
	h := NewInquiryHandler(usecase.NewInquiryUsecase(&stubInquiryRepo{}, nil))

	cases := []string{
		`{"email":"jane@example.com","message":"Hello"}`,
		`{"name":"Jane","email":"nope","message":"Hello"}`,
		`{"name":"Jane","email":"jane@example.com"}`,
		`not json`,
	}
	for _, c := range cases {
		rec := postContact(h, c)
		assert.Equal(t, http.StatusBadRequest, rec.Code, c)
	}
}

func TestInquiryHandlerBackendFailure(t *testing.T) {
	repo := &stubInquiryRepo{err: errors.New("backend down")}
	h := NewInquiryHandler(usecase.NewInquiryUsecase(repo, nil))

	rec := postContact(h, `{"name":"Jane","email":"jane@example.com","message":"Hello"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestInquiryHandlerMethodNotAllowed(t *testing.T) {
	h := NewInquiryHandler(usecase.NewInquiryUsecase(&stubInquiryRepo{}, nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contact", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
