// internal/adapters/in/http/handlers/inquiry_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	usecase "fashionistic/internal/application/usecase"
	inqdom "fashionistic/internal/domain/inquiry"
)

// InquiryHandler serves the public contact form.
//
//	POST /contact  {name, email, subject, message}
type InquiryHandler struct {
	uc *usecase.InquiryUsecase
}

func NewInquiryHandler(uc *usecase.InquiryUsecase) http.Handler {
	return &InquiryHandler{uc: uc}
}

func (h *InquiryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "inquiry handler is not configured")
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var body struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid json body")
		return
	}

	id, err := h.uc.Submit(r.Context(), body.Name, body.Email, body.Subject, body.Message)
	if err != nil {
		switch {
		case errors.Is(err, inqdom.ErrInvalidName),
			errors.Is(err, inqdom.ErrInvalidEmail),
			errors.Is(err, inqdom.ErrInvalidMessage):
			badRequest(w, err.Error())
		default:
			writeErr(w, http.StatusBadGateway, "submit failed: "+err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}
