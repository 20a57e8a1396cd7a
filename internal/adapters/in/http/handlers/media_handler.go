// internal/adapters/in/http/handlers/media_handler.go
package handlers

import (
	"net/http"

	usecase "fashionistic/internal/application/usecase"
)

// SliderHandler serves the public hero-carousel read.
//
//	GET /slider
type SliderHandler struct {
	uc *usecase.MediaUsecase
}

func NewSliderHandler(uc *usecase.MediaUsecase) http.Handler {
	return &SliderHandler{uc: uc}
}

func (h *SliderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "slider handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"slider": h.uc.ListSlider(r.Context())})
}

// VideoHandler serves the public videos-page read.
//
//	GET /videos
type VideoHandler struct {
	uc *usecase.MediaUsecase
}

func NewVideoHandler(uc *usecase.MediaUsecase) http.Handler {
	return &VideoHandler{uc: uc}
}

func (h *VideoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "video handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"videos": h.uc.ListVideos(r.Context())})
}
