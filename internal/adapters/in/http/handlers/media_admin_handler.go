// internal/adapters/in/http/handlers/media_admin_handler.go
package handlers

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	usecase "fashionistic/internal/application/usecase"
)

// Upload size caps, mirroring the admin form rules.
const (
	maxSliderFileBytes = 10 << 20  // 10MB images
	maxVideoFileBytes  = 100 << 20 // 100MB videos
)

// MediaAdminHandler serves the admin slider/video mutations.
//
//	POST   /admin/slider        (multipart: title/artist/medium + "file", <=10MB)
//	DELETE /admin/slider/{id}
//	POST   /admin/videos        (multipart: title/artist/medium + "file", <=100MB)
//	DELETE /admin/videos/{id}
type MediaAdminHandler struct {
	uc *usecase.MediaUsecase
}

func NewMediaAdminHandler(uc *usecase.MediaUsecase) http.Handler {
	return &MediaAdminHandler{uc: uc}
}

func (h *MediaAdminHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "media admin handler is not configured")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")
	isSlider := strings.Contains(path, "/slider")
	isVideos := strings.Contains(path, "/videos")

	switch {
	case r.Method == http.MethodPost && isSlider && strings.HasSuffix(path, "/slider"):
		h.handleAdd(w, r, true)
	case r.Method == http.MethodPost && isVideos && strings.HasSuffix(path, "/videos"):
		h.handleAdd(w, r, false)
	case r.Method == http.MethodDelete && (isSlider || isVideos):
		h.handleDelete(w, r, lastPathSegment(path))
	default:
		methodNotAllowed(w)
	}
}

func (h *MediaAdminHandler) handleAdd(w http.ResponseWriter, r *http.Request, slider bool) {
	// Validation happens before any backend call.
	limit := int64(maxVideoFileBytes)
	if slider {
		limit = maxSliderFileBytes
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		badRequest(w, "invalid multipart form")
		return
	}

	f, fh, err := r.FormFile("file")
	if err != nil {
		badRequest(w, "file is required")
		return
	}
	defer f.Close()

	if exceedsLimit(fh, limit) {
		if slider {
			badRequest(w, "file size must be less than 10MB")
		} else {
			badRequest(w, "video file size must be less than 100MB")
		}
		return
	}

	in := usecase.AddMediaInput{
		Title:  r.FormValue("title"),
		Artist: r.FormValue("artist"),
		Medium: r.FormValue("medium"),
		File: usecase.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Content:     f,
		},
	}

	var id string
	if slider {
		id, err = h.uc.AddSlider(r.Context(), in)
	} else {
		id, err = h.uc.AddVideo(r.Context(), in)
	}
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSliderFull):
			badRequest(w, "maximum 5 slider entries allowed")
		case errors.Is(err, usecase.ErrMediaInvalidArgument):
			badRequest(w, err.Error())
		default:
			writeErr(w, http.StatusBadGateway, "add failed: "+err.Error())
		}
		return
	}

	log.Printf("[media_admin] added %s by %s", id, adminActor(r.Context()))
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *MediaAdminHandler) handleDelete(w http.ResponseWriter, r *http.Request, id string) {
	if strings.TrimSpace(id) == "" || id == "slider" || id == "videos" {
		badRequest(w, "media id is required")
		return
	}

	if err := h.uc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrMediaNotFound) {
			notFound(w)
			return
		}
		writeErr(w, http.StatusBadGateway, "delete failed: "+err.Error())
		return
	}
	log.Printf("[media_admin] deleted %s by %s", id, adminActor(r.Context()))
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func exceedsLimit(fh *multipart.FileHeader, limit int64) bool {
	return fh != nil && fh.Size > limit
}
