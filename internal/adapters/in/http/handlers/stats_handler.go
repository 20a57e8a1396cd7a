// internal/adapters/in/http/handlers/stats_handler.go
package handlers

import (
	"log"
	"net/http"

	usecase "fashionistic/internal/application/usecase"
	mediadom "fashionistic/internal/domain/media"
)

// StatsHandler serves the admin dashboard header counts.
//
//	GET /admin/stats
//
// Counts only; the display analytics (views/sales) stay mocked in the UI.
type StatsHandler struct {
	artworkUC *usecase.ArtworkUsecase
	mediaUC   *usecase.MediaUsecase
}

func NewStatsHandler(artworkUC *usecase.ArtworkUsecase, mediaUC *usecase.MediaUsecase) http.Handler {
	return &StatsHandler{artworkUC: artworkUC, mediaUC: mediaUC}
}

func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.artworkUC == nil || h.mediaUC == nil {
		writeErr(w, http.StatusInternalServerError, "stats handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	ctx := r.Context()

	// Each count degrades to zero independently; the dashboard renders
	// whatever is reachable.
	total, err := h.artworkUC.Count(ctx)
	if err != nil {
		log.Printf("[stats_handler] collection count failed: %v", err)
	}
	sliderCount, err := h.mediaUC.CountByFolder(ctx, mediadom.FolderSlider)
	if err != nil {
		log.Printf("[stats_handler] slider count failed: %v", err)
	}
	videoCount, err := h.mediaUC.CountByFolder(ctx, mediadom.FolderVideos)
	if err != nil {
		log.Printf("[stats_handler] video count failed: %v", err)
	}

	// A failed collection count reports zero, which would push the derived
	// artwork count negative; clamp it.
	artworks := total - sliderCount - videoCount
	if artworks < 0 {
		artworks = 0
	}

	writeJSON(w, http.StatusOK, map[string]int{
		"totalRecords": total,
		"artworks":     artworks,
		"slider":       sliderCount,
		"videos":       videoCount,
	})
}
