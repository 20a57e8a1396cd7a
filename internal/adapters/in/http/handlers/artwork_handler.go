// internal/adapters/in/http/handlers/artwork_handler.go
package handlers

import (
	"net/http"
	"strings"

	usecase "fashionistic/internal/application/usecase"
	artdom "fashionistic/internal/domain/artwork"
)

// ArtworkHandler serves the public catalog reads.
//
//	GET /artworks?category=gallery|shop
type ArtworkHandler struct {
	uc *usecase.ArtworkUsecase
}

func NewArtworkHandler(uc *usecase.ArtworkUsecase) http.Handler {
	return &ArtworkHandler{uc: uc}
}

func (h *ArtworkHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "artwork handler is not configured")
		return
	}
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	category := artdom.Category(strings.TrimSpace(r.URL.Query().Get("category")))
	if category != artdom.CategoryGallery && category != artdom.CategoryShop {
		badRequest(w, "category must be gallery or shop")
		return
	}

	// Degrades to an empty list on backend failure; never an error banner.
	items := h.uc.ListByCategory(r.Context(), category)
	writeJSON(w, http.StatusOK, map[string]any{"artworks": items})
}
