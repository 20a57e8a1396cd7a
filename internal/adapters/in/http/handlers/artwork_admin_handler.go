// internal/adapters/in/http/handlers/artwork_admin_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	usecase "fashionistic/internal/application/usecase"
	artdom "fashionistic/internal/domain/artwork"
)

// maxArtworkFormMemory bounds in-memory multipart buffering; larger parts
// spill to temp files.
const maxArtworkFormMemory = 32 << 20

// ArtworkAdminHandler serves the admin catalog mutations.
//
//	POST   /admin/artworks          (multipart: shared fields + up to 15 files)
//	PUT    /admin/artworks/{id}     (JSON patch or multipart with image/video)
//	DELETE /admin/artworks/{id}
type ArtworkAdminHandler struct {
	uc *usecase.ArtworkUsecase
}

func NewArtworkAdminHandler(uc *usecase.ArtworkUsecase) http.Handler {
	return &ArtworkAdminHandler{uc: uc}
}

func (h *ArtworkAdminHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "artwork admin handler is not configured")
		return
	}

	path := strings.TrimRight(r.URL.Path, "/")

	switch {
	case r.Method == http.MethodPost && strings.HasSuffix(path, "/artworks"):
		h.handleCreate(w, r)
	case r.Method == http.MethodPut:
		h.handleUpdate(w, r, lastPathSegment(path))
	case r.Method == http.MethodDelete:
		h.handleDelete(w, r, lastPathSegment(path))
	default:
		methodNotAllowed(w)
	}
}

func (h *ArtworkAdminHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxArtworkFormMemory); err != nil {
		badRequest(w, "invalid multipart form")
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		badRequest(w, "at least one file is required")
		return
	}
	if len(files) > usecase.MaxUploadFiles {
		badRequest(w, "a maximum of 15 files can be uploaded at once")
		return
	}

	in := usecase.CreateInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Size:        r.FormValue("size"),
		Material:    r.FormValue("material"),
		Medium:      r.FormValue("medium"),
		Price:       parsePrice(r.FormValue("price")),
		IsForSale:   parseBool(r.FormValue("isForSale")),
		Category:    artdom.Category(strings.TrimSpace(r.FormValue("category"))),
	}

	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			badRequest(w, "unreadable upload: "+fh.Filename)
			return
		}
		defer f.Close()
		in.Files = append(in.Files, usecase.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Content:     f,
		})
	}

	ids, err := h.uc.Create(r.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrArtworkInvalidArgument), errors.Is(err, usecase.ErrTooManyFiles):
			badRequest(w, err.Error())
		default:
			writeErr(w, http.StatusBadGateway, "create failed: "+err.Error())
		}
		return
	}

	log.Printf("[artwork_admin] created %d record(s) by %s", len(ids), adminActor(r.Context()))
	writeJSON(w, http.StatusCreated, map[string]any{"ids": ids})
}

// artworkPatchDTO is the JSON body for PUT; absent fields stay untouched.
type artworkPatchDTO struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Size        *string  `json:"size"`
	Material    *string  `json:"material"`
	Medium      *string  `json:"medium"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"imageUrl"`
	VideoURL    *string  `json:"videoUrl"`
	IsForSale   *bool    `json:"isForSale"`
}

func (h *ArtworkAdminHandler) handleUpdate(w http.ResponseWriter, r *http.Request, id string) {
	if strings.TrimSpace(id) == "" || id == "artworks" {
		badRequest(w, "artwork id is required")
		return
	}

	var in usecase.UpdateInput

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxArtworkFormMemory); err != nil {
			badRequest(w, "invalid multipart form")
			return
		}
		in.Patch = patchFromForm(r)
		if f, fh, err := r.FormFile("image"); err == nil {
			defer f.Close()
			in.NewImage = &usecase.Upload{Filename: fh.Filename, ContentType: fh.Header.Get("Content-Type"), Content: f}
		}
		if f, fh, err := r.FormFile("video"); err == nil {
			defer f.Close()
			in.NewVideo = &usecase.Upload{Filename: fh.Filename, ContentType: fh.Header.Get("Content-Type"), Content: f}
		}
	} else {
		var dto artworkPatchDTO
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			badRequest(w, "invalid json body")
			return
		}
		in.Patch = artdom.Patch{
			Title:       dto.Title,
			Description: dto.Description,
			Size:        dto.Size,
			Material:    dto.Material,
			Medium:      dto.Medium,
			Price:       dto.Price,
			ImageURL:    dto.ImageURL,
			VideoURL:    dto.VideoURL,
			IsForSale:   dto.IsForSale,
		}
	}

	if err := h.uc.Update(r.Context(), id, in); err != nil {
		if errors.Is(err, usecase.ErrArtworkInvalidArgument) {
			badRequest(w, err.Error())
			return
		}
		writeErr(w, http.StatusBadGateway, "update failed: "+err.Error())
		return
	}
	log.Printf("[artwork_admin] updated %s by %s", id, adminActor(r.Context()))
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *ArtworkAdminHandler) handleDelete(w http.ResponseWriter, r *http.Request, id string) {
	if strings.TrimSpace(id) == "" || id == "artworks" {
		badRequest(w, "artwork id is required")
		return
	}

	if err := h.uc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrArtworkNotFound) {
			notFound(w)
			return
		}
		writeErr(w, http.StatusBadGateway, "delete failed: "+err.Error())
		return
	}
	log.Printf("[artwork_admin] deleted %s by %s", id, adminActor(r.Context()))
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// patchFromForm lifts present multipart fields into a Patch.
func patchFromForm(r *http.Request) artdom.Patch {
	var p artdom.Patch
	get := func(key string) *string {
		if vals, ok := r.MultipartForm.Value[key]; ok && len(vals) > 0 {
			v := vals[0]
			return &v
		}
		return nil
	}

	p.Title = get("title")
	p.Description = get("description")
	p.Size = get("size")
	p.Material = get("material")
	p.Medium = get("medium")
	if raw := get("price"); raw != nil {
		if v := parsePrice(*raw); v != nil {
			p.Price = v
		} else {
			// Explicit empty/zero price removes the attribute.
			zero := 0.0
			p.Price = &zero
		}
	}
	if raw := get("isForSale"); raw != nil {
		b := parseBool(*raw)
		p.IsForSale = &b
	}
	return p
}
