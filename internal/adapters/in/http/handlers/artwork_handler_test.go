// internal/adapters/in/http/handlers/artwork_handler_test.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	usecase "fashionistic/internal/application/usecase"
	artdom "fashionistic/internal/domain/artwork"
)

// stubArtworkRepo serves canned query results for the read path.
type stubArtworkRepo struct {
	byCategory map[artdom.Category][]artdom.Artwork
	listErr    error
	countErr   error
}

func (s *stubArtworkRepo) Create(context.Context, artdom.Artwork) (string, error) {
	return "", errors.New("stub: read only")
}
func (s *stubArtworkRepo) GetByID(context.Context, string) (*artdom.Artwork, error) {
	return nil, nil
}
func (s *stubArtworkRepo) ListByCategory(_ context.Context, c artdom.Category) ([]artdom.Artwork, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.byCategory[c], nil
}
func (s *stubArtworkRepo) Update(context.Context, string, artdom.Patch) error {
	return errors.New("stub: read only")
}
func (s *stubArtworkRepo) Delete(context.Context, string) error {
	return errors.New("stub: read only")
}
func (s *stubArtworkRepo) Count(context.Context) (int, error) {
	if s.countErr != nil {
		return 0, s.countErr
	}
	n := 0
	for _, items := range s.byCategory {
		n += len(items)
	}
	return n, nil
}

func mustArtwork(t *testing.T, title string, folder string, created time.Time) artdom.Artwork {
	t.Helper()
	a, err := artdom.New(title, "d", "", "", "", nil, "https://x/"+title+".jpg", "", false, artdom.CategoryGallery, folder, created)
	require.NoError(t, err)
	return a
}

func TestArtworkHandlerListsCategory(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubArtworkRepo{byCategory: map[artdom.Category][]artdom.Artwork{
		artdom.CategoryGallery: {
			mustArtwork(t, "old", artdom.FolderImages, base),
			mustArtwork(t, "new", artdom.FolderImages, base.Add(time.Hour)),
			mustArtwork(t, "hero", artdom.FolderSlider, base.Add(2*time.Hour)),
		},
	}}
	h := NewArtworkHandler(usecase.NewArtworkUsecase(repo, nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/artworks?category=gallery", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Artworks []artdom.Artwork `json:"artworks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Artworks, 2, "slider co-tenant is filtered out")
	assert.Equal(t, "new", body.Artworks[0].Title)
	assert.Equal(t, "old", body.Artworks[1].Title)
}

func TestArtworkHandlerRejectsBadCategory(t *testing.T) {
	h := NewArtworkHandler(usecase.NewArtworkUsecase(&stubArtworkRepo{}, nil))

	for _, target := range []string{"/artworks", "/artworks?category=posters"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestArtworkHandlerDegradesToEmptyOnBackendError(t *testing.T) {
	repo := &stubArtworkRepo{listErr: errors.New("backend down")}
	h := NewArtworkHandler(usecase.NewArtworkUsecase(repo, nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/artworks?category=shop", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Artworks []artdom.Artwork `json:"artworks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Artworks)
}

func TestArtworkHandlerMethodNotAllowed(t *testing.T) {
	h := NewArtworkHandler(usecase.NewArtworkUsecase(&stubArtworkRepo{}, nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/artworks?category=shop", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
