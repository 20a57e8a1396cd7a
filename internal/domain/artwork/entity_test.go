// internal/domain/artwork/entity_test.go
package artwork

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func TestNewValidatesRequiredFields(t *testing.T) {
	now := time.Now()

	_, err := New("", "d", "", "", "", nil, "https://x/img.jpg", "", false, CategoryGallery, FolderImages, now)
	assert.ErrorIs(t, err, ErrInvalidTitle)

	_, err = New("t", "d", "", "", "", nil, "https://x/img.jpg", "", false, Category("sliderish"), FolderImages, now)
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = New("t", "d", "", "", "", nil, "", "", false, CategoryShop, FolderShop, now)
	assert.ErrorIs(t, err, ErrInvalidImageURL)

	// video-only records are valid
	a, err := New("t", "d", "", "", "", nil, "", "https://x/v.mp4", false, CategoryGallery, FolderVideos, now)
	require.NoError(t, err)
	assert.Equal(t, "https://x/v.mp4", a.VideoURL)
}

func TestNewNormalizesPriceAndFolder(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	a, err := New("  t  ", "d", "24x36", "canvas", "oil", fp(-50), "https://x/img.jpg", "", true, CategoryShop, "", now)
	require.NoError(t, err)
	assert.Equal(t, "t", a.Title)
	assert.Nil(t, a.Price, "non-positive price must not be kept")
	assert.Equal(t, FolderImages, a.StorageFolder)
	assert.Equal(t, now, a.CreatedAt)
	assert.Equal(t, now, a.UpdatedAt)
}

func TestNormalizePrice(t *testing.T) {
	assert.Nil(t, NormalizePrice(nil))
	assert.Nil(t, NormalizePrice(fp(0)))
	assert.Nil(t, NormalizePrice(fp(-1)))

	p := NormalizePrice(fp(1200))
	require.NotNil(t, p)
	assert.Equal(t, 1200.0, *p)

	// returned pointer is a copy, not an alias
	src := fp(500)
	got := NormalizePrice(src)
	*src = 999
	assert.Equal(t, 500.0, *got)
}

func TestPriceValue(t *testing.T) {
	assert.Equal(t, 0.0, Artwork{}.PriceValue())
	assert.Equal(t, 800.0, Artwork{Price: fp(800)}.PriceValue())
}

func TestIsMedia(t *testing.T) {
	assert.True(t, IsMedia(FolderSlider))
	assert.True(t, IsMedia(" videos "))
	assert.False(t, IsMedia(FolderImages))
	assert.False(t, IsMedia(FolderShop))
	assert.False(t, IsMedia(""))
}

func TestPatchIsEmpty(t *testing.T) {
	assert.True(t, Patch{}.IsEmpty())

	title := "t"
	assert.False(t, Patch{Title: &title}.IsEmpty())
	assert.False(t, Patch{Price: fp(0)}.IsEmpty(), "price removal is still a change")
}
