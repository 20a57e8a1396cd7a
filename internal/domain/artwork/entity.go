// internal/domain/artwork/entity.go
package artwork

import (
	"errors"
	"strings"
	"time"
)

// Category decides which storefront page surfaces an artwork.
// It is fixed at creation and never changed afterwards.
type Category string

const (
	CategoryGallery Category = "gallery"
	CategoryShop    Category = "shop"
)

// Storage folders used as the storageFolder discriminator inside the shared
// collection. Slider media and videos co-tenant the artwork collection, so
// catalog reads must filter them out defensively.
const (
	FolderImages = "images"
	FolderShop   = "shop"
	FolderSlider = "slider"
	FolderVideos = "videos"
)

var (
	ErrInvalidTitle    = errors.New("artwork: invalid title")
	ErrInvalidCategory = errors.New("artwork: invalid category")
	ErrInvalidImageURL = errors.New("artwork: imageUrl is required")
)

// Artwork is one displayable/sellable piece.
//
// Price is a pointer on purpose: "no price" and "price zero" are different
// states, and a non-positive price is never written to the store.
type Artwork struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Size          string    `json:"size"`
	Material      string    `json:"material"`
	Medium        string    `json:"medium"`
	Price         *float64  `json:"price,omitempty"`
	ImageURL      string    `json:"imageUrl"`
	VideoURL      string    `json:"videoUrl,omitempty"`
	IsForSale     bool      `json:"isForSale"`
	Category      Category  `json:"category"`
	StorageFolder string    `json:"storageFolder,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// New constructs an Artwork with required fields validated.
// price <= 0 is normalized to nil (no price attribute stored).
func New(title, description, size, material, medium string, price *float64, imageURL, videoURL string, isForSale bool, category Category, folder string, now time.Time) (Artwork, error) {
	a := Artwork{
		Title:         strings.TrimSpace(title),
		Description:   strings.TrimSpace(description),
		Size:          strings.TrimSpace(size),
		Material:      strings.TrimSpace(material),
		Medium:        strings.TrimSpace(medium),
		Price:         NormalizePrice(price),
		ImageURL:      strings.TrimSpace(imageURL),
		VideoURL:      strings.TrimSpace(videoURL),
		IsForSale:     isForSale,
		Category:      category,
		StorageFolder: strings.TrimSpace(folder),
		CreatedAt:     now.UTC(),
		UpdatedAt:     now.UTC(),
	}
	if a.StorageFolder == "" {
		a.StorageFolder = FolderImages
	}
	if err := a.validate(); err != nil {
		return Artwork{}, err
	}
	return a, nil
}

func (a *Artwork) validate() error {
	if a.Title == "" {
		return ErrInvalidTitle
	}
	if a.Category != CategoryGallery && a.Category != CategoryShop {
		return ErrInvalidCategory
	}
	if a.ImageURL == "" && a.VideoURL == "" {
		return ErrInvalidImageURL
	}
	return nil
}

// NormalizePrice maps non-positive or absent prices to nil.
func NormalizePrice(p *float64) *float64 {
	if p == nil || *p <= 0 {
		return nil
	}
	v := *p
	return &v
}

// PriceValue returns the price treated as 0 when absent (storefront display).
func (a Artwork) PriceValue() float64 {
	if a.Price == nil {
		return 0
	}
	return *a.Price
}

// IsMedia reports whether the record is actually slider/video co-tenant data
// rather than a catalog artwork.
func IsMedia(folder string) bool {
	f := strings.TrimSpace(folder)
	return f == FolderSlider || f == FolderVideos
}

// Patch carries a partial update; nil fields are left untouched.
// Category is intentionally absent (fixed at creation).
type Patch struct {
	Title       *string
	Description *string
	Size        *string
	Material    *string
	Medium      *string
	// Price semantics: nil = untouched, non-positive = remove the attribute.
	Price     *float64
	ImageURL  *string
	VideoURL  *string
	IsForSale *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Size == nil &&
		p.Material == nil && p.Medium == nil && p.Price == nil &&
		p.ImageURL == nil && p.VideoURL == nil && p.IsForSale == nil
}
