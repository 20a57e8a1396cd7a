// internal/domain/media/entity.go
package media

import (
	"errors"
	"strings"
	"time"
)

// FileType tells which of ImageURL/VideoURL is populated.
type FileType string

const (
	FileTypeImage FileType = "image"
	FileTypeVideo FileType = "video"
)

// Folders inside the shared artwork collection.
const (
	FolderSlider = "slider"
	FolderVideos = "videos"
)

// MaxSliderEntries caps the homepage hero carousel.
// Enforced at the API boundary; the data layer does not re-check it, so a
// concurrent-admin race can still exceed the cap (accepted, single-admin usage).
const MaxSliderEntries = 5

var (
	ErrInvalidTitle    = errors.New("media: invalid title")
	ErrInvalidFileType = errors.New("media: invalid fileType")
	ErrInvalidURL      = errors.New("media: exactly one of imageUrl/videoUrl must be set")
	ErrInvalidFolder   = errors.New("media: invalid storageFolder")
)

// Media is a hero-slider entry or a standalone video, stored in the same
// collection as artworks and discriminated by StorageFolder.
type Media struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Artist        string    `json:"artist"`
	Medium        string    `json:"medium"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	VideoURL      string    `json:"videoUrl,omitempty"`
	FileType      FileType  `json:"fileType"`
	Order         int       `json:"order"`
	StorageFolder string    `json:"storageFolder"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// New constructs a Media record. url is assigned to ImageURL or VideoURL
// according to fileType.
func New(title, artist, medium, url string, fileType FileType, order int, folder string, now time.Time) (Media, error) {
	m := Media{
		Title:         strings.TrimSpace(title),
		Artist:        strings.TrimSpace(artist),
		Medium:        strings.TrimSpace(medium),
		FileType:      fileType,
		Order:         order,
		StorageFolder: strings.TrimSpace(folder),
		CreatedAt:     now.UTC(),
		UpdatedAt:     now.UTC(),
	}
	switch fileType {
	case FileTypeImage:
		m.ImageURL = strings.TrimSpace(url)
	case FileTypeVideo:
		m.VideoURL = strings.TrimSpace(url)
	default:
		return Media{}, ErrInvalidFileType
	}
	if err := m.validate(); err != nil {
		return Media{}, err
	}
	return m, nil
}

func (m *Media) validate() error {
	if m.Title == "" {
		return ErrInvalidTitle
	}
	if m.StorageFolder != FolderSlider && m.StorageFolder != FolderVideos {
		return ErrInvalidFolder
	}
	hasImage := m.ImageURL != ""
	hasVideo := m.VideoURL != ""
	if hasImage == hasVideo {
		return ErrInvalidURL
	}
	return nil
}

// AssetURL returns whichever binary URL is populated.
func (m Media) AssetURL() string {
	if m.ImageURL != "" {
		return m.ImageURL
	}
	return m.VideoURL
}

// FileTypeFromContentType maps an upload's MIME type to a FileType.
func FileTypeFromContentType(ct string) FileType {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(ct)), "image/") {
		return FileTypeImage
	}
	return FileTypeVideo
}
