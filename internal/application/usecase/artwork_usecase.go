// internal/application/usecase/artwork_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	artdom "fashionistic/internal/domain/artwork"
)

var (
	ErrArtworkInvalidArgument = errors.New("artwork_usecase: invalid argument")
	ErrArtworkNotFound        = errors.New("artwork_usecase: not found")
	ErrTooManyFiles           = errors.New("artwork_usecase: too many files")
)

// MaxUploadFiles caps one create request (mirrors the admin form limit).
const MaxUploadFiles = 15

// ArtworkUsecase coordinates catalog CRUD against the document store and
// the object store.
type ArtworkUsecase struct {
	repo   artdom.Repository
	assets AssetStorage
	clock  Clock
}

func NewArtworkUsecase(repo artdom.Repository, assets AssetStorage) *ArtworkUsecase {
	return &ArtworkUsecase{repo: repo, assets: assets, clock: systemClock{}}
}

// NewArtworkUsecaseWithClock is useful for tests.
func NewArtworkUsecaseWithClock(repo artdom.Repository, assets AssetStorage, clock Clock) *ArtworkUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &ArtworkUsecase{repo: repo, assets: assets, clock: clock}
}

// CreateInput carries the shared form fields plus the uploaded files.
// Each file becomes its own artwork record; blank descriptive fields get
// per-file placeholders the admin can edit later.
type CreateInput struct {
	Title       string
	Description string
	Size        string
	Material    string
	Medium      string
	Price       *float64
	IsForSale   bool
	Category    artdom.Category
	Files       []Upload
}

// Create uploads every file and inserts one record per file.
// An upload failure aborts the whole request before its record is written;
// records created for earlier files are kept (matches the original
// fire-all-uploads admin flow).
func (uc *ArtworkUsecase) Create(ctx context.Context, in CreateInput) ([]string, error) {
	if uc == nil || uc.repo == nil || uc.assets == nil {
		return nil, errors.New("artwork_usecase: not configured")
	}
	if in.Category != artdom.CategoryGallery && in.Category != artdom.CategoryShop {
		return nil, ErrArtworkInvalidArgument
	}
	if len(in.Files) == 0 {
		return nil, ErrArtworkInvalidArgument
	}
	if len(in.Files) > MaxUploadFiles {
		return nil, ErrTooManyFiles
	}

	now := uc.clock.Now()
	var ids []string

	for i, f := range in.Files {
		isImage := strings.HasPrefix(strings.ToLower(f.ContentType), "image/")
		folder := artdom.FolderImages
		if !isImage {
			folder = artdom.FolderVideos
		}

		url, err := uc.assets.Upload(ctx, folder, f.Filename, f.ContentType, f.Content)
		if err != nil {
			return ids, fmt.Errorf("artwork_usecase: asset upload failed: %w", err)
		}

		title := in.Title
		if strings.TrimSpace(title) == "" {
			title = fmt.Sprintf("Artwork %d", i+1)
		}
		description := in.Description
		if strings.TrimSpace(description) == "" {
			description = fmt.Sprintf("Uploaded artwork %d", i+1)
		}

		imageURL, videoURL := "", ""
		if isImage {
			imageURL = url
		} else {
			videoURL = url
		}

		a, err := artdom.New(
			title, description,
			orUnknown(in.Size), orUnknown(in.Material), orUnknown(in.Medium),
			in.Price, imageURL, videoURL, in.IsForSale, in.Category,
			artdom.FolderImages, now,
		)
		if err != nil {
			return ids, err
		}

		id, err := uc.repo.Create(ctx, a)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// ListByCategory returns the catalog for one storefront page.
//
// Co-tenant slider/video records are filtered out defensively even when their
// category happens to match, and results are sorted createdAt desc in memory
// (the query itself carries no orderBy, so no composite index is needed).
//
// Read failures degrade to an empty catalog: the page shell stays available
// and the cause goes to the log.
func (uc *ArtworkUsecase) ListByCategory(ctx context.Context, category artdom.Category) []artdom.Artwork {
	if uc == nil || uc.repo == nil {
		return []artdom.Artwork{}
	}

	raw, err := uc.repo.ListByCategory(ctx, category)
	if err != nil {
		log.Printf("[artwork_usecase] list category=%s failed: %v (returning empty)", category, err)
		return []artdom.Artwork{}
	}

	out := make([]artdom.Artwork, 0, len(raw))
	for _, a := range raw {
		if artdom.IsMedia(a.StorageFolder) {
			continue
		}
		out = append(out, a)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// UpdateInput carries a partial edit plus optional replacement assets.
type UpdateInput struct {
	Patch    artdom.Patch
	NewImage *Upload
	NewVideo *Upload
}

// Update uploads any replacement assets, then merges the patch.
// The previous assets are not removed (the original admin flow leaves them
// in storage); updatedAt is refreshed by the repository.
func (uc *ArtworkUsecase) Update(ctx context.Context, id string, in UpdateInput) error {
	if uc == nil || uc.repo == nil || uc.assets == nil {
		return errors.New("artwork_usecase: not configured")
	}
	if strings.TrimSpace(id) == "" {
		return ErrArtworkInvalidArgument
	}

	p := in.Patch
	if in.NewImage != nil {
		url, err := uc.assets.Upload(ctx, artdom.FolderImages, in.NewImage.Filename, in.NewImage.ContentType, in.NewImage.Content)
		if err != nil {
			return fmt.Errorf("artwork_usecase: asset upload failed: %w", err)
		}
		p.ImageURL = &url
	}
	if in.NewVideo != nil {
		url, err := uc.assets.Upload(ctx, artdom.FolderVideos, in.NewVideo.Filename, in.NewVideo.ContentType, in.NewVideo.Content)
		if err != nil {
			return fmt.Errorf("artwork_usecase: asset upload failed: %w", err)
		}
		p.VideoURL = &url
	}

	if p.IsEmpty() {
		return ErrArtworkInvalidArgument
	}
	return uc.repo.Update(ctx, id, p)
}

// Delete removes the record and best-effort cleans up its assets.
//
// Both assets are attempted even if one fails, and the record is deleted
// regardless: record deletion must never be blocked by storage cleanup.
// Orphaned assets are logged for operational visibility.
func (uc *ArtworkUsecase) Delete(ctx context.Context, id string) error {
	if uc == nil || uc.repo == nil {
		return errors.New("artwork_usecase: not configured")
	}

	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return ErrArtworkNotFound
	}

	uc.deleteAssetBestEffort(ctx, a.ImageURL)
	uc.deleteAssetBestEffort(ctx, a.VideoURL)

	return uc.repo.Delete(ctx, id)
}

// Count returns the raw collection size (includes co-tenant media records).
func (uc *ArtworkUsecase) Count(ctx context.Context) (int, error) {
	if uc == nil || uc.repo == nil {
		return 0, errors.New("artwork_usecase: not configured")
	}
	return uc.repo.Count(ctx)
}

func (uc *ArtworkUsecase) deleteAssetBestEffort(ctx context.Context, url string) {
	if uc.assets == nil || strings.TrimSpace(url) == "" {
		return
	}
	if err := uc.assets.Delete(ctx, url); err != nil {
		log.Printf("[artwork_usecase] orphaned asset: delete failed url=%s err=%v", url, err)
	}
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}
