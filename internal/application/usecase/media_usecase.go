// internal/application/usecase/media_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	mediadom "fashionistic/internal/domain/media"
)

var (
	ErrMediaInvalidArgument = errors.New("media_usecase: invalid argument")
	ErrMediaNotFound        = errors.New("media_usecase: not found")
	ErrSliderFull           = errors.New("media_usecase: slider is full")
)

// MediaUsecase coordinates hero-slider and video CRUD.
type MediaUsecase struct {
	repo   mediadom.Repository
	assets AssetStorage
	clock  Clock
}

func NewMediaUsecase(repo mediadom.Repository, assets AssetStorage) *MediaUsecase {
	return &MediaUsecase{repo: repo, assets: assets, clock: systemClock{}}
}

// NewMediaUsecaseWithClock is useful for tests.
func NewMediaUsecaseWithClock(repo mediadom.Repository, assets AssetStorage, clock Clock) *MediaUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &MediaUsecase{repo: repo, assets: assets, clock: clock}
}

// AddMediaInput carries the descriptive fields plus the single uploaded file.
type AddMediaInput struct {
	Title  string
	Artist string
	Medium string
	File   Upload
}

// ListSlider returns the hero carousel ordered by position.
// Read failures degrade to an empty slider (the home page still renders).
func (uc *MediaUsecase) ListSlider(ctx context.Context) []mediadom.Media {
	if uc == nil || uc.repo == nil {
		return []mediadom.Media{}
	}

	items, err := uc.repo.ListByFolder(ctx, mediadom.FolderSlider)
	if err != nil {
		log.Printf("[media_usecase] slider list failed: %v (returning empty)", err)
		return []mediadom.Media{}
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	if items == nil {
		items = []mediadom.Media{}
	}
	return items
}

// AddSlider uploads the file and appends a slider entry with
// order = current count + 1.
//
// The cap is checked here, at the single server-side chokepoint; the count+1
// assignment is still racy under concurrent admin sessions (accepted), and
// order gaps left by deletions are never renumbered.
func (uc *MediaUsecase) AddSlider(ctx context.Context, in AddMediaInput) (string, error) {
	if uc == nil || uc.repo == nil || uc.assets == nil {
		return "", errors.New("media_usecase: not configured")
	}
	if in.File.Content == nil {
		return "", ErrMediaInvalidArgument
	}

	existing, err := uc.repo.ListByFolder(ctx, mediadom.FolderSlider)
	if err != nil {
		return "", err
	}
	if len(existing) >= mediadom.MaxSliderEntries {
		return "", ErrSliderFull
	}

	url, err := uc.assets.Upload(ctx, mediadom.FolderSlider, in.File.Filename, in.File.ContentType, in.File.Content)
	if err != nil {
		return "", fmt.Errorf("media_usecase: asset upload failed: %w", err)
	}

	fileType := mediadom.FileTypeFromContentType(in.File.ContentType)
	m, err := mediadom.New(in.Title, in.Artist, in.Medium, url, fileType, len(existing)+1, mediadom.FolderSlider, uc.clock.Now())
	if err != nil {
		return "", err
	}
	return uc.repo.Create(ctx, m)
}

// ListVideos merges the dedicated videos folder with slider entries of video
// type, deduplicated by id, newest first (the videos page shows both).
// Read failures degrade to an empty list.
func (uc *MediaUsecase) ListVideos(ctx context.Context) []mediadom.Media {
	if uc == nil || uc.repo == nil {
		return []mediadom.Media{}
	}

	videos, err := uc.repo.ListByFolder(ctx, mediadom.FolderVideos)
	if err != nil {
		log.Printf("[media_usecase] videos list failed: %v (returning empty)", err)
		videos = nil
	}

	slider, err := uc.repo.ListByFolder(ctx, mediadom.FolderSlider)
	if err != nil {
		log.Printf("[media_usecase] slider list for videos failed: %v (ignoring)", err)
		slider = nil
	}

	seen := make(map[string]bool, len(videos))
	out := make([]mediadom.Media, 0, len(videos))
	for _, v := range videos {
		if !seen[v.ID] {
			seen[v.ID] = true
			out = append(out, v)
		}
	}
	for _, s := range slider {
		if s.FileType == mediadom.FileTypeVideo && !seen[s.ID] {
			seen[s.ID] = true
			out = append(out, s)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// AddVideo uploads a video file and stores it under the videos folder.
func (uc *MediaUsecase) AddVideo(ctx context.Context, in AddMediaInput) (string, error) {
	if uc == nil || uc.repo == nil || uc.assets == nil {
		return "", errors.New("media_usecase: not configured")
	}
	if in.File.Content == nil {
		return "", ErrMediaInvalidArgument
	}
	if mediadom.FileTypeFromContentType(in.File.ContentType) != mediadom.FileTypeVideo {
		return "", ErrMediaInvalidArgument
	}

	url, err := uc.assets.Upload(ctx, mediadom.FolderVideos, in.File.Filename, in.File.ContentType, in.File.Content)
	if err != nil {
		return "", fmt.Errorf("media_usecase: asset upload failed: %w", err)
	}

	m, err := mediadom.New(in.Title, in.Artist, in.Medium, url, mediadom.FileTypeVideo, 0, mediadom.FolderVideos, uc.clock.Now())
	if err != nil {
		return "", err
	}
	return uc.repo.Create(ctx, m)
}

// Delete removes a slider/video record, cleaning up its asset best-effort:
// the record is deleted even when the storage delete fails.
func (uc *MediaUsecase) Delete(ctx context.Context, id string) error {
	if uc == nil || uc.repo == nil {
		return errors.New("media_usecase: not configured")
	}
	if strings.TrimSpace(id) == "" {
		return ErrMediaInvalidArgument
	}

	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrMediaNotFound
	}

	if url := m.AssetURL(); url != "" && uc.assets != nil {
		if derr := uc.assets.Delete(ctx, url); derr != nil {
			log.Printf("[media_usecase] orphaned asset: delete failed url=%s err=%v", url, derr)
		}
	}

	return uc.repo.Delete(ctx, id)
}

// CountByFolder returns the number of records in one folder (dashboard stats).
func (uc *MediaUsecase) CountByFolder(ctx context.Context, folder string) (int, error) {
	if uc == nil || uc.repo == nil {
		return 0, errors.New("media_usecase: not configured")
	}
	items, err := uc.repo.ListByFolder(ctx, folder)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}
