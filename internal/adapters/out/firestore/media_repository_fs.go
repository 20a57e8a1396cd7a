// internal/adapters/out/firestore/media_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	mediadom "fashionistic/internal/domain/media"
)

// MediaRepositoryFS implements media.Repository using Firestore.
// Media records live in the same collection as artworks; every query here
// filters on the storageFolder discriminator.
type MediaRepositoryFS struct {
	Client     *firestore.Client
	Collection string
}

func NewMediaRepositoryFS(client *firestore.Client, collection string) *MediaRepositoryFS {
	return &MediaRepositoryFS{
		Client:     client,
		Collection: strings.TrimSpace(collection),
	}
}

var _ mediadom.Repository = (*MediaRepositoryFS)(nil)

func (r *MediaRepositoryFS) col() *firestore.CollectionRef {
	c := r.Collection
	if c == "" {
		c = DefaultArtworkCollection
	}
	return r.Client.Collection(c)
}

func (r *MediaRepositoryFS) Create(ctx context.Context, m mediadom.Media) (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("media_repository_fs: firestore client is nil")
	}

	doc := map[string]any{
		"title":         m.Title,
		"artist":        m.Artist,
		"medium":        m.Medium,
		"fileType":      string(m.FileType),
		"order":         m.Order,
		"storageFolder": m.StorageFolder,
		"createdAt":     m.CreatedAt,
		"updatedAt":     m.UpdatedAt,
	}
	// Exactly one of the two is populated (entity invariant).
	if m.ImageURL != "" {
		doc["imageUrl"] = m.ImageURL
	}
	if m.VideoURL != "" {
		doc["videoUrl"] = m.VideoURL
	}

	ref, _, err := r.col().Add(ctx, doc)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

// GetByID returns (nil, nil) if not found (nil policy).
func (r *MediaRepositoryFS) GetByID(ctx context.Context, id string) (*mediadom.Media, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("media_repository_fs: firestore client is nil")
	}
	mid := strings.TrimSpace(id)
	if mid == "" {
		return nil, errors.New("media_repository_fs: id is empty")
	}

	snap, err := r.col().Doc(mid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	m, err := docToMedia(snap)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByFolder runs the plain equality query on storageFolder.
// No orderBy is issued (no composite index); the caller sorts in memory.
func (r *MediaRepositoryFS) ListByFolder(ctx context.Context, folder string) ([]mediadom.Media, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("media_repository_fs: firestore client is nil")
	}
	f := strings.TrimSpace(folder)
	if f == "" {
		return nil, errors.New("media_repository_fs: folder is empty")
	}

	it := r.col().Where("storageFolder", "==", f).Documents(ctx)
	defer it.Stop()

	var out []mediadom.Media
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		m, err := docToMedia(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *MediaRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("media_repository_fs: firestore client is nil")
	}
	mid := strings.TrimSpace(id)
	if mid == "" {
		return errors.New("media_repository_fs: id is empty")
	}
	_, err := r.col().Doc(mid).Delete(ctx)
	return err
}

func docToMedia(doc *firestore.DocumentSnapshot) (mediadom.Media, error) {
	data := doc.Data()
	if data == nil {
		return mediadom.Media{}, fmt.Errorf("empty media document: %s", doc.Ref.ID)
	}

	var m mediadom.Media
	m.ID = doc.Ref.ID
	m.Title = getStr(data, "title")
	m.Artist = getStr(data, "artist")
	m.Medium = getStr(data, "medium")
	m.ImageURL = getStr(data, "imageUrl")
	m.VideoURL = getStr(data, "videoUrl")
	m.FileType = mediadom.FileType(getStr(data, "fileType"))
	m.StorageFolder = getStr(data, "storageFolder")

	if n, ok := getInt(data, "order"); ok {
		m.Order = n
	}
	if t, ok := getTime(data, "createdAt"); ok {
		m.CreatedAt = t
	}
	if t, ok := getTime(data, "updatedAt"); ok {
		m.UpdatedAt = t
	}

	return m, nil
}
