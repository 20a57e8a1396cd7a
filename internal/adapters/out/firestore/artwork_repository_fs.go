// internal/adapters/out/firestore/artwork_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	artdom "fashionistic/internal/domain/artwork"
)

// DefaultArtworkCollection is the shared collection for artworks, slider
// media and videos (discriminated by storageFolder).
const DefaultArtworkCollection = "Fashionistic_Arts"

// ArtworkRepositoryFS implements artwork.Repository using Firestore.
type ArtworkRepositoryFS struct {
	Client     *firestore.Client
	Collection string
}

func NewArtworkRepositoryFS(client *firestore.Client, collection string) *ArtworkRepositoryFS {
	return &ArtworkRepositoryFS{
		Client:     client,
		Collection: strings.TrimSpace(collection),
	}
}

var _ artdom.Repository = (*ArtworkRepositoryFS)(nil)

func (r *ArtworkRepositoryFS) col() *firestore.CollectionRef {
	c := r.Collection
	if c == "" {
		c = DefaultArtworkCollection
	}
	return r.Client.Collection(c)
}

// Create inserts a new artwork document and returns its id.
// A nil Price means the document carries no price attribute at all
// (distinct from price = 0).
func (r *ArtworkRepositoryFS) Create(ctx context.Context, a artdom.Artwork) (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("artwork_repository_fs: firestore client is nil")
	}

	doc := map[string]any{
		"title":         a.Title,
		"description":   a.Description,
		"size":          a.Size,
		"material":      a.Material,
		"medium":        a.Medium,
		"isForSale":     a.IsForSale,
		"category":      string(a.Category),
		"imageUrl":      a.ImageURL,
		"storageFolder": a.StorageFolder,
		"createdAt":     a.CreatedAt,
		"updatedAt":     a.UpdatedAt,
	}
	if a.VideoURL != "" {
		doc["videoUrl"] = a.VideoURL
	}
	if p := artdom.NormalizePrice(a.Price); p != nil {
		doc["price"] = *p
	}

	ref, _, err := r.col().Add(ctx, doc)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

// GetByID returns (nil, nil) if not found (nil policy).
func (r *ArtworkRepositoryFS) GetByID(ctx context.Context, id string) (*artdom.Artwork, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("artwork_repository_fs: firestore client is nil")
	}
	aid := strings.TrimSpace(id)
	if aid == "" {
		return nil, errors.New("artwork_repository_fs: id is empty")
	}

	snap, err := r.col().Doc(aid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	a, err := docToArtwork(snap)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListByCategory runs the plain equality query. No orderBy is issued so the
// backend never needs a composite index; the caller sorts in memory.
func (r *ArtworkRepositoryFS) ListByCategory(ctx context.Context, category artdom.Category) ([]artdom.Artwork, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("artwork_repository_fs: firestore client is nil")
	}

	it := r.col().Where("category", "==", string(category)).Documents(ctx)
	defer it.Stop()

	var out []artdom.Artwork
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		a, err := docToArtwork(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// Update merges the patch into the document and refreshes updatedAt.
// No precondition is set: concurrent edits are last-write-wins.
func (r *ArtworkRepositoryFS) Update(ctx context.Context, id string, p artdom.Patch) error {
	if r == nil || r.Client == nil {
		return errors.New("artwork_repository_fs: firestore client is nil")
	}
	aid := strings.TrimSpace(id)
	if aid == "" {
		return errors.New("artwork_repository_fs: id is empty")
	}

	updates := []firestore.Update{
		{Path: "updatedAt", Value: time.Now().UTC()},
	}
	if p.Title != nil {
		updates = append(updates, firestore.Update{Path: "title", Value: strings.TrimSpace(*p.Title)})
	}
	if p.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: strings.TrimSpace(*p.Description)})
	}
	if p.Size != nil {
		updates = append(updates, firestore.Update{Path: "size", Value: strings.TrimSpace(*p.Size)})
	}
	if p.Material != nil {
		updates = append(updates, firestore.Update{Path: "material", Value: strings.TrimSpace(*p.Material)})
	}
	if p.Medium != nil {
		updates = append(updates, firestore.Update{Path: "medium", Value: strings.TrimSpace(*p.Medium)})
	}
	if p.Price != nil {
		if norm := artdom.NormalizePrice(p.Price); norm != nil {
			updates = append(updates, firestore.Update{Path: "price", Value: *norm})
		} else {
			// Non-positive price removes the attribute entirely.
			updates = append(updates, firestore.Update{Path: "price", Value: firestore.Delete})
		}
	}
	if p.ImageURL != nil {
		updates = append(updates, firestore.Update{Path: "imageUrl", Value: strings.TrimSpace(*p.ImageURL)})
	}
	if p.VideoURL != nil {
		updates = append(updates, firestore.Update{Path: "videoUrl", Value: strings.TrimSpace(*p.VideoURL)})
	}
	if p.IsForSale != nil {
		updates = append(updates, firestore.Update{Path: "isForSale", Value: *p.IsForSale})
	}

	_, err := r.col().Doc(aid).Update(ctx, updates)
	return err
}

func (r *ArtworkRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("artwork_repository_fs: firestore client is nil")
	}
	aid := strings.TrimSpace(id)
	if aid == "" {
		return errors.New("artwork_repository_fs: id is empty")
	}
	_, err := r.col().Doc(aid).Delete(ctx)
	return err
}

// Count returns the total number of documents in the collection
// (artworks plus co-tenant media; used for dashboard stats).
func (r *ArtworkRepositoryFS) Count(ctx context.Context) (int, error) {
	if r == nil || r.Client == nil {
		return 0, errors.New("artwork_repository_fs: firestore client is nil")
	}

	it := r.col().Documents(ctx)
	defer it.Stop()

	n := 0
	for {
		_, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}

func docToArtwork(doc *firestore.DocumentSnapshot) (artdom.Artwork, error) {
	data := doc.Data()
	if data == nil {
		return artdom.Artwork{}, fmt.Errorf("empty artwork document: %s", doc.Ref.ID)
	}

	var a artdom.Artwork
	a.ID = doc.Ref.ID
	a.Title = getStr(data, "title")
	a.Description = getStr(data, "description")
	a.Size = getStr(data, "size")
	a.Material = getStr(data, "material")
	a.Medium = getStr(data, "medium")
	a.ImageURL = getStr(data, "imageUrl")
	a.VideoURL = getStr(data, "videoUrl")
	a.IsForSale = getBool(data, "isForSale")
	a.Category = artdom.Category(getStr(data, "category"))
	a.StorageFolder = getStr(data, "storageFolder")

	if v, ok := getFloat(data, "price"); ok && v > 0 {
		a.Price = &v
	}
	if t, ok := getTime(data, "createdAt"); ok {
		a.CreatedAt = t
	}
	if t, ok := getTime(data, "updatedAt"); ok {
		a.UpdatedAt = t
	}

	return a, nil
}
