// internal/adapters/out/gcs/asset_repository_gcs.go
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	gcscommon "fashionistic/internal/adapters/out/gcs/common"
)

// AssetRepositoryGCS stores artwork/slider/video binaries in a single bucket.
//
// Object layout:
//
//	<prefix>/<folder>/<unixMillis>_<filename>
//
// where folder is one of images, shop, slider, videos. The bucket is expected
// to grant allUsers Storage Object Viewer (uniform access), so the returned
// public URL resolves without per-object ACL changes.
type AssetRepositoryGCS struct {
	Client *storage.Client
	Bucket string
	Prefix string
}

func NewAssetRepositoryGCS(client *storage.Client, bucket, prefix string) *AssetRepositoryGCS {
	return &AssetRepositoryGCS{
		Client: client,
		Bucket: strings.TrimSpace(bucket),
		Prefix: strings.TrimSpace(prefix),
	}
}

func (r *AssetRepositoryGCS) bucket() (*storage.BucketHandle, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("asset_repository_gcs: storage client is nil")
	}
	b := strings.TrimSpace(r.Bucket)
	if b == "" {
		return nil, errors.New("asset_repository_gcs: bucket is empty")
	}
	return r.Client.Bucket(b), nil
}

// Upload writes the stream to the namespaced object path and returns the
// public fetch URL. Failure here must abort the dependent document write.
func (r *AssetRepositoryGCS) Upload(ctx context.Context, folder, filename, contentType string, src io.Reader) (string, error) {
	bh, err := r.bucket()
	if err != nil {
		return "", err
	}

	f := strings.Trim(strings.TrimSpace(folder), "/")
	if f == "" {
		return "", errors.New("asset_repository_gcs: folder is empty")
	}

	name := gcscommon.SanitizeFilename(filename)
	objPath := fmt.Sprintf("%s/%d_%s", f, time.Now().UnixMilli(), name)
	if p := strings.Trim(r.Prefix, "/"); p != "" {
		objPath = p + "/" + objPath
	}

	w := bh.Object(objPath).NewWriter(ctx)
	if ct := strings.TrimSpace(contentType); ct != "" {
		w.ContentType = ct
	}
	if _, err := io.Copy(w, src); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("asset_repository_gcs: upload failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("asset_repository_gcs: upload close failed: %w", err)
	}

	return gcscommon.PublicURL(r.Bucket, objPath), nil
}

// Delete removes the object behind a previously returned public URL.
// Already-gone objects are not an error (cleanup is best-effort).
func (r *AssetRepositoryGCS) Delete(ctx context.Context, url string) error {
	if r == nil || r.Client == nil {
		return errors.New("asset_repository_gcs: storage client is nil")
	}

	bucket, objPath, ok := gcscommon.ParseObjectURL(url)
	if !ok {
		return fmt.Errorf("asset_repository_gcs: not a GCS object URL: %q", url)
	}

	err := r.Client.Bucket(bucket).Object(objPath).Delete(ctx)
	if err != nil && err != storage.ErrObjectNotExist {
		return err
	}
	return nil
}
