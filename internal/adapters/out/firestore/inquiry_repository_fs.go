// internal/adapters/out/firestore/inquiry_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"

	inqdom "fashionistic/internal/domain/inquiry"
)

const DefaultInquiryCollection = "inquiries"

// InquiryRepositoryFS implements inquiry.Repository using Firestore.
type InquiryRepositoryFS struct {
	Client     *firestore.Client
	Collection string
}

func NewInquiryRepositoryFS(client *firestore.Client, collection string) *InquiryRepositoryFS {
	return &InquiryRepositoryFS{
		Client:     client,
		Collection: strings.TrimSpace(collection),
	}
}

var _ inqdom.Repository = (*InquiryRepositoryFS)(nil)

func (r *InquiryRepositoryFS) col() *firestore.CollectionRef {
	c := r.Collection
	if c == "" {
		c = DefaultInquiryCollection
	}
	return r.Client.Collection(c)
}

func (r *InquiryRepositoryFS) Create(ctx context.Context, in inqdom.Inquiry) (string, error) {
	if r == nil || r.Client == nil {
		return "", errors.New("inquiry_repository_fs: firestore client is nil")
	}

	ref, _, err := r.col().Add(ctx, map[string]any{
		"name":      in.Name,
		"email":     in.Email,
		"subject":   in.Subject,
		"message":   in.Message,
		"createdAt": in.CreatedAt,
	})
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}
