// internal/application/usecase/fakes_test.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	artdom "fashionistic/internal/domain/artwork"
	inqdom "fashionistic/internal/domain/inquiry"
	mediadom "fashionistic/internal/domain/media"
)

// fixedClock always returns the same instant.
type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// fakeAssets records every upload/delete and can be told to fail.
type fakeAssets struct {
	mu        sync.Mutex
	uploads   []string // "<folder>/<filename>"
	deleted   []string
	uploadErr error
	deleteErr error
}

func (f *fakeAssets) Upload(_ context.Context, folder, filename, _ string, src io.Reader) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	if src != nil {
		_, _ = io.Copy(io.Discard, src)
	}
	path := folder + "/" + filename
	f.uploads = append(f.uploads, path)
	return "https://storage.example.com/bucket/" + path, nil
}

func (f *fakeAssets) Delete(_ context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, url)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return nil
}

// fakeArtworkRepo is an in-memory artwork.Repository.
type fakeArtworkRepo struct {
	mu      sync.Mutex
	seq     int
	docs    map[string]artdom.Artwork
	listErr error
	getErr  error
}

func newFakeArtworkRepo() *fakeArtworkRepo {
	return &fakeArtworkRepo{docs: make(map[string]artdom.Artwork)}
}

func (r *fakeArtworkRepo) Create(_ context.Context, a artdom.Artwork) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	id := fmt.Sprintf("art-%d", r.seq)
	a.ID = id
	r.docs[id] = a
	return id, nil
}

func (r *fakeArtworkRepo) GetByID(_ context.Context, id string) (*artdom.Artwork, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	a, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	cp := a
	return &cp, nil
}

func (r *fakeArtworkRepo) ListByCategory(_ context.Context, category artdom.Category) ([]artdom.Artwork, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []artdom.Artwork
	for _, a := range r.docs {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeArtworkRepo) Update(_ context.Context, id string, p artdom.Patch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.docs[id]
	if !ok {
		return errors.New("fake: not found")
	}
	if p.Title != nil {
		a.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Size != nil {
		a.Size = *p.Size
	}
	if p.Material != nil {
		a.Material = *p.Material
	}
	if p.Medium != nil {
		a.Medium = *p.Medium
	}
	if p.Price != nil {
		a.Price = artdom.NormalizePrice(p.Price)
	}
	if p.ImageURL != nil {
		a.ImageURL = *p.ImageURL
	}
	if p.VideoURL != nil {
		a.VideoURL = *p.VideoURL
	}
	if p.IsForSale != nil {
		a.IsForSale = *p.IsForSale
	}
	a.UpdatedAt = time.Now().UTC()
	r.docs[id] = a
	return nil
}

func (r *fakeArtworkRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.docs, id)
	return nil
}

func (r *fakeArtworkRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.docs), nil
}

// fakeMediaRepo is an in-memory media.Repository.
type fakeMediaRepo struct {
	mu      sync.Mutex
	seq     int
	docs    map[string]mediadom.Media
	listErr map[string]error // per-folder failure injection
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{docs: make(map[string]mediadom.Media), listErr: make(map[string]error)}
}

func (r *fakeMediaRepo) Create(_ context.Context, m mediadom.Media) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	id := fmt.Sprintf("media-%d", r.seq)
	m.ID = id
	r.docs[id] = m
	return id, nil
}

func (r *fakeMediaRepo) GetByID(_ context.Context, id string) (*mediadom.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	cp := m
	return &cp, nil
}

func (r *fakeMediaRepo) ListByFolder(_ context.Context, folder string) ([]mediadom.Media, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.listErr[folder]; err != nil {
		return nil, err
	}
	var out []mediadom.Media
	for _, m := range r.docs {
		if m.StorageFolder == folder {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMediaRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.docs, id)
	return nil
}

// fakeInquiryRepo records stored inquiries.
type fakeInquiryRepo struct {
	mu     sync.Mutex
	seq    int
	stored []inqdom.Inquiry
	err    error
}

func (r *fakeInquiryRepo) Create(_ context.Context, in inqdom.Inquiry) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return "", r.err
	}
	r.seq++
	in.ID = fmt.Sprintf("inq-%d", r.seq)
	r.stored = append(r.stored, in)
	return in.ID, nil
}

// fakeMailer records sends and can fail.
type fakeMailer struct {
	mu   sync.Mutex
	sent []inqdom.Inquiry
	err  error
}

func (m *fakeMailer) Send(_ context.Context, in inqdom.Inquiry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, in)
	return nil
}
