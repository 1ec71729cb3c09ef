// Package storage implements the local-disk image store backing profile and
// product uploads.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/electromart/marketplace-api/internal/api/metrics"
	"github.com/electromart/marketplace-api/internal/core/ports"
)

const publicPrefix = "/uploads"

// allowedExtensions is the image allow-list; checked against both the
// filename extension and the declared content type.
var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// DiskStore writes uploads under a root directory, one subdirectory per image
// kind. Names embed a UUID, so concurrent uploads cannot collide.
type DiskStore struct {
	root     string
	maxBytes int64
}

// NewDiskStore creates the store and its kind subdirectories.
func NewDiskStore(root string, maxBytes int64) (*DiskStore, error) {
	for _, kind := range []string{ports.ImageKindProfile, ports.ImageKindProduct} {
		if err := os.MkdirAll(filepath.Join(root, kind), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir: %w", err)
		}
	}
	return &DiskStore{root: root, maxBytes: maxBytes}, nil
}

// Save validates and writes one upload, returning the public path recorded on
// the owning document.
func (s *DiskStore) Save(ctx context.Context, kind string, upload ports.ImageUpload) (string, error) {
	if err := s.validate(upload); err != nil {
		metrics.UploadsTotal.WithLabelValues(kind, "rejected").Inc()
		return "", err
	}

	name := s.filename(kind, upload.Filename)
	dst := filepath.Join(s.root, kind, name)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues(kind, "failed").Inc()
		return "", fmt.Errorf("create upload file: %w", err)
	}

	// Copy with a hard cap one byte above the limit so an undeclared oversize
	// body is still caught.
	written, err := io.Copy(f, io.LimitReader(upload.Content, s.maxBytes+1))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil && written > s.maxBytes {
		err = ports.ErrImageTooLarge
	}
	if err != nil {
		_ = os.Remove(dst)
		metrics.UploadsTotal.WithLabelValues(kind, "failed").Inc()
		return "", err
	}

	metrics.UploadsTotal.WithLabelValues(kind, "stored").Inc()
	return path.Join(publicPrefix, kind, name), nil
}

// Remove deletes a stored image by its public path. Paths outside the store
// root are refused.
func (s *DiskStore) Remove(publicPath string) error {
	rel, ok := strings.CutPrefix(path.Clean(publicPath), publicPrefix+"/")
	if !ok || strings.Contains(rel, "..") {
		return fmt.Errorf("not a stored upload path: %s", publicPath)
	}
	return os.Remove(filepath.Join(s.root, filepath.FromSlash(rel)))
}

func (s *DiskStore) validate(upload ports.ImageUpload) error {
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return ports.ErrUnsupportedImage
	}
	// Strip any charset parameter before matching.
	ct := strings.ToLower(strings.TrimSpace(strings.Split(upload.ContentType, ";")[0]))
	if _, ok := allowedContentTypes[ct]; !ok {
		return ports.ErrUnsupportedImage
	}
	if upload.Size > s.maxBytes {
		return ports.ErrImageTooLarge
	}
	return nil
}

// filename generates e.g. "product-4f9d…b21c.png". The kind's singular form
// prefixes the name, matching the public paths persisted on records.
func (s *DiskStore) filename(kind, original string) string {
	prefix := strings.TrimSuffix(kind, "s")
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%s-%s%s", prefix, uuid.NewString(), ext)
}
