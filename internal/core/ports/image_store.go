package ports

import (
	"context"
	"errors"
	"io"
)

// Image kinds determine the subdirectory an upload is stored under.
const (
	ImageKindProfile = "profiles"
	ImageKindProduct = "products"
)

var ErrUnsupportedImage = errors.New("only image files are allowed")
var ErrImageTooLarge = errors.New("image exceeds the maximum allowed size")

// ImageUpload is one incoming multipart file.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// ImageStore persists uploaded images and returns the public path recorded on
// the owning document (e.g. /uploads/profiles/profile-<uuid>.png).
type ImageStore interface {
	// Save validates the upload (extension allow-list, declared content type,
	// size cap) and writes it under a generated collision-free name.
	Save(ctx context.Context, kind string, upload ImageUpload) (string, error)
	// Remove deletes a previously stored image by its public path. Callers
	// treat failure as best-effort cleanup.
	Remove(publicPath string) error
}
