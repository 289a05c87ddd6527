package catalog

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/domain/shared"
)

// MaxImageSize is the largest accepted product image
const MaxImageSize = 2 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// ImageStorage persists product images in object storage
type ImageStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	DownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error)
}

// ImageUpload is an image file received with a product form
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// validate checks type and size and returns the storage file extension
func (u *ImageUpload) validate() (string, error) {
	contentType := strings.ToLower(strings.TrimSpace(u.ContentType))
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", shared.ErrInvalidInput.WithMessage("The image must be a file of type: jpeg, png, gif.")
	}
	if u.Size <= 0 {
		return "", shared.ErrInvalidInput.WithMessage("The image file is empty.")
	}
	if u.Size > MaxImageSize {
		return "", shared.ErrInvalidInput.WithMessage("The image may not be greater than 2048 kilobytes.")
	}
	return ext, nil
}

// imageKey builds the object key for a product image
func imageKey(productID uuid.UUID, ext string) string {
	return path.Join("products", productID.String(), fmt.Sprintf("%s%s", uuid.New().String(), ext))
}
