package banner

import (
	"net/http"
	"time"

	"github.com/zenithcamp/medcamp-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "banner not found")
	ErrThumbnailNotFound = apperror.New(http.StatusNotFound, "thumbnail not available for this banner")
	ErrImageTooLarge     = apperror.New(http.StatusBadRequest, "image exceeds the maximum upload size")
	ErrUnsupportedImage  = apperror.New(http.StatusBadRequest, "image must be a JPEG, PNG, GIF or WebP")
)

const (
	// MaxImageSize is the largest accepted upload in bytes.
	MaxImageSize = 5 << 20

	ThumbnailWidth  = 480
	ThumbnailHeight = 270
)

// AllowedContentTypes lists the image types accepted for banners.
var AllowedContentTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// Banner is a home page carousel item. Image bytes live in file storage.
type Banner struct {
	ID            string
	Title         string
	Description   string
	Filename      string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// ImageURL returns the public URL for a banner's image.
func ImageURL(id string) string {
	return "/files/banners/" + id
}

// ThumbnailURL returns the public URL for a banner's thumbnail.
func ThumbnailURL(id string) string {
	return "/files/banners/" + id + "/thumbnail"
}
