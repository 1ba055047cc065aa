package storage

import (
	"bytes"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
)

// ImageProcessor handles image processing like resizing.
type ImageProcessor struct {
	quality int
}

// NewImageProcessor creates a new ImageProcessor producing JPEGs at quality 80.
func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{quality: 80}
}

// GenerateThumbnail scales the source image down to fit within maxWidth x
// maxHeight, honoring EXIF orientation, and returns it encoded as JPEG.
func (p *ImageProcessor) GenerateThumbnail(content io.Reader, maxWidth, maxHeight int) (io.Reader, error) {
	img, err := imaging.Decode(content, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	thumbnail := imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, thumbnail, imaging.JPEG, imaging.JPEGQuality(p.quality)); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}

	return buf, nil
}
