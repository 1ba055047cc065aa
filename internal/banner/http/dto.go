package http

import (
	"time"

	"github.com/zenithcamp/medcamp-backend/internal/banner"
)

// BannerResponse is a carousel item as served to clients.
type BannerResponse struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image"`
	ThumbnailURL *string   `json:"thumbnail"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewBannerResponse(b *banner.Banner) BannerResponse {
	var thumb *string
	if b.ThumbnailPath != nil {
		t := banner.ThumbnailURL(b.ID)
		thumb = &t
	}
	return BannerResponse{
		ID:           b.ID,
		Title:        b.Title,
		Description:  b.Description,
		ImageURL:     banner.ImageURL(b.ID),
		ThumbnailURL: thumb,
		CreatedAt:    b.CreatedAt,
	}
}

// UploadBannerForm is the multipart form for POST /home/banner/carousel.
// The image itself is read from the "image" file field.
type UploadBannerForm struct {
	Title       string `form:"title" binding:"max=200"`
	Description string `form:"description" binding:"max=1000"`
}

// DeleteResponse reports the number of removed records.
type DeleteResponse struct {
	DeletedCount int `json:"deletedCount"`
}
