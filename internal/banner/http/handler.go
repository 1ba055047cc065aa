package http

import (
	"io"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zenithcamp/medcamp-backend/internal/banner"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/request"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/response"
)

// ImageField is the multipart field carrying the banner image.
const ImageField = "image"

type Handler struct {
	bannerService banner.Service
}

func NewHandler(bannerService banner.Service) *Handler {
	return &Handler{
		bannerService: bannerService,
	}
}

func (h *Handler) List(c *gin.Context) {
	banners, err := h.bannerService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BannerResponse, len(banners))
	for i, b := range banners {
		items[i] = NewBannerResponse(b)
	}

	c.JSON(http.StatusOK, items)
}

// Upload adds a carousel banner from a multipart form.
// Access Control: Admin only.
func (h *Handler) Upload(c *gin.Context) {
	var form UploadBannerForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, "invalid form", err)
		return
	}

	fileHeader, err := c.FormFile(ImageField)
	if err != nil {
		response.BadRequest(c, ImageField+" is required", err)
		return
	}
	if fileHeader.Size > banner.MaxImageSize {
		response.Error(c, banner.ErrImageTooLarge)
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "failed to open uploaded image", err)
		return
	}
	defer src.Close()

	b, err := h.bannerService.Upload(c.Request.Context(), banner.UploadInput{
		Filename:    fileHeader.Filename,
		Content:     src,
		Title:       form.Title,
		Description: form.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBannerResponse(b))
}

// Delete removes a banner and its stored images.
// Access Control: Admin only.
func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid id", err)
		return
	}

	if err := h.bannerService.Delete(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{DeletedCount: 1})
}

// ServeImage streams the original banner image.
func (h *Handler) ServeImage(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid id", err)
		return
	}

	stream, b, err := h.bannerService.Download(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	h.stream(c, stream, b.Size, b.ContentType, b.Filename)
}

// ServeThumbnail streams the JPEG thumbnail of a banner.
func (h *Handler) ServeThumbnail(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		response.BadRequest(c, "invalid id", err)
		return
	}

	stream, b, err := h.bannerService.DownloadThumbnail(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	h.stream(c, stream, -1, "image/jpeg", b.ID+"_thumb.jpg")
}

func (h *Handler) stream(c *gin.Context, r io.Reader, size int64, contentType, filename string) {
	c.DataFromReader(http.StatusOK, size, contentType, r, map[string]string{
		"Content-Disposition": mime.FormatMediaType("inline", map[string]string{"filename": filename}),
		"Cache-Control":       "public, max-age=86400",
	})
}
