package banner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/logger"
	"github.com/zenithcamp/medcamp-backend/internal/pkg/storage"
)

// UploadInput describes a banner image being uploaded.
type UploadInput struct {
	Filename    string
	Content     io.Reader
	Title       string
	Description string
}

type Service interface {
	Upload(ctx context.Context, in UploadInput) (*Banner, error)
	List(ctx context.Context) ([]*Banner, error)
	Delete(ctx context.Context, id string) error
	Download(ctx context.Context, id string) (io.ReadCloser, *Banner, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Banner, error)
}

type service struct {
	repo    Repository
	storage storage.Storage
	imgProc *storage.ImageProcessor
}

func NewService(repo Repository, store storage.Storage) Service {
	return &service{
		repo:    repo,
		storage: store,
		imgProc: storage.NewImageProcessor(),
	}
}

// Upload validates the image, stores it with a thumbnail and records the banner.
// The content type is sniffed from the bytes, not trusted from the client.
func (s *service) Upload(ctx context.Context, in UploadInput) (*Banner, error) {
	data, err := io.ReadAll(io.LimitReader(in.Content, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image content: %w", err)
	}
	if len(data) > MaxImageSize {
		return nil, ErrImageTooLarge
	}

	contentType := http.DetectContentType(data)
	if !slices.Contains(AllowedContentTypes, contentType) {
		return nil, ErrUnsupportedImage
	}

	id := uuid.New().String()
	ext := strings.ToLower(filepath.Ext(in.Filename))

	// Sharding path: banners/ab/UUID.ext
	shard := id[:2]
	storagePath := fmt.Sprintf("banners/%s/%s%s", shard, id, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to save image to storage: %w", err)
	}

	var thumbnailPath *string
	thumb, err := s.imgProc.GenerateThumbnail(bytes.NewReader(data), ThumbnailWidth, ThumbnailHeight)
	if err != nil {
		logger.Warn().Err(err).Str("banner_id", id).Msg("thumbnail generation failed")
	} else {
		tPath := fmt.Sprintf("banners/%s/%s_thumb.jpg", shard, id)
		if err := s.storage.Save(ctx, tPath, thumb); err != nil {
			logger.Warn().Err(err).Str("banner_id", id).Msg("thumbnail save failed")
		} else {
			thumbnailPath = &tPath
		}
	}

	b := &Banner{
		ID:            id,
		Title:         strings.TrimSpace(in.Title),
		Description:   strings.TrimSpace(in.Description),
		Filename:      filepath.Base(in.Filename),
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          int64(len(data)),
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, b); err != nil {
		s.removeFiles(ctx, b)
		return nil, err
	}

	return b, nil
}

func (s *service) List(ctx context.Context) ([]*Banner, error) {
	return s.repo.List(ctx)
}

// Delete removes the record first; leftover files are only logged.
func (s *service) Delete(ctx context.Context, id string) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.removeFiles(ctx, b)
	return nil
}

func (s *service) removeFiles(ctx context.Context, b *Banner) {
	if err := s.storage.Delete(ctx, b.StoragePath); err != nil {
		logger.Warn().Err(err).Str("banner_id", b.ID).Msg("failed to delete banner image")
	}
	if b.ThumbnailPath != nil {
		if err := s.storage.Delete(ctx, *b.ThumbnailPath); err != nil {
			logger.Warn().Err(err).Str("banner_id", b.ID).Msg("failed to delete banner thumbnail")
		}
	}
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Banner, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, b.StoragePath)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve banner image from storage: %w", err)
	}

	return stream, b, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Banner, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if b.ThumbnailPath == nil {
		return nil, nil, ErrThumbnailNotFound
	}

	stream, err := s.storage.Get(ctx, *b.ThumbnailPath)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil, ErrThumbnailNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to retrieve thumbnail from storage: %w", err)
	}

	return stream, b, nil
}
