package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Boldmaa4421/raffle-app/internal/config"
	"github.com/Boldmaa4421/raffle-app/internal/domain"
	"github.com/Boldmaa4421/raffle-app/internal/port"
)

// ImageUploadInput is the DTO for raffle and winner image uploads.
type ImageUploadInput struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// ImageUploadOutput holds the stored object's public location.
type ImageUploadOutput struct {
	Key      string `json:"key"`
	Location string `json:"location"`
}

// UploadService stores raffle images in object storage.
type UploadService interface {
	UploadImage(ctx context.Context, input ImageUploadInput) (*ImageUploadOutput, error)
	PresignedURL(ctx context.Context, key string) (string, error)
}

type uploadService struct {
	storage port.ObjectStorage
	cfg     *config.S3Config
}

// NewUploadService creates a new UploadService implementation.
func NewUploadService(storage port.ObjectStorage, cfg *config.S3Config) UploadService {
	return &uploadService{storage: storage, cfg: cfg}
}

func (s *uploadService) UploadImage(ctx context.Context, input ImageUploadInput) (*ImageUploadOutput, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	imgType, ok := domain.AllowedImageExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Sniff the real content type from the first 512 bytes; the extension
	// alone is not trusted.
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("uploadService.UploadImage: reading header: %w", err)
	}
	detected := http.DetectContentType(buf[:n])
	if _, ok := domain.AllowedImageContentTypes[detected]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("uploadService.UploadImage: rewind: %w", err)
	}

	key := fmt.Sprintf("images/%s.%s", uuid.New(), imgType)
	out, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        input.File,
		ContentType: detected,
		Size:        input.Header.Size,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	return &ImageUploadOutput{Key: key, Location: out.Location}, nil
}

func (s *uploadService) PresignedURL(ctx context.Context, key string) (string, error) {
	return s.storage.GetPresignedURL(ctx, s.cfg.Bucket, key, s.cfg.PresignExpiry)
}
