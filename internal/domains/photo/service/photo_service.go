package service

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"squadsite-backend/internal/domains/photo"
	"squadsite-backend/internal/infrastructure/storage"
	"squadsite-backend/pkg/logger"

	"github.com/google/uuid"
)

// fileFieldName tags generated filenames so files in the upload
// directory can be traced back to this pipeline.
const fileFieldName = "photo"

var (
	allowedExtensions = map[string]bool{
		".jpeg": true,
		".jpg":  true,
		".png":  true,
		".gif":  true,
		".webp": true,
	}
	allowedMimePattern = regexp.MustCompile(`(jpeg|jpg|png|gif|webp)`)
)

type PhotoService struct {
	repo    photo.Repository
	files   *storage.Local
	maxSize int64
}

func NewPhotoService(repo photo.Repository, files *storage.Local, maxSize int64) *PhotoService {
	return &PhotoService{
		repo:    repo,
		files:   files,
		maxSize: maxSize,
	}
}

func (s *PhotoService) List(ctx context.Context) ([]photo.Photo, error) {
	return s.repo.List(ctx)
}

// Upload validates the file, writes it to the upload directory under a
// generated name, then records it in the store. If the record write
// fails after the file write succeeded the orphaned file is left behind.
func (s *PhotoService) Upload(ctx context.Context, input photo.UploadInput) (*photo.Photo, error) {
	if input.Content == nil {
		return nil, photo.ErrNoFile
	}

	ext := strings.ToLower(filepath.Ext(input.OriginalName))
	if !allowedExtensions[ext] || !allowedMimePattern.MatchString(input.ContentType) {
		return nil, photo.ErrInvalidFile
	}

	if input.Size > s.maxSize {
		return nil, photo.ErrFileTooLarge
	}

	uploadedBy := strings.TrimSpace(input.UploadedBy)
	if uploadedBy == "" {
		uploadedBy = "Anonymous"
	}

	// The client filename is never reused for storage, only kept as
	// originalName for display.
	filename := fmt.Sprintf("%s-%d-%s%s", fileFieldName, time.Now().UnixMilli(), uuid.NewString(), ext)

	if err := s.files.Save(filename, input.Content); err != nil {
		return nil, fmt.Errorf("failed to save uploaded file: %w", err)
	}

	record := photo.CreateInput{
		Filename:     filename,
		OriginalName: input.OriginalName,
		Caption:      input.Caption,
		UploadedBy:   uploadedBy,
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create photo record: %w", err)
	}

	return created, nil
}

// Delete removes the photo record and its backing file. A file that is
// already absent from disk is not an error.
func (s *PhotoService) Delete(ctx context.Context, id string) error {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.files.Delete(p.Filename); err != nil {
		logger.Error("failed to delete photo file", err)
	}

	return s.repo.Delete(ctx, id)
}
