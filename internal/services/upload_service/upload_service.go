package services

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/lib/apperr"
	"fosfenos/internal/lib/logger/sl"
	filestorage "fosfenos/internal/storage/filestorage"
)

type UploadService struct {
	log   *slog.Logger
	files filestorage.FileStorage
}

func NewUploadService(log *slog.Logger, files filestorage.FileStorage) *UploadService {
	return &UploadService{log: log, files: files}
}

// Upload validates an image and stores it under folder in the public static
// directory. Validation failures carry the user facing message.
func (s *UploadService) Upload(ctx context.Context, file *multipart.FileHeader, folder string) (models.UploadedFile, error) {
	const op = "upload_service.Upload"

	log := s.log.With(
		slog.String("op", op),
		slog.String("folder", folder),
	)

	if res := s.files.Validate(file); !res.Valid {
		log.Warn("rejected upload", slog.String("reason", res.Error))
		return models.UploadedFile{}, apperr.Validation(res.Error, nil)
	}

	log.Debug("saving file",
		slog.String("filename", file.Filename),
		slog.Int64("size", file.Size),
		slog.String("mime_type", file.Header.Get("Content-Type")),
	)

	saved, err := s.files.Save(ctx, file, folder)
	if err != nil {
		log.Error("failed to save file", sl.Err(err))
		return models.UploadedFile{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("file uploaded", slog.String("url", saved.URL), slog.Int64("size", saved.Size))

	return saved, nil
}
