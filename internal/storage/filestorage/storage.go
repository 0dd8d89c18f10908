package storage

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"fosfenos/internal/domain/models"
	"fosfenos/internal/storage"
)

const (
	DefaultFolder  = "uploads"
	DefaultMaxSize = 5 * 1024 * 1024

	suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixLen      = 6
)

// allowedTypes maps each accepted MIME type to the extensions a stored file
// may carry. The first entry is used when the client name does not match.
var allowedTypes = map[string][]string{
	"image/jpeg": {"jpg", "jpeg"},
	"image/jpg":  {"jpg", "jpeg"},
	"image/png":  {"png"},
	"image/webp": {"webp"},
	"image/gif":  {"gif"},
}

// FileStorage is a store for publicly served uploads.
type FileStorage interface {
	Validate(file *multipart.FileHeader) models.ValidationResult
	Save(ctx context.Context, file *multipart.FileHeader, folder string) (models.UploadedFile, error)
	Delete(ctx context.Context, relPath string) error
}

// LocalFileStorage keeps files under baseDir, which is also served at "/".
type LocalFileStorage struct {
	baseDir string
	maxSize int64
	now     func() time.Time
}

func NewLocalFileStorage(baseDir string, maxSize int64) (*LocalFileStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	return &LocalFileStorage{
		baseDir: baseDir,
		maxSize: maxSize,
		now:     time.Now,
	}, nil
}

// ValidateImageFile checks presence, declared MIME type and size.
func ValidateImageFile(file *multipart.FileHeader, maxSize int64) models.ValidationResult {
	if file == nil || file.Size == 0 {
		return models.ValidationResult{Error: "No file provided"}
	}

	if _, ok := allowedTypes[strings.ToLower(file.Header.Get("Content-Type"))]; !ok {
		return models.ValidationResult{Error: "Invalid file type. Only JPEG, PNG, WebP and GIF are allowed."}
	}

	if file.Size > maxSize {
		return models.ValidationResult{Error: fmt.Sprintf("File too large. Maximum size is %dMB.", maxSize/(1024*1024))}
	}

	return models.ValidationResult{Valid: true}
}

func (s *LocalFileStorage) Validate(file *multipart.FileHeader) models.ValidationResult {
	return ValidateImageFile(file, s.maxSize)
}

func (s *LocalFileStorage) Save(ctx context.Context, file *multipart.FileHeader, folder string) (models.UploadedFile, error) {
	const op = "storage.filestorage.Save"

	if err := ctx.Err(); err != nil {
		return models.UploadedFile{}, err
	}

	if res := s.Validate(file); !res.Valid {
		return models.UploadedFile{}, fmt.Errorf("%s: %s: %w", op, res.Error, validationErr(file, s.maxSize))
	}

	folder = CleanFolder(folder)

	name, err := s.fileName(file.Filename, file.Header.Get("Content-Type"))
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("%s: %w", op, err)
	}

	dir := filepath.Join(s.baseDir, filepath.FromSlash(folder))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return models.UploadedFile{}, fmt.Errorf("%s: failed to create directories: %w", op, err)
	}

	src, err := file.Open()
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("%s: failed to open source file: %w", op, err)
	}
	defer src.Close()

	fullPath := filepath.Join(dir, name)
	dst, err := os.Create(fullPath)
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("%s: failed to create destination file: %w", op, err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		_ = os.Remove(fullPath)
		return models.UploadedFile{}, fmt.Errorf("%s: failed to copy file: %w", op, err)
	}

	return models.UploadedFile{
		FileName: name,
		URL:      "/" + folder + "/" + name,
		Size:     size,
		Type:     file.Header.Get("Content-Type"),
	}, nil
}

// Delete removes a previously saved file given its public URL or relative path.
func (s *LocalFileStorage) Delete(ctx context.Context, relPath string) error {
	clean := path.Clean("/" + strings.TrimSpace(relPath))
	if clean == "/" {
		return storage.ErrFileNotFound
	}

	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(clean)))
	if os.IsNotExist(err) {
		return storage.ErrFileNotFound
	}
	return err
}

// CleanFolder turns a requested folder into a relative slash path that
// cannot escape the base directory.
func CleanFolder(folder string) string {
	folder = strings.ReplaceAll(strings.TrimSpace(folder), "\\", "/")

	parts := make([]string, 0)
	for _, p := range strings.Split(folder, "/") {
		if p == "" || p == "." || p == ".." {
			continue
		}
		parts = append(parts, p)
	}

	if len(parts) == 0 {
		return DefaultFolder
	}
	return strings.Join(parts, "/")
}

func (s *LocalFileStorage) fileName(original, contentType string) (string, error) {
	suffix, err := randomSuffix()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d-%s.%s", s.now().UnixMilli(), suffix, extensionFor(original, contentType)), nil
}

// extensionFor keeps the client's extension only when it agrees with the
// declared type, so a validated image is never stored as .html or .svg.
func extensionFor(original, contentType string) string {
	exts, ok := allowedTypes[strings.ToLower(contentType)]
	if !ok || len(exts) == 0 {
		return "jpg"
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(original)), ".")
	for _, e := range exts {
		if e == ext {
			return ext
		}
	}
	return exts[0]
}

func randomSuffix() (string, error) {
	b := make([]byte, suffixLen)
	max := big.NewInt(int64(len(suffixAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = suffixAlphabet[n.Int64()]
	}
	return string(b), nil
}

func validationErr(file *multipart.FileHeader, maxSize int64) error {
	switch {
	case file == nil || file.Size == 0:
		return storage.ErrEmptyFile
	case file.Size > maxSize:
		if _, ok := allowedTypes[strings.ToLower(file.Header.Get("Content-Type"))]; ok {
			return storage.ErrFileTooLarge
		}
	}
	return storage.ErrInvalidFileType
}
