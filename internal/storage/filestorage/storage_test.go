package storage_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"fosfenos/internal/storage"
	filestorage "fosfenos/internal/storage/filestorage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestFile(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)

	part, err := writer.CreatePart(h)
	require.NoError(t, err)

	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := req.FormFile("file")
	require.NoError(t, err)
	file.Close()

	return header
}

func TestValidateImageFile(t *testing.T) {
	tests := []struct {
		name    string
		file    *multipart.FileHeader
		valid   bool
		message string
	}{
		{"nil file", nil, false, "No file provided"},
		{"empty file", createTestFile(t, "a.png", "image/png", nil), false, "No file provided"},
		{"pdf", createTestFile(t, "a.pdf", "application/pdf", []byte("x")), false, "Invalid file type"},
		{"too large", createTestFile(t, "a.png", "image/png", make([]byte, 11)), false, "File too large"},
		{"webp", createTestFile(t, "a.webp", "image/webp", []byte("x")), true, ""},
		{"jpg alias", createTestFile(t, "a.jpg", "image/jpg", []byte("x")), true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := filestorage.ValidateImageFile(tt.file, 10)
			assert.Equal(t, tt.valid, res.Valid)
			if tt.message != "" {
				assert.Contains(t, res.Error, tt.message)
			}
		})
	}
}

func TestValidateImageFileDefaultLimit(t *testing.T) {
	limit := int64(filestorage.DefaultMaxSize)

	atLimit := createTestFile(t, "big.png", "image/png", make([]byte, limit))
	assert.True(t, filestorage.ValidateImageFile(atLimit, limit).Valid)

	overLimit := createTestFile(t, "big.png", "image/png", make([]byte, limit+1))
	res := filestorage.ValidateImageFile(overLimit, limit)
	assert.False(t, res.Valid)
	assert.Equal(t, "File too large. Maximum size is 5MB.", res.Error)
}

func TestLocalFileStorage_Save(t *testing.T) {
	dir := t.TempDir()
	fs, err := filestorage.NewLocalFileStorage(dir, 0)
	require.NoError(t, err)

	ctx := context.Background()
	nameRe := regexp.MustCompile(`^\d+-[0-9a-z]{6}\.png$`)

	t.Run("successful save", func(t *testing.T) {
		res, err := fs.Save(ctx, createTestFile(t, "Poster.PNG", "image/png", []byte("png")), "posters")
		require.NoError(t, err)

		assert.Regexp(t, nameRe, res.FileName)
		assert.Equal(t, "/posters/"+res.FileName, res.URL)
		assert.Equal(t, int64(3), res.Size)
		assert.Equal(t, "image/png", res.Type)

		data, err := os.ReadFile(filepath.Join(dir, "posters", res.FileName))
		require.NoError(t, err)
		assert.Equal(t, "png", string(data))
	})

	t.Run("default folder and extension", func(t *testing.T) {
		res, err := fs.Save(ctx, createTestFile(t, "noext", "image/jpeg", []byte("j")), "")
		require.NoError(t, err)
		assert.Regexp(t, `^/uploads/\d+-[0-9a-z]{6}\.jpg$`, res.URL)
	})

	t.Run("extension follows declared type", func(t *testing.T) {
		tests := []struct {
			filename, contentType, wantExt string
		}{
			{"x.html", "image/png", "png"},
			{"logo.svg", "image/webp", "webp"},
			{"photo.JPEG", "image/jpeg", "jpeg"},
			{"photo.png", "image/jpg", "jpg"},
		}
		for _, tt := range tests {
			res, err := fs.Save(ctx, createTestFile(t, tt.filename, tt.contentType, []byte("x")), "")
			require.NoError(t, err)
			assert.Regexp(t, `\.`+tt.wantExt+`$`, res.FileName, tt.filename)
		}
	})

	t.Run("traversal is stripped", func(t *testing.T) {
		res, err := fs.Save(ctx, createTestFile(t, "a.gif", "image/gif", []byte("g")), "../../etc")
		require.NoError(t, err)
		assert.Equal(t, "/etc/"+res.FileName, res.URL)
		assert.FileExists(t, filepath.Join(dir, "etc", res.FileName))
	})

	t.Run("invalid type", func(t *testing.T) {
		_, err := fs.Save(ctx, createTestFile(t, "a.txt", "text/plain", []byte("t")), "")
		assert.ErrorIs(t, err, storage.ErrInvalidFileType)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := fs.Save(cctx, createTestFile(t, "a.png", "image/png", []byte("p")), "")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLocalFileStorage_Delete(t *testing.T) {
	dir := t.TempDir()
	fs, err := filestorage.NewLocalFileStorage(dir, 0)
	require.NoError(t, err)

	ctx := context.Background()
	res, err := fs.Save(ctx, createTestFile(t, "a.png", "image/png", []byte("p")), "team")
	require.NoError(t, err)

	require.NoError(t, fs.Delete(ctx, res.URL))
	assert.NoFileExists(t, filepath.Join(dir, "team", res.FileName))

	assert.ErrorIs(t, fs.Delete(ctx, res.URL), storage.ErrFileNotFound)
	assert.ErrorIs(t, fs.Delete(ctx, "/"), storage.ErrFileNotFound)
}

func TestCleanFolder(t *testing.T) {
	assert.Equal(t, "uploads", filestorage.CleanFolder(""))
	assert.Equal(t, "uploads", filestorage.CleanFolder("../.."))
	assert.Equal(t, "team/dark", filestorage.CleanFolder("/team//dark/"))
	assert.Equal(t, "a/b", filestorage.CleanFolder(`a\..\b`))
}
