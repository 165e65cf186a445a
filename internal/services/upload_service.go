package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedUploadExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".pdf":  true,
}

var ErrFileTooLarge = errors.New("file exceeds the upload size limit")

// UploadService stores uploaded assets on local disk under the configured
// upload root, one subfolder per content type.
type UploadService struct {
	root    string
	maxSize int64
}

func NewUploadService(root string, maxSize int64) *UploadService {
	return &UploadService{root: root, maxSize: maxSize}
}

// Save writes the file under <root>/<folder>/<uuid><ext> and returns the
// public path it will be served from.
func (s *UploadService) Save(file *multipart.FileHeader, folder string) (string, error) {
	if file.Size > s.maxSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedUploadExtensions[ext] {
		return "", fmt.Errorf("invalid file type %q", ext)
	}

	// Keep folder a single path element so callers can't escape the root.
	folder = filepath.Base(folder)
	if folder == "." || folder == string(filepath.Separator) {
		folder = "misc"
	}

	dir := filepath.Join(s.root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write uploaded file: %w", err)
	}

	return "/uploads/" + folder + "/" + name, nil
}

// Delete removes a previously uploaded file by its public path.
func (s *UploadService) Delete(publicPath string) error {
	rel := strings.TrimPrefix(publicPath, "/uploads/")
	rel = filepath.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") {
		return errors.New("invalid upload path")
	}
	return os.Remove(filepath.Join(s.root, rel))
}
