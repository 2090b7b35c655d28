package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"md-terceirizacao-api/internal/domain"
)

// Stager writes uploaded files into a local directory for the duration of a
// request. Files are named "<unix-millis>-<original name>" and are not removed
// after the request completes.
type Stager struct {
	dir string
	now func() time.Time
}

func NewStager(dir string) *Stager {
	return &Stager{dir: dir, now: time.Now}
}

// Dir returns the staging directory.
func (s *Stager) Dir() string {
	return s.dir
}

// EnsureDir creates the staging directory if it does not exist. Called once at
// startup, before the server accepts requests.
func (s *Stager) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create upload dir %q: %w", s.dir, err)
	}
	return nil
}

// Stage copies the uploaded file to disk. No size or type restriction applies.
func (s *Stager) Stage(fh *multipart.FileHeader) (*domain.UploadedFile, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	if err := s.EnsureDir(); err != nil {
		return nil, err
	}

	original := fh.Filename
	storedPath := filepath.Join(s.dir, fmt.Sprintf("%d-%s", s.now().UnixMilli(), safeName(original)))

	dst, err := os.OpenFile(storedPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create staged file: %w", err)
	}

	n, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to write staged file: %w", err)
	}

	return &domain.UploadedFile{
		OriginalName: original,
		StoredPath:   storedPath,
		Size:         n,
	}, nil
}

// safeName strips any directory components a client put in the filename.
func safeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "curriculo"
	}
	return name
}
