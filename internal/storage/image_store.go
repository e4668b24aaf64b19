package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrUnsupportedContentType is returned when the uploaded content type is not
// in the allow list.
var ErrUnsupportedContentType = errors.New("unsupported image content type")

// contentTypeExtensions is the allow list of upload content types and the
// file extension each maps to.
var contentTypeExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpeg",
	"image/gif":  ".gif",
}

// extensionContentTypes is the inverse mapping, used when serving a stored file.
var extensionContentTypes = map[string]string{
	".png":  "image/png",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
}

// ImageStore keeps at most one image file per owning entity id under a single
// directory. Filenames are derived deterministically from the entity id and
// the upload's content type, e.g. "game_12.png".
type ImageStore struct {
	dir    string
	prefix string
}

// NewImageStore creates the backing directory if needed.
func NewImageStore(dir, prefix string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	return &ImageStore{dir: dir, prefix: prefix}, nil
}

// Filename returns the stored name for the given entity id and content type.
func (s *ImageStore) Filename(id int64, contentType string) (string, error) {
	ext, ok := contentTypeExtensions[contentType]
	if !ok {
		return "", ErrUnsupportedContentType
	}
	return fmt.Sprintf("%s_%d%s", s.prefix, id, ext), nil
}

// Save writes the image bytes for the entity, removing any previously stored
// file first so at most one file per entity remains. Returns the filename to
// persist on the owning row.
func (s *ImageStore) Save(id int64, contentType string, data []byte, oldFilename *string) (string, error) {
	filename, err := s.Filename(id, contentType)
	if err != nil {
		return "", err
	}
	if oldFilename != nil && *oldFilename != filename {
		// best effort: a missing old file is not an error
		_ = os.Remove(filepath.Join(s.dir, *oldFilename))
	}
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return filename, nil
}

// Read returns the stored bytes and the content type inferred from the
// filename's extension.
func (s *ImageStore) Read(filename string) ([]byte, string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}
	contentType, ok := extensionContentTypes[filepath.Ext(filename)]
	if !ok {
		contentType = "application/octet-stream"
	}
	return data, contentType, nil
}

// Remove deletes the stored file.
func (s *ImageStore) Remove(filename string) error {
	if err := os.Remove(filepath.Join(s.dir, filename)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}
