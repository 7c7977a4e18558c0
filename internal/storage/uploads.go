// Package storage manages the room image files on local disk.  Uploaded
// images are written under a single uploads directory with generated
// timestamp names and served back by static path.  Deleting a room removes
// its files through the same store.
package storage

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store writes and removes image files inside its base directory.
type Store struct {
	dir string
}

// New ensures the base directory exists and returns a Store rooted there.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the base directory, used to mount the static file route.
func (s *Store) Dir() string { return s.dir }

// SaveImage streams an uploaded image to disk under a generated name of
// the form room-<unix-nanos><ext> and returns that filename.  The
// extension is taken from the original filename and lowercased; the rest
// of the original name is discarded so client input never reaches the
// filesystem.
func (s *Store) SaveImage(src io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := fmt.Sprintf("room-%d%s", time.Now().UnixNano(), ext)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}
	return name, nil
}

// Remove deletes the named files from the store.  Missing files are
// ignored and other removal failures are logged rather than returned:
// once the room row is gone, a leftover file must not fail the request.
func (s *Store) Remove(filenames []string) {
	for _, name := range filenames {
		// Refuse anything that could escape the uploads directory.
		if name == "" || name != filepath.Base(name) {
			continue
		}
		err := os.Remove(filepath.Join(s.dir, name))
		if err != nil && !os.IsNotExist(err) {
			log.Printf("storage: remove %s failed: %v", name, err)
		}
	}
}
