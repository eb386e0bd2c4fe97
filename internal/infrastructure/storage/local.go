package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Local stores uploaded files on the local filesystem under a single
// directory. The directory is created on first use.
type Local struct {
	dir string
}

func NewLocal(dir string) *Local {
	return &Local{dir: dir}
}

// Dir returns the upload directory path.
func (s *Local) Dir() string {
	return s.dir
}

// Path returns the on-disk path for a stored filename. The filename is
// reduced to its base name so a crafted name cannot escape the directory.
func (s *Local) Path(filename string) string {
	return filepath.Join(s.dir, filepath.Base(filename))
}

// Save writes the file content under the given filename.
func (s *Local) Save(filename string, r io.Reader) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create upload dir: %w", err)
	}

	f, err := os.Create(s.Path(filename))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// Exists reports whether a stored file is present.
func (s *Local) Exists(filename string) bool {
	info, err := os.Stat(s.Path(filename))
	return err == nil && !info.IsDir()
}

// Delete removes a stored file. Deleting a file that is already absent
// is not an error.
func (s *Local) Delete(filename string) error {
	err := os.Remove(s.Path(filename))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
