package jsonfile

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
)

// readFile returns the content of path, or nil when the file does not exist.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}
	if data == nil {
		data = []byte{}
	}

	return data, nil
}

// fileMode is the mode of newly created data files.
const fileMode fs.FileMode = 0o644

// writeFileAtomic writes data to a temporary file next to path and renames it
// over path, so readers never observe a partially written file. An existing
// file keeps its permissions.
func writeFileAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create directory")
	}

	mode := fileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	// CreateTemp uses 0600
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()

		return errors.Wrap(err, "chmod temp file")
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()

		return errors.Wrap(err, "write temp file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()

		return errors.Wrap(err, "sync temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(err, "rename temp file")
	}

	return nil
}

// copyFile copies src to dst, replacing dst.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return errors.Wrap(err, "read file")
	}

	return writeFileAtomic(dst, data)
}
