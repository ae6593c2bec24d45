package persist

import (
	"errors"
	"os"
	"path/filepath"
)

// FileKV keeps one file per key inside a directory. Writes go through a tmp
// file + rename so readers never observe a partial value.
type FileKV struct {
	Dir string
}

func NewFileKV(dir string) (*FileKV, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileKV{Dir: dir}, nil
}

func (k *FileKV) path(key string) string {
	return filepath.Join(k.Dir, key)
}

func (k *FileKV) Get(key string) (string, bool, error) {
	b, err := os.ReadFile(k.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(b), true, nil
}

func (k *FileKV) Set(key, value string) error {
	path := k.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (k *FileKV) Delete(key string) error {
	err := os.Remove(k.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (k *FileKV) Close() error { return nil }
