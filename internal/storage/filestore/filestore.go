package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/linemk/storefront/internal/storage"
)

// FileStore — файловая реализация storage.Store: по одному файлу на ключ
// внутри каталога данных. Аналог локального хранилища мобильного приложения
type FileStore struct {
	dir string
}

var _ storage.Store = (*FileStore)(nil)

// New создаёт хранилище в каталоге dir, при необходимости создавая его
func New(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %q: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// путь до файла ключа; ключи фиксированы (см. storage.Key*), поэтому
// дополнительная санация имени не требуется
func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Set пишет значение через временный файл и rename, чтобы при обрыве записи
// не остался наполовину записанный блоб
func (f *FileStore) Set(ctx context.Context, key string, value []byte) error {
	tmp, err := os.CreateTemp(f.dir, key+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for key %q: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write value for key %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for key %q: %w", key, err)
	}

	if err := os.Rename(tmpName, f.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to persist value for key %q: %w", key, err)
	}
	return nil
}

func (f *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read value for key %q: %w", key, err)
	}
	return data, nil
}

// Remove удаляет значение; отсутствие ключа не считается ошибкой
func (f *FileStore) Remove(ctx context.Context, key string) error {
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove value for key %q: %w", key, err)
	}
	return nil
}
