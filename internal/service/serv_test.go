package service_test

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/linemk/storefront/internal/domain/models"
	"github.com/linemk/storefront/internal/storage"
)

// memStore — хранилище в памяти для тестов сервисов.
// "Перезапуск процесса" эмулируется созданием новых сервисов поверх того же memStore
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

var _ storage.Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

func (m *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return value, nil
}

func (m *memStore) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func product(id int, title string, price float64) models.Product {
	return models.Product{
		ID:    id,
		Title: title,
		Price: price,
	}
}
