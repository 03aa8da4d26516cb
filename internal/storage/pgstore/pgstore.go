package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/linemk/storefront/internal/storage"
)

// PgStore — реализация storage.Store поверх таблицы kv_store в Postgres.
// Используется, когда состояние витрины нужно держать на сервере,
// а не в локальном каталоге данных
type PgStore struct {
	db *sql.DB
}

var _ storage.Store = (*PgStore)(nil)

func New(db *sql.DB) *PgStore {
	return &PgStore{db: db}
}

// Set выполняет upsert: повторная запись по ключу перезаписывает значение
func (p *PgStore) Set(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, NOW())
	          ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	if _, err := p.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set value for key %q: %w", key, err)
	}
	return nil
}

func (p *PgStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	row := p.db.QueryRowContext(ctx, "SELECT value FROM kv_store WHERE key = $1", key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get value for key %q: %w", key, err)
	}
	return value, nil
}

// Remove удаляет значение; отсутствие строки не считается ошибкой
func (p *PgStore) Remove(ctx context.Context, key string) error {
	if _, err := p.db.ExecContext(ctx, "DELETE FROM kv_store WHERE key = $1", key); err != nil {
		return fmt.Errorf("failed to remove value for key %q: %w", key, err)
	}
	return nil
}
