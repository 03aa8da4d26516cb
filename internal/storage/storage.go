package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound возвращается, когда значение по ключу отсутствует
// либо сохранённое значение не удалось разобрать
var ErrNotFound = errors.New("value not found")

// Ключи хранилища. Других ключей в этом приложении нет
const (
	KeyUserToken = "user_token"
	KeyUserData  = "user_data"
	KeyOrders    = "orders"
)

// Store описывает durable key-value хранилище.
// Значения — непрозрачные блобы, переживающие перезапуск процесса.
// Транзакционных гарантий между разными ключами нет
type Store interface {
	Set(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Remove(ctx context.Context, key string) error
}

// SetJSON сериализует значение в JSON и кладёт его в хранилище
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %q: %w", key, err)
	}
	return s.Set(ctx, key, data)
}

// GetJSON читает значение по ключу и разбирает его в v.
// Повреждённое (неразбираемое) значение трактуется как отсутствующее:
// доступность важнее строгой корректности
func GetJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return ErrNotFound
	}
	return nil
}
