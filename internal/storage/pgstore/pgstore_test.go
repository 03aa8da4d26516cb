package pgstore_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/linemk/storefront/internal/storage"
	"github.com/linemk/storefront/internal/storage/pgstore"
	"github.com/stretchr/testify/assert"
)

func TestPgStore_Set(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv_store").
		WithArgs(storage.KeyOrders, []byte("[]")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := pgstore.New(db)
	err = store.Set(context.Background(), storage.KeyOrders, []byte("[]"))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgStore_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow([]byte("token-value"))
	mock.ExpectQuery("SELECT value FROM kv_store").
		WithArgs(storage.KeyUserToken).
		WillReturnRows(rows)

	store := pgstore.New(db)
	value, err := store.Get(context.Background(), storage.KeyUserToken)
	assert.NoError(t, err)
	assert.Equal(t, "token-value", string(value))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgStore_Get_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM kv_store").
		WithArgs(storage.KeyUserToken).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	store := pgstore.New(db)
	_, err = store.Get(context.Background(), storage.KeyUserToken)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgStore_Remove(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM kv_store").
		WithArgs(storage.KeyUserData).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := pgstore.New(db)
	assert.NoError(t, store.Remove(context.Background(), storage.KeyUserData))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPgStore_Remove_MissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM kv_store").
		WithArgs(storage.KeyUserData).
		WillReturnResult(sqlmock.NewResult(0, 0))

	store := pgstore.New(db)
	// отсутствие строки не считается ошибкой
	assert.NoError(t, store.Remove(context.Background(), storage.KeyUserData))
	assert.NoError(t, mock.ExpectationsWereMet())
}
