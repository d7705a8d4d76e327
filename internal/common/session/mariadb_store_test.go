package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMariaDBStore(t *testing.T) (*MariaDBStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewMariaDBStore(db), mock
}

func TestMariaDBStore_EnsureSchema(t *testing.T) {
	store, mock := newMariaDBStore(t)
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS Portal_Local_Storage`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.EnsureSchema(context.Background()))
}

func TestMariaDBStore_Get(t *testing.T) {
	store, mock := newMariaDBStore(t)
	mock.ExpectQuery(`SELECT Item_Value FROM Portal_Local_Storage WHERE Namespace = \? AND Item_Key = \?`).
		WithArgs("ns", KeyToken).
		WillReturnRows(sqlmock.NewRows([]string{"Item_Value"}).AddRow("t"))
	mock.ExpectQuery(`SELECT Item_Value FROM Portal_Local_Storage`).
		WithArgs("ns", KeyUser).
		WillReturnRows(sqlmock.NewRows([]string{"Item_Value"}))

	v, ok, err := store.Get(context.Background(), "ns", KeyToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t", v)

	_, ok, err = store.Get(context.Background(), "ns", KeyUser)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMariaDBStore_GetError(t *testing.T) {
	store, mock := newMariaDBStore(t)
	mock.ExpectQuery(`SELECT Item_Value`).WillReturnError(errors.New("connection lost"))

	_, ok, err := store.Get(context.Background(), "ns", KeyToken)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestMariaDBStore_SetUpserts(t *testing.T) {
	store, mock := newMariaDBStore(t)
	mock.ExpectExec(`INSERT INTO Portal_Local_Storage .+ ON DUPLICATE KEY UPDATE Item_Value = VALUES\(Item_Value\), Updated_At = NOW\(\)`).
		WithArgs("ns", KeyToken, "t").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Set(context.Background(), "ns", KeyToken, "t"))
}

func TestMariaDBStore_RemoveAndClear(t *testing.T) {
	store, mock := newMariaDBStore(t)
	mock.ExpectExec(`DELETE FROM Portal_Local_Storage WHERE Namespace = \? AND Item_Key = \?`).
		WithArgs("ns", KeyToken).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM Portal_Local_Storage WHERE Namespace = \?$`).
		WithArgs("ns").
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, store.Remove(context.Background(), "ns", KeyToken))
	require.NoError(t, store.Clear(context.Background(), "ns"))
}

func TestMariaDBStore_PurgeStaleNamespaces(t *testing.T) {
	store, mock := newMariaDBStore(t)
	cutoff := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(`DELETE FROM Portal_Local_Storage WHERE Namespace IN .+GROUP BY Namespace HAVING MAX\(Updated_At\) < \?`).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := store.Purge(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
