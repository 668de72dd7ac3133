package cache

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgres_Get_Hit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT body FROM geocode_cache`).
		WithArgs("key1").
		WillReturnRows(pgxmock.NewRows([]string{"body"}).AddRow([]byte("cached")))

	s := NewPostgresWithPool(mock, time.Hour)
	body, ok, err := s.Get(context.Background(), "key1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("cached"), body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Get_Miss(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT body FROM geocode_cache`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"body"}))

	s := NewPostgresWithPool(mock, time.Hour)
	body, ok, err := s.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, body)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Set(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO geocode_cache`).
		WithArgs(pgxmock.AnyArg(), "key1", []byte("data"), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	s := NewPostgresWithPool(mock, time.Hour)
	require.NoError(t, s.Set(context.Background(), "key1", []byte("data")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Purge(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM geocode_cache`).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	s := NewPostgresWithPool(mock, time.Hour)
	n, err := s.Purge(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
