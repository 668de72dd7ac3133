package cache

import (
	"context"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T, ttl time.Duration) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "cache.db"), ttl)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() }) //nolint:errcheck
	return s
}

func TestSQLite_SetGet(t *testing.T) {
	s := newTestSQLite(t, time.Hour)
	ctx := context.Background()

	body, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, body)

	require.NoError(t, s.Set(ctx, "key1", []byte(`{"result":{}}`)))

	body, ok, err = s.Get(ctx, "key1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"result":{}}`), body)
}

func TestSQLite_Overwrite(t *testing.T) {
	s := newTestSQLite(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "key1", []byte("old")))
	require.NoError(t, s.Set(ctx, "key1", []byte("new")))

	body, ok, err := s.Get(ctx, "key1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("new"), body)
}

func TestSQLite_Expiry(t *testing.T) {
	s := newTestSQLite(t, time.Nanosecond)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "key1", []byte("data")))
	time.Sleep(10 * time.Millisecond)

	_, ok, err := s.Get(ctx, "key1")
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := s.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestKey_Canonical(t *testing.T) {
	a := url.Values{"benchmark": {"Public_AR_Current"}, "address": {"100 Main St"}}
	b := url.Values{"address": {"100 Main St"}, "benchmark": {"Public_AR_Current"}}

	// Parameter insertion order does not change the digest.
	assert.Equal(t, Key("/geocoder/locations/onelineaddress", a), Key("/geocoder/locations/onelineaddress", b))

	c := url.Values{"address": {"101 Main St"}, "benchmark": {"Public_AR_Current"}}
	assert.NotEqual(t, Key("/geocoder/locations/onelineaddress", a), Key("/geocoder/locations/onelineaddress", c))
	assert.NotEqual(t, Key("/geocoder/locations/onelineaddress", a), Key("/geocoder/geographies/onelineaddress", a))
}
