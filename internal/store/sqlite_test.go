package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "trade-journal/internal/errors"
)

func newTestKV(t *testing.T) *SQLiteKV {
	t.Helper()
	kv, err := NewSQLiteKV(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestSQLiteKVRoundTrip(t *testing.T) {
	kv := newTestKV(t)

	require.NoError(t, kv.Set(KeyJournal, `{"weeks":[]}`))
	value, err := kv.Get(KeyJournal)
	require.NoError(t, err)
	assert.Equal(t, `{"weeks":[]}`, value)

	// Overwrite replaces the previous payload.
	require.NoError(t, kv.Set(KeyJournal, `{"weeks":[],"totalPercentGain":0}`))
	value, err = kv.Get(KeyJournal)
	require.NoError(t, err)
	assert.Equal(t, `{"weeks":[],"totalPercentGain":0}`, value)
}

func TestSQLiteKVMissingKey(t *testing.T) {
	kv := newTestKV(t)

	_, err := kv.Get(KeyCapital)
	assert.ErrorIs(t, err, apperrors.ErrKeyNotFound)
}

func TestSQLiteKVDelete(t *testing.T) {
	kv := newTestKV(t)

	require.NoError(t, kv.Set(KeyCapital, "10000"))
	require.NoError(t, kv.Delete(KeyCapital))
	_, err := kv.Get(KeyCapital)
	assert.ErrorIs(t, err, apperrors.ErrKeyNotFound)

	// Deleting a missing key is not an error.
	require.NoError(t, kv.Delete(KeyCapital))
}

func TestSQLiteKVEntriesAreIndependent(t *testing.T) {
	kv := newTestKV(t)

	require.NoError(t, kv.Set(KeyJournal, "a"))
	require.NoError(t, kv.Set(KeyCapital, "b"))
	require.NoError(t, kv.Set(KeySettings, "c"))

	require.NoError(t, kv.Delete(KeyCapital))

	v, err := kv.Get(KeyJournal)
	require.NoError(t, err)
	assert.Equal(t, "a", v)
	v, err = kv.Get(KeySettings)
	require.NoError(t, err)
	assert.Equal(t, "c", v)
}

func TestSQLiteKVPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	kv, err := NewSQLiteKV(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(KeyCapital, "2500.50"))
	require.NoError(t, kv.Close())

	reopened, err := NewSQLiteKV(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, err := reopened.Get(KeyCapital)
	require.NoError(t, err)
	assert.Equal(t, "2500.50", v)
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()

	_, err := kv.Get("missing")
	assert.ErrorIs(t, err, apperrors.ErrKeyNotFound)

	require.NoError(t, kv.Set("k", "v"))
	v, err := kv.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	require.NoError(t, kv.Delete("k"))
	_, err = kv.Get("k")
	assert.ErrorIs(t, err, apperrors.ErrKeyNotFound)
}
