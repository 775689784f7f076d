package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestKVSetGet(t *testing.T) {
	kv := openTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "search.history", `["mouse"]`))
	v, ok, err := kv.Get(ctx, "search.history")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["mouse"]`, v)
}

func TestKVGetMissing(t *testing.T) {
	kv := openTestKV(t)
	_, ok, err := kv.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVSetOverwrites(t *testing.T) {
	kv := openTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", "first"))
	require.NoError(t, kv.Set(ctx, "k", "second"))
	v, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestKVEmptyKeyRejected(t *testing.T) {
	kv := openTestKV(t)
	ctx := context.Background()

	_, _, err := kv.Get(ctx, "")
	assert.Error(t, err)
	assert.Error(t, kv.Set(ctx, "", "v"))
}

func TestKVPersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.db")
	ctx := context.Background()

	kv, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "k", "v"))
	require.NoError(t, kv.Close())

	kv2, err := Open(path)
	require.NoError(t, err)
	defer kv2.Close()
	v, ok, err := kv2.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestKVCloseIdempotent(t *testing.T) {
	kv, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	require.NoError(t, kv.Close())
	assert.NoError(t, kv.Close())
}

func TestKVCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "state.db")
	kv, err := Open(path)
	require.NoError(t, err)
	kv.Close()
}

func TestMemorySink(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "k", "v"))
	v, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
