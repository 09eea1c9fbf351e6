package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashkit/internal/config"
)

// exerciseKV runs the behaviour every backend shares.
func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()
	key := UserKey("1", KeyPinnedMenus)

	_, err := kv.Get(ctx, key)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, SetJSON(ctx, kv, key, []string{"dashboard", "orders"}))
	got, err := GetJSON[[]string](ctx, kv, key)
	require.NoError(t, err)
	assert.Equal(t, []string{"dashboard", "orders"}, got)

	require.NoError(t, SetJSON(ctx, kv, key, []string{"team"}))
	got, err = GetJSON[[]string](ctx, kv, key)
	require.NoError(t, err)
	assert.Equal(t, []string{"team"}, got)

	require.NoError(t, kv.Delete(ctx, key))
	_, err = kv.Get(ctx, key)
	require.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, kv.Delete(ctx, key), "deleting a missing key is not an error")

	fallback, err := GetJSONOr(ctx, kv, UserKey("1", KeySidebarCollapsed), true)
	require.NoError(t, err)
	assert.True(t, fallback)
}

func TestMemoryStore(t *testing.T) {
	exerciseKV(t, NewMemoryStore())
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryStore()
	buf := []byte(`"dark"`)
	require.NoError(t, kv.Set(ctx, KeyTheme, buf))
	buf[1] = 'X'
	got, err := kv.Get(ctx, KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, `"dark"`, string(got))
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	kv, err := OpenFileStore(path)
	require.NoError(t, err)
	exerciseKV(t, kv)
}

func TestFileStorePersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "settings.json")

	kv, err := OpenFileStore(path)
	require.NoError(t, err)
	require.NoError(t, SetJSON(ctx, kv, KeyTheme, "dark"))

	reopened, err := OpenFileStore(path)
	require.NoError(t, err)
	theme, err := GetJSON[string](ctx, reopened, KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}

func TestFileStoreRejectsNonJSON(t *testing.T) {
	kv, err := OpenFileStore(filepath.Join(t.TempDir(), "s.json"))
	require.NoError(t, err)
	assert.Error(t, kv.Set(context.Background(), "k", []byte("not json")))
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	_, err := OpenFileStore(path)
	assert.Error(t, err)
}

func TestSQLiteStore(t *testing.T) {
	kv, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	exerciseKV(t, kv)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("DASHKIT_TEST_REDIS")
	if addr == "" {
		t.Skip("DASHKIT_TEST_REDIS not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	kv := NewRedisStore(client, "dashkit-test:"+t.Name()+":")
	t.Cleanup(func() { _ = kv.Close() })
	exerciseKV(t, kv)
}

func TestOpenSelectsBackend(t *testing.T) {
	ctx := context.Background()

	kv, err := Open(ctx, config.StoreConfig{Driver: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, kv)

	kv, err = Open(ctx, config.StoreConfig{Driver: "file", Path: filepath.Join(t.TempDir(), "s.json")})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, kv)

	_, err = Open(ctx, config.StoreConfig{Driver: "etcd"})
	assert.Error(t, err)
}
