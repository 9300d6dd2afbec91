package storage

import (
	"context"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newStore(t *testing.T, maxBytes int64) (*DiskSlipStore, string) {
	dir := filepath.Join(t.TempDir(), "slips")

	cfg := viper.New()
	cfg.Set("upload.dir", dir)
	cfg.Set("upload.max_bytes", maxBytes)

	store := &DiskSlipStore{Cfg: cfg}
	require.NoError(t, store.Init())
	return store, dir
}

func TestSave(t *testing.T) {
	store, dir := newStore(t, 16)

	path, err := store.Save(context.Background(), "../../01HX.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "01HX.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	_, err = store.Save(context.Background(), "01HX.png", strings.NewReader("again"))
	assert.Error(t, err)
}

func TestSaveTooLarge(t *testing.T) {
	store, dir := newStore(t, 4)

	_, err := store.Save(context.Background(), "big.pdf", strings.NewReader("12345"))
	assert.ErrorIs(t, err, ErrTooLarge)

	_, statErr := os.Stat(filepath.Join(dir, "big.pdf"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveCancelled(t *testing.T) {
	store, _ := newStore(t, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Save(ctx, "a.jpg", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRemove(t *testing.T) {
	store, dir := newStore(t, 0)
	ctx := context.Background()

	path, err := store.Save(ctx, "01HY.jpg", strings.NewReader("jpg"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, path))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	assert.NoError(t, store.Remove(ctx, path))
	assert.ErrorIs(t, store.Remove(ctx, filepath.Join(dir, "..", "env.yaml")), ErrOutsideRoot)
}
