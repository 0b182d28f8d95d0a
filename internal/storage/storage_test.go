package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliocraft/backend/internal/storage"
)

func TestNewLocalStoreCreatesCategoryDirs(t *testing.T) {
	baseDir := t.TempDir()

	_, err := storage.NewLocalStore(baseDir, "/uploads")
	require.NoError(t, err)

	for _, category := range storage.Categories {
		info, err := os.Stat(filepath.Join(baseDir, category))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestLocalStoreSave(t *testing.T) {
	baseDir := t.TempDir()
	store, err := storage.NewLocalStore(baseDir, "/uploads")
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "profile", "123-abcd.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/profile/123-abcd.png", url)

	data, err := os.ReadFile(filepath.Join(baseDir, "profile", "123-abcd.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}
