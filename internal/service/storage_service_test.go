package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	root := t.TempDir()
	storage := &StorageService{Provider: &LocalStorageProvider{Root: root}}
	ctx := context.Background()

	require.NoError(t, storage.UploadBytes(ctx, "exports/quizzes/a/one.json", []byte(`{"n":1}`), "application/json"))
	require.NoError(t, storage.UploadBytes(ctx, "exports/quizzes/a/two.json", []byte(`{"n":2}`), "application/json"))
	require.NoError(t, storage.UploadBytes(ctx, "exports/quizzes/b/three.json", []byte(`{"n":3}`), "application/json"))

	rc, err := storage.Open(ctx, "exports/quizzes/a/one.json")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":1}`, string(data))

	keys, err := storage.Provider.List(ctx, "exports/quizzes/a/")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"exports/quizzes/a/one.json", "exports/quizzes/a/two.json"}, keys)

	removed, err := storage.DeleteAll(ctx, "exports/quizzes/a/")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	_, err = storage.Open(ctx, "exports/quizzes/a/one.json")
	assert.ErrorIs(t, err, ErrObjectNotFound)
	rc, err = storage.Open(ctx, "exports/quizzes/b/three.json")
	require.NoError(t, err)
	rc.Close()

	// 不存在的前缀视为空
	removed, err = storage.DeleteAll(ctx, "exports/quizzes/missing/")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestLocalStorageKeysStayInsideRoot(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "store")
	p := &LocalStorageProvider{Root: root}
	ctx := context.Background()

	require.NoError(t, p.Upload(ctx, "../../escape.json", strings.NewReader("{}"), 2, "application/json"))

	_, err := os.Stat(filepath.Join(base, "escape.json"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(root, "escape.json"))
	assert.NoError(t, err)
}
