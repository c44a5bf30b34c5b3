package filestorage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	ls, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads", 10)
	require.NoError(t, err)
	return ls
}

func TestDeleteFileRemovesStoredFile(t *testing.T) {
	ls := newTestStorage(t)

	path := filepath.Join(ls.BasePath(), "cover.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o644))

	err := ls.DeleteFile("http://localhost:8080/uploads/cover.png")
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteFileIgnoresUnknownURL(t *testing.T) {
	ls := newTestStorage(t)

	assert.NoError(t, ls.DeleteFile("http://elsewhere.example/uploads/cover.png"))
	assert.NoError(t, ls.DeleteFile("http://localhost:8080/uploads/missing.png"))
}

func TestDeleteFileRejectsTraversal(t *testing.T) {
	ls := newTestStorage(t)

	outside := filepath.Join(filepath.Dir(ls.BasePath()), "keep.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))

	require.NoError(t, ls.DeleteFile("http://localhost:8080/uploads/../keep.txt"))

	_, err := os.Stat(outside)
	assert.NoError(t, err)
}
