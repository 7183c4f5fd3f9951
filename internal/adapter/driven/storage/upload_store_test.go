package storage

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *UploadStore {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	store, err := NewUploadStore(t.TempDir(), logger)
	require.NoError(t, err)
	return store
}

func TestUploadStoreSaveAndRemove(t *testing.T) {
	store := newTestStore(t)

	path, err := store.Save(strings.NewReader("a,b\n1,2\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(data))

	store.Remove(path)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestUploadStoreRemoveIsBestEffort(t *testing.T) {
	store := newTestStore(t)

	// Remover um caminho inexistente não pode explodir.
	store.Remove("/does/not/exist.csv")
	store.Remove("")
}
