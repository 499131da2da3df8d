package content

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestStore(t *testing.T) service.ContentStore {
	t.Helper()

	dir := t.TempDir()
	courseDir := filepath.Join(dir, "courses", "course-ai")
	require.NoError(t, os.MkdirAll(courseDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(courseDir, "content.zip"), []byte("zip-bytes"), 0o600))

	cfg := &config.Config{
		Content: &config.ContentConfig{BucketURL: "file://" + dir},
	}

	lc := fxtest.NewLifecycle(t)
	store, err := NewBucketStore(Params{Lifecycle: lc, Config: cfg})
	require.NoError(t, err)
	t.Cleanup(func() { lc.RequireStop() })

	return store
}

func TestOpen_ReturnsArtifact(t *testing.T) {
	store := newTestStore(t)

	reader, filename, err := store.Open(context.Background(), "course-ai")
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, "course-ai.zip", filename)

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "zip-bytes", string(data))
}

func TestOpen_MissingArtifact(t *testing.T) {
	store := newTestStore(t)

	_, _, err := store.Open(context.Background(), "course-missing")
	assert.ErrorIs(t, err, service.ErrContentNotFound)
}
