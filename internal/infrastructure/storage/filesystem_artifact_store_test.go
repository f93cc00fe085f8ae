package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"solar-inspector/internal/domain/entity"
	"solar-inspector/internal/testfixture"
)

func TestFilesystemArtifactStore_ListAndGet(t *testing.T) {
	ds := testfixture.Write(t, testfixture.DefaultImages())
	require.NoError(t, os.WriteFile(filepath.Join(ds.ResultDir, "notes.txt"), []byte("x"), 0o644))
	store := NewFilesystemArtifactStore(ds.OriginalDir, ds.ResultDir, time.Minute)
	ctx := context.Background()

	names, err := store.List(entity.ArtifactResult)
	require.NoError(t, err)
	require.Equal(t, []string{"cell_0001.jpg", "cell_0002.jpg", "cell_0003.jpg", "cell_0004.jpg"}, names)

	artifact, err := store.Get(ctx, "cell_0002.jpg", entity.ArtifactOriginal)
	require.NoError(t, err)
	require.Equal(t, []byte("original:cell_0002.jpg"), artifact.Data)
	require.Equal(t, "image/jpeg", artifact.ContentType)
	require.Equal(t, entity.ArtifactOriginal, artifact.Kind)

	require.True(t, store.Exists("cell_0002.jpg", entity.ArtifactResult))
	require.False(t, store.Exists("cell_0009.jpg", entity.ArtifactResult))
}

func TestFilesystemArtifactStore_NotFound(t *testing.T) {
	ds := testfixture.Write(t, []testfixture.Image{{ID: "a.jpg", SkipResult: true}})
	store := NewFilesystemArtifactStore(ds.OriginalDir, ds.ResultDir, 0)
	ctx := context.Background()

	for _, name := range []string{"unknown.jpg", "", ".", "..", "../data/detection_report.json", `..\a.jpg`} {
		_, err := store.Get(ctx, name, entity.ArtifactOriginal)
		require.ErrorIs(t, err, entity.ErrNotFound, name)
	}

	_, err := store.Get(ctx, "a.jpg", entity.ArtifactResult)
	require.ErrorIs(t, err, entity.ErrNotFound)

	_, err = store.Get(ctx, "a.jpg", entity.ArtifactKind("thumbnail"))
	require.ErrorIs(t, err, entity.ErrNotFound)

	require.NoError(t, os.WriteFile(filepath.Join(ds.ResultDir, "empty.jpg"), nil, 0o644))
	_, err = store.Get(ctx, "empty.jpg", entity.ArtifactResult)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestFilesystemArtifactStore_ServesFromCache(t *testing.T) {
	ds := testfixture.Write(t, []testfixture.Image{{ID: "a.jpg"}})
	store := NewFilesystemArtifactStore(ds.OriginalDir, ds.ResultDir, time.Minute)
	ctx := context.Background()

	first, err := store.Get(ctx, "a.jpg", entity.ArtifactResult)
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(ds.ResultDir, "a.jpg")))

	second, err := store.Get(ctx, "a.jpg", entity.ArtifactResult)
	require.NoError(t, err)
	require.Equal(t, first.Data, second.Data)
}

func TestFilesystemArtifactStore_CancelledContext(t *testing.T) {
	ds := testfixture.Write(t, []testfixture.Image{{ID: "a.jpg"}})
	store := NewFilesystemArtifactStore(ds.OriginalDir, ds.ResultDir, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := store.Get(ctx, "a.jpg", entity.ArtifactResult)
	require.ErrorIs(t, err, context.Canceled)
}
