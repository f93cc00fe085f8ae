package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"solar-inspector/internal/domain/severity"
	"solar-inspector/internal/infrastructure/storage"
	"solar-inspector/internal/testfixture"
)

func newCatalogFixture(t *testing.T, images []testfixture.Image) (*storage.MemoryRecordStore, *storage.FilesystemArtifactStore) {
	t.Helper()
	ds := testfixture.Write(t, images)

	report, err := storage.LoadReport(ds.ReportPath)
	require.NoError(t, err)
	classifier, err := severity.NewClassifier(severity.DefaultThresholds())
	require.NoError(t, err)

	ids := make([]string, 0, len(images))
	for _, img := range images {
		ids = append(ids, img.ID)
	}
	store, err := storage.NewMemoryRecordStore(report.Records, ids, classifier)
	require.NoError(t, err)

	return store, storage.NewFilesystemArtifactStore(ds.OriginalDir, ds.ResultDir, time.Minute)
}
