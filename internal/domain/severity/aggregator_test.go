package severity

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"solar-inspector/internal/domain/entity"
)

// fleet строит 100 снимков 100x100 с той же раскладкой, что и поставляемый набор данных.
func fleet(t *testing.T, c *Classifier) []entity.ImageReport {
	t.Helper()

	groups := []struct {
		images  int
		defects int
		area    float64
	}{
		{6, 0, 0},    // без дефектов
		{62, 20, 10}, // 2% покрытия
		{27, 25, 40}, // 10%
		{5, 50, 40},  // 20%
	}

	var reports []entity.ImageReport
	n := 0
	for _, g := range groups {
		for i := 0; i < g.images; i++ {
			n++
			id := fmt.Sprintf("cell_%04d.jpg", n)
			report, err := c.Report(id, makeDefects(id, g.defects, g.area))
			require.NoError(t, err)
			reports = append(reports, report)
		}
	}
	return reports
}

func TestSummarize_EmptyIsZero(t *testing.T) {
	stats := Summarize(nil)
	require.Equal(t, 0, stats.TotalImages)
	require.Equal(t, 0, stats.TotalDetectedObjects)
	require.Len(t, stats.Categories, 4)
	for _, c := range entity.Categories() {
		require.Equal(t, 0, stats.Categories[c])
	}
	require.Equal(t, stats.TotalImages, stats.CategoryTotal())
}

func TestSummarize_DatasetSplit(t *testing.T) {
	c := newDefaultClassifier(t)
	stats := Summarize(fleet(t, c))

	require.Equal(t, 100, stats.TotalImages)
	require.Equal(t, 2165, stats.TotalDetectedObjects)
	require.Equal(t, map[entity.Category]int{
		entity.CategoryGood:         6,
		entity.CategoryNeedsRepair:  62,
		entity.CategoryCritical:     27,
		entity.CategoryFullyDamaged: 5,
	}, stats.Categories)
	require.Equal(t, stats.TotalImages, stats.CategoryTotal())

	byType := 0
	for _, n := range stats.DefectsByType {
		byType += n
	}
	require.Equal(t, 2165, byType)
}

func TestSummarize_OrderIndependent(t *testing.T) {
	c := newDefaultClassifier(t)
	reports := fleet(t, c)
	want := Summarize(reports)

	rng := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(reports), func(a, b int) { reports[a], reports[b] = reports[b], reports[a] })
		require.Equal(t, want, Summarize(reports))
	}
}

func TestSummarize_BucketsSumToTotal(t *testing.T) {
	c := newDefaultClassifier(t)
	reports := fleet(t, c)
	for i := 0; i <= len(reports); i += 17 {
		stats := Summarize(reports[:i])
		require.Equal(t, i, stats.TotalImages)
		require.Equal(t, stats.TotalImages, stats.CategoryTotal())
	}
}
