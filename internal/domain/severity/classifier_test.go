package severity

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"solar-inspector/internal/domain/entity"
)

func makeDefects(imageID string, n int, area float64) []entity.DefectRecord {
	defects := make([]entity.DefectRecord, 0, n)
	for i := 0; i < n; i++ {
		defects = append(defects, entity.DefectRecord{
			ObjectID:    i + 1,
			ImageID:     imageID,
			DefectType:  []string{"crack", "finger", "black_core"}[i%3],
			Confidence:  0.5 + float64(i%5)/10,
			BoundingBox: entity.BoundingBox{X1: float64(i), Y1: float64(i), Width: 1, Height: area, Area: area},
			ImageWidth:  100,
			ImageHeight: 100,
		})
	}
	return defects
}

func newDefaultClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier(DefaultThresholds())
	require.NoError(t, err)
	return c
}

func TestClassify_NoDefectsIsGood(t *testing.T) {
	c := newDefaultClassifier(t)

	category, err := c.Classify("a.jpg", nil)
	require.NoError(t, err)
	require.Equal(t, entity.CategoryGood, category)

	category, err = c.Classify("a.jpg", []entity.DefectRecord{})
	require.NoError(t, err)
	require.Equal(t, entity.CategoryGood, category)
}

func TestClassify_CoverageLadder(t *testing.T) {
	c := newDefaultClassifier(t)

	tests := []struct {
		name string
		n    int
		area float64
		want entity.Category
	}{
		{"small defect", 1, 10, entity.CategoryNeedsRepair},
		{"just below critical", 4, 199.75, entity.CategoryNeedsRepair},
		{"critical boundary", 4, 200, entity.CategoryCritical},
		{"just below fully damaged", 3, 499.9, entity.CategoryCritical},
		{"fully damaged boundary", 3, 500, entity.CategoryFullyDamaged},
		{"whole panel", 1, 10000, entity.CategoryFullyDamaged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Classify("a.jpg", makeDefects("a.jpg", tt.n, tt.area))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_DefectCountThresholds(t *testing.T) {
	c, err := NewClassifier(Thresholds{FullyDamagedMinDefects: 40, CriticalMinDefects: 20})
	require.NoError(t, err)

	got, err := c.Classify("a.jpg", makeDefects("a.jpg", 19, 1))
	require.NoError(t, err)
	require.Equal(t, entity.CategoryNeedsRepair, got)

	got, err = c.Classify("a.jpg", makeDefects("a.jpg", 20, 1))
	require.NoError(t, err)
	require.Equal(t, entity.CategoryCritical, got)

	got, err = c.Classify("a.jpg", makeDefects("a.jpg", 40, 1))
	require.NoError(t, err)
	require.Equal(t, entity.CategoryFullyDamaged, got)
}

func TestClassify_GoodMaxCoverage(t *testing.T) {
	thresholds := DefaultThresholds()
	thresholds.GoodMaxCoverage = 2
	c, err := NewClassifier(thresholds)
	require.NoError(t, err)

	got, err := c.Classify("a.jpg", makeDefects("a.jpg", 1, 150))
	require.NoError(t, err)
	require.Equal(t, entity.CategoryGood, got)

	got, err = c.Classify("a.jpg", makeDefects("a.jpg", 1, 200))
	require.NoError(t, err)
	require.Equal(t, entity.CategoryNeedsRepair, got)
}

func TestClassify_OrderIndependent(t *testing.T) {
	c := newDefaultClassifier(t)
	rng := rand.New(rand.NewPCG(7, 11))

	defects := make([]entity.DefectRecord, 0, 50)
	for i := 0; i < 50; i++ {
		area := rng.Float64() * 31.7
		defects = append(defects, entity.DefectRecord{
			ObjectID:    i,
			ImageID:     "p.jpg",
			DefectType:  "crack",
			Confidence:  rng.Float64(),
			BoundingBox: entity.BoundingBox{Area: area},
			ImageWidth:  100,
			ImageHeight: 100,
		})
	}

	want, err := c.Classify("p.jpg", defects)
	require.NoError(t, err)
	wantReport, err := c.Report("p.jpg", defects)
	require.NoError(t, err)

	for i := 0; i < 25; i++ {
		shuffled := append([]entity.DefectRecord(nil), defects...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, err := c.Classify("p.jpg", shuffled)
		require.NoError(t, err)
		require.Equal(t, want, got)

		report, err := c.Report("p.jpg", shuffled)
		require.NoError(t, err)
		require.Equal(t, wantReport, report)
	}
}

func TestClassify_ForeignImageIsInvalidInput(t *testing.T) {
	c := newDefaultClassifier(t)
	defects := makeDefects("a.jpg", 3, 10)
	defects[1].ImageID = "b.jpg"

	_, err := c.Classify("a.jpg", defects)
	require.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestClassify_MismatchedDimensionsIsInvalidInput(t *testing.T) {
	c := newDefaultClassifier(t)
	defects := makeDefects("a.jpg", 2, 10)
	defects[1].ImageWidth = 640

	_, err := c.Classify("a.jpg", defects)
	require.ErrorIs(t, err, entity.ErrInvalidInput)
}

func TestReport_Metrics(t *testing.T) {
	c := newDefaultClassifier(t)
	defects := makeDefects("a.jpg", 3, 100)

	report, err := c.Report("a.jpg", defects)
	require.NoError(t, err)
	require.Equal(t, 3, report.DefectCount)
	require.InDelta(t, 300.0, report.TotalDefectArea, 1e-9)
	require.InDelta(t, 3.0, report.CoveragePercentage, 1e-9)
	require.InDelta(t, 0.7, report.MaxConfidence, 1e-9)
	require.Equal(t, map[string]int{"crack": 1, "finger": 1, "black_core": 1}, report.DefectsByType)
	require.Equal(t, entity.CategoryNeedsRepair, report.Category)
	require.Equal(t, "NEEDS REPAIR", report.Status)
	require.Equal(t, 100, report.ImageWidth)
	require.True(t, report.HasDefects())
}

func TestNewClassifier_RejectsInconsistentThresholds(t *testing.T) {
	bad := []Thresholds{
		{CriticalMinDefects: -1},
		{CriticalMinCoverage: -0.5},
		{FullyDamagedMinCoverage: 120},
		{FullyDamagedMinDefects: 5, CriticalMinDefects: 10},
		{FullyDamagedMinCoverage: 5, CriticalMinCoverage: 10},
		{CriticalMinCoverage: 8, GoodMaxCoverage: 9},
	}
	for i, th := range bad {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			_, err := NewClassifier(th)
			require.ErrorIs(t, err, entity.ErrInvalidInput)
		})
	}
}
