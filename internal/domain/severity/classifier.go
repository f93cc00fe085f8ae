// Package severity классифицирует снимки по тяжести дефектов и собирает статистику парка.
package severity

import (
	"cmp"
	"fmt"
	"slices"

	"solar-inspector/internal/domain/entity"
)

// Classifier чистая функция «дефекты снимка → категория».
type Classifier struct {
	thresholds Thresholds
}

// NewClassifier создаёт классификатор с проверенными порогами
func NewClassifier(thresholds Thresholds) (*Classifier, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidInput, err)
	}
	return &Classifier{thresholds: thresholds}, nil
}

// Thresholds возвращает действующие пороги
func (c *Classifier) Thresholds() Thresholds {
	return c.thresholds
}

// Classify возвращает категорию снимка. Результат не зависит от порядка дефектов.
func (c *Classifier) Classify(imageID string, defects []entity.DefectRecord) (entity.Category, error) {
	m, err := measure(imageID, defects)
	if err != nil {
		return "", err
	}
	return c.categorize(m), nil
}

// Report собирает полную сводку по снимку
func (c *Classifier) Report(imageID string, defects []entity.DefectRecord) (entity.ImageReport, error) {
	m, err := measure(imageID, defects)
	if err != nil {
		return entity.ImageReport{}, err
	}

	category := c.categorize(m)
	sorted := slices.Clone(defects)
	slices.SortFunc(sorted, compareRecords)
	if sorted == nil {
		sorted = []entity.DefectRecord{}
	}

	return entity.ImageReport{
		ImageID:            imageID,
		Category:           category,
		Status:             category.Label(),
		DefectCount:        m.count,
		CoveragePercentage: m.coverage,
		TotalDefectArea:    m.totalArea,
		MaxConfidence:      m.maxConfidence,
		ImageWidth:         m.width,
		ImageHeight:        m.height,
		DefectsByType:      m.byType,
		Defects:            sorted,
	}, nil
}

func (c *Classifier) categorize(m metrics) entity.Category {
	t := c.thresholds
	switch {
	case m.count == 0:
		return entity.CategoryGood
	case atLeast(m.count, t.FullyDamagedMinDefects) || atLeastCoverage(m.coverage, t.FullyDamagedMinCoverage):
		return entity.CategoryFullyDamaged
	case atLeast(m.count, t.CriticalMinDefects) || atLeastCoverage(m.coverage, t.CriticalMinCoverage):
		return entity.CategoryCritical
	case t.GoodMaxCoverage > 0 && m.coverage < t.GoodMaxCoverage:
		return entity.CategoryGood
	default:
		return entity.CategoryNeedsRepair
	}
}

func atLeast(value, threshold int) bool {
	return threshold > 0 && value >= threshold
}

func atLeastCoverage(value, threshold float64) bool {
	return threshold > 0 && value >= threshold
}

type metrics struct {
	count         int
	totalArea     float64
	coverage      float64
	maxConfidence float64
	width         int
	height        int
	byType        map[string]int
}

func measure(imageID string, defects []entity.DefectRecord) (metrics, error) {
	m := metrics{count: len(defects), byType: make(map[string]int)}
	if len(defects) == 0 {
		return m, nil
	}

	m.width, m.height = defects[0].ImageWidth, defects[0].ImageHeight
	areas := make([]float64, 0, len(defects))
	for _, d := range defects {
		if d.ImageID != imageID {
			return metrics{}, fmt.Errorf("%w: defect %d belongs to %q, not %q", entity.ErrInvalidInput, d.ObjectID, d.ImageID, imageID)
		}
		if d.ImageWidth != m.width || d.ImageHeight != m.height {
			return metrics{}, fmt.Errorf("%w: defect %d reports %dx%d for %q, expected %dx%d",
				entity.ErrInvalidInput, d.ObjectID, d.ImageWidth, d.ImageHeight, imageID, m.width, m.height)
		}
		areas = append(areas, d.BoundingBox.Area)
		m.maxConfidence = max(m.maxConfidence, d.Confidence)
		m.byType[d.DefectType]++
	}
	if m.width <= 0 || m.height <= 0 {
		return metrics{}, fmt.Errorf("%w: image %q has no dimensions", entity.ErrInvalidInput, imageID)
	}

	// Складываем в отсортированном порядке, чтобы сумма не зависела от порядка входа.
	slices.Sort(areas)
	for _, a := range areas {
		m.totalArea += a
	}
	m.coverage = m.totalArea / defects[0].ImageArea() * 100

	return m, nil
}

func compareRecords(a, b entity.DefectRecord) int {
	return cmp.Or(
		cmp.Compare(a.ObjectID, b.ObjectID),
		cmp.Compare(a.DefectType, b.DefectType),
		cmp.Compare(a.Confidence, b.Confidence),
		cmp.Compare(a.BoundingBox.X1, b.BoundingBox.X1),
		cmp.Compare(a.BoundingBox.Y1, b.BoundingBox.Y1),
		cmp.Compare(a.BoundingBox.Area, b.BoundingBox.Area),
	)
}
