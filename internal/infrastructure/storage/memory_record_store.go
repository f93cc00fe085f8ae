package storage

import (
	"fmt"
	"slices"

	"solar-inspector/internal/domain/entity"
	"solar-inspector/internal/domain/port"
	"solar-inspector/internal/domain/severity"
)

// MemoryRecordStore неизменяемое хранилище отчёта. После NewMemoryRecordStore
// ничего не пишется, поэтому чтение из любых горутин идёт без блокировок.
type MemoryRecordStore struct {
	ids     []string
	reports []entity.ImageReport
	index   map[string]int
	summary entity.SummaryStatistics
}

// NewMemoryRecordStore группирует дефекты по снимкам, классифицирует каждый снимок
// и считает сводку. Дефект, ссылающийся на неизвестный снимок, отклоняет загрузку.
func NewMemoryRecordStore(records []entity.DefectRecord, imageIDs []string, classifier *severity.Classifier) (*MemoryRecordStore, error) {
	ids := slices.Clone(imageIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	grouped := make(map[string][]entity.DefectRecord, len(ids))
	for _, r := range records {
		if _, ok := index[r.ImageID]; !ok {
			return nil, fmt.Errorf("%w: defect %d references unknown image %q", entity.ErrStoreLoad, r.ObjectID, r.ImageID)
		}
		grouped[r.ImageID] = append(grouped[r.ImageID], r)
	}

	reports := make([]entity.ImageReport, 0, len(ids))
	for _, id := range ids {
		report, err := classifier.Report(id, grouped[id])
		if err != nil {
			return nil, fmt.Errorf("%w: classify %s: %w", entity.ErrStoreLoad, id, err)
		}
		reports = append(reports, report)
	}

	return &MemoryRecordStore{
		ids:     ids,
		reports: reports,
		index:   index,
		summary: severity.Summarize(reports),
	}, nil
}

// ImageIDs возвращает имена снимков по возрастанию
func (s *MemoryRecordStore) ImageIDs() []string {
	return s.ids
}

// Report возвращает сводку по снимку
func (s *MemoryRecordStore) Report(imageID string) (entity.ImageReport, bool) {
	i, ok := s.index[imageID]
	if !ok {
		return entity.ImageReport{}, false
	}
	return s.reports[i], true
}

// Reports возвращает сводки в порядке ImageIDs
func (s *MemoryRecordStore) Reports() []entity.ImageReport {
	return s.reports
}

// Summary возвращает статистику, посчитанную при загрузке
func (s *MemoryRecordStore) Summary() entity.SummaryStatistics {
	return s.summary
}

// Проверка реализации интерфейса
var _ port.RecordStore = (*MemoryRecordStore)(nil)
