package port

import "solar-inspector/internal/domain/entity"

// RecordStore неизменяемое хранилище отчёта, загруженного при старте.
// Возвращаемые значения разделяются между всеми читателями и не должны изменяться.
type RecordStore interface {
	// ImageIDs возвращает имена всех снимков, отсортированные по возрастанию
	ImageIDs() []string

	// Report возвращает сводку по снимку
	Report(imageID string) (entity.ImageReport, bool)

	// Reports возвращает сводки в порядке ImageIDs
	Reports() []entity.ImageReport

	// Summary возвращает статистику, посчитанную при загрузке
	Summary() entity.SummaryStatistics
}
