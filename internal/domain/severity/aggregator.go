package severity

import "solar-inspector/internal/domain/entity"

// Summarize сворачивает сводки снимков в статистику парка.
// Пустой вход даёт нулевую статистику со всеми категориями.
func Summarize(reports []entity.ImageReport) entity.SummaryStatistics {
	stats := entity.NewSummaryStatistics()
	for _, r := range reports {
		stats.TotalImages++
		stats.TotalDetectedObjects += r.DefectCount
		stats.Categories[r.Category]++
		for defectType, n := range r.DefectsByType {
			stats.DefectsByType[defectType] += n
		}
	}
	return stats
}
