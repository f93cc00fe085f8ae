package entity

// SummaryStatistics сводная статистика по всему парку панелей
type SummaryStatistics struct {
	TotalImages          int              `json:"total_images"`
	TotalDetectedObjects int              `json:"total_detected_objects"`
	Categories           map[Category]int `json:"categories"`
	DefectsByType        map[string]int   `json:"defects_by_type"`
}

// NewSummaryStatistics создаёт пустую статистику со всеми категориями
func NewSummaryStatistics() SummaryStatistics {
	categories := make(map[Category]int, len(Categories()))
	for _, c := range Categories() {
		categories[c] = 0
	}
	return SummaryStatistics{
		Categories:    categories,
		DefectsByType: make(map[string]int),
	}
}

// CategoryTotal сумма по всем категориям; всегда равна TotalImages.
func (s SummaryStatistics) CategoryTotal() int {
	total := 0
	for _, n := range s.Categories {
		total += n
	}
	return total
}
