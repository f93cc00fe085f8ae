package entity

// ImageReport сводка по одному изображению: все его дефекты и итоговая категория.
type ImageReport struct {
	ImageID            string         `json:"image_id"`
	Category           Category       `json:"category"`
	Status             string         `json:"status"`
	DefectCount        int            `json:"defect_count"`
	CoveragePercentage float64        `json:"coverage_percentage"`
	TotalDefectArea    float64        `json:"total_defect_area"`
	MaxConfidence      float64        `json:"max_confidence"`
	ImageWidth         int            `json:"image_width,omitempty"`
	ImageHeight        int            `json:"image_height,omitempty"`
	DefectsByType      map[string]int `json:"defects_by_type"`
	Defects            []DefectRecord `json:"defects"`
}

// HasDefects сообщает, найден ли хотя бы один дефект
func (r ImageReport) HasDefects() bool {
	return r.DefectCount > 0
}

// Summary возвращает краткую строку для списка изображений
func (r ImageReport) Summary() ImageSummary {
	return ImageSummary{
		ImageID:     r.ImageID,
		Category:    r.Category,
		DefectCount: r.DefectCount,
	}
}

// ImageSummary элемент списка изображений
type ImageSummary struct {
	ImageID     string   `json:"image_id"`
	Category    Category `json:"category"`
	DefectCount int      `json:"defect_count"`
}
