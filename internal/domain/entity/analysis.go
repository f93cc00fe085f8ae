package entity

// ImageDimensions размеры исходного снимка
type ImageDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AnalysisResult записанный результат анализа, отдаваемый как «свежий».
type AnalysisResult struct {
	Success            bool             `json:"success"`
	ImageID            string           `json:"image_id"`
	ResultURL          string           `json:"result_url"`
	OriginalURL        string           `json:"original_url"`
	ProcessingTime     float64          `json:"processing_time"`
	HasDefects         bool             `json:"has_defects"`
	DefectCount        int              `json:"defect_count"`
	Confidence         float64          `json:"confidence"`
	Status             string           `json:"status"`
	Category           Category         `json:"category"`
	CoveragePercentage float64          `json:"coverage_percentage"`
	TotalDefectArea    float64          `json:"total_defect_area"`
	ImageDimensions    *ImageDimensions `json:"image_dimensions,omitempty"`
	DetectedObjects    []DefectRecord   `json:"detected_objects"`
}
