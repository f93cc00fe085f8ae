package port

import "solar-inspector/internal/domain/entity"

// DefectHighlighter рисует найденные дефекты поверх исходного снимка
type DefectHighlighter interface {
	// Highlight возвращает снимок с рамками вокруг дефектов в формате,
	// который соответствует расширению imageName
	Highlight(imageName string, imageData []byte, defects []entity.DefectRecord, category entity.Category) ([]byte, error)
}
