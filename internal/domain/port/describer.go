package port

import (
	"context"

	"solar-inspector/internal/domain/entity"
)

// AnalysisDescriber интерфейс описателя результата анализа
type AnalysisDescriber interface {
	// Describe генерирует текстовое описание найденных дефектов
	Describe(ctx context.Context, result *entity.AnalysisResult) (string, error)
}
