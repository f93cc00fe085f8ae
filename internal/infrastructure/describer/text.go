package describer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"solar-inspector/internal/domain/entity"
	"solar-inspector/internal/domain/port"
)

// TextDescriber собирает подпись к результату анализа без внешних сервисов.
type TextDescriber struct{}

func NewTextDescriber() *TextDescriber {
	return &TextDescriber{}
}

// Describe возвращает многострочное описание результата
func (d *TextDescriber) Describe(ctx context.Context, result *entity.AnalysisResult) (string, error) {
	_ = ctx
	if result == nil {
		return "", errors.New("nil analysis result")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔎 Снимок: %s\n", result.ImageID)
	fmt.Fprintf(&b, "📋 Состояние: %s\n", result.Status)
	if !result.HasDefects {
		b.WriteString("✅ Дефекты не обнаружены.")
		return b.String(), nil
	}

	fmt.Fprintf(&b, "⚠️ Дефектов: %d, покрытие %.2f%%\n", result.DefectCount, result.CoveragePercentage)
	fmt.Fprintf(&b, "🎯 Макс. уверенность: %.2f", result.Confidence)
	if result.ImageDimensions != nil {
		fmt.Fprintf(&b, "\n📐 Размер: %dx%d", result.ImageDimensions.Width, result.ImageDimensions.Height)
	}
	return b.String(), nil
}

// Проверка реализации интерфейса
var _ port.AnalysisDescriber = (*TextDescriber)(nil)
