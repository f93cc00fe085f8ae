package describer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"solar-inspector/internal/domain/entity"
)

func TestTextDescriber_WithDefects(t *testing.T) {
	d := NewTextDescriber()
	text, err := d.Describe(context.Background(), &entity.AnalysisResult{
		ImageID:            "cell_0004.jpg",
		Status:             "CRITICAL",
		HasDefects:         true,
		DefectCount:        12,
		CoveragePercentage: 9.5,
		Confidence:         0.8731,
		ImageDimensions:    &entity.ImageDimensions{Width: 300, Height: 300},
	})
	require.NoError(t, err)
	require.Contains(t, text, "cell_0004.jpg")
	require.Contains(t, text, "CRITICAL")
	require.Contains(t, text, "Дефектов: 12, покрытие 9.50%")
	require.Contains(t, text, "0.87")
	require.Contains(t, text, "300x300")
}

func TestTextDescriber_NoDefects(t *testing.T) {
	d := NewTextDescriber()
	text, err := d.Describe(context.Background(), &entity.AnalysisResult{ImageID: "a.jpg", Status: "GOOD CONDITION"})
	require.NoError(t, err)
	require.Contains(t, text, "Дефекты не обнаружены")

	_, err = d.Describe(context.Background(), nil)
	require.Error(t, err)
}
