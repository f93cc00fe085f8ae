//go:build !gocv
// +build !gocv

package vision

import (
	"errors"

	"solar-inspector/internal/domain/entity"
	"solar-inspector/internal/domain/port"
)

// ErrGoCVDisabled сборка без тега gocv
var ErrGoCVDisabled = errors.New("gocv build tag is not enabled")

type GoCVHighlighter struct {
	Thickness   int
	FontScale   float64
	JPEGQuality int
}

// NewGoCVHighlighter создаёт рисовальщик-заглушку (без OpenCV).
func NewGoCVHighlighter() *GoCVHighlighter {
	return &GoCVHighlighter{
		Thickness:   2,
		FontScale:   0.4,
		JPEGQuality: 90,
	}
}

// Highlight возвращает ошибку, если сборка без тега gocv.
func (h *GoCVHighlighter) Highlight(imageName string, imageData []byte, defects []entity.DefectRecord, category entity.Category) ([]byte, error) {
	_ = imageName
	_ = imageData
	_ = defects
	_ = category
	return nil, ErrGoCVDisabled
}

var _ port.DefectHighlighter = (*GoCVHighlighter)(nil)
