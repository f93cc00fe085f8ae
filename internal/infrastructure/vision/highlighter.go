//go:build gocv
// +build gocv

package vision

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"solar-inspector/internal/domain/entity"
	"solar-inspector/internal/domain/port"
)

// GoCVHighlighter рисует рамки дефектов на EL-снимке через OpenCV.
type GoCVHighlighter struct {
	Thickness   int
	FontScale   float64
	JPEGQuality int
}

// NewGoCVHighlighter создаёт рисовальщик с настройками по умолчанию.
func NewGoCVHighlighter() *GoCVHighlighter {
	return &GoCVHighlighter{
		Thickness:   2,
		FontScale:   0.4,
		JPEGQuality: 90,
	}
}

// Highlight рисует прямоугольники вокруг дефектов и возвращает новую картинку.
func (h *GoCVHighlighter) Highlight(imageName string, imageData []byte, defects []entity.DefectRecord, category entity.Category) ([]byte, error) {
	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, errors.New("empty image")
	}

	bounds := image.Rect(0, 0, mat.Cols(), mat.Rows())
	boxColor := categoryColor(category)
	for _, d := range defects {
		// Координаты отчёта даны для исходного размера; снимок мог быть пережат.
		rect := scaleBox(d, mat.Cols(), mat.Rows()).Intersect(bounds)
		if rect.Empty() {
			continue
		}
		gocv.Rectangle(&mat, rect, boxColor, h.Thickness)

		label := fmt.Sprintf("%s %.2f", d.DefectType, d.Confidence)
		origin := image.Pt(rect.Min.X, maxInt(rect.Min.Y-3, 10))
		gocv.PutText(&mat, label, origin, gocv.FontHersheySimplex, h.FontScale, boxColor, 1)
	}

	gocv.PutText(&mat, category.Label(), image.Pt(5, mat.Rows()-8), gocv.FontHersheySimplex, h.FontScale*1.5, boxColor, 1)

	img, err := mat.ToImage()
	if err != nil {
		return nil, err
	}

	return encodeAs(imageName, img, h.JPEGQuality)
}

// decodeToMat превращает байты изображения в gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), errors.New("failed to decode image")
}

func scaleBox(d entity.DefectRecord, cols, rows int) image.Rectangle {
	sx, sy := 1.0, 1.0
	if d.ImageWidth > 0 && d.ImageHeight > 0 {
		sx = float64(cols) / float64(d.ImageWidth)
		sy = float64(rows) / float64(d.ImageHeight)
	}
	b := d.BoundingBox
	return image.Rect(int(b.X1*sx), int(b.Y1*sy), int(b.X2*sx), int(b.Y2*sy))
}

func categoryColor(c entity.Category) color.RGBA {
	switch c {
	case entity.CategoryFullyDamaged:
		return color.RGBA{R: 255, A: 255}
	case entity.CategoryCritical:
		return color.RGBA{R: 255, G: 128, A: 255}
	case entity.CategoryNeedsRepair:
		return color.RGBA{R: 255, G: 255, A: 255}
	default:
		return color.RGBA{G: 255, A: 255}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

var _ port.DefectHighlighter = (*GoCVHighlighter)(nil)
