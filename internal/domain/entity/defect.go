package entity

// BoundingBox описывает прямоугольник дефекта в пикселях исходного изображения
type BoundingBox struct {
	X1     float64 `json:"x1"`     // левый верхний угол, X
	Y1     float64 `json:"y1"`     // левый верхний угол, Y
	X2     float64 `json:"x2"`     // правый нижний угол, X
	Y2     float64 `json:"y2"`     // правый нижний угол, Y
	Width  float64 `json:"width"`  // ширина области
	Height float64 `json:"height"` // высота области
	Area   float64 `json:"area"`   // площадь области в пикселях
}

// DefectRecord — один найденный детектором дефект.
type DefectRecord struct {
	ObjectID    int         `json:"object_id"`
	ImageID     string      `json:"image_id"`
	DefectType  string      `json:"defect_type"`
	Confidence  float64     `json:"confidence"`
	BoundingBox BoundingBox `json:"bounding_box"`
	ImageWidth  int         `json:"image_width"`
	ImageHeight int         `json:"image_height"`
}

// ImageArea возвращает площадь исходного изображения
func (d DefectRecord) ImageArea() float64 {
	return float64(d.ImageWidth) * float64(d.ImageHeight)
}
