package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"solar-inspector/internal/domain/entity"
)

// Report разобранный и проверенный detection_report.json
type Report struct {
	Metadata ReportMetadata
	Records  []entity.DefectRecord
}

// ReportMetadata сведения о прогоне детектора
type ReportMetadata struct {
	ModelName            string
	GeneratedAt          string
	TotalImages          int
	TotalDetectedObjects int
}

// RecordedSummary итоги из summary_statistics.json
type RecordedSummary struct {
	TotalImages          int `json:"total_images" validate:"gte=0"`
	TotalDetectedObjects int `json:"total_detected_objects" validate:"gte=0"`
}

type reportFile struct {
	Metadata        *reportMetadata  `json:"metadata"`
	DetectedObjects []detectedObject `json:"detected_objects" validate:"dive"`
}

type reportMetadata struct {
	ModelName            string `json:"model_name"`
	GeneratedAt          string `json:"generated_at"`
	TotalImages          *int   `json:"total_images" validate:"omitempty,gte=0"`
	TotalDetectedObjects *int   `json:"total_detected_objects" validate:"omitempty,gte=0"`
}

type detectedObject struct {
	ObjectID         int              `json:"object_id" validate:"gte=0"`
	SourceImage      sourceImage      `json:"source_image"`
	DetectionDetails detectionDetails `json:"detection_details"`
}

type sourceImage struct {
	ImageName       string          `json:"image_name" validate:"required,basename"`
	ImageDimensions imageDimensions `json:"image_dimensions"`
}

type imageDimensions struct {
	Width  int `json:"width" validate:"gt=0"`
	Height int `json:"height" validate:"gt=0"`
}

// Указатели отличают отсутствующее поле от нуля: пропуск ломает площадь и категорию.
type detectionDetails struct {
	ClassName   string       `json:"class_name" validate:"required"`
	Confidence  *float64     `json:"confidence" validate:"required,gte=0,lte=1"`
	BoundingBox *boundingBox `json:"bounding_box" validate:"required"`
}

type boundingBox struct {
	Coordinates *boxCoordinates `json:"coordinates" validate:"required"`
	Dimensions  *boxDimensions  `json:"dimensions" validate:"required"`
}

type boxCoordinates struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

type boxDimensions struct {
	Width  float64  `json:"width" validate:"gte=0"`
	Height float64  `json:"height" validate:"gte=0"`
	Area   *float64 `json:"area" validate:"required,gte=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Имя снимка используется как имя файла, поэтому без каталогов.
	_ = v.RegisterValidation("basename", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		return name != "." && name != ".." && filepath.Base(name) == name
	})
	return v
}

// LoadReport читает отчёт детектора. Любое нарушение схемы отклоняет загрузку целиком.
func LoadReport(path string) (*Report, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read report: %v", entity.ErrStoreLoad, err)
	}

	var doc reportFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse report %s: %v", entity.ErrStoreLoad, path, err)
	}
	if doc.DetectedObjects == nil {
		return nil, fmt.Errorf("%w: report %s has no detected_objects array", entity.ErrStoreLoad, path)
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: invalid report %s: %v", entity.ErrStoreLoad, path, err)
	}

	report := &Report{Records: make([]entity.DefectRecord, 0, len(doc.DetectedObjects))}
	seen := make(map[int]struct{}, len(doc.DetectedObjects))
	for i, obj := range doc.DetectedObjects {
		if _, dup := seen[obj.ObjectID]; dup {
			return nil, fmt.Errorf("%w: detected_objects[%d]: duplicate object_id %d", entity.ErrStoreLoad, i, obj.ObjectID)
		}
		seen[obj.ObjectID] = struct{}{}
		report.Records = append(report.Records, obj.toRecord())
	}

	report.Metadata.TotalDetectedObjects = len(report.Records)
	if doc.Metadata != nil {
		report.Metadata.ModelName = doc.Metadata.ModelName
		report.Metadata.GeneratedAt = doc.Metadata.GeneratedAt
		if n := doc.Metadata.TotalDetectedObjects; n != nil && *n != len(report.Records) {
			return nil, fmt.Errorf("%w: metadata declares %d detected objects, report has %d",
				entity.ErrStoreLoad, *n, len(report.Records))
		}
		if n := doc.Metadata.TotalImages; n != nil {
			report.Metadata.TotalImages = *n
		}
	}

	return report, nil
}

// LoadRecordedSummary читает необязательный файл сводки; если файла нет, возвращает nil.
func LoadRecordedSummary(path string) (*RecordedSummary, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read summary: %v", entity.ErrStoreLoad, err)
	}

	var summary RecordedSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("%w: parse summary %s: %v", entity.ErrStoreLoad, path, err)
	}
	if err := validate.Struct(summary); err != nil {
		return nil, fmt.Errorf("%w: invalid summary %s: %v", entity.ErrStoreLoad, path, err)
	}
	return &summary, nil
}

func (o detectedObject) toRecord() entity.DefectRecord {
	box := o.DetectionDetails.BoundingBox
	return entity.DefectRecord{
		ObjectID:   o.ObjectID,
		ImageID:    o.SourceImage.ImageName,
		DefectType: o.DetectionDetails.ClassName,
		Confidence: *o.DetectionDetails.Confidence,
		BoundingBox: entity.BoundingBox{
			X1:     box.Coordinates.X1,
			Y1:     box.Coordinates.Y1,
			X2:     box.Coordinates.X2,
			Y2:     box.Coordinates.Y2,
			Width:  box.Dimensions.Width,
			Height: box.Dimensions.Height,
			Area:   *box.Dimensions.Area,
		},
		ImageWidth:  o.SourceImage.ImageDimensions.Width,
		ImageHeight: o.SourceImage.ImageDimensions.Height,
	}
}
