package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"solar-inspector/internal/domain/entity"
	"solar-inspector/internal/testfixture"
)

func TestLoadReport_Valid(t *testing.T) {
	ds := testfixture.Write(t, testfixture.DefaultImages())

	report, err := LoadReport(ds.ReportPath)
	require.NoError(t, err)
	require.Len(t, report.Records, 9)
	require.Equal(t, 9, report.Metadata.TotalDetectedObjects)
	require.Equal(t, 4, report.Metadata.TotalImages)
	require.Equal(t, "yolov8-el", report.Metadata.ModelName)

	first := report.Records[0]
	require.Equal(t, 1, first.ObjectID)
	require.Equal(t, "cell_0002.jpg", first.ImageID)
	require.Equal(t, "crack", first.DefectType)
	require.Equal(t, 100.0, first.BoundingBox.Area)
	require.Equal(t, 100, first.ImageWidth)
	require.Equal(t, 100, first.ImageHeight)
}

func TestLoadReport_RejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(obj map[string]any)
	}{
		{"missing image name", func(obj map[string]any) {
			obj["source_image"].(map[string]any)["image_name"] = ""
		}},
		{"image name with directory", func(obj map[string]any) {
			obj["source_image"].(map[string]any)["image_name"] = "../secret.jpg"
		}},
		{"zero width", func(obj map[string]any) {
			obj["source_image"].(map[string]any)["image_dimensions"] = map[string]any{"width": 0, "height": 100}
		}},
		{"confidence above one", func(obj map[string]any) {
			obj["detection_details"].(map[string]any)["confidence"] = 1.5
		}},
		{"negative area", func(obj map[string]any) {
			bb := obj["detection_details"].(map[string]any)["bounding_box"].(map[string]any)
			bb["dimensions"] = map[string]any{"width": 1, "height": 1, "area": -4}
		}},
		{"missing confidence", func(obj map[string]any) {
			delete(obj["detection_details"].(map[string]any), "confidence")
		}},
		{"missing bounding box", func(obj map[string]any) {
			delete(obj["detection_details"].(map[string]any), "bounding_box")
		}},
		{"missing box dimensions", func(obj map[string]any) {
			delete(obj["detection_details"].(map[string]any)["bounding_box"].(map[string]any), "dimensions")
		}},
		{"missing box coordinates", func(obj map[string]any) {
			delete(obj["detection_details"].(map[string]any)["bounding_box"].(map[string]any), "coordinates")
		}},
		{"missing area", func(obj map[string]any) {
			bb := obj["detection_details"].(map[string]any)["bounding_box"].(map[string]any)
			bb["dimensions"] = map[string]any{"width": 1, "height": 1}
		}},
		{"missing class", func(obj map[string]any) {
			delete(obj["detection_details"].(map[string]any), "class_name")
		}},
		{"wrong type", func(obj map[string]any) {
			obj["object_id"] = "seven"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testfixture.Report(testfixture.DefaultImages())
			objects := doc["detected_objects"].([]map[string]any)
			tt.mutate(objects[0])

			path := filepath.Join(t.TempDir(), "report.json")
			testfixture.WriteJSON(t, path, doc)

			_, err := LoadReport(path)
			require.ErrorIs(t, err, entity.ErrStoreLoad)
		})
	}
}

func TestLoadReport_AcceptsExplicitZeroConfidenceAndArea(t *testing.T) {
	doc := testfixture.Report(testfixture.DefaultImages())
	obj := doc["detected_objects"].([]map[string]any)[0]
	details := obj["detection_details"].(map[string]any)
	details["confidence"] = 0
	details["bounding_box"].(map[string]any)["dimensions"] = map[string]any{"width": 0, "height": 0, "area": 0}

	path := filepath.Join(t.TempDir(), "report.json")
	testfixture.WriteJSON(t, path, doc)

	report, err := LoadReport(path)
	require.NoError(t, err)
	require.Zero(t, report.Records[0].Confidence)
	require.Zero(t, report.Records[0].BoundingBox.Area)
}

func TestLoadReport_RejectsMetadataMismatch(t *testing.T) {
	doc := testfixture.Report(testfixture.DefaultImages())
	doc["metadata"].(map[string]any)["total_detected_objects"] = 100

	path := filepath.Join(t.TempDir(), "report.json")
	testfixture.WriteJSON(t, path, doc)

	_, err := LoadReport(path)
	require.ErrorIs(t, err, entity.ErrStoreLoad)
}

func TestLoadReport_RejectsDuplicateObjectID(t *testing.T) {
	doc := testfixture.Report(testfixture.DefaultImages())
	objects := doc["detected_objects"].([]map[string]any)
	objects[1]["object_id"] = objects[0]["object_id"]

	path := filepath.Join(t.TempDir(), "report.json")
	testfixture.WriteJSON(t, path, doc)

	_, err := LoadReport(path)
	require.ErrorIs(t, err, entity.ErrStoreLoad)
}

func TestLoadReport_MissingOrMalformedFile(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReport(filepath.Join(dir, "absent.json"))
	require.ErrorIs(t, err, entity.ErrStoreLoad)

	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"detected_objects": [`), 0o644))
	_, err = LoadReport(path)
	require.ErrorIs(t, err, entity.ErrStoreLoad)

	path = filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
	_, err = LoadReport(path)
	require.ErrorIs(t, err, entity.ErrStoreLoad)
}

func TestLoadRecordedSummary(t *testing.T) {
	ds := testfixture.Write(t, testfixture.DefaultImages())

	summary, err := LoadRecordedSummary(ds.SummaryPath)
	require.NoError(t, err)
	require.Equal(t, &RecordedSummary{TotalImages: 4, TotalDetectedObjects: 9}, summary)

	summary, err = LoadRecordedSummary(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	require.Nil(t, summary)

	path := filepath.Join(t.TempDir(), "summary.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"total_images": -1}`), 0o644))
	_, err = LoadRecordedSummary(path)
	require.ErrorIs(t, err, entity.ErrStoreLoad)
}
