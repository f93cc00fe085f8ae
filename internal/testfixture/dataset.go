// Package testfixture пишет небольшие наборы данных отчёта во временный каталог для тестов.
package testfixture

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Image описание снимка в тестовом наборе
type Image struct {
	ID           string
	Defects      int
	Area         float64 // площадь каждого дефекта
	Width        int     // 100 по умолчанию
	Height       int     // 100 по умолчанию
	SkipOriginal bool
	SkipResult   bool
}

// Dataset пути к записанному набору
type Dataset struct {
	DataDir     string
	StaticDir   string
	OriginalDir string
	ResultDir   string
	ReportPath  string
	SummaryPath string
}

// DefaultImages четыре снимка, по одному на каждую категорию при порогах по умолчанию.
func DefaultImages() []Image {
	return []Image{
		{ID: "cell_0001.jpg"},
		{ID: "cell_0002.jpg", Defects: 2, Area: 100},
		{ID: "cell_0003.jpg", Defects: 4, Area: 250},
		{ID: "cell_0004.jpg", Defects: 3, Area: 600},
	}
}

// Write создаёт отчёт, файл сводки и файлы снимков
func Write(t testing.TB, images []Image) Dataset {
	t.Helper()

	root := t.TempDir()
	ds := Dataset{
		DataDir:   filepath.Join(root, "data"),
		StaticDir: filepath.Join(root, "static"),
	}
	ds.OriginalDir = filepath.Join(ds.StaticDir, "images", "original")
	ds.ResultDir = filepath.Join(ds.StaticDir, "images", "results")
	ds.ReportPath = filepath.Join(ds.DataDir, "detection_report.json")
	ds.SummaryPath = filepath.Join(ds.DataDir, "summary_statistics.json")

	for _, dir := range []string{ds.DataDir, ds.OriginalDir, ds.ResultDir} {
		require.NoError(t, os.MkdirAll(dir, 0o755))
	}

	WriteJSON(t, ds.ReportPath, Report(images))

	total := 0
	for _, img := range images {
		total += img.Defects
	}
	WriteJSON(t, ds.SummaryPath, map[string]any{
		"total_images":           len(images),
		"total_detected_objects": total,
	})

	for _, img := range images {
		if !img.SkipOriginal {
			require.NoError(t, os.WriteFile(filepath.Join(ds.OriginalDir, img.ID), []byte("original:"+img.ID), 0o644))
		}
		if !img.SkipResult {
			require.NoError(t, os.WriteFile(filepath.Join(ds.ResultDir, img.ID), []byte("result:"+img.ID), 0o644))
		}
	}

	return ds
}

// Report строит документ detection_report.json
func Report(images []Image) map[string]any {
	objects := make([]map[string]any, 0)
	id := 0
	for _, img := range images {
		w, h := img.Width, img.Height
		if w == 0 {
			w = 100
		}
		if h == 0 {
			h = 100
		}
		for i := 0; i < img.Defects; i++ {
			id++
			objects = append(objects, map[string]any{
				"object_id": id,
				"source_image": map[string]any{
					"image_name":       img.ID,
					"image_dimensions": map[string]any{"width": w, "height": h},
				},
				"detection_details": map[string]any{
					"class_name": []string{"crack", "finger", "black_core"}[i%3],
					"confidence": 0.9 - float64(i)*0.01,
					"bounding_box": map[string]any{
						"coordinates": map[string]any{"x1": i, "y1": i, "x2": i + 1, "y2": float64(i) + img.Area},
						"dimensions":  map[string]any{"width": 1, "height": img.Area, "area": img.Area},
					},
				},
			})
		}
	}

	return map[string]any{
		"metadata": map[string]any{
			"model_name":             "yolov8-el",
			"total_images":           len(images),
			"total_detected_objects": len(objects),
		},
		"detected_objects": objects,
	}
}

// WriteJSON сериализует значение в файл
func WriteJSON(t testing.TB, path string, v any) {
	t.Helper()
	raw, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))
}
