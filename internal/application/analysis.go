package app

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"time"

	"solar-inspector/internal/domain/entity"
	"solar-inspector/internal/domain/port"
)

// maxDetectedObjects сколько дефектов попадает в ответ анализа
const maxDetectedObjects = 10

// AnalysisService отдаёт записанный результат детектора как будто он получен только что.
// Настоящий вывод модели здесь не запускается.
type AnalysisService struct {
	results map[string]entity.AnalysisResult
	latency time.Duration
}

// NewAnalysisService строит таблицу результатов по всем снимкам хранилища
func NewAnalysisService(store port.RecordStore, latency time.Duration) *AnalysisService {
	results := make(map[string]entity.AnalysisResult, len(store.ImageIDs()))
	for _, r := range store.Reports() {
		results[r.ImageID] = recordedResult(r, latency)
	}
	return &AnalysisService{
		results: results,
		latency: latency,
	}
}

// Simulate возвращает записанный результат. Повторные вызовы дают одинаковый ответ.
func (s *AnalysisService) Simulate(ctx context.Context, imageID string) (entity.AnalysisResult, error) {
	result, ok := s.results[imageID]
	if !ok {
		return entity.AnalysisResult{}, fmt.Errorf("%w: image %q", entity.ErrNotFound, imageID)
	}

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return entity.AnalysisResult{}, ctx.Err()
		case <-timer.C:
		}
	}

	return result, nil
}

func recordedResult(r entity.ImageReport, latency time.Duration) entity.AnalysisResult {
	escaped := url.PathEscape(r.ImageID)
	result := entity.AnalysisResult{
		Success:            true,
		ImageID:            r.ImageID,
		ResultURL:          "/results/" + escaped,
		OriginalURL:        "/original/" + escaped,
		ProcessingTime:     round(latency.Seconds(), 2),
		HasDefects:         r.HasDefects(),
		DefectCount:        r.DefectCount,
		Confidence:         round(r.MaxConfidence, 4),
		Status:             r.Category.Label(),
		Category:           r.Category,
		CoveragePercentage: round(r.CoveragePercentage, 2),
		TotalDefectArea:    round(r.TotalDefectArea, 2),
		DetectedObjects:    r.Defects[:min(len(r.Defects), maxDetectedObjects)],
	}
	if r.HasDefects() {
		result.ImageDimensions = &entity.ImageDimensions{Width: r.ImageWidth, Height: r.ImageHeight}
	}
	return result
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
