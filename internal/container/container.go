package container

import (
	"fmt"
	"time"

	"solar-inspector/config"
	app "solar-inspector/internal/application"
	"solar-inspector/internal/domain/entity"
	"solar-inspector/internal/domain/port"
	"solar-inspector/internal/domain/severity"
	"solar-inspector/internal/infrastructure/describer"
	"solar-inspector/internal/infrastructure/storage"
	"solar-inspector/internal/platform/logger"
)

type Container struct {
	Store           port.RecordStore
	CatalogService  *app.CatalogService
	AnalysisService *app.AnalysisService
	SessionService  *app.SessionService
	Describer       port.AnalysisDescriber
}

func New(store port.RecordStore, artifacts port.ArtifactStore, sessions port.SessionRepository, describer port.AnalysisDescriber, analyzeLatency time.Duration) *Container {
	return &Container{
		Store:           store,
		CatalogService:  app.NewCatalogService(store, artifacts),
		AnalysisService: app.NewAnalysisService(store, analyzeLatency),
		SessionService:  app.NewSessionService(sessions),
		Describer:       describer,
	}
}

// Load читает отчёт и снимки и собирает сервисы. Любая ошибка оборачивает
// entity.ErrStoreLoad: процесс не должен обслуживать частично загруженные данные.
func Load(cfg *config.Config, log *logger.Logger) (*Container, error) {
	classifier, err := severity.NewClassifier(cfg.Thresholds)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrStoreLoad, err)
	}

	artifacts := storage.NewFilesystemArtifactStore(cfg.OriginalDir(), cfg.ResultDir(), cfg.ArtifactCacheTTL)
	ids, err := imageIndex(artifacts)
	if err != nil {
		return nil, err
	}

	report, err := storage.LoadReport(cfg.ReportPath())
	if err != nil {
		return nil, err
	}

	store, err := storage.NewMemoryRecordStore(report.Records, ids, classifier)
	if err != nil {
		return nil, err
	}

	recorded, err := storage.LoadRecordedSummary(cfg.SummaryPath())
	if err != nil {
		return nil, err
	}

	summary := store.Summary()
	checkRecorded(log, summary, report.Metadata, recorded)

	log.Info("detection report loaded",
		"images", summary.TotalImages,
		"detected_objects", summary.TotalDetectedObjects,
		"good", summary.Categories[entity.CategoryGood],
		"needs_repair", summary.Categories[entity.CategoryNeedsRepair],
		"critical", summary.Categories[entity.CategoryCritical],
		"fully_damaged", summary.Categories[entity.CategoryFullyDamaged],
		"model", report.Metadata.ModelName,
		"thresholds", classifier.Thresholds(),
	)

	return New(store, artifacts, storage.NewMemorySessionRepository(cfg.SessionTTL), describer.NewTextDescriber(), cfg.AnalyzeLatency), nil
}

// imageIndex снимки берутся из каталога результатов; оба варианта каждого снимка
// должны читаться, иначе список обещал бы то, что нельзя отдать.
func imageIndex(artifacts port.ArtifactStore) ([]string, error) {
	ids, err := artifacts.List(entity.ArtifactResult)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrStoreLoad, err)
	}
	for _, id := range ids {
		if !artifacts.Exists(id, entity.ArtifactResult) {
			return nil, fmt.Errorf("%w: result %q is empty or unreadable", entity.ErrStoreLoad, id)
		}
		if !artifacts.Exists(id, entity.ArtifactOriginal) {
			return nil, fmt.Errorf("%w: result %q has no original image", entity.ErrStoreLoad, id)
		}
	}
	return ids, nil
}

func checkRecorded(log *logger.Logger, summary entity.SummaryStatistics, meta storage.ReportMetadata, recorded *storage.RecordedSummary) {
	if meta.TotalImages > 0 && meta.TotalImages != summary.TotalImages {
		log.Warn("report metadata image count differs from image directory",
			"metadata", meta.TotalImages, "indexed", summary.TotalImages)
	}
	if recorded == nil {
		return
	}
	if recorded.TotalImages != summary.TotalImages || recorded.TotalDetectedObjects != summary.TotalDetectedObjects {
		log.Warn("recorded summary differs from computed statistics",
			"recorded_images", recorded.TotalImages,
			"computed_images", summary.TotalImages,
			"recorded_detected_objects", recorded.TotalDetectedObjects,
			"computed_detected_objects", summary.TotalDetectedObjects,
		)
	}
}
