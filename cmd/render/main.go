// Command render перерисовывает размеченные снимки из отчёта детектора.
// Собирается с тегом gocv, иначе каждая отрисовка завершается ErrGoCVDisabled.
package main

import (
	"log"
	"os"
	"path/filepath"

	"solar-inspector/config"
	"solar-inspector/internal/domain/entity"
	"solar-inspector/internal/domain/severity"
	"solar-inspector/internal/infrastructure/storage"
	"solar-inspector/internal/infrastructure/vision"
	"solar-inspector/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logg.Sync()

	classifier, err := severity.NewClassifier(cfg.Thresholds)
	if err != nil {
		logg.Fatal("invalid thresholds", "error", err)
	}

	// Источник истины здесь исходники: результатов может ещё не быть.
	artifacts := storage.NewFilesystemArtifactStore(cfg.OriginalDir(), cfg.ResultDir(), 0)
	ids, err := artifacts.List(entity.ArtifactOriginal)
	if err != nil {
		logg.Fatal("list original images", "dir", cfg.OriginalDir(), "error", err)
	}

	report, err := storage.LoadReport(cfg.ReportPath())
	if err != nil {
		logg.Fatal("load detection report", "path", cfg.ReportPath(), "error", err)
	}

	store, err := storage.NewMemoryRecordStore(report.Records, ids, classifier)
	if err != nil {
		logg.Fatal("index detection report", "error", err)
	}

	if err := os.MkdirAll(cfg.ResultDir(), 0o755); err != nil {
		logg.Fatal("create result dir", "dir", cfg.ResultDir(), "error", err)
	}

	highlighter := vision.NewGoCVHighlighter()
	failed := 0
	for _, r := range store.Reports() {
		src, err := os.ReadFile(filepath.Join(cfg.OriginalDir(), r.ImageID))
		if err != nil {
			logg.Error("read original", "image_id", r.ImageID, "error", err)
			failed++
			continue
		}

		out, err := highlighter.Highlight(r.ImageID, src, r.Defects, r.Category)
		if err != nil {
			logg.Error("highlight defects", "image_id", r.ImageID, "error", err)
			failed++
			continue
		}

		if err := os.WriteFile(filepath.Join(cfg.ResultDir(), r.ImageID), out, 0o644); err != nil {
			logg.Error("write result", "image_id", r.ImageID, "error", err)
			failed++
			continue
		}
		logg.Debug("rendered", "image_id", r.ImageID, "defects", r.DefectCount, "category", r.Category)
	}

	logg.Info("render finished", "images", len(ids), "failed", failed)
	if failed > 0 {
		logg.Sync()
		os.Exit(1)
	}
}
