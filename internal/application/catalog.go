package app

import (
	"context"
	"fmt"

	"solar-inspector/internal/domain/entity"
	"solar-inspector/internal/domain/port"
)

// CatalogService операции чтения над загруженным отчётом и снимками.
type CatalogService struct {
	store     port.RecordStore
	artifacts port.ArtifactStore
	images    []entity.ImageSummary
}

// NewCatalogService создаёт сервис; список снимков строится один раз.
func NewCatalogService(store port.RecordStore, artifacts port.ArtifactStore) *CatalogService {
	reports := store.Reports()
	images := make([]entity.ImageSummary, 0, len(reports))
	for _, r := range reports {
		images = append(images, r.Summary())
	}

	return &CatalogService{
		store:     store,
		artifacts: artifacts,
		images:    images,
	}
}

// ListImages возвращает все снимки с категорией, отсортированные по имени
func (s *CatalogService) ListImages() []entity.ImageSummary {
	return s.images
}

// GetSummary возвращает статистику парка
func (s *CatalogService) GetSummary() entity.SummaryStatistics {
	return s.store.Summary()
}

// GetImage возвращает полную сводку по снимку
func (s *CatalogService) GetImage(imageID string) (entity.ImageReport, error) {
	report, ok := s.store.Report(imageID)
	if !ok {
		return entity.ImageReport{}, fmt.Errorf("%w: image %q", entity.ErrNotFound, imageID)
	}
	return report, nil
}

// GetArtifact возвращает исходный или размеченный снимок
func (s *CatalogService) GetArtifact(ctx context.Context, imageID string, kind entity.ArtifactKind) (*entity.Artifact, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: artifact kind %q", entity.ErrNotFound, kind)
	}
	if _, ok := s.store.Report(imageID); !ok {
		return nil, fmt.Errorf("%w: image %q", entity.ErrNotFound, imageID)
	}
	return s.artifacts.Get(ctx, imageID, kind)
}
