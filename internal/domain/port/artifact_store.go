package port

import (
	"context"

	"solar-inspector/internal/domain/entity"
)

// ArtifactStore доступ к исходным и размеченным снимкам
type ArtifactStore interface {
	// List возвращает имена файлов заданного варианта
	List(kind entity.ArtifactKind) ([]string, error)

	// Exists проверяет наличие файла без чтения
	Exists(imageID string, kind entity.ArtifactKind) bool

	// Get читает артефакт; ErrNotFound если файла нет
	Get(ctx context.Context, imageID string, kind entity.ArtifactKind) (*entity.Artifact, error)
}
