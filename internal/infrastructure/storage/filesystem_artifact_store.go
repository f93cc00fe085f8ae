package storage

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"solar-inspector/internal/domain/entity"
	"solar-inspector/internal/domain/port"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png"}

// FilesystemArtifactStore читает исходные и размеченные снимки из каталогов
// и держит прочитанные байты в кэше.
type FilesystemArtifactStore struct {
	dirs  map[entity.ArtifactKind]string
	cache *cache.Cache
}

// NewFilesystemArtifactStore создаёт хранилище; ttl <= 0 отключает кэш.
func NewFilesystemArtifactStore(originalDir, resultDir string, ttl time.Duration) *FilesystemArtifactStore {
	s := &FilesystemArtifactStore{
		dirs: map[entity.ArtifactKind]string{
			entity.ArtifactOriginal: originalDir,
			entity.ArtifactResult:   resultDir,
		},
	}
	if ttl > 0 {
		s.cache = cache.New(ttl, 2*ttl)
	}
	return s
}

// List возвращает имена снимков заданного варианта по возрастанию
func (s *FilesystemArtifactStore) List(kind entity.ArtifactKind) ([]string, error) {
	dir, ok := s.dirs[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown artifact kind %q", entity.ErrInvalidInput, kind)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s artifacts: %w", kind, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isImageFile(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names, nil
}

// Exists проверяет наличие непустого файла
func (s *FilesystemArtifactStore) Exists(imageID string, kind entity.ArtifactKind) bool {
	path, err := s.path(imageID, kind)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Size() > 0
}

// Get читает артефакт с диска или из кэша
func (s *FilesystemArtifactStore) Get(ctx context.Context, imageID string, kind entity.ArtifactKind) (*entity.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.path(imageID, kind)
	if err != nil {
		return nil, err
	}

	key := string(kind) + "/" + imageID
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			return cached.(*entity.Artifact), nil
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s artifact %q", entity.ErrNotFound, kind, imageID)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s artifact %q: %w", kind, imageID, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s artifact %q is empty", entity.ErrNotFound, kind, imageID)
	}

	artifact := &entity.Artifact{
		ImageID:     imageID,
		Kind:        kind,
		ContentType: contentType(imageID, data),
		Data:        data,
	}
	if s.cache != nil {
		s.cache.SetDefault(key, artifact)
	}
	return artifact, nil
}

func (s *FilesystemArtifactStore) path(imageID string, kind entity.ArtifactKind) (string, error) {
	dir, ok := s.dirs[kind]
	if !ok {
		return "", fmt.Errorf("%w: unknown artifact kind %q", entity.ErrNotFound, kind)
	}
	if imageID == "" || imageID == "." || imageID == ".." ||
		strings.ContainsAny(imageID, `/\`) || filepath.Base(imageID) != imageID {
		return "", fmt.Errorf("%w: invalid artifact name %q", entity.ErrNotFound, imageID)
	}
	return filepath.Join(dir, imageID), nil
}

func isImageFile(name string) bool {
	return slices.Contains(imageExtensions, strings.ToLower(filepath.Ext(name)))
}

func contentType(name string, data []byte) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); ct != "" {
		return ct
	}
	return http.DetectContentType(data)
}

// Проверка реализации интерфейса
var _ port.ArtifactStore = (*FilesystemArtifactStore)(nil)
