package entity

// ArtifactKind вариант изображения
type ArtifactKind string

const (
	ArtifactOriginal ArtifactKind = "original" // исходный EL-снимок
	ArtifactResult   ArtifactKind = "result"   // снимок с разметкой дефектов
)

// Valid проверяет вариант артефакта
func (k ArtifactKind) Valid() bool {
	return k == ArtifactOriginal || k == ArtifactResult
}

// Artifact содержимое изображения вместе с типом
type Artifact struct {
	ImageID     string
	Kind        ArtifactKind
	ContentType string
	Data        []byte
}
