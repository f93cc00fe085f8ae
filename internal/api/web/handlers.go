package web

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"solar-inspector/internal/domain/entity"
	"solar-inspector/internal/observability"
)

// Catalog операции чтения, которые нужны HTTP-слою
type Catalog interface {
	ListImages() []entity.ImageSummary
	GetSummary() entity.SummaryStatistics
	GetImage(imageID string) (entity.ImageReport, error)
	GetArtifact(ctx context.Context, imageID string, kind entity.ArtifactKind) (*entity.Artifact, error)
}

// Analyzer выдаёт записанный результат анализа
type Analyzer interface {
	Simulate(ctx context.Context, imageID string) (entity.AnalysisResult, error)
}

type Handler struct {
	catalog  Catalog
	analyzer Analyzer
	metrics  *observability.Metrics
}

func NewHandler(catalog Catalog, analyzer Analyzer, metrics *observability.Metrics) *Handler {
	return &Handler{
		catalog:  catalog,
		analyzer: analyzer,
		metrics:  metrics,
	}
}

type analyzeRequest struct {
	ImageID   string `json:"image_id"`
	ImageName string `json:"image_name"`
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h *Handler) ListImages(c *gin.Context) {
	RespondOK(c, h.catalog.ListImages())
}

func (h *Handler) GetImage(c *gin.Context) {
	report, err := h.catalog.GetImage(c.Param("image_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	RespondOK(c, report)
}

func (h *Handler) Summary(c *gin.Context) {
	RespondOK(c, h.catalog.GetSummary())
}

// Analyze отдаёт записанный результат; image_name принимается для старых клиентов.
func (h *Handler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_input", errors.New("request body must be a JSON object with image_id"))
		return
	}

	imageID := strings.TrimSpace(req.ImageID)
	if imageID == "" {
		imageID = strings.TrimSpace(req.ImageName)
	}
	if imageID == "" {
		RespondError(c, http.StatusBadRequest, "invalid_input", errors.New("no image specified"))
		return
	}

	result, err := h.analyzer.Simulate(c.Request.Context(), imageID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	h.metrics.IncAnalysis(result.Category)
	RespondOK(c, result)
}

func (h *Handler) ServeOriginal(c *gin.Context) {
	h.serveArtifact(c, entity.ArtifactOriginal)
}

func (h *Handler) ServeResult(c *gin.Context) {
	h.serveArtifact(c, entity.ArtifactResult)
}

func (h *Handler) serveArtifact(c *gin.Context, kind entity.ArtifactKind) {
	artifact, err := h.catalog.GetArtifact(c.Request.Context(), c.Param("filename"), kind)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	// Снимки не меняются за время жизни процесса.
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}
