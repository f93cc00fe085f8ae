package web

import (
	"github.com/gin-gonic/gin"

	"solar-inspector/internal/observability"
	"solar-inspector/internal/platform/logger"
)

type RouterConfig struct {
	Handler     *Handler
	Metrics     *observability.Metrics
	Logger      *logger.Logger
	CORSOrigins []string
}

// NewRouter собирает gin-движок со всеми маршрутами сервиса
func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(log))
	// Observe стоит до CORS: cors обрывает preflight-запросы раньше маршрута.
	if cfg.Metrics != nil {
		r.Use(Observe(cfg.Metrics))
	}
	r.Use(CORS(cfg.CORSOrigins))
	r.SetHTMLTemplate(dashboardTemplate)

	h := cfg.Handler
	r.GET("/", h.Dashboard)
	r.GET("/healthz", h.Health)

	api := r.Group("/api")
	{
		api.GET("/images", h.ListImages)
		api.GET("/images/:image_id", h.GetImage)
		api.GET("/summary", h.Summary)
		api.POST("/analyze", h.Analyze)
	}

	r.GET("/original/:filename", h.ServeOriginal)
	r.GET("/results/:filename", h.ServeResult)

	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	return r
}
