package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"solar-inspector/internal/domain/entity"
)

//go:embed templates/*.html
var templatesFS embed.FS

var dashboardTemplate = template.Must(template.New("").Funcs(template.FuncMap{
	"label": func(c entity.Category) string { return c.Label() },
}).ParseFS(templatesFS, "templates/*.html"))

type categoryCount struct {
	Category entity.Category
	Count    int
}

type dashboardData struct {
	Images     []entity.ImageSummary
	Summary    entity.SummaryStatistics
	Categories []categoryCount
}

// Dashboard главная страница со сводкой и списком снимков
func (h *Handler) Dashboard(c *gin.Context) {
	summary := h.catalog.GetSummary()
	categories := make([]categoryCount, 0, len(entity.Categories()))
	for _, cat := range entity.Categories() {
		categories = append(categories, categoryCount{Category: cat, Count: summary.Categories[cat]})
	}

	c.HTML(http.StatusOK, "index.html", dashboardData{
		Images:     h.catalog.ListImages(),
		Summary:    summary,
		Categories: categories,
	})
}
