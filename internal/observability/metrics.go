// Package observability собирает метрики Prometheus для HTTP API и анализа.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"solar-inspector/internal/domain/entity"
)

const namespace = "solar_inspector"

// Metrics набор метрик сервиса. Нулевой указатель допустим: все методы ничего не делают.
type Metrics struct {
	registry         *prometheus.Registry
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	AnalysesTotal    *prometheus.CounterVec
	ImagesByCategory *prometheus.GaugeVec
	DefectsTotal     prometheus.Gauge
}

// NewMetrics регистрирует метрики в собственном реестре
func NewMetrics() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests partitioned by route, method and status code.",
		}, []string{"route", "method", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency partitioned by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		AnalysesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Simulated analyses served, partitioned by severity category.",
		}, []string{"category"}),
		ImagesByCategory: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "images",
			Help:      "Images in the loaded report, partitioned by severity category.",
		}, []string{"category"}),
		DefectsTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "detected_objects",
			Help:      "Detected defects in the loaded report.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.RequestsTotal, m.RequestDuration, m.AnalysesTotal, m.ImagesByCategory, m.DefectsTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Handler отдаёт метрики в текстовом формате
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest учитывает один HTTP-запрос
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// IncAnalysis учитывает выданный результат анализа; неизвестные категории не
// заводят новых меток.
func (m *Metrics) IncAnalysis(category entity.Category) {
	if m == nil || !category.Valid() {
		return
	}
	m.AnalysesTotal.WithLabelValues(string(category)).Inc()
}

// SetFleet выставляет размеры парка по загруженной статистике
func (m *Metrics) SetFleet(stats entity.SummaryStatistics) {
	if m == nil {
		return
	}
	for _, c := range entity.Categories() {
		m.ImagesByCategory.WithLabelValues(string(c)).Set(float64(stats.Categories[c]))
	}
	m.DefectsTotal.Set(float64(stats.TotalDetectedObjects))
}
