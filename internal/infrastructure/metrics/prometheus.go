// Package metrics expone contadores Prometheus del servicio en un registro propio.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/StyleWatch-api/internal/application/analysis"
)

var _ analysis.MetricsRecorder = (*Recorder)(nil)

// Recorder implementa analysis.MetricsRecorder y mide las peticiones HTTP.
type Recorder struct {
	registry     *prometheus.Registry
	parsedLines  *prometheus.CounterVec
	skippedLines *prometheus.CounterVec
	shortages    prometheus.Histogram
	persists     *prometheus.CounterVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New registra las métricas bajo el namespace dado (ej. "stylewatch").
func New(namespace string) *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		parsedLines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parsed_lines_total",
			Help:      "Líneas reconocidas por los parsers.",
		}, []string{"source"}),
		skippedLines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_lines_total",
			Help:      "Líneas descartadas por los parsers.",
		}, []string{"source"}),
		shortages: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "shortages_per_analysis",
			Help:      "SKUs en quiebre por análisis.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		}),
		persists: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persisted_runs_total",
			Help:      "Corridas guardadas por resultado.",
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP por ruta y código.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duración de las peticiones HTTP.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.parsedLines, r.skippedLines, r.shortages, r.persists, r.httpRequests, r.httpDuration,
	)
	return r
}

func (r *Recorder) ObserveParse(source string, parsed, skipped int) {
	r.parsedLines.WithLabelValues(source).Add(float64(parsed))
	r.skippedLines.WithLabelValues(source).Add(float64(skipped))
}

func (r *Recorder) ObserveShortages(n int) {
	r.shortages.Observe(float64(n))
}

func (r *Recorder) ObservePersist(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.persists.WithLabelValues(result).Inc()
}

// Handler sirve el registro en formato de exposición de Prometheus.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Middleware mide cada petición usando la ruta registrada (no la URL), para no crear
// una serie por cada estilo consultado.
func (r *Recorder) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		r.httpRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		r.httpDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}
