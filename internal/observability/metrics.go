package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Результаты поиска набора данных для DatasetCache
const (
	CacheHitMemo  = "memo"
	CacheHitStore = "hit"
	CacheMiss     = "miss"
)

// Collector - метрики Prometheus HTTP слоя и сессий. Методы безопасны на nil.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec

	SessionsActive     prometheus.Gauge
	AnalysesGenerated  *prometheus.CounterVec
	DatasetCacheLookup *prometheus.CounterVec
}

// NewCollector регистрирует метрики в reg; nil - глобальный реестр
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of handled HTTP requests, labeled by method, route and status code.",
	}, []string{"method", "route", "status"}), "http_requests_total")
	if err != nil {
		return nil, err
	}

	durations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "route"}), "http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	sessions, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "dashboard_sessions_active",
		Help: "Current number of live dashboard sessions.",
	}), "dashboard_sessions_active")
	if err != nil {
		return nil, err
	}

	analyses, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_analyses_generated_total",
		Help: "Analyses generated across all sessions, labeled by region.",
	}, []string{"region"}), "dashboard_analyses_generated_total")
	if err != nil {
		return nil, err
	}

	cache, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_dataset_cache_total",
		Help: "Chart dataset lookups, labeled by dataset kind and result (memo, hit, miss).",
	}, []string{"kind", "result"}), "dashboard_dataset_cache_total")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:           gatherer,
		HTTPRequests:       requests,
		HTTPDurations:      durations,
		SessionsActive:     sessions,
		AnalysesGenerated:  analyses,
		DatasetCacheLookup: cache,
	}, nil
}

// Middleware считает запросы и их длительность. В метке route - шаблон маршрута, а не путь.
func (c *Collector) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		if c == nil {
			return err
		}

		status := ctx.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else if status < http.StatusBadRequest {
				status = http.StatusInternalServerError
			}
		}

		route := "unmatched"
		if r := ctx.Route(); r != nil && r.Path != "" && r.Path != "/" {
			route = r.Path
		}
		method := ctx.Method()

		c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		c.HTTPDurations.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler - обработчик /metrics
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func (c *Collector) SetSessionsActive(n int) {
	if c == nil {
		return
	}
	c.SessionsActive.Set(float64(n))
}

func (c *Collector) AnalysisGenerated(regionID string) {
	if c == nil {
		return
	}
	c.AnalysesGenerated.WithLabelValues(regionID).Inc()
}

// DatasetCache учитывает поиск набора данных вида kind (factors, historical)
func (c *Collector) DatasetCache(kind, result string) {
	if c == nil {
		return
	}
	c.DatasetCacheLookup.WithLabelValues(kind, result).Inc()
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
