package observability

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus exports the same observations as Inmem through a registry.
type Prometheus struct {
	gatherer prometheus.Gatherer

	lookupDuration *prometheus.HistogramVec
	writeDuration  *prometheus.HistogramVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	kafkaMessages  *prometheus.CounterVec
	kafkaDuration  prometheus.Histogram
	invalidated    prometheus.Counter
	cacheHits      prometheus.Counter
	cacheMisses    prometheus.Counter
}

func NewPrometheus(reg *prometheus.Registry) *Prometheus {
	f := promauto.With(reg)
	return &Prometheus{
		gatherer: reg,
		lookupDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shop_cache_lookup_duration_seconds",
			Help:    "Read-through lookup latency by key family and source.",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		}, []string{"family", "source"}),
		writeDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shop_store_write_duration_seconds",
			Help:    "Store write latency by entity.",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1},
		}, []string{"entity"}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "shop_http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shop_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		}, []string{"method", "route"}),
		kafkaMessages: f.NewCounterVec(prometheus.CounterOpts{
			Name: "shop_kafka_messages_total",
			Help: "Order stream messages by outcome.",
		}, []string{"ok"}),
		kafkaDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "shop_kafka_process_duration_seconds",
			Help:    "Order stream message processing latency.",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		}),
		invalidated: f.NewCounter(prometheus.CounterOpts{
			Name: "shop_cache_invalidated_keys_total",
			Help: "Cache keys deleted by write-side invalidation.",
		}),
		cacheHits: f.NewCounter(prometheus.CounterOpts{
			Name: "shop_cache_hits_total",
			Help: "Read-through cache hits.",
		}),
		cacheMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "shop_cache_misses_total",
			Help: "Read-through cache misses.",
		}),
	}
}

func (p *Prometheus) ObserveLookup(family, source string, cacheMs, dbMs float64) {
	p.lookupDuration.WithLabelValues(family, source).Observe((cacheMs + dbMs) / 1000)
}

func (p *Prometheus) ObserveWrite(entity string, dbWriteMs float64) {
	p.writeDuration.WithLabelValues(entity).Observe(dbWriteMs / 1000)
}

func (p *Prometheus) ObserveHTTP(method, route string, status int, durMs float64) {
	p.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	p.httpDuration.WithLabelValues(method, route).Observe(durMs / 1000)
}

func (p *Prometheus) ObserveKafka(processMs float64, ok bool) {
	p.kafkaMessages.WithLabelValues(strconv.FormatBool(ok)).Inc()
	p.kafkaDuration.Observe(processMs / 1000)
}

func (p *Prometheus) ObserveInvalidation(keys int) { p.invalidated.Add(float64(keys)) }
func (p *Prometheus) IncCacheHit()                 { p.cacheHits.Inc() }
func (p *Prometheus) IncCacheMiss()                { p.cacheMisses.Inc() }

// Handler serves the registry in the Prometheus text format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.gatherer, promhttp.HandlerOpts{})
}
