package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus implements Metrics on the default registry. Metrics are
// exported on /metrics by the HTTP server.
type Prometheus struct {
	httpDuration   *prometheus.HistogramVec
	queryDuration  *prometheus.HistogramVec
	queryFailures  *prometheus.CounterVec
	deleteOutcomes *prometheus.CounterVec
	cacheHits      prometheus.Counter
	cacheMisses    prometheus.Counter
}

func NewPrometheus() *Prometheus {
	return newPrometheusWithRegisterer(prometheus.DefaultRegisterer)
}

func newPrometheusWithRegisterer(registerer prometheus.Registerer) *Prometheus {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &Prometheus{
		httpDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "northwind_http_request_duration_ms",
			Help:    "HTTP request duration in milliseconds",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"method", "route", "status"}),
		queryDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "northwind_query_duration_ms",
			Help:    "Data access operation duration in milliseconds",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"op"}),
		queryFailures: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "northwind_query_failures_total",
			Help: "Total number of failed data access operations",
		}, []string{"op"}),
		deleteOutcomes: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "northwind_customer_delete_total",
			Help: "Customer delete attempts by outcome",
		}, []string{"outcome"}),
		cacheHits: registerCounter(registerer, prometheus.CounterOpts{
			Name: "northwind_catalog_cache_hits_total",
			Help: "Total number of catalog cache hits",
		}),
		cacheMisses: registerCounter(registerer, prometheus.CounterOpts{
			Name: "northwind_catalog_cache_misses_total",
			Help: "Total number of catalog cache misses",
		}),
	}
}

func (p *Prometheus) ObserveHTTP(method, route string, status int, durMs float64) {
	p.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(durMs)
}

func (p *Prometheus) ObserveQuery(op string, durMs float64, failed bool) {
	p.queryDuration.WithLabelValues(op).Observe(durMs)
	if failed {
		p.queryFailures.WithLabelValues(op).Inc()
	}
}

func (p *Prometheus) ObserveDelete(outcome string) {
	p.deleteOutcomes.WithLabelValues(outcome).Inc()
}

func (p *Prometheus) IncCacheHit()  { p.cacheHits.Inc() }
func (p *Prometheus) IncCacheMiss() { p.cacheMisses.Inc() }

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if err := registerer.Register(c); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return already.ExistingCollector.(prometheus.Counter)
		}
		panic(err)
	}
	return c
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(c); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return already.ExistingCollector.(*prometheus.CounterVec)
		}
		panic(err)
	}
	return c
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	h := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(h); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return already.ExistingCollector.(*prometheus.HistogramVec)
		}
		panic(err)
	}
	return h
}
