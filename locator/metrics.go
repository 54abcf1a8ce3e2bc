package locator

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	cacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "locator_cache_hits_total",
		Help: "Lookups served from the object cache.",
	})
	cacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "locator_cache_misses_total",
		Help: "Lookups that went to the directory to populate the cache.",
	})
	lookupMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "locator_lookup_not_found_total",
		Help: "Directory lookups that found no binding for the name.",
	})
	lookupFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "locator_lookup_failures_total",
		Help: "Directory lookups that failed with a non not-found error.",
	})
	cacheClears = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "locator_cache_clears_total",
		Help: "Times the object cache was dropped, explicitly or after a directory failure.",
	})
)

func init() {
	prometheus.MustRegister(cacheHits, cacheMisses, lookupMisses, lookupFailures, cacheClears)
}

// Handler exposing the locator metrics, mount it on the host app's mux.
func PrometheusHandler() http.Handler {
	return promhttp.Handler()
}
