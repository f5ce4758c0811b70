// Package metrics defines the Prometheus collectors for the e-book
// thumbnailer: HTTP request metrics, cover extraction counts and
// durations by format, and thumbnail cache hit/miss/size gauges.
//
// Collectors are registered via promauto at package load; importing this
// package is enough to make them available on the /metrics endpoint.
package metrics
