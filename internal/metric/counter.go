// Package metric wraps the Prometheus counters exported by the build and
// the preview server.
package metric

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// IncrementalCounter counts events split by label values.
type IncrementalCounter interface {
	Increment(labels ...string)
}

// Counter is a labelled Prometheus counter.
type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

// Increment adds one to the series for labels.
func (c *Counter) Increment(labels ...string) {
	c.vec.WithLabelValues(labels...).Inc()
}

// Collector exposes the underlying vector.
func (c *Counter) Collector() *prometheus.CounterVec { return c.vec }

// NewCounter registers a counter on reg. Registering the same name twice
// returns the counter that is already there.
func NewCounter(reg prometheus.Registerer, name, help string, labels ...string) (*Counter, error) {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)

	if err := reg.Register(vec); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, fmt.Errorf("registering %s: %w", name, err)
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, fmt.Errorf("registering %s: existing collector is %T", name, are.ExistingCollector)
		}
		vec = existing
	}

	return &Counter{Name: name, Help: help, vec: vec}, nil
}

// Nop discards increments.
type Nop struct{}

func (Nop) Increment(...string) {}

// NewRegistry returns a private registry, so tests and parallel servers do
// not share series through the global default.
func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
