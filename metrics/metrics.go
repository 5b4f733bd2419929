// Package metrics provides Prometheus-backed metrics primitives for the
// PeerDAS KZG library: counters for proofs generated/verified, gauges
// for in-flight reconstructions, and histograms for cell/proof timing.
// Counter and Gauge wrap prometheus.Counter/Gauge directly; Histogram
// adds quantile buckets, which a hand-rolled min/max/sum accumulator
// cannot give a caller graphing p50/p99 proof latency.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the set of collectors a Counter/Gauge/Histogram is
// registered against. Callers that embed this library alongside their
// own metrics should pass prometheus.DefaultRegisterer or a private
// *prometheus.Registry; passing nil registers against
// prometheus.DefaultRegisterer.
type Registry = prometheus.Registerer

// ---------------------------------------------------------------------------
// Counter
// ---------------------------------------------------------------------------

// Counter is a monotonically increasing counter, such as the number of
// cell proofs generated or verified.
type Counter struct {
	name string
	c    prometheus.Counter
}

// NewCounter registers and returns a new Counter with the given name
// and help text.
func NewCounter(reg Registry, name, help string) *Counter {
	c := prometheus.NewCounter(prometheus.CounterOpts{
		Name: name,
		Help: help,
	})
	mustRegister(reg, c)
	return &Counter{name: name, c: c}
}

// Inc increments the counter by 1.
func (c *Counter) Inc() { c.c.Inc() }

// Add increments the counter by n. Negative values are silently
// ignored because counters are monotonically increasing.
func (c *Counter) Add(n float64) {
	if n > 0 {
		c.c.Add(n)
	}
}

// Name returns the metric name.
func (c *Counter) Name() string { return c.name }

// ---------------------------------------------------------------------------
// Gauge
// ---------------------------------------------------------------------------

// Gauge is a value that can go up and down, such as the number of
// reconstructions currently in flight.
type Gauge struct {
	name string
	g    prometheus.Gauge
}

// NewGauge registers and returns a new Gauge with the given name and
// help text.
func NewGauge(reg Registry, name, help string) *Gauge {
	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: name,
		Help: help,
	})
	mustRegister(reg, g)
	return &Gauge{name: name, g: g}
}

// Set sets the gauge to the given value.
func (g *Gauge) Set(v float64) { g.g.Set(v) }

// Inc increments the gauge by 1.
func (g *Gauge) Inc() { g.g.Inc() }

// Dec decrements the gauge by 1.
func (g *Gauge) Dec() { g.g.Dec() }

// Name returns the metric name.
func (g *Gauge) Name() string { return g.name }

// ---------------------------------------------------------------------------
// Histogram
// ---------------------------------------------------------------------------

// Histogram tracks the distribution of observed values, such as cell
// proof verification latency in milliseconds.
type Histogram struct {
	name string
	h    prometheus.Histogram
}

// NewHistogram registers and returns a new Histogram with the given
// name, help text, and bucket boundaries. A nil buckets slice falls
// back to prometheus.DefBuckets.
func NewHistogram(reg Registry, name, help string, buckets []float64) *Histogram {
	if buckets == nil {
		buckets = prometheus.DefBuckets
	}
	h := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    name,
		Help:    help,
		Buckets: buckets,
	})
	mustRegister(reg, h)
	return &Histogram{name: name, h: h}
}

// Observe records a value.
func (h *Histogram) Observe(v float64) { h.h.Observe(v) }

// Name returns the metric name.
func (h *Histogram) Name() string { return h.name }

// ---------------------------------------------------------------------------
// Timer
// ---------------------------------------------------------------------------

// Timer is a convenience helper for timing operations. It records the
// elapsed duration (in milliseconds) into an associated Histogram when
// Stop is called.
type Timer struct {
	start time.Time
	hist  *Histogram
}

// NewTimer starts a new timer that will record into h when stopped.
func NewTimer(h *Histogram) *Timer {
	return &Timer{
		start: time.Now(),
		hist:  h,
	}
}

// Stop records the elapsed time in milliseconds into the associated
// histogram and returns the duration.
func (t *Timer) Stop() time.Duration {
	d := time.Since(t.start)
	if t.hist != nil {
		t.hist.Observe(float64(d.Milliseconds()))
	}
	return d
}

func mustRegister(reg Registry, c prometheus.Collector) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if err := reg.Register(c); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return
		}
		panic(err)
	}
}
