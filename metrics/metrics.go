// Package metrics records MST runs as Prometheus metrics on a private
// registry and exports them in the text exposition format, ready for the
// node_exporter textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/primweight/core"
	"github.com/katalvlaran/primweight/prim_kruskal"
)

// Outcome label values of RunsTotal.
const (
	OutcomeConnected    = "connected"
	OutcomeNotConnected = "not_connected"
	OutcomeError        = "error"
)

// Op label values of HeapOpsTotal.
const (
	OpExtract     = "extract"
	OpDecreaseKey = "decrease_key"
)

// Metrics holds every collector, registered on Registry.
type Metrics struct {
	Registry *prometheus.Registry

	RunsTotal     *prometheus.CounterVec
	RunDuration   *prometheus.HistogramVec
	MSTWeight     *prometheus.GaugeVec
	HeapOpsTotal  *prometheus.CounterVec
	GraphVertices prometheus.Gauge
	GraphEdges    prometheus.Gauge
}

// New creates the collectors under namespace on a fresh registry.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		RunsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "MST computations by method and outcome",
			},
			[]string{"method", "outcome"},
		),

		RunDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Duration of MST computations",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
			},
			[]string{"method"},
		),

		MSTWeight: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "mst_weight",
				Help:      "Total weight of the last connected MST",
			},
			[]string{"method"},
		),

		HeapOpsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "heap",
				Name:      "ops_total",
				Help:      "Indexed heap operations performed by Prim",
			},
			[]string{"op"},
		),

		GraphVertices: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "graph",
				Name:      "vertices",
				Help:      "Vertices in the last input graph",
			},
		),

		GraphEdges: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "graph",
				Name:      "edges",
				Help:      "Stored edges in the last input graph",
			},
		),
	}
}

// Options returns prim_kruskal hooks feeding HeapOpsTotal.
func (m *Metrics) Options() []prim_kruskal.Option {
	extract := m.HeapOpsTotal.WithLabelValues(OpExtract)
	decrease := m.HeapOpsTotal.WithLabelValues(OpDecreaseKey)

	return []prim_kruskal.Option{
		prim_kruskal.WithOnExtract(func(int, int64) { extract.Inc() }),
		prim_kruskal.WithOnDecreaseKey(func(int, int64, int64) { decrease.Inc() }),
	}
}

// ObserveGraph records the size of g.
func (m *Metrics) ObserveGraph(g *core.Graph) {
	m.GraphVertices.Set(float64(g.VertexCount()))
	m.GraphEdges.Set(float64(g.EdgeCount()))
}

// Observe records one finished run.
func (m *Metrics) Observe(method string, res prim_kruskal.Result, err error, d time.Duration) {
	m.RunDuration.WithLabelValues(method).Observe(d.Seconds())

	switch {
	case err != nil:
		m.RunsTotal.WithLabelValues(method, OutcomeError).Inc()
	case !res.Connected:
		m.RunsTotal.WithLabelValues(method, OutcomeNotConnected).Inc()
	default:
		m.RunsTotal.WithLabelValues(method, OutcomeConnected).Inc()
		m.MSTWeight.WithLabelValues(method).Set(float64(res.Weight))
	}
}

// Compute runs prim_kruskal.Compute and records the graph size, outcome and
// duration. Heap hooks are attached for MethodPrim only.
func (m *Metrics) Compute(g *core.Graph, method string, opts ...prim_kruskal.Option) (prim_kruskal.Result, error) {
	if g != nil {
		m.ObserveGraph(g)
	}
	all := make([]prim_kruskal.Option, 0, len(opts)+3)
	all = append(all, opts...)
	if method == prim_kruskal.MethodPrim {
		all = append(all, m.Options()...)
	}
	all = append(all, prim_kruskal.WithMethod(method))

	start := time.Now()
	res, err := prim_kruskal.Compute(g, all...)
	m.Observe(method, res, err, time.Since(start))

	return res, err
}

// WriteTextfile atomically writes the registry to path.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("metrics: writing %s: %w", path, err)
	}

	return nil
}
