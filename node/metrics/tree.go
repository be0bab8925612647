package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"gitlab.com/jaxnet/mtree/node/mtree"
)

var _ mtree.Observer = (*TreeMetrics)(nil)

// TreeMetrics exports the progress of one tree. Hand it to mtree.NewSync as
// an observer.
type TreeMetrics struct {
	pushes prometheus.Counter
	size   prometheus.Gauge
	depth  prometheus.Gauge
}

// NewTreeMetrics registers the metrics of the tree called name with reg.
func NewTreeMetrics(name string, reg prometheus.Registerer) (*TreeMetrics, error) {
	m := &TreeMetrics{
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: prometheus.BuildFQName("mtree", name, "pushes_total"),
			Help: "Number of blocks pushed into the tree",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prometheus.BuildFQName("mtree", name, "size"),
			Help: "Number of leaves in the tree",
		}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: prometheus.BuildFQName("mtree", name, "depth"),
			Help: "Edges on the longest root to leaf path",
		}),
	}

	for _, c := range []prometheus.Collector{m.pushes, m.size, m.depth} {
		if err := reg.Register(c); err != nil {
			log.Error().Err(err).Str("tree", name).Msg("can't register metric")
			return nil, err
		}
	}
	return m, nil
}

func (m *TreeMetrics) ObservePush(size, depth int) {
	m.pushes.Inc()
	m.size.Set(float64(size))
	m.depth.Set(float64(depth))
}

// Pushes returns the current value of the push counter.
func (m *TreeMetrics) Pushes() float64 { return readCounter(m.pushes) }

func readCounter(c prometheus.Counter) float64 {
	var out dto.Metric
	if err := c.Write(&out); err != nil {
		return 0
	}
	return out.GetCounter().GetValue()
}
