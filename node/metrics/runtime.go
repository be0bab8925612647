package metrics

import (
	"runtime"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

type runtimeMetrics struct {
	sync.Mutex
	metricsByName map[string]prometheus.Gauge
	reg           prometheus.Registerer
	name          string
}

// RuntimeMetrics reports heap and goroutine gauges on every Read.
func RuntimeMetrics(name string, reg prometheus.Registerer) (res IMetric) {
	res = &runtimeMetrics{
		metricsByName: make(map[string]prometheus.Gauge),
		reg:           reg,
		name:          name,
	}
	return res
}

func (s *runtimeMetrics) Read() {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	s.updateGauge(prometheus.BuildFQName("mtree", s.name, "heap_alloc_bytes"), float64(mem.HeapAlloc))
	s.updateGauge(prometheus.BuildFQName("mtree", s.name, "heap_objects"), float64(mem.HeapObjects))
	s.updateGauge(prometheus.BuildFQName("mtree", s.name, "goroutines"), float64(runtime.NumGoroutine()))
}

func (s *runtimeMetrics) updateGauge(name string, value float64) {
	s.Lock()
	defer s.Unlock()

	m, ok := s.metricsByName[name]
	if !ok {
		m = prometheus.NewGauge(prometheus.GaugeOpts{Name: name})
		if err := s.reg.Register(m); err != nil {
			log.Error().Err(err).Str("metric", name).Msg("can't register metric")
		}
		s.metricsByName[name] = m
	}
	m.Set(value)
}
