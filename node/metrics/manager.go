package metrics

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// IMetric metric reader
type IMetric interface {
	Read()
}

// IMetricManager metric manager
type IMetricManager interface {
	Add(metrics ...IMetric)
	Listen(ctx context.Context, addr string) error
}

// metricsManager polls every added IMetric on a fixed interval.
type metricsManager struct {
	sync.Mutex
	metrics  []IMetric
	interval time.Duration
	gatherer prometheus.Gatherer
}

// Metrics creates metric instance. Polling stops when ctx is done.
func Metrics(ctx context.Context, interval time.Duration, gatherer prometheus.Gatherer) IMetricManager {
	res := &metricsManager{
		interval: interval,
		gatherer: gatherer,
	}

	go res.collector(ctx)
	return res
}

func (m *metricsManager) Add(metrics ...IMetric) {
	m.Lock()
	m.metrics = append(m.metrics, metrics...)
	m.Unlock()
}

func (m *metricsManager) read() {
	m.Lock()
	metrics := append([]IMetric(nil), m.metrics...)
	m.Unlock()

	for _, v := range metrics {
		v.Read()
	}
}

func (m *metricsManager) collector(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.read()
		}
	}
}

// Listen serves the gathered metrics on addr under /metrics until ctx is done.
func (m *metricsManager) Listen(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("can't stop metrics server")
		}
	}()

	log.Info().Str("addr", addr).Msg("serving metrics")
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return errors.Wrap(err, "metrics server failed")
}
