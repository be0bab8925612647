package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/jaxnet/mtree/node/mtree"
	"gitlab.com/jaxnet/mtree/types/hashers"
)

func TestTreeMetrics_ObservePush(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewTreeMetrics("blocks", reg)
	require.NoError(t, err)

	st := mtree.NewSync[uint64, uint64](hashers.Polynomial{}, m)
	for i := 0; i < 5; i++ {
		st.Push(uint64(i))
	}

	assert.Equal(t, float64(5), testutil.ToFloat64(m.pushes))
	assert.Equal(t, float64(5), testutil.ToFloat64(m.size))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.depth))
	assert.Equal(t, float64(5), m.Pushes())

	count, err := testutil.GatherAndCount(reg,
		"mtree_blocks_pushes_total", "mtree_blocks_size", "mtree_blocks_depth")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestTreeMetrics_DuplicateName(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewTreeMetrics("dup", reg)
	require.NoError(t, err)

	_, err = NewTreeMetrics("dup", reg)
	assert.Error(t, err)
}

func TestRuntimeMetrics_Read(t *testing.T) {
	reg := prometheus.NewRegistry()
	rm := RuntimeMetrics("bench", reg)

	rm.Read()
	rm.Read()

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

type countingMetric struct{ reads chan struct{} }

func (c countingMetric) Read() {
	select {
	case c.reads <- struct{}{}:
	default:
	}
}

func TestManager_Collector(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metric := countingMetric{reads: make(chan struct{}, 1)}
	manager := Metrics(ctx, 5*time.Millisecond, prometheus.NewRegistry())
	manager.Add(metric)

	select {
	case <-metric.reads:
	case <-time.After(time.Second):
		t.Fatal("metric was never read")
	}
}

func TestManager_ListenStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	manager := Metrics(ctx, time.Minute, prometheus.NewRegistry())

	done := make(chan error, 1)
	go func() { done <- manager.Listen(ctx, "127.0.0.1:0") }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
