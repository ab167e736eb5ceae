package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegistry("prisma-led", prometheus.NewRegistry())

	m.ObserveHTTPRequest("POST", "/api/v1/availability", 200, 10*time.Millisecond)
	m.ObserveStoreOperation("sheets", "list", nil, time.Second)
	m.ObserveStoreOperation("sheets", "list", errors.New("boom"), time.Second)
	m.IncStoreRetry("sheets", "list", 429)
	m.IncScreenStatus("parcial")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("prisma-led", "POST", "/api/v1/availability", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOperationsTotal.WithLabelValues("prisma-led", "sheets", "list", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOperationsTotal.WithLabelValues("prisma-led", "sheets", "list", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeRetriesTotal.WithLabelValues("prisma-led", "sheets", "list", "429")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.screenStatusTotal.WithLabelValues("prisma-led", "parcial")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
		m.ObserveStoreOperation("sheets", "list", nil, time.Millisecond)
		m.IncStoreRetry("sheets", "list", 503)
		m.ObserveDBQuery("query", time.Millisecond)
		m.SetDBConnections(1, 1, 0)
		m.IncScreenStatus("disponible")
		m.IncNotification("smtp", nil)
	})
}
