package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollectorRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.ObserveCall("GetMovie", "ok", 10*time.Millisecond)
	c.ObserveRequest("GET", "ok", 5*time.Millisecond)
	c.InFlight.Set(1)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["tmdb_facade_calls_total"])
	assert.True(t, names["tmdb_facade_calls_in_flight"])
	assert.True(t, names["tmdb_http_requests_total"])
	assert.True(t, names["tmdb_http_request_duration_seconds"])
}

func TestObserveCall(t *testing.T) {
	c := NewCollector(nil)

	c.ObserveCall("SearchMovie", "ok", time.Millisecond)
	c.ObserveCall("SearchMovie", "ok", time.Millisecond)
	c.ObserveCall("SearchMovie", "error", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Calls.WithLabelValues("SearchMovie", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Calls.WithLabelValues("SearchMovie", "error")))
}

func TestObserveRequest(t *testing.T) {
	c := NewCollector(nil)

	c.ObserveRequest("POST", "client_error", time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.Requests.WithLabelValues("POST", "client_error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.Requests.WithLabelValues("POST", "ok")))
}

func TestTwoCollectorsSeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewCollector(prometheus.NewRegistry())
		NewCollector(prometheus.NewRegistry())
	})
}
