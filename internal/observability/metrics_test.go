package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetricsWith_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetricsWith(reg)

	m.FetchRequests.WithLabelValues("success").Inc()
	m.RowsShaped.Add(10)
	m.ControllerState.WithLabelValues("loaded").Set(1)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "planets_fetch_requests_total")
	assert.Contains(t, names, "planets_rows_shaped_total")
	assert.Contains(t, names, "planets_controller_state")
	assert.InDelta(t, 10, testutil.ToFloat64(m.RowsShaped), 0)
}

func TestNewMetricsWith_TwoRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetricsWith(prometheus.NewRegistry())
		NewMetricsWith(prometheus.NewRegistry())
	})
}

func TestNewMetricsForTesting_Unregistered(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetricsForTesting()
		NewMetricsForTesting()
	})
}
