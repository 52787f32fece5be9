package instrumentation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_Disabled(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Enabled: false})
	require.NoError(t, err)

	assert.False(t, p.Enabled())
	assert.NotNil(t, p.Metrics())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestDisabledMetricsAreNoOps(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Enabled: false})
	require.NoError(t, err)

	// Must not panic on the zero-value recorder.
	p.Metrics().RecordSourceFetch(context.Background(), ResultSuccess, 0.2)
	p.Metrics().RecordComputation(context.Background(), 12, 0.001)
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	m.RecordSourceFetch(context.Background(), ResultError, 1)
	m.RecordComputation(context.Background(), 0, 0)
}
