package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.CRUD("branch", "create", nil)
	m.CRUD("branch", "create", errors.New("boom"))
	m.CRUD("branch", "create", nil)
	m.Geocode("miss")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.crudOperations.WithLabelValues("branch", "create", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.crudOperations.WithLabelValues("branch", "create", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.geocodeLookups.WithLabelValues("miss")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.CRUD("branch", "delete", nil)
		m.Geocode("hit")
		m.Chart("loan-status", nil)
		m.ObserveHTTP("/health", "GET", "200", 0.01)
	})
}
