package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveAdmission(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.ObserveAdmission("admitted", 3)
	m.ObserveAdmission("conflict", 0)
	m.ObserveAdmission("admitted", 1)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingAdmissions.WithLabelValues("test", "admitted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingAdmissions.WithLabelValues("test", "conflict")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.occurrencesCreated.WithLabelValues("test")))
}

func TestObserveHTTPAndRetries(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.ObserveHTTP("POST", "/api/v1/bookings", 201, 15*time.Millisecond)
	m.IncTxRetry()
	m.IncTxRetry()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("test", "POST", "/api/v1/bookings", "201")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.txRetries.WithLabelValues("test")))
}
