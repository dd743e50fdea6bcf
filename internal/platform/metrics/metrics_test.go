// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/catalog/internal/platform/metrics"
)

func TestObserveHTTPRequest(t *testing.T) {
	counter := metrics.HTTPRequestsTotal.WithLabelValues("GET", "/metrics-test", "200")
	before := testutil.ToFloat64(counter)

	metrics.ObserveHTTPRequest("GET", "/metrics-test", 200, 15*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.GreaterOrEqual(t, testutil.CollectAndCount(metrics.HTTPRequestDuration, "catalog_http_request_duration_seconds"), 1)
}
