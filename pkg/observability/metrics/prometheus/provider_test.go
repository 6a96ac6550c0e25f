/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestPromProvider(t *testing.T) {
	provider := NewPrometheusProvider(nil)
	require.NotNil(t, provider)

	err := provider.Create()
	require.NoError(t, err)

	m := provider.Metrics()
	require.NotNil(t, m)

	err = provider.Destroy()
	require.NoError(t, err)
}

func TestMetrics(t *testing.T) {
	m := GetMetrics()
	require.NotNil(t, m)
	require.True(t, m == GetMetrics())

	t.Run("Validator activity", func(t *testing.T) {
		require.NotPanics(t, func() { m.ValidationTime(time.Second) })
		require.NotPanics(t, func() { m.ValidationFailure("siop", "VTOR02") })
		require.NotPanics(t, func() { m.ValidatedTokens(4) })
		require.NotPanics(t, func() { m.DIDResolutionTime(time.Second) })
		require.NotPanics(t, func() { m.ConfigurationFetchTime(time.Second) })
	})
}

func TestNewGauge(t *testing.T) {
	require.NotNil(t, newGauge("validator", "metric_name", "Some help", nil))
}

func TestNewCounterVec(t *testing.T) {
	require.NotNil(t, newCounterVec("validator", "metric_name", "Some help", "kind"))
}

func TestNewHistogram(t *testing.T) {
	labels := prometheus.Labels{"type": "create"}

	require.NotNil(t, newHistogram("validator", "metric_name", "Some help", labels))
}
