/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/siop-validator/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

type promProvider struct {
	httpServer *http.Server
}

// NewPrometheusProvider creates new instance of Prometheus Metrics Provider. When httpServer is nil
// the metrics are expected to be served by the caller, e.g. through Handler.
func NewPrometheusProvider(httpServer *http.Server) metrics.Provider {
	return &promProvider{httpServer: httpServer}
}

// Create creates/initializes the prometheus metrics provider.
func (pp *promProvider) Create() error {
	if pp.httpServer == nil {
		return nil
	}

	go func() {
		if err := pp.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics HTTP server stopped", log.WithError(err))
		}
	}()

	return nil
}

// Metrics returns supported metrics.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// Destroy destroys the prometheus metrics provider.
func (pp *promProvider) Destroy() error {
	if pp.httpServer != nil {
		return pp.httpServer.Shutdown(context.Background())
	}

	return nil
}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics for the SIOP validator.
type PromMetrics struct {
	validateTime    prometheus.Histogram
	failures        *prometheus.CounterVec
	validatedTokens prometheus.Gauge
	didResolveTime  prometheus.Histogram
	configFetchTime prometheus.Histogram
}

// NewMetrics creates instance of prometheus metrics.
func NewMetrics() metrics.Metrics {
	pm := &PromMetrics{
		validateTime:    newValidateTime(),
		failures:        newFailures(),
		validatedTokens: newValidatedTokens(),
		didResolveTime:  newDIDResolveTime(),
		configFetchTime: newConfigFetchTime(),
	}

	registerMetrics(pm)

	return pm
}

// ValidationTime records the time it took to validate a top-level token.
func (pm *PromMetrics) ValidationTime(value time.Duration) {
	pm.validateTime.Observe(value.Seconds())

	logger.Debug("validate time", log.WithDuration(value))
}

// ValidationFailure counts a failed validation by token kind and error code.
func (pm *PromMetrics) ValidationFailure(kind, code string) {
	pm.failures.With(prometheus.Labels{
		metrics.ValidatorTokenKindLabel: kind,
		metrics.ValidatorErrorCodeLabel: code,
	}).Inc()
}

// ValidatedTokens records the number of tokens validated for the last top-level token.
func (pm *PromMetrics) ValidatedTokens(count int) {
	pm.validatedTokens.Set(float64(count))
}

// DIDResolutionTime records the time it took to resolve a DID.
func (pm *PromMetrics) DIDResolutionTime(value time.Duration) {
	pm.didResolveTime.Observe(value.Seconds())

	logger.Debug("DID resolution time", log.WithDuration(value))
}

// ConfigurationFetchTime records the time it took to fetch an OIDC configuration.
func (pm *PromMetrics) ConfigurationFetchTime(value time.Duration) {
	pm.configFetchTime.Observe(value.Seconds())

	logger.Debug("configuration fetch time", log.WithDuration(value))
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.validateTime, pm.failures, pm.validatedTokens, pm.didResolveTime, pm.configFetchTime,
	)
}

func newCounterVec(subsystem, name, help string, labelNames ...string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labelNames)
}

func newGauge(subsystem, name, help string, labels prometheus.Labels) prometheus.Gauge {
	return prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newValidateTime() prometheus.Histogram {
	return newHistogram(
		metrics.Validator, metrics.ValidatorValidateMetric,
		"The time (in seconds) it takes to validate a top-level token with all its nested tokens.",
		nil,
	)
}

func newFailures() *prometheus.CounterVec {
	return newCounterVec(
		metrics.Validator, metrics.ValidatorFailuresMetric,
		"The number of failed validations by token kind and error code.",
		metrics.ValidatorTokenKindLabel, metrics.ValidatorErrorCodeLabel,
	)
}

func newValidatedTokens() prometheus.Gauge {
	return newGauge(
		metrics.Validator, metrics.ValidatorTokensMetric,
		"The number of tokens validated for the last top-level token.",
		nil,
	)
}

func newDIDResolveTime() prometheus.Histogram {
	return newHistogram(
		metrics.Collaborator, metrics.CollaboratorDIDResolveMetric,
		"The time (in seconds) it takes to resolve a DID document.",
		nil,
	)
}

func newConfigFetchTime() prometheus.Histogram {
	return newHistogram(
		metrics.Collaborator, metrics.CollaboratorConfigFetchMetric,
		"The time (in seconds) it takes to fetch an OIDC configuration.",
		nil,
	)
}
