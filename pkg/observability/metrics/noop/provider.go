/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"time"

	"github.com/trustbloc/siop-validator/pkg/observability/metrics"
)

// NoMetrics provides default no operation implementation for the NoMetrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

func (n *NoMetrics) ValidationTime(_ time.Duration)         {}
func (n *NoMetrics) ValidationFailure(_, _ string)          {}
func (n *NoMetrics) ValidatedTokens(_ int)                  {}
func (n *NoMetrics) DIDResolutionTime(_ time.Duration)      {}
func (n *NoMetrics) ConfigurationFetchTime(_ time.Duration) {}
