/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "siop"

	// Validator orchestration.
	Validator               = "validator"
	ValidatorValidateMetric = "validate_seconds"
	ValidatorFailuresMetric = "failures_total"
	ValidatorTokensMetric   = "validated_tokens"
	ValidatorTokenKindLabel = "kind"
	ValidatorErrorCodeLabel = "code"

	// Collaborator calls.
	Collaborator                  = "collaborator"
	CollaboratorDIDResolveMetric  = "did_resolve_seconds"
	CollaboratorConfigFetchMetric = "configuration_fetch_seconds"
)

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance
	Create() error
	// Destroy destroys the metrics provider instance
	Destroy() error
	// Metrics providers metrics
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
type Metrics interface {
	ValidationTime(value time.Duration)
	ValidationFailure(kind, code string)
	ValidatedTokens(count int)
	DIDResolutionTime(value time.Duration)
	ConfigurationFetchTime(value time.Duration)
}
