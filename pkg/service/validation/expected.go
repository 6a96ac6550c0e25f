/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package validation

import "time"

// DefaultDriftInSec is the clock skew tolerated on exp, nbf and iat when a record leaves DriftInSec unset.
const DefaultDriftInSec = 300

// ExpectedSiop holds the values a SIOP envelope is checked against.
type ExpectedSiop struct {
	Audience   string `json:"audience"`
	DriftInSec int    `json:"driftInSec,omitempty"`
}

// ExpectedIDToken holds the trusted configuration endpoints of id token issuers.
type ExpectedIDToken struct {
	Audience      string   `json:"audience,omitempty"`
	Configuration []string `json:"configuration"`
	DriftInSec    int      `json:"driftInSec,omitempty"`
}

// ExpectedVerifiablePresentation holds the audience used when a presentation is validated outside
// of a SIOP envelope.
type ExpectedVerifiablePresentation struct {
	DIDAudience string `json:"didAudience,omitempty"`
	DriftInSec  int    `json:"driftInSec,omitempty"`
}

// ExpectedVerifiableCredential maps credential types to the DIDs trusted to issue them.
type ExpectedVerifiableCredential struct {
	ContractIssuers map[string][]string `json:"contractIssuers"`
	DriftInSec      int                 `json:"driftInSec,omitempty"`
}

// Drift converts a DriftInSec value to a duration, applying the default when unset.
func Drift(driftInSec int) time.Duration {
	if driftInSec <= 0 {
		driftInSec = DefaultDriftInSec
	}

	return time.Duration(driftInSec) * time.Second
}
