/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package validation

const (
	defaultMaxNumberOfTokens         = 10
	defaultMaxNumberOfIDTokens       = 5
	defaultMaxSizeOfToken            = 16 * 1024 * 1024
	defaultMaxNumberOfTokensInOneRun = 100
)

// Safeguards bound the number and size of the tokens a single validation run accepts.
type Safeguards struct {
	MaxNumberOfVPTokensInSiop         int `json:"maxNumberOfVPTokensInSiop"`
	MaxSizeOfVPTokensInSiop           int `json:"maxSizeOfVPTokensInSiop"`
	MaxNumberOfVCTokensInPresentation int `json:"maxNumberOfVCTokensInPresentation"`
	MaxSizeOfVCTokensInPresentation   int `json:"maxSizeOfVCTokensInPresentation"`
	MaxNumberOfIDTokensInSiop         int `json:"maxNumberOfIdTokensInSiop"`
	MaxSizeOfIDToken                  int `json:"maxSizeOfIdToken"`
	MaxNumberOfTokens                 int `json:"maxNumberOfTokens"`
}

// DefaultSafeguards returns the default limits.
func DefaultSafeguards() Safeguards {
	return Safeguards{
		MaxNumberOfVPTokensInSiop:         defaultMaxNumberOfTokens,
		MaxSizeOfVPTokensInSiop:           defaultMaxSizeOfToken,
		MaxNumberOfVCTokensInPresentation: defaultMaxNumberOfTokens,
		MaxSizeOfVCTokensInPresentation:   defaultMaxSizeOfToken,
		MaxNumberOfIDTokensInSiop:         defaultMaxNumberOfIDTokens,
		MaxSizeOfIDToken:                  defaultMaxSizeOfToken,
		MaxNumberOfTokens:                 defaultMaxNumberOfTokensInOneRun,
	}
}
