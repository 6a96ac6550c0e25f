/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package validation

import (
	"net/http"

	"github.com/trustbloc/siop-validator/pkg/doc/claimtoken"
	"github.com/trustbloc/siop-validator/pkg/doc/keysuite"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr/validationerr"
)

// Response carries the outcome of a validation step chain. Once Result is false, Code and
// DetailedError are set and no further step runs.
type Response struct {
	Result           bool                              `json:"result"`
	Status           int                               `json:"status"`
	Code             string                            `json:"code,omitempty"`
	DetailedError    string                            `json:"detailedError,omitempty"`
	PayloadObject    map[string]interface{}            `json:"payloadObject,omitempty"`
	TokensToValidate map[string]*claimtoken.ClaimToken `json:"tokensToValidate,omitempty"`
	ValidationResult *Result                           `json:"validationResult,omitempty"`

	DID        string                    `json:"did,omitempty"`
	DIDKid     string                    `json:"-"`
	SigningKey *keysuite.PublicKeyRecord `json:"-"`
	TokenID    string                    `json:"tokenId,omitempty"`
	Issuer     string                    `json:"issuer,omitempty"`
	Expiration int64                     `json:"expiration,omitempty"`

	// ExpectedIssuer is the issuer published by the configuration an id token key was fetched from.
	ExpectedIssuer string `json:"-"`

	err *validationerr.Error
}

// Result holds the validated tokens of a successful run, keyed by their discovery category.
type Result struct {
	DID                     string                            `json:"did,omitempty"`
	SiopJti                 string                            `json:"siopJti,omitempty"`
	SiopContractID          string                            `json:"siopContractId,omitempty"`
	Siop                    *claimtoken.ClaimToken            `json:"siop,omitempty"`
	IDTokens                map[string]*claimtoken.ClaimToken `json:"idTokens,omitempty"`
	SelfIssued              *claimtoken.ClaimToken            `json:"selfIssued,omitempty"`
	VerifiablePresentations map[string]*claimtoken.ClaimToken `json:"verifiablePresentations,omitempty"`
	VerifiableCredentials   map[string]*claimtoken.ClaimToken `json:"verifiableCredentials,omitempty"`
}

// Success returns a passing response.
func Success() Response {
	return Response{Result: true, Status: http.StatusOK}
}

// ForToken returns a passing response seeded with the decoded payload of token.
func ForToken(token *claimtoken.ClaimToken) Response {
	resp := Success()
	resp.PayloadObject = token.DecodedToken

	return resp
}

// Fail returns a failed copy of r. Errors without a validation code are reported as
// internal failures.
func (r Response) Fail(err error) Response {
	return r.FailWith(err, ErrInternal, http.StatusInternalServerError)
}

// FailWith returns a failed copy of r, using fallback and fallbackStatus for errors without a
// validation code. The error message is kept verbatim.
func (r Response) FailWith(err error, fallback validationerr.ErrorCode, fallbackStatus int) Response {
	e := validationerr.As(err, fallback, fallbackStatus)

	r.Result = false
	r.Status = e.StatusCode()
	r.Code = e.Code()
	r.DetailedError = e.Message()
	r.TokensToValidate = nil
	r.ValidationResult = nil
	r.err = e

	return r
}

// Err returns the validation error of a failed response.
func (r Response) Err() error {
	if r.err == nil {
		return nil
	}

	return r.err
}

// Step is a single stage of a validator's step chain.
type Step func(resp Response) Response

// Run applies steps in order and stops at the first failure.
func Run(resp Response, steps ...Step) Response {
	for _, step := range steps {
		if !resp.Result {
			return resp
		}

		resp = step(resp)
	}

	return resp
}
