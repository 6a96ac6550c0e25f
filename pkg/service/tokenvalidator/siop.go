/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tokenvalidator

import (
	"context"
	"fmt"
	"net/http"

	"github.com/trustbloc/siop-validator/internal/logfields"
	"github.com/trustbloc/siop-validator/pkg/doc/claimtoken"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr"
	"github.com/trustbloc/siop-validator/pkg/service/validation"
)

// SiopValidator validates a SIOP signed by its DID and expands the tokens declared in its attestations.
type SiopValidator struct {
	kind     claimtoken.TokenKind
	opts     *validation.Options
	expected validation.ExpectedSiop
}

// NewSiopValidator returns a validator for SIOP envelopes.
func NewSiopValidator(opts *validation.Options, expected validation.ExpectedSiop) *SiopValidator {
	return &SiopValidator{kind: claimtoken.Siop, opts: opts, expected: expected}
}

// NewSiopPresentationAttestationValidator returns a validator for SIOP presentation attestations,
// checked the same way as SIOP envelopes.
func NewSiopPresentationAttestationValidator(opts *validation.Options,
	expected validation.ExpectedSiop) *SiopValidator {
	return &SiopValidator{kind: claimtoken.SiopPresentationAttestation, opts: opts, expected: expected}
}

func (v *SiopValidator) IsType() claimtoken.TokenKind {
	return v.kind
}

func (v *SiopValidator) Validate(ctx context.Context, queue *validation.Queue, item *validation.QueueItem,
	_ string) validation.Response {
	token, resp := begin(item, v.kind)
	if !resp.Result {
		return resp
	}

	did := token.Claim("did").String()
	if did == "" {
		did = token.Subject()
	}

	resp = didSigned(ctx, v.opts, resp, token, did, v.expected.DriftInSec)

	resp = validation.Run(resp,
		func(r validation.Response) validation.Response {
			return v.checkDID(r, token)
		},
		func(r validation.Response) validation.Response {
			return v.opts.Scope.CheckScopeValidityOnSiopToken(r, v.expected)
		},
	)
	if !resp.Result {
		return resp
	}

	resp.TokenID = token.Claim("jti").String()

	resp, err := v.GetTokens(resp, queue)
	if err != nil {
		return resp.FailWith(err, ErrSiopAttestations, http.StatusBadRequest)
	}

	return resp
}

// GetTokens enqueues the self-issued claims, id tokens, presentations and credentials declared
// in the attestations claim.
func (v *SiopValidator) GetTokens(resp validation.Response, queue *validation.Queue) (validation.Response, error) {
	raw, ok := resp.PayloadObject["attestations"]
	if !ok {
		return resp, nil
	}

	attestations, ok := raw.(map[string]interface{})
	if !ok {
		return resp, newError(ErrSiopAttestations, http.StatusBadRequest, resterr.SiopValidatorComponent,
			fmt.Errorf("The attestations claim of the %s must be an object", v.kind)) //nolint:stylecheck
	}

	found, err := claimtoken.FromAttestations(attestations)
	if err != nil {
		return resp, err
	}

	if err = v.checkSafeguards(found); err != nil {
		return resp, err
	}

	for _, a := range found {
		logger.Debug("attestation found in siop", logfields.WithTokenKind(a.Token.Kind.String()),
			logfields.WithCategory(a.Category))

		resp = record(resp, queue, a.Category, a.Token)
	}

	return resp, nil
}

func (v *SiopValidator) checkDID(resp validation.Response, token *claimtoken.ClaimToken) validation.Response {
	did := token.Claim("did").String()

	if did != "" && did != resp.DID {
		return resp.Fail(newError(ErrSiopDIDMismatch, http.StatusForbidden, resterr.SiopValidatorComponent,
			fmt.Errorf("The kid '%s' does not belong to the DID '%s' of the %s", resp.DIDKid, did, v.kind))) //nolint:stylecheck
	}

	return resp
}

func (v *SiopValidator) checkSafeguards(found []claimtoken.Attestation) error {
	safeguards := v.opts.Safeguards

	var presentations, idTokens int

	for _, a := range found {
		switch a.Token.Kind { //nolint:exhaustive
		case claimtoken.VerifiablePresentation:
			presentations++

			if len(a.Token.RawToken) > safeguards.MaxSizeOfVPTokensInSiop {
				return newError(ErrSiopVPSize, http.StatusBadRequest, resterr.SiopValidatorComponent,
					fmt.Errorf("The verifiable presentation '%s' exceeds the maximum size of %d", //nolint:stylecheck
						a.Category, safeguards.MaxSizeOfVPTokensInSiop))
			}
		case claimtoken.IDToken:
			idTokens++

			if len(a.Token.RawToken) > safeguards.MaxSizeOfIDToken {
				return newError(ErrSiopIDTokenSize, http.StatusBadRequest, resterr.SiopValidatorComponent,
					fmt.Errorf("The id token '%s' exceeds the maximum size of %d", //nolint:stylecheck
						a.Category, safeguards.MaxSizeOfIDToken))
			}
		}
	}

	if presentations > safeguards.MaxNumberOfVPTokensInSiop {
		return newError(ErrSiopTooManyVP, http.StatusBadRequest, resterr.SiopValidatorComponent,
			fmt.Errorf("The %s contains %d verifiable presentations, the maximum is %d", //nolint:stylecheck
				v.kind, presentations, safeguards.MaxNumberOfVPTokensInSiop))
	}

	if idTokens > safeguards.MaxNumberOfIDTokensInSiop {
		return newError(ErrSiopTooManyIDTokens, http.StatusBadRequest, resterr.SiopValidatorComponent,
			fmt.Errorf("The %s contains %d id tokens, the maximum is %d", //nolint:stylecheck
				v.kind, idTokens, safeguards.MaxNumberOfIDTokensInSiop))
	}

	return nil
}
