/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tokenvalidator

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/trustbloc/siop-validator/internal/logfields"
	"github.com/trustbloc/siop-validator/pkg/doc/claimtoken"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr"
	"github.com/trustbloc/siop-validator/pkg/service/validation"
)

// VerifiablePresentationValidator validates JWT presentations signed by the SIOP holder and
// expands the credentials they carry.
type VerifiablePresentationValidator struct {
	opts     *validation.Options
	expected validation.ExpectedVerifiablePresentation
}

// NewVerifiablePresentationValidator returns a presentation validator.
func NewVerifiablePresentationValidator(opts *validation.Options,
	expected validation.ExpectedVerifiablePresentation) *VerifiablePresentationValidator {
	return &VerifiablePresentationValidator{opts: opts, expected: expected}
}

func (v *VerifiablePresentationValidator) IsType() claimtoken.TokenKind {
	return claimtoken.VerifiablePresentation
}

func (v *VerifiablePresentationValidator) Validate(ctx context.Context, queue *validation.Queue,
	item *validation.QueueItem, siopDID string) validation.Response {
	token, resp := begin(item, claimtoken.VerifiablePresentation)
	if !resp.Result {
		return resp
	}

	resp = didSigned(ctx, v.opts, resp, token, token.Issuer(), v.expected.DriftInSec)

	resp = validation.Run(resp,
		func(r validation.Response) validation.Response {
			return signedByIssuer(r, token, ErrVPSignerNotIssuer, resterr.VPValidatorComponent)
		},
		func(r validation.Response) validation.Response {
			return v.opts.Scope.CheckScopeValidityOnVpToken(r, v.expected, siopDID)
		},
	)
	if !resp.Result {
		return resp
	}

	resp, err := v.GetTokens(resp, queue)
	if err != nil {
		return resp.FailWith(err, ErrVPMalformedCredential, http.StatusBadRequest)
	}

	return resp
}

// GetTokens enqueues each credential of vp.verifiableCredential under its credential type.
// A presentation without credentials fails.
func (v *VerifiablePresentationValidator) GetTokens(resp validation.Response,
	queue *validation.Queue) (validation.Response, error) {
	vp, _ := resp.PayloadObject["vp"].(map[string]interface{})

	raw, ok := vp["verifiableCredential"]
	if !ok || raw == nil {
		return resp.Fail(newError(ErrVPNoCredential, http.StatusForbidden, resterr.VPValidatorComponent,
			errors.New("No verifiable credential"))), nil //nolint:stylecheck
	}

	credentials, ok := raw.([]interface{})
	if !ok {
		credentials = []interface{}{raw}
	}

	if len(credentials) == 0 {
		return resp.Fail(newError(ErrVPNoCredential, http.StatusForbidden, resterr.VPValidatorComponent,
			errors.New("No verifiable credential"))), nil //nolint:stylecheck
	}

	safeguards := v.opts.Safeguards

	if len(credentials) > safeguards.MaxNumberOfVCTokensInPresentation {
		return resp, newError(ErrVPTooManyCredentials, http.StatusBadRequest, resterr.VPValidatorComponent,
			fmt.Errorf("The verifiable presentation contains %d verifiable credentials, the maximum is %d", //nolint:stylecheck
				len(credentials), safeguards.MaxNumberOfVCTokensInPresentation))
	}

	for i, c := range credentials {
		jwt, ok := c.(string)
		if !ok {
			return resp, newError(ErrVPMalformedCredential, http.StatusBadRequest, resterr.VPValidatorComponent,
				fmt.Errorf("The verifiable credential at index %d is not a compact token", i)) //nolint:stylecheck
		}

		if len(jwt) > safeguards.MaxSizeOfVCTokensInPresentation {
			return resp, newError(ErrVPCredentialSize, http.StatusBadRequest, resterr.VPValidatorComponent,
				fmt.Errorf("The verifiable credential at index %d exceeds the maximum size of %d", //nolint:stylecheck
					i, safeguards.MaxSizeOfVCTokensInPresentation))
		}

		token, err := claimtoken.CreateAs(claimtoken.VerifiableCredential, jwt, "")
		if err != nil {
			return resp, err
		}

		category := claimtoken.CredentialType(token.DecodedToken)

		logger.Debug("verifiable credential found in presentation", logfields.WithCategory(category))

		resp = record(resp, queue, category, token)
	}

	return resp, nil
}
