/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tokenvalidator

import (
	"context"
	"errors"
	"net/http"

	"github.com/samber/lo"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/siop-validator/internal/logfields"
	"github.com/trustbloc/siop-validator/pkg/doc/claimtoken"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr"
	"github.com/trustbloc/siop-validator/pkg/service/validation"
)

// IDTokenValidator validates id tokens against the keys published by trusted OIDC configurations.
type IDTokenValidator struct {
	opts     *validation.Options
	expected validation.ExpectedIDToken
}

// NewIDTokenValidator returns an id token validator trusting expected.Configuration.
func NewIDTokenValidator(opts *validation.Options, expected validation.ExpectedIDToken) *IDTokenValidator {
	return &IDTokenValidator{opts: opts, expected: expected}
}

func (v *IDTokenValidator) IsType() claimtoken.TokenKind {
	return claimtoken.IDToken
}

// Validate verifies the signature with the key of the configuration the token was attested under
// when it is trusted, otherwise with each trusted configuration in turn until one succeeds.
func (v *IDTokenValidator) Validate(ctx context.Context, _ *validation.Queue, item *validation.QueueItem,
	_ string) validation.Response {
	token, resp := begin(item, claimtoken.IDToken)
	if !resp.Result {
		return resp
	}

	if len(v.expected.Configuration) == 0 {
		return resp.Fail(newError(ErrIDTokenNotConfigured, http.StatusForbidden, resterr.IDTokenValidatorComponent,
			errors.New("Expected should have configuration set for idToken"))) //nolint:stylecheck
	}

	signed := resp

	for _, configuration := range v.configurations(token) {
		signed = v.opts.Signature.FetchKeyAndValidateSignatureOnIDToken(ctx, resp, token, configuration)
		if signed.Result {
			break
		}

		logger.Debugc(ctx, "id token not verified with configuration", log.WithURL(configuration),
			logfields.WithErrorCode(signed.Code))
	}

	return validation.Run(signed,
		func(r validation.Response) validation.Response {
			return v.opts.Time.CheckTimeValidityOnToken(r, v.expected.DriftInSec)
		},
		func(r validation.Response) validation.Response {
			return v.opts.Scope.CheckScopeValidityOnIDToken(r, v.expected)
		},
	)
}

func (v *IDTokenValidator) GetTokens(resp validation.Response, _ *validation.Queue) (validation.Response, error) {
	return resp, notImplemented(ErrIDTokenNotImplemented, resterr.IDTokenValidatorComponent)
}

func (v *IDTokenValidator) configurations(token *claimtoken.ClaimToken) []string {
	if token.ID != "" && lo.Contains(v.expected.Configuration, token.ID) {
		return []string{token.ID}
	}

	return v.expected.Configuration
}
