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

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/siop-validator/internal/logfields"
	"github.com/trustbloc/siop-validator/pkg/doc/claimtoken"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr"
	"github.com/trustbloc/siop-validator/pkg/service/validation"
)

// VerifiableCredentialValidator validates JWT credentials issued by DIDs trusted for their type.
type VerifiableCredentialValidator struct {
	opts          *validation.Options
	expected      validation.ExpectedVerifiableCredential
	statusChecker validation.StatusChecker
	checkStatus   bool
}

// VCOpt configures the credential validator.
type VCOpt func(v *VerifiableCredentialValidator)

// WithStatusCheck enables the status check of credentials declaring a credentialStatus.
func WithStatusCheck(checker validation.StatusChecker) VCOpt {
	return func(v *VerifiableCredentialValidator) {
		v.checkStatus = true
		v.statusChecker = checker
	}
}

// NewVerifiableCredentialValidator returns a credential validator trusting expected.ContractIssuers.
func NewVerifiableCredentialValidator(opts *validation.Options, expected validation.ExpectedVerifiableCredential,
	vcOpts ...VCOpt) *VerifiableCredentialValidator {
	v := &VerifiableCredentialValidator{opts: opts, expected: expected}

	for _, opt := range vcOpts {
		opt(v)
	}

	return v
}

func (v *VerifiableCredentialValidator) IsType() claimtoken.TokenKind {
	return claimtoken.VerifiableCredential
}

func (v *VerifiableCredentialValidator) Validate(ctx context.Context, _ *validation.Queue,
	item *validation.QueueItem, siopDID string) validation.Response {
	token, resp := begin(item, claimtoken.VerifiableCredential)
	if !resp.Result {
		return resp
	}

	resp = didSigned(ctx, v.opts, resp, token, token.Issuer(), v.expected.DriftInSec)

	return validation.Run(resp,
		func(r validation.Response) validation.Response {
			return signedByIssuer(r, token, ErrVCSignerNotIssuer, resterr.VCValidatorComponent)
		},
		func(r validation.Response) validation.Response {
			return v.opts.Scope.CheckScopeValidityOnVcToken(r, v.expected, siopDID)
		},
		func(r validation.Response) validation.Response {
			return v.checkCredentialStatus(ctx, r, token, siopDID)
		},
	)
}

func (v *VerifiableCredentialValidator) GetTokens(resp validation.Response,
	_ *validation.Queue) (validation.Response, error) {
	return resp, notImplemented(ErrVCNotImplemented, resterr.VCValidatorComponent)
}

func (v *VerifiableCredentialValidator) checkCredentialStatus(ctx context.Context, resp validation.Response,
	token *claimtoken.ClaimToken, siopDID string) validation.Response {
	if !v.checkStatus || !token.Claim("vc.credentialStatus").Exists() {
		return resp
	}

	if v.statusChecker == nil {
		return resp.Fail(newError(ErrVCNoStatusChecker, http.StatusInternalServerError, resterr.VCValidatorComponent,
			errors.New("credential status check is enabled but no status checker is configured")))
	}

	valid, err := v.statusChecker.CheckStatus(ctx, token, siopDID)
	if err != nil {
		logger.Debugc(ctx, "credential status check failed", logfields.WithDID(token.Issuer()), log.WithError(err))

		return resp.FailWith(err, ErrVCStatusCheck, http.StatusForbidden)
	}

	if !valid {
		return resp.Fail(newError(ErrVCRevoked, http.StatusForbidden, resterr.VCValidatorComponent,
			fmt.Errorf("The status of the verifiable credential with type '%s' is not valid", //nolint:stylecheck
				claimtoken.CredentialType(token.DecodedToken))))
	}

	return resp
}
