/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package validation

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/samber/lo"

	"github.com/trustbloc/siop-validator/pkg/doc/claimtoken"
)

// CheckScopeValidityOnSiopToken checks that the SIOP is addressed to the configured audience.
func (h *Helpers) CheckScopeValidityOnSiopToken(resp Response, expected ExpectedSiop) Response {
	if expected.Audience == "" {
		return resp.Fail(newError(ErrSiopAudienceNotConfigured, http.StatusForbidden,
			errors.New("Expected should have audience set for siop"))) //nolint:stylecheck
	}

	claims, err := registeredClaims(resp.PayloadObject)
	if err != nil {
		return resp.Fail(newError(ErrMalformedTimeClaims, http.StatusBadRequest, err))
	}

	if !claims.Audience.Contains(expected.Audience) {
		return resp.Fail(newError(ErrSiopAudience, http.StatusForbidden,
			fmt.Errorf("Wrong or missing aud property in siop. Expected '%s'", expected.Audience))) //nolint:stylecheck
	}

	return resp
}

// CheckScopeValidityOnIDToken checks the audience, when one is expected, and that the issuer
// matches the configuration the signing key was taken from.
func (h *Helpers) CheckScopeValidityOnIDToken(resp Response, expected ExpectedIDToken) Response {
	claims, err := registeredClaims(resp.PayloadObject)
	if err != nil {
		return resp.Fail(newError(ErrMalformedTimeClaims, http.StatusBadRequest, err))
	}

	if expected.Audience != "" && !claims.Audience.Contains(expected.Audience) {
		return resp.Fail(newError(ErrIDTokenAudience, http.StatusForbidden,
			fmt.Errorf("Wrong or missing aud property in idToken. Expected '%s'", expected.Audience))) //nolint:stylecheck
	}

	if resp.ExpectedIssuer != "" && claims.Issuer != resp.ExpectedIssuer {
		return resp.Fail(newError(ErrIDTokenIssuer, http.StatusForbidden,
			fmt.Errorf("Wrong or missing iss property in idToken. Expected '%s'", resp.ExpectedIssuer))) //nolint:stylecheck
	}

	resp.Issuer = claims.Issuer

	return resp
}

// CheckScopeValidityOnVpToken checks that the presentation is addressed to siopDID, or to
// expected.DIDAudience when validated outside of a SIOP, and that it is presented by siopDID.
func (h *Helpers) CheckScopeValidityOnVpToken(resp Response, expected ExpectedVerifiablePresentation,
	siopDID string) Response {
	audience := siopDID
	if audience == "" {
		audience = expected.DIDAudience
	}

	if audience == "" {
		return resp.Fail(newError(ErrVPAudienceNotConfigured, http.StatusForbidden,
			errors.New("Expected should have didAudience set for verifiablePresentation"))) //nolint:stylecheck
	}

	claims, err := registeredClaims(resp.PayloadObject)
	if err != nil {
		return resp.Fail(newError(ErrMalformedTimeClaims, http.StatusBadRequest, err))
	}

	if !claims.Audience.Contains(audience) {
		return resp.Fail(newError(ErrVPAudience, http.StatusForbidden,
			fmt.Errorf("Wrong or missing aud property in verifiablePresentation. Expected '%s'", audience))) //nolint:stylecheck
	}

	if siopDID != "" && resp.DID != siopDID {
		return resp.Fail(newError(ErrVPHolder, http.StatusForbidden,
			fmt.Errorf("The DID used for the SIOP '%s' is not equal to the DID used for the verifiable presentation '%s'", //nolint:stylecheck,lll
				siopDID, resp.DID)))
	}

	resp.Issuer = claims.Issuer

	return resp
}

// CheckScopeValidityOnVcToken checks the credential issuer against the DIDs trusted for the
// credential type and binds the credential subject to siopDID.
func (h *Helpers) CheckScopeValidityOnVcToken(resp Response, expected ExpectedVerifiableCredential,
	siopDID string) Response {
	if len(expected.ContractIssuers) == 0 {
		return resp.Fail(newError(ErrVCContractIssuersNotConfigured, http.StatusForbidden,
			errors.New("Expected should have contractIssuers set for verifiableCredential"))) //nolint:stylecheck
	}

	credentialType := claimtoken.CredentialType(resp.PayloadObject)

	issuers, ok := expected.ContractIssuers[credentialType]
	if !ok {
		return resp.Fail(newError(ErrVCContractIssuersMissing, http.StatusForbidden,
			fmt.Errorf("Expected should have contractIssuers set for verifiableCredential. Missing contractIssuers for '%s'.", //nolint:stylecheck,lll
				credentialType)))
	}

	claims, err := registeredClaims(resp.PayloadObject)
	if err != nil {
		return resp.Fail(newError(ErrMalformedTimeClaims, http.StatusBadRequest, err))
	}

	if !lo.Contains(issuers, claims.Issuer) {
		return resp.Fail(newError(ErrVCIssuerNotTrusted, http.StatusForbidden,
			fmt.Errorf("The verifiable credential with type '%s' is not from a trusted issuer '%s'", //nolint:stylecheck
				credentialType, claims.Issuer)))
	}

	if siopDID != "" && claims.Subject != siopDID {
		return resp.Fail(newError(ErrVCSubject, http.StatusForbidden,
			fmt.Errorf("Wrong or missing sub property in verifiableCredential. Expected '%s'", siopDID))) //nolint:stylecheck
	}

	resp.Issuer = claims.Issuer

	return resp
}
