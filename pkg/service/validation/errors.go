/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package validation

import (
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr/validationerr"
)

// Shared validation helper codes.
const (
	ErrInternal               validationerr.ErrorCode = "VAHE01"
	ErrMissingKid             validationerr.ErrorCode = "VAHE02"
	ErrMalformedKid           validationerr.ErrorCode = "VAHE03"
	ErrFetchConfiguration     validationerr.ErrorCode = "VAHE04"
	ErrNoResolver             validationerr.ErrorCode = "VAHE05"
	ErrResolveDID             validationerr.ErrorCode = "VAHE06"
	ErrKeyNotInDocument       validationerr.ErrorCode = "VAHE07"
	ErrNoSigningKey           validationerr.ErrorCode = "VAHE08"
	ErrInvalidSignature       validationerr.ErrorCode = "VAHE09"
	ErrVerifySignature        validationerr.ErrorCode = "VAHE10"
	ErrUnsignedToken          validationerr.ErrorCode = "VAHE11"
	ErrNoJWKSURI              validationerr.ErrorCode = "VAHE12"
	ErrFetchJWKS              validationerr.ErrorCode = "VAHE13"
	ErrKeyNotInJWKS           validationerr.ErrorCode = "VAHE14"
	ErrExpired                validationerr.ErrorCode = "VAHE15"
	ErrNotValidYet            validationerr.ErrorCode = "VAHE16"
	ErrIssuedInTheFuture      validationerr.ErrorCode = "VAHE17"
	ErrMalformedTimeClaims    validationerr.ErrorCode = "VAHE18"
	ErrNoConfigurationFetcher validationerr.ErrorCode = "VAHE19"
)

// Scope check codes.
const (
	ErrSiopAudienceNotConfigured validationerr.ErrorCode = "SPVA01"
	ErrSiopAudience              validationerr.ErrorCode = "SPVA02"

	ErrIDTokenAudience validationerr.ErrorCode = "IDVA01"
	ErrIDTokenIssuer   validationerr.ErrorCode = "IDVA02"

	ErrVPAudienceNotConfigured validationerr.ErrorCode = "VPVA01"
	ErrVPAudience              validationerr.ErrorCode = "VPVA02"
	ErrVPHolder                validationerr.ErrorCode = "VPVA03"

	ErrVCContractIssuersNotConfigured validationerr.ErrorCode = "VCVA01"
	ErrVCIssuerNotTrusted             validationerr.ErrorCode = "VCVA02"
	ErrVCContractIssuersMissing       validationerr.ErrorCode = "VCVA03"
	ErrVCSubject                      validationerr.ErrorCode = "VCVA04"
)

func newError(code validationerr.ErrorCode, status int, err error) *validationerr.Error {
	return validationerr.New(code, status, err).WithComponent(resterr.ValidationHelperComponent)
}
