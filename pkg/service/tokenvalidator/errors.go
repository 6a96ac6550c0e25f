/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tokenvalidator

import "github.com/trustbloc/siop-validator/pkg/restapi/resterr/validationerr"

const (
	ErrSelfIssuedNotImplemented validationerr.ErrorCode = "SITV01"

	ErrIDTokenNotImplemented validationerr.ErrorCode = "IDTV01"
	ErrIDTokenNotConfigured  validationerr.ErrorCode = "IDTV02"

	ErrVCNotImplemented  validationerr.ErrorCode = "VCTV01"
	ErrVCNoStatusChecker validationerr.ErrorCode = "VCTV02"
	ErrVCStatusCheck     validationerr.ErrorCode = "VCTV03"
	ErrVCRevoked         validationerr.ErrorCode = "VCTV04"
	ErrVCSignerNotIssuer validationerr.ErrorCode = "VCTV05"

	ErrVPNoCredential        validationerr.ErrorCode = "VPTV01"
	ErrVPTooManyCredentials  validationerr.ErrorCode = "VPTV02"
	ErrVPCredentialSize      validationerr.ErrorCode = "VPTV03"
	ErrVPMalformedCredential validationerr.ErrorCode = "VPTV04"
	ErrVPSignerNotIssuer     validationerr.ErrorCode = "VPTV05"

	ErrSiopAttestations    validationerr.ErrorCode = "SPTV01"
	ErrSiopTooManyVP       validationerr.ErrorCode = "SPTV02"
	ErrSiopVPSize          validationerr.ErrorCode = "SPTV03"
	ErrSiopTooManyIDTokens validationerr.ErrorCode = "SPTV04"
	ErrSiopIDTokenSize     validationerr.ErrorCode = "SPTV05"
	ErrSiopDIDMismatch     validationerr.ErrorCode = "SPTV06"
)
