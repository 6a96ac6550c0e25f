/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package validator

import "github.com/trustbloc/siop-validator/pkg/restapi/resterr/validationerr"

const (
	ErrWrongTokenType   validationerr.ErrorCode = "VTOR01"
	ErrNoTokenValidator validationerr.ErrorCode = "VTOR02"
	ErrUnsupportedKind  validationerr.ErrorCode = "VTOR03"
	ErrClaimToken       validationerr.ErrorCode = "VTOR04"
	ErrTooManyTokens    validationerr.ErrorCode = "VTOR05"
)
