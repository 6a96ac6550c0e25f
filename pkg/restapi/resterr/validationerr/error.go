/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package validationerr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/trustbloc/siop-validator/pkg/restapi/resterr"
)

// ErrorCode is a short token of the form <family-prefix><2-digit-sequence>.
type ErrorCode string

// Error is a token validation failure.
type Error = resterr.RFCError[ErrorCode]

// New creates a validation error with the given code and HTTP status.
func New(code ErrorCode, status int, err error) *Error {
	return &Error{
		ErrorCode:  code,
		HTTPStatus: status,
		Err:        err,
	}
}

// Newf creates a validation error with a formatted message.
func Newf(code ErrorCode, status int, format string, args ...interface{}) *Error {
	return New(code, status, fmt.Errorf(format, args...))
}

// BadRequest creates a validation error for malformed input.
func BadRequest(code ErrorCode, err error) *Error {
	return New(code, http.StatusBadRequest, err)
}

// Forbidden creates a validation error for a trust or authorization rejection.
func Forbidden(code ErrorCode, err error) *Error {
	return New(code, http.StatusForbidden, err)
}

// As extracts a validation error from err. Errors of other types are reported as
// a failure with the fallback code.
func As(err error, fallback ErrorCode, fallbackStatus int) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return New(fallback, fallbackStatus, err)
}
