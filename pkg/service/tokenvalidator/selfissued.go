/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tokenvalidator

import (
	"context"

	"github.com/trustbloc/siop-validator/pkg/doc/claimtoken"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr"
	"github.com/trustbloc/siop-validator/pkg/service/validation"
)

// SelfIssuedValidator accepts the self-issued claims of a SIOP. The claims are covered by the
// signature of the enclosing SIOP.
type SelfIssuedValidator struct{}

// NewSelfIssuedValidator returns a validator for self-issued claims.
func NewSelfIssuedValidator() *SelfIssuedValidator {
	return &SelfIssuedValidator{}
}

func (v *SelfIssuedValidator) IsType() claimtoken.TokenKind {
	return claimtoken.SelfIssued
}

func (v *SelfIssuedValidator) Validate(_ context.Context, _ *validation.Queue, item *validation.QueueItem,
	_ string) validation.Response {
	_, resp := begin(item, claimtoken.SelfIssued)

	return resp
}

func (v *SelfIssuedValidator) GetTokens(resp validation.Response, _ *validation.Queue) (validation.Response, error) {
	return resp, notImplemented(ErrSelfIssuedNotImplemented, resterr.SelfIssuedValidatorComponent)
}
