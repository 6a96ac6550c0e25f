/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination mocks/api_mocks.go -self_package mocks -package mocks -source=api.go -mock_names TokenValidator=MockTokenValidator

package tokenvalidator

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/siop-validator/pkg/doc/claimtoken"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr/validationerr"
	"github.com/trustbloc/siop-validator/pkg/service/validation"
)

var logger = log.New("token-validator")

// TokenValidator validates one token kind.
type TokenValidator interface {
	// IsType returns the kind handled by the validator.
	IsType() claimtoken.TokenKind
	// Validate runs the step chain of the validator on item. siopDID is the DID of the enclosing
	// SIOP, empty when item is validated on its own. Containers enqueue their nested tokens on queue.
	Validate(ctx context.Context, queue *validation.Queue, item *validation.QueueItem, siopDID string) validation.Response
	// GetTokens enqueues the tokens nested in a validated payload and records them in TokensToValidate.
	GetTokens(resp validation.Response, queue *validation.Queue) (validation.Response, error)
}

func newError(code validationerr.ErrorCode, status int, component resterr.Component, err error) *validationerr.Error {
	return validationerr.New(code, status, err).WithComponent(component)
}

func notImplemented(code validationerr.ErrorCode, component resterr.Component) error {
	return newError(code, http.StatusInternalServerError, component, errors.New("Not implemented")) //nolint:stylecheck
}

// begin decodes the item token and seeds a response with its payload.
func begin(item *validation.QueueItem, kind claimtoken.TokenKind) (*claimtoken.ClaimToken, validation.Response) {
	resp := validation.Success()

	token, err := item.ClaimToken()
	if err != nil {
		return nil, resp.Fail(err)
	}

	if token.Kind != kind {
		return nil, resp.Fail(validationerr.New(validation.ErrInternal, http.StatusInternalServerError,
			fmt.Errorf("%s validator received a %s", kind, token.Kind)))
	}

	return token, validation.ForToken(token)
}

// didSigned verifies a token signed with a key of the DID document referenced by the token kid.
// Relative kids are resolved against did.
func didSigned(ctx context.Context, opts *validation.Options, resp validation.Response,
	token *claimtoken.ClaimToken, did string, driftInSec int) validation.Response {
	resp.DIDKid = validation.AbsoluteKid(did, token.KeyID())

	return validation.Run(resp,
		func(r validation.Response) validation.Response {
			return opts.Signature.ResolveDIDAndGetKeys(ctx, r)
		},
		func(r validation.Response) validation.Response {
			return opts.Signature.ValidateDIDSignature(ctx, r, token)
		},
		func(r validation.Response) validation.Response {
			return opts.Time.CheckTimeValidityOnToken(r, driftInSec)
		},
	)
}

// signedByIssuer fails resp unless the token was signed with a key of its iss DID.
func signedByIssuer(resp validation.Response, token *claimtoken.ClaimToken, code validationerr.ErrorCode,
	component resterr.Component) validation.Response {
	if issuer := token.Issuer(); issuer == "" || issuer != resp.DID {
		return resp.Fail(newError(code, http.StatusForbidden, component,
			fmt.Errorf("The %s is signed by '%s' but issued by '%s'", token.Kind, resp.DID, issuer))) //nolint:stylecheck
	}

	return resp
}

func record(resp validation.Response, queue *validation.Queue, category string, token *claimtoken.ClaimToken) validation.Response {
	if resp.TokensToValidate == nil {
		resp.TokensToValidate = map[string]*claimtoken.ClaimToken{}
	}

	resp.TokensToValidate[category] = token
	queue.Enqueue(category, token)

	return resp
}
