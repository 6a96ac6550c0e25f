/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-jose/go-jose/v3/jwt"
)

// CheckTimeValidityOnToken checks exp, nbf and iat with driftInSec of tolerated clock skew.
func (h *Helpers) CheckTimeValidityOnToken(resp Response, driftInSec int) Response {
	claims, err := registeredClaims(resp.PayloadObject)
	if err != nil {
		return resp.Fail(newError(ErrMalformedTimeClaims, http.StatusBadRequest, err))
	}

	now := h.now()

	err = claims.ValidateWithLeeway(jwt.Expected{Time: now}, Drift(driftInSec))

	switch {
	case errors.Is(err, jwt.ErrExpired):
		return resp.Fail(newError(ErrExpired, http.StatusForbidden,
			fmt.Errorf("The presented token is expired %d, now %d", claims.Expiry.Time().Unix(), now.Unix()))) //nolint:stylecheck
	case errors.Is(err, jwt.ErrNotValidYet):
		return resp.Fail(newError(ErrNotValidYet, http.StatusForbidden,
			fmt.Errorf("The presented token is not valid before %d, now %d", claims.NotBefore.Time().Unix(), now.Unix()))) //nolint:stylecheck,lll
	case errors.Is(err, jwt.ErrIssuedInTheFuture):
		return resp.Fail(newError(ErrIssuedInTheFuture, http.StatusForbidden,
			fmt.Errorf("The presented token is issued in the future %d, now %d", claims.IssuedAt.Time().Unix(), now.Unix()))) //nolint:stylecheck,lll
	case err != nil:
		return resp.Fail(newError(ErrMalformedTimeClaims, http.StatusBadRequest, err))
	}

	if claims.Expiry != nil {
		resp.Expiration = claims.Expiry.Time().Unix()
	}

	return resp
}

func registeredClaims(payload map[string]interface{}) (*jwt.Claims, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	var claims jwt.Claims

	if err = json.Unmarshal(b, &claims); err != nil {
		return nil, fmt.Errorf("the token has malformed registered claims: %w", err)
	}

	return &claims, nil
}
