/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/siop-validator/internal/logfields"
	"github.com/trustbloc/siop-validator/pkg/doc/claimtoken"
	"github.com/trustbloc/siop-validator/pkg/observability/metrics"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr/validationerr"
	"github.com/trustbloc/siop-validator/pkg/service/tokenvalidator"
	"github.com/trustbloc/siop-validator/pkg/service/validation"
)

var logger = log.New("siop-validator")

// Validator validates a SIOP or a single token together with every token nested in it.
// Validate may be called concurrently, each run owns its queue.
type Validator struct {
	validators map[claimtoken.TokenKind]tokenvalidator.TokenValidator
	safeguards validation.Safeguards
	metrics    metrics.Metrics
}

// Kinds returns the token kinds that have a validator, in lexical order.
func (v *Validator) Kinds() []claimtoken.TokenKind {
	kinds := make([]claimtoken.TokenKind, 0, len(v.validators))
	for k := range v.validators {
		kinds = append(kinds, k)
	}

	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	return kinds
}

// Validate validates token, a compact SIOP or a *claimtoken.ClaimToken, and every token it
// declares. The first failing token fails the whole run.
func (v *Validator) Validate(ctx context.Context, token interface{}) *validation.Response {
	start := time.Now()

	defer func() {
		v.metrics.ValidationTime(time.Since(start))
	}()

	queue := validation.NewQueue()

	switch t := token.(type) {
	case string:
		queue.EnqueueRaw(claimtoken.Siop.String(), t)
	case *claimtoken.ClaimToken:
		if t == nil {
			return v.wrongTokenType(ctx, token)
		}

		queue.Enqueue(t.Kind.String(), t)
	default:
		return v.wrongTokenType(ctx, token)
	}

	result := &validation.Result{}
	siopDID := ""
	processed := 0

	for {
		item, ok := queue.DequeueNext()
		if !ok {
			break
		}

		processed++

		if processed > v.safeguards.MaxNumberOfTokens {
			return v.fail(ctx, nil, validation.Success().Fail(newError(ErrTooManyTokens, http.StatusBadRequest,
				fmt.Errorf("The token contains more than %d tokens", v.safeguards.MaxNumberOfTokens)))) //nolint:stylecheck
		}

		resp, ok := v.validateItem(ctx, queue, item, siopDID)
		if !ok {
			return v.fail(ctx, item.Token, resp)
		}

		kind := item.Token.Kind

		if processed == 1 {
			result.DID = resp.DID
		}

		// The holder of a stand-alone presentation is its signer.
		if kind == claimtoken.Siop || kind == claimtoken.SiopPresentationAttestation ||
			(processed == 1 && kind == claimtoken.VerifiablePresentation) {
			siopDID = resp.DID
		}

		collect(result, item, resp)

		logger.Debugc(ctx, "token validated", logfields.WithTokenKind(kind.String()),
			logfields.WithCategory(item.Category), logfields.WithQueueLength(queue.Len()))
	}

	v.metrics.ValidatedTokens(processed)

	resp := validation.Success()
	resp.DID = result.DID
	resp.TokenID = result.SiopJti
	resp.ValidationResult = result

	return &resp
}

func (v *Validator) validateItem(ctx context.Context, queue *validation.Queue, item *validation.QueueItem,
	siopDID string) (validation.Response, bool) {
	token, err := item.ClaimToken()
	if err != nil {
		e := validationerr.As(err, ErrClaimToken, http.StatusBadRequest)

		return validation.Success().Fail(newError(ErrClaimToken, http.StatusBadRequest, errors.New(e.Message()))), false
	}

	if !token.Kind.Valid() {
		return validation.Success().Fail(newError(ErrUnsupportedKind, http.StatusBadRequest,
			fmt.Errorf("%s is not supported", token.Kind))), false
	}

	tv, ok := v.validators[token.Kind]
	if !ok {
		return validation.Success().Fail(newError(ErrNoTokenValidator, http.StatusForbidden,
			fmt.Errorf("%s does not have a TokenValidator", token.Kind))), false
	}

	resp := tv.Validate(ctx, queue, item, siopDID)

	item.Validated = true
	item.Result = &resp

	return resp, resp.Result
}

func (v *Validator) wrongTokenType(ctx context.Context, token interface{}) *validation.Response {
	resp := validation.Success().Fail(newError(ErrWrongTokenType, http.StatusBadRequest,
		errors.New("Wrong token type. Expected string or ClaimToken"))) //nolint:stylecheck

	logger.Debugc(ctx, "unexpected token type", log.WithError(fmt.Errorf("got %T", token)))

	return v.fail(ctx, nil, resp)
}

func (v *Validator) fail(ctx context.Context, token *claimtoken.ClaimToken, resp validation.Response) *validation.Response {
	kind := ""
	if token != nil {
		kind = token.Kind.String()
	}

	logger.Debugc(ctx, "validation failed", logfields.WithTokenKind(kind), logfields.WithErrorCode(resp.Code),
		logfields.WithHTTPStatus(resp.Status), log.WithError(resp.Err()))

	v.metrics.ValidationFailure(kind, resp.Code)

	resp.TokensToValidate = nil
	resp.ValidationResult = nil

	return &resp
}

func collect(result *validation.Result, item *validation.QueueItem, resp validation.Response) {
	token := item.Token

	switch token.Kind {
	case claimtoken.Siop, claimtoken.SiopPresentationAttestation:
		result.Siop = token
		result.SiopJti = resp.TokenID
		result.SiopContractID = ReadContractID(token.Claim("contract").String())
	case claimtoken.IDToken:
		result.IDTokens = put(result.IDTokens, item.Category, token)
	case claimtoken.SelfIssued:
		result.SelfIssued = token
	case claimtoken.VerifiablePresentation:
		result.VerifiablePresentations = put(result.VerifiablePresentations, item.Category, token)
	case claimtoken.VerifiableCredential:
		result.VerifiableCredentials = put(result.VerifiableCredentials, item.Category, token)
	}
}

func put(m map[string]*claimtoken.ClaimToken, key string, token *claimtoken.ClaimToken) map[string]*claimtoken.ClaimToken {
	if m == nil {
		m = map[string]*claimtoken.ClaimToken{}
	}

	m[key] = token

	return m
}

func newError(code validationerr.ErrorCode, status int, err error) *validationerr.Error {
	return validationerr.New(code, status, err).WithComponent(resterr.OrchestratorComponent)
}
