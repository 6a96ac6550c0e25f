/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package validator . Service

package validator

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/siop-validator/pkg/doc/claimtoken"
	"github.com/trustbloc/siop-validator/pkg/observability/tracing/attributeutil"
	"github.com/trustbloc/siop-validator/pkg/service/validation"
)

var _ Service = (*Wrapper)(nil)

// Service validates a SIOP token of a single profile.
type Service interface {
	Validate(ctx context.Context, token interface{}) *validation.Response
}

type Wrapper struct {
	svc       Service
	tracer    trace.Tracer
	profileID string
}

func Wrap(svc Service, tracer trace.Tracer, profileID string) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer, profileID: profileID}
}

func (w *Wrapper) Validate(ctx context.Context, token interface{}) *validation.Response {
	ctx, span := w.tracer.Start(ctx, "validator.Validate")
	defer span.End()

	span.SetAttributes(attribute.String("profile_id", w.profileID))

	if t, ok := token.(*claimtoken.ClaimToken); ok && t != nil {
		span.SetAttributes(attribute.String("token_kind", string(t.Kind)))
	}

	resp := w.svc.Validate(ctx, token)
	if resp == nil {
		return nil
	}

	span.SetAttributes(attribute.Bool("result", resp.Result))
	span.SetAttributes(attributeutil.JSON("response", resp,
		attributeutil.WithRedacted("payloadObject"),
		attributeutil.WithRedacted("tokensToValidate"),
		attributeutil.WithRedacted("validationResult"),
	))

	return resp
}
