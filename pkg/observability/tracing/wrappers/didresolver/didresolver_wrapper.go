/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package didresolver

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/siop-validator/pkg/doc/diddoc"
	"github.com/trustbloc/siop-validator/pkg/service/validation"
)

var _ validation.DIDResolver = (*Wrapper)(nil)

type Wrapper struct {
	resolver validation.DIDResolver
	tracer   trace.Tracer
}

func Wrap(resolver validation.DIDResolver, tracer trace.Tracer) *Wrapper {
	return &Wrapper{resolver: resolver, tracer: tracer}
}

func (w *Wrapper) Resolve(ctx context.Context, did string) (*diddoc.Document, error) {
	ctx, span := w.tracer.Start(ctx, "didresolver.Resolve")
	defer span.End()

	span.SetAttributes(attribute.String("did", did))

	doc, err := w.resolver.Resolve(ctx, did)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	return doc, nil
}
