/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package didresolver

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/siop-validator/pkg/doc/diddoc"
	"github.com/trustbloc/siop-validator/pkg/service/validation/mocks"
)

const testDID = "did:example:holder"

func TestWrapper_Resolve(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		doc := &diddoc.Document{ID: testDID}

		resolver := mocks.NewMockDIDResolver(ctrl)
		resolver.EXPECT().Resolve(gomock.Any(), testDID).Return(doc, nil).Times(1)

		w := Wrap(resolver, trace.NewNoopTracerProvider().Tracer(""))

		res, err := w.Resolve(context.Background(), testDID)
		require.NoError(t, err)
		require.Same(t, doc, res)
	})

	t.Run("resolution error", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		resolver := mocks.NewMockDIDResolver(ctrl)
		resolver.EXPECT().Resolve(gomock.Any(), testDID).Return(nil, errors.New("not found")).Times(1)

		w := Wrap(resolver, trace.NewNoopTracerProvider().Tracer(""))

		res, err := w.Resolve(context.Background(), testDID)
		require.EqualError(t, err, "not found")
		require.Nil(t, res)
	})
}
