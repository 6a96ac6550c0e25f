/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package validation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trustbloc/siop-validator/pkg/doc/claimtoken"
	"github.com/trustbloc/siop-validator/pkg/internal/testutil"
	"github.com/trustbloc/siop-validator/pkg/service/validation"
)

func TestQueue(t *testing.T) {
	q := validation.NewQueue()
	require.Equal(t, 0, q.Len())

	item, ok := q.DequeueNext()
	require.False(t, ok)
	require.Nil(t, item)

	token, err := claimtoken.NewDecoded(claimtoken.SelfIssued, map[string]interface{}{"name": "jules"}, "")
	require.NoError(t, err)

	q.Enqueue("selfIssued", token)
	q.Enqueue("selfIssued", token)
	q.EnqueueRaw("siop", "raw")
	require.Equal(t, 3, q.Len())

	item, ok = q.DequeueNext()
	require.True(t, ok)
	require.Equal(t, "selfIssued", item.Category)
	require.Same(t, token, item.Token)

	item, ok = q.DequeueNext()
	require.True(t, ok)
	require.Equal(t, "selfIssued", item.Category)

	item, ok = q.DequeueNext()
	require.True(t, ok)
	require.Equal(t, "siop", item.Category)
	require.Equal(t, "raw", item.Raw)
	require.Equal(t, 0, q.Len())

	_, ok = q.DequeueNext()
	require.False(t, ok)
}

func TestQueueItem_ClaimToken(t *testing.T) {
	signer := testutil.NewEd25519Signer(t, "did:example:holder")

	item := &validation.QueueItem{
		Category: "siop",
		Raw:      signer.Sign(t, map[string]interface{}{"iss": claimtoken.SelfIssuedIssuer, "did": signer.DID}),
	}

	token, err := item.ClaimToken()
	require.NoError(t, err)
	require.Equal(t, claimtoken.Siop, token.Kind)
	require.Same(t, token, item.Token)

	again, err := item.ClaimToken()
	require.NoError(t, err)
	require.Same(t, token, again)

	_, err = (&validation.QueueItem{Raw: "not a token"}).ClaimToken()
	require.Error(t, err)
}
