/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resolver_test

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"testing"
	"time"

	"github.com/hyperledger/aries-framework-go/pkg/doc/did"
	vdrapi "github.com/hyperledger/aries-framework-go/pkg/framework/aries/api/vdr"
	vdrmock "github.com/hyperledger/aries-framework-go/pkg/mock/vdr"
	"github.com/hyperledger/aries-framework-go/pkg/vdr"
	"github.com/hyperledger/aries-framework-go/pkg/vdr/key"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/siop-validator/pkg/did/resolver"
)

func TestVDRResolver_Resolve(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var calls int

		r := resolver.NewVDRResolver(&vdrmock.MockVDRegistry{
			ResolveFunc: func(didID string, opts ...vdrapi.DIDMethodOption) (*did.DocResolution, error) {
				calls++

				return &did.DocResolution{DIDDocument: createDIDDoc(t, didID)}, nil
			},
		}, resolver.WithVDRCache(resolver.NewMemoryCache(10, time.Minute)))

		for i := 0; i < 2; i++ {
			doc, err := r.Resolve(context.Background(), "did:trustbloc:abc")
			require.NoError(t, err)
			require.Equal(t, "did:trustbloc:abc", doc.ID)

			_, err = doc.VerificationMethod("did:trustbloc:abc#key1")
			require.NoError(t, err)
		}

		require.Equal(t, 1, calls)
	})

	t.Run("not found", func(t *testing.T) {
		r := resolver.NewVDRResolver(&vdrmock.MockVDRegistry{
			ResolveFunc: func(didID string, opts ...vdrapi.DIDMethodOption) (*did.DocResolution, error) {
				return nil, errors.New("DID not found")
			},
		})

		doc, err := r.Resolve(context.Background(), "did:trustbloc:abc")
		require.Nil(t, doc)
		require.EqualError(t, err, "Could not resolve did:trustbloc:abc")
	})

	t.Run("empty resolution", func(t *testing.T) {
		r := resolver.NewVDRResolver(&vdrmock.MockVDRegistry{
			ResolveFunc: func(didID string, opts ...vdrapi.DIDMethodOption) (*did.DocResolution, error) {
				return &did.DocResolution{}, nil
			},
		})

		_, err := r.Resolve(context.Background(), "did:trustbloc:abc")
		require.EqualError(t, err, "Could not resolve did:trustbloc:abc")
	})

	t.Run("document of another DID", func(t *testing.T) {
		r := resolver.NewVDRResolver(&vdrmock.MockVDRegistry{
			ResolveFunc: func(didID string, opts ...vdrapi.DIDMethodOption) (*did.DocResolution, error) {
				return &did.DocResolution{DIDDocument: createDIDDoc(t, "did:trustbloc:xyz")}, nil
			},
		})

		_, err := r.Resolve(context.Background(), "did:trustbloc:abc")
		require.EqualError(t, err, "DID document of did:trustbloc:abc has unexpected id did:trustbloc:xyz")
	})

	t.Run("did:key", func(t *testing.T) {
		const (
			didKey   = "did:key:z6MkpTHR8VNsBxYAAWHut2Geadd9jSwuBV8xRoAnwWsdvktH"
			didKeyID = didKey + "#z6MkpTHR8VNsBxYAAWHut2Geadd9jSwuBV8xRoAnwWsdvktH"
		)

		r := resolver.NewVDRResolver(vdr.New(vdr.WithVDR(key.New())))

		doc, err := r.Resolve(context.Background(), didKey)
		require.NoError(t, err)

		_, err = doc.VerificationMethod(didKeyID)
		require.NoError(t, err)
	})
}

func createDIDDoc(t *testing.T, didID string) *did.Doc {
	t.Helper()

	const (
		didContext = "https://w3id.org/did/v1"
		keyType    = "Ed25519VerificationKey2018"
	)

	pubKey, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	signingKey := did.VerificationMethod{
		ID:         didID + "#key1",
		Type:       keyType,
		Controller: didID,
		Value:      pubKey,
	}

	return &did.Doc{
		Context:            []string{didContext},
		ID:                 didID,
		VerificationMethod: []did.VerificationMethod{signingKey},
		AssertionMethod:    []did.Verification{{VerificationMethod: signingKey}},
	}
}
