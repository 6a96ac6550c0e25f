/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package testutil

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"testing"

	"github.com/btcsuite/btcutil/base58"
	"github.com/go-jose/go-jose/v3"
	"github.com/stretchr/testify/require"
)

// Ed25519Signer signs compact JWTs with a fresh Ed25519 key bound to a DID.
type Ed25519Signer struct {
	DID        string
	KeyID      string
	PrivateKey ed25519.PrivateKey
	PublicKey  ed25519.PublicKey
}

// NewEd25519Signer creates a signer for did whose verification method is did#key-1.
func NewEd25519Signer(t *testing.T, did string) *Ed25519Signer {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	return &Ed25519Signer{
		DID:        did,
		KeyID:      did + "#key-1",
		PrivateKey: priv,
		PublicKey:  pub,
	}
}

// Sign returns claims signed as a compact JWS with the signer's kid.
func (s *Ed25519Signer) Sign(t *testing.T, claims interface{}) string {
	t.Helper()

	return SignedClaimsJWT(t, jose.SigningKey{Algorithm: jose.EdDSA, Key: s.PrivateKey}, s.KeyID, claims)
}

// VerificationMethod returns the signer's key as an Ed25519VerificationKey2018 verification method.
func (s *Ed25519Signer) VerificationMethod() map[string]interface{} {
	return map[string]interface{}{
		"id":              s.KeyID,
		"type":            "Ed25519VerificationKey2018",
		"controller":      s.DID,
		"publicKeyBase58": base58.Encode(s.PublicKey),
	}
}

// DIDDocument returns a DID document listing the signer's verification method.
func (s *Ed25519Signer) DIDDocument(t *testing.T) []byte {
	t.Helper()

	b, err := json.Marshal(map[string]interface{}{
		"@context":           []string{"https://www.w3.org/ns/did/v1"},
		"id":                 s.DID,
		"verificationMethod": []interface{}{s.VerificationMethod()},
	})
	require.NoError(t, err)

	return b
}

// SignedClaimsJWT signs claims with the given key as a compact JWS.
func SignedClaimsJWT(t *testing.T, key jose.SigningKey, kid string, claims interface{}) string {
	t.Helper()

	opts := (&jose.SignerOptions{}).WithType("JWT")
	if kid != "" {
		opts = opts.WithHeader(jose.HeaderKey("kid"), kid)
	}

	signer, err := jose.NewSigner(key, opts)
	require.NoError(t, err)

	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	jws, err := signer.Sign(payload)
	require.NoError(t, err)

	compact, err := jws.CompactSerialize()
	require.NoError(t, err)

	return compact
}
