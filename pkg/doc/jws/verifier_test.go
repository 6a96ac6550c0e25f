/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jws_test

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/go-jose/go-jose/v3"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/siop-validator/pkg/doc/jws"
	"github.com/trustbloc/siop-validator/pkg/doc/keysuite"
	"github.com/trustbloc/siop-validator/pkg/internal/testutil"
)

func TestVerifier_Verify(t *testing.T) {
	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	ec384Key, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	require.NoError(t, err)

	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	edPub, edKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	tests := []struct {
		name string
		alg  jose.SignatureAlgorithm
		priv interface{}
		pub  interface{}
	}{
		{name: "EdDSA", alg: jose.EdDSA, priv: edKey, pub: edPub},
		{name: "ES256", alg: jose.ES256, priv: ecKey, pub: &ecKey.PublicKey},
		{name: "RS256", alg: jose.RS256, priv: rsaKey, pub: &rsaKey.PublicKey},
		{name: "PS256", alg: jose.PS256, priv: rsaKey, pub: &rsaKey.PublicKey},
		{name: "ES384", alg: jose.ES384, priv: ec384Key, pub: &ec384Key.PublicKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := testutil.SignedClaimsJWT(t, jose.SigningKey{Algorithm: tt.alg, Key: tt.priv}, "kid",
				map[string]interface{}{"iss": "did:example:123"})

			input, sig := splitToken(t, token)
			key := recordFromJWK(t, tt.pub)

			ok, err := jws.NewVerifier().Verify(string(tt.alg), input, sig, key)
			require.NoError(t, err)
			require.True(t, ok)

			tampered := append([]byte{}, input...)
			tampered[len(tampered)-1] ^= 1

			ok, err = jws.NewVerifier().Verify(string(tt.alg), tampered, sig, key)
			require.NoError(t, err)
			require.False(t, ok)
		})
	}

	t.Run("Ed25519 record from key-suite registry", func(t *testing.T) {
		signer := testutil.NewEd25519Signer(t, "did:example:holder")

		vm, err := json.Marshal(signer.VerificationMethod())
		require.NoError(t, err)

		key, err := keysuite.New().GetPublicKey(vm)
		require.NoError(t, err)

		input, sig := splitToken(t, signer.Sign(t, map[string]interface{}{"sub": "x"}))

		ok, err := jws.NewVerifier().Verify("EdDSA", input, sig, key)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("ES256K", func(t *testing.T) {
		priv, err := btcec.NewPrivateKey()
		require.NoError(t, err)

		input := []byte("eyJhbGciOiJFUzI1NksifQ.eyJpc3MiOiJkaWQ6ZXhhbXBsZToxMjMifQ")
		hash := sha256.Sum256(input)

		compact, err := btcecdsa.SignCompact(priv, hash[:], true)
		require.NoError(t, err)

		sig := compact[1:]

		uncompressed := priv.PubKey().SerializeUncompressed()
		key := &keysuite.PublicKeyRecord{
			Kty: "EC",
			Crv: "secp256k1",
			X:   base64.RawURLEncoding.EncodeToString(uncompressed[1:33]),
			Y:   base64.RawURLEncoding.EncodeToString(uncompressed[33:]),
		}

		ok, err := jws.NewVerifier().Verify("ES256K", input, sig, key)
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = jws.NewVerifier().Verify("ES256K", []byte("other"), sig, key)
		require.NoError(t, err)
		require.False(t, ok)

		ok, err = jws.NewVerifier().Verify("ES256K", input, sig[:10], key)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("errors", func(t *testing.T) {
		v := jws.NewVerifier()

		_, err := v.Verify("EdDSA", nil, nil, nil)
		require.EqualError(t, err, "public key is not defined")

		_, err = v.Verify("HS256", nil, nil, &keysuite.PublicKeyRecord{Kty: "oct"})
		require.EqualError(t, err, "unsupported signature algorithm 'HS256'")

		rsaRecord := recordFromJWK(t, &rsaKey.PublicKey)

		_, err = v.Verify("EdDSA", nil, nil, rsaRecord)
		require.EqualError(t, err, "public key does not match the signature algorithm")

		_, err = v.Verify("ES256", nil, nil, rsaRecord)
		require.EqualError(t, err, "public key does not match the signature algorithm")

		_, err = v.Verify("RS256", nil, nil, recordFromJWK(t, edPub))
		require.EqualError(t, err, "public key does not match the signature algorithm")

		_, err = v.Verify("ES256K", nil, nil, rsaRecord)
		require.EqualError(t, err, "public key does not match the signature algorithm")

		_, err = v.Verify("ES256K", nil, nil, &keysuite.PublicKeyRecord{Kty: "EC", Crv: "secp256k1", X: "AA", Y: "AA"})
		require.ErrorContains(t, err, "decode public key")

		_, err = v.Verify("RS384", nil, nil, rsaRecord)
		require.EqualError(t, err, "unsupported signature algorithm 'RS384'")

		ecRecord := recordFromJWK(t, &ecKey.PublicKey)
		ecRecord.Alg = "ES384"

		_, err = v.Verify("ES256", nil, nil, ecRecord)
		require.EqualError(t, err, "public key does not match the signature algorithm")
	})
}

func splitToken(t *testing.T, token string) ([]byte, []byte) {
	t.Helper()

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)

	return []byte(parts[0] + "." + parts[1]), sig
}

func recordFromJWK(t *testing.T, pub interface{}) *keysuite.PublicKeyRecord {
	t.Helper()

	b, err := jose.JSONWebKey{Key: pub}.MarshalJSON()
	require.NoError(t, err)

	var record keysuite.PublicKeyRecord
	require.NoError(t, json.Unmarshal(b, &record))

	return &record
}
