/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jws

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hyperledger/aries-framework-go/component/kmscrypto/doc/jose/jwk"
	"github.com/hyperledger/aries-framework-go/component/models/signature/verifier"

	"github.com/trustbloc/siop-validator/pkg/doc/keysuite"
)

var errKeyMismatch = errors.New("public key does not match the signature algorithm")

// JWS algorithm names that differ from the names of the signature verifiers.
var verifierAlgorithms = map[string]string{
	"ES512": "ES521",
}

// Verifier checks JWS signatures against public key records produced by the key-suite registry
// or taken from an issuer's JWKS.
type Verifier struct {
	signatureVerifiers []verifier.SignatureVerifier
	publicKeyVerifier  *verifier.PublicKeyVerifier
}

// NewVerifier returns a JWS signature verifier supporting EdDSA, ES256, ES384, ES512, ES256K,
// RS256 and PS256.
func NewVerifier() *Verifier {
	signatureVerifiers := []verifier.SignatureVerifier{
		verifier.NewEd25519SignatureVerifier(),
		verifier.NewECDSAES256SignatureVerifier(),
		verifier.NewECDSAES384SignatureVerifier(),
		verifier.NewECDSAES521SignatureVerifier(),
		verifier.NewECDSASecp256k1SignatureVerifier(),
		verifier.NewRSARS256SignatureVerifier(),
		verifier.NewRSAPS256SignatureVerifier(),
	}

	return &Verifier{
		signatureVerifiers: signatureVerifiers,
		publicKeyVerifier:  verifier.NewCompositePublicKeyVerifier(signatureVerifiers),
	}
}

// Verify reports whether signature is a valid alg signature of signingInput under key.
func (v *Verifier) Verify(alg string, signingInput, signature []byte, key *keysuite.PublicKeyRecord) (bool, error) {
	if key == nil {
		return false, errors.New("public key is not defined")
	}

	algorithm := alg
	if name, ok := verifierAlgorithms[alg]; ok {
		algorithm = name
	}

	sv, ok := v.signatureVerifier(algorithm)
	if !ok {
		return false, fmt.Errorf("unsupported signature algorithm '%s'", alg)
	}

	record := *key

	if record.Kty == "OKP" && strings.EqualFold(record.Crv, "Ed25519") {
		record.Crv = "Ed25519"
	}

	if sv.KeyType() != record.Kty || (sv.Curve() != "" && sv.Curve() != record.Crv) ||
		(record.Alg != "" && record.Alg != alg) {
		return false, errKeyMismatch
	}

	pubKey, err := publicKey(&record, algorithm)
	if err != nil {
		return false, err
	}

	if err = v.publicKeyVerifier.Verify(pubKey, signingInput, signature); err != nil {
		return false, nil
	}

	return true, nil
}

func (v *Verifier) signatureVerifier(algorithm string) (verifier.SignatureVerifier, bool) {
	for _, sv := range v.signatureVerifiers {
		if sv.Algorithm() == algorithm {
			return sv, true
		}
	}

	return nil, false
}

func publicKey(record *keysuite.PublicKeyRecord, algorithm string) (*verifier.PublicKey, error) {
	record.Alg = ""

	b, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encode public key: %w", err)
	}

	j := &jwk.JWK{}

	if err = j.UnmarshalJSON(b); err != nil {
		return nil, fmt.Errorf("decode public key: %w", err)
	}

	j.Algorithm = algorithm

	pubKey := &verifier.PublicKey{Type: "JsonWebKey2020", JWK: j}

	if rsaKey, ok := j.Key.(*rsa.PublicKey); ok {
		pubKey.Value = x509.MarshalPKCS1PublicKey(rsaKey)
	}

	return pubKey, nil
}
