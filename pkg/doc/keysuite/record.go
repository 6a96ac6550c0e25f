/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package keysuite

// PublicKeyRecord is a public key normalized to JWK members.
type PublicKeyRecord struct {
	Kty string `json:"kty"`
	Alg string `json:"alg,omitempty"`
	Crv string `json:"crv,omitempty"`
	Use string `json:"use,omitempty"`
	Kid string `json:"kid,omitempty"`
	X   string `json:"x,omitempty"`
	Y   string `json:"y,omitempty"`
	N   string `json:"n,omitempty"`
	E   string `json:"e,omitempty"`
}

// Encoding is the verification method member carrying the key material.
type Encoding string

const (
	Base58 Encoding = "publicKeyBase58"
	Hex    Encoding = "publicKeyHex"
	JWK    Encoding = "publicKeyJwk"
)
