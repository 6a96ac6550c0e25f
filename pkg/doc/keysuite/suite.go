/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package keysuite

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcutil/base58"
	"github.com/tidwall/gjson"

	"github.com/trustbloc/siop-validator/pkg/restapi/resterr/validationerr"
)

const coordinateSize = 32

type decodeFunc func(key *EncodedKey, record *PublicKeyRecord) bool

type suite struct {
	name      string
	defaults  PublicKeyRecord
	encodings []Encoding
	codes     map[Encoding]validationerr.ErrorCode
	noneCode  validationerr.ErrorCode
	decoders  map[Encoding]decodeFunc
}

func okpSuite(name string, codes map[Encoding]validationerr.ErrorCode, none validationerr.ErrorCode) *suite {
	return &suite{
		name:      name,
		defaults:  PublicKeyRecord{Kty: "OKP", Alg: "EdDSA", Crv: "ed25519", Use: "sig"},
		encodings: []Encoding{Base58, Hex, JWK},
		codes:     codes,
		noneCode:  none,
		decoders: map[Encoding]decodeFunc{
			Base58: func(key *EncodedKey, record *PublicKeyRecord) bool {
				return setOctets(&record.X, base58.Decode(key.Value.String()))
			},
			Hex: func(key *EncodedKey, record *PublicKeyRecord) bool {
				b, err := hex.DecodeString(key.Value.String())

				return err == nil && setOctets(&record.X, b)
			},
			JWK: jwkDecoder("x"),
		},
	}
}

func secp256k1Suite(name string, codes map[Encoding]validationerr.ErrorCode, none validationerr.ErrorCode) *suite {
	return &suite{
		name:      name,
		defaults:  PublicKeyRecord{Kty: "EC", Alg: "ES256K", Crv: "secp256k1", Use: "sig"},
		encodings: []Encoding{JWK, Base58, Hex},
		codes:     codes,
		noneCode:  none,
		decoders: map[Encoding]decodeFunc{
			Base58: func(key *EncodedKey, record *PublicKeyRecord) bool {
				return setPoint(record, base58.Decode(key.Value.String()))
			},
			Hex: func(key *EncodedKey, record *PublicKeyRecord) bool {
				b, err := hex.DecodeString(key.Value.String())

				return err == nil && setPoint(record, b)
			},
			JWK: jwkDecoder("x", "y"),
		},
	}
}

func rsaSuite(name string, codes map[Encoding]validationerr.ErrorCode, none validationerr.ErrorCode) *suite {
	return &suite{
		name:      name,
		defaults:  PublicKeyRecord{Kty: "RSA", Alg: "RS256", Use: "sig"},
		encodings: []Encoding{JWK},
		codes:     codes,
		noneCode:  none,
		decoders: map[Encoding]decodeFunc{
			JWK: jwkDecoder("n", "e"),
		},
	}
}

func (s *suite) decode(raw json.RawMessage) (*PublicKeyRecord, error) {
	key, err := ParsePublicKey(raw, s.encodings...)
	if err != nil {
		var e *validationerr.Error
		if errors.As(err, &e) && e.ErrorCode == ErrParseUnsupported {
			return nil, newError(s.noneCode, notSupported(raw))
		}

		return nil, err
	}

	record := s.defaults
	record.Kid = gjson.GetBytes(raw, "id").String()

	if !s.decoders[key.Encoding](key, &record) {
		return nil, newError(s.codes[key.Encoding], notSupported(raw))
	}

	return &record, nil
}

// jwkDecoder overlays the members of a publicKeyJwk on the suite defaults. The listed members
// are required.
func jwkDecoder(required ...string) decodeFunc {
	return func(key *EncodedKey, record *PublicKeyRecord) bool {
		if !key.Value.IsObject() {
			return false
		}

		for _, member := range required {
			if key.Value.Get(member).String() == "" {
				return false
			}
		}

		overlay := func(dst *string, member string) {
			if v := key.Value.Get(member); v.Exists() && v.String() != "" {
				*dst = v.String()
			}
		}

		overlay(&record.Kty, "kty")
		overlay(&record.Alg, "alg")
		overlay(&record.Crv, "crv")
		overlay(&record.Use, "use")
		overlay(&record.Kid, "kid")
		overlay(&record.X, "x")
		overlay(&record.Y, "y")
		overlay(&record.N, "n")
		overlay(&record.E, "e")

		return true
	}
}

func setOctets(dst *string, b []byte) bool {
	if len(b) == 0 {
		return false
	}

	*dst = base64.RawURLEncoding.EncodeToString(b)

	return true
}

func setPoint(record *PublicKeyRecord, b []byte) bool {
	pub, err := btcec.ParsePubKey(b)
	if err != nil {
		return false
	}

	record.X = base64.RawURLEncoding.EncodeToString(padded(pub.X()))
	record.Y = base64.RawURLEncoding.EncodeToString(padded(pub.Y()))

	return true
}

func padded(v *big.Int) []byte {
	out := make([]byte, coordinateSize)

	return v.FillBytes(out)
}
