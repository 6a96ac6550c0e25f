/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package keysuite

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var defaultEncodingOrder = []Encoding{JWK, Base58, Hex} //nolint:gochecknoglobals

// EncodedKey is the key material found in a verification method.
type EncodedKey struct {
	Encoding Encoding
	Value    gjson.Result
}

// ParsePublicKey finds the first encoding present in the verification method, in the given
// order, or JWK, base58, hex when no order is given.
func ParsePublicKey(raw json.RawMessage, order ...Encoding) (*EncodedKey, error) {
	if isUndefined(raw) {
		return nil, newError(ErrParseUndefined, errors.New("Pass in the public key. Undefined.")) //nolint:stylecheck
	}

	if len(order) == 0 {
		order = defaultEncodingOrder
	}

	doc := gjson.ParseBytes(raw)

	for _, enc := range order {
		if v := doc.Get(string(enc)); v.Exists() {
			return &EncodedKey{Encoding: enc, Value: v}, nil
		}
	}

	return nil, newError(ErrParseUnsupported, notSupported(raw))
}

func isUndefined(raw json.RawMessage) bool {
	r := gjson.ParseBytes(raw)

	return len(raw) == 0 || r.Type == gjson.Null
}

func notSupported(raw json.RawMessage) error {
	return fmt.Errorf("%s public key type is not supported.", string(raw)) //nolint:stylecheck
}
