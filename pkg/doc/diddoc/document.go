/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package diddoc

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrKeyNotFound is returned when a DID document has no verification method with the requested id.
var ErrKeyNotFound = errors.New("verification method not found")

var verificationMethodMembers = []string{ //nolint:gochecknoglobals
	"verificationMethod",
	"publicKey",
	"assertionMethod",
	"authentication",
}

// Document is a resolved DID document kept in its raw JSON form, so verification methods can be
// handed to the key-suite registry exactly as published.
type Document struct {
	ID  string
	raw []byte
}

// Parse parses a DID document. A resolution result wrapping the document in a didDocument member
// is accepted as well.
func Parse(raw []byte) (*Document, error) {
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("DID document is not valid JSON")
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, errors.New("DID document must be a JSON object")
	}

	if wrapped := doc.Get("didDocument"); wrapped.IsObject() {
		doc = wrapped
	}

	id := doc.Get("id").String()
	if id == "" {
		return nil, errors.New("DID document has no id")
	}

	return &Document{ID: id, raw: []byte(doc.Raw)}, nil
}

// JSONBytes returns the document JSON.
func (d *Document) JSONBytes() []byte {
	return d.raw
}

// VerificationMethod returns the raw verification method matching kid. The kid may be absolute
// (did#fragment) or a relative fragment (#fragment).
func (d *Document) VerificationMethod(kid string) (json.RawMessage, error) {
	if kid == "" {
		return nil, fmt.Errorf("%w: empty key id", ErrKeyNotFound)
	}

	want := d.absolute(kid)

	for _, member := range verificationMethodMembers {
		for _, vm := range gjson.GetBytes(d.raw, member).Array() {
			if !vm.IsObject() {
				continue
			}

			if d.absolute(vm.Get("id").String()) == want {
				return json.RawMessage(vm.Raw), nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, kid)
}

func (d *Document) absolute(id string) string {
	if strings.HasPrefix(id, "#") {
		return d.ID + id
	}

	return id
}
