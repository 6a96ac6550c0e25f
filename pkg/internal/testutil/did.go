/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trustbloc/siop-validator/pkg/doc/diddoc"
)

// StaticResolver resolves DIDs from documents registered in memory.
type StaticResolver struct {
	mu    sync.Mutex
	docs  map[string][]byte
	calls int
}

// NewStaticResolver returns a resolver that knows the DID documents of signers.
func NewStaticResolver(t *testing.T, signers ...*Ed25519Signer) *StaticResolver {
	t.Helper()

	r := &StaticResolver{docs: map[string][]byte{}}

	for _, s := range signers {
		r.Add(s.DID, s.DIDDocument(t))
	}

	return r
}

// Add registers doc under did.
func (r *StaticResolver) Add(did string, doc []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.docs[did] = doc
}

// Calls returns the number of Resolve calls.
func (r *StaticResolver) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.calls
}

// Resolve returns the registered document of did.
func (r *StaticResolver) Resolve(_ context.Context, did string) (*diddoc.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++

	doc, ok := r.docs[did]
	if !ok {
		return nil, fmt.Errorf("Could not resolve %s", did) //nolint:stylecheck
	}

	return diddoc.Parse(doc)
}

// MustParseDocument parses a DID document or fails the test.
func MustParseDocument(t *testing.T, doc []byte) *diddoc.Document {
	t.Helper()

	d, err := diddoc.Parse(doc)
	require.NoError(t, err)

	return d
}
