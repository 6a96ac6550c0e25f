/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package validation

import (
	"context"

	"github.com/trustbloc/siop-validator/pkg/doc/claimtoken"
)

// SignatureStep resolves signing keys and verifies token signatures.
type SignatureStep interface {
	// ResolveDIDAndGetKeys resolves the DID of resp.DIDKid and sets resp.DID and resp.SigningKey.
	ResolveDIDAndGetKeys(ctx context.Context, resp Response) Response
	// ValidateDIDSignature verifies the token signature with resp.SigningKey.
	ValidateDIDSignature(ctx context.Context, resp Response, token *claimtoken.ClaimToken) Response
	// FetchKeyAndValidateSignatureOnIDToken fetches the signing key of an id token from the
	// configuration published at configuration and verifies the token signature.
	FetchKeyAndValidateSignatureOnIDToken(ctx context.Context, resp Response, token *claimtoken.ClaimToken,
		configuration string) Response
}

// TimeStep checks exp, nbf and iat of resp.PayloadObject.
type TimeStep interface {
	CheckTimeValidityOnToken(resp Response, driftInSec int) Response
}

// ScopeStep checks that a token is meant for this verifier and issued by someone trusted for it.
type ScopeStep interface {
	CheckScopeValidityOnSiopToken(resp Response, expected ExpectedSiop) Response
	CheckScopeValidityOnIDToken(resp Response, expected ExpectedIDToken) Response
	CheckScopeValidityOnVpToken(resp Response, expected ExpectedVerifiablePresentation, siopDID string) Response
	CheckScopeValidityOnVcToken(resp Response, expected ExpectedVerifiableCredential, siopDID string) Response
}

// Options is the set of steps shared by all token validators.
type Options struct {
	Signature  SignatureStep
	Time       TimeStep
	Scope      ScopeStep
	Safeguards Safeguards
}

// Opt overrides a step of Options.
type Opt func(o *Options)

// WithSignatureStep replaces the signature step.
func WithSignatureStep(step SignatureStep) Opt {
	return func(o *Options) {
		o.Signature = step
	}
}

// WithTimeStep replaces the time step.
func WithTimeStep(step TimeStep) Opt {
	return func(o *Options) {
		o.Time = step
	}
}

// WithScopeStep replaces the scope step.
func WithScopeStep(step ScopeStep) Opt {
	return func(o *Options) {
		o.Scope = step
	}
}

// WithSafeguards replaces the default safeguards.
func WithSafeguards(safeguards Safeguards) Opt {
	return func(o *Options) {
		o.Safeguards = safeguards
	}
}

// NewOptions returns options backed by Helpers built from config.
func NewOptions(config *Config, opts ...Opt) *Options {
	helpers := NewHelpers(config)

	o := &Options{
		Signature:  helpers,
		Time:       helpers,
		Scope:      helpers,
		Safeguards: DefaultSafeguards(),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}
