/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination mocks/interfaces_mocks.go -self_package mocks -package mocks -source=interfaces.go

package validation

import (
	"context"
	"encoding/json"

	"github.com/go-jose/go-jose/v3"

	"github.com/trustbloc/siop-validator/pkg/doc/claimtoken"
	"github.com/trustbloc/siop-validator/pkg/doc/diddoc"
	"github.com/trustbloc/siop-validator/pkg/doc/keysuite"
	"github.com/trustbloc/siop-validator/pkg/service/wellknown/fetcher"
)

// DIDResolver resolves a DID to its document.
type DIDResolver interface {
	Resolve(ctx context.Context, did string) (*diddoc.Document, error)
}

// ConfigurationFetcher fetches the OIDC configuration and keys of id token issuers.
type ConfigurationFetcher interface {
	GetOIDCConfiguration(ctx context.Context, configURL string) (*fetcher.OIDCConfiguration, error)
	GetJWKS(ctx context.Context, jwksURL string) (*jose.JSONWebKeySet, error)
}

// SignatureVerifier checks a JWS signature with a normalized public key.
type SignatureVerifier interface {
	Verify(alg string, signingInput, signature []byte, key *keysuite.PublicKeyRecord) (bool, error)
}

// StatusChecker checks the revocation status of a credential presented by siopDID.
type StatusChecker interface {
	CheckStatus(ctx context.Context, vc *claimtoken.ClaimToken, siopDID string) (bool, error)
}

// KeySuiteRegistry decodes DID document verification methods.
type KeySuiteRegistry interface {
	GetPublicKey(raw json.RawMessage) (*keysuite.PublicKeyRecord, error)
}
