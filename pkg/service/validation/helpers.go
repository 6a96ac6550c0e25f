/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package validation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-jose/go-jose/v3"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/siop-validator/internal/logfields"
	"github.com/trustbloc/siop-validator/pkg/doc/claimtoken"
	"github.com/trustbloc/siop-validator/pkg/doc/diddoc"
	"github.com/trustbloc/siop-validator/pkg/doc/jws"
	"github.com/trustbloc/siop-validator/pkg/doc/keysuite"
	"github.com/trustbloc/siop-validator/pkg/observability/metrics"
	"github.com/trustbloc/siop-validator/pkg/observability/metrics/noop"
)

var logger = log.New("validation-helpers")

// Config holds the collaborators of the default validation steps.
type Config struct {
	Resolver             DIDResolver
	ConfigurationFetcher ConfigurationFetcher
	SignatureVerifier    SignatureVerifier
	KeySuites            KeySuiteRegistry
	Metrics              metrics.Metrics
	// Now returns the time tokens are checked against. Defaults to time.Now.
	Now func() time.Time
}

// Helpers implements SignatureStep, TimeStep and ScopeStep.
type Helpers struct {
	resolver  DIDResolver
	fetcher   ConfigurationFetcher
	verifier  SignatureVerifier
	keySuites KeySuiteRegistry
	metrics   metrics.Metrics
	now       func() time.Time
}

// NewHelpers returns the default validation steps. Unset collaborators fall back to the key-suite
// registry, the JWS verifier and no-op metrics; resolver and configuration fetcher have no default.
func NewHelpers(config *Config) *Helpers {
	h := &Helpers{
		resolver:  config.Resolver,
		fetcher:   config.ConfigurationFetcher,
		verifier:  config.SignatureVerifier,
		keySuites: config.KeySuites,
		metrics:   config.Metrics,
		now:       config.Now,
	}

	if h.verifier == nil {
		h.verifier = jws.NewVerifier()
	}

	if h.keySuites == nil {
		h.keySuites = keysuite.New()
	}

	if h.metrics == nil {
		h.metrics = noop.GetMetrics()
	}

	if h.now == nil {
		h.now = time.Now
	}

	return h
}

// ResolveDIDAndGetKeys resolves the DID referenced by resp.DIDKid and decodes the verification
// method it names.
func (h *Helpers) ResolveDIDAndGetKeys(ctx context.Context, resp Response) Response {
	if resp.DIDKid == "" {
		return resp.Fail(newError(ErrMissingKid, http.StatusBadRequest,
			errors.New("The kid is not referenced in the request"))) //nolint:stylecheck
	}

	did, err := diddoc.GetDIDFromVerificationMethod(resp.DIDKid)
	if err != nil {
		return resp.Fail(newError(ErrMalformedKid, http.StatusBadRequest, err))
	}

	if h.resolver == nil {
		return resp.Fail(newError(ErrNoResolver, http.StatusInternalServerError,
			errors.New("no DID resolver is configured")))
	}

	start := time.Now()

	doc, err := h.resolver.Resolve(ctx, did)

	h.metrics.DIDResolutionTime(time.Since(start))

	if err != nil {
		logger.Debugc(ctx, "DID resolution failed", logfields.WithDID(did), log.WithError(err))

		return resp.FailWith(err, ErrResolveDID, http.StatusForbidden)
	}

	vm, err := doc.VerificationMethod(resp.DIDKid)
	if err != nil {
		return resp.Fail(newError(ErrKeyNotInDocument, http.StatusForbidden,
			fmt.Errorf("Could not find key '%s' in the DID document of '%s'", resp.DIDKid, did))) //nolint:stylecheck
	}

	key, err := h.keySuites.GetPublicKey(vm)
	if err != nil {
		return resp.Fail(err)
	}

	resp.DID = did
	resp.SigningKey = key

	return resp
}

// ValidateDIDSignature verifies the signature of token with resp.SigningKey.
func (h *Helpers) ValidateDIDSignature(_ context.Context, resp Response, token *claimtoken.ClaimToken) Response {
	if resp.SigningKey == nil {
		return resp.Fail(newError(ErrNoSigningKey, http.StatusInternalServerError,
			fmt.Errorf("no signing key was resolved for the %s", token.Kind)))
	}

	return h.verify(resp, token, resp.SigningKey)
}

// FetchKeyAndValidateSignatureOnIDToken fetches the issuer configuration and key set published at
// configuration, selects the key named by the token kid and verifies the token signature.
func (h *Helpers) FetchKeyAndValidateSignatureOnIDToken(ctx context.Context, resp Response,
	token *claimtoken.ClaimToken, configuration string) Response {
	if h.fetcher == nil {
		return resp.Fail(newError(ErrNoConfigurationFetcher, http.StatusInternalServerError,
			errors.New("no configuration fetcher is configured")))
	}

	start := time.Now()

	conf, err := h.fetcher.GetOIDCConfiguration(ctx, configuration)

	h.metrics.ConfigurationFetchTime(time.Since(start))

	if err != nil {
		logger.Debugc(ctx, "fetch token configuration failed", log.WithURL(configuration), log.WithError(err))

		return resp.Fail(newError(ErrFetchConfiguration, http.StatusForbidden,
			errors.New("Could not fetch token configuration"))) //nolint:stylecheck
	}

	if conf.JWKSURI == "" {
		return resp.Fail(newError(ErrNoJWKSURI, http.StatusForbidden,
			fmt.Errorf("No reference to jwks found in token configuration '%s'", configuration))) //nolint:stylecheck
	}

	keys, err := h.fetcher.GetJWKS(ctx, conf.JWKSURI)
	if err != nil {
		logger.Debugc(ctx, "fetch jwks failed", log.WithURL(conf.JWKSURI), log.WithError(err))

		return resp.Fail(newError(ErrFetchJWKS, http.StatusForbidden,
			fmt.Errorf("Could not fetch keys needed to validate token on '%s'", conf.JWKSURI))) //nolint:stylecheck
	}

	jwk, err := selectKey(keys, token.KeyID())
	if err != nil {
		return resp.Fail(newError(ErrKeyNotInJWKS, http.StatusForbidden, err))
	}

	key, err := toRecord(jwk)
	if err != nil {
		return resp.Fail(newError(ErrKeyNotInJWKS, http.StatusForbidden, err))
	}

	resp.SigningKey = key
	resp.ExpectedIssuer = conf.Issuer

	return h.verify(resp, token, key)
}

func (h *Helpers) verify(resp Response, token *claimtoken.ClaimToken, key *keysuite.PublicKeyRecord) Response {
	input, sig, err := token.SigningInput()
	if err != nil {
		return resp.Fail(newError(ErrUnsignedToken, http.StatusBadRequest, err))
	}

	ok, err := h.verifier.Verify(token.Algorithm(), input, sig, key)
	if err != nil {
		return resp.Fail(newError(ErrVerifySignature, http.StatusForbidden, err))
	}

	if !ok {
		return resp.Fail(newError(ErrInvalidSignature, http.StatusForbidden,
			fmt.Errorf("The signature on the payload in the %s is invalid", token.Kind))) //nolint:stylecheck
	}

	return resp
}

func selectKey(keys *jose.JSONWebKeySet, kid string) (*jose.JSONWebKey, error) {
	if kid == "" {
		if len(keys.Keys) == 1 {
			return &keys.Keys[0], nil
		}

		return nil, errors.New("The token has no kid and the issuer publishes more than one key") //nolint:stylecheck
	}

	found := keys.Key(kid)
	if len(found) == 0 {
		return nil, fmt.Errorf("Could not find kid '%s' in the issuer keys", kid) //nolint:stylecheck
	}

	return &found[0], nil
}

func toRecord(jwk *jose.JSONWebKey) (*keysuite.PublicKeyRecord, error) {
	b, err := jwk.Public().MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode issuer key: %w", err)
	}

	var record keysuite.PublicKeyRecord

	if err = json.Unmarshal(b, &record); err != nil {
		return nil, fmt.Errorf("decode issuer key: %w", err)
	}

	return &record, nil
}

// AbsoluteKid returns kid prefixed with did when kid is a relative fragment.
func AbsoluteKid(did, kid string) string {
	if strings.HasPrefix(kid, "#") && did != "" {
		return did + kid
	}

	return kid
}
