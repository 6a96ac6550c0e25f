/*
Copyright Avast Software. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination wellknown_service_mocks_test.go -package fetcher_test -source=wellknown_service.go -mock_names httpClient=MockHTTPClient

package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dgraph-io/ristretto"
	"github.com/go-jose/go-jose/v3"
	"github.com/trustbloc/logutil-go/pkg/log"
)

var logger = log.New("wellknown-fetcher")

const (
	defaultCacheTTL       = 5 * time.Minute
	defaultCacheItems     = 1000
	cacheCounterMultipler = 10
	cacheBufferItems      = 64
)

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OIDCConfiguration is the subset of an OpenID provider configuration needed to validate id tokens.
type OIDCConfiguration struct {
	Issuer                           string   `json:"issuer"`
	JWKSURI                          string   `json:"jwks_uri"`
	AuthorizationEndpoint            string   `json:"authorization_endpoint,omitempty"`
	TokenEndpoint                    string   `json:"token_endpoint,omitempty"`
	IDTokenSigningAlgValuesSupported []string `json:"id_token_signing_alg_values_supported,omitempty"`
}

type unexpectedStatusError struct {
	status int
}

func (e *unexpectedStatusError) Error() string {
	return fmt.Sprintf("got unexpected status code: %v", e.status)
}

// Service is responsible for fetching the OIDC configuration and key set of trusted id token issuers.
type Service struct {
	client     httpClient
	cache      *ristretto.Cache
	cacheTTL   time.Duration
	maxRetries uint64
}

// Opt configures the Service.
type Opt func(s *Service)

// WithCache caches fetched documents for the given TTL.
func WithCache(cache *ristretto.Cache, ttl time.Duration) Opt {
	return func(s *Service) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

// WithMaxRetries retries failed requests that may succeed later (transport errors and 5xx responses).
func WithMaxRetries(maxRetries uint64) Opt {
	return func(s *Service) {
		s.maxRetries = maxRetries
	}
}

// NewCache returns a cache sized for well-known documents, one cost unit per document.
func NewCache() (*ristretto.Cache, error) {
	return ristretto.NewCache(&ristretto.Config{
		NumCounters:        defaultCacheItems * cacheCounterMultipler,
		MaxCost:            defaultCacheItems,
		BufferItems:        cacheBufferItems,
		IgnoreInternalCost: true,
	})
}

func NewService(client httpClient, opts ...Opt) *Service {
	s := &Service{
		client:   client,
		cacheTTL: defaultCacheTTL,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// GetOIDCConfiguration returns the OIDC configuration published at configURL.
func (s *Service) GetOIDCConfiguration(ctx context.Context, configURL string) (*OIDCConfiguration, error) {
	body, err := s.get(ctx, configURL)
	if err != nil {
		return nil, err
	}

	var conf OIDCConfiguration

	if err = json.Unmarshal(body, &conf); err != nil {
		return nil, fmt.Errorf("decode OIDC configuration: %w", err)
	}

	return &conf, nil
}

// GetJWKS returns the JSON web key set published at jwksURL.
func (s *Service) GetJWKS(ctx context.Context, jwksURL string) (*jose.JSONWebKeySet, error) {
	body, err := s.get(ctx, jwksURL)
	if err != nil {
		return nil, err
	}

	var keys jose.JSONWebKeySet

	if err = json.Unmarshal(body, &keys); err != nil {
		return nil, fmt.Errorf("decode JWKS: %w", err)
	}

	return &keys, nil
}

func (s *Service) get(ctx context.Context, url string) ([]byte, error) {
	if s.cache != nil {
		if v, ok := s.cache.Get(url); ok {
			return v.([]byte), nil //nolint:forcetypeassert
		}
	}

	var body []byte

	err := backoff.RetryNotify(
		func() error {
			var err error

			body, err = s.doGet(ctx, url)

			return err
		},
		backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), s.maxRetries), ctx),
		func(err error, d time.Duration) {
			logger.Debugc(ctx, "retrying well-known request", log.WithURL(url), log.WithDuration(d), log.WithError(err))
		},
	)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetWithTTL(url, body, 1, s.cacheTTL)
		s.cache.Wait()
	}

	return body, nil
}

func (s *Service) doGet(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer func() {
		if resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	if resp.StatusCode != http.StatusOK {
		statusErr := &unexpectedStatusError{status: resp.StatusCode}

		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, statusErr
		}

		return nil, backoff.Permanent(statusErr)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return body, nil
}
