/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resolver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/siop-validator/internal/logfields"
	"github.com/trustbloc/siop-validator/pkg/doc/diddoc"
)

var logger = log.New("did-resolver")

const (
	didLDJSON = "application/did+ld+json"
	maxBody   = 1 << 20
)

// ErrCacheMiss is returned by a Cache that holds no document for the DID.
var ErrCacheMiss = errors.New("DID document not cached")

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Cache keeps resolved DID documents.
type Cache interface {
	Get(ctx context.Context, did string) ([]byte, error)
	Put(ctx context.Context, did string, doc []byte) error
}

// HTTPResolver resolves DIDs through a universal resolver endpoint: GET <baseURL>/<did>.
type HTTPResolver struct {
	baseURL    string
	client     httpClient
	cache      Cache
	maxRetries uint64
}

// Opt configures the HTTPResolver.
type Opt func(r *HTTPResolver)

// WithHTTPClient sets the client used to reach the resolver endpoint.
func WithHTTPClient(client httpClient) Opt {
	return func(r *HTTPResolver) {
		r.client = client
	}
}

// WithCache caches resolved documents.
func WithCache(cache Cache) Opt {
	return func(r *HTTPResolver) {
		r.cache = cache
	}
}

// WithMaxRetries retries transport errors and 5xx responses.
func WithMaxRetries(maxRetries uint64) Opt {
	return func(r *HTTPResolver) {
		r.maxRetries = maxRetries
	}
}

// NewHTTPResolver returns a resolver for the endpoint at baseURL.
func NewHTTPResolver(baseURL string, opts ...Opt) *HTTPResolver {
	r := &HTTPResolver{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  http.DefaultClient,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns the DID document of did.
func (r *HTTPResolver) Resolve(ctx context.Context, did string) (*diddoc.Document, error) {
	if doc, ok := fromCache(ctx, r.cache, did); ok {
		return doc, nil
	}

	url := r.baseURL + "/" + did

	var body []byte

	err := backoff.RetryNotify(
		func() error {
			var err error

			body, err = r.get(ctx, url)

			return err
		},
		backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), r.maxRetries), ctx),
		func(err error, d time.Duration) {
			logger.Debugc(ctx, "retrying DID resolution", log.WithURL(url), log.WithDuration(d), log.WithError(err))
		},
	)
	if err != nil {
		logger.Debugc(ctx, "DID resolution failed", log.WithURL(url), log.WithError(err))

		return nil, fmt.Errorf("Could not resolve %s", url) //nolint:stylecheck
	}

	doc, err := parse(did, body)
	if err != nil {
		return nil, err
	}

	toCache(ctx, r.cache, did, doc)

	return doc, nil
}

func (r *HTTPResolver) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	req.Header.Set("Accept", didLDJSON+", application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer func() {
		if resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := fmt.Errorf("got unexpected status code: %d", resp.StatusCode)

		if resp.StatusCode >= http.StatusInternalServerError {
			return nil, statusErr
		}

		return nil, backoff.Permanent(statusErr)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxBody))
}

func parse(did string, raw []byte) (*diddoc.Document, error) {
	doc, err := diddoc.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse DID document of %s: %w", did, err)
	}

	if doc.ID != did {
		return nil, fmt.Errorf("DID document of %s has unexpected id %s", did, doc.ID)
	}

	return doc, nil
}

func fromCache(ctx context.Context, cache Cache, did string) (*diddoc.Document, bool) {
	if cache == nil {
		return nil, false
	}

	raw, err := cache.Get(ctx, did)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			logger.Warnc(ctx, "DID document cache read failed", logfields.WithDID(did), log.WithError(err))
		}

		return nil, false
	}

	doc, err := diddoc.Parse(raw)
	if err != nil {
		logger.Warnc(ctx, "cached DID document is invalid", logfields.WithDID(did), log.WithError(err))

		return nil, false
	}

	return doc, true
}

func toCache(ctx context.Context, cache Cache, did string, doc *diddoc.Document) {
	if cache == nil {
		return
	}

	if err := cache.Put(ctx, did, doc.JSONBytes()); err != nil {
		logger.Warnc(ctx, "DID document cache write failed", logfields.WithDID(did), log.WithError(err))
	}
}
