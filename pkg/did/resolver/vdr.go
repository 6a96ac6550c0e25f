/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resolver

import (
	"context"
	"fmt"

	vdrapi "github.com/hyperledger/aries-framework-go/pkg/framework/aries/api/vdr"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/siop-validator/internal/logfields"
	"github.com/trustbloc/siop-validator/pkg/doc/diddoc"
)

// VDRResolver resolves DIDs through a verifiable data registry holding the supported DID methods.
type VDRResolver struct {
	registry vdrapi.Registry
	cache    Cache
}

// VDROpt configures the VDRResolver.
type VDROpt func(r *VDRResolver)

// WithVDRCache caches resolved documents.
func WithVDRCache(cache Cache) VDROpt {
	return func(r *VDRResolver) {
		r.cache = cache
	}
}

// NewVDRResolver returns a resolver backed by registry.
func NewVDRResolver(registry vdrapi.Registry, opts ...VDROpt) *VDRResolver {
	r := &VDRResolver{registry: registry}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns the DID document of did.
func (r *VDRResolver) Resolve(ctx context.Context, did string) (*diddoc.Document, error) {
	if doc, ok := fromCache(ctx, r.cache, did); ok {
		return doc, nil
	}

	docResolution, err := r.registry.Resolve(did)
	if err != nil {
		logger.Debugc(ctx, "VDR resolution failed", logfields.WithDID(did), log.WithError(err))

		return nil, fmt.Errorf("Could not resolve %s", did) //nolint:stylecheck
	}

	if docResolution == nil || docResolution.DIDDocument == nil {
		return nil, fmt.Errorf("Could not resolve %s", did) //nolint:stylecheck
	}

	raw, err := docResolution.DIDDocument.JSONBytes()
	if err != nil {
		return nil, fmt.Errorf("marshal DID document of %s: %w", did, err)
	}

	doc, err := parse(did, raw)
	if err != nil {
		return nil, err
	}

	toCache(ctx, r.cache, did, doc)

	return doc, nil
}
