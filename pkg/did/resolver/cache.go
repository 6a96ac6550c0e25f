/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bluele/gcache"
)

// MemoryCache is an in-process LRU cache of DID documents with a fixed time to live.
type MemoryCache struct {
	cache gcache.Cache
}

// NewMemoryCache returns a cache holding at most size documents, each for ttl.
func NewMemoryCache(size int, ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		cache: gcache.New(size).LRU().Expiration(ttl).Build(),
	}
}

func (c *MemoryCache) Get(_ context.Context, did string) ([]byte, error) {
	v, err := c.cache.Get(did)
	if err != nil {
		if errors.Is(err, gcache.KeyNotFoundError) {
			return nil, ErrCacheMiss
		}

		return nil, err
	}

	doc, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected cached value %T", v)
	}

	return doc, nil
}

func (c *MemoryCache) Put(_ context.Context, did string, doc []byte) error {
	return c.cache.Set(did, doc)
}
