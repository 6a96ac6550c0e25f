/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package didcachestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	redisapi "github.com/redis/go-redis/v9"

	"github.com/trustbloc/siop-validator/pkg/did/resolver"
)

const (
	keyPrefix = "did_document"
)

type redisClient interface {
	API() redisapi.UniversalClient
	Key(parts ...string) string
}

// Store keeps resolved DID documents in Redis so several validator instances share one cache.
type Store struct {
	redisClient redisClient
	ttl         time.Duration
}

// New creates a DID document store. Entries expire after ttlSec seconds.
func New(redisClient redisClient, ttlSec int32) *Store {
	return &Store{
		redisClient: redisClient,
		ttl:         time.Duration(ttlSec) * time.Second,
	}
}

// Get returns the cached document of did, or resolver.ErrCacheMiss.
func (s *Store) Get(ctx context.Context, did string) ([]byte, error) {
	b, err := s.redisClient.API().Get(ctx, s.redisClient.Key(keyPrefix, did)).Bytes()
	if err != nil {
		if errors.Is(err, redisapi.Nil) {
			return nil, resolver.ErrCacheMiss
		}

		return nil, fmt.Errorf("redis get DID document: %w", err)
	}

	return b, nil
}

// Put caches doc as the document of did.
func (s *Store) Put(ctx context.Context, did string, doc []byte) error {
	if err := s.redisClient.API().Set(ctx, s.redisClient.Key(keyPrefix, did), doc, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis put DID document: %w", err)
	}

	return nil
}
