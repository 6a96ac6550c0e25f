/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package keysuite

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/tidwall/gjson"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/siop-validator/internal/logfields"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr/validationerr"
)

var logger = log.New("key-suite")

// Verification method suite types.
const (
	WorkEd25519VerificationKey2020    = "WorkEd25519VerificationKey2020"
	Ed25519VerificationKey2018        = "Ed25519VerificationKey2018"
	Secp256k1VerificationKey2018      = "Secp256k1VerificationKey2018"
	EcdsaSecp256k1VerificationKey2019 = "EcdsaSecp256k1VerificationKey2019"
	RsaVerificationKey2018            = "RsaVerificationKey2018"
)

const (
	ErrNotDefined       validationerr.ErrorCode = "KEYS01"
	ErrNoType           validationerr.ErrorCode = "KEYS02"
	ErrSuiteUnsupported validationerr.ErrorCode = "KEYS03"
	ErrParseUndefined   validationerr.ErrorCode = "KEYS04"
	ErrParseUnsupported validationerr.ErrorCode = "KEYS05"

	ErrWorkEd25519Base58 validationerr.ErrorCode = "KEYS06"
	ErrWorkEd25519Hex    validationerr.ErrorCode = "KEYS07"
	ErrWorkEd25519JWK    validationerr.ErrorCode = "KEYS08"
	ErrWorkEd25519None   validationerr.ErrorCode = "KEYS09"

	ErrEd25519Base58 validationerr.ErrorCode = "KEYS10"
	ErrEd25519Hex    validationerr.ErrorCode = "KEYS11"
	ErrEd25519JWK    validationerr.ErrorCode = "KEYS12"
	ErrEd25519None   validationerr.ErrorCode = "KEYS13"

	ErrSecp256k1Base58 validationerr.ErrorCode = "KEYS14"
	ErrSecp256k1Hex    validationerr.ErrorCode = "KEYS15"
	ErrSecp256k1JWK    validationerr.ErrorCode = "KEYS16"
	ErrSecp256k1None   validationerr.ErrorCode = "KEYS17"

	ErrEcdsaSecp256k1Base58 validationerr.ErrorCode = "KEYS18"
	ErrEcdsaSecp256k1Hex    validationerr.ErrorCode = "KEYS19"
	ErrEcdsaSecp256k1JWK    validationerr.ErrorCode = "KEYS20"
	ErrEcdsaSecp256k1None   validationerr.ErrorCode = "KEYS21"

	ErrRsaJWK  validationerr.ErrorCode = "KEYS22"
	ErrRsaNone validationerr.ErrorCode = "KEYS23"
)

// Registry decodes DID document verification methods into public key records.
type Registry struct {
	suites map[string]*suite
}

// New returns a registry with the five supported verification method suites.
func New() *Registry {
	r := &Registry{suites: map[string]*suite{}}

	for _, s := range []*suite{
		okpSuite(WorkEd25519VerificationKey2020, map[Encoding]validationerr.ErrorCode{
			Base58: ErrWorkEd25519Base58, Hex: ErrWorkEd25519Hex, JWK: ErrWorkEd25519JWK,
		}, ErrWorkEd25519None),
		okpSuite(Ed25519VerificationKey2018, map[Encoding]validationerr.ErrorCode{
			Base58: ErrEd25519Base58, Hex: ErrEd25519Hex, JWK: ErrEd25519JWK,
		}, ErrEd25519None),
		secp256k1Suite(Secp256k1VerificationKey2018, map[Encoding]validationerr.ErrorCode{
			Base58: ErrSecp256k1Base58, Hex: ErrSecp256k1Hex, JWK: ErrSecp256k1JWK,
		}, ErrSecp256k1None),
		secp256k1Suite(EcdsaSecp256k1VerificationKey2019, map[Encoding]validationerr.ErrorCode{
			Base58: ErrEcdsaSecp256k1Base58, Hex: ErrEcdsaSecp256k1Hex, JWK: ErrEcdsaSecp256k1JWK,
		}, ErrEcdsaSecp256k1None),
		rsaSuite(RsaVerificationKey2018, map[Encoding]validationerr.ErrorCode{
			JWK: ErrRsaJWK,
		}, ErrRsaNone),
	} {
		r.suites[s.name] = s
	}

	return r
}

// Suites returns the supported suite types.
func (r *Registry) Suites() []string {
	names := make([]string, 0, len(r.suites))
	for name := range r.suites {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// GetPublicKey decodes a verification method using the suite named by its type member.
func (r *Registry) GetPublicKey(raw json.RawMessage) (*PublicKeyRecord, error) {
	if isUndefined(raw) {
		return nil, newError(ErrNotDefined, errors.New("The passed in public key is not defined")) //nolint:stylecheck
	}

	suiteType := gjson.GetBytes(raw, "type")
	if !suiteType.Exists() || suiteType.String() == "" {
		return nil, newError(ErrNoType, fmt.Errorf("The passed in public key has no type. %s", string(raw))) //nolint:stylecheck
	}

	s, ok := r.suites[suiteType.String()]
	if !ok {
		return nil, newError(ErrSuiteUnsupported,
			fmt.Errorf("The suite with type: '%s' is not supported.", suiteType.String())) //nolint:stylecheck
	}

	record, err := s.decode(raw)
	if err != nil {
		logger.Debug("verification method rejected", logfields.WithSuite(s.name), log.WithError(err))

		return nil, err
	}

	return record, nil
}

// Decode decodes the verification method with the named suite, regardless of its type member.
func (r *Registry) Decode(suiteType string, raw json.RawMessage) (*PublicKeyRecord, error) {
	s, ok := r.suites[suiteType]
	if !ok {
		return nil, newError(ErrSuiteUnsupported,
			fmt.Errorf("The suite with type: '%s' is not supported.", suiteType)) //nolint:stylecheck
	}

	return s.decode(raw)
}

func newError(code validationerr.ErrorCode, err error) *validationerr.Error {
	return validationerr.BadRequest(code, err).WithComponent(resterr.KeySuiteComponent)
}
