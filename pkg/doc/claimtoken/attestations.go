/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package claimtoken

import (
	"fmt"
	"sort"
)

// Attestation claim names of a SIOP payload.
const (
	AttestationSelfIssued            = "selfIssued"
	AttestationIDTokens              = "idTokens"
	AttestationPresentations         = "presentations"
	AttestationVerifiableCredentials = "verifiableCredentials"
)

const verifiableCredentialType = "VerifiableCredential"

// Attestation is a token discovered in the attestations of a SIOP together with the
// category it is reported under.
type Attestation struct {
	Category string
	Token    *ClaimToken
}

// FromAttestations builds the claim tokens declared in the attestations claim of a SIOP.
// Self-issued claims come first, then id tokens keyed by configuration endpoint, presentations
// keyed by name and directly attested credentials keyed by credential type. Keys of each
// group are visited in lexical order.
func FromAttestations(attestations map[string]interface{}) ([]Attestation, error) {
	var result []Attestation

	if selfIssued, ok := attestations[AttestationSelfIssued]; ok {
		token, err := selfIssuedToken(selfIssued)
		if err != nil {
			return nil, err
		}

		result = append(result, Attestation{Category: AttestationSelfIssued, Token: token})
	}

	idTokens, err := tokenGroup(attestations, AttestationIDTokens, IDToken, true)
	if err != nil {
		return nil, err
	}

	presentations, err := tokenGroup(attestations, AttestationPresentations, VerifiablePresentation, false)
	if err != nil {
		return nil, err
	}

	credentials, err := tokenGroup(attestations, AttestationVerifiableCredentials, VerifiableCredential, false)
	if err != nil {
		return nil, err
	}

	for i := range credentials {
		credentials[i].Category = CredentialType(credentials[i].Token.DecodedToken)
	}

	result = append(result, idTokens...)
	result = append(result, presentations...)

	return append(result, credentials...), nil
}

// CredentialType returns the specific type of a JWT credential payload: the last entry of
// vc.type other than VerifiableCredential.
func CredentialType(decoded map[string]interface{}) string {
	vc, ok := decoded["vc"].(map[string]interface{})
	if !ok {
		return verifiableCredentialType
	}

	switch types := vc["type"].(type) {
	case string:
		return types
	case []interface{}:
		for i := len(types) - 1; i >= 0; i-- {
			if t, ok := types[i].(string); ok && t != verifiableCredentialType {
				return t
			}
		}
	}

	return verifiableCredentialType
}

func selfIssuedToken(claim interface{}) (*ClaimToken, error) {
	switch v := claim.(type) {
	case map[string]interface{}:
		return NewDecoded(SelfIssued, v, "")
	case string:
		return CreateAs(SelfIssued, v, "")
	default:
		return nil, newError(ErrMalformedClaim, fmt.Errorf("%s attestation has unexpected type %T", AttestationSelfIssued, claim))
	}
}

func tokenGroup(attestations map[string]interface{}, name string, kind TokenKind, keyIsID bool) ([]Attestation, error) {
	raw, ok := attestations[name]
	if !ok {
		return nil, nil
	}

	group, ok := raw.(map[string]interface{})
	if !ok {
		return nil, newError(ErrMalformedClaim, fmt.Errorf("%s attestation must be an object", name))
	}

	keys := make([]string, 0, len(group))
	for k := range group {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	result := make([]Attestation, 0, len(keys))

	for _, key := range keys {
		jwt, ok := group[key].(string)
		if !ok {
			return nil, newError(ErrMalformedClaim, fmt.Errorf("%s attestation '%s' must be a compact token", name, key))
		}

		id := ""
		if keyIsID {
			id = key
		}

		token, err := CreateAs(kind, jwt, id)
		if err != nil {
			return nil, err
		}

		result = append(result, Attestation{Category: key, Token: token})
	}

	return result, nil
}
