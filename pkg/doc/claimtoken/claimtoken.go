/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package claimtoken

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-jose/go-jose/v3"
	"github.com/tidwall/gjson"

	"github.com/trustbloc/siop-validator/pkg/restapi/resterr"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr/validationerr"
)

// SelfIssuedIssuer is the issuer value of a self-issued OpenID provider response.
const SelfIssuedIssuer = "https://self-issued.me"

const (
	ErrEmptyToken       validationerr.ErrorCode = "CLTK01"
	ErrMalformedToken   validationerr.ErrorCode = "CLTK02"
	ErrMalformedPayload validationerr.ErrorCode = "CLTK03"
	ErrUnsupportedKind  validationerr.ErrorCode = "CLTK04"
	ErrMalformedClaim   validationerr.ErrorCode = "CLTK05"
)

// ClaimToken is a token of a known kind, either in compact JWS serialization or already decoded.
// A ClaimToken is not modified once created.
type ClaimToken struct {
	Kind         TokenKind              `json:"type"`
	RawToken     string                 `json:"rawToken,omitempty"`
	DecodedToken map[string]interface{} `json:"decodedToken"`
	// ID is the discovery identifier, e.g. the OIDC configuration endpoint an id token was attested under.
	ID string `json:"id,omitempty"`

	payload []byte
	jws     *jose.JSONWebSignature
}

// Create decodes a compact token and classifies its kind from the payload claims.
func Create(raw string) (*ClaimToken, error) {
	jws, payload, decoded, err := decode(raw)
	if err != nil {
		return nil, err
	}

	return &ClaimToken{
		Kind:         classify(payload),
		RawToken:     raw,
		DecodedToken: decoded,
		payload:      payload,
		jws:          jws,
	}, nil
}

// CreateAs decodes a compact token whose kind is already known from the context it was found in.
func CreateAs(kind TokenKind, raw, id string) (*ClaimToken, error) {
	if !kind.Valid() {
		return nil, newError(ErrUnsupportedKind, fmt.Errorf("%s is not supported", kind))
	}

	jws, payload, decoded, err := decode(raw)
	if err != nil {
		return nil, err
	}

	return &ClaimToken{
		Kind:         kind,
		RawToken:     raw,
		DecodedToken: decoded,
		ID:           id,
		payload:      payload,
		jws:          jws,
	}, nil
}

// NewDecoded wraps an already decoded payload, e.g. the claims of a self-issued attestation.
func NewDecoded(kind TokenKind, decoded map[string]interface{}, id string) (*ClaimToken, error) {
	if !kind.Valid() {
		return nil, newError(ErrUnsupportedKind, fmt.Errorf("%s is not supported", kind))
	}

	payload, err := json.Marshal(decoded)
	if err != nil {
		return nil, newError(ErrMalformedPayload, fmt.Errorf("encode claims: %w", err))
	}

	return &ClaimToken{
		Kind:         kind,
		DecodedToken: decoded,
		ID:           id,
		payload:      payload,
	}, nil
}

// Payload returns the JSON encoded claims.
func (t *ClaimToken) Payload() []byte {
	return t.payload
}

// Claim returns the claim at the given gjson path.
func (t *ClaimToken) Claim(path string) gjson.Result {
	return gjson.GetBytes(t.payload, path)
}

// Issuer returns the iss claim.
func (t *ClaimToken) Issuer() string {
	return t.Claim("iss").String()
}

// Subject returns the sub claim.
func (t *ClaimToken) Subject() string {
	return t.Claim("sub").String()
}

// IsSigned reports whether the token carries a JWS.
func (t *ClaimToken) IsSigned() bool {
	return t.jws != nil
}

// KeyID returns the kid of the protected header.
func (t *ClaimToken) KeyID() string {
	if t.jws == nil || len(t.jws.Signatures) == 0 {
		return ""
	}

	return t.jws.Signatures[0].Protected.KeyID
}

// Algorithm returns the alg of the protected header.
func (t *ClaimToken) Algorithm() string {
	if t.jws == nil || len(t.jws.Signatures) == 0 {
		return ""
	}

	return t.jws.Signatures[0].Protected.Algorithm
}

// SigningInput returns the JWS signing input and the decoded signature.
func (t *ClaimToken) SigningInput() ([]byte, []byte, error) {
	if t.jws == nil {
		return nil, nil, errors.New("token is not signed")
	}

	parts := strings.Split(t.RawToken, ".")
	if len(parts) != 3 { //nolint:gomnd
		return nil, nil, errors.New("token is not in compact serialization")
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, nil, fmt.Errorf("decode signature: %w", err)
	}

	return []byte(parts[0] + "." + parts[1]), sig, nil
}

func decode(raw string) (*jose.JSONWebSignature, []byte, map[string]interface{}, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil, nil, newError(ErrEmptyToken, errors.New("token is empty"))
	}

	jws, err := jose.ParseSigned(raw)
	if err != nil {
		return nil, nil, nil, newError(ErrMalformedToken, fmt.Errorf("could not decode the token: %w", err))
	}

	payload := jws.UnsafePayloadWithoutVerification()

	var decoded map[string]interface{}
	if err = json.Unmarshal(payload, &decoded); err != nil || decoded == nil {
		return nil, nil, nil, newError(ErrMalformedPayload, errors.New("token payload is not a JSON object"))
	}

	return jws, payload, decoded, nil
}

func classify(payload []byte) TokenKind {
	claims := gjson.ParseBytes(payload)

	switch {
	case claims.Get("vp").Exists():
		return VerifiablePresentation
	case claims.Get("vc").Exists():
		return VerifiableCredential
	case claims.Get("attestations").Exists():
		if claims.Get("contract").Exists() {
			return Siop
		}

		return SiopPresentationAttestation
	case claims.Get("iss").String() == SelfIssuedIssuer:
		return Siop
	default:
		return IDToken
	}
}

func newError(code validationerr.ErrorCode, err error) *validationerr.Error {
	return validationerr.BadRequest(code, err).WithComponent(resterr.ClaimTokenComponent)
}
