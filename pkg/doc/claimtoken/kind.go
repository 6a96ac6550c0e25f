/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package claimtoken

// TokenKind discriminates the token kinds a validator can be registered for.
type TokenKind string

const (
	Siop                        TokenKind = "siop"
	SiopPresentationAttestation TokenKind = "siopPresentationAttestation"
	IDToken                     TokenKind = "idToken"
	SelfIssued                  TokenKind = "selfIssued"
	VerifiableCredential        TokenKind = "verifiableCredential"
	VerifiablePresentation      TokenKind = "verifiablePresentation"
)

// Kinds returns every supported token kind.
func Kinds() []TokenKind {
	return []TokenKind{
		Siop,
		SiopPresentationAttestation,
		IDToken,
		SelfIssued,
		VerifiableCredential,
		VerifiablePresentation,
	}
}

// Valid reports whether k is one of the supported kinds.
func (k TokenKind) Valid() bool {
	switch k {
	case Siop, SiopPresentationAttestation, IDToken, SelfIssued, VerifiableCredential, VerifiablePresentation:
		return true
	default:
		return false
	}
}

func (k TokenKind) String() string {
	return string(k)
}
