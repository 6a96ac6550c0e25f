/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

const (
	HolderDID   = "did:example:holder"
	IssuerDID   = "did:example:issuer"
	RPAudience  = "https://rp.example.com/siop"
	ContractURL = "https://issuer.example.com/v1.0/contracts/DrivingLicense"

	DrivingLicense = "DrivingLicense"
)

// SiopScenario holds the parties of a SIOP presenting a self-issued claim, one id token and one
// presentation wrapping a DrivingLicense credential.
type SiopScenario struct {
	Holder        *Ed25519Signer
	Issuer        *Ed25519Signer
	IDTokenIssuer *OIDCIssuer
	Resolver      *StaticResolver
}

// NewSiopScenario creates the parties of a SIOP scenario.
func NewSiopScenario(t *testing.T) *SiopScenario {
	t.Helper()

	holder := NewEd25519Signer(t, HolderDID)
	issuer := NewEd25519Signer(t, IssuerDID)

	return &SiopScenario{
		Holder:        holder,
		Issuer:        issuer,
		IDTokenIssuer: NewOIDCIssuer(t),
		Resolver:      NewStaticResolver(t, holder, issuer),
	}
}

// VerifiableCredential returns a DrivingLicense credential issued to the holder.
func (s *SiopScenario) VerifiableCredential(t *testing.T) string {
	t.Helper()

	return s.Issuer.Sign(t, s.CredentialClaims(DrivingLicense))
}

// CredentialClaims returns the claims of a credential of credentialType issued to the holder.
func (s *SiopScenario) CredentialClaims(credentialType string) map[string]interface{} {
	claims := timeClaims()
	claims["iss"] = s.Issuer.DID
	claims["sub"] = s.Holder.DID
	claims["vc"] = map[string]interface{}{
		"@context": []string{"https://www.w3.org/2018/credentials/v1"},
		"type":     []string{"VerifiableCredential", credentialType},
		"credentialSubject": map[string]interface{}{
			"givenName":  "Jules",
			"familyName": "Winnfield",
		},
	}

	return claims
}

// VerifiablePresentation returns a presentation of vcs signed by the holder and addressed to the holder DID.
func (s *SiopScenario) VerifiablePresentation(t *testing.T, vcs ...string) string {
	t.Helper()

	return s.Holder.Sign(t, s.PresentationClaims(vcs...))
}

// PresentationClaims returns the claims of a presentation of vcs. No vcs yields a presentation
// without a verifiableCredential entry.
func (s *SiopScenario) PresentationClaims(vcs ...string) map[string]interface{} {
	vp := map[string]interface{}{
		"@context": []string{"https://www.w3.org/2018/credentials/v1"},
		"type":     []string{"VerifiablePresentation"},
	}

	if len(vcs) > 0 {
		vp["verifiableCredential"] = vcs
	}

	claims := timeClaims()
	claims["iss"] = s.Holder.DID
	claims["aud"] = s.Holder.DID
	claims["vp"] = vp

	return claims
}

// IDToken returns an id token of the holder signed by the OIDC issuer.
func (s *SiopScenario) IDToken(t *testing.T) string {
	t.Helper()

	claims := timeClaims()
	claims["iss"] = s.IDTokenIssuer.Issuer()
	claims["aud"] = RPAudience
	claims["sub"] = "jules"
	claims["upn"] = "jules@example.com"

	return s.IDTokenIssuer.Sign(t, claims)
}

// Attestations returns the attestations of the full scenario.
func (s *SiopScenario) Attestations(t *testing.T) map[string]interface{} {
	t.Helper()

	return map[string]interface{}{
		"selfIssued": map[string]interface{}{"name": "jules"},
		"idTokens": map[string]interface{}{
			s.IDTokenIssuer.ConfigurationURL(): s.IDToken(t),
		},
		"presentations": map[string]interface{}{
			DrivingLicense: s.VerifiablePresentation(t, s.VerifiableCredential(t)),
		},
	}
}

// Siop returns the SIOP of the full scenario.
func (s *SiopScenario) Siop(t *testing.T) string {
	t.Helper()

	return s.SiopWith(t, s.Attestations(t))
}

// SiopWith returns a SIOP signed by the holder carrying attestations.
func (s *SiopScenario) SiopWith(t *testing.T, attestations map[string]interface{}) string {
	t.Helper()

	return s.Holder.Sign(t, s.SiopClaims(attestations))
}

// SiopClaims returns the claims of a SIOP addressed to RPAudience.
func (s *SiopScenario) SiopClaims(attestations map[string]interface{}) map[string]interface{} {
	claims := timeClaims()
	claims["iss"] = "https://self-issued.me"
	claims["aud"] = RPAudience
	claims["did"] = s.Holder.DID
	claims["sub"] = s.Holder.DID
	claims["contract"] = ContractURL

	if attestations != nil {
		claims["attestations"] = attestations
	}

	return claims
}

func timeClaims() map[string]interface{} {
	now := time.Now()

	return map[string]interface{}{
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	}
}
