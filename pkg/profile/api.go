/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package profile

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/trustbloc/siop-validator/pkg/service/validation"
	"github.com/trustbloc/siop-validator/pkg/service/validator"
)

type ID = string

// ErrProfileNotFound is returned for an unknown or inactive profile.
var ErrProfileNotFound = errors.New("profile not found")

// Validation profile holds what one relying party expects from the SIOP responses it receives.
type Validation struct {
	ID                   ID                     `json:"id"`
	Name                 string                 `json:"name,omitempty"`
	Active               bool                   `json:"active"`
	Audience             string                 `json:"audience"`
	PresentationAudience string                 `json:"presentationAudience,omitempty"`
	IDToken              *IDTokenConfig         `json:"idToken,omitempty"`
	Credential           *CredentialConfig      `json:"credential,omitempty"`
	DriftInSec           int                    `json:"driftInSec,omitempty"`
	Safeguards           *validation.Safeguards `json:"safeguards,omitempty"`
}

// IDTokenConfig lists the trusted id token issuers.
type IDTokenConfig struct {
	Configurations []string `json:"configurations"`
	Audience       string   `json:"audience,omitempty"`
}

// CredentialConfig lists the trusted issuers per credential type.
type CredentialConfig struct {
	ContractIssuers map[string][]string `json:"contractIssuers"`
	StatusCheck     bool                `json:"statusCheck,omitempty"`
}

// Validate checks that the profile can configure a validator.
func (p *Validation) Validate() error {
	if p.ID == "" {
		return errors.New("profile id is required")
	}

	if p.Audience == "" {
		return fmt.Errorf("profile %s: audience is required", p.ID)
	}

	if p.DriftInSec < 0 {
		return fmt.Errorf("profile %s: driftInSec must not be negative", p.ID)
	}

	if p.Credential != nil {
		for credentialType, issuers := range p.Credential.ContractIssuers {
			if len(lo.Compact(issuers)) == 0 {
				return fmt.Errorf("profile %s: no issuers for credential type %s", p.ID, credentialType)
			}
		}
	}

	return nil
}

// Configure applies the profile expectations to b.
func (p *Validation) Configure(b *validator.Builder) *validator.Builder {
	b = b.UseAudienceURL(p.Audience).
		UsePresentationAudience(p.PresentationAudience).
		UseDrift(p.DriftInSec)

	if p.IDToken != nil {
		b = b.UseTrustedIssuerConfigurationsForIDTokens(p.IDToken.Configurations...).
			UseIDTokenAudience(p.IDToken.Audience)
	}

	if p.Credential != nil {
		b = b.UseTrustedIssuersForVerifiableCredentials(p.Credential.ContractIssuers).
			EnableFeatureVerifiedCredentialsStatusCheck(p.Credential.StatusCheck)
	}

	if p.Safeguards != nil {
		b = b.UseSafeguards(p.safeguards())
	}

	return b
}

// safeguards fills the limits the profile leaves unset with the defaults.
func (p *Validation) safeguards() validation.Safeguards {
	d := validation.DefaultSafeguards()
	s := *p.Safeguards

	return validation.Safeguards{
		MaxNumberOfVPTokensInSiop:         orDefault(s.MaxNumberOfVPTokensInSiop, d.MaxNumberOfVPTokensInSiop),
		MaxSizeOfVPTokensInSiop:           orDefault(s.MaxSizeOfVPTokensInSiop, d.MaxSizeOfVPTokensInSiop),
		MaxNumberOfVCTokensInPresentation: orDefault(s.MaxNumberOfVCTokensInPresentation, d.MaxNumberOfVCTokensInPresentation),
		MaxSizeOfVCTokensInPresentation:   orDefault(s.MaxSizeOfVCTokensInPresentation, d.MaxSizeOfVCTokensInPresentation),
		MaxNumberOfIDTokensInSiop:         orDefault(s.MaxNumberOfIDTokensInSiop, d.MaxNumberOfIDTokensInSiop),
		MaxSizeOfIDToken:                  orDefault(s.MaxSizeOfIDToken, d.MaxSizeOfIDToken),
		MaxNumberOfTokens:                 orDefault(s.MaxNumberOfTokens, d.MaxNumberOfTokens),
	}
}

func orDefault(v, d int) int {
	return lo.Ternary(v > 0, v, d)
}
