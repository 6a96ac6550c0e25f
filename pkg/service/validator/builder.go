/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"github.com/trustbloc/siop-validator/pkg/doc/claimtoken"
	"github.com/trustbloc/siop-validator/pkg/observability/metrics"
	"github.com/trustbloc/siop-validator/pkg/observability/metrics/noop"
	"github.com/trustbloc/siop-validator/pkg/service/tokenvalidator"
	"github.com/trustbloc/siop-validator/pkg/service/validation"
)

// Builder assembles a Validator. Builder methods are not safe for concurrent use.
type Builder struct {
	validators       []tokenvalidator.TokenValidator
	customValidators bool

	expectedSiop    validation.ExpectedSiop
	expectedIDToken validation.ExpectedIDToken
	expectedVP      validation.ExpectedVerifiablePresentation
	expectedVC      validation.ExpectedVerifiableCredential

	resolver      validation.DIDResolver
	fetcher       validation.ConfigurationFetcher
	statusChecker validation.StatusChecker
	checkStatus   bool
	safeguards    validation.Safeguards
	metrics       metrics.Metrics
	stepOpts      []validation.Opt
}

// NewBuilder returns a builder registering the default validator of every token kind.
func NewBuilder() *Builder {
	return &Builder{
		safeguards: validation.DefaultSafeguards(),
	}
}

// UseValidators replaces the default validators. When several validators handle the same kind,
// the last one wins. Calling it without validators leaves every kind without a validator.
func (b *Builder) UseValidators(validators ...tokenvalidator.TokenValidator) *Builder {
	b.validators = validators
	b.customValidators = true

	return b
}

// UseTrustedIssuerConfigurationsForIDTokens sets the OIDC configuration endpoints trusted to
// publish id token signing keys.
func (b *Builder) UseTrustedIssuerConfigurationsForIDTokens(configurations ...string) *Builder {
	b.expectedIDToken.Configuration = configurations

	return b
}

// UseIDTokenAudience sets the audience expected in id tokens.
func (b *Builder) UseIDTokenAudience(audience string) *Builder {
	b.expectedIDToken.Audience = audience

	return b
}

// UseTrustedIssuersForVerifiableCredentials maps credential types to the DIDs trusted to issue them.
func (b *Builder) UseTrustedIssuersForVerifiableCredentials(contractIssuers map[string][]string) *Builder {
	b.expectedVC.ContractIssuers = contractIssuers

	return b
}

// UseAudienceURL sets the audience expected in the SIOP.
func (b *Builder) UseAudienceURL(audience string) *Builder {
	b.expectedSiop.Audience = audience

	return b
}

// UsePresentationAudience sets the audience of presentations validated outside of a SIOP.
func (b *Builder) UsePresentationAudience(didAudience string) *Builder {
	b.expectedVP.DIDAudience = didAudience

	return b
}

// UseDrift sets the tolerated clock skew of every token kind.
func (b *Builder) UseDrift(driftInSec int) *Builder {
	b.expectedSiop.DriftInSec = driftInSec
	b.expectedIDToken.DriftInSec = driftInSec
	b.expectedVP.DriftInSec = driftInSec
	b.expectedVC.DriftInSec = driftInSec

	return b
}

// UseResolver sets the DID resolver.
func (b *Builder) UseResolver(resolver validation.DIDResolver) *Builder {
	b.resolver = resolver

	return b
}

// UseConfigurationFetcher sets the fetcher of id token issuer configurations.
func (b *Builder) UseConfigurationFetcher(fetcher validation.ConfigurationFetcher) *Builder {
	b.fetcher = fetcher

	return b
}

// UseStatusChecker sets the credential status checker.
func (b *Builder) UseStatusChecker(checker validation.StatusChecker) *Builder {
	b.statusChecker = checker

	return b
}

// EnableFeatureVerifiedCredentialsStatusCheck toggles the status check of credentials declaring
// a credentialStatus.
func (b *Builder) EnableFeatureVerifiedCredentialsStatusCheck(enabled bool) *Builder {
	b.checkStatus = enabled

	return b
}

// UseSafeguards replaces the default safeguards.
func (b *Builder) UseSafeguards(safeguards validation.Safeguards) *Builder {
	b.safeguards = safeguards

	return b
}

// UseMetrics sets the metrics recorder.
func (b *Builder) UseMetrics(m metrics.Metrics) *Builder {
	b.metrics = m

	return b
}

// UseValidationSteps overrides the signature, time or scope steps of the default validators.
func (b *Builder) UseValidationSteps(opts ...validation.Opt) *Builder {
	b.stepOpts = opts

	return b
}

// Build returns the configured Validator.
func (b *Builder) Build() *Validator {
	m := b.metrics
	if m == nil {
		m = noop.GetMetrics()
	}

	validators := b.validators
	if !b.customValidators {
		validators = b.defaultValidators(m)
	}

	table := make(map[claimtoken.TokenKind]tokenvalidator.TokenValidator, len(validators))

	for _, v := range validators {
		table[v.IsType()] = v
	}

	return &Validator{
		validators: table,
		safeguards: b.safeguards,
		metrics:    m,
	}
}

func (b *Builder) defaultValidators(m metrics.Metrics) []tokenvalidator.TokenValidator {
	opts := validation.NewOptions(&validation.Config{
		Resolver:             b.resolver,
		ConfigurationFetcher: b.fetcher,
		Metrics:              m,
	}, append([]validation.Opt{validation.WithSafeguards(b.safeguards)}, b.stepOpts...)...)

	var vcOpts []tokenvalidator.VCOpt
	if b.checkStatus {
		vcOpts = append(vcOpts, tokenvalidator.WithStatusCheck(b.statusChecker))
	}

	return []tokenvalidator.TokenValidator{
		tokenvalidator.NewSiopValidator(opts, b.expectedSiop),
		tokenvalidator.NewSiopPresentationAttestationValidator(opts, b.expectedSiop),
		tokenvalidator.NewSelfIssuedValidator(),
		tokenvalidator.NewIDTokenValidator(opts, b.expectedIDToken),
		tokenvalidator.NewVerifiablePresentationValidator(opts, b.expectedVP),
		tokenvalidator.NewVerifiableCredentialValidator(opts, b.expectedVC, vcOpts...),
	}
}
