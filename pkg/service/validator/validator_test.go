/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package validator_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/siop-validator/pkg/doc/claimtoken"
	"github.com/trustbloc/siop-validator/pkg/internal/testutil"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr/validationerr"
	"github.com/trustbloc/siop-validator/pkg/service/tokenvalidator"
	"github.com/trustbloc/siop-validator/pkg/service/tokenvalidator/mocks"
	"github.com/trustbloc/siop-validator/pkg/service/validation"
	"github.com/trustbloc/siop-validator/pkg/service/validator"
	"github.com/trustbloc/siop-validator/pkg/service/wellknown/fetcher"
)

func newBuilder(s *testutil.SiopScenario, contractIssuers map[string][]string) *validator.Builder {
	return validator.NewBuilder().
		UseResolver(s.Resolver).
		UseConfigurationFetcher(fetcher.NewService(http.DefaultClient)).
		UseAudienceURL(testutil.RPAudience).
		UseTrustedIssuerConfigurationsForIDTokens(s.IDTokenIssuer.ConfigurationURL()).
		UseTrustedIssuersForVerifiableCredentials(contractIssuers)
}

func TestValidator_Siop(t *testing.T) {
	s := testutil.NewSiopScenario(t)
	siop := s.Siop(t)

	t.Run("success", func(t *testing.T) {
		v := newBuilder(s, map[string][]string{testutil.DrivingLicense: {testutil.IssuerDID}}).Build()

		resp := v.Validate(context.Background(), siop)
		require.True(t, resp.Result, resp.DetailedError)
		require.Equal(t, http.StatusOK, resp.Status)
		require.Nil(t, resp.TokensToValidate)

		result := resp.ValidationResult
		require.NotNil(t, result)
		require.Equal(t, testutil.HolderDID, result.DID)
		require.NotEmpty(t, result.SiopJti)
		require.Equal(t, testutil.DrivingLicense, result.SiopContractID)
		require.Equal(t, claimtoken.Siop, result.Siop.Kind)

		require.Equal(t, "jules", result.SelfIssued.DecodedToken["name"])

		require.Len(t, result.IDTokens, 1)
		require.Equal(t, "jules@example.com",
			result.IDTokens[s.IDTokenIssuer.ConfigurationURL()].DecodedToken["upn"])

		require.Contains(t, result.VerifiablePresentations, testutil.DrivingLicense)

		license := result.VerifiableCredentials[testutil.DrivingLicense]
		require.NotNil(t, license)
		require.Equal(t, "Jules", license.Claim("vc.credentialSubject.givenName").String())
	})

	t.Run("idempotent", func(t *testing.T) {
		v := newBuilder(s, map[string][]string{testutil.DrivingLicense: {testutil.IssuerDID}}).Build()

		first := v.Validate(context.Background(), siop)
		second := v.Validate(context.Background(), siop)

		require.True(t, first.Result, first.DetailedError)
		require.Equal(t, first.Result, second.Result)
		require.Equal(t, first.Status, second.Status)

		firstResult, err := json.Marshal(first.ValidationResult)
		require.NoError(t, err)

		secondResult, err := json.Marshal(second.ValidationResult)
		require.NoError(t, err)

		require.JSONEq(t, string(firstResult), string(secondResult))
	})

	t.Run("credential type without trusted issuers", func(t *testing.T) {
		v := newBuilder(s, map[string][]string{"someCredential": {testutil.IssuerDID}}).Build()

		resp := v.Validate(context.Background(), siop)
		require.False(t, resp.Result)
		require.Equal(t, http.StatusForbidden, resp.Status)
		require.Equal(t, string(validation.ErrVCContractIssuersMissing), resp.Code)
		require.Contains(t, resp.DetailedError, "Missing contractIssuers for 'DrivingLicense'")
		require.Nil(t, resp.ValidationResult)
	})

	t.Run("claim token", func(t *testing.T) {
		token, err := claimtoken.Create(siop)
		require.NoError(t, err)

		v := newBuilder(s, map[string][]string{testutil.DrivingLicense: {testutil.IssuerDID}}).Build()

		resp := v.Validate(context.Background(), token)
		require.True(t, resp.Result, resp.DetailedError)
		require.Same(t, token, resp.ValidationResult.Siop)
	})

	t.Run("status check enabled without checker", func(t *testing.T) {
		claims := s.CredentialClaims(testutil.DrivingLicense)
		claims["vc"].(map[string]interface{})["credentialStatus"] = map[string]interface{}{
			"id": "https://issuer.example.com/status/1",
		}

		withStatus := s.SiopWith(t, map[string]interface{}{
			"presentations": map[string]interface{}{
				testutil.DrivingLicense: s.VerifiablePresentation(t, s.Issuer.Sign(t, claims)),
			},
		})

		v := newBuilder(s, map[string][]string{testutil.DrivingLicense: {testutil.IssuerDID}}).
			EnableFeatureVerifiedCredentialsStatusCheck(true).
			Build()

		resp := v.Validate(context.Background(), withStatus)
		require.False(t, resp.Result)
		require.Equal(t, string(tokenvalidator.ErrVCNoStatusChecker), resp.Code)
	})
}

func TestValidator_VerifiablePresentation(t *testing.T) {
	s := testutil.NewSiopScenario(t)

	newValidator := func() *validator.Validator {
		return newBuilder(s, map[string][]string{testutil.DrivingLicense: {testutil.IssuerDID}}).
			UsePresentationAudience(testutil.HolderDID).
			Build()
	}

	t.Run("stand-alone presentation", func(t *testing.T) {
		token, err := claimtoken.Create(s.VerifiablePresentation(t, s.VerifiableCredential(t)))
		require.NoError(t, err)

		resp := newValidator().Validate(context.Background(), token)
		require.True(t, resp.Result, resp.DetailedError)
		require.Equal(t, testutil.HolderDID, resp.ValidationResult.DID)
		require.Contains(t, resp.ValidationResult.VerifiableCredentials, testutil.DrivingLicense)
		require.Nil(t, resp.ValidationResult.Siop)
	})

	t.Run("credential of another subject", func(t *testing.T) {
		claims := s.CredentialClaims(testutil.DrivingLicense)
		claims["sub"] = "did:example:victim"

		token, err := claimtoken.Create(s.VerifiablePresentation(t, s.Issuer.Sign(t, claims)))
		require.NoError(t, err)

		resp := newValidator().Validate(context.Background(), token)
		require.False(t, resp.Result)
		require.Equal(t, string(validation.ErrVCSubject), resp.Code)
		require.Equal(t, http.StatusForbidden, resp.Status)
		require.Equal(t, "Wrong or missing sub property in verifiableCredential. Expected 'did:example:holder'",
			resp.DetailedError)
		require.Nil(t, resp.ValidationResult)
	})

	t.Run("presentation without credentials", func(t *testing.T) {
		token, err := claimtoken.Create(s.VerifiablePresentation(t))
		require.NoError(t, err)

		resp := newValidator().Validate(context.Background(), token)
		require.False(t, resp.Result)
		require.Equal(t, http.StatusForbidden, resp.Status)
		require.Equal(t, "No verifiable credential", resp.DetailedError)
		require.Nil(t, resp.ValidationResult)
	})
}

func TestValidator_Errors(t *testing.T) {
	s := testutil.NewSiopScenario(t)

	t.Run("wrong token type", func(t *testing.T) {
		v := validator.NewBuilder().Build()

		for _, token := range []interface{}{42, nil, (*claimtoken.ClaimToken)(nil), map[string]interface{}{}} {
			resp := v.Validate(context.Background(), token)
			require.False(t, resp.Result)
			require.Equal(t, string(validator.ErrWrongTokenType), resp.Code)
			require.Equal(t, "Wrong token type. Expected string or ClaimToken", resp.DetailedError)
		}
	})

	t.Run("token cannot be decoded", func(t *testing.T) {
		resp := validator.NewBuilder().Build().Validate(context.Background(), "abc")
		require.False(t, resp.Result)
		require.Equal(t, string(validator.ErrClaimToken), resp.Code)
		require.Equal(t, http.StatusBadRequest, resp.Status)
		require.Contains(t, resp.DetailedError, "could not decode the token")
	})

	t.Run("unsupported kind", func(t *testing.T) {
		resp := validator.NewBuilder().Build().Validate(context.Background(),
			&claimtoken.ClaimToken{Kind: "accessToken"})
		require.False(t, resp.Result)
		require.Equal(t, string(validator.ErrUnsupportedKind), resp.Code)
		require.Equal(t, "accessToken is not supported", resp.DetailedError)
	})

	t.Run("no validators", func(t *testing.T) {
		v := newBuilder(s, map[string][]string{testutil.DrivingLicense: {testutil.IssuerDID}}).
			UseValidators().
			Build()
		require.Empty(t, v.Kinds())

		resp := v.Validate(context.Background(), s.Siop(t))
		require.False(t, resp.Result)
		require.Equal(t, http.StatusForbidden, resp.Status)
		require.Equal(t, string(validator.ErrNoTokenValidator), resp.Code)
		require.Equal(t, "siop does not have a TokenValidator", resp.DetailedError)
		require.Nil(t, resp.ValidationResult)
	})

	t.Run("nested kind without validator", func(t *testing.T) {
		v := validator.NewBuilder().
			UseValidators(tokenvalidator.NewSiopValidator(
				validation.NewOptions(&validation.Config{Resolver: s.Resolver}),
				validation.ExpectedSiop{Audience: testutil.RPAudience},
			)).
			Build()

		resp := v.Validate(context.Background(), s.Siop(t))
		require.False(t, resp.Result)
		require.Equal(t, string(validator.ErrNoTokenValidator), resp.Code)
		require.Equal(t, "selfIssued does not have a TokenValidator", resp.DetailedError)
		require.Nil(t, resp.ValidationResult)
	})

	t.Run("too many tokens", func(t *testing.T) {
		safeguards := validation.DefaultSafeguards()
		safeguards.MaxNumberOfTokens = 2

		v := newBuilder(s, map[string][]string{testutil.DrivingLicense: {testutil.IssuerDID}}).
			UseSafeguards(safeguards).
			Build()

		resp := v.Validate(context.Background(), s.Siop(t))
		require.False(t, resp.Result)
		require.Equal(t, string(validator.ErrTooManyTokens), resp.Code)
	})
}

func TestValidator_UseValidators(t *testing.T) {
	s := testutil.NewSiopScenario(t)

	token, err := claimtoken.NewDecoded(claimtoken.SelfIssued, map[string]interface{}{"name": "jules"}, "")
	require.NoError(t, err)

	t.Run("last registration wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		first := mocks.NewMockTokenValidator(ctrl)
		first.EXPECT().IsType().Return(claimtoken.SelfIssued).AnyTimes()

		second := mocks.NewMockTokenValidator(ctrl)
		second.EXPECT().IsType().Return(claimtoken.SelfIssued).AnyTimes()
		second.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any(), "").Return(validation.Success())

		v := validator.NewBuilder().UseValidators(first, second).Build()
		require.Equal(t, []claimtoken.TokenKind{claimtoken.SelfIssued}, v.Kinds())

		resp := v.Validate(context.Background(), token)
		require.True(t, resp.Result, resp.DetailedError)
		require.Same(t, token, resp.ValidationResult.SelfIssued)
	})

	t.Run("fail fast", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		siop := mocks.NewMockTokenValidator(ctrl)
		siop.EXPECT().IsType().Return(claimtoken.Siop).AnyTimes()
		siop.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any(), "").DoAndReturn(
			func(_ context.Context, queue *validation.Queue, _ *validation.QueueItem, _ string) validation.Response {
				queue.Enqueue("first", token)
				queue.Enqueue("second", token)

				resp := validation.Success()
				resp.DID = testutil.HolderDID

				return resp
			})

		selfIssued := mocks.NewMockTokenValidator(ctrl)
		selfIssued.EXPECT().IsType().Return(claimtoken.SelfIssued).AnyTimes()
		selfIssued.EXPECT().Validate(gomock.Any(), gomock.Any(), gomock.Any(), testutil.HolderDID).
			Return(validation.Success().Fail(validationerr.Forbidden("SITV99", errors.New("bad claims")))).
			Times(1)

		v := validator.NewBuilder().UseValidators(siop, selfIssued).Build()

		resp := v.Validate(context.Background(), s.Siop(t))
		require.False(t, resp.Result)
		require.Equal(t, "SITV99", resp.Code)
		require.Equal(t, "bad claims", resp.DetailedError)
		require.Nil(t, resp.ValidationResult)
	})
}
