/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package validator_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/siop-validator/pkg/internal/testutil"
	profileapi "github.com/trustbloc/siop-validator/pkg/profile"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr/validationerr"
	"github.com/trustbloc/siop-validator/pkg/restapi/v1/util"
	"github.com/trustbloc/siop-validator/pkg/restapi/v1/validator"
	"github.com/trustbloc/siop-validator/pkg/service/validation"
	siopvalidator "github.com/trustbloc/siop-validator/pkg/service/validator"
	"github.com/trustbloc/siop-validator/pkg/service/wellknown/fetcher"
)

func newServer(t *testing.T, config *validator.Config) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = resterr.HTTPErrorHandler

	require.NotNil(t, validator.NewController(e, config))

	return e
}

func post(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *resterr.RFCErrorJSON[validationerr.ErrorCode] {
	t.Helper()

	var e resterr.RFCErrorJSON[validationerr.ErrorCode]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))

	return &e
}

func TestNewController(t *testing.T) {
	r := NewMockRouter(gomock.NewController(t))

	r.EXPECT().POST("/siop/validate", gomock.Any()).Return(nil)
	r.EXPECT().POST("/profiles/:profileID/siop/validate", gomock.Any()).Return(nil)

	require.NotNil(t, validator.NewController(r, &validator.Config{}))
}

func TestController_PostValidate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		v := NewMockSiopValidator(gomock.NewController(t))

		resp := validation.Success()
		resp.ValidationResult = &validation.Result{DID: testutil.HolderDID}

		v.EXPECT().Validate(gomock.Any(), "abc").Return(&resp)

		e := newServer(t, &validator.Config{
			Validators:     map[profileapi.ID]validator.SiopValidator{"p1": v},
			DefaultProfile: "p1",
		})

		rec := post(e, "/siop/validate", `{"token":"abc"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"result":true,"status":200,"validationResult":{"did":"did:example:holder"}}`,
			rec.Body.String())
	})

	t.Run("status mirrors the validation failure", func(t *testing.T) {
		v := NewMockSiopValidator(gomock.NewController(t))

		resp := validation.Success().Fail(validationerr.Forbidden("VCVA03", errors.New("missing")))

		v.EXPECT().Validate(gomock.Any(), "abc").Return(&resp)

		e := newServer(t, &validator.Config{
			Validators:     map[profileapi.ID]validator.SiopValidator{"p1": v},
			DefaultProfile: "p1",
		})

		rec := post(e, "/siop/validate", `{"token":"abc"}`)
		require.Equal(t, http.StatusForbidden, rec.Code)

		var body validation.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.False(t, body.Result)
		require.Equal(t, "VCVA03", body.Code)
		require.Equal(t, "missing", body.DetailedError)
	})

	t.Run("missing status", func(t *testing.T) {
		v := NewMockSiopValidator(gomock.NewController(t))
		v.EXPECT().Validate(gomock.Any(), "abc").Return(&validation.Response{})

		e := newServer(t, &validator.Config{
			Validators:     map[profileapi.ID]validator.SiopValidator{"p1": v},
			DefaultProfile: "p1",
		})

		rec := post(e, "/siop/validate", `{"token":"abc"}`)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("profile path", func(t *testing.T) {
		def := NewMockSiopValidator(gomock.NewController(t))
		other := NewMockSiopValidator(gomock.NewController(t))

		resp := validation.Success()
		other.EXPECT().Validate(gomock.Any(), "abc").Return(&resp)

		e := newServer(t, &validator.Config{
			Validators:     map[profileapi.ID]validator.SiopValidator{"p1": def, "p2": other},
			DefaultProfile: "p1",
		})

		rec := post(e, "/profiles/p2/siop/validate", `{"token":"abc"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("request errors", func(t *testing.T) {
		e := newServer(t, &validator.Config{
			Validators:     map[profileapi.ID]validator.SiopValidator{},
			DefaultProfile: "p1",
		})

		tests := []struct {
			name   string
			path   string
			body   string
			status int
			code   validationerr.ErrorCode
		}{
			{
				name:   "invalid body",
				path:   "/siop/validate",
				body:   `{`,
				status: http.StatusBadRequest,
				code:   util.ErrInvalidRequestBody,
			},
			{
				name:   "missing token",
				path:   "/siop/validate",
				body:   `{}`,
				status: http.StatusBadRequest,
				code:   validator.ErrMissingToken,
			},
			{
				name:   "unknown default profile",
				path:   "/siop/validate",
				body:   `{"token":"abc"}`,
				status: http.StatusNotFound,
				code:   validator.ErrProfileNotFound,
			},
			{
				name:   "unknown profile",
				path:   "/profiles/unknown/siop/validate",
				body:   `{"token":"abc"}`,
				status: http.StatusNotFound,
				code:   validator.ErrProfileNotFound,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := post(e, tt.path, tt.body)
				require.Equal(t, tt.status, rec.Code)
				require.Equal(t, tt.code, decodeError(t, rec).ErrorCode)
			})
		}
	})
}

func TestController_PostValidate_Siop(t *testing.T) {
	s := testutil.NewSiopScenario(t)

	v := siopvalidator.NewBuilder().
		UseResolver(s.Resolver).
		UseConfigurationFetcher(fetcher.NewService(http.DefaultClient)).
		UseAudienceURL(testutil.RPAudience).
		UseTrustedIssuerConfigurationsForIDTokens(s.IDTokenIssuer.ConfigurationURL()).
		UseTrustedIssuersForVerifiableCredentials(map[string][]string{testutil.DrivingLicense: {testutil.IssuerDID}}).
		Build()

	e := newServer(t, &validator.Config{
		Validators:     map[profileapi.ID]validator.SiopValidator{"default": v},
		DefaultProfile: "default",
	})

	t.Run("valid siop", func(t *testing.T) {
		rec := post(e, "/siop/validate", `{"token":"`+s.Siop(t)+`"}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var body validation.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.True(t, body.Result)
		require.Equal(t, testutil.HolderDID, body.ValidationResult.DID)
		require.Equal(t, testutil.DrivingLicense, body.ValidationResult.SiopContractID)
	})

	t.Run("malformed token", func(t *testing.T) {
		rec := post(e, "/siop/validate", `{"token":"abc"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body validation.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.False(t, body.Result)
		require.Equal(t, string(siopvalidator.ErrClaimToken), body.Code)
	})
}
