/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package util_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/siop-validator/pkg/restapi/resterr/validationerr"
	"github.com/trustbloc/siop-validator/pkg/restapi/v1/util"
)

type request struct {
	Token string `json:"token"`
}

func newContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestReadBody(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctx, _ := newContext(`{"token":"abc"}`)

		var r request
		require.NoError(t, util.ReadBody(ctx, &r))
		require.Equal(t, "abc", r.Token)
	})

	t.Run("invalid json", func(t *testing.T) {
		ctx, _ := newContext(`{`)

		var r request
		err := util.ReadBody(ctx, &r)

		var e *validationerr.Error
		require.ErrorAs(t, err, &e)
		require.Equal(t, string(util.ErrInvalidRequestBody), e.Code())
		require.Equal(t, http.StatusBadRequest, e.StatusCode())
	})
}

func TestWriteOutput(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctx, rec := newContext("")

		require.NoError(t, util.WriteOutputWithCode(http.StatusForbidden, ctx)(request{Token: "abc"}, nil))
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.JSONEq(t, `{"token":"abc"}`, rec.Body.String())
	})

	t.Run("error", func(t *testing.T) {
		ctx, _ := newContext("")

		require.EqualError(t, util.WriteOutput(ctx)(nil, errors.New("failed")), "failed")
	})
}
