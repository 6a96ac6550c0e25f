/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package validationerr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trustbloc/siop-validator/pkg/restapi/resterr"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr/validationerr"
)

func TestConstructors(t *testing.T) {
	e := validationerr.Newf("VPTV01", http.StatusForbidden, "No verifiable credential")
	require.Equal(t, "VPTV01", e.Code())
	require.Equal(t, http.StatusForbidden, e.HTTPStatus)
	require.Equal(t, "No verifiable credential", e.Message())

	require.Equal(t, http.StatusBadRequest, validationerr.BadRequest("CLTK01", errors.New("x")).HTTPStatus)
	require.Equal(t, http.StatusForbidden, validationerr.Forbidden("VCVA03", errors.New("x")).HTTPStatus)
}

func TestAs(t *testing.T) {
	t.Run("wrapped validation error", func(t *testing.T) {
		src := validationerr.Forbidden("VCVA03", errors.New("missing")).
			WithComponent(resterr.VCValidatorComponent)

		e := validationerr.As(fmt.Errorf("outer: %w", src), "VTOR05", http.StatusInternalServerError)
		require.Same(t, src, e)
	})

	t.Run("foreign error", func(t *testing.T) {
		e := validationerr.As(errors.New("boom"), "VTOR05", http.StatusInternalServerError)
		require.Equal(t, "VTOR05", e.Code())
		require.Equal(t, http.StatusInternalServerError, e.HTTPStatus)
		require.Equal(t, "boom", e.Message())
	})
}
