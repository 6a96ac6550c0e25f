/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tokenvalidator_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trustbloc/siop-validator/pkg/doc/claimtoken"
	"github.com/trustbloc/siop-validator/pkg/internal/testutil"
	"github.com/trustbloc/siop-validator/pkg/service/validation"
	"github.com/trustbloc/siop-validator/pkg/service/wellknown/fetcher"
)

func newOptions(s *testutil.SiopScenario, opts ...validation.Opt) *validation.Options {
	return validation.NewOptions(&validation.Config{
		Resolver:             s.Resolver,
		ConfigurationFetcher: fetcher.NewService(http.DefaultClient),
	}, opts...)
}

func itemOf(t *testing.T, kind claimtoken.TokenKind, raw, id string) *validation.QueueItem {
	t.Helper()

	token, err := claimtoken.CreateAs(kind, raw, id)
	require.NoError(t, err)

	return &validation.QueueItem{Category: string(kind), Token: token}
}

func requireFailure(t *testing.T, resp validation.Response, code string, status int) {
	t.Helper()

	require.False(t, resp.Result)
	require.Equal(t, code, resp.Code, resp.DetailedError)
	require.Equal(t, status, resp.Status)
	require.Nil(t, resp.TokensToValidate)
}
