/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package testutil

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-jose/go-jose/v3"
	"github.com/stretchr/testify/require"
)

const (
	configurationPath = "/.well-known/openid-configuration"
	keysPath          = "/keys"
	issuerKeyID       = "issuer-key-1"
)

// OIDCIssuer is an id token issuer publishing its configuration and key set over HTTP.
type OIDCIssuer struct {
	Server     *httptest.Server
	PrivateKey ed25519.PrivateKey
	KeyID      string
}

// NewOIDCIssuer starts an issuer. The server is closed when the test ends.
func NewOIDCIssuer(t *testing.T) *OIDCIssuer {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	issuer := &OIDCIssuer{PrivateKey: priv, KeyID: issuerKeyID}

	mux := http.NewServeMux()
	mux.HandleFunc(configurationPath, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"issuer":   issuer.Issuer(),
			"jwks_uri": issuer.Server.URL + keysPath,
		})
	})
	mux.HandleFunc(keysPath, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(jose.JSONWebKeySet{
			Keys: []jose.JSONWebKey{{Key: pub, KeyID: issuerKeyID, Algorithm: string(jose.EdDSA), Use: "sig"}},
		})
	})

	issuer.Server = httptest.NewServer(mux)
	t.Cleanup(issuer.Server.Close)

	return issuer
}

// Issuer returns the iss value of tokens signed by the issuer.
func (i *OIDCIssuer) Issuer() string {
	return i.Server.URL
}

// ConfigurationURL returns the URL of the OIDC configuration.
func (i *OIDCIssuer) ConfigurationURL() string {
	return i.Server.URL + configurationPath
}

// Sign returns claims signed by the issuer key.
func (i *OIDCIssuer) Sign(t *testing.T, claims interface{}) string {
	t.Helper()

	return SignedClaimsJWT(t, jose.SigningKey{Algorithm: jose.EdDSA, Key: i.PrivateKey}, i.KeyID, claims)
}
