/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package version

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

//go:generate mockgen -destination controller_mocks_test.go -package version_test -source=controller.go -mock_names router=MockRouter

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type Config struct {
	Version       string
	ServerVersion string
	// TokenKinds lists the token kinds registered per validation profile.
	TokenKinds map[string][]string
}

type Controller struct {
	version       string
	serverVersion string
	tokenKinds    []string
}

type versionResponse struct {
	Version    string   `json:"version"`
	TokenKinds []string `json:"tokenKinds,omitempty"`
}

type serverVersionResponse struct {
	Version string `json:"version"`
}

func NewController(router router, cfg Config) *Controller {
	kinds := lo.Uniq(lo.Flatten(lo.Values(cfg.TokenKinds)))
	sort.Strings(kinds)

	c := &Controller{
		version:       cfg.Version,
		serverVersion: cfg.ServerVersion,
		tokenKinds:    kinds,
	}

	router.GET("/version", func(ctx echo.Context) error {
		return c.Version(ctx)
	})

	router.GET("/version/system", func(ctx echo.Context) error {
		return c.ServerVersion(ctx)
	})

	return c
}

// Version returns the service version and the token kinds it validates.
func (c *Controller) Version(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, versionResponse{Version: c.version, TokenKinds: c.tokenKinds})
}

func (c *Controller) ServerVersion(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, serverVersionResponse{Version: c.serverVersion})
}
