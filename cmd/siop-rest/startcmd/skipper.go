/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// requestLogSkipper keeps health checks and scrapes out of the request log.
func requestLogSkipper(c echo.Context) bool {
	switch c.Path() {
	case healthCheckEndpoint, readinessEndpoint, metricsEndpoint:
		return true
	}

	if strings.HasPrefix(c.Path(), versionEndpoint) {
		return true
	}

	return echomw.DefaultSkipper(c)
}
