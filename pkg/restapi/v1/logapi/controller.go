/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logapi

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/siop-validator/internal/logfields"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr/validationerr"
)

//go:generate mockgen -destination controller_mocks_test.go -package logapi_test -source=controller.go -mock_names router=MockRouter

const (
	ErrInvalidLogSpec validationerr.ErrorCode = "REST04"

	logLevelsPath = "/loglevels"
)

var logger = log.New("logapi")

type Controller struct {
}

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type logLevelsResponse struct {
	DefaultLevel string `json:"defaultLevel"`
}

func NewController(
	router router,
) *Controller {
	c := &Controller{}

	router.GET(logLevelsPath, func(ctx echo.Context) error {
		return c.GetLogLevels(ctx)
	})

	router.POST(logLevelsPath, func(ctx echo.Context) error {
		return c.PostLogLevels(ctx)
	})

	return c
}

// GetLogLevels returns the default log level.
// (GET /loglevels).
func (c *Controller) GetLogLevels(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, logLevelsResponse{DefaultLevel: log.GetLevel("").String()})
}

// PostLogLevels updates log levels. The body is a spec of the form module1=level1:module2=level2:defaultLevel.
// (POST /loglevels).
func (c *Controller) PostLogLevels(ctx echo.Context) error {
	req := ctx.Request()

	logLevelBytes, err := io.ReadAll(req.Body)
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	logLevels := string(logLevelBytes)

	if err := log.SetSpec(logLevels); err != nil {
		return validationerr.BadRequest(ErrInvalidLogSpec, fmt.Errorf("failed to set log spec: %w", err)).
			WithComponent(resterr.ValidationControllerComponent)
	}

	logger.Info("log levels modified", logfields.WithUserLogLevel(logLevels))

	return ctx.NoContent(http.StatusOK)
}
