/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthcheck

import (
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/labstack/echo/v4"

	"github.com/trustbloc/siop-validator/pkg/observability/health/healthutil"
)

const (
	healthCheckPath = "/healthcheck"
	defaultTimeout  = 5 * time.Second
)

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

type Config struct {
	Checks  []health.Check
	Timeout time.Duration
}

// Controller for health check API.
type Controller struct {
	handler http.Handler
}

// NewController registers GET /healthcheck on the router. The endpoint reports "up" with
// 200 OK when every dependency check passes and "down" with 503 otherwise.
func NewController(r router, config *Config) *Controller {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	responseTimes := healthutil.NewResponseTimes()

	opts := []health.CheckerOption{
		health.WithTimeout(timeout),
		health.WithInterceptors(healthutil.ResponseTimeInterceptor(responseTimes)),
	}

	for _, check := range config.Checks {
		opts = append(opts, health.WithCheck(check))
	}

	c := &Controller{
		handler: health.NewHandler(
			health.NewChecker(opts...),
			health.WithResultWriter(healthutil.NewJSONResultWriter(responseTimes)),
		),
	}

	r.GET(healthCheckPath, c.GetHealthcheck)

	return c
}

// GetHealthcheck returns the health check status.
// GET /healthcheck.
func (c *Controller) GetHealthcheck(ctx echo.Context) error {
	c.handler.ServeHTTP(ctx.Response(), ctx.Request())

	return nil
}
