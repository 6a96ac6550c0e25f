/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination controller_mocks_test.go -package validator_test -source=controller.go -mock_names SiopValidator=MockSiopValidator,router=MockRouter

package validator

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/siop-validator/internal/logfields"
	profileapi "github.com/trustbloc/siop-validator/pkg/profile"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr"
	"github.com/trustbloc/siop-validator/pkg/restapi/resterr/validationerr"
	"github.com/trustbloc/siop-validator/pkg/restapi/v1/util"
	"github.com/trustbloc/siop-validator/pkg/service/validation"
)

var logger = log.New("rest-validator")

const (
	ErrMissingToken    validationerr.ErrorCode = "REST02"
	ErrProfileNotFound validationerr.ErrorCode = "REST03"

	profileIDPathParam = "profileID"
)

// SiopValidator validates a token against the expectations of one profile.
type SiopValidator interface {
	Validate(ctx context.Context, token interface{}) *validation.Response
}

type router interface {
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// ValidateRequest is the body of a validation request.
type ValidateRequest struct {
	Token string `json:"token"`
}

// Config holds the validators of the active profiles.
type Config struct {
	Validators     map[profileapi.ID]SiopValidator
	DefaultProfile profileapi.ID
}

// Controller for the SIOP validation API.
type Controller struct {
	validators     map[profileapi.ID]SiopValidator
	defaultProfile profileapi.ID
}

// NewController registers the validation routes.
func NewController(router router, config *Config) *Controller {
	c := &Controller{
		validators:     config.Validators,
		defaultProfile: config.DefaultProfile,
	}

	router.POST("/siop/validate", func(ctx echo.Context) error {
		return c.PostValidate(ctx)
	})
	router.POST("/profiles/:"+profileIDPathParam+"/siop/validate", func(ctx echo.Context) error {
		return c.PostProfileValidate(ctx, ctx.Param(profileIDPathParam))
	})

	return c
}

// PostValidate validates a token with the default profile.
// POST /siop/validate.
func (c *Controller) PostValidate(ctx echo.Context) error {
	return c.validate(ctx, c.defaultProfile)
}

// PostProfileValidate validates a token with the given profile.
// POST /profiles/{profileID}/siop/validate.
func (c *Controller) PostProfileValidate(ctx echo.Context, profileID profileapi.ID) error {
	return c.validate(ctx, profileID)
}

func (c *Controller) validate(ctx echo.Context, profileID profileapi.ID) error {
	var body ValidateRequest

	if err := util.ReadBody(ctx, &body); err != nil {
		return err
	}

	if body.Token == "" {
		return validationerr.BadRequest(ErrMissingToken, errors.New("token is required")).
			WithComponent(resterr.ValidationControllerComponent)
	}

	v, ok := c.validators[profileID]
	if !ok {
		return validationerr.New(ErrProfileNotFound, http.StatusNotFound,
			fmt.Errorf("%w: %s", profileapi.ErrProfileNotFound, profileID)).
			WithComponent(resterr.ProfileSvcComponent)
	}

	reqCtx := ctx.Request().Context()

	resp := v.Validate(reqCtx, body.Token)

	status := resp.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}

	logger.Debugc(reqCtx, "token validated",
		logfields.WithProfileID(profileID),
		logfields.WithHTTPStatus(status),
		logfields.WithErrorCode(resp.Code),
	)

	return util.WriteOutputWithCode(status, ctx)(resp, nil)
}
