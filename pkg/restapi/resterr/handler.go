/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"
)

var logger = log.New("rest-err")

type codedError interface {
	error
	Code() string
	StatusCode() int
}

func HTTPErrorHandler(err error, c echo.Context) {
	code, message := processError(err)
	logger.Errorc(c.Request().Context(), "request failed",
		log.WithURL(c.Request().RequestURI), log.WithHTTPStatus(code), log.WithError(err))
	sendResponse(c, code, message)
}

func sendResponse(c echo.Context, code int, message interface{}) {
	var err error
	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, message)
		}
		if err != nil {
			logger.Error("write http response", log.WithError(err))
		}
	}
}

func processError(err error) (int, interface{}) {
	var (
		httpErr *echo.HTTPError
		coded   codedError
	)

	switch {
	case errors.As(err, &httpErr):
		code, message := httpErr.Code, httpErr.Message
		if httpErr.Internal != nil {
			message = err.Error()
		}

		if strMsg, ok := message.(string); ok {
			message = map[string]interface{}{
				"message": strMsg,
			}
		}

		return code, message
	case errors.As(err, &coded):
		status := coded.StatusCode()
		if status == 0 {
			status = http.StatusBadRequest
		}

		return status, coded
	default:
		return http.StatusInternalServerError, map[string]interface{}{
			"code":    "generic-error",
			"message": err.Error(),
		}
	}
}
