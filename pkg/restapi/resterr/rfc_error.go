/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resterr

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// RFCError is an error carrying a stable code, the component that raised it and the HTTP status
// that mirrors its semantics.
type RFCError[T ~string] struct {
	ErrorCode      T
	ErrorComponent Component
	HTTPStatus     int
	Err            error
}

// RFCErrorJSON is a helper struct for JSON encoding/decoding of RFCError.
type RFCErrorJSON[T comparable] struct {
	ErrorCode       T         `json:"error"`
	Component       Component `json:"component,omitempty"`
	HTTPStatusField int       `json:"http_status,omitempty"`
	Description     string    `json:"error_description,omitempty"`
}

func (e *RFCError[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(&RFCErrorJSON[T]{
		ErrorCode:       e.ErrorCode,
		Component:       e.ErrorComponent,
		HTTPStatusField: e.HTTPStatus,
		Description:     e.Message(),
	})
}

func (e *RFCError[T]) UnmarshalJSON(b []byte) error {
	var data RFCErrorJSON[T]

	if err := json.Unmarshal(b, &data); err != nil {
		return err
	}

	e.ErrorCode = data.ErrorCode
	e.ErrorComponent = data.Component
	e.HTTPStatus = data.HTTPStatusField
	e.Err = errors.New(data.Description)

	return nil
}

func (e *RFCError[T]) Error() string {
	var description []string

	if e.ErrorComponent != "" {
		description = append(description, fmt.Sprintf("component: %s", e.ErrorComponent))
	}

	if e.HTTPStatus != 0 {
		description = append(description, fmt.Sprintf("http status: %d", e.HTTPStatus))
	}

	return fmt.Sprintf("%s[%s]: %s", e.ErrorCode, strings.Join(description, "; "), e.Message())
}

// Message returns the human-readable part of the error, without code and component decoration.
func (e *RFCError[T]) Message() string {
	if e.Err == nil {
		return ""
	}

	return e.Err.Error()
}

func (e *RFCError[T]) WithComponent(component Component) *RFCError[T] {
	e.ErrorComponent = component

	return e
}

func (e *RFCError[T]) WithHTTPStatusField(httpStatus int) *RFCError[T] {
	e.HTTPStatus = httpStatus

	return e
}

func (e *RFCError[T]) WithErrorPrefix(errPrefix string) *RFCError[T] {
	e.Err = fmt.Errorf("%s: %w", errPrefix, e.Err)

	return e
}

func (e *RFCError[T]) Code() string {
	return string(e.ErrorCode)
}

func (e *RFCError[T]) Component() string {
	return string(e.ErrorComponent)
}

func (e *RFCError[T]) StatusCode() int {
	return e.HTTPStatus
}

func (e *RFCError[T]) Unwrap() error {
	return e.Err
}
