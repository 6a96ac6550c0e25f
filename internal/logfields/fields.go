/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log Fields.
const (
	FieldCategory     = "category"
	FieldDID          = "did"
	FieldErrorCode    = "errorCode"
	FieldHTTPStatus   = "httpStatus"
	FieldKeyID        = "keyID"
	FieldProfileID    = "profileID"
	FieldQueueLength  = "queueLength"
	FieldSuite        = "suite"
	FieldTokenKind    = "tokenKind"
	FieldUserLogLevel = "userLogLevel"
	FieldValidators   = "validators"
	FieldResult       = "result"
)

// WithCategory sets the queue category field.
func WithCategory(value string) zap.Field {
	return zap.String(FieldCategory, value)
}

// WithDID sets the DID field.
func WithDID(value string) zap.Field {
	return zap.String(FieldDID, value)
}

// WithErrorCode sets the validation error code field.
func WithErrorCode(value string) zap.Field {
	return zap.String(FieldErrorCode, value)
}

// WithHTTPStatus sets the HTTP status field.
func WithHTTPStatus(value int) zap.Field {
	return zap.Int(FieldHTTPStatus, value)
}

// WithKeyID sets the key ID field.
func WithKeyID(value string) zap.Field {
	return zap.String(FieldKeyID, value)
}

// WithProfileID sets the ProfileID field.
func WithProfileID(value string) zap.Field {
	return zap.String(FieldProfileID, value)
}

// WithQueueLength sets the queue length field.
func WithQueueLength(value int) zap.Field {
	return zap.Int(FieldQueueLength, value)
}

// WithSuite sets the verification method suite field.
func WithSuite(value string) zap.Field {
	return zap.String(FieldSuite, value)
}

// WithTokenKind sets the token kind field.
func WithTokenKind(value string) zap.Field {
	return zap.String(FieldTokenKind, value)
}

// WithUserLogLevel sets the UserLogLevel field.
func WithUserLogLevel(value string) zap.Field {
	return zap.String(FieldUserLogLevel, value)
}

// WithValidators sets the registered validators field.
func WithValidators(value []string) zap.Field {
	return zap.Strings(FieldValidators, value)
}

// WithResult sets an arbitrary result object.
func WithResult(value interface{}) zap.Field {
	return zap.Inline(NewObjectMarshaller(FieldResult, value))
}

// ObjectMarshaller uses reflection to marshal an object's fields.
type ObjectMarshaller struct {
	key string
	obj interface{}
}

// NewObjectMarshaller returns a new ObjectMarshaller.
func NewObjectMarshaller(key string, obj interface{}) *ObjectMarshaller {
	return &ObjectMarshaller{key: key, obj: obj}
}

// MarshalLogObject marshals the object's fields.
func (m *ObjectMarshaller) MarshalLogObject(e zapcore.ObjectEncoder) error {
	return e.AddReflected(m.key, m.obj)
}
