/*
 * MIT License
 *
 * Copyright (c) 2022-2026  Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidImplementDeclaration is returned when a host declares its behaviors with a value
	// that is neither a comma-delimited string nor an ordered list of identifiers.
	ErrInvalidImplementDeclaration = errors.New("invalid implement declaration")

	// ErrDuplicateExtension is returned when a behavior is attached twice to the same host instance.
	ErrDuplicateExtension = errors.New("host has already been extended with behavior")

	// ErrUndefinedMethod is returned when a call cannot be routed to the host nor to any of its behaviors.
	ErrUndefinedMethod = errors.New("call to undefined method")

	// ErrBehaviorNotFound is returned when a required behavior identifier cannot be resolved in the catalog.
	ErrBehaviorNotFound = errors.New("behavior type is not registered")

	// ErrBehaviorInitFailure is returned when a behavior factory fails to create the behavior instance.
	ErrBehaviorInitFailure = errors.New("failed to create behavior instance")

	// ErrInvalidDescriptor is returned when a behavior descriptor is rejected by the catalog.
	ErrInvalidDescriptor = errors.New("invalid behavior descriptor")

	// ErrBehaviorAlreadyRegistered is returned when a behavior identifier is registered twice in the same catalog.
	ErrBehaviorAlreadyRegistered = errors.New("behavior type is already registered")

	// ErrInvalidHost is returned when the host given to the registry is nil.
	ErrInvalidHost = errors.New("invalid host")
)

// NewErrInvalidImplementDeclaration formats an ErrInvalidImplementDeclaration for the given host type and value.
func NewErrInvalidImplementDeclaration(hostType string, value any) error {
	return fmt.Errorf("host=(%s) implement=(%T) %w", hostType, value, ErrInvalidImplementDeclaration)
}

// NewErrDuplicateExtension formats an ErrDuplicateExtension for the given host type and behavior.
func NewErrDuplicateExtension(hostType, behaviorID string) error {
	return fmt.Errorf("host=(%s) behavior=(%s) %w", hostType, behaviorID, ErrDuplicateExtension)
}

// NewErrBehaviorNotFound formats an ErrBehaviorNotFound with the given behavior identifier.
func NewErrBehaviorNotFound(behaviorID string) error {
	return fmt.Errorf("behavior=(%s) %w", behaviorID, ErrBehaviorNotFound)
}

// NewErrBehaviorInitFailure wraps the factory error with ErrBehaviorInitFailure.
func NewErrBehaviorInitFailure(behaviorID string, err error) error {
	return errors.Join(fmt.Errorf("behavior=(%s) %w", behaviorID, ErrBehaviorInitFailure), err)
}

// NewErrBehaviorAlreadyRegistered formats an ErrBehaviorAlreadyRegistered with the given behavior identifier.
func NewErrBehaviorAlreadyRegistered(behaviorID string) error {
	return fmt.Errorf("behavior=(%s) %w", behaviorID, ErrBehaviorAlreadyRegistered)
}

// NewErrInvalidDescriptor wraps the descriptor violations with ErrInvalidDescriptor.
func NewErrInvalidDescriptor(err error) error {
	return errors.Join(ErrInvalidDescriptor, err)
}

// UndefinedMethodError is returned when neither the host nor any attached
// behavior can serve a call.
type UndefinedMethodError struct {
	// Type is the concrete host type name
	Type string
	// Method is the requested method name
	Method string
	// Static is true when the call was made at the type level
	Static bool
}

// enforce compilation error
var _ error = (*UndefinedMethodError)(nil)

// NewUndefinedMethodError creates an instance of UndefinedMethodError for an instance call
func NewUndefinedMethodError(hostType, method string) *UndefinedMethodError {
	return &UndefinedMethodError{Type: hostType, Method: method}
}

// NewUndefinedStaticMethodError creates an instance of UndefinedMethodError for a type-level call
func NewUndefinedStaticMethodError(hostType, method string) *UndefinedMethodError {
	return &UndefinedMethodError{Type: hostType, Method: method, Static: true}
}

// Error implements the standard error interface
func (e *UndefinedMethodError) Error() string {
	if e.Static {
		return fmt.Sprintf("call to undefined static method %s::%s()", e.Type, e.Method)
	}
	return fmt.Sprintf("call to undefined method %s::%s()", e.Type, e.Method)
}

// Unwrap returns ErrUndefinedMethod so that callers can use errors.Is
func (e *UndefinedMethodError) Unwrap() error {
	return ErrUndefinedMethod
}
