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

package validation

import (
	"fmt"
	"regexp"

	goset "github.com/deckarep/golang-set/v2"
)

const maxIdentifierLength = 255

var (
	// a dotted sequence of Go-like identifiers, e.g. app.behaviors.Flyable
	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)
	methodPattern     = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// NewIdentifierValidator validates a normalized behavior identifier
func NewIdentifierValidator(id string) Validator {
	return New(FailFast()).
		AddValidator(NewEmptyStringValidator("behavior identifier", id)).
		AddAssertion(len(id) <= maxIdentifierLength, fmt.Sprintf("behavior identifier (%.32s...) exceeds %d characters", id, maxIdentifierLength)).
		AddValidator(NewPatternValidator(identifierPattern, id, fmt.Errorf("invalid behavior identifier (%s)", id)))
}

// NewMethodNameValidator validates a method name exposed by a behavior
func NewMethodNameValidator(name string) Validator {
	return NewPatternValidator(methodPattern, name, fmt.Errorf("invalid method name (%s)", name))
}

type uniqueValidator struct {
	kind   string
	values []string
}

var _ Validator = (*uniqueValidator)(nil)

// NewUniqueValidator fails when values holds the same entry more than once
func NewUniqueValidator(kind string, values []string) Validator {
	return &uniqueValidator{kind: kind, values: values}
}

// Validate executes the validation
func (x *uniqueValidator) Validate() error {
	seen := goset.NewThreadUnsafeSetWithSize[string](len(x.values))
	for _, value := range x.values {
		if !seen.Add(value) {
			return fmt.Errorf("duplicate %s (%s)", x.kind, value)
		}
	}
	return nil
}
