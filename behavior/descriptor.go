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

package behavior

import (
	"maps"
	"slices"

	"github.com/tochemey/extendable/internal/validation"
)

// Descriptor statically describes a behavior type: how to build it and
// which names it exposes. The factory is never part of the dispatchable
// surface.
type Descriptor struct {
	// ID is the fully qualified, dot separated behavior identifier
	ID string
	// New creates a behavior instance bound to a host
	New Factory
	// Methods lists the instance method names the behavior exposes
	Methods []string
	// StaticMethods holds the type-level callables of the behavior
	StaticMethods map[string]StaticMethod
}

// enforce compilation error
var _ validation.Validator = Descriptor{}

// ShortName returns the trailing component of the identifier
func (d Descriptor) ShortName() string {
	return ShortName(d.ID)
}

// StaticNames returns the sorted names of the static methods
func (d Descriptor) StaticNames() []string {
	return slices.Sorted(maps.Keys(d.StaticMethods))
}

// Validate checks the descriptor and returns every violation found
func (d Descriptor) Validate() error {
	chain := validation.New(validation.AllErrors()).
		AddValidator(validation.NewIdentifierValidator(d.ID)).
		AddAssertion(d.New != nil, "behavior factory is required").
		AddValidator(validation.NewUniqueValidator("method", d.Methods))

	for _, name := range d.Methods {
		chain.AddValidator(validation.NewMethodNameValidator(name))
	}

	for _, name := range d.StaticNames() {
		chain.AddValidator(validation.NewMethodNameValidator(name))
	}

	return chain.Validate()
}
