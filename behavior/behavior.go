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
	"reflect"
)

// Method is a callable bound to a behavior instance. Arguments are passed
// through unchanged and the result is returned to the caller as is.
type Method func(args ...any) (any, error)

// Behavior is an object attached to a host at runtime. It exposes its
// callables by name; a name listed in the behavior Descriptor but not
// returned here is treated as not invokable and the call falls through.
type Behavior interface {
	// Method returns the callable bound to name
	Method(name string) (Method, bool)
}

// Factory creates a behavior instance for the given host. The host is a
// non-owning back-reference the behavior can use to call back into it.
type Factory func(host any) (Behavior, error)

// MethodSet is a ready-made Behavior backed by a map of callables.
type MethodSet map[string]Method

// enforce compilation error
var _ Behavior = MethodSet(nil)

// Method implements Behavior
func (m MethodSet) Method(name string) (Method, bool) {
	method, ok := m[name]
	if !ok || method == nil {
		return nil, false
	}
	return method, true
}

// TypeName returns the concrete type name of v, dereferencing pointers,
// e.g. "birds.Bird" for a *birds.Bird value.
func TypeName(v any) string {
	switch rtype := v.(type) {
	case nil:
		return "<nil>"
	case reflect.Type:
		return typeName(rtype)
	default:
		return typeName(reflect.TypeOf(v))
	}
}

func typeName(rtype reflect.Type) string {
	for rtype.Kind() == reflect.Pointer {
		rtype = rtype.Elem()
	}
	return rtype.String()
}
