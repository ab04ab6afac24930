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

package extension

import (
	"reflect"
	"slices"

	"github.com/tochemey/extendable/internal/xsync"
)

// Callback runs at the end of the construction of a host registry
type callback func(host any, r *Registry) error

var callbacks = xsync.NewMap[reflect.Type, []callback]()

// Extend registers a function that runs at the end of New for every host of
// concrete type T, after the declared behaviors are attached. Callbacks run
// in registration order and may attach more behaviors with ExtendWith.
// A callback error aborts the host construction.
func Extend[T any](fn func(host T, r *Registry) error) {
	if fn == nil {
		return
	}

	hostType := reflect.TypeFor[T]()
	wrapped := func(host any, r *Registry) error {
		return fn(host.(T), r)
	}

	callbacks.Update(hostType, func(current []callback) []callback {
		return append(slices.Clone(current), wrapped)
	})
}

func runCallbacks(host any, r *Registry) error {
	fns, ok := callbacks.Get(reflect.TypeOf(host))
	if !ok {
		return nil
	}

	for _, fn := range fns {
		if err := fn(host, r); err != nil {
			return err
		}
	}
	return nil
}
