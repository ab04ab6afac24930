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
	"context"

	"github.com/tochemey/extendable/behavior"
	"github.com/tochemey/extendable/errors"
)

// Dispatcher routes a named call with its arguments.
type Dispatcher interface {
	// Call invokes the method with the given name
	Call(name string, args ...any) (any, error)
}

// enforce compilation error
var (
	_ Dispatcher = (*Registry)(nil)
	_ Dispatcher = DispatcherFunc(nil)
)

// DispatcherFunc implements the Dispatcher interface.
type DispatcherFunc func(name string, args ...any) (any, error)

// Call invokes f
func (f DispatcherFunc) Call(name string, args ...any) (any, error) {
	return f(name, args...)
}

// Call invokes the method of the host's behaviors with the given name.
//
// The call is forwarded to the behavior that last registered the name and
// its result is returned unchanged. When no behavior can serve the call it
// goes to the parent dispatcher set with WithParent and, failing that,
// an errors.UndefinedMethodError is returned.
//
// The registry lock is not held while the behavior runs.
func (r *Registry) Call(name string, args ...any) (any, error) {
	var instance behavior.Behavior

	r.mu.RLock()
	id, ok := r.methods[name]
	if ok {
		instance = r.extensions[id]
	}
	r.mu.RUnlock()

	if instance != nil {
		if method, ok := instance.Method(name); ok && method != nil {
			if r.metrics != nil {
				r.metrics.RecordDispatch(context.Background(), r.hostType, id, false)
			}
			return method(args...)
		}
		r.logger.Debugf("method (%s) of behavior (%s) is not invokable", name, id)
	}

	if r.parent != nil {
		return r.parent.Call(name, args...)
	}

	if r.metrics != nil {
		r.metrics.RecordUndefined(context.Background(), r.hostType, name, false)
	}
	r.logger.Debugf("call to undefined method (%s)", name)
	return nil, errors.NewUndefinedMethodError(r.hostType, name)
}
