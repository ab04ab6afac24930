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
	"maps"
	"slices"

	"github.com/tochemey/extendable/behavior"
)

// IsExtendedWith returns true when the behavior is attached to the host
func (r *Registry) IsExtendedWith(id string) bool {
	id = behavior.NormalizeID(id)
	r.mu.RLock()
	_, ok := r.extensions[id]
	r.mu.RUnlock()
	return ok
}

// Extension returns the behavior instance attached under the given
// identifier or nil when there is none.
func (r *Registry) Extension(id string) behavior.Behavior {
	id = behavior.NormalizeID(id)
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.extensions[id]
}

// AsExtension returns the first attached behavior, in attachment order,
// whose identifier ends with the given short name. It returns nil when
// there is none.
func (r *Registry) AsExtension(shortName string) behavior.Behavior {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if behavior.ShortName(id) == shortName {
			return r.extensions[id]
		}
	}
	return nil
}

// As returns the first behavior attached under the given short name
// converted to B.
func As[B any](r *Registry, shortName string) (B, bool) {
	var zero B
	instance := r.AsExtension(shortName)
	if instance == nil {
		return zero, false
	}
	typed, ok := instance.(B)
	return typed, ok
}

// HasMethod returns true when the host defines an exported method with
// the given name or when an attached behavior exposes it.
func (r *Registry) HasMethod(name string) bool {
	if name == "" {
		return false
	}

	if r.hostValue.MethodByName(name).IsValid() {
		return true
	}

	r.mu.RLock()
	_, ok := r.methods[name]
	r.mu.RUnlock()
	return ok
}

// Extensions returns the identifiers of the attached behaviors in attachment order
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Methods returns the sorted names of the methods the attached behaviors expose
func (r *Registry) Methods() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.methods))
}
