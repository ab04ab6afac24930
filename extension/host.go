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

// Holder is implemented by hosts that keep a reference to their Registry.
// New hands the registry to the host before attaching any behavior.
type Holder interface {
	// SetRegistry binds the registry to the host. A nil registry unbinds it.
	SetRegistry(r *Registry)
}

// Extendable is embedded by hosts to hold their Registry and expose its
// methods:
//
//	type Bird struct {
//		extension.Extendable
//	}
type Extendable struct {
	*Registry
}

// enforce compilation error
var _ Holder = (*Extendable)(nil)

// SetRegistry implements Holder
func (e *Extendable) SetRegistry(r *Registry) {
	e.Registry = r
}
