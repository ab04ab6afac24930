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

// Package extension composes behaviors into host objects at runtime.
//
// A host opts in by implementing Implementer and embedding Extendable,
// which receives the host registry before any behavior is attached:
//
//	type Bird struct {
//		extension.Extendable
//	}
//
//	func (*Bird) Implements() any { return "birds.Flyable, birds.JibJibable" }
//
//	func NewBird() (*Bird, error) {
//		bird := new(Bird)
//		if _, err := extension.New(bird); err != nil {
//			return nil, err
//		}
//		return bird, nil
//	}
//
// Behavior factories and construction callbacks can therefore call back
// into the host, e.g. host.ExtendWith or host.HasMethod.
//
// Calls that the host does not define itself are routed to the attached
// behaviors through Registry.Call; type-level calls go through a
// StaticResolver, or CallStatic for the process-wide one.
package extension
