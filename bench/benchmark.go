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

package bench

import (
	"github.com/tochemey/extendable/behavior"
	"github.com/tochemey/extendable/catalog"
	"github.com/tochemey/extendable/extension"
	"github.com/tochemey/extendable/log"
)

// Benchmarker is the host used by the dispatch benchmarks
type Benchmarker struct {
	extension.Extendable
}

func (*Benchmarker) Implements() any {
	return "bench.Counter, bench.Echo"
}

// NewCatalog creates the catalog holding the benchmark behaviors
func NewCatalog() *catalog.Catalog {
	c := catalog.New(nil)
	c.MustRegister(
		behavior.Descriptor{
			ID: "bench.Counter",
			New: func(any) (behavior.Behavior, error) {
				var count int
				return behavior.MethodSet{
					"increment": func(...any) (any, error) {
						count++
						return count, nil
					},
				}, nil
			},
			Methods: []string{"increment"},
			StaticMethods: map[string]behavior.StaticMethod{
				"kind": func(caller behavior.Caller, _ ...any) (any, error) {
					return caller.Name(), nil
				},
			},
		},
		behavior.Descriptor{
			ID: "bench.Echo",
			New: func(any) (behavior.Behavior, error) {
				return behavior.MethodSet{
					"echo": func(args ...any) (any, error) { return args, nil },
				}, nil
			},
			Methods: []string{"echo"},
		},
	)
	return c
}

// NewBenchmarker creates a Benchmarker extended against the given catalog
func NewBenchmarker(c *catalog.Catalog) (*Benchmarker, error) {
	host := new(Benchmarker)
	if _, err := extension.New(host,
		extension.WithCatalog(c),
		extension.WithLogger(log.DiscardLogger)); err != nil {
		return nil, err
	}
	return host, nil
}
