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

package testkit

import (
	"testing"

	"github.com/tochemey/extendable/behavior"
	"github.com/tochemey/extendable/catalog"
	"github.com/tochemey/extendable/extension"
	"github.com/tochemey/extendable/log"
)

// TestKit helps test hosts and behaviors in isolation. Every TestKit owns
// its catalog, so behaviors registered through it do not leak into
// catalog.Default.
type TestKit struct {
	kt      *testing.T
	logger  log.Logger
	parent  *catalog.Catalog
	catalog *catalog.Catalog
}

// New creates an instance of TestKit
func New(t *testing.T, opts ...Option) *TestKit {
	testkit := &TestKit{
		kt:     t,
		logger: log.DiscardLogger,
	}

	for _, opt := range opts {
		opt.Apply(testkit)
	}

	testkit.catalog = catalog.New(testkit.parent)
	return testkit
}

// Catalog returns the testkit catalog
func (k *TestKit) Catalog() *catalog.Catalog {
	return k.catalog
}

// Logger returns the testkit logger
func (k *TestKit) Logger() log.Logger {
	return k.logger
}

// Register adds the behavior descriptors to the testkit catalog
func (k *TestKit) Register(descriptors ...behavior.Descriptor) {
	for _, descriptor := range descriptors {
		if err := k.catalog.Register(descriptor); err != nil {
			k.kt.Fatal(err.Error())
		}
	}
}

// NewRecorder registers a recording behavior under the given identifier
// exposing the given methods
func (k *TestKit) NewRecorder(id string, methods ...string) Recorder {
	recorder := newRecorder(k.kt, behavior.NormalizeID(id), methods)
	k.Register(behavior.Descriptor{
		ID:      id,
		New:     recorder.attach,
		Methods: methods,
	})
	return recorder
}

// Extend creates the registry of the given host against the testkit catalog
func (k *TestKit) Extend(host any, opts ...extension.Option) *extension.Registry {
	opts = append([]extension.Option{
		extension.WithCatalog(k.catalog),
		extension.WithLogger(k.logger),
	}, opts...)

	registry, err := extension.New(host, opts...)
	if err != nil {
		k.kt.Fatal(err.Error())
	}
	return registry
}

// NewStaticResolver creates a StaticResolver bound to the testkit catalog
func (k *TestKit) NewStaticResolver() *extension.StaticResolver {
	return extension.NewStaticResolver(
		extension.WithStaticCatalog(k.catalog),
		extension.WithStaticLogger(k.logger),
	)
}
