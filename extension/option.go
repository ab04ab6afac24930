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
	otelmetric "go.opentelemetry.io/otel/metric"

	"github.com/tochemey/extendable/catalog"
	"github.com/tochemey/extendable/internal/metric"
	"github.com/tochemey/extendable/log"
)

// Option is the interface that applies a configuration option.
type Option interface {
	// Apply sets the Option value of a config.
	Apply(r *Registry)
}

// enforce compilation error
var _ Option = OptionFunc(nil)

// OptionFunc implements the Option interface.
type OptionFunc func(*Registry)

func (f OptionFunc) Apply(r *Registry) {
	f(r)
}

// WithLogger sets the registry logger
func WithLogger(logger log.Logger) Option {
	return OptionFunc(func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	})
}

// WithCatalog sets the catalog used to resolve behavior identifiers.
// catalog.Default is used when not set.
func WithCatalog(c *catalog.Catalog) Option {
	return OptionFunc(func(r *Registry) {
		if c != nil {
			r.catalog = c
		}
	})
}

// WithParent sets the dispatcher that receives the calls
// no attached behavior can serve
func WithParent(parent Dispatcher) Option {
	return OptionFunc(func(r *Registry) {
		r.parent = parent
	})
}

// WithMetric enables OpenTelemetry metrics using the global meter provider
func WithMetric() Option {
	return OptionFunc(func(r *Registry) {
		r.meter = metric.NewProvider().Meter()
	})
}

// WithMeter enables OpenTelemetry metrics using the given meter
func WithMeter(meter otelmetric.Meter) Option {
	return OptionFunc(func(r *Registry) {
		if meter != nil {
			r.meter = meter
		}
	})
}
