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

// StaticOption configures a StaticResolver
type StaticOption interface {
	// Apply sets the StaticOption value of a resolver.
	Apply(s *StaticResolver)
}

// enforce compilation error
var _ StaticOption = StaticOptionFunc(nil)

// StaticOptionFunc implements the StaticOption interface.
type StaticOptionFunc func(*StaticResolver)

func (f StaticOptionFunc) Apply(s *StaticResolver) {
	f(s)
}

// WithStaticLogger sets the resolver logger
func WithStaticLogger(logger log.Logger) StaticOption {
	return StaticOptionFunc(func(s *StaticResolver) {
		if logger != nil {
			s.logger = logger
		}
	})
}

// WithStaticCatalog sets the catalog used to resolve behavior identifiers
func WithStaticCatalog(c *catalog.Catalog) StaticOption {
	return StaticOptionFunc(func(s *StaticResolver) {
		if c != nil {
			s.catalog = c
		}
	})
}

// WithStaticMetric enables OpenTelemetry metrics using the global meter provider
func WithStaticMetric() StaticOption {
	return StaticOptionFunc(func(s *StaticResolver) {
		s.meter = metric.NewProvider().Meter()
	})
}

// WithStaticMeter enables OpenTelemetry metrics using the given meter
func WithStaticMeter(meter otelmetric.Meter) StaticOption {
	return StaticOptionFunc(func(s *StaticResolver) {
		if meter != nil {
			s.meter = meter
		}
	})
}
