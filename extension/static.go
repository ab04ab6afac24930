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
	"fmt"
	"reflect"
	"sync"

	otelmetric "go.opentelemetry.io/otel/metric"
	"go.uber.org/atomic"
	"golang.org/x/sync/singleflight"

	"github.com/tochemey/extendable/behavior"
	"github.com/tochemey/extendable/catalog"
	"github.com/tochemey/extendable/errors"
	"github.com/tochemey/extendable/internal/metric"
	"github.com/tochemey/extendable/internal/xsync"
	"github.com/tochemey/extendable/log"
)

// staticTable maps a static method name to the identifier of the behavior serving it
type staticTable map[string]string

// StaticResolver routes type-level calls to the static methods of the
// behaviors a host type declares by default.
//
// The table of a host type is built on its first call from the zero value's
// Implements declaration and is never rebuilt afterwards.
type StaticResolver struct {
	catalog *catalog.Catalog
	logger  log.Logger
	meter   otelmetric.Meter
	metrics *metric.ExtensionMetric

	tables *xsync.Map[reflect.Type, staticTable]
	group  singleflight.Group
	builds *atomic.Int64
}

var defaultStaticResolver = sync.OnceValue(func() *StaticResolver {
	return NewStaticResolver()
})

// DefaultStaticResolver returns the process-wide StaticResolver used by CallStatic
func DefaultStaticResolver() *StaticResolver {
	return defaultStaticResolver()
}

// CallStatic invokes the static method with the given name on host type T
// using the process-wide resolver.
func CallStatic[T any](name string, args ...any) (any, error) {
	return DefaultStaticResolver().Call(reflect.TypeFor[T](), name, args...)
}

// NewStaticResolver creates a StaticResolver
func NewStaticResolver(opts ...StaticOption) *StaticResolver {
	resolver := &StaticResolver{
		catalog: catalog.Default,
		logger:  log.DiscardLogger,
		tables:  xsync.NewMap[reflect.Type, staticTable](),
		builds:  atomic.NewInt64(0),
	}

	for _, opt := range opts {
		opt.Apply(resolver)
	}

	if resolver.meter != nil {
		metrics, err := metric.NewExtensionMetric(resolver.meter)
		if err != nil {
			resolver.logger.Warnf("failed to create static resolver metrics: %v", err)
		} else {
			resolver.metrics = metrics
		}
	}

	return resolver
}

// Call invokes the static method with the given name on the given host type.
// The static method receives the host type as its caller.
func (s *StaticResolver) Call(hostType reflect.Type, name string, args ...any) (any, error) {
	if hostType == nil {
		return nil, errors.ErrInvalidHost
	}

	table, err := s.table(hostType)
	if err != nil {
		return nil, err
	}

	typeName := behavior.TypeName(hostType)
	if method, ok := s.resolve(table, name); ok {
		if s.metrics != nil {
			s.metrics.RecordDispatch(context.Background(), typeName, table[name], true)
		}
		return method(behavior.Caller{Type: hostType}, args...)
	}

	if s.metrics != nil {
		s.metrics.RecordUndefined(context.Background(), typeName, name, true)
	}
	s.logger.Debugf("host=(%s) call to undefined static method (%s)", typeName, name)
	return nil, errors.NewUndefinedStaticMethodError(typeName, name)
}

// HasStaticMethod returns true when a call to the static method on the
// host type would reach a behavior
func (s *StaticResolver) HasStaticMethod(hostType reflect.Type, name string) bool {
	if hostType == nil {
		return false
	}
	table, err := s.table(hostType)
	if err != nil {
		return false
	}
	_, ok := s.resolve(table, name)
	return ok
}

// resolve returns the static method serving name, looked up in the catalog
func (s *StaticResolver) resolve(table staticTable, name string) (behavior.StaticMethod, bool) {
	id, ok := table[name]
	if !ok {
		return nil, false
	}

	descriptor, ok := s.catalog.Lookup(id)
	if !ok {
		return nil, false
	}

	method := descriptor.StaticMethods[name]
	return method, method != nil
}

// CacheBuilds returns the number of static tables built so far
func (s *StaticResolver) CacheBuilds() int64 {
	return s.builds.Load()
}

// table returns the static table of the host type, building it once
func (s *StaticResolver) table(hostType reflect.Type) (staticTable, error) {
	if table, ok := s.tables.Get(hostType); ok {
		return table, nil
	}

	key := fmt.Sprintf("%p", hostType)
	value, err, _ := s.group.Do(key, func() (any, error) {
		if table, ok := s.tables.Get(hostType); ok {
			return table, nil
		}

		table, err := s.build(hostType)
		if err != nil {
			return nil, err
		}

		s.tables.Set(hostType, table)
		s.builds.Inc()
		if s.metrics != nil {
			s.metrics.RecordCacheBuild(context.Background(), behavior.TypeName(hostType))
		}
		return table, nil
	})

	if err != nil {
		return nil, err
	}
	return value.(staticTable), nil
}

// build reads the default declaration of the host type. Optional markers
// are ignored and identifiers the catalog cannot resolve are skipped.
func (s *StaticResolver) build(hostType reflect.Type) (staticTable, error) {
	typeName := behavior.TypeName(hostType)
	declaration := defaultDeclaration(hostType)
	uses, err := ParseImplements(declaration)
	if err != nil {
		return nil, errors.NewErrInvalidImplementDeclaration(typeName, declaration)
	}

	table := make(staticTable)
	for _, use := range uses {
		descriptor, ok := s.catalog.Lookup(use.ID)
		if !ok {
			s.logger.Debugf("host=(%s) behavior (%s) is not registered, skipping", typeName, use.ID)
			continue
		}

		for _, name := range descriptor.StaticNames() {
			table[name] = descriptor.ID
		}
	}

	s.logger.Debugf("host=(%s) static table built with %d method(s)", typeName, len(table))
	return table, nil
}

// defaultDeclaration returns the declaration of the zero value of the host type
func defaultDeclaration(hostType reflect.Type) any {
	if hostType.Kind() == reflect.Pointer {
		return declarationOf(reflect.New(hostType.Elem()).Interface())
	}

	// the declaration may be defined on the pointer receiver
	pointer := reflect.New(hostType)
	if declaration := declarationOf(pointer.Elem().Interface()); declaration != nil {
		return declaration
	}
	return declarationOf(pointer.Interface())
}
