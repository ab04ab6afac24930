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

	goset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	otelmetric "go.opentelemetry.io/otel/metric"

	"github.com/tochemey/extendable/behavior"
	"github.com/tochemey/extendable/catalog"
	"github.com/tochemey/extendable/errors"
	"github.com/tochemey/extendable/internal/metric"
	"github.com/tochemey/extendable/log"
)

// Registry holds the behaviors attached to a single host instance and
// routes the calls the host does not define to them.
//
// A Registry is populated while the host is constructed and is safe for
// concurrent use afterwards.
type Registry struct {
	mu sync.RWMutex

	id        uuid.UUID
	host      any
	hostType  string
	hostValue reflect.Value

	catalog *catalog.Catalog
	parent  Dispatcher
	logger  log.Logger
	meter   otelmetric.Meter
	metrics *metric.ExtensionMetric

	// order keeps the attachment order of the behaviors
	order []string
	// extensions maps a behavior identifier to its instance
	extensions map[string]behavior.Behavior
	// methods maps a method name to the identifier of the behavior serving it
	methods    map[string]string
	shortNames goset.Set[string]
}

// New creates the Registry of the given host, attaches the behaviors the
// host declares through Implementer in declaration order and runs the
// construction callbacks registered for the host type.
//
// A host implementing Holder, for instance by embedding Extendable, receives
// the registry before any behavior is attached, so that factories and
// callbacks can reach the registry through the host. Any failure aborts the
// construction, unbinds the registry from the host and returns no registry.
func New(host any, opts ...Option) (*Registry, error) {
	if host == nil {
		return nil, errors.ErrInvalidHost
	}

	value := reflect.ValueOf(host)
	if value.Kind() == reflect.Pointer && value.IsNil() {
		return nil, fmt.Errorf("host=(%s) %w", behavior.TypeName(host), errors.ErrInvalidHost)
	}

	r := &Registry{
		id:         uuid.New(),
		host:       host,
		hostType:   behavior.TypeName(host),
		hostValue:  value,
		catalog:    catalog.Default,
		logger:     log.DiscardLogger,
		extensions: make(map[string]behavior.Behavior),
		methods:    make(map[string]string),
		shortNames: goset.NewThreadUnsafeSet[string](),
	}

	for _, opt := range opts {
		opt.Apply(r)
	}

	if r.meter != nil {
		metrics, err := metric.NewExtensionMetric(r.meter)
		if err != nil {
			return nil, err
		}
		r.metrics = metrics
	}

	r.logger = r.logger.With("host", r.hostType, "registry", r.id.String())

	holder, bound := host.(Holder)
	if bound {
		holder.SetRegistry(r)
	}

	if err := r.extend(host); err != nil {
		if bound {
			holder.SetRegistry(nil)
		}
		return nil, err
	}

	r.logger.Debugf("host extended with %d behavior(s)", len(r.order))
	return r, nil
}

// extend attaches the declared behaviors and runs the construction callbacks
func (r *Registry) extend(host any) error {
	declaration := declarationOf(host)
	uses, err := ParseImplements(declaration)
	if err != nil {
		return errors.NewErrInvalidImplementDeclaration(r.hostType, declaration)
	}

	ctx := context.Background()
	for _, use := range uses {
		if err := r.attach(ctx, use); err != nil {
			return err
		}
	}

	return runCallbacks(host, r)
}

// ID returns the registry unique identifier
func (r *Registry) ID() string {
	return r.id.String()
}

// Host returns the host the registry belongs to
func (r *Registry) Host() any {
	return r.host
}

// HostType returns the concrete type name of the host
func (r *Registry) HostType() string {
	return r.hostType
}

// ExtendWith attaches the given behavior to the host. A leading "@" marks
// the behavior optional: it is silently skipped when the catalog cannot
// resolve it. Attaching a behavior twice fails with
// errors.ErrDuplicateExtension. An empty identifier is a no-op.
func (r *Registry) ExtendWith(id string) error {
	return r.attach(context.Background(), ParseUse(id))
}

// attach creates the behavior instance and indexes its methods.
// The factory runs without holding the lock so that it can query the host.
func (r *Registry) attach(ctx context.Context, use Use) error {
	if use.ID == "" {
		return nil
	}

	if r.IsExtendedWith(use.ID) {
		return errors.NewErrDuplicateExtension(r.hostType, use.ID)
	}

	descriptor, ok := r.catalog.Lookup(use.ID)
	if !ok {
		if use.Optional {
			r.logger.Debugf("optional behavior (%s) is not registered, skipping", use.ID)
			return nil
		}
		return errors.NewErrBehaviorNotFound(use.ID)
	}

	instance, err := descriptor.New(r.host)
	if err != nil {
		return errors.NewErrBehaviorInitFailure(descriptor.ID, err)
	}

	if instance == nil {
		return errors.NewErrBehaviorInitFailure(descriptor.ID, fmt.Errorf("factory returned a nil behavior"))
	}

	r.mu.Lock()
	if _, exists := r.extensions[descriptor.ID]; exists {
		r.mu.Unlock()
		return errors.NewErrDuplicateExtension(r.hostType, descriptor.ID)
	}

	r.extensions[descriptor.ID] = instance
	r.order = append(r.order, descriptor.ID)
	for _, name := range descriptor.Methods {
		r.methods[name] = descriptor.ID
	}

	shortName := descriptor.ShortName()
	ambiguous := !r.shortNames.Add(shortName)
	r.mu.Unlock()

	if ambiguous {
		r.logger.Warnf("short name (%s) is shared by several behaviors, lookups return the first attached", shortName)
	}

	if r.metrics != nil {
		r.metrics.RecordAttachment(ctx, r.hostType, descriptor.ID)
	}

	r.logger.Debugf("behavior (%s) attached", descriptor.ID)
	return nil
}
