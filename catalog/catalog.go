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

package catalog

import (
	"maps"
	"slices"

	"github.com/tochemey/extendable/behavior"
	"github.com/tochemey/extendable/errors"
	"github.com/tochemey/extendable/internal/xsync"
)

// Catalog resolves behavior identifiers to their descriptors. A behavior
// type that is not in the catalog (or in one of its parents) does not
// exist as far as hosts are concerned.
type Catalog struct {
	parent      *Catalog
	descriptors *xsync.Map[string, behavior.Descriptor]
}

// New creates a Catalog. Lookups that miss fall back to parent when it is not nil.
func New(parent *Catalog) *Catalog {
	return &Catalog{
		parent:      parent,
		descriptors: xsync.NewMap[string, behavior.Descriptor](),
	}
}

// Register adds the behavior descriptor to the catalog. The identifier is
// normalized before use and the method tables are copied. The descriptor is rejected when it is invalid or
// when its identifier is already registered in this catalog.
func (c *Catalog) Register(descriptor behavior.Descriptor) error {
	descriptor.ID = behavior.NormalizeID(descriptor.ID)
	descriptor.Methods = slices.Clone(descriptor.Methods)
	descriptor.StaticMethods = maps.Clone(descriptor.StaticMethods)

	if err := descriptor.Validate(); err != nil {
		return errors.NewErrInvalidDescriptor(err)
	}

	if _, stored := c.descriptors.SetIfAbsent(descriptor.ID, descriptor); !stored {
		return errors.NewErrBehaviorAlreadyRegistered(descriptor.ID)
	}
	return nil
}

// MustRegister is like Register but panics when the descriptor is rejected.
// It is meant for package init functions.
func (c *Catalog) MustRegister(descriptors ...behavior.Descriptor) {
	for _, descriptor := range descriptors {
		if err := c.Register(descriptor); err != nil {
			panic(err)
		}
	}
}

// Deregister removes the behavior from this catalog. Hosts already extended
// with the behavior are not affected.
func (c *Catalog) Deregister(id string) {
	c.descriptors.Delete(behavior.NormalizeID(id))
}

// Lookup returns the descriptor registered under id, searching the parent
// catalogs when this one does not have it.
func (c *Catalog) Lookup(id string) (behavior.Descriptor, bool) {
	id = behavior.NormalizeID(id)
	for catalog := c; catalog != nil; catalog = catalog.parent {
		if descriptor, ok := catalog.descriptors.Get(id); ok {
			return descriptor, true
		}
	}
	return behavior.Descriptor{}, false
}

// Exists returns true when the behavior can be resolved
func (c *Catalog) Exists(id string) bool {
	_, ok := c.Lookup(id)
	return ok
}

// IDs returns the sorted identifiers registered in this catalog, parents excluded
func (c *Catalog) IDs() []string {
	ids := c.descriptors.Keys()
	slices.Sort(ids)
	return ids
}

// Parent returns the parent catalog
func (c *Catalog) Parent() *Catalog {
	return c.parent
}
