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
	"fmt"

	"go.uber.org/atomic"

	"github.com/tochemey/extendable/behavior"
	"github.com/tochemey/extendable/catalog"
)

const (
	flyableID      = "birds.Flyable"
	jibJibableID   = "birds.JibJibable"
	fireableID     = "weapons.Fireable"
	avianFlyableID = "avian.Flyable"
	ghostID        = "spooky.Ghost"
	brokenID       = "broken.Broken"
)

type flyable struct {
	behavior.MethodSet
	host any
}

func newFlyable(host any) (behavior.Behavior, error) {
	f := &flyable{host: host}
	f.MethodSet = behavior.MethodSet{
		"fly": func(args ...any) (any, error) {
			if len(args) == 0 {
				return fmt.Sprintf("%s is flying", behavior.TypeName(f.host)), nil
			}
			return fmt.Sprintf("%s is flying at %v", behavior.TypeName(f.host), args[0]), nil
		},
		"land": func(...any) (any, error) {
			return nil, fmt.Errorf("%s cannot land", behavior.TypeName(f.host))
		},
	}
	return f, nil
}

type jibJibable struct {
	behavior.MethodSet
}

func newJibJibable(any) (behavior.Behavior, error) {
	return &jibJibable{
		MethodSet: behavior.MethodSet{
			"sing": func(...any) (any, error) { return "jib jib", nil },
		},
	}, nil
}

func newFireable(any) (behavior.Behavior, error) {
	return behavior.MethodSet{
		"fire": func(args ...any) (any, error) { return len(args), nil },
	}, nil
}

func newAvianFlyable(any) (behavior.Behavior, error) {
	return behavior.MethodSet{
		"fly":  func(...any) (any, error) { return "avian flying", nil },
		"soar": func(...any) (any, error) { return "soaring", nil },
	}, nil
}

// testCatalog creates an isolated catalog holding the test behaviors
func testCatalog() *catalog.Catalog {
	c := catalog.New(nil)
	c.MustRegister(
		behavior.Descriptor{
			ID:      flyableID,
			New:     newFlyable,
			Methods: []string{"fly", "land"},
			StaticMethods: map[string]behavior.StaticMethod{
				"canFly": func(caller behavior.Caller, _ ...any) (any, error) {
					return caller.Name() + " can fly", nil
				},
				"species": func(behavior.Caller, ...any) (any, error) {
					return "flyable", nil
				},
			},
		},
		behavior.Descriptor{
			ID:      jibJibableID,
			New:     newJibJibable,
			Methods: []string{"sing"},
			StaticMethods: map[string]behavior.StaticMethod{
				"species": func(behavior.Caller, ...any) (any, error) {
					return "jibjibable", nil
				},
				"silent": nil,
			},
		},
		behavior.Descriptor{
			ID:      fireableID,
			New:     newFireable,
			Methods: []string{"fire"},
		},
		behavior.Descriptor{
			ID:      avianFlyableID,
			New:     newAvianFlyable,
			Methods: []string{"fly", "soar"},
		},
		behavior.Descriptor{
			ID: ghostID,
			New: func(any) (behavior.Behavior, error) {
				return behavior.MethodSet{}, nil
			},
			Methods: []string{"haunt"},
		},
		behavior.Descriptor{
			ID: brokenID,
			New: func(any) (behavior.Behavior, error) {
				return nil, fmt.Errorf("boom")
			},
			Methods: []string{"explode"},
		},
	)
	return c
}

type bird struct {
	Extendable
}

func (*bird) Implements() any {
	return "birds.Flyable, birds.JibJibable"
}

func (*bird) Chirp() string {
	return "chirp"
}

type ironMan struct {
	Extendable
}

func (*ironMan) Implements() any {
	return []Use{Required(flyableID), Required(fireableID)}
}

type softHost struct{}

func (softHost) Implements() any {
	return "@birds.Missing, birds.Flyable"
}

type taggedSoftHost struct{}

func (taggedSoftHost) Implements() any {
	return []Use{Optional("birds.Missing"), Required(jibJibableID)}
}

type strictHost struct{}

func (strictHost) Implements() any {
	return []string{"birds.Missing"}
}

type malformedHost struct{}

func (malformedHost) Implements() any {
	return 42
}

type duplicateHost struct{}

func (duplicateHost) Implements() any {
	return "birds.Flyable, birds/Flyable"
}

type plainHost struct{}

type ambiguousHost struct{}

func (ambiguousHost) Implements() any {
	return "birds.Flyable, avian.Flyable"
}

type hauntedHost struct{}

func (hauntedHost) Implements() any {
	return "spooky.Ghost"
}

type brokenHost struct{}

func (brokenHost) Implements() any {
	return "broken.Broken"
}

// countedHost counts how many times its declaration is read
type countedHost struct{}

var countedDeclarations = atomic.NewInt64(0)

func (countedHost) Implements() any {
	countedDeclarations.Inc()
	return "birds.Flyable, @birds.Missing, birds.JibJibable"
}

type pointerCountedHost struct{}

var pointerCountedDeclarations = atomic.NewInt64(0)

func (*pointerCountedHost) Implements() any {
	pointerCountedDeclarations.Inc()
	return []Use{Required(jibJibableID), Required(flyableID)}
}

type callbackHost struct {
	name string
}

// boundCallbackHost reaches its registry through the embedded Extendable
type boundCallbackHost struct {
	Extendable
}

// selfAwareHost declares a behavior whose factory queries the host
type selfAwareHost struct {
	Extendable
}

func (*selfAwareHost) Implements() any {
	return "birds.Flyable, self.Aware"
}

type failingCallbackHost struct{}
