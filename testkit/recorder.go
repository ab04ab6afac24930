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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/atomic"

	"github.com/tochemey/extendable/behavior"
	"github.com/tochemey/extendable/internal/xsync"
)

// Recorder is a behavior that records the calls it serves. It helps
// assert that a host routes its calls as expected.
type Recorder interface {
	behavior.Behavior
	// ID returns the behavior identifier the recorder is registered under
	ID() string
	// Hosts returns the hosts the recorder is attached to, in attachment order
	Hosts() []any
	// Stub sets the result returned when the method is called
	Stub(method string, out any, err error)
	// Calls returns the number of times the method was called
	Calls(method string) int64
	// LastArgs returns the arguments of the last call to the method
	LastArgs(method string) []any
	// ExpectCalled asserts that the method was called the given number of times
	ExpectCalled(method string, times int64)
	// ExpectNotCalled asserts that the method was never called
	ExpectNotCalled(method string)
}

type stub struct {
	out any
	err error
}

type recorder struct {
	pt       *testing.T
	id       string
	methods  []string
	hosts    *xsync.Map[int, any]
	attached *atomic.Int64
	calls    *xsync.Map[string, *atomic.Int64]
	args     *xsync.Map[string, []any]
	stubs    *xsync.Map[string, stub]
}

// enforce compilation error
var _ Recorder = (*recorder)(nil)

func newRecorder(t *testing.T, id string, methods []string) *recorder {
	r := &recorder{
		pt:       t,
		id:       id,
		methods:  slices.Clone(methods),
		hosts:    xsync.NewMap[int, any](),
		attached: atomic.NewInt64(0),
		calls:    xsync.NewMap[string, *atomic.Int64](),
		args:     xsync.NewMap[string, []any](),
		stubs:    xsync.NewMap[string, stub](),
	}

	for _, method := range methods {
		r.calls.Set(method, atomic.NewInt64(0))
	}
	return r
}

// attach is the recorder factory
func (r *recorder) attach(host any) (behavior.Behavior, error) {
	index := r.attached.Inc()
	r.hosts.Set(int(index), host)
	return r, nil
}

func (r *recorder) Method(name string) (behavior.Method, bool) {
	counter, ok := r.calls.Get(name)
	if !ok {
		return nil, false
	}

	return func(args ...any) (any, error) {
		counter.Inc()
		r.args.Set(name, slices.Clone(args))
		if stubbed, ok := r.stubs.Get(name); ok {
			return stubbed.out, stubbed.err
		}
		return nil, nil
	}, true
}

func (r *recorder) ID() string {
	return r.id
}

func (r *recorder) Hosts() []any {
	keys := r.hosts.Keys()
	slices.Sort(keys)
	hosts := make([]any, 0, len(keys))
	for _, key := range keys {
		host, _ := r.hosts.Get(key)
		hosts = append(hosts, host)
	}
	return hosts
}

func (r *recorder) Stub(method string, out any, err error) {
	r.stubs.Set(method, stub{out: out, err: err})
}

func (r *recorder) Calls(method string) int64 {
	if counter, ok := r.calls.Get(method); ok {
		return counter.Load()
	}
	return 0
}

func (r *recorder) LastArgs(method string) []any {
	args, _ := r.args.Get(method)
	return args
}

func (r *recorder) ExpectCalled(method string, times int64) {
	assert.Equalf(r.pt, times, r.Calls(method), "behavior=(%s) method=(%s) call count", r.id, method)
}

func (r *recorder) ExpectNotCalled(method string) {
	assert.Zerof(r.pt, r.Calls(method), "behavior=(%s) method=(%s) was called", r.id, method)
}
