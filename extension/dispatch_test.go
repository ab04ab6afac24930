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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/tochemey/extendable/behavior"
	"github.com/tochemey/extendable/errors"
)

func TestCall(t *testing.T) {
	t.Run("With arguments", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		host := newBird(t)
		out, err := host.Call("fly", 100)
		require.NoError(t, err)
		assert.Equal(t, "extension.bird is flying at 100", out)
	})
	t.Run("With behavior error returned unchanged", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		host := newBird(t)
		out, err := host.Call("land")
		require.Error(t, err)
		assert.Nil(t, out)
		assert.EqualError(t, err, "extension.bird cannot land")
	})
	t.Run("With method names being case-sensitive", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		host := newBird(t)
		_, err := host.Call("Fly")
		assert.ErrorIs(t, err, errors.ErrUndefinedMethod)
	})
	t.Run("With registered but not invokable method", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		registry, err := New(hauntedHost{}, WithCatalog(testCatalog()))
		require.NoError(t, err)
		assert.True(t, registry.HasMethod("haunt"))

		_, err = registry.Call("haunt")
		require.Error(t, err)
		var undefined *errors.UndefinedMethodError
		require.ErrorAs(t, err, &undefined)
		assert.Equal(t, "extension.hauntedHost", undefined.Type)
		assert.Equal(t, "haunt", undefined.Method)
		assert.False(t, undefined.Static)
	})
	t.Run("With parent dispatcher", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		var forwarded []string
		parent := DispatcherFunc(func(name string, args ...any) (any, error) {
			forwarded = append(forwarded, name)
			return fmt.Sprintf("parent handled %s", name), nil
		})

		registry, err := New(hauntedHost{}, WithCatalog(testCatalog()), WithParent(parent))
		require.NoError(t, err)

		out, err := registry.Call("haunt")
		require.NoError(t, err)
		assert.Equal(t, "parent handled haunt", out)

		out, err = registry.Call("unknown")
		require.NoError(t, err)
		assert.Equal(t, "parent handled unknown", out)
		assert.Equal(t, []string{"haunt", "unknown"}, forwarded)
	})
	t.Run("With registry as parent", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		parent := newBird(t)
		registry, err := New(new(ironMan), WithCatalog(testCatalog()), WithParent(parent))
		require.NoError(t, err)

		out, err := registry.Call("sing")
		require.NoError(t, err)
		assert.Equal(t, "jib jib", out)

		_, err = registry.Call("unknown")
		assert.EqualError(t, err, "call to undefined method extension.bird::unknown()")
	})
	t.Run("With behavior calling back into the host", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		c := testCatalog()
		c.MustRegister(behavior.Descriptor{
			ID: "birds.Echo",
			New: func(host any) (behavior.Behavior, error) {
				return behavior.MethodSet{
					"echo": func(args ...any) (any, error) {
						return host.(*bird).Call("sing")
					},
				}, nil
			},
			Methods: []string{"echo"},
		})

		host := new(bird)
		_, err := New(host, WithCatalog(c))
		require.NoError(t, err)
		require.NoError(t, host.ExtendWith("birds.Echo"))

		out, err := host.Call("echo")
		require.NoError(t, err)
		assert.Equal(t, "jib jib", out)
	})
	t.Run("With concurrent calls", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		host := newBird(t)

		eg, _ := errgroup.WithContext(context.Background())
		for range 50 {
			eg.Go(func() error {
				out, err := host.Call("sing")
				if err != nil {
					return err
				}
				if out != "jib jib" {
					return fmt.Errorf("unexpected output %v", out)
				}
				if !host.HasMethod("fly") {
					return fmt.Errorf("fly is missing")
				}
				return nil
			})
		}
		require.NoError(t, eg.Wait())
	})
}
