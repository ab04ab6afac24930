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
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tochemey/extendable/behavior"
	"github.com/tochemey/extendable/catalog"
	"github.com/tochemey/extendable/errors"
	"github.com/tochemey/extendable/internal/metric"
	"github.com/tochemey/extendable/log"
)

func newBird(t *testing.T, opts ...Option) *bird {
	t.Helper()
	host := new(bird)
	registry, err := New(host, append([]Option{WithCatalog(testCatalog())}, opts...)...)
	require.NoError(t, err)
	require.Same(t, registry, host.Registry)
	return host
}

func TestNew(t *testing.T) {
	t.Run("With bird host", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		host := newBird(t)

		assert.True(t, host.IsExtendedWith(flyableID))
		assert.True(t, host.IsExtendedWith("birds/JibJibable"))
		assert.False(t, host.IsExtendedWith(fireableID))
		assert.Equal(t, []string{flyableID, jibJibableID}, host.Extensions())
		assert.Equal(t, []string{"fly", "land", "sing"}, host.Methods())
		assert.Equal(t, "extension.bird", host.HostType())
		assert.Same(t, host, host.Host())
		assert.NotEmpty(t, host.ID())

		out, err := host.Call("fly")
		require.NoError(t, err)
		assert.Equal(t, "extension.bird is flying", out)

		out, err = host.Call("fire")
		require.Error(t, err)
		assert.Nil(t, out)
		assert.ErrorIs(t, err, errors.ErrUndefinedMethod)
		assert.EqualError(t, err, "call to undefined method extension.bird::fire()")
	})
	t.Run("With iron man host", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		host := new(ironMan)
		registry, err := New(host, WithCatalog(testCatalog()))
		require.NoError(t, err)
		require.Same(t, registry, host.Registry)

		assert.True(t, host.IsExtendedWith(flyableID))
		assert.True(t, host.IsExtendedWith(fireableID))
		assert.False(t, host.IsExtendedWith(jibJibableID))

		out, err := host.Call("fire", "left", "right")
		require.NoError(t, err)
		assert.Equal(t, 2, out)

		_, err = host.Call("sing")
		assert.ErrorIs(t, err, errors.ErrUndefinedMethod)
	})
	t.Run("With soft attachment", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		registry, err := New(softHost{}, WithCatalog(testCatalog()))
		require.NoError(t, err)
		assert.False(t, registry.IsExtendedWith("birds.Missing"))
		assert.True(t, registry.IsExtendedWith(flyableID))
		assert.Equal(t, []string{flyableID}, registry.Extensions())
	})
	t.Run("With tagged soft attachment", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		registry, err := New(taggedSoftHost{}, WithCatalog(testCatalog()))
		require.NoError(t, err)
		assert.False(t, registry.IsExtendedWith("birds.Missing"))
		assert.True(t, registry.IsExtendedWith(jibJibableID))
	})
	t.Run("With unresolvable required behavior", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		registry, err := New(strictHost{}, WithCatalog(testCatalog()))
		require.Error(t, err)
		assert.Nil(t, registry)
		assert.ErrorIs(t, err, errors.ErrBehaviorNotFound)
	})
	t.Run("With malformed declaration", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		registry, err := New(malformedHost{}, WithCatalog(testCatalog()))
		require.Error(t, err)
		assert.Nil(t, registry)
		assert.ErrorIs(t, err, errors.ErrInvalidImplementDeclaration)
		assert.EqualError(t, err, "host=(extension.malformedHost) implement=(int) invalid implement declaration")
	})
	t.Run("With duplicate declaration", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		registry, err := New(duplicateHost{}, WithCatalog(testCatalog()))
		require.Error(t, err)
		assert.Nil(t, registry)
		assert.ErrorIs(t, err, errors.ErrDuplicateExtension)
	})
	t.Run("With failing factory", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		registry, err := New(brokenHost{}, WithCatalog(testCatalog()))
		require.Error(t, err)
		assert.Nil(t, registry)
		assert.ErrorIs(t, err, errors.ErrBehaviorInitFailure)
		assert.ErrorContains(t, err, "boom")
	})
	t.Run("With factory returning nil", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		c := catalog.New(nil)
		c.MustRegister(behavior.Descriptor{
			ID:  "nil.Behavior",
			New: func(any) (behavior.Behavior, error) { return nil, nil },
		})
		registry, err := New(plainHost{}, WithCatalog(c))
		require.NoError(t, err)
		err = registry.ExtendWith("nil.Behavior")
		assert.ErrorIs(t, err, errors.ErrBehaviorInitFailure)
		assert.False(t, registry.IsExtendedWith("nil.Behavior"))
	})
	t.Run("With host without declaration", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		registry, err := New(plainHost{}, WithCatalog(testCatalog()))
		require.NoError(t, err)
		assert.Empty(t, registry.Extensions())
		assert.Empty(t, registry.Methods())
	})
	t.Run("With nil host", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		registry, err := New(nil)
		assert.ErrorIs(t, err, errors.ErrInvalidHost)
		assert.Nil(t, registry)

		var host *bird
		registry, err = New(host)
		assert.ErrorIs(t, err, errors.ErrInvalidHost)
		assert.Nil(t, registry)
	})
	t.Run("With parent catalog", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		registry, err := New(new(bird), WithCatalog(catalog.New(testCatalog())))
		require.NoError(t, err)
		assert.True(t, registry.IsExtendedWith(flyableID))
	})
	t.Run("With metrics", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		registry, err := New(new(bird), WithCatalog(testCatalog()), WithMetric())
		require.NoError(t, err)
		_, err = registry.Call("sing")
		require.NoError(t, err)
		_, err = registry.Call("unknown")
		require.Error(t, err)

		meter := metric.NewProvider().Meter()
		registry, err = New(new(bird), WithCatalog(testCatalog()), WithMeter(meter))
		require.NoError(t, err)
		assert.NotNil(t, registry.metrics)
	})
}

func TestNewBindsRegistryBeforeAttaching(t *testing.T) {
	defer goleak.VerifyNone(t)
	c := testCatalog()
	c.MustRegister(behavior.Descriptor{
		ID: "self.Aware",
		New: func(host any) (behavior.Behavior, error) {
			aware := host.(*selfAwareHost)
			if !aware.HasMethod("fly") || !aware.IsExtendedWith(flyableID) {
				return nil, fmt.Errorf("flyable is not attached yet")
			}
			return behavior.MethodSet{
				"whoami": func(...any) (any, error) { return aware.HostType(), nil },
			}, nil
		},
		Methods: []string{"whoami"},
	})

	host := new(selfAwareHost)
	registry, err := New(host, WithCatalog(c))
	require.NoError(t, err)
	require.Same(t, registry, host.Registry)

	out, err := host.Call("whoami")
	require.NoError(t, err)
	assert.Equal(t, "extension.selfAwareHost", out)
}

func TestSharedCatalogAcrossInstances(t *testing.T) {
	defer goleak.VerifyNone(t)
	c := testCatalog()

	first := new(bird)
	_, err := New(first, WithCatalog(c))
	require.NoError(t, err)

	second := new(bird)
	_, err = New(second, WithCatalog(c))
	require.NoError(t, err)

	// attaching the same behavior on another instance of the same type never conflicts
	require.NoError(t, first.ExtendWith(fireableID))
	require.NoError(t, second.ExtendWith(fireableID))

	assert.NotSame(t, first.Extension(flyableID), second.Extension(flyableID))

	require.NoError(t, first.ExtendWith(avianFlyableID))
	assert.True(t, first.IsExtendedWith(avianFlyableID))
	assert.False(t, second.IsExtendedWith(avianFlyableID))
	assert.Equal(t, []string{flyableID, jibJibableID, fireableID, avianFlyableID}, first.Extensions())
	assert.Equal(t, []string{flyableID, jibJibableID, fireableID}, second.Extensions())

	out, err := first.Call("fly")
	require.NoError(t, err)
	assert.Equal(t, "avian flying", out)

	out, err = second.Call("fly")
	require.NoError(t, err)
	assert.Equal(t, "extension.bird is flying", out)
}

func TestExtendWith(t *testing.T) {
	t.Run("With happy path", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		host := newBird(t)
		require.NoError(t, host.ExtendWith(`weapons\Fireable`))
		assert.True(t, host.IsExtendedWith(fireableID))
		assert.Equal(t, []string{flyableID, jibJibableID, fireableID}, host.Extensions())

		out, err := host.Call("fire")
		require.NoError(t, err)
		assert.Equal(t, 0, out)
	})
	t.Run("With duplicate attachment", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		host := newBird(t)
		err := host.ExtendWith(flyableID)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrDuplicateExtension)
		assert.EqualError(t, err, "host=(extension.bird) behavior=(birds.Flyable) host has already been extended with behavior")

		// optional attachments are not exempted
		err = host.ExtendWith("@birds.Flyable")
		assert.ErrorIs(t, err, errors.ErrDuplicateExtension)
		assert.Equal(t, []string{flyableID, jibJibableID}, host.Extensions())
	})
	t.Run("With optional unresolvable behavior", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		host := newBird(t)
		require.NoError(t, host.ExtendWith("@weapons.Missing"))
		assert.False(t, host.IsExtendedWith("weapons.Missing"))
	})
	t.Run("With empty identifier", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		host := newBird(t)
		require.NoError(t, host.ExtendWith(""))
		require.NoError(t, host.ExtendWith("  "))
		require.NoError(t, host.ExtendWith("@"))
		assert.Equal(t, []string{flyableID, jibJibableID}, host.Extensions())
	})
	t.Run("With required unresolvable behavior", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		host := newBird(t)
		err := host.ExtendWith("weapons.Missing")
		assert.ErrorIs(t, err, errors.ErrBehaviorNotFound)
	})
	t.Run("With later behavior overriding methods", func(t *testing.T) {
		defer goleak.VerifyNone(t)
		host := newBird(t)
		require.NoError(t, host.ExtendWith(avianFlyableID))

		out, err := host.Call("fly")
		require.NoError(t, err)
		assert.Equal(t, "avian flying", out)

		out, err = host.Call("sing")
		require.NoError(t, err)
		assert.Equal(t, "jib jib", out)
	})
}

func TestAmbiguousShortName(t *testing.T) {
	defer goleak.VerifyNone(t)
	buffer := new(bytes.Buffer)
	logger := log.NewZap(log.WarningLevel, buffer)

	registry, err := New(ambiguousHost{}, WithCatalog(testCatalog()), WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buffer.String(), "short name (Flyable) is shared by several behaviors")

	first := registry.AsExtension("Flyable")
	require.NotNil(t, first)
	assert.Same(t, registry.Extension(flyableID), first)

	// the lookup is stable
	for range 10 {
		assert.Same(t, first, registry.AsExtension("Flyable"))
	}
}
