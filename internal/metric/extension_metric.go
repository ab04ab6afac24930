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

package metric

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	attachmentsCounterName = "extension.attachments.count"
	dispatchCounterName    = "extension.dispatch.count"
	undefinedCounterName   = "extension.dispatch.undefined.count"
	cacheBuildsCounterName = "extension.static.cache.builds"
	hostAttributeKey       = "host"
	behaviorAttributeKey   = "behavior"
	staticAttributeKey     = "static"
	methodAttributeKey     = "method"
)

// ExtensionMetric groups the OpenTelemetry instruments describing behavior
// composition:
//   - extension.attachments.count: behaviors attached to hosts
//   - extension.dispatch.count: calls forwarded to a behavior
//   - extension.dispatch.undefined.count: calls that ended with an undefined method
//   - extension.static.cache.builds: static method caches built
type ExtensionMetric struct {
	attachments metric.Int64Counter
	dispatches  metric.Int64Counter
	undefined   metric.Int64Counter
	cacheBuilds metric.Int64Counter
}

// NewExtensionMetric creates the instruments using the given Meter.
// It fails when any instrument cannot be created.
func NewExtensionMetric(meter metric.Meter) (*ExtensionMetric, error) {
	var instruments ExtensionMetric
	var err error

	if instruments.attachments, err = meter.Int64Counter(
		attachmentsCounterName,
		metric.WithDescription("Total number of behaviors attached to hosts"),
	); err != nil {
		return nil, err
	}

	if instruments.dispatches, err = meter.Int64Counter(
		dispatchCounterName,
		metric.WithDescription("Total number of calls forwarded to a behavior"),
	); err != nil {
		return nil, err
	}

	if instruments.undefined, err = meter.Int64Counter(
		undefinedCounterName,
		metric.WithDescription("Total number of calls to undefined methods"),
	); err != nil {
		return nil, err
	}

	if instruments.cacheBuilds, err = meter.Int64Counter(
		cacheBuildsCounterName,
		metric.WithDescription("Total number of static method caches built"),
	); err != nil {
		return nil, err
	}

	return &instruments, nil
}

// RecordAttachment records a behavior attached to a host
func (x *ExtensionMetric) RecordAttachment(ctx context.Context, hostType, behaviorID string) {
	x.attachments.Add(ctx, 1, metric.WithAttributes(
		attribute.String(hostAttributeKey, hostType),
		attribute.String(behaviorAttributeKey, behaviorID)))
}

// RecordDispatch records a call forwarded to a behavior
func (x *ExtensionMetric) RecordDispatch(ctx context.Context, hostType, behaviorID string, static bool) {
	x.dispatches.Add(ctx, 1, metric.WithAttributes(
		attribute.String(hostAttributeKey, hostType),
		attribute.String(behaviorAttributeKey, behaviorID),
		attribute.Bool(staticAttributeKey, static)))
}

// RecordUndefined records a call that could not be routed
func (x *ExtensionMetric) RecordUndefined(ctx context.Context, hostType, method string, static bool) {
	x.undefined.Add(ctx, 1, metric.WithAttributes(
		attribute.String(hostAttributeKey, hostType),
		attribute.String(methodAttributeKey, method),
		attribute.Bool(staticAttributeKey, static)))
}

// RecordCacheBuild records a static method cache built for a host type
func (x *ExtensionMetric) RecordCacheBuild(ctx context.Context, hostType string) {
	x.cacheBuilds.Add(ctx, 1, metric.WithAttributes(attribute.String(hostAttributeKey, hostType)))
}
