/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"time"

	"github.com/fediforge/fediforge/pkg/observability/metrics"
)

// Provider implements a no-op metrics provider.
type Provider struct {
}

// NewProvider creates new instance of Prometheus Metrics Provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Create does nothing.
func (pp *Provider) Create() error {
	return nil
}

// Destroy does nothing.
func (pp *Provider) Destroy() error {
	return nil
}

// Metrics returns supported metrics.
func (pp *Provider) Metrics() metrics.Metrics {
	return &NoOptMetrics{}
}

// NoOptMetrics provides default no operation implementation for the Metrics interface.
type NoOptMetrics struct{}

// InboxHandlerTime does nothing.
func (m *NoOptMetrics) InboxHandlerTime(activityType string, value time.Duration) {}

// OutboxPostTime does nothing.
func (m *NoOptMetrics) OutboxPostTime(value time.Duration) {}

// OutboxResolveInboxesTime does nothing.
func (m *NoOptMetrics) OutboxResolveInboxesTime(value time.Duration) {}

// OutboxIncrementActivityCount does nothing.
func (m *NoOptMetrics) OutboxIncrementActivityCount(activityType string) {}

// DeliveryRetryCount does nothing.
func (m *NoOptMetrics) DeliveryRetryCount(activityType string) {}

// DeliveryDeadCount does nothing.
func (m *NoOptMetrics) DeliveryDeadCount(activityType string) {}

// SignerSignTime does nothing.
func (m *NoOptMetrics) SignerSignTime(value time.Duration) {}

// SignerVerifyTime does nothing.
func (m *NoOptMetrics) SignerVerifyTime(value time.Duration) {}

// SignerResolveKeyTime does nothing.
func (m *NoOptMetrics) SignerResolveKeyTime(value time.Duration) {}

// DBPutTime does nothing.
func (m *NoOptMetrics) DBPutTime(dbType string, duration time.Duration) {}

// DBGetTime does nothing.
func (m *NoOptMetrics) DBGetTime(dbType string, duration time.Duration) {}

// DBQueryTime does nothing.
func (m *NoOptMetrics) DBQueryTime(dbType string, duration time.Duration) {}

// DBDeleteTime does nothing.
func (m *NoOptMetrics) DBDeleteTime(dbType string, duration time.Duration) {}
