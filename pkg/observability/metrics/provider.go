/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	"github.com/fediforge/fediforge/internal/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "fediforge"

	// ActivityPub ActivityPub.
	ActivityPub                  = "activitypub"
	ApPostTimeMetric             = "outbox_post_seconds"
	ApResolveInboxesTimeMetric   = "outbox_resolve_inboxes_seconds"
	ApInboxHandlerTimeMetric     = "inbox_handler_seconds"
	ApOutboxActivityCounterMetric = "outbox_count"
	ApDeliveryRetryCounterMetric = "delivery_retry_count"
	ApDeliveryDeadCounterMetric  = "delivery_dead_count"

	// Signer HTTP signature signing/verification.
	Signer                 = "signer"
	SignerSignMetric       = "sign_seconds"
	SignerVerifyMetric     = "verify_seconds"
	SignerResolveKeyMetric = "resolve_key_seconds"

	// DB generic storage timing, shared across the actor/activity/collection stores.
	DB                  = "db"
	DBPutTimeMetric     = "put_seconds"
	DBGetTimeMetric     = "get_seconds"
	DBQueryTimeMetric   = "query_seconds"
	DBDeleteTimeMetric  = "delete_seconds"
)

// Provider is an interface for metrics provider.
type Provider interface {
	// Create creates a metrics provider instance.
	Create() error
	// Destroy destroys the metrics provider instance.
	Destroy() error
	// Metrics provides metrics.
	Metrics() Metrics
}

// Metrics is an interface for the metrics to be supported by the provider.
type Metrics interface {
	InboxHandlerTime(activityType string, value time.Duration)
	OutboxPostTime(value time.Duration)
	OutboxResolveInboxesTime(value time.Duration)
	OutboxIncrementActivityCount(activityType string)
	DeliveryRetryCount(activityType string)
	DeliveryDeadCount(activityType string)
	SignerSignTime(value time.Duration)
	SignerVerifyTime(value time.Duration)
	SignerResolveKeyTime(value time.Duration)
	DBPutTime(dbType string, duration time.Duration)
	DBGetTime(dbType string, duration time.Duration)
	DBQueryTime(dbType string, duration time.Duration)
	DBDeleteTime(dbType string, duration time.Duration)
}
