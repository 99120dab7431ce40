/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fediforge/fediforge/internal/pkg/log"
	"github.com/fediforge/fediforge/pkg/httpserver"
	"github.com/fediforge/fediforge/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once
	instance   metrics.Metrics
)

type promProvider struct {
	httpServer *httpserver.Server
}

// NewPrometheusProvider creates a new instance of the Prometheus metrics provider.
func NewPrometheusProvider(httpServer *httpserver.Server) metrics.Provider {
	return &promProvider{httpServer: httpServer}
}

// Create starts the Prometheus metrics HTTP endpoint.
func (pp *promProvider) Create() error {
	if pp.httpServer == nil {
		return nil
	}

	if err := pp.httpServer.Start(); err != nil {
		return fmt.Errorf("start metrics HTTP server: %w", err)
	}

	return nil
}

// Destroy stops the Prometheus metrics HTTP endpoint.
func (pp *promProvider) Destroy() error {
	if pp.httpServer == nil {
		return nil
	}

	return pp.httpServer.Stop(context.Background())
}

// Metrics returns the Prometheus metrics implementation.
func (pp *promProvider) Metrics() metrics.Metrics {
	return GetMetrics()
}

// GetMetrics returns the singleton instance of the Prometheus metrics.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics()
	})

	return instance
}

// PromMetrics manages the metrics for the federation server.
type PromMetrics struct {
	apOutboxPostTime           prometheus.Histogram
	apOutboxResolveInboxesTime prometheus.Histogram
	apInboxHandlerTimes        map[string]prometheus.Histogram
	apOutboxActivityCounts     map[string]prometheus.Counter
	apDeliveryRetryCounts      map[string]prometheus.Counter
	apDeliveryDeadCounts       map[string]prometheus.Counter

	signerSignTimes       prometheus.Histogram
	signerVerifyTimes     prometheus.Histogram
	signerResolveKeyTimes prometheus.Histogram

	dbPutTimes    map[string]prometheus.Histogram
	dbGetTimes    map[string]prometheus.Histogram
	dbQueryTimes  map[string]prometheus.Histogram
	dbDeleteTimes map[string]prometheus.Histogram
}

// NewMetrics creates an instance of the Prometheus metrics.
func NewMetrics() metrics.Metrics {
	activityTypes := []string{
		"Create", "Update", "Delete", "Add", "Remove", "Block",
		"Announce", "Follow", "Accept", "Reject", "TentativeAccept", "Offer", "Like", "Undo",
	}
	dbTypes := []string{"CouchDB", "MongoDB"}

	pm := &PromMetrics{
		apOutboxPostTime:           newOutboxPostTime(),
		apOutboxResolveInboxesTime: newOutboxResolveInboxesTime(),
		apInboxHandlerTimes:        newInboxHandlerTimes(activityTypes),
		apOutboxActivityCounts:     newOutboxActivityCounts(activityTypes),
		apDeliveryRetryCounts:      newDeliveryRetryCounts(activityTypes),
		apDeliveryDeadCounts:       newDeliveryDeadCounts(activityTypes),
		signerSignTimes:            newSignerSignTime(),
		signerVerifyTimes:          newSignerVerifyTime(),
		signerResolveKeyTimes:      newSignerResolveKeyTime(),
		dbPutTimes:                 newDBPutTime(dbTypes),
		dbGetTimes:                 newDBGetTime(dbTypes),
		dbQueryTimes:               newDBQueryTime(dbTypes),
		dbDeleteTimes:              newDBDeleteTime(dbTypes),
	}

	registerMetrics(pm)

	return pm
}

func registerMetrics(pm *PromMetrics) {
	prometheus.MustRegister(
		pm.apOutboxPostTime, pm.apOutboxResolveInboxesTime,
		pm.signerSignTimes, pm.signerVerifyTimes, pm.signerResolveKeyTimes,
	)

	for _, c := range pm.apInboxHandlerTimes {
		prometheus.MustRegister(c)
	}

	for _, c := range pm.apOutboxActivityCounts {
		prometheus.MustRegister(c)
	}

	for _, c := range pm.apDeliveryRetryCounts {
		prometheus.MustRegister(c)
	}

	for _, c := range pm.apDeliveryDeadCounts {
		prometheus.MustRegister(c)
	}

	for _, c := range pm.dbPutTimes {
		prometheus.MustRegister(c)
	}

	for _, c := range pm.dbGetTimes {
		prometheus.MustRegister(c)
	}

	for _, c := range pm.dbQueryTimes {
		prometheus.MustRegister(c)
	}

	for _, c := range pm.dbDeleteTimes {
		prometheus.MustRegister(c)
	}
}

// OutboxPostTime records the time it takes to post a message to the outbox.
func (pm *PromMetrics) OutboxPostTime(value time.Duration) {
	pm.apOutboxPostTime.Observe(value.Seconds())

	logger.Debug("OutboxPost time", log.WithDuration(value))
}

// OutboxResolveInboxesTime records the time it takes to resolve inboxes for an outbox post.
func (pm *PromMetrics) OutboxResolveInboxesTime(value time.Duration) {
	pm.apOutboxResolveInboxesTime.Observe(value.Seconds())

	logger.Debug("OutboxResolveInboxes time", log.WithDuration(value))
}

// InboxHandlerTime records the time it takes to handle an activity posted to the inbox.
func (pm *PromMetrics) InboxHandlerTime(activityType string, value time.Duration) {
	if c, ok := pm.apInboxHandlerTimes[activityType]; ok {
		c.Observe(value.Seconds())
	}

	logger.Debug("InboxHandler time for activity", log.WithActivityType(activityType), log.WithDuration(value))
}

// OutboxIncrementActivityCount increments the number of activities of the given type posted to the outbox.
func (pm *PromMetrics) OutboxIncrementActivityCount(activityType string) {
	if c, ok := pm.apOutboxActivityCounts[activityType]; ok {
		c.Inc()
	}
}

// DeliveryRetryCount increments the number of delivery attempts that were retried for the given activity type.
func (pm *PromMetrics) DeliveryRetryCount(activityType string) {
	if c, ok := pm.apDeliveryRetryCounts[activityType]; ok {
		c.Inc()
	}
}

// DeliveryDeadCount increments the number of delivery queue items that exhausted their retries for the
// given activity type.
func (pm *PromMetrics) DeliveryDeadCount(activityType string) {
	if c, ok := pm.apDeliveryDeadCounts[activityType]; ok {
		c.Inc()
	}
}

// SignerSignTime records the time it takes the signer to sign a request.
func (pm *PromMetrics) SignerSignTime(value time.Duration) {
	pm.signerSignTimes.Observe(value.Seconds())
}

// SignerVerifyTime records the time it takes the signer to verify a request.
func (pm *PromMetrics) SignerVerifyTime(value time.Duration) {
	pm.signerVerifyTimes.Observe(value.Seconds())
}

// SignerResolveKeyTime records the time it takes to resolve a public key for signature verification.
func (pm *PromMetrics) SignerResolveKeyTime(value time.Duration) {
	pm.signerResolveKeyTimes.Observe(value.Seconds())
}

// DBPutTime records the time it takes the DB to store data.
func (pm *PromMetrics) DBPutTime(dbType string, value time.Duration) {
	if c, ok := pm.dbPutTimes[dbType]; ok {
		c.Observe(value.Seconds())
	}
}

// DBGetTime records the time it takes the DB to retrieve data.
func (pm *PromMetrics) DBGetTime(dbType string, value time.Duration) {
	if c, ok := pm.dbGetTimes[dbType]; ok {
		c.Observe(value.Seconds())
	}
}

// DBQueryTime records the time it takes the DB to perform a query.
func (pm *PromMetrics) DBQueryTime(dbType string, value time.Duration) {
	if c, ok := pm.dbQueryTimes[dbType]; ok {
		c.Observe(value.Seconds())
	}
}

// DBDeleteTime records the time it takes the DB to delete data.
func (pm *PromMetrics) DBDeleteTime(dbType string, value time.Duration) {
	if c, ok := pm.dbDeleteTimes[dbType]; ok {
		c.Observe(value.Seconds())
	}
}

func newOutboxPostTime() prometheus.Histogram {
	return newHistogram(
		metrics.ActivityPub, metrics.ApPostTimeMetric,
		"The time (in seconds) that it takes to post a message to the outbox.",
		nil,
	)
}

func newOutboxResolveInboxesTime() prometheus.Histogram {
	return newHistogram(
		metrics.ActivityPub, metrics.ApResolveInboxesTimeMetric,
		"The time (in seconds) that it takes to resolve the inboxes of the destinations when posting to the outbox.",
		nil,
	)
}

func newInboxHandlerTimes(activityTypes []string) map[string]prometheus.Histogram {
	times := make(map[string]prometheus.Histogram)

	for _, activityType := range activityTypes {
		times[activityType] = newHistogram(
			metrics.ActivityPub, metrics.ApInboxHandlerTimeMetric,
			"The time (in seconds) that it takes to handle an activity posted to the inbox.",
			prometheus.Labels{"type": activityType},
		)
	}

	return times
}

func newOutboxActivityCounts(activityTypes []string) map[string]prometheus.Counter {
	counters := make(map[string]prometheus.Counter)

	for _, activityType := range activityTypes {
		counters[activityType] = newCounter(
			metrics.ActivityPub, metrics.ApOutboxActivityCounterMetric,
			"The number of activities posted to the outbox.",
			prometheus.Labels{"type": activityType},
		)
	}

	return counters
}

func newDeliveryRetryCounts(activityTypes []string) map[string]prometheus.Counter {
	counters := make(map[string]prometheus.Counter)

	for _, activityType := range activityTypes {
		counters[activityType] = newCounter(
			metrics.ActivityPub, metrics.ApDeliveryRetryCounterMetric,
			"The number of delivery attempts that were retried after a failed delivery.",
			prometheus.Labels{"type": activityType},
		)
	}

	return counters
}

func newDeliveryDeadCounts(activityTypes []string) map[string]prometheus.Counter {
	counters := make(map[string]prometheus.Counter)

	for _, activityType := range activityTypes {
		counters[activityType] = newCounter(
			metrics.ActivityPub, metrics.ApDeliveryDeadCounterMetric,
			"The number of delivery queue items that exhausted their retries and were marked dead.",
			prometheus.Labels{"type": activityType},
		)
	}

	return counters
}

func newSignerSignTime() prometheus.Histogram {
	return newHistogram(
		metrics.Signer, metrics.SignerSignMetric,
		"The time (in seconds) it takes the signer to sign an HTTP request.",
		nil,
	)
}

func newSignerVerifyTime() prometheus.Histogram {
	return newHistogram(
		metrics.Signer, metrics.SignerVerifyMetric,
		"The time (in seconds) it takes to verify an HTTP request signature.",
		nil,
	)
}

func newSignerResolveKeyTime() prometheus.Histogram {
	return newHistogram(
		metrics.Signer, metrics.SignerResolveKeyMetric,
		"The time (in seconds) it takes to resolve the public key used for signature verification.",
		nil,
	)
}

func newDBPutTime(dbTypes []string) map[string]prometheus.Histogram {
	times := make(map[string]prometheus.Histogram)

	for _, dbType := range dbTypes {
		times[dbType] = newHistogram(
			metrics.DB, metrics.DBPutTimeMetric,
			"The time (in seconds) it takes the DB to store data.",
			prometheus.Labels{"type": dbType},
		)
	}

	return times
}

func newDBGetTime(dbTypes []string) map[string]prometheus.Histogram {
	times := make(map[string]prometheus.Histogram)

	for _, dbType := range dbTypes {
		times[dbType] = newHistogram(
			metrics.DB, metrics.DBGetTimeMetric,
			"The time (in seconds) it takes the DB to retrieve data.",
			prometheus.Labels{"type": dbType},
		)
	}

	return times
}

func newDBQueryTime(dbTypes []string) map[string]prometheus.Histogram {
	times := make(map[string]prometheus.Histogram)

	for _, dbType := range dbTypes {
		times[dbType] = newHistogram(
			metrics.DB, metrics.DBQueryTimeMetric,
			"The time (in seconds) it takes the DB to perform a query.",
			prometheus.Labels{"type": dbType},
		)
	}

	return times
}

func newDBDeleteTime(dbTypes []string) map[string]prometheus.Histogram {
	times := make(map[string]prometheus.Histogram)

	for _, dbType := range dbTypes {
		times[dbType] = newHistogram(
			metrics.DB, metrics.DBDeleteTimeMetric,
			"The time (in seconds) it takes the DB to delete data.",
			prometheus.Labels{"type": dbType},
		)
	}

	return times
}

func newCounter(subsystem, name, help string, labels prometheus.Labels) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}
