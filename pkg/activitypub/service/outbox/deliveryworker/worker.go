/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package deliveryworker

import (
	"context"
	"time"

	backoffpkg "github.com/cenkalti/backoff/v4"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/trustbloc/edge-core/pkg/log"
)

var logger = log.New("activitypub_deliveryworker")

const (
	defaultPollInterval = 5 * time.Second
	defaultBatchSize    = 20

	// attemptRetryInterval and attemptRetries bound a short, immediate retry of a single
	// redelivery attempt (e.g. a transient connection reset) before the item is handed back to
	// the queue's longer, fixed-table backoff.
	attemptRetryInterval = 500 * time.Millisecond
	attemptRetries       = 2
)

// Publisher republishes a message to a topic so that it re-enters the outbox's router and is
// retried by the HTTP publisher.
type Publisher interface {
	Publish(topic string, messages ...*message.Message) error
}

// Config holds the configuration parameters for a delivery worker.
type Config struct {
	// PollInterval is the interval at which the queue is polled for due items.
	PollInterval time.Duration

	// BatchSize is the maximum number of items claimed from the queue per poll.
	BatchSize int
}

// DefaultConfig returns the default delivery worker configuration.
func DefaultConfig() *Config {
	return &Config{
		PollInterval: defaultPollInterval,
		BatchSize:    defaultBatchSize,
	}
}

// Worker polls a Queue for due items and attempts redelivery via a Publisher, applying a fixed
// backoff table on failure and transitioning an item to Dead once the table is exhausted.
type Worker struct {
	*Config

	serviceName string
	queue       Queue
	publisher   Publisher
	wakeup      chan struct{}
	done        chan struct{}
}

// New returns a new delivery worker. If cfg is nil, DefaultConfig is used.
func New(serviceName string, cfg *Config, q Queue, publisher Publisher) *Worker {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &Worker{
		Config:      cfg,
		serviceName: serviceName,
		queue:       q,
		publisher:   publisher,
		wakeup:      make(chan struct{}, 1),
		done:        make(chan struct{}),
	}
}

// Notify wakes the worker immediately instead of waiting for the next poll tick. Used after an
// item is freshly enqueued so it isn't stuck waiting out a full poll interval.
func (w *Worker) Notify() {
	select {
	case w.wakeup <- struct{}{}:
	default:
	}
}

// Run polls the queue until the given context is cancelled, closing Done() when it returns.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	ticker := backoffpkg.NewTicker(backoffpkg.NewConstantBackOff(w.PollInterval))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.processBatch()
		case <-w.wakeup:
			w.processBatch()
		}
	}
}

// Done is closed once Run has returned.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

func (w *Worker) processBatch() {
	items := w.queue.ClaimDue(time.Now(), w.BatchSize)
	if len(items) == 0 {
		return
	}

	logger.Debugf("[%s] Claimed %d item(s) for redelivery", w.serviceName, len(items))

	for _, item := range items {
		w.deliver(item)
	}
}

func (w *Worker) deliver(item *Item) {
	err := backoffpkg.Retry(func() error {
		return w.publisher.Publish(item.Topic, item.Msg)
	}, backoffpkg.WithMaxRetries(backoffpkg.NewConstantBackOff(attemptRetryInterval), attemptRetries))
	if err != nil {
		dead := w.queue.MarkFailed(item.ID, time.Now())

		if dead {
			logger.Warnf("[%s] Giving up on item [%s] to [%s] after %d attempt(s): %s",
				w.serviceName, item.ID, item.To, item.Attempts, err)
		} else {
			logger.Debugf("[%s] Redelivery of item [%s] to [%s] failed, will retry: %s",
				w.serviceName, item.ID, item.To, err)
		}

		return
	}

	w.queue.MarkDelivered(item.ID)

	logger.Debugf("[%s] Redelivered item [%s] to [%s]", w.serviceName, item.ID, item.To)
}
