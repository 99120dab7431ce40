/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package deliveryworker implements the outbox's delayed-retry delivery queue: activities that
// could not be delivered to a recipient's inbox on the first attempt are queued here and
// redelivered on a fixed backoff schedule until they succeed or are given up on.
package deliveryworker

import (
	"net/url"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
)

// Status is the delivery status of a queued Item.
type Status int

// Item delivery states.
const (
	// Pending items are waiting for their NextAttempt time to arrive.
	Pending Status = iota
	// Processing items have been claimed by a worker and are currently being redelivered.
	Processing
	// Delivered items were successfully redelivered and are no longer tracked by the queue.
	Delivered
	// Dead items exhausted the backoff table without a successful delivery.
	Dead
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Processing:
		return "processing"
	case Delivered:
		return "delivered"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// Item is a single activity delivery awaiting retry.
type Item struct {
	// ID uniquely identifies the item within the queue.
	ID string

	// Topic is the watermill topic that the message should be republished to.
	Topic string

	// To is the recipient inbox IRI, kept for logging and the undeliverable-activity callback.
	To *url.URL

	// Msg is the watermill message to redeliver, carrying the marshalled activity and its metadata.
	Msg *message.Message

	// Status is the item's current state in the queue.
	Status Status

	// Attempts is the number of redelivery attempts made so far (not counting the original,
	// out-of-queue delivery attempt that failed and caused the item to be queued).
	Attempts int

	// NextAttempt is the earliest time at which the item becomes eligible to be claimed again.
	NextAttempt time.Time
}
