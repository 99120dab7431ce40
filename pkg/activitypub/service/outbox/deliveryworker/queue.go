/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package deliveryworker

import (
	"sync"
	"time"
)

// Queue persists Items between redelivery attempts.
type Queue interface {
	// Enqueue adds an item in the Pending state. The caller is responsible for setting
	// item.NextAttempt, e.g. to time.Now().Add(InitialDelay()).
	Enqueue(item *Item)

	// ClaimDue atomically transitions up to max Pending items whose NextAttempt has arrived
	// to Processing and returns them. An item will not be returned by another call to ClaimDue
	// until it is next marked Pending (via MarkFailed) or removed (via MarkDelivered).
	ClaimDue(now time.Time, max int) []*Item

	// MarkDelivered removes the item from the queue following a successful redelivery.
	MarkDelivered(id string)

	// MarkFailed records a failed redelivery attempt. If the backoff table has been exhausted
	// the item transitions to Dead and is removed, and dead is returned true. Otherwise the item
	// is returned to Pending with NextAttempt advanced according to the backoff table.
	MarkFailed(id string, now time.Time) (dead bool)

	// Len returns the number of items currently tracked by the queue.
	Len() int
}

// MemQueue is an in-memory Queue implementation.
type MemQueue struct {
	mutex sync.Mutex
	items map[string]*Item
}

// NewMemQueue returns a new, empty in-memory queue.
func NewMemQueue() *MemQueue {
	return &MemQueue{
		items: make(map[string]*Item),
	}
}

// Enqueue adds an item in the Pending state.
func (q *MemQueue) Enqueue(item *Item) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	item.Status = Pending
	q.items[item.ID] = item
}

// ClaimDue atomically transitions up to max due Pending items to Processing and returns them.
func (q *MemQueue) ClaimDue(now time.Time, max int) []*Item {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	var claimed []*Item

	for _, item := range q.items {
		if len(claimed) >= max {
			break
		}

		if item.Status == Pending && !item.NextAttempt.After(now) {
			item.Status = Processing

			claimed = append(claimed, item)
		}
	}

	return claimed
}

// MarkDelivered removes the item from the queue.
func (q *MemQueue) MarkDelivered(id string) {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	if item, ok := q.items[id]; ok {
		item.Status = Delivered

		delete(q.items, id)
	}
}

// MarkFailed applies the backoff table to the item, either requeueing it as Pending with an
// advanced NextAttempt or marking it Dead and removing it once the table is exhausted.
func (q *MemQueue) MarkFailed(id string, now time.Time) bool {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	item, ok := q.items[id]
	if !ok {
		return false
	}

	item.Attempts++

	delay, dead := backoffFor(item.Attempts)

	if dead {
		item.Status = Dead

		delete(q.items, id)

		return true
	}

	item.Status = Pending
	item.NextAttempt = now.Add(delay)

	return false
}

// Len returns the number of items currently tracked by the queue.
func (q *MemQueue) Len() int {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	return len(q.items)
}
