/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package memstore

import (
	"net/url"

	"github.com/fediforge/fediforge/pkg/activitypub/store/spi"
	"github.com/fediforge/fediforge/pkg/activitypub/vocab"
)

type iterator struct {
	current    int
	totalItems int
}

func newIterator(totalItems int) *iterator {
	return &iterator{
		totalItems: totalItems,
		current:    -1,
	}
}

func (it *iterator) TotalItems() (int, error) {
	return it.totalItems, nil
}

func (it *iterator) Close() error {
	return nil
}

// ActivityIterator implements the spi.ActivityIterator interface over an in-memory slice of activities.
type ActivityIterator struct {
	*iterator
	results []*vocab.ActivityType
}

// NewActivityIterator returns a new activity iterator over the given results.
func NewActivityIterator(results []*vocab.ActivityType, totalItems int) *ActivityIterator {
	return &ActivityIterator{
		iterator: newIterator(totalItems),
		results:  results,
	}
}

// Next returns the next activity or spi.ErrNotFound if there are no more items.
func (it *ActivityIterator) Next() (*vocab.ActivityType, error) {
	if it.current >= len(it.results)-1 {
		return nil, spi.ErrNotFound
	}

	it.current++

	return it.results[it.current], nil
}

// ReferenceIterator implements the spi.ReferenceIterator interface over an in-memory slice of IRIs.
type ReferenceIterator struct {
	*iterator
	results []*url.URL
}

// NewReferenceIterator returns a new reference iterator over the given results.
func NewReferenceIterator(results []*url.URL, totalItems int) *ReferenceIterator {
	return &ReferenceIterator{
		iterator: newIterator(totalItems),
		results:  results,
	}
}

// Next returns the next reference IRI or spi.ErrNotFound if there are no more items.
func (it *ReferenceIterator) Next() (*url.URL, error) {
	if it.current >= len(it.results)-1 {
		return nil, spi.ErrNotFound
	}

	it.current++

	return it.results[it.current], nil
}
