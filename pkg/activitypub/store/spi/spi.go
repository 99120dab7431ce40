/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package spi defines the interface of an ActivityPub store along with the types used to
// query it.
package spi

import (
	"fmt"
	"net/url"

	"github.com/fediforge/fediforge/pkg/activitypub/vocab"
)

// ErrNotFound is returned from various store functions when a requested object is not found in the store.
var ErrNotFound = fmt.Errorf("not found in ActivityPub store")

// ReferenceType defines the type of reference, e.g. follower, like, etc. Inbox and Outbox are also
// reference types since they're simply ordered collections of activity IRIs owned by the local service.
type ReferenceType string

const (
	// Inbox indicates that the reference is an activity posted to the local service's inbox.
	Inbox ReferenceType = "INBOX"
	// Outbox indicates that the reference is an activity posted by the local service to its outbox.
	Outbox ReferenceType = "OUTBOX"
	// PublicOutbox indicates that the reference is an activity posted by the local service to its outbox
	// that is addressed to the public collection, i.e. it may be read without authorization.
	PublicOutbox ReferenceType = "PUBLIC_OUTBOX"
	// Follower indicates that the reference is an actor that's following the local service.
	Follower ReferenceType = "FOLLOWER"
	// Following indicates that the reference is an actor that the local service is following.
	Following ReferenceType = "FOLLOWING"
	// Like indicates that the reference is an object that the local service liked.
	Like ReferenceType = "LIKE"
	// Liked indicates that the reference is an object created by the local service that was liked by
	// another actor.
	Liked ReferenceType = "LIKED"
	// Share indicates that the reference is an object that the local service shared (announced) to
	// its followers.
	Share ReferenceType = "SHARE"
	// Blocked indicates that the reference is an actor that the local service has blocked.
	Blocked ReferenceType = "BLOCKED"
)

// SortOrder is the order in which query results are returned.
type SortOrder int

const (
	// SortAscending returns query results in ascending order.
	SortAscending SortOrder = iota
	// SortDescending returns query results in descending order.
	SortDescending
)

// QueryOptions holds options for a store query.
type QueryOptions struct {
	PageNumber int
	PageSize   int
	SortOrder  SortOrder
}

// QueryOpt sets a query option.
type QueryOpt func(options *QueryOptions)

// WithPageSize sets the page size of a query.
func WithPageSize(pageSize int) QueryOpt {
	return func(options *QueryOptions) {
		options.PageSize = pageSize
	}
}

// WithPageNum sets the page number of a query.
func WithPageNum(pageNum int) QueryOpt {
	return func(options *QueryOptions) {
		options.PageNumber = pageNum
	}
}

// WithSortOrder sets the sort order of a query.
func WithSortOrder(sortOrder SortOrder) QueryOpt {
	return func(options *QueryOptions) {
		options.SortOrder = sortOrder
	}
}

// RefMetadata holds metadata about a reference that may be used to optimize queries.
type RefMetadata struct {
	ActivityType vocab.Type
}

// RefMetadataOpt sets reference metadata.
type RefMetadataOpt func(metadata *RefMetadata)

// WithActivityType sets the activity type metadata on a reference.
func WithActivityType(t vocab.Type) RefMetadataOpt {
	return func(metadata *RefMetadata) {
		metadata.ActivityType = t
	}
}

// Criteria holds the search criteria for a query.
type Criteria struct {
	Types         []vocab.Type
	ObjectIRI     *url.URL
	ReferenceIRI  *url.URL
	ReferenceType ReferenceType
	ActivityIRIs  []*url.URL
}

// CriteriaOpt sets a Criteria option.
type CriteriaOpt func(q *Criteria)

// NewCriteria returns new Criteria which may be used to perform a query.
func NewCriteria(opts ...CriteriaOpt) *Criteria {
	q := &Criteria{}

	for _, opt := range opts {
		opt(q)
	}

	return q
}

// WithType sets the object Type on the criteria.
func WithType(t ...vocab.Type) CriteriaOpt {
	return func(query *Criteria) {
		query.Types = append(query.Types, t...)
	}
}

// WithObjectIRI sets the object IRI on the criteria.
func WithObjectIRI(iri *url.URL) CriteriaOpt {
	return func(query *Criteria) {
		query.ObjectIRI = iri
	}
}

// WithReferenceIRI sets the reference IRI on the criteria.
func WithReferenceIRI(iri *url.URL) CriteriaOpt {
	return func(query *Criteria) {
		query.ReferenceIRI = iri
	}
}

// WithReferenceType sets the reference type on the criteria, used to query an activity store by
// following one of its reference collections, e.g. Inbox or Outbox.
func WithReferenceType(refType ReferenceType) CriteriaOpt {
	return func(query *Criteria) {
		query.ReferenceType = refType
	}
}

// WithActivityIRIs sets the set of activity IRIs on the criteria.
func WithActivityIRIs(iris ...*url.URL) CriteriaOpt {
	return func(query *Criteria) {
		query.ActivityIRIs = append(query.ActivityIRIs, iris...)
	}
}

// ActivityIterator defines the query results iterator for activity queries.
type ActivityIterator interface {
	// Next returns the next activity or an ErrNotFound error if there are no more items.
	Next() (*vocab.ActivityType, error)
	// TotalItems returns the total number of items as a result of the query that generated this iterator.
	TotalItems() (int, error)
	// Close closes the iterator.
	Close() error
}

// ReferenceIterator defines the query results iterator for reference queries.
type ReferenceIterator interface {
	// Next returns the next reference IRI or an ErrNotFound error if there are no more items.
	Next() (*url.URL, error)
	// TotalItems returns the total number of items as a result of the query that generated this iterator.
	TotalItems() (int, error)
	// Close closes the iterator.
	Close() error
}

// Store defines the functions of an ActivityPub store.
type Store interface {
	// PutActor stores the given actor.
	PutActor(actor *vocab.ActorType) error
	// GetActor returns the actor for the given IRI. Returns an ErrNotFound error if the actor is not in the store.
	GetActor(actorIRI *url.URL) (*vocab.ActorType, error)
	// AddActivity adds the given activity to the activity store.
	AddActivity(activity *vocab.ActivityType) error
	// GetActivity returns the activity for the given ID from the activity store
	// or an ErrNotFound error if it wasn't found.
	GetActivity(activityID *url.URL) (*vocab.ActivityType, error)
	// QueryActivities queries the activity store using the provided criteria and returns a results iterator.
	QueryActivities(query *Criteria, opts ...QueryOpt) (ActivityIterator, error)
	// AddReference adds the reference of the given type to the given object.
	AddReference(refType ReferenceType, objectIRI, referenceIRI *url.URL, refMetadataOpts ...RefMetadataOpt) error
	// DeleteReference deletes the reference of the given type from the given object.
	DeleteReference(refType ReferenceType, objectIRI, referenceIRI *url.URL) error
	// QueryReferences returns the references of the given type according to the given query.
	QueryReferences(refType ReferenceType, query *Criteria, opts ...QueryOpt) (ReferenceIterator, error)
}
