/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package collections implements the custom-collection registry: user-curated
// (Manual) collections and live-filtered (Query) collections over an actor's
// own objects.
package collections

import (
	"fmt"
	"net/url"
	"time"

	"github.com/fediforge/fediforge/pkg/activitypub/vocab"
	orberrors "github.com/fediforge/fediforge/pkg/errors"
)

// Kind distinguishes a curated collection from a live filtered view.
type Kind string

const (
	// Manual collections store an explicit, mutable set of object URIs.
	Manual Kind = "Manual"
	// Query collections compute their membership on read by evaluating a Filter.
	Query Kind = "Query"
)

// Order determines how a Manual collection's members are sequenced.
type Order string

const (
	// Chronological orders members by the referenced object's 'published' timestamp.
	Chronological Order = "Chronological"
	// Insertion orders members by the order in which they were added.
	Insertion Order = "Insertion"
)

// Visibility gates who may read a collection.
type Visibility string

const (
	// Public collections appear in the owner's catalog and are world-readable.
	Public Visibility = "Public"
	// Unlisted collections are fetchable by direct URL but omitted from the catalog.
	Unlisted Visibility = "Unlisted"
	// Private collections return Forbidden to unauthenticated callers.
	Private Visibility = "Private"
)

// ErrReadOnly is returned when Add/Remove is attempted against a Query collection.
var ErrReadOnly = fmt.Errorf("collection is read-only")

// Filter is the set of AND-combined predicates a Query collection evaluates against
// an actor's owned objects.
type Filter struct {
	Tags          []string
	Types         []vocab.Type
	HasAttachment *bool
	IsReply       *bool
	AfterDate     *time.Time
}

// Matches returns true if obj satisfies every predicate set on the filter.
func (f *Filter) Matches(obj *vocab.ObjectType) bool {
	if f == nil {
		return true
	}

	return f.matchesTags(obj) && f.matchesTypes(obj) && f.matchesAttachment(obj) &&
		f.matchesReply(obj) && f.matchesAfterDate(obj)
}

func (f *Filter) matchesTags(obj *vocab.ObjectType) bool {
	if len(f.Tags) == 0 {
		return true
	}

	names := make(map[string]struct{})

	for _, tag := range obj.Tag() {
		if name := tagName(tag); name != "" {
			names[name] = struct{}{}
		}
	}

	for _, tag := range f.Tags {
		if _, ok := names[tag]; !ok {
			return false
		}
	}

	return true
}

func tagName(tag *vocab.TagProperty) string {
	if link := tag.Link(); link != nil {
		return link.Name()
	}

	if obj := tag.Object(); obj != nil {
		return obj.Name()
	}

	return ""
}

func (f *Filter) matchesTypes(obj *vocab.ObjectType) bool {
	if len(f.Types) == 0 {
		return true
	}

	return obj.Type().IsAny(f.Types...)
}

func (f *Filter) matchesAttachment(obj *vocab.ObjectType) bool {
	if f.HasAttachment == nil {
		return true
	}

	return (len(obj.Attachment()) > 0) == *f.HasAttachment
}

func (f *Filter) matchesReply(obj *vocab.ObjectType) bool {
	if f.IsReply == nil {
		return true
	}

	return (obj.InReplyTo() != nil) == *f.IsReply
}

func (f *Filter) matchesAfterDate(obj *vocab.ObjectType) bool {
	if f.AfterDate == nil {
		return true
	}

	published := obj.Published()

	return published != nil && published.After(*f.AfterDate)
}

// Definition describes a single custom collection owned by an actor.
type Definition struct {
	OwnerIRI   *url.URL
	Slug       string
	Name       string
	Kind       Kind
	Order      Order
	Visibility Visibility
	Filter     *Filter
}

// Store persists collection definitions and, for Manual collections, their membership.
// It is intentionally narrow (definitions + membership only) rather than folded into the
// general ActivityPub store, the same way authTokenManager/signatureVerifier are kept
// as single-purpose interfaces elsewhere in this package tree.
type Store interface {
	PutDefinition(def *Definition) error
	GetDefinition(ownerIRI *url.URL, slug string) (*Definition, error)
	ListDefinitions(ownerIRI *url.URL) ([]*Definition, error)
	DeleteDefinition(ownerIRI *url.URL, slug string) error

	AddMember(ownerIRI *url.URL, slug string, objectIRI *url.URL) error
	RemoveMember(ownerIRI *url.URL, slug string, objectIRI *url.URL) error
	ListMembers(ownerIRI *url.URL, slug string) ([]*url.URL, error)
}

// ObjectProvider resolves the objects owned by an actor that Query collections filter over.
type ObjectProvider interface {
	OwnedObjects(ownerIRI *url.URL) ([]*vocab.ObjectType, error)
}

// Registry resolves custom-collection membership and enforces the Manual/Query mutation rule.
type Registry struct {
	store   Store
	objects ObjectProvider
}

// NewRegistry returns a new collection Registry.
func NewRegistry(store Store, objects ObjectProvider) *Registry {
	return &Registry{store: store, objects: objects}
}

// Definition returns the named collection owned by ownerIRI.
func (r *Registry) Definition(ownerIRI *url.URL, slug string) (*Definition, error) {
	return r.store.GetDefinition(ownerIRI, slug)
}

// Catalog returns the Public collections owned by ownerIRI, in the order the store returns them.
func (r *Registry) Catalog(ownerIRI *url.URL) ([]*Definition, error) {
	defs, err := r.store.ListDefinitions(ownerIRI)
	if err != nil {
		return nil, err
	}

	public := make([]*Definition, 0, len(defs))

	for _, def := range defs {
		if def.Visibility == Public {
			public = append(public, def)
		}
	}

	return public, nil
}

// Members returns the current membership of the named collection: the stored set for Manual,
// or the live filter evaluation over the owner's objects for Query. Manual members are returned in
// the order the store returns them (insertion order for memstore); the definition's Order is not
// applied, so Chronological collections are not sorted by 'published'.
func (r *Registry) Members(ownerIRI *url.URL, slug string) ([]*url.URL, error) {
	def, err := r.store.GetDefinition(ownerIRI, slug)
	if err != nil {
		return nil, err
	}

	if def.Kind == Manual {
		return r.store.ListMembers(ownerIRI, slug)
	}

	objects, err := r.objects.OwnedObjects(ownerIRI)
	if err != nil {
		return nil, err
	}

	members := make([]*url.URL, 0, len(objects))

	for _, obj := range objects {
		if def.Filter.Matches(obj) {
			members = append(members, obj.ID().URL())
		}
	}

	return members, nil
}

// Add appends objectIRI to the Manual collection named slug. It returns ErrReadOnly if the
// collection is a Query collection, which computes its membership rather than storing it.
func (r *Registry) Add(ownerIRI *url.URL, slug string, objectIRI *url.URL) error {
	def, err := r.store.GetDefinition(ownerIRI, slug)
	if err != nil {
		return err
	}

	if def.Kind != Manual {
		return orberrors.NewBadRequest(ErrReadOnly)
	}

	return r.store.AddMember(ownerIRI, slug, objectIRI)
}

// Remove deletes objectIRI from the Manual collection named slug. It returns ErrReadOnly if the
// collection is a Query collection.
func (r *Registry) Remove(ownerIRI *url.URL, slug string, objectIRI *url.URL) error {
	def, err := r.store.GetDefinition(ownerIRI, slug)
	if err != nil {
		return err
	}

	if def.Kind != Manual {
		return orberrors.NewBadRequest(ErrReadOnly)
	}

	return r.store.RemoveMember(ownerIRI, slug, objectIRI)
}

// Readable reports whether a caller may read the collection, given whether they're authenticated
// (presented a valid bearer token or signature). Public and Unlisted collections are readable by
// anyone; Private collections only by authenticated callers.
func (v Visibility) Readable(authenticated bool) bool {
	return v != Private || authenticated
}

// InCatalog reports whether the collection should be listed in the owner's public catalog.
func (v Visibility) InCatalog() bool {
	return v == Public
}
