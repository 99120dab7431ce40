/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package memstore implements an in-memory collections.Store.
package memstore

import (
	"net/url"
	"sync"

	"github.com/fediforge/fediforge/pkg/activitypub/collections"
	"github.com/fediforge/fediforge/pkg/activitypub/store/spi"
)

// Store is an in-memory implementation of collections.Store.
type Store struct {
	mutex       sync.RWMutex
	definitions map[string]map[string]*collections.Definition
	members     map[string]map[string][]*url.URL
}

// New returns a new in-memory collections Store.
func New() *Store {
	return &Store{
		definitions: make(map[string]map[string]*collections.Definition),
		members:     make(map[string]map[string][]*url.URL),
	}
}

// PutDefinition stores def, overwriting any existing definition with the same owner/slug.
func (s *Store) PutDefinition(def *collections.Definition) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	owner := def.OwnerIRI.String()

	if s.definitions[owner] == nil {
		s.definitions[owner] = make(map[string]*collections.Definition)
	}

	s.definitions[owner][def.Slug] = def

	return nil
}

// GetDefinition returns the definition for the given owner/slug.
func (s *Store) GetDefinition(ownerIRI *url.URL, slug string) (*collections.Definition, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	def, ok := s.definitions[ownerIRI.String()][slug]
	if !ok {
		return nil, spi.ErrNotFound
	}

	return def, nil
}

// ListDefinitions returns all definitions owned by ownerIRI.
func (s *Store) ListDefinitions(ownerIRI *url.URL) ([]*collections.Definition, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	owned := s.definitions[ownerIRI.String()]

	defs := make([]*collections.Definition, 0, len(owned))

	for _, def := range owned {
		defs = append(defs, def)
	}

	return defs, nil
}

// DeleteDefinition removes the definition (and its membership, if any) for the given owner/slug.
func (s *Store) DeleteDefinition(ownerIRI *url.URL, slug string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	owner := ownerIRI.String()

	delete(s.definitions[owner], slug)

	if s.members[owner] != nil {
		delete(s.members[owner], slug)
	}

	return nil
}

// AddMember appends objectIRI to the Manual collection's membership set. Adding an IRI that's
// already a member is a no-op.
func (s *Store) AddMember(ownerIRI *url.URL, slug string, objectIRI *url.URL) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	owner := ownerIRI.String()

	if s.members[owner] == nil {
		s.members[owner] = make(map[string][]*url.URL)
	}

	existing := s.members[owner][slug]

	for _, iri := range existing {
		if iri.String() == objectIRI.String() {
			return nil
		}
	}

	s.members[owner][slug] = append(existing, objectIRI)

	return nil
}

// RemoveMember deletes objectIRI from the Manual collection's membership set.
func (s *Store) RemoveMember(ownerIRI *url.URL, slug string, objectIRI *url.URL) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	owner := ownerIRI.String()

	existing := s.members[owner][slug]

	filtered := make([]*url.URL, 0, len(existing))

	for _, iri := range existing {
		if iri.String() != objectIRI.String() {
			filtered = append(filtered, iri)
		}
	}

	s.members[owner][slug] = filtered

	return nil
}

// ListMembers returns the Manual collection's membership set, in insertion order.
func (s *Store) ListMembers(ownerIRI *url.URL, slug string) ([]*url.URL, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.members[ownerIRI.String()][slug], nil
}
