/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vocab

import (
	"net/url"
)

// PublicKeyType defines a public key object.
type PublicKeyType struct {
	ID           *URLProperty `json:"id"`
	Owner        *URLProperty `json:"owner"`
	PublicKeyPem string       `json:"publicKeyPem"`
}

// NewPublicKey returns a new public key object.
func NewPublicKey(opts ...Opt) *PublicKeyType {
	options := NewOptions(opts...)

	return &PublicKeyType{
		ID:           NewURLProperty(options.ID),
		Owner:        NewURLProperty(options.Owner),
		PublicKeyPem: options.PublicKeyPem,
	}
}

// EndpointsType defines additional named endpoints that may be associated with an actor.
type EndpointsType struct {
	SharedInbox *URLProperty `json:"sharedInbox,omitempty"`
}

// ActorType defines an 'actor' — a Service, Person, Application, Group or Organization.
type ActorType struct {
	*ObjectType

	actor *actorType
}

type actorType struct {
	PublicKey                 *PublicKeyType `json:"publicKey,omitempty"`
	Inbox                     *URLProperty   `json:"inbox,omitempty"`
	Outbox                    *URLProperty   `json:"outbox,omitempty"`
	Followers                 *URLProperty   `json:"followers,omitempty"`
	Following                 *URLProperty   `json:"following,omitempty"`
	Liked                     *URLProperty   `json:"liked,omitempty"`
	Likes                     *URLProperty   `json:"likes,omitempty"`
	Shares                    *URLProperty   `json:"shares,omitempty"`
	Endpoints                 *EndpointsType `json:"endpoints,omitempty"`
	PreferredUsername         string         `json:"preferredUsername,omitempty"`
	ManuallyApprovesFollowers bool           `json:"manuallyApprovesFollowers,omitempty"`
}

// PublicKey returns the actor's public key.
func (t *ActorType) PublicKey() *PublicKeyType {
	if t == nil || t.actor == nil {
		return nil
	}

	return t.actor.PublicKey
}

// Inbox returns the URL of the actor's inbox.
func (t *ActorType) Inbox() *url.URL {
	if t == nil || t.actor == nil || t.actor.Inbox == nil {
		return nil
	}

	return t.actor.Inbox.URL()
}

// Outbox returns the URL of the actor's outbox.
func (t *ActorType) Outbox() *url.URL {
	if t == nil || t.actor == nil || t.actor.Outbox == nil {
		return nil
	}

	return t.actor.Outbox.URL()
}

// Followers returns the URL of the actor's followers collection.
func (t *ActorType) Followers() *url.URL {
	if t == nil || t.actor == nil || t.actor.Followers == nil {
		return nil
	}

	return t.actor.Followers.URL()
}

// Following returns the URL of what the actor is following.
func (t *ActorType) Following() *url.URL {
	if t == nil || t.actor == nil || t.actor.Following == nil {
		return nil
	}

	return t.actor.Following.URL()
}

// Liked returns the URL of what the actor has liked.
func (t *ActorType) Liked() *url.URL {
	if t == nil || t.actor == nil || t.actor.Liked == nil {
		return nil
	}

	return t.actor.Liked.URL()
}

// Likes returns the URL of the actor's likes collection.
func (t *ActorType) Likes() *url.URL {
	if t == nil || t.actor == nil || t.actor.Likes == nil {
		return nil
	}

	return t.actor.Likes.URL()
}

// Shares returns the URL of the actor's shares collection.
func (t *ActorType) Shares() *url.URL {
	if t == nil || t.actor == nil || t.actor.Shares == nil {
		return nil
	}

	return t.actor.Shares.URL()
}

// SharedInbox returns the URL of the host-wide shared inbox, or nil if the actor doesn't advertise one.
func (t *ActorType) SharedInbox() *url.URL {
	if t == nil || t.actor == nil || t.actor.Endpoints == nil {
		return nil
	}

	return t.actor.Endpoints.SharedInbox.URL()
}

// PreferredUsername returns the actor's handle, unique within the host.
func (t *ActorType) PreferredUsername() string {
	if t == nil || t.actor == nil {
		return ""
	}

	return t.actor.PreferredUsername
}

// ManuallyApprovesFollowers returns true if follow requests must be explicitly accepted.
func (t *ActorType) ManuallyApprovesFollowers() bool {
	if t == nil || t.actor == nil {
		return false
	}

	return t.actor.ManuallyApprovesFollowers
}

// MarshalJSON marshals the actor to JSON.
func (t *ActorType) MarshalJSON() ([]byte, error) {
	return MarshalJSON(t.ObjectType, t.actor)
}

// UnmarshalJSON unmarshals the actor from JSON.
func (t *ActorType) UnmarshalJSON(bytes []byte) error {
	t.ObjectType = NewObject()
	t.actor = &actorType{}

	return UnmarshalJSON(bytes, t.ObjectType, t.actor)
}

func newActor(kind Type, id *url.URL, opts ...Opt) *ActorType {
	options := NewOptions(opts...)

	var endpoints *EndpointsType
	if options.SharedInbox != nil {
		endpoints = &EndpointsType{SharedInbox: NewURLProperty(options.SharedInbox)}
	}

	return &ActorType{
		ObjectType: NewObject(
			WithContext(getContexts(options, ContextActivityStreams, ContextSecurity)...),
			WithID(id),
			WithType(kind),
			WithName(options.Name),
			WithSummary(options.Summary),
		),
		actor: &actorType{
			PublicKey:                 options.PublicKey,
			Inbox:                     NewURLProperty(options.Inbox),
			Outbox:                    NewURLProperty(options.Outbox),
			Followers:                 NewURLProperty(options.Followers),
			Following:                 NewURLProperty(options.Following),
			Liked:                     NewURLProperty(options.Liked),
			Likes:                     NewURLProperty(options.Likes),
			Shares:                    NewURLProperty(options.Shares),
			Endpoints:                 endpoints,
			PreferredUsername:         options.PreferredUsername,
			ManuallyApprovesFollowers: options.ManuallyApprovesFollowers,
		},
	}
}

// NewService returns a new 'Service' actor type — used for the host's system/bot actor.
func NewService(id *url.URL, opts ...Opt) *ActorType {
	return newActor(TypeService, id, opts...)
}

// NewPerson returns a new 'Person' actor type — a human-operated account.
func NewPerson(id *url.URL, opts ...Opt) *ActorType {
	return newActor(TypePerson, id, opts...)
}

// NewApplication returns a new 'Application' actor type.
func NewApplication(id *url.URL, opts ...Opt) *ActorType {
	return newActor(TypeApplication, id, opts...)
}

// NewGroup returns a new 'Group' actor type.
func NewGroup(id *url.URL, opts ...Opt) *ActorType {
	return newActor(TypeGroup, id, opts...)
}

// NewOrganization returns a new 'Organization' actor type.
func NewOrganization(id *url.URL, opts ...Opt) *ActorType {
	return newActor(TypeOrganization, id, opts...)
}
