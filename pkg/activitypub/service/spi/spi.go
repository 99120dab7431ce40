/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package spi

import (
	"context"
	"net/url"

	"github.com/fediforge/fediforge/pkg/activitypub/vocab"
	"github.com/fediforge/fediforge/pkg/lifecycle"
)

// ServiceLifecycle defines the functions of a service lifecycle.
type ServiceLifecycle interface {
	// Start starts the service.
	Start()
	// Stop stops the service.
	Stop()
	// State returns the state of the service.
	State() lifecycle.State
}

// Outbox defines the functions for an ActivityPub outbox.
type Outbox interface {
	ServiceLifecycle

	// Post posts an activity to the outbox and returns the ID of the activity. The exclude list contains
	// actor IRIs that should not receive a copy of the activity even if they'd otherwise be addressed.
	Post(ctx context.Context, activity *vocab.ActivityType, exclude ...*url.URL) (*url.URL, error)
}

// Inbox defines the functions for an ActivityPub inbox.
type Inbox interface {
	ServiceLifecycle
}

// ActorAuth makes the decision of whether or not a request by the given
// actor should be accepted.
type ActorAuth interface {
	AuthorizeActor(actor *vocab.ActorType) (bool, error)
}

// ActivityHandler defines the functions of an Activity handler.
type ActivityHandler interface {
	ServiceLifecycle

	// HandleActivity handles the ActivityPub activity. An optional source may be added
	// to indicate where the activity was retrieved from.
	HandleActivity(ctx context.Context, source *url.URL, activity *vocab.ActivityType) error

	// Subscribe allows a client to receive published activities.
	Subscribe() <-chan *vocab.ActivityType
}

// UndeliverableActivityHandler handles undeliverable activities.
type UndeliverableActivityHandler interface {
	HandleUndeliverableActivity(activity *vocab.ActivityType, toURL string)
}

// Handlers contains handlers for various activity events, including undeliverable activities.
type Handlers struct {
	UndeliverableHandler UndeliverableActivityHandler
	FollowerAuth         ActorAuth
}

// HandlerOpt sets a specific handler.
type HandlerOpt func(options *Handlers)

// WithUndeliverableHandler sets the handler that's called when an activity can't be delivered.
func WithUndeliverableHandler(handler UndeliverableActivityHandler) HandlerOpt {
	return func(options *Handlers) {
		options.UndeliverableHandler = handler
	}
}

// WithFollowAuth sets the handler that decides whether or not to accept a 'Follow' request.
func WithFollowAuth(handler ActorAuth) HandlerOpt {
	return func(options *Handlers) {
		options.FollowerAuth = handler
	}
}

// AcceptList contains the actor URIs that are to be accepted by an authorization handler.
type AcceptList struct {
	Type string
	URL  []*url.URL
}
