/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package activityhandler

import (
	"context"
	"fmt"
	"net/url"

	store "github.com/fediforge/fediforge/pkg/activitypub/store/spi"
	"github.com/fediforge/fediforge/pkg/activitypub/vocab"
	orberrors "github.com/fediforge/fediforge/pkg/errors"
)

// Outbox handles activities posted to the outbox.
type Outbox struct {
	*handler
}

// NewOutbox returns a new ActivityPub outbox activity handler.
func NewOutbox(cfg *Config, s store.Store, t httpTransport) *Outbox {
	h := &Outbox{}

	h.handler = newHandler(cfg, s, t, h.undoFollow).withUndoLike(h.undoLikeRef)

	return h
}

func (h *Outbox) undoFollow(activity *vocab.ActivityType) error {
	return h.undoReference(activity, store.Following, func() *url.URL {
		return activity.Object().IRI()
	})
}

func (h *Outbox) undoLikeRef(activity *vocab.ActivityType) error {
	return h.undoReference(activity, store.Liked, func() *url.URL {
		return activity.ID().URL()
	})
}

// HandleActivity handles the ActivityPub activity in the outbox, i.e. one that's originated
// locally and is about to be (or has been) delivered to remote recipients.
func (h *Outbox) HandleActivity(ctx context.Context, _ *url.URL, activity *vocab.ActivityType) error {
	typeProp := activity.Type()

	switch {
	case typeProp.Is(vocab.TypeUndo):
		return h.handleUndoActivity(activity)
	default:
		// No additional outbox-side bookkeeping is required for the activity type; the inbox
		// handler of the remote recipient is responsible for acting on it.
		return nil
	}
}

func (h *Outbox) undoReference(activity *vocab.ActivityType, refType store.ReferenceType,
	getTargetIRI func() *url.URL,
) error {
	if activity.Actor() == nil || activity.Actor().String() != h.ServiceIRI.String() {
		return fmt.Errorf("this service is not the actor for the 'Undo'")
	}

	iri := getTargetIRI()
	if iri == nil {
		return fmt.Errorf("no IRI specified in 'object' field")
	}

	if err := h.store.DeleteReference(refType, h.ServiceIRI, iri); err != nil {
		return orberrors.NewTransient(fmt.Errorf("unable to delete %s from %s's collection of %s: %w",
			iri, h.ServiceIRI, refType, err))
	}

	logger.Debugf("[%s] Reference [%s] was successfully deleted from the '%s' collection",
		h.ServiceName, iri, refType)

	return nil
}
