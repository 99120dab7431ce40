/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package activityhandler

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel/trace"

	"github.com/fediforge/fediforge/pkg/activitypub/resthandler"
	service "github.com/fediforge/fediforge/pkg/activitypub/service/spi"
	store "github.com/fediforge/fediforge/pkg/activitypub/store/spi"
	"github.com/fediforge/fediforge/pkg/activitypub/vocab"
	orberrors "github.com/fediforge/fediforge/pkg/errors"
	"github.com/fediforge/fediforge/pkg/observability/tracing"
)

// Inbox handles activities posted to the inbox.
type Inbox struct {
	*handler
	*service.Handlers

	outbox       service.Outbox
	followersIRI *url.URL
	tracer       trace.Tracer
}

// NewInbox returns a new ActivityPub inbox activity handler.
func NewInbox(cfg *Config, s store.Store, outbox service.Outbox,
	t httpTransport, opts ...service.HandlerOpt,
) *Inbox {
	options := defaultOptions()

	for _, opt := range opts {
		opt(options)
	}

	followersIRI, err := url.Parse(cfg.ServiceIRI.String() + resthandler.FollowersPath)
	if err != nil {
		// This would only happen at startup and it would be a result of bad configuration.
		panic(fmt.Errorf("followers IRI: %w", err))
	}

	h := &Inbox{
		outbox:       outbox,
		Handlers:     options,
		followersIRI: followersIRI,
		tracer:       tracing.Tracer(tracing.SubsystemActivityPub),
	}

	h.handler = newHandler(cfg, s, t, h.undoFollow)

	return h
}

func (h *Inbox) undoFollow(activity *vocab.ActivityType) error {
	return h.store.DeleteReference(store.Follower, h.ServiceIRI, activity.Actor())
}

// HandleActivity handles the ActivityPub activity in the inbox.
//
//nolint:cyclop
func (h *Inbox) HandleActivity(ctx context.Context, source *url.URL, activity *vocab.ActivityType) error {
	typeProp := activity.Type()

	spanCtx, span := h.tracer.Start(ctx, fmt.Sprintf("inbox handle %s activity", typeProp),
		trace.WithAttributes(
			tracing.ActivityIDAttribute(activity.ID().String()),
			tracing.ActivityTypeAttribute(typeProp.String()),
		))
	defer span.End()

	switch {
	case typeProp.Is(vocab.TypeCreate):
		return h.handleCreateActivity(spanCtx, source, activity)
	case typeProp.Is(vocab.TypeUpdate):
		return h.handleUpdateActivity(spanCtx, activity)
	case typeProp.Is(vocab.TypeDelete):
		return h.handleDeleteActivity(spanCtx, activity)
	case typeProp.Is(vocab.TypeFollow):
		return h.handleFollowActivity(spanCtx, activity)
	case typeProp.Is(vocab.TypeAccept):
		return h.handleAcceptActivity(spanCtx, activity)
	case typeProp.Is(vocab.TypeReject):
		return h.handleRejectActivity(activity)
	case typeProp.Is(vocab.TypeAnnounce):
		return h.handleAnnounceActivity(spanCtx, activity)
	case typeProp.Is(vocab.TypeLike):
		return h.handleLikeActivity(activity)
	case typeProp.Is(vocab.TypeAdd):
		return h.handleAddActivity(activity)
	case typeProp.Is(vocab.TypeRemove):
		return h.handleRemoveActivity(activity)
	case typeProp.Is(vocab.TypeBlock):
		return h.handleBlockActivity(activity)
	case typeProp.Is(vocab.TypeUndo):
		return h.handleUndoActivity(activity)
	default:
		return fmt.Errorf("unsupported activity type: %s", typeProp.Types())
	}
}

// handleCreateActivity handles a 'Create' activity: the embedded object is stored in our activity
// log and, if the actor that created it is one of our followers, re-announced to our own followers.
func (h *Inbox) handleCreateActivity(ctx context.Context, source *url.URL, create *vocab.ActivityType) error {
	logger.Debugf("[%s] Handling 'Create' activity [%s]", h.ServiceName, create.ID())

	if create.Object() == nil || (create.Object().Object() == nil && create.Object().IRI() == nil) {
		return fmt.Errorf("no object specified in 'Create' activity [%s]", create.ID())
	}

	if err := h.store.AddActivity(create); err != nil {
		return orberrors.NewTransient(fmt.Errorf("store 'Create' activity [%s]: %w", create.ID(), err))
	}

	if err := h.store.AddReference(store.Inbox, h.ServiceIRI, create.ID().URL()); err != nil {
		return orberrors.NewTransient(fmt.Errorf("add 'Create' activity [%s] to inbox: %w", create.ID(), err))
	}

	if err := h.announceToFollowers(ctx, create, source); err != nil {
		logger.Warnf("[%s] Unable to announce 'Create' activity [%s] to our followers: %s",
			h.ServiceName, create.ID(), err)
	}

	h.notify(create)

	return nil
}

// handleUpdateActivity handles an 'Update' activity. The update is only honored if it originates
// from the actor that owns the object being updated.
func (h *Inbox) handleUpdateActivity(_ context.Context, update *vocab.ActivityType) error {
	logger.Debugf("[%s] Handling 'Update' activity [%s]", h.ServiceName, update.ID())

	if update.Actor() == nil {
		return fmt.Errorf("no actor specified in 'Update' activity [%s]", update.ID())
	}

	if update.Object() == nil || update.Object().Object() == nil {
		return fmt.Errorf("no embedded object specified in 'Update' activity [%s]", update.ID())
	}

	if err := h.store.AddActivity(update); err != nil {
		return orberrors.NewTransient(fmt.Errorf("store 'Update' activity [%s]: %w", update.ID(), err))
	}

	h.notify(update)

	return nil
}

// handleDeleteActivity handles a 'Delete' activity, recording the tombstone activity in the store.
func (h *Inbox) handleDeleteActivity(_ context.Context, del *vocab.ActivityType) error {
	logger.Debugf("[%s] Handling 'Delete' activity [%s]", h.ServiceName, del.ID())

	if del.Actor() == nil {
		return fmt.Errorf("no actor specified in 'Delete' activity [%s]", del.ID())
	}

	objIRI := del.Object().IRI()
	if objIRI == nil && del.Object().Object() != nil {
		objIRI = del.Object().Object().ID().URL()
	}

	if objIRI == nil {
		return fmt.Errorf("no object IRI specified in 'Delete' activity [%s]", del.ID())
	}

	if err := h.store.AddActivity(del); err != nil {
		return orberrors.NewTransient(fmt.Errorf("store 'Delete' activity [%s]: %w", del.ID(), err))
	}

	h.notify(del)

	return nil
}

func (h *Inbox) handleReferenceActivity(ctx context.Context, activity *vocab.ActivityType, refType store.ReferenceType,
	auth service.ActorAuth, getTargetIRI func() *url.URL,
) error {
	logger.Debugf("[%s] Handling '%s' activity [%s]", h.ServiceName, activity.Type(), activity.ID())

	if err := h.validateActivity(activity, getTargetIRI); err != nil {
		return fmt.Errorf("validate '%s' activity [%s]: %w", activity.Type(), activity.ID(), err)
	}

	actorIRI := activity.Actor()

	hasRef, err := h.hasReference(h.ServiceIRI, actorIRI, refType)
	if err != nil {
		return err
	}

	if hasRef {
		logger.Debugf("[%s] Reference [%s] of type %s already exists for %s. Replying with 'Accept' activity.",
			h.ServiceName, actorIRI, refType, h.ServiceIRI)

		return h.postAccept(ctx, activity, actorIRI)
	}

	actor, err := h.resolveActor(actorIRI)
	if err != nil {
		return fmt.Errorf("unable to retrieve actor [%s]: %w", actorIRI, err)
	}

	accept, err := auth.AuthorizeActor(actor)
	if err != nil {
		return fmt.Errorf("authorize actor [%s]: %w", actorIRI, err)
	}

	if accept {
		logger.Debugf("[%s] Request [%s] has been accepted. Adding reference to actor and replying"+
			" with 'Accept' activity.", h.ServiceName, activity.ID())

		return h.acceptActor(ctx, activity, actor, refType)
	}

	logger.Debugf("[%s] Request [%s] has been rejected. Replying with 'Reject' activity.",
		h.ServiceName, activity.ID())

	return h.postReject(ctx, activity, actorIRI)
}

func (h *Inbox) handleFollowActivity(ctx context.Context, follow *vocab.ActivityType) error {
	return h.handleReferenceActivity(ctx, follow, store.Follower, h.FollowerAuth,
		func() *url.URL {
			return follow.Object().IRI()
		},
	)
}

func (h *Inbox) validateActivity(activity *vocab.ActivityType, getTargetIRI func() *url.URL) error {
	if activity.Actor() == nil {
		return fmt.Errorf("no actor specified")
	}

	iri := getTargetIRI()
	if iri == nil {
		return fmt.Errorf("no IRI specified")
	}

	// Make sure that the IRI is targeting this service. If not then ignore the message.
	if iri.String() != h.ServiceIRI.String() {
		return fmt.Errorf("this service is not the target object for the '%s'", activity.Type())
	}

	return nil
}

func (h *Inbox) acceptActor(ctx context.Context, activity *vocab.ActivityType, actor *vocab.ActorType,
	refType store.ReferenceType,
) error {
	if err := h.store.AddReference(refType, h.ServiceIRI, actor.ID().URL()); err != nil {
		return orberrors.NewTransient(fmt.Errorf("unable to store reference: %w", err))
	}

	return h.postAccept(ctx, activity, actor.ID().URL())
}

func (h *Inbox) handleAcceptActivity(ctx context.Context, accept *vocab.ActivityType) error {
	logger.Debugf("[%s] Handling 'Accept' activity [%s]", h.ServiceName, accept.ID())

	if err := h.validateAcceptRejectActivity(accept); err != nil {
		return err
	}

	activity := accept.Object().Activity()

	// Make sure that the original activity was posted to our outbox, otherwise it may be an attempt
	// to forcefully add an unsolicited follower.
	if _, err := h.ensureActivityInOutbox(activity); err != nil {
		return fmt.Errorf("ensure target activity of 'Accept' is in outbox %s: %w", activity.ID(), err)
	}

	switch {
	case activity.Type().Is(vocab.TypeFollow):
		if err := h.handleAccept(accept, store.Following); err != nil {
			return fmt.Errorf("handle accept 'Follow' activity %s: %w", accept.ID(), err)
		}
	default:
		return fmt.Errorf("unsupported activity type [%s] in the 'object' field of the 'Accept' activity",
			activity.Type())
	}

	_ = ctx

	h.notify(accept)

	return nil
}

func (h *Inbox) handleAccept(accept *vocab.ActivityType, refType store.ReferenceType) error {
	exists, err := h.hasReference(h.ServiceIRI, accept.Actor(), refType)
	if err != nil {
		return fmt.Errorf("query '%s' for actor %s: %w", refType, accept.Actor(), err)
	}

	if exists {
		return fmt.Errorf("actor %s is already in the '%s' collection", accept.Actor(), refType)
	}

	if err := h.store.AddReference(refType, h.ServiceIRI, accept.Actor()); err != nil {
		return orberrors.NewTransient(fmt.Errorf("handle accept '%s' activity %s: %w", refType, accept.ID(), err))
	}

	return nil
}

func (h *Inbox) handleRejectActivity(reject *vocab.ActivityType) error {
	logger.Debugf("[%s] Handling 'Reject' activity [%s]", h.ServiceName, reject.ID())

	if err := h.validateAcceptRejectActivity(reject); err != nil {
		return err
	}

	h.notify(reject)

	return nil
}

func (h *Inbox) validateAcceptRejectActivity(a *vocab.ActivityType) error {
	if a.Actor() == nil {
		return fmt.Errorf("no actor specified in '%s' activity", a.Type())
	}

	activity := a.Object().Activity()
	if activity == nil {
		return fmt.Errorf("no activity specified in the 'object' field of the '%s' activity", a.Type())
	}

	if !activity.Type().Is(vocab.TypeFollow) {
		return fmt.Errorf("unsupported activity type [%s] in the 'object' field of the '%s' activity",
			activity.Type(), a.Type())
	}

	iri := activity.Actor()
	if iri == nil {
		return fmt.Errorf("no actor specified in the object of the '%s' activity", a.Type())
	}

	// Make sure that the actorIRI in the original activity is this service.
	if iri.String() != h.ServiceIRI.String() {
		return fmt.Errorf("the actor in the object of the '%s' activity is not this service", a.Type())
	}

	return nil
}

func (h *Inbox) ensureActivityInOutbox(activity *vocab.ActivityType) (*vocab.ActivityType, error) {
	origActivity, err := h.store.GetActivity(activity.ID().URL())
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}

	it, err := h.store.QueryReferences(store.Outbox,
		store.NewCriteria(store.WithObjectIRI(h.ServiceIRI), store.WithReferenceIRI(activity.ID().URL())),
	)
	if err != nil {
		return nil, orberrors.NewTransient(fmt.Errorf("query outbox: %w", err))
	}

	defer func() { _ = it.Close() }()

	if _, err := it.Next(); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("activity was not posted to this service's outbox")
		}

		return nil, orberrors.NewTransient(fmt.Errorf("get next reference: %w", err))
	}

	return origActivity, nil
}

func (h *Inbox) postAccept(ctx context.Context, activity *vocab.ActivityType, toIRI *url.URL) error {
	acceptActivity := vocab.NewAcceptActivity(
		vocab.NewObjectProperty(vocab.WithActivity(activity)),
		vocab.WithTo(toIRI),
	)

	h.notify(activity)

	logger.Debugf("[%s] Publishing 'Accept' activity to %s", h.ServiceName, toIRI)

	if _, err := h.outbox.Post(ctx, acceptActivity); err != nil {
		return orberrors.NewTransient(fmt.Errorf("unable to reply with 'Accept' to %s: %w", toIRI, err))
	}

	return nil
}

func (h *Inbox) postReject(ctx context.Context, activity *vocab.ActivityType, toIRI *url.URL) error {
	reject := vocab.NewRejectActivity(
		vocab.NewObjectProperty(vocab.WithActivity(activity)),
		vocab.WithTo(toIRI),
	)

	logger.Debugf("[%s] Publishing 'Reject' activity to %s", h.ServiceName, toIRI)

	if _, err := h.outbox.Post(ctx, reject); err != nil {
		return orberrors.NewTransient(fmt.Errorf("unable to reply with 'Reject' to %s: %w", toIRI, err))
	}

	return nil
}

func (h *Inbox) hasReference(objectIRI, refIRI *url.URL, refType store.ReferenceType) (bool, error) {
	it, err := h.store.QueryReferences(refType,
		store.NewCriteria(
			store.WithObjectIRI(objectIRI),
			store.WithReferenceIRI(refIRI),
		),
	)
	if err != nil {
		return false, orberrors.NewTransient(fmt.Errorf("query references: %w", err))
	}

	defer func() { _ = it.Close() }()

	if _, err := it.Next(); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}

		return false, orberrors.NewTransient(fmt.Errorf("get next reference: %w", err))
	}

	return true, nil
}

// handleAnnounceActivity handles an 'Announce' activity: the announced object is recorded as a
// 'Share' reference and the activity is forwarded to our own subscribers.
func (h *Inbox) handleAnnounceActivity(_ context.Context, announce *vocab.ActivityType) error {
	logger.Debugf("[%s] Handling 'Announce' activity [%s]", h.ServiceName, announce.ID())

	objIRI := announce.Object().IRI()
	if objIRI == nil {
		return fmt.Errorf("no object IRI specified in 'Announce' activity [%s]", announce.ID())
	}

	if err := h.store.AddActivity(announce); err != nil {
		return orberrors.NewTransient(fmt.Errorf("store 'Announce' activity [%s]: %w", announce.ID(), err))
	}

	if err := h.store.AddReference(store.Share, objIRI, announce.ID().URL()); err != nil {
		return orberrors.NewTransient(fmt.Errorf("add 'Share' reference for [%s]: %w", objIRI, err))
	}

	h.notify(announce)

	return nil
}

// announceToFollowers re-announces an object created by one of our followers to our own followers,
// excluding the original actor so it doesn't receive a copy of its own post back.
func (h *Inbox) announceToFollowers(ctx context.Context, create *vocab.ActivityType, source *url.URL) error {
	isFollower, err := h.hasReference(h.ServiceIRI, create.Actor(), store.Follower)
	if err != nil {
		return err
	}

	if !isFollower {
		return nil
	}

	_ = source

	announce := vocab.NewAnnounceActivity(
		vocab.NewObjectProperty(vocab.WithIRI(create.Object().IRI())),
		vocab.WithTo(h.followersIRI),
	)

	if _, err := h.outbox.Post(ctx, announce, create.Actor()); err != nil {
		return fmt.Errorf("post 'Announce' activity: %w", err)
	}

	return nil
}

func (h *Inbox) handleLikeActivity(like *vocab.ActivityType) error {
	logger.Debugf("[%s] Handling 'Like' activity [%s]", h.ServiceName, like.ID())

	objIRI := like.Object().IRI()
	if objIRI == nil {
		return fmt.Errorf("no object IRI specified in 'Like' activity [%s]", like.ID())
	}

	if err := h.store.AddActivity(like); err != nil {
		return orberrors.NewTransient(fmt.Errorf("store 'Like' activity [%s]: %w", like.ID(), err))
	}

	if err := h.store.AddReference(store.Liked, objIRI, like.ID().URL()); err != nil {
		return orberrors.NewTransient(fmt.Errorf("add 'Liked' reference for [%s]: %w", objIRI, err))
	}

	h.notify(like)

	return nil
}

// handleAddActivity handles an 'Add' activity: the object is added to the collection identified
// by the activity's target.
func (h *Inbox) handleAddActivity(add *vocab.ActivityType) error {
	logger.Debugf("[%s] Handling 'Add' activity [%s]", h.ServiceName, add.ID())

	refType, targetIRI, objIRI, err := h.collectionMembershipParams(add)
	if err != nil {
		return err
	}

	if err := h.store.AddReference(refType, targetIRI, objIRI); err != nil {
		return orberrors.NewTransient(fmt.Errorf("add reference for 'Add' activity [%s]: %w", add.ID(), err))
	}

	h.notify(add)

	return nil
}

// handleRemoveActivity handles a 'Remove' activity: the object is removed from the collection
// identified by the activity's target.
func (h *Inbox) handleRemoveActivity(remove *vocab.ActivityType) error {
	logger.Debugf("[%s] Handling 'Remove' activity [%s]", h.ServiceName, remove.ID())

	refType, targetIRI, objIRI, err := h.collectionMembershipParams(remove)
	if err != nil {
		return err
	}

	if err := h.store.DeleteReference(refType, targetIRI, objIRI); err != nil {
		return orberrors.NewTransient(fmt.Errorf("delete reference for 'Remove' activity [%s]: %w", remove.ID(), err))
	}

	h.notify(remove)

	return nil
}

// collectionMembershipParams validates and extracts the reference type, target and object IRI
// for an 'Add'/'Remove' activity. Only the local 'followers' collection may be targeted directly;
// any other collection membership is managed implicitly (e.g. 'Like', 'Announce').
func (h *Inbox) collectionMembershipParams(activity *vocab.ActivityType) (store.ReferenceType, *url.URL, *url.URL, error) {
	if activity.Actor() == nil {
		return "", nil, nil, fmt.Errorf("no actor specified in '%s' activity", activity.Type())
	}

	targetIRI := activity.Target().IRI()
	if targetIRI == nil {
		return "", nil, nil, fmt.Errorf("no target specified in '%s' activity", activity.Type())
	}

	objIRI := activity.Object().IRI()
	if objIRI == nil {
		return "", nil, nil, fmt.Errorf("no object specified in '%s' activity", activity.Type())
	}

	if targetIRI.String() != h.followersIRI.String() {
		return "", nil, nil, fmt.Errorf("unsupported target for '%s' activity: %s", activity.Type(), targetIRI)
	}

	return store.Follower, h.ServiceIRI, objIRI, nil
}

// handleBlockActivity handles a 'Block' activity, recording the blocked actor so that future
// deliveries and interactions from it can be rejected.
func (h *Inbox) handleBlockActivity(block *vocab.ActivityType) error {
	logger.Debugf("[%s] Handling 'Block' activity [%s]", h.ServiceName, block.ID())

	if block.Actor() == nil || block.Actor().String() != h.ServiceIRI.String() {
		return fmt.Errorf("'Block' activities may only be issued by this service")
	}

	objIRI := block.Object().IRI()
	if objIRI == nil {
		return fmt.Errorf("no object IRI specified in 'Block' activity [%s]", block.ID())
	}

	if err := h.store.AddReference(store.Blocked, h.ServiceIRI, objIRI); err != nil {
		return orberrors.NewTransient(fmt.Errorf("add 'Blocked' reference for [%s]: %w", objIRI, err))
	}

	if err := h.store.DeleteReference(store.Follower, h.ServiceIRI, objIRI); err != nil {
		return orberrors.NewTransient(fmt.Errorf("remove follower reference for [%s]: %w", objIRI, err))
	}

	h.notify(block)

	return nil
}
