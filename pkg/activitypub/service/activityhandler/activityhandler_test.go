/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package activityhandler

import (
	"context"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/trustbloc/edge-core/pkg/log"

	apmocks "github.com/fediforge/fediforge/pkg/activitypub/mocks"
	"github.com/fediforge/fediforge/pkg/activitypub/service/mocks"
	"github.com/fediforge/fediforge/pkg/activitypub/service/spi"
	"github.com/fediforge/fediforge/pkg/activitypub/store/memstore"
	store "github.com/fediforge/fediforge/pkg/activitypub/store/spi"
	"github.com/fediforge/fediforge/pkg/activitypub/vocab"
	"github.com/fediforge/fediforge/pkg/internal/testutil"
	"github.com/fediforge/fediforge/pkg/lifecycle"
)

var (
	service1IRI = testutil.MustParseURL("https://service1.example.com/services/service1")
	service2IRI = testutil.MustParseURL("https://service2.example.com/services/service2")
	service3IRI = testutil.MustParseURL("https://service3.example.com/services/service3")
)

func newCfg(serviceName string, serviceIRI *url.URL) *Config {
	return &Config{
		ServiceName: serviceName,
		ServiceIRI:  serviceIRI,
	}
}

func TestNewInbox(t *testing.T) {
	cfg := newCfg("service1", service1IRI)

	h := NewInbox(cfg, memstore.New(cfg.ServiceName), mocks.NewOutbox(), &apmocks.HTTPTransport{})
	require.NotNil(t, h)

	h.Start()
	require.Equal(t, lifecycle.StateStarted, h.State())

	h.Stop()
	require.Equal(t, lifecycle.StateStopped, h.State())
}

func TestNewOutbox(t *testing.T) {
	cfg := newCfg("service1", service1IRI)

	h := NewOutbox(cfg, memstore.New(cfg.ServiceName), &apmocks.HTTPTransport{})
	require.NotNil(t, h)

	h.Start()
	require.Equal(t, lifecycle.StateStarted, h.State())

	h.Stop()
	require.Equal(t, lifecycle.StateStopped, h.State())
}

func TestInbox_HandleUnsupportedActivity(t *testing.T) {
	cfg := newCfg("service1", service1IRI)

	h := NewInbox(cfg, memstore.New(cfg.ServiceName), mocks.NewOutbox(), &apmocks.HTTPTransport{})

	activity := &vocab.ActivityType{
		ObjectType: vocab.NewObject(vocab.WithType(vocab.Type("unsupported_type"))),
	}

	err := h.HandleActivity(context.Background(), nil, activity)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported activity type")
}

func TestInbox_HandleCreateActivity(t *testing.T) {
	cfg := newCfg("service2", service2IRI)

	as := memstore.New(cfg.ServiceName)
	ob := mocks.NewOutbox().WithActivityID(testutil.NewMockID(service2IRI, "/activities/123456789"))

	h := NewInbox(cfg, as, ob, &apmocks.HTTPTransport{})

	t.Run("Success - announce to followers", func(t *testing.T) {
		require.NoError(t, as.AddReference(store.Follower, service2IRI, service1IRI))

		create := vocab.NewCreateActivity(
			vocab.NewObjectProperty(vocab.WithObject(vocab.NewObject(vocab.WithType(vocab.TypeNote)))),
			vocab.WithID(newActivityID(service1IRI)),
			vocab.WithActor(service1IRI),
			vocab.WithTo(service2IRI),
		)

		require.NoError(t, h.HandleActivity(context.Background(), nil, create))

		stored, err := as.GetActivity(create.ID().URL())
		require.NoError(t, err)
		require.NotNil(t, stored)

		require.True(t, len(ob.Activities().QueryByType(vocab.TypeAnnounce)) > 0)
	})

	t.Run("No object -> error", func(t *testing.T) {
		create := vocab.NewCreateActivity(
			vocab.NewObjectProperty(),
			vocab.WithID(newActivityID(service1IRI)),
			vocab.WithActor(service1IRI),
			vocab.WithTo(service2IRI),
		)

		err := h.HandleActivity(context.Background(), nil, create)
		require.Error(t, err)
	})
}

func TestInbox_HandleUpdateActivity(t *testing.T) {
	cfg := newCfg("service2", service2IRI)

	as := memstore.New(cfg.ServiceName)
	h := NewInbox(cfg, as, mocks.NewOutbox(), &apmocks.HTTPTransport{})

	t.Run("Success", func(t *testing.T) {
		update := vocab.NewUpdateActivity(
			vocab.NewObjectProperty(vocab.WithObject(vocab.NewObject(vocab.WithType(vocab.TypeNote)))),
			vocab.WithID(newActivityID(service1IRI)),
			vocab.WithActor(service1IRI),
			vocab.WithTo(service2IRI),
		)

		require.NoError(t, h.HandleActivity(context.Background(), nil, update))

		stored, err := as.GetActivity(update.ID().URL())
		require.NoError(t, err)
		require.NotNil(t, stored)
	})

	t.Run("No actor -> error", func(t *testing.T) {
		update := vocab.NewUpdateActivity(
			vocab.NewObjectProperty(vocab.WithObject(vocab.NewObject(vocab.WithType(vocab.TypeNote)))),
			vocab.WithID(newActivityID(service1IRI)),
			vocab.WithTo(service2IRI),
		)

		require.Error(t, h.HandleActivity(context.Background(), nil, update))
	})

	t.Run("No embedded object -> error", func(t *testing.T) {
		update := vocab.NewUpdateActivity(
			vocab.NewObjectProperty(vocab.WithIRI(service1IRI)),
			vocab.WithID(newActivityID(service1IRI)),
			vocab.WithActor(service1IRI),
			vocab.WithTo(service2IRI),
		)

		require.Error(t, h.HandleActivity(context.Background(), nil, update))
	})
}

func TestInbox_HandleDeleteActivity(t *testing.T) {
	cfg := newCfg("service2", service2IRI)

	as := memstore.New(cfg.ServiceName)
	h := NewInbox(cfg, as, mocks.NewOutbox(), &apmocks.HTTPTransport{})

	del := vocab.NewDeleteActivity(
		vocab.NewObjectProperty(vocab.WithIRI(newActivityID(service1IRI))),
		vocab.WithID(newActivityID(service1IRI)),
		vocab.WithActor(service1IRI),
		vocab.WithTo(service2IRI),
	)

	require.NoError(t, h.HandleActivity(context.Background(), nil, del))

	stored, err := as.GetActivity(del.ID().URL())
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestInbox_HandleFollowActivity(t *testing.T) {
	cfg := newCfg("service1", service1IRI)

	as := memstore.New(cfg.ServiceName)
	ob := mocks.NewOutbox()

	require.NoError(t, as.PutActor(vocab.NewService(service2IRI)))
	require.NoError(t, as.PutActor(vocab.NewService(service3IRI)))

	followerAuth := mocks.NewActorAuth()

	h := NewInbox(cfg, as, ob, &apmocks.HTTPTransport{}, spi.WithFollowAuth(followerAuth))

	t.Run("Accept", func(t *testing.T) {
		followerAuth.WithAccept()

		follow := vocab.NewFollowActivity(
			vocab.NewObjectProperty(vocab.WithIRI(service1IRI)),
			vocab.WithID(newActivityID(service2IRI)),
			vocab.WithActor(service2IRI),
			vocab.WithTo(service1IRI),
		)

		require.NoError(t, h.HandleActivity(context.Background(), nil, follow))
		require.Len(t, ob.Activities().QueryByType(vocab.TypeAccept), 1)

		// A second 'Follow' from the same actor should be answered with 'Accept' again, without
		// re-adding the reference.
		follow = vocab.NewFollowActivity(
			vocab.NewObjectProperty(vocab.WithIRI(service1IRI)),
			vocab.WithID(newActivityID(service2IRI)),
			vocab.WithActor(service2IRI),
			vocab.WithTo(service1IRI),
		)

		require.NoError(t, h.HandleActivity(context.Background(), nil, follow))
		require.Len(t, ob.Activities().QueryByType(vocab.TypeAccept), 2)
	})

	t.Run("Reject", func(t *testing.T) {
		followerAuth.WithReject()

		follow := vocab.NewFollowActivity(
			vocab.NewObjectProperty(vocab.WithIRI(service1IRI)),
			vocab.WithID(newActivityID(service3IRI)),
			vocab.WithActor(service3IRI),
			vocab.WithTo(service1IRI),
		)

		require.NoError(t, h.HandleActivity(context.Background(), nil, follow))
		require.Len(t, ob.Activities().QueryByType(vocab.TypeReject), 1)
	})

	t.Run("No actor -> error", func(t *testing.T) {
		follow := vocab.NewFollowActivity(
			vocab.NewObjectProperty(vocab.WithIRI(service1IRI)),
			vocab.WithID(newActivityID(service2IRI)),
			vocab.WithTo(service1IRI),
		)

		require.Error(t, h.HandleActivity(context.Background(), nil, follow))
	})

	t.Run("No target IRI -> error", func(t *testing.T) {
		follow := vocab.NewFollowActivity(
			vocab.NewObjectProperty(),
			vocab.WithID(newActivityID(service2IRI)),
			vocab.WithActor(service2IRI),
			vocab.WithTo(service1IRI),
		)

		require.Error(t, h.HandleActivity(context.Background(), nil, follow))
	})

	t.Run("Wrong target -> error", func(t *testing.T) {
		follow := vocab.NewFollowActivity(
			vocab.NewObjectProperty(vocab.WithIRI(service3IRI)),
			vocab.WithID(newActivityID(service2IRI)),
			vocab.WithActor(service2IRI),
			vocab.WithTo(service1IRI),
		)

		require.Error(t, h.HandleActivity(context.Background(), nil, follow))
	})

	t.Run("Actor not found -> error", func(t *testing.T) {
		unreachableTransport := &apmocks.HTTPTransport{}
		unreachableTransport.GetReturns(nil, fmt.Errorf("connection refused"))

		hh := NewInbox(cfg, as, ob, unreachableTransport, spi.WithFollowAuth(followerAuth))

		unknownIRI := testutil.MustParseURL("https://service4.example.com/services/service4")

		follow := vocab.NewFollowActivity(
			vocab.NewObjectProperty(vocab.WithIRI(service1IRI)),
			vocab.WithID(newActivityID(unknownIRI)),
			vocab.WithActor(unknownIRI),
			vocab.WithTo(service1IRI),
		)

		require.Error(t, hh.HandleActivity(context.Background(), nil, follow))
	})
}

func TestInbox_HandleAcceptActivity(t *testing.T) {
	cfg := newCfg("service1", service1IRI)

	as := memstore.New(cfg.ServiceName)
	ob := mocks.NewOutbox()

	h := NewInbox(cfg, as, ob, &apmocks.HTTPTransport{})

	t.Run("Success", func(t *testing.T) {
		follow := vocab.NewFollowActivity(
			vocab.NewObjectProperty(vocab.WithIRI(service2IRI)),
			vocab.WithID(newActivityID(service1IRI)),
			vocab.WithActor(service1IRI),
			vocab.WithTo(service2IRI),
		)

		require.NoError(t, as.AddActivity(follow))
		require.NoError(t, as.AddReference(store.Outbox, service1IRI, follow.ID().URL()))

		accept := vocab.NewAcceptActivity(
			vocab.NewObjectProperty(vocab.WithActivity(follow)),
			vocab.WithID(newActivityID(service2IRI)),
			vocab.WithActor(service2IRI),
			vocab.WithTo(service1IRI),
		)

		require.NoError(t, h.HandleActivity(context.Background(), nil, accept))
	})

	t.Run("Activity not posted to outbox -> error", func(t *testing.T) {
		follow := vocab.NewFollowActivity(
			vocab.NewObjectProperty(vocab.WithIRI(service3IRI)),
			vocab.WithID(newActivityID(service1IRI)),
			vocab.WithActor(service1IRI),
			vocab.WithTo(service3IRI),
		)

		require.NoError(t, as.AddActivity(follow))

		accept := vocab.NewAcceptActivity(
			vocab.NewObjectProperty(vocab.WithActivity(follow)),
			vocab.WithID(newActivityID(service3IRI)),
			vocab.WithActor(service3IRI),
			vocab.WithTo(service1IRI),
		)

		require.Error(t, h.HandleActivity(context.Background(), nil, accept))
	})

	t.Run("No actor in 'Accept' -> error", func(t *testing.T) {
		accept := vocab.NewAcceptActivity(
			vocab.NewObjectProperty(),
			vocab.WithID(newActivityID(service2IRI)),
			vocab.WithTo(service1IRI),
		)

		require.Error(t, h.HandleActivity(context.Background(), nil, accept))
	})

	t.Run("Unsupported activity type embedded -> error", func(t *testing.T) {
		like := vocab.NewLikeActivity(
			vocab.NewObjectProperty(vocab.WithIRI(service1IRI)),
			vocab.WithID(newActivityID(service1IRI)),
			vocab.WithActor(service1IRI),
		)

		accept := vocab.NewAcceptActivity(
			vocab.NewObjectProperty(vocab.WithActivity(like)),
			vocab.WithID(newActivityID(service2IRI)),
			vocab.WithActor(service2IRI),
			vocab.WithTo(service1IRI),
		)

		require.Error(t, h.HandleActivity(context.Background(), nil, accept))
	})
}

func TestInbox_HandleRejectActivity(t *testing.T) {
	cfg := newCfg("service1", service1IRI)

	as := memstore.New(cfg.ServiceName)
	h := NewInbox(cfg, as, mocks.NewOutbox(), &apmocks.HTTPTransport{})

	follow := vocab.NewFollowActivity(
		vocab.NewObjectProperty(vocab.WithIRI(service2IRI)),
		vocab.WithID(newActivityID(service1IRI)),
		vocab.WithActor(service1IRI),
		vocab.WithTo(service2IRI),
	)

	reject := vocab.NewRejectActivity(
		vocab.NewObjectProperty(vocab.WithActivity(follow)),
		vocab.WithID(newActivityID(service2IRI)),
		vocab.WithActor(service2IRI),
		vocab.WithTo(service1IRI),
	)

	require.NoError(t, h.HandleActivity(context.Background(), nil, reject))
}

func TestInbox_HandleAnnounceActivity(t *testing.T) {
	cfg := newCfg("service1", service1IRI)

	as := memstore.New(cfg.ServiceName)
	h := NewInbox(cfg, as, mocks.NewOutbox(), &apmocks.HTTPTransport{})

	objIRI := testutil.NewMockID(service2IRI, "/posts/12345")

	announce := vocab.NewAnnounceActivity(
		vocab.NewObjectProperty(vocab.WithIRI(objIRI)),
		vocab.WithID(newActivityID(service2IRI)),
		vocab.WithActor(service2IRI),
		vocab.WithTo(service1IRI),
	)

	require.NoError(t, h.HandleActivity(context.Background(), nil, announce))

	it, err := as.QueryReferences(store.Share, store.NewCriteria(store.WithObjectIRI(objIRI)))
	require.NoError(t, err)

	defer func() { _ = it.Close() }()

	total, err := it.TotalItems()
	require.NoError(t, err)
	require.Equal(t, 1, total)
}

func TestInbox_HandleLikeActivity(t *testing.T) {
	cfg := newCfg("service1", service1IRI)

	as := memstore.New(cfg.ServiceName)
	h := NewInbox(cfg, as, mocks.NewOutbox(), &apmocks.HTTPTransport{})

	objIRI := testutil.NewMockID(service1IRI, "/posts/12345")

	like := vocab.NewLikeActivity(
		vocab.NewObjectProperty(vocab.WithIRI(objIRI)),
		vocab.WithID(newActivityID(service2IRI)),
		vocab.WithActor(service2IRI),
		vocab.WithTo(service1IRI),
	)

	require.NoError(t, h.HandleActivity(context.Background(), nil, like))

	it, err := as.QueryReferences(store.Liked, store.NewCriteria(store.WithObjectIRI(objIRI)))
	require.NoError(t, err)

	defer func() { _ = it.Close() }()

	total, err := it.TotalItems()
	require.NoError(t, err)
	require.Equal(t, 1, total)
}

func TestInbox_HandleAddRemoveActivity(t *testing.T) {
	cfg := newCfg("service1", service1IRI)

	as := memstore.New(cfg.ServiceName)
	h := NewInbox(cfg, as, mocks.NewOutbox(), &apmocks.HTTPTransport{})

	followersIRI := testutil.NewMockID(service1IRI, "/followers")

	t.Run("Add", func(t *testing.T) {
		add := vocab.NewAddActivity(
			vocab.NewObjectProperty(vocab.WithIRI(service2IRI)),
			vocab.WithID(newActivityID(service1IRI)),
			vocab.WithActor(service1IRI),
			vocab.WithTarget(vocab.NewObjectProperty(vocab.WithIRI(followersIRI))),
		)

		require.NoError(t, h.HandleActivity(context.Background(), nil, add))

		it, err := as.QueryReferences(store.Follower, store.NewCriteria(store.WithObjectIRI(service1IRI)))
		require.NoError(t, err)

		defer func() { _ = it.Close() }()

		total, err := it.TotalItems()
		require.NoError(t, err)
		require.Equal(t, 1, total)
	})

	t.Run("Remove", func(t *testing.T) {
		remove := vocab.NewRemoveActivity(
			vocab.NewObjectProperty(vocab.WithIRI(service2IRI)),
			vocab.WithID(newActivityID(service1IRI)),
			vocab.WithActor(service1IRI),
			vocab.WithTarget(vocab.NewObjectProperty(vocab.WithIRI(followersIRI))),
		)

		require.NoError(t, h.HandleActivity(context.Background(), nil, remove))

		it, err := as.QueryReferences(store.Follower, store.NewCriteria(store.WithObjectIRI(service1IRI)))
		require.NoError(t, err)

		defer func() { _ = it.Close() }()

		total, err := it.TotalItems()
		require.NoError(t, err)
		require.Equal(t, 0, total)
	})

	t.Run("Unsupported target -> error", func(t *testing.T) {
		add := vocab.NewAddActivity(
			vocab.NewObjectProperty(vocab.WithIRI(service2IRI)),
			vocab.WithID(newActivityID(service1IRI)),
			vocab.WithActor(service1IRI),
			vocab.WithTarget(vocab.NewObjectProperty(vocab.WithIRI(service3IRI))),
		)

		require.Error(t, h.HandleActivity(context.Background(), nil, add))
	})
}

func TestInbox_HandleBlockActivity(t *testing.T) {
	cfg := newCfg("service1", service1IRI)

	as := memstore.New(cfg.ServiceName)
	h := NewInbox(cfg, as, mocks.NewOutbox(), &apmocks.HTTPTransport{})

	require.NoError(t, as.AddReference(store.Follower, service1IRI, service2IRI))

	block := vocab.NewBlockActivity(
		vocab.NewObjectProperty(vocab.WithIRI(service2IRI)),
		vocab.WithID(newActivityID(service1IRI)),
		vocab.WithActor(service1IRI),
	)

	require.NoError(t, h.HandleActivity(context.Background(), nil, block))

	it, err := as.QueryReferences(store.Blocked, store.NewCriteria(store.WithObjectIRI(service1IRI)))
	require.NoError(t, err)

	defer func() { _ = it.Close() }()

	total, err := it.TotalItems()
	require.NoError(t, err)
	require.Equal(t, 1, total)

	t.Run("Actor is not this service -> error", func(t *testing.T) {
		block := vocab.NewBlockActivity(
			vocab.NewObjectProperty(vocab.WithIRI(service2IRI)),
			vocab.WithID(newActivityID(service2IRI)),
			vocab.WithActor(service2IRI),
		)

		require.Error(t, h.HandleActivity(context.Background(), nil, block))
	})
}

func TestInbox_HandleUndoFollowActivity(t *testing.T) {
	cfg := newCfg("service1", service1IRI)

	as := memstore.New(cfg.ServiceName)
	h := NewInbox(cfg, as, mocks.NewOutbox(), &apmocks.HTTPTransport{})

	require.NoError(t, as.AddReference(store.Follower, service1IRI, service2IRI))

	follow := vocab.NewFollowActivity(
		vocab.NewObjectProperty(vocab.WithIRI(service1IRI)),
		vocab.WithID(newActivityID(service2IRI)),
		vocab.WithActor(service2IRI),
	)

	require.NoError(t, as.AddActivity(follow))

	undo := vocab.NewUndoActivity(
		vocab.NewObjectProperty(vocab.WithIRI(follow.ID().URL())),
		vocab.WithID(newActivityID(service2IRI)),
		vocab.WithActor(service2IRI),
	)

	require.NoError(t, h.HandleActivity(context.Background(), nil, undo))

	it, err := as.QueryReferences(store.Follower, store.NewCriteria(store.WithObjectIRI(service1IRI)))
	require.NoError(t, err)

	defer func() { _ = it.Close() }()

	total, err := it.TotalItems()
	require.NoError(t, err)
	require.Equal(t, 0, total)

	t.Run("Actor mismatch -> error", func(t *testing.T) {
		require.NoError(t, as.AddReference(store.Follower, service1IRI, service2IRI))

		follow := vocab.NewFollowActivity(
			vocab.NewObjectProperty(vocab.WithIRI(service1IRI)),
			vocab.WithID(newActivityID(service2IRI)),
			vocab.WithActor(service2IRI),
		)

		require.NoError(t, as.AddActivity(follow))

		undo := vocab.NewUndoActivity(
			vocab.NewObjectProperty(vocab.WithIRI(follow.ID().URL())),
			vocab.WithID(newActivityID(service3IRI)),
			vocab.WithActor(service3IRI),
		)

		require.Error(t, h.HandleActivity(context.Background(), nil, undo))
	})
}

func TestOutbox_HandleUndoActivity(t *testing.T) {
	cfg := newCfg("service1", service1IRI)

	as := memstore.New(cfg.ServiceName)
	h := NewOutbox(cfg, as, &apmocks.HTTPTransport{})

	t.Run("Undo of 'Follow' removes the 'Following' reference", func(t *testing.T) {
		require.NoError(t, as.AddReference(store.Following, service1IRI, service2IRI))

		follow := vocab.NewFollowActivity(
			vocab.NewObjectProperty(vocab.WithIRI(service2IRI)),
			vocab.WithID(newActivityID(service1IRI)),
			vocab.WithActor(service1IRI),
		)

		undo := vocab.NewUndoActivity(
			vocab.NewObjectProperty(vocab.WithActivity(follow)),
			vocab.WithID(newActivityID(service1IRI)),
			vocab.WithActor(service1IRI),
		)

		require.NoError(t, h.HandleActivity(context.Background(), nil, undo))

		it, err := as.QueryReferences(store.Following, store.NewCriteria(store.WithObjectIRI(service1IRI)))
		require.NoError(t, err)

		defer func() { _ = it.Close() }()

		total, err := it.TotalItems()
		require.NoError(t, err)
		require.Equal(t, 0, total)
	})

	t.Run("Undo of 'Like' removes the 'Liked' reference", func(t *testing.T) {
		objIRI := testutil.NewMockID(service2IRI, "/posts/99")

		like := vocab.NewLikeActivity(
			vocab.NewObjectProperty(vocab.WithIRI(objIRI)),
			vocab.WithID(newActivityID(service1IRI)),
			vocab.WithActor(service1IRI),
		)

		require.NoError(t, as.AddReference(store.Liked, objIRI, like.ID().URL()))

		undo := vocab.NewUndoActivity(
			vocab.NewObjectProperty(vocab.WithActivity(like)),
			vocab.WithID(newActivityID(service1IRI)),
			vocab.WithActor(service1IRI),
		)

		require.NoError(t, h.HandleActivity(context.Background(), nil, undo))
	})

	t.Run("Not the actor -> error", func(t *testing.T) {
		follow := vocab.NewFollowActivity(
			vocab.NewObjectProperty(vocab.WithIRI(service2IRI)),
			vocab.WithID(newActivityID(service3IRI)),
			vocab.WithActor(service3IRI),
		)

		undo := vocab.NewUndoActivity(
			vocab.NewObjectProperty(vocab.WithActivity(follow)),
			vocab.WithID(newActivityID(service3IRI)),
			vocab.WithActor(service3IRI),
		)

		require.Error(t, h.HandleActivity(context.Background(), nil, undo))
	})

	t.Run("No activity type handler -> no-op", func(t *testing.T) {
		create := vocab.NewCreateActivity(
			vocab.NewObjectProperty(vocab.WithObject(vocab.NewObject(vocab.WithType(vocab.TypeNote)))),
			vocab.WithID(newActivityID(service1IRI)),
			vocab.WithActor(service1IRI),
		)

		require.NoError(t, h.HandleActivity(context.Background(), nil, create))
	})
}

func TestHandler_Subscribe(t *testing.T) {
	cfg := newCfg("service1", service1IRI)

	as := memstore.New(cfg.ServiceName)
	h := NewInbox(cfg, as, mocks.NewOutbox(), &apmocks.HTTPTransport{})

	ch := h.Subscribe()

	like := vocab.NewLikeActivity(
		vocab.NewObjectProperty(vocab.WithIRI(testutil.NewMockID(service1IRI, "/posts/1"))),
		vocab.WithID(newActivityID(service2IRI)),
		vocab.WithActor(service2IRI),
	)

	require.NoError(t, h.HandleActivity(context.Background(), nil, like))

	select {
	case a := <-ch:
		require.Equal(t, like.ID().String(), a.ID().String())
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
	}

	h.Stop()

	_, ok := <-ch
	require.False(t, ok)
}

func TestHandler_WithUndeliverableHandler(t *testing.T) {
	cfg := newCfg("service1", service1IRI)

	undeliverableHandler := mocks.NewUndeliverableHandler()

	h := NewInbox(cfg, memstore.New(cfg.ServiceName), mocks.NewOutbox(), &apmocks.HTTPTransport{},
		spi.WithUndeliverableHandler(undeliverableHandler))
	require.NotNil(t, h.UndeliverableHandler)

	activity := vocab.NewCreateActivity(
		vocab.NewObjectProperty(vocab.WithObject(vocab.NewObject(vocab.WithType(vocab.TypeNote)))),
		vocab.WithID(newActivityID(service1IRI)),
		vocab.WithActor(service1IRI),
	)

	h.UndeliverableHandler.HandleUndeliverableActivity(activity, "https://unreachable.example.com")

	ua := undeliverableHandler.Activity(activity.ID().String())
	require.NotNil(t, ua)
	require.Equal(t, "https://unreachable.example.com", ua.ToURL)
}

func newActivityID(serviceIRI fmt.Stringer) *url.URL {
	return testutil.NewMockID(serviceIRI, fmt.Sprintf("/activities/%s", uuid.New()))
}

func init() {
	log.SetLevel("activitypub_service", log.WARNING)
}
