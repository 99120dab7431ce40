/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vocab

import (
	"encoding/json"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fediforge/fediforge/pkg/internal/testutil"
)

var (
	host1    = testutil.MustParseURL("https://sally.example.com")
	service1 = testutil.MustParseURL("https://sally.example.com/services/service")

	createActivityID = newMockID(service1, "/activities/97bcd005-abb6-423d-a889-18bc1ce84988")
	followActivityID = newMockID(service1, "/activities/97b3d005-abb6-422d-a889-18bc1ee84988")
	inviteActivityID = newMockID(service1, "/activities/37b3d005-abb6-422d-a889-18bc1ee84985")
	acceptActivityID = newMockID(service1, "/activities/95b3d005-abb6-423d-a889-18bc1ee84989")
	rejectActivityID = newMockID(service1, "/activities/75b3d005-abb6-473d-a879-18bc1ee84979")
	offerActivityID  = newMockID(service1, "/activities/65b3d005-6bb6-673d-6879-18bc1ee84976")
	undoActivityID   = newMockID(service1, "/activities/77bcd005-abb6-433d-a889-18bc1ce64981")
	likeActivityID   = newMockID(service1, "/activities/87bcd005-abb6-433d-a889-18bc1ce84988")
)

func TestCreateTypeMarshal(t *testing.T) {
	followers := newMockID(service1, "/followers")
	note := newMockID(service1, "/notes/1")

	published := getStaticTime()

	t.Run("Marshal", func(t *testing.T) {
		create := NewCreateActivity(
			NewObjectProperty(WithObject(
				NewObject(
					WithID(note),
					WithType(TypeNote),
					WithContent("Hello, fediverse!"),
					WithAttributedTo(service1),
				),
			)),
			WithTo(followers),
			WithTo(PublicIRI),
			WithPublishedTime(&published),
		)

		create.SetID(createActivityID)
		create.SetActor(service1)

		bytes, err := json.Marshal(create)
		require.NoError(t, err)

		t.Log(string(bytes))

		require.Equal(t, testutil.GetCanonical(t, jsonCreate), string(bytes))
	})

	t.Run("Unmarshal", func(t *testing.T) {
		a := &ActivityType{}
		require.NoError(t, json.Unmarshal([]byte(jsonCreate), a))
		require.NotNil(t, a.Type())
		require.True(t, a.Type().Is(TypeCreate))

		id := a.ID()
		require.NotNil(t, id)
		require.Equal(t, createActivityID.String(), id.String())

		context := a.Context()
		require.NotNil(t, context)
		context.Contains(ContextActivityStreams)

		actorURI := a.Actor()
		require.NotNil(t, actorURI)
		require.Equal(t, service1.String(), actorURI.String())

		to := a.To()
		require.Len(t, to, 2)
		require.Equal(t, to[0].String(), followers.String())
		require.Equal(t, to[1].String(), PublicIRI.String())

		objProp := a.Object()
		require.NotNil(t, objProp)

		obj := objProp.Object()
		require.NotNil(t, obj)
		require.True(t, obj.Type().Is(TypeNote))
		require.Equal(t, "Hello, fediverse!", obj.Content())
		require.Equal(t, service1.String(), obj.AttributedTo().String())
	})
}

func TestAnnounceTypeMarshal(t *testing.T) {
	followers := newMockID(service1, "/followers")
	note := newMockID(host1, "/notes/some-shared-note")

	t.Run("Single object", func(t *testing.T) {
		published := getStaticTime()

		t.Run("Marshal", func(t *testing.T) {
			announce := NewAnnounceActivity(
				NewObjectProperty(WithIRI(note)),
				WithID(createActivityID),
				WithActor(service1),
				WithTo(followers), WithTo(PublicIRI),
				WithPublishedTime(&published),
			)

			bytes, err := json.Marshal(announce)
			require.NoError(t, err)
			t.Log(string(bytes))

			require.Equal(t, testutil.GetCanonical(t, jsonAnnounce), string(bytes))
		})

		t.Run("Unmarshal", func(t *testing.T) {
			a := &ActivityType{}
			require.NoError(t, json.Unmarshal([]byte(jsonAnnounce), a))
			require.NotNil(t, a.Type())
			require.True(t, a.Type().Is(TypeAnnounce))

			id := a.ID()
			require.NotNil(t, id)
			require.Equal(t, createActivityID.String(), id.String())

			context := a.Context()
			require.NotNil(t, context)
			context.Contains(ContextActivityStreams)

			to := a.To()
			require.Len(t, to, 2)
			require.Equal(t, to[0].String(), followers.String())
			require.Equal(t, to[1].String(), PublicIRI.String())
			require.Equal(t, service1.String(), a.Actor().String())

			pub := a.Published()
			require.NotNil(t, pub)
			require.True(t, pub.Equal(published))

			objProp := a.Object()
			require.NotNil(t, objProp)
			require.Equal(t, note, objProp.IRI())
		})
	})
}

func TestFollowTypeMarshal(t *testing.T) {
	org1Service := testutil.MustParseURL("https://org1.com/services/service1")
	org2Service := testutil.MustParseURL("https://org1.com/services/service2")

	t.Run("Marshal", func(t *testing.T) {
		follow := NewFollowActivity(
			NewObjectProperty(WithIRI(org2Service)),
			WithID(followActivityID),
			WithActor(org1Service),
			WithTo(org2Service),
		)

		bytes, err := json.Marshal(follow)
		require.NoError(t, err)
		t.Log(string(bytes))

		require.Equal(t, testutil.GetCanonical(t, jsonFollow), string(bytes))
	})

	t.Run("Unmarshal", func(t *testing.T) {
		a := &ActivityType{}
		require.NoError(t, json.Unmarshal([]byte(jsonFollow), a))
		require.NotNil(t, a.Type())
		require.True(t, a.Type().Is(TypeFollow))
		require.Equal(t, followActivityID.String(), a.ID().String())

		context := a.Context()
		require.NotNil(t, context)
		context.Contains(ContextActivityStreams)

		to := a.To()
		require.Len(t, to, 1)
		require.Equal(t, to[0].String(), org2Service.String())

		require.Equal(t, org1Service.String(), a.Actor().String())

		objProp := a.Object()
		require.NotNil(t, objProp)
		require.NotNil(t, objProp.IRI())
		require.Equal(t, org2Service.String(), objProp.IRI().String())
	})
}

func TestInviteTypeMarshal(t *testing.T) {
	org1Service := testutil.MustParseURL("https://org1.com/services/service1")
	org2Service := testutil.MustParseURL("https://org1.com/services/service2")
	group := testutil.MustParseURL("https://org1.com/groups/readers")

	t.Run("Marshal", func(t *testing.T) {
		invite := NewInviteActivity(
			NewObjectProperty(WithIRI(group)),
			WithID(inviteActivityID),
			WithActor(org1Service),
			WithTo(org2Service),
			WithTarget(NewObjectProperty(WithIRI(org2Service))),
		)

		bytes, err := json.Marshal(invite)
		require.NoError(t, err)
		t.Log(string(bytes))

		require.Equal(t, testutil.GetCanonical(t, jsonInvite), string(bytes))
	})

	t.Run("Unmarshal", func(t *testing.T) {
		a := &ActivityType{}
		require.NoError(t, json.Unmarshal([]byte(jsonInvite), a))
		require.NotNil(t, a.Type())
		require.True(t, a.Type().Is(TypeInvite))
		require.Equal(t, inviteActivityID.String(), a.ID().String())

		to := a.To()
		require.Len(t, to, 1)
		require.Equal(t, to[0].String(), org2Service.String())

		require.Equal(t, org1Service.String(), a.Actor().String())

		objProp := a.Object()
		require.NotNil(t, objProp.IRI())
		require.Equal(t, group.String(), objProp.IRI().String())

		target := a.Target()
		require.NotNil(t, target.IRI())
		require.Equal(t, org2Service.String(), target.IRI().String())
	})
}

func TestAcceptTypeMarshal(t *testing.T) {
	org1Service := testutil.MustParseURL("https://org1.com/services/service1")
	org2Service := testutil.MustParseURL("https://org1.com/services/service2")

	follow := NewFollowActivity(
		NewObjectProperty(WithIRI(org2Service)),
		WithID(followActivityID),
		WithTo(org2Service),
		WithActor(org1Service),
	)

	follow.object.Context = nil

	t.Run("Marshal", func(t *testing.T) {
		accept := NewAcceptActivity(
			NewObjectProperty(WithActivity(follow)),
			WithID(acceptActivityID),
			WithActor(org2Service),
			WithTo(org1Service),
		)

		bytes, err := json.Marshal(accept)
		require.NoError(t, err)
		t.Log(string(bytes))

		require.Equal(t, testutil.GetCanonical(t, jsonAccept), string(bytes))
	})

	t.Run("Unmarshal", func(t *testing.T) {
		a := &ActivityType{}
		require.NoError(t, json.Unmarshal([]byte(jsonAccept), a))
		require.NotNil(t, a.Type())
		require.True(t, a.Type().Is(TypeAccept))
		require.Equal(t, acceptActivityID.String(), a.ID().String())

		context := a.Context()
		require.NotNil(t, context)
		context.Contains(ContextActivityStreams)

		to := a.To()
		require.Len(t, to, 1)
		require.Equal(t, to[0].String(), org1Service.String())

		require.Equal(t, org2Service.String(), a.Actor().String())

		objProp := a.Object()
		require.NotNil(t, objProp)
		require.NotNil(t, objProp.Type())
		require.True(t, objProp.Type().Is(TypeFollow))

		f := objProp.Activity()
		require.NotNil(t, f)
		require.NotNil(t, f.Type())
		require.True(t, f.Type().Is(TypeFollow))
		require.Equal(t, followActivityID.String(), f.ID().String())

		fa := f.Actor()
		require.NotNil(t, fa)
		require.Equal(t, org1Service.String(), fa.String())

		fObj := f.Object()
		require.NotNil(t, fObj)
		objIRI := fObj.IRI()
		require.NotNil(t, objIRI)
		require.Equal(t, org2Service.String(), objIRI.String())

		fTo := f.To()
		require.Len(t, fTo, 1)
		require.Equal(t, fTo[0].String(), org2Service.String())
	})
}

func TestRejectTypeMarshal(t *testing.T) {
	org1Service := testutil.MustParseURL("https://org1.com/services/service1")
	org2Service := testutil.MustParseURL("https://org1.com/services/service2")

	follow := NewFollowActivity(NewObjectProperty(WithIRI(org2Service)),
		WithID(followActivityID),
		WithTo(org2Service),
		WithActor(org1Service),
	)

	follow.object.Context = nil

	t.Run("Marshal", func(t *testing.T) {
		reject := NewRejectActivity(NewObjectProperty(WithActivity(follow)),
			WithID(rejectActivityID),
			WithActor(org2Service),
			WithTo(org1Service),
		)

		bytes, err := json.Marshal(reject)
		require.NoError(t, err)
		t.Log(string(bytes))

		require.Equal(t, testutil.GetCanonical(t, jsonReject), string(bytes))
	})

	t.Run("Unmarshal", func(t *testing.T) {
		a := &ActivityType{}
		require.NoError(t, json.Unmarshal([]byte(jsonReject), a))
		require.NotNil(t, a.Type())
		require.True(t, a.Type().Is(TypeReject))
		require.Equal(t, rejectActivityID.String(), a.ID().String())

		to := a.To()
		require.Len(t, to, 1)
		require.Equal(t, to[0].String(), org1Service.String())

		require.Equal(t, org2Service.String(), a.Actor().String())

		objProp := a.Object()
		require.NotNil(t, objProp)
		require.True(t, objProp.Type().Is(TypeFollow))
	})
}

func TestTentativeAcceptTypeMarshal(t *testing.T) {
	org1Service := testutil.MustParseURL("https://org1.com/services/service1")
	org2Service := testutil.MustParseURL("https://org1.com/services/service2")

	t.Run("Marshal and unmarshal", func(t *testing.T) {
		ta := NewTentativeAcceptActivity(
			NewObjectProperty(WithIRI(org2Service)),
			WithID(acceptActivityID),
			WithActor(org2Service),
			WithTo(org1Service),
		)

		bytes, err := json.Marshal(ta)
		require.NoError(t, err)

		a := &ActivityType{}
		require.NoError(t, json.Unmarshal(bytes, a))
		require.True(t, a.Type().Is(TypeTentativeAccept))
		require.Equal(t, org2Service.String(), a.Actor().String())
	})
}

func TestOfferTypeMarshal(t *testing.T) {
	to := newMockID(service1, "/followers")

	startTime := getStaticTime()
	endTime := startTime.Add(1 * time.Minute)

	t.Run("Marshal", func(t *testing.T) {
		offer := NewOfferActivity(
			NewObjectProperty(WithIRI(service1)),
			WithID(offerActivityID),
			WithActor(service1),
			WithTo(to, PublicIRI),
			WithStartTime(&startTime),
			WithEndTime(&endTime),
		)

		bytes, err := json.Marshal(offer)
		require.NoError(t, err)
		t.Log(string(bytes))

		require.Equal(t, testutil.GetCanonical(t, jsonOffer), string(bytes))
	})

	t.Run("Unmarshal", func(t *testing.T) {
		a := &ActivityType{}
		require.NoError(t, json.Unmarshal([]byte(jsonOffer), a))
		require.NotNil(t, a.Type())
		require.True(t, a.Type().Is(TypeOffer))
		require.Equal(t, offerActivityID.String(), a.ID().String())

		require.Len(t, a.To(), 2)
		require.Equal(t, a.To()[0].String(), to.String())
		require.Equal(t, a.To()[1].String(), PublicIRI.String())

		require.Equal(t, service1.String(), a.Actor().String())

		start := a.StartTime()
		require.NotNil(t, start)
		require.Equal(t, startTime, *start)

		end := a.EndTime()
		require.NotNil(t, end)
		require.Equal(t, endTime, *end)
	})
}

func TestLikeTypeMarshal(t *testing.T) {
	note := newMockID(host1, "/notes/1")

	publishedTime := getStaticTime()

	t.Run("Marshal", func(t *testing.T) {
		like := NewLikeActivity(
			NewObjectProperty(WithIRI(note)),
			WithID(likeActivityID),
			WithActor(service1),
			WithTo(host1, PublicIRI),
			WithPublishedTime(&publishedTime),
		)

		bytes, err := json.Marshal(like)
		require.NoError(t, err)
		t.Log(string(bytes))

		require.Equal(t, testutil.GetCanonical(t, jsonLike), string(bytes))
	})

	t.Run("Unmarshal", func(t *testing.T) {
		a := &ActivityType{}
		require.NoError(t, json.Unmarshal([]byte(jsonLike), a))
		require.NotNil(t, a.Type())
		require.True(t, a.Type().Is(TypeLike))
		require.Equal(t, likeActivityID.String(), a.ID().String())

		require.Len(t, a.To(), 2)
		require.Equal(t, a.To()[0].String(), host1.String())
		require.Equal(t, a.To()[1].String(), PublicIRI.String())

		require.Equal(t, service1.String(), a.Actor().String())

		published := a.Published()
		require.NotNil(t, published)
		require.Equal(t, publishedTime, *published)

		require.Equal(t, note.String(), a.Object().IRI().String())
	})
}

func TestUndoTypeMarshal(t *testing.T) {
	org1Service := testutil.MustParseURL("https://org1.com/services/service1")
	org2Service := testutil.MustParseURL("https://org1.com/services/service2")

	t.Run("Marshal", func(t *testing.T) {
		follow := NewFollowActivity(
			NewObjectProperty(WithIRI(org2Service)),
			WithID(followActivityID),
			WithActor(org1Service),
			WithTo(org2Service),
		)

		undo := NewUndoActivity(
			NewObjectProperty(WithActivity(follow)),
			WithID(undoActivityID),
			WithActor(org1Service),
			WithTo(org2Service),
		)

		bytes, err := json.Marshal(undo)
		require.NoError(t, err)
		t.Log(string(bytes))

		require.Equal(t, testutil.GetCanonical(t, jsonUndo), string(bytes))
	})

	t.Run("Unmarshal", func(t *testing.T) {
		a := &ActivityType{}
		require.NoError(t, json.Unmarshal([]byte(jsonUndo), a))
		require.NotNil(t, a.Type())
		require.True(t, a.Type().Is(TypeUndo))
		require.Equal(t, undoActivityID.String(), a.ID().String())

		to := a.To()
		require.Len(t, to, 1)
		require.Equal(t, to[0].String(), org2Service.String())

		require.Equal(t, org1Service.String(), a.Actor().String())

		obj := a.Object().Activity()
		require.NotNil(t, obj.ID())
		require.True(t, obj.ID().String() == followActivityID.String())
	})
}

func TestUpdateDeleteAddRemoveBlock(t *testing.T) {
	org1Service := testutil.MustParseURL("https://org1.com/services/service1")
	org2Service := testutil.MustParseURL("https://org1.com/services/service2")
	note := testutil.MustParseURL("https://org1.com/notes/1")
	coll := testutil.MustParseURL("https://org1.com/services/service1/featured")

	t.Run("Update", func(t *testing.T) {
		update := NewUpdateActivity(
			NewObjectProperty(WithObject(NewObject(WithID(note), WithType(TypeNote), WithContent("edited")))),
			WithID(createActivityID),
			WithActor(org1Service),
			WithTo(PublicIRI),
		)

		bytes, err := json.Marshal(update)
		require.NoError(t, err)

		a := &ActivityType{}
		require.NoError(t, json.Unmarshal(bytes, a))
		require.True(t, a.Type().Is(TypeUpdate))
		require.Equal(t, "edited", a.Object().Object().Content())
	})

	t.Run("Delete", func(t *testing.T) {
		del := NewDeleteActivity(
			NewObjectProperty(WithIRI(note)),
			WithID(createActivityID),
			WithActor(org1Service),
			WithTo(PublicIRI),
		)

		bytes, err := json.Marshal(del)
		require.NoError(t, err)

		a := &ActivityType{}
		require.NoError(t, json.Unmarshal(bytes, a))
		require.True(t, a.Type().Is(TypeDelete))
		require.Equal(t, note.String(), a.Object().IRI().String())
	})

	t.Run("Add", func(t *testing.T) {
		add := NewAddActivity(
			NewObjectProperty(WithIRI(note)),
			WithID(createActivityID),
			WithActor(org1Service),
			WithTarget(NewObjectProperty(WithIRI(coll))),
		)

		bytes, err := json.Marshal(add)
		require.NoError(t, err)

		a := &ActivityType{}
		require.NoError(t, json.Unmarshal(bytes, a))
		require.True(t, a.Type().Is(TypeAdd))
		require.Equal(t, coll.String(), a.Target().IRI().String())
	})

	t.Run("Remove", func(t *testing.T) {
		remove := NewRemoveActivity(
			NewObjectProperty(WithIRI(note)),
			WithID(createActivityID),
			WithActor(org1Service),
			WithTarget(NewObjectProperty(WithIRI(coll))),
		)

		bytes, err := json.Marshal(remove)
		require.NoError(t, err)

		a := &ActivityType{}
		require.NoError(t, json.Unmarshal(bytes, a))
		require.True(t, a.Type().Is(TypeRemove))
		require.Equal(t, coll.String(), a.Target().IRI().String())
	})

	t.Run("Block", func(t *testing.T) {
		block := NewBlockActivity(
			NewObjectProperty(WithIRI(org2Service)),
			WithID(createActivityID),
			WithActor(org1Service),
		)

		bytes, err := json.Marshal(block)
		require.NoError(t, err)

		a := &ActivityType{}
		require.NoError(t, json.Unmarshal(bytes, a))
		require.True(t, a.Type().Is(TypeBlock))
		require.Equal(t, org2Service.String(), a.Object().IRI().String())
	})
}

func TestActivityType_Accessors(t *testing.T) {
	a := &ActivityType{}

	// Ensure that we don't panic when dereferencing properties of the activity.

	require.Nil(t, a.ID())
	require.Nil(t, a.Type())
	require.Nil(t, a.Object())
	require.Nil(t, a.Object().IRI())
	require.Nil(t, a.Object().Activity())
	require.Nil(t, a.Actor())
	require.Nil(t, a.Attachment())
	require.Nil(t, a.InReplyTo())
	require.Nil(t, a.Result())
	require.Nil(t, a.Target())
	require.Nil(t, a.StartTime())
	require.Nil(t, a.EndTime())
	require.Nil(t, a.To())
}

func newMockID(serviceIRI fmt.Stringer, path string) *url.URL {
	return testutil.MustParseURL(fmt.Sprintf("%s%s", serviceIRI, path))
}

const (
	jsonCreate = `{
  "@context": "https://www.w3.org/ns/activitystreams",
  "actor": "https://sally.example.com/services/service",
  "id": "https://sally.example.com/services/service/activities/97bcd005-abb6-423d-a889-18bc1ce84988",
  "object": {
    "attributedTo": "https://sally.example.com/services/service",
    "content": "Hello, fediverse!",
    "id": "https://sally.example.com/services/service/notes/1",
    "type": "Note"
  },
  "published": "2021-01-27T09:30:10Z",
  "to": [
    "https://sally.example.com/services/service/followers",
    "https://www.w3.org/ns/activitystreams#Public"
  ],
  "type": "Create"
}`

	jsonAnnounce = `{
  "@context": "https://www.w3.org/ns/activitystreams",
  "actor": "https://sally.example.com/services/service",
  "id": "https://sally.example.com/services/service/activities/97bcd005-abb6-423d-a889-18bc1ce84988",
  "object": "https://sally.example.com/notes/some-shared-note",
  "published": "2021-01-27T09:30:10Z",
  "to": [
    "https://sally.example.com/services/service/followers",
    "https://www.w3.org/ns/activitystreams#Public"
  ],
  "type": "Announce"
}`

	jsonFollow = `{
	 "@context": "https://www.w3.org/ns/activitystreams",
	 "id": "https://sally.example.com/services/service/activities/97b3d005-abb6-422d-a889-18bc1ee84988",
	 "type": "Follow",
	 "actor": "https://org1.com/services/service1",
	 "to": "https://org1.com/services/service2",
	 "object": "https://org1.com/services/service2"
	}`

	jsonInvite = `{
  "@context": "https://www.w3.org/ns/activitystreams",
  "actor": "https://org1.com/services/service1",
  "id": "https://sally.example.com/services/service/activities/37b3d005-abb6-422d-a889-18bc1ee84985",
  "object": "https://org1.com/groups/readers",
  "target": "https://org1.com/services/service2",
  "to": "https://org1.com/services/service2",
  "type": "Invite"
}`

	jsonAccept = `{
    "@context": "https://www.w3.org/ns/activitystreams",
    "id": "https://sally.example.com/services/service/activities/95b3d005-abb6-423d-a889-18bc1ee84989",
    "type": "Accept",
    "actor": "https://org1.com/services/service2",
    "to": "https://org1.com/services/service1",
    "object": {
      "actor": "https://org1.com/services/service1",
      "id": "https://sally.example.com/services/service/activities/97b3d005-abb6-422d-a889-18bc1ee84988",
      "object": "https://org1.com/services/service2",
      "to": "https://org1.com/services/service2",
      "type": "Follow"
    }
  }`

	jsonReject = `{
	"@context": "https://www.w3.org/ns/activitystreams",
	"id": "https://sally.example.com/services/service/activities/75b3d005-abb6-473d-a879-18bc1ee84979",
	"type": "Reject",
	"actor": "https://org1.com/services/service2",
	"to": "https://org1.com/services/service1",
	"object": {
	  "actor": "https://org1.com/services/service1",
	  "id": "https://sally.example.com/services/service/activities/97b3d005-abb6-422d-a889-18bc1ee84988",
	  "object": "https://org1.com/services/service2",
	  "to": "https://org1.com/services/service2",
	  "type": "Follow"
	}
}`

	jsonOffer = `{
  "@context": "https://www.w3.org/ns/activitystreams",
  "actor": "https://sally.example.com/services/service",
  "endTime": "2021-01-27T09:31:10Z",
  "id": "https://sally.example.com/services/service/activities/65b3d005-6bb6-673d-6879-18bc1ee84976",
  "object": "https://sally.example.com/services/service",
  "startTime": "2021-01-27T09:30:10Z",
  "to": ["https://sally.example.com/services/service/followers","https://www.w3.org/ns/activitystreams#Public"],
  "type": "Offer"
}`

	jsonLike = `{
  "@context": "https://www.w3.org/ns/activitystreams",
  "actor": "https://sally.example.com/services/service",
  "id": "https://sally.example.com/services/service/activities/87bcd005-abb6-433d-a889-18bc1ce84988",
  "object": "https://sally.example.com/notes/1",
  "published": "2021-01-27T09:30:10Z",
  "to": [
    "https://sally.example.com",
    "https://www.w3.org/ns/activitystreams#Public"
  ],
  "type": "Like"
}`

	jsonUndo = `{
  "@context": "https://www.w3.org/ns/activitystreams",
  "actor": "https://org1.com/services/service1",
  "id": "https://sally.example.com/services/service/activities/77bcd005-abb6-433d-a889-18bc1ce64981",
  "object": {
    "@context": "https://www.w3.org/ns/activitystreams",
    "actor": "https://org1.com/services/service1",
    "id": "https://sally.example.com/services/service/activities/97b3d005-abb6-422d-a889-18bc1ee84988",
    "object": "https://org1.com/services/service2",
    "to": "https://org1.com/services/service2",
    "type": "Follow"
  },
  "to": "https://org1.com/services/service2",
  "type": "Undo"
}`
)
