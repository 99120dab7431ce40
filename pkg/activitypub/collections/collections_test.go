/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package collections

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fediforge/fediforge/pkg/activitypub/collections/memstore"
	"github.com/fediforge/fediforge/pkg/activitypub/vocab"
)

const ownerURL = "https://example.com/users/alice"

func TestFilter_Matches(t *testing.T) {
	yes, no := true, false

	mediaNote := vocab.NewObject(
		vocab.WithType(vocab.TypeNote),
		vocab.WithAttachment(vocab.NewObjectProperty(vocab.WithIRI(mustParseURL("https://example.com/media/1")))),
		vocab.WithTag(vocab.NewTagProperty(vocab.WithLink(vocab.NewMention(mustParseURL(ownerURL), "photos")))),
	)

	replyNote := vocab.NewObject(
		vocab.WithType(vocab.TypeNote),
		vocab.WithInReplyTo(mustParseURL("https://example.com/notes/1")),
	)

	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	oldNote := vocab.NewObject(vocab.WithType(vocab.TypeNote), vocab.WithPublishedTime(&old))

	t.Run("Tags", func(t *testing.T) {
		f := &Filter{Tags: []string{"photos"}}
		require.True(t, f.Matches(mediaNote))
		require.False(t, f.Matches(replyNote))
	})

	t.Run("Types", func(t *testing.T) {
		f := &Filter{Types: []vocab.Type{vocab.TypeNote}}
		require.True(t, f.Matches(mediaNote))

		f = &Filter{Types: []vocab.Type{vocab.TypeArticle}}
		require.False(t, f.Matches(mediaNote))
	})

	t.Run("HasAttachment", func(t *testing.T) {
		f := &Filter{HasAttachment: &yes}
		require.True(t, f.Matches(mediaNote))
		require.False(t, f.Matches(replyNote))

		f = &Filter{HasAttachment: &no}
		require.False(t, f.Matches(mediaNote))
	})

	t.Run("IsReply", func(t *testing.T) {
		f := &Filter{IsReply: &yes}
		require.True(t, f.Matches(replyNote))
		require.False(t, f.Matches(mediaNote))
	})

	t.Run("AfterDate", func(t *testing.T) {
		cutoff := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		f := &Filter{AfterDate: &cutoff}
		require.False(t, f.Matches(oldNote))
	})

	t.Run("AND combined", func(t *testing.T) {
		f := &Filter{Types: []vocab.Type{vocab.TypeNote}, HasAttachment: &yes}
		require.True(t, f.Matches(mediaNote))

		f = &Filter{Types: []vocab.Type{vocab.TypeNote}, HasAttachment: &yes, IsReply: &yes}
		require.False(t, f.Matches(mediaNote))
	})

	t.Run("Nil filter matches everything", func(t *testing.T) {
		var f *Filter
		require.True(t, f.Matches(mediaNote))
	})

	_ = recent
}

func TestRegistry_ManualMembership(t *testing.T) {
	owner := mustParseURL(ownerURL)
	store := memstore.New()

	require.NoError(t, store.PutDefinition(&Definition{
		OwnerIRI: owner, Slug: "favorites", Kind: Manual, Order: Insertion, Visibility: Public,
	}))

	r := NewRegistry(store, nil)

	note1 := mustParseURL("https://example.com/notes/1")
	note2 := mustParseURL("https://example.com/notes/2")

	require.NoError(t, r.Add(owner, "favorites", note1))
	require.NoError(t, r.Add(owner, "favorites", note2))

	members, err := r.Members(owner, "favorites")
	require.NoError(t, err)
	require.Equal(t, []*url.URL{note1, note2}, members)

	require.NoError(t, r.Remove(owner, "favorites", note1))

	members, err = r.Members(owner, "favorites")
	require.NoError(t, err)
	require.Equal(t, []*url.URL{note2}, members)
}

func TestRegistry_QueryMembershipIsReadOnly(t *testing.T) {
	owner := mustParseURL(ownerURL)
	store := memstore.New()

	yes := true

	require.NoError(t, store.PutDefinition(&Definition{
		OwnerIRI: owner, Slug: "media", Kind: Query, Visibility: Public,
		Filter: &Filter{HasAttachment: &yes},
	}))

	mediaNote := vocab.NewObject(
		vocab.WithID(mustParseURL("https://example.com/notes/1")),
		vocab.WithType(vocab.TypeNote),
		vocab.WithAttachment(vocab.NewObjectProperty(vocab.WithIRI(mustParseURL("https://example.com/media/1")))),
	)

	plainNote := vocab.NewObject(
		vocab.WithID(mustParseURL("https://example.com/notes/2")),
		vocab.WithType(vocab.TypeNote),
	)

	r := NewRegistry(store, &stubObjectProvider{objects: []*vocab.ObjectType{mediaNote, plainNote}})

	members, err := r.Members(owner, "media")
	require.NoError(t, err)
	require.Equal(t, []*url.URL{mustParseURL("https://example.com/notes/1")}, members)

	err = r.Add(owner, "media", mustParseURL("https://example.com/notes/2"))
	require.ErrorIs(t, err, ErrReadOnly)

	err = r.Remove(owner, "media", mustParseURL("https://example.com/notes/1"))
	require.ErrorIs(t, err, ErrReadOnly)
}

func TestRegistry_Catalog(t *testing.T) {
	owner := mustParseURL(ownerURL)
	store := memstore.New()

	require.NoError(t, store.PutDefinition(&Definition{OwnerIRI: owner, Slug: "pinned", Kind: Manual, Visibility: Public}))
	require.NoError(t, store.PutDefinition(&Definition{OwnerIRI: owner, Slug: "secret", Kind: Manual, Visibility: Private}))

	r := NewRegistry(store, nil)

	catalog, err := r.Catalog(owner)
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	require.Equal(t, "pinned", catalog[0].Slug)
}

func TestVisibility_Readable(t *testing.T) {
	require.True(t, Public.Readable(false))
	require.True(t, Unlisted.Readable(false))
	require.False(t, Private.Readable(false))
	require.True(t, Private.Readable(true))
}

func TestVisibility_InCatalog(t *testing.T) {
	require.True(t, Public.InCatalog())
	require.False(t, Unlisted.InCatalog())
	require.False(t, Private.InCatalog())
}

type stubObjectProvider struct {
	objects []*vocab.ObjectType
}

func (p *stubObjectProvider) OwnedObjects(*url.URL) ([]*vocab.ObjectType, error) {
	return p.objects, nil
}

func mustParseURL(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil {
		panic(err)
	}

	return u
}
