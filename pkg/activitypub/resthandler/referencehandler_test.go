/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resthandler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	apmocks "github.com/fediforge/fediforge/pkg/activitypub/mocks"
	"github.com/fediforge/fediforge/pkg/activitypub/service/mocks"
	"github.com/fediforge/fediforge/pkg/activitypub/store/memstore"
	"github.com/fediforge/fediforge/pkg/activitypub/store/spi"
	"github.com/fediforge/fediforge/pkg/internal/testutil"
)

const followersURL = "https://example1.com/services/orb/followers"

func TestNewFollowers(t *testing.T) {
	h := NewFollowers(newTestConfig(), memstore.New(""), &mocks.SignatureVerifier{}, &apmocks.AuthTokenMgr{})
	require.NotNil(t, h)
	require.Equal(t, "/services/orb/followers", h.Path())
	require.Equal(t, http.MethodGet, h.Method())
	require.NotNil(t, h.Handler())

	id, err := h.getID(serviceIRI, nil)
	require.NoError(t, err)
	require.NotNil(t, id)
	require.Equal(t, "https://example1.com/services/orb/followers", id.String())
}

func TestNewFollowing(t *testing.T) {
	h := NewFollowing(newTestConfig(), memstore.New(""), &mocks.SignatureVerifier{}, &apmocks.AuthTokenMgr{})
	require.NotNil(t, h)
	require.Equal(t, "/services/orb/following", h.Path())
	require.Equal(t, http.MethodGet, h.Method())
	require.NotNil(t, h.Handler())

	id, err := h.getID(serviceIRI, nil)
	require.NoError(t, err)
	require.NotNil(t, id)
	require.Equal(t, "https://example1.com/services/orb/following", id.String())
}

func TestNewLiked(t *testing.T) {
	h := NewLiked(newTestConfig(), memstore.New(""), &mocks.SignatureVerifier{}, &apmocks.AuthTokenMgr{})
	require.NotNil(t, h)
	require.Equal(t, "/services/orb/liked", h.Path())
	require.Equal(t, http.MethodGet, h.Method())
	require.NotNil(t, h.Handler())

	id, err := h.getID(serviceIRI, nil)
	require.NoError(t, err)
	require.NotNil(t, id)
	require.Equal(t, "https://example1.com/services/orb/liked", id.String())
}

func TestFollowers_Handle(t *testing.T) {
	followers := testutil.NewMockURLs(19, func(i int) string {
		return fmt.Sprintf("https://example%d.com/services/orb", i+1)
	})

	activityStore := memstore.New("")

	for _, ref := range followers {
		require.NoError(t, activityStore.AddReference(spi.Follower, serviceIRI, ref))
	}

	cfg := newTestConfig()

	verifier := &mocks.SignatureVerifier{}
	verifier.VerifyRequestReturns(true, serviceIRI, nil)

	tm := &apmocks.AuthTokenMgr{}
	tm.RequiredAuthTokensReturns([]string{"read"}, nil)

	t.Run("Success", func(t *testing.T) {
		h := NewFollowers(cfg, activityStore, verifier, tm)
		require.NotNil(t, h)

		rw := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, followersURL, nil)

		h.handle(rw, req)

		result := rw.Result()
		require.Equal(t, http.StatusOK, result.StatusCode)

		respBytes, err := io.ReadAll(result.Body)
		require.NoError(t, err)
		require.NoError(t, result.Body.Close())

		require.Equal(t, testutil.GetCanonical(t, followersJSON), testutil.GetCanonical(t, string(respBytes)))
	})

	t.Run("Store error", func(t *testing.T) {
		errExpected := fmt.Errorf("injected store error")

		s := &mocks.ActivityStore{}
		s.QueryReferencesReturns(nil, errExpected)

		h := NewFollowers(cfg, s, verifier, tm)
		require.NotNil(t, h)

		rw := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, followersURL, nil)

		h.handle(rw, req)

		result := rw.Result()
		require.Equal(t, http.StatusInternalServerError, result.StatusCode)
		require.NoError(t, result.Body.Close())
	})

	t.Run("Marshal error", func(t *testing.T) {
		h := NewFollowers(cfg, activityStore, verifier, tm)
		require.NotNil(t, h)

		errExpected := fmt.Errorf("injected marshal error")

		h.marshal = func(interface{}) ([]byte, error) {
			return nil, errExpected
		}

		rw := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, followersURL, nil)

		h.handle(rw, req)

		result := rw.Result()
		require.Equal(t, http.StatusInternalServerError, result.StatusCode)
		require.NoError(t, result.Body.Close())
	})

	t.Run("GetID error", func(t *testing.T) {
		h := NewFollowers(cfg, activityStore, verifier, tm)
		require.NotNil(t, h)

		errExpected := fmt.Errorf("injected error")

		h.getID = func(*url.URL, *http.Request) (*url.URL, error) {
			return nil, errExpected
		}

		rw := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, followersURL, nil)

		h.handle(rw, req)

		result := rw.Result()
		require.Equal(t, http.StatusInternalServerError, result.StatusCode)
		require.NoError(t, result.Body.Close())
	})

	t.Run("Verify signature error", func(t *testing.T) {
		errExpected := errors.New("injected verifier error")

		v := &mocks.SignatureVerifier{}
		v.VerifyRequestReturns(false, nil, errExpected)

		h := NewFollowers(cfg, activityStore, v, tm)
		require.NotNil(t, h)

		rw := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, followersURL, nil)

		h.handle(rw, req)

		result := rw.Result()
		require.Equal(t, http.StatusInternalServerError, result.StatusCode)
		require.NoError(t, result.Body.Close())
	})

	t.Run("Invalid signature -> unauthorized", func(t *testing.T) {
		v := &mocks.SignatureVerifier{}
		v.VerifyRequestReturns(false, nil, nil)

		h := NewFollowers(cfg, activityStore, v, tm)
		require.NotNil(t, h)

		rw := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, followersURL, nil)

		h.handle(rw, req)

		result := rw.Result()
		require.Equal(t, http.StatusUnauthorized, result.StatusCode)
		require.NoError(t, result.Body.Close())
	})
}

func TestFollowers_PageHandle(t *testing.T) {
	followers := testutil.NewMockURLs(19, func(i int) string {
		return fmt.Sprintf("https://example%d.com/services/orb", i+1)
	})

	activityStore := memstore.New("")

	for _, ref := range followers {
		require.NoError(t, activityStore.AddReference(spi.Follower, serviceIRI, ref))
	}

	cfg := newTestConfig()

	verifier := &mocks.SignatureVerifier{}
	verifier.VerifyRequestReturns(true, serviceIRI, nil)

	h := NewFollowers(cfg, activityStore, verifier, &apmocks.AuthTokenMgr{})
	require.NotNil(t, h)

	t.Run("First page -> Success", func(t *testing.T) {
		handleRequest(t, h.handler, h.handle, "true", "", followersFirstPageJSON)
	})

	t.Run("Page by num -> Success", func(t *testing.T) {
		handleRequest(t, h.handler, h.handle, "true", "3", followersPage3JSON)
	})

	t.Run("Page num too large -> Success", func(t *testing.T) {
		handleRequest(t, h.handler, h.handle, "true", "30", followersPageTooLargeJSON)
	})

	t.Run("Invalid page-num -> Success", func(t *testing.T) {
		handleRequest(t, h.handler, h.handle, "true", "invalid", followersFirstPageJSON)
	})

	t.Run("Invalid page -> Success", func(t *testing.T) {
		handleRequest(t, h.handler, h.handle, "invalid", "3", followersJSON)
	})

	t.Run("Store error", func(t *testing.T) {
		errExpected := fmt.Errorf("injected store error")

		s := &mocks.ActivityStore{}
		s.QueryReferencesReturns(nil, errExpected)

		hh := NewFollowers(cfg, s, verifier, &apmocks.AuthTokenMgr{})
		require.NotNil(t, hh)

		restorePaging := setPaging(hh.handler, "true", "0")
		defer restorePaging()

		rw := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, followersURL, nil)

		hh.handle(rw, req)

		result := rw.Result()
		require.Equal(t, http.StatusInternalServerError, result.StatusCode)
		require.NoError(t, result.Body.Close())
	})

	t.Run("Marshal error", func(t *testing.T) {
		hh := NewFollowers(cfg, activityStore, verifier, &apmocks.AuthTokenMgr{})
		require.NotNil(t, hh)

		restorePaging := setPaging(hh.handler, "true", "0")
		defer restorePaging()

		errExpected := fmt.Errorf("injected marshal error")

		hh.marshal = func(interface{}) ([]byte, error) {
			return nil, errExpected
		}

		rw := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, followersURL, nil)

		hh.handle(rw, req)

		result := rw.Result()
		require.Equal(t, http.StatusInternalServerError, result.StatusCode)
		require.NoError(t, result.Body.Close())
	})
}

func handleRequest(t *testing.T, h *handler, handle http.HandlerFunc, page, pageNum, expected string) {
	t.Helper()

	restorePaging := setPaging(h, page, pageNum)
	defer restorePaging()

	rw := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, followersURL, nil)

	handle(rw, req)

	result := rw.Result()
	require.Equal(t, http.StatusOK, result.StatusCode)

	respBytes, err := io.ReadAll(result.Body)
	require.NoError(t, err)
	require.NoError(t, result.Body.Close())

	require.Equal(t, testutil.GetCanonical(t, expected), testutil.GetCanonical(t, string(respBytes)))
}

const (
	followersJSON = `{
  "@context": "https://www.w3.org/ns/activitystreams",
  "id": "https://example1.com/services/orb/followers",
  "type": "Collection",
  "totalItems": 19,
  "first": "https://example1.com/services/orb/followers?page=true",
  "last": "https://example1.com/services/orb/followers?page=true&page-num=4"
}`

	followersFirstPageJSON = `{
  "@context": "https://www.w3.org/ns/activitystreams",
  "id": "https://example1.com/services/orb/followers?page=true&page-num=0",
  "type": "CollectionPage",
  "totalItems": 19,
  "next": "https://example1.com/services/orb/followers?page=true&page-num=1",
  "items": [
    "https://example1.com/services/orb",
    "https://example2.com/services/orb",
    "https://example3.com/services/orb",
    "https://example4.com/services/orb"
  ]
}`

	followersPage3JSON = `{
  "@context": "https://www.w3.org/ns/activitystreams",
  "id": "https://example1.com/services/orb/followers?page=true&page-num=3",
  "type": "CollectionPage",
  "totalItems": 19,
  "next": "https://example1.com/services/orb/followers?page=true&page-num=4",
  "prev": "https://example1.com/services/orb/followers?page=true&page-num=2",
  "items": [
    "https://example13.com/services/orb",
    "https://example14.com/services/orb",
    "https://example15.com/services/orb",
    "https://example16.com/services/orb"
  ]
}`

	followersPageTooLargeJSON = `{
  "@context": "https://www.w3.org/ns/activitystreams",
  "id": "https://example1.com/services/orb/followers?page=true&page-num=30",
  "type": "CollectionPage",
  "totalItems": 19,
  "prev": "https://example1.com/services/orb/followers?page=true&page-num=4"
}`
)
