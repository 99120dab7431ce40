/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package resthandler

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"net/url"

	internallog "github.com/fediforge/fediforge/internal/pkg/log"
	store "github.com/fediforge/fediforge/pkg/activitypub/store/spi"
)

const (
	authHeader  = "Authorization"
	tokenPrefix = "Bearer "
)

type authorizeActorFunc func(actorIRI *url.URL) (bool, error)

// AuthHandler performs bearer-token and/or HTTP-signature based authorization for a REST endpoint.
// If the token manager requires no bearer token for the endpoint then every request is authorized
// without a signature check. Otherwise a request carrying one of the required tokens is authorized,
// and any other request falls back to HTTP signature verification.
type AuthHandler struct {
	*Config

	logger         *internallog.Log
	endpoint       string
	authTokens     []string
	verifier       signatureVerifier
	activityStore  store.Store
	authorizeActor authorizeActorFunc
	writeResponse  func(w http.ResponseWriter, status int, body []byte)
}

// NewAuthHandler returns a new AuthHandler for the given endpoint and HTTP method. authorizeActor, if
// non-nil, is invoked with the actor IRI resolved from a verified HTTP signature and may reject the
// request even though the signature itself is valid.
func NewAuthHandler(cfg *Config, endpoint, method string, s store.Store, verifier signatureVerifier,
	tm authTokenManager, authorizeActor authorizeActorFunc) *AuthHandler {
	ep := fmt.Sprintf("%s%s", cfg.BasePath, endpoint)

	authTokens, err := tm.RequiredAuthTokens(ep, method)
	if err != nil {
		// This would occur on startup due to bad configuration, so it's better to panic.
		panic(fmt.Errorf("resolve authorization tokens: %w", err))
	}

	if authorizeActor == nil {
		authorizeActor = func(*url.URL) (bool, error) { return true, nil }
	}

	return &AuthHandler{
		Config:         cfg,
		logger:         internallog.New("activitypub_resthandler"),
		endpoint:       ep,
		authTokens:     authTokens,
		verifier:       verifier,
		activityStore:  s,
		authorizeActor: authorizeActor,
		writeResponse: func(w http.ResponseWriter, status int, body []byte) {
			if len(body) > 0 {
				if _, err := w.Write(body); err != nil {
					logger.Warnf("[%s] Unable to write response: %s", ep, err)

					return
				}

				logger.Debugf("[%s] Wrote response: %s", ep, body)
			}

			w.WriteHeader(status)
		},
	}
}

// Authorize returns true if the request is authorized, either because it carries a valid bearer token
// or because it carries a valid HTTP signature whose actor passes the authorizeActor check.
func (h *AuthHandler) Authorize(req *http.Request) (bool, *url.URL, error) {
	if h.authorizeWithBearerToken(req) {
		logger.Debugf("[%s] Authorization succeeded using bearer token", h.endpoint)

		// The bearer of the token is assumed to be this service. If it isn't then validation
		// should fail in subsequent checks.
		return true, h.ObjectIRI, nil
	}

	logger.Debugf("[%s] Authorization failed using bearer token.", h.endpoint)

	if h.verifier == nil {
		return false, nil, nil
	}

	logger.Debugf("[%s] Checking HTTP signature...", h.endpoint)

	ok, actorIRI, err := h.verifier.VerifyRequest(req)
	if err != nil {
		return false, nil, fmt.Errorf("verify HTTP signature: %w", err)
	}

	if !ok {
		logger.Debugf("[%s] Authorization failed using HTTP signature.", h.endpoint)

		return false, nil, nil
	}

	ok, err = h.authorizeActor(actorIRI)
	if err != nil {
		return false, nil, fmt.Errorf("authorize actor [%s]: %w", actorIRI, err)
	}

	return ok, actorIRI, nil
}

// Verify returns true if the request carries one of the bearer tokens required to access this endpoint.
// Unlike Authorize, it does not fall back to HTTP signature verification.
func (h *AuthHandler) Verify(req *http.Request) bool {
	return h.authorizeWithBearerToken(req)
}

func (h *AuthHandler) authorizeWithBearerToken(req *http.Request) bool {
	if len(h.authTokens) == 0 {
		logger.Debugf("[%s] No auth token required.", h.endpoint)

		return true
	}

	logger.Debugf("[%s] Auth tokens required: %s", h.endpoint, h.authTokens)

	actHdr := req.Header.Get(authHeader)
	if actHdr == "" {
		logger.Debugf("[%s] Bearer token not found in header", h.endpoint)

		return false
	}

	for _, token := range h.authTokens {
		if subtle.ConstantTimeCompare([]byte(actHdr), []byte(tokenPrefix+token)) == 1 {
			logger.Debugf("[%s] Found token %s", h.endpoint, token)

			return true
		}
	}

	return false
}
