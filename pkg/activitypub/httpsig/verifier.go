/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package httpsig

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-fed/httpsig"

	"github.com/fediforge/fediforge/pkg/activitypub/vocab"
)

// DefaultVerifierConfig returns the default configuration for verifying HTTP requests. RSA-SHA256 is the
// only algorithm required of implementations; hs2019 is accepted since newer signers may send it in place
// of an explicit algorithm name.
func DefaultVerifierConfig() VerifierConfig {
	return VerifierConfig{
		Algorithms: []httpsig.Algorithm{httpsig.RSA_SHA256, "hs2019"},
	}
}

// VerifierConfig contains the configuration for verifying HTTP requests.
type VerifierConfig struct {
	Algorithms []httpsig.Algorithm
}

type actorRetriever interface {
	GetActor(actorIRI *url.URL) (*vocab.ActorType, error)
	GetPublicKey(keyIRI *url.URL) (*vocab.PublicKeyType, error)
}

// Verifier verifies signatures of HTTP requests.
type Verifier struct {
	VerifierConfig
	retriever actorRetriever
}

// NewVerifier returns a new HTTP signature verifier.
func NewVerifier(cfg VerifierConfig, retriever actorRetriever) *Verifier {
	return &Verifier{
		VerifierConfig: cfg,
		retriever:      retriever,
	}
}

// VerifyRequest verifies the HTTP signature on the request and returns the IRI of the actor
// for the key ID in the request header, along with a bool indicating whether the signature
// verified successfully. A non-nil error indicates that verification could not be performed at
// all (e.g. the key or owning actor could not be resolved); it is distinct from an invalid
// signature, which is reported by a false bool with a nil error.
func (v *Verifier) VerifyRequest(req *http.Request) (bool, *url.URL, error) {
	logger.Debugf("Verifying HTTP %s request from %s with headers %s", req.Method, req.URL, req.Header)

	verifier, err := httpsig.NewVerifier(req)
	if err != nil {
		logger.Infof("Request from %s has no valid HTTP signature: %s", req.URL, err)

		return false, nil, nil
	}

	pubKey, err := v.loadAndVerifyPublicKey(verifier.KeyId())
	if err != nil {
		return false, nil, fmt.Errorf("unable to verify public key for ID [%s]: %w", verifier.KeyId(), err)
	}

	block, rest := pem.Decode([]byte(pubKey.PublicKeyPem))
	if block == nil {
		logger.Warnf("invalid public key: nil block. Rest: %s", rest)

		return false, nil, fmt.Errorf("invalid public key for ID [%s]: nil block", verifier.KeyId())
	}

	pk, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return false, nil, fmt.Errorf("parse public key for ID [%s]: %w", verifier.KeyId(), err)
	}

	// TODO: Resolve the algorithm from the keyId according to
	// https://tools.ietf.org/html/draft-cavage-http-signatures-12#section-2.5.
	// Use the first algorithm for now.
	algo := v.Algorithms[0]

	logger.Debugf("Verifying HTTP signature with public key [%s]", verifier.KeyId())

	if err := verifier.Verify(pk, algo); err != nil {
		logger.Infof("HTTP signature verification failed for owner [%s]: %s", pubKey.Owner, err)

		return false, nil, nil
	}

	return true, pubKey.Owner.URL(), nil
}

func (v *Verifier) loadAndVerifyPublicKey(keyID string) (*vocab.PublicKeyType, error) {
	keyIRI, err := url.Parse(keyID)
	if err != nil {
		return nil, fmt.Errorf("parse key IRI [%s]: %w", keyID, err)
	}

	pubKey, err := v.retriever.GetPublicKey(keyIRI)
	if err != nil {
		return nil, fmt.Errorf("retrieve public key for ID [%s]: %w", keyID, err)
	}

	// Ensure that the public key ID matches the key ID of the specified owner. Otherwise it could
	// be an attempt to impersonate an actor.
	actor, err := v.retriever.GetActor(pubKey.Owner.URL())
	if err != nil {
		return nil, fmt.Errorf("retrieve actor [%s]: %w", pubKey.Owner, err)
	}

	if actor.PublicKey() == nil {
		return nil, fmt.Errorf("unable to verify owner [%s] of public key [%s] since owner has nil key",
			actor.ID(), keyID)
	}

	if actor.PublicKey().ID.String() != pubKey.ID.String() {
		return nil, fmt.Errorf("public key of actor does not match the public key ID in the request: [%s]",
			actor.PublicKey().ID)
	}

	return pubKey, nil
}
