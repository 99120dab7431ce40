/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package httpsig

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	servicemocks "github.com/fediforge/fediforge/pkg/activitypub/service/mocks"
	"github.com/fediforge/fediforge/pkg/activitypub/vocab"
	"github.com/fediforge/fediforge/pkg/internal/aptestutil"
	"github.com/fediforge/fediforge/pkg/internal/testutil"
)

func TestNewVerifier(t *testing.T) {
	v := NewVerifier(DefaultVerifierConfig(), servicemocks.NewActorRetriever())
	require.NotNil(t, v)
}

func TestVerifier_VerifyRequest(t *testing.T) {
	actorIRI := testutil.MustParseURL("https://example.com/services/orb")
	pubKeyIRI := testutil.NewMockID(actorIRI, "/keys/main-key")

	signer := NewSigner(DefaultPostSignerConfig())

	payload := []byte("payload")

	pubKey, privKey, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	pubKeyPem, err := getPublicKeyPem(pubKey)
	require.NoError(t, err)

	publicKey := vocab.NewPublicKey(
		vocab.WithID(pubKeyIRI),
		vocab.WithOwner(actorIRI),
		vocab.WithPublicKeyPem(string(pubKeyPem)),
	)

	actor := aptestutil.NewMockService(actorIRI, aptestutil.WithPublicKey(publicKey))

	t.Run("Success", func(t *testing.T) {
		retriever := servicemocks.NewActorRetriever().WithPublicKey(publicKey).WithActor(actor)

		v := NewVerifier(DefaultVerifierConfig(), retriever)

		req, err := http.NewRequest(http.MethodPost, "https://domain1.com", bytes.NewBuffer(payload))
		require.NoError(t, err)

		require.NoError(t, signer.SignRequest(privKey, publicKey.ID.String(), req, payload))

		ok, actorID, err := v.VerifyRequest(req)
		require.NoError(t, err)
		require.True(t, ok)
		require.NotNil(t, actorID)
		require.Equal(t, actorIRI.String(), actorID.String())
	})

	t.Run("No signature on request -> not ok", func(t *testing.T) {
		retriever := servicemocks.NewActorRetriever().WithPublicKey(publicKey).WithActor(actor)

		v := NewVerifier(DefaultVerifierConfig(), retriever)

		req, err := http.NewRequest(http.MethodPost, "https://domain1.com", bytes.NewBuffer(payload))
		require.NoError(t, err)

		ok, actorID, err := v.VerifyRequest(req)
		require.NoError(t, err)
		require.False(t, ok)
		require.Nil(t, actorID)
	})

	t.Run("Wrong key used to sign -> not ok", func(t *testing.T) {
		_, otherPrivKey, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)

		retriever := servicemocks.NewActorRetriever().WithPublicKey(publicKey).WithActor(actor)

		v := NewVerifier(DefaultVerifierConfig(), retriever)

		req, err := http.NewRequest(http.MethodPost, "https://domain1.com", bytes.NewBuffer(payload))
		require.NoError(t, err)

		require.NoError(t, signer.SignRequest(otherPrivKey, publicKey.ID.String(), req, payload))

		ok, actorID, err := v.VerifyRequest(req)
		require.NoError(t, err)
		require.False(t, ok)
		require.Nil(t, actorID)
	})

	t.Run("Public key not found -> error", func(t *testing.T) {
		retriever := servicemocks.NewActorRetriever()

		v := NewVerifier(DefaultVerifierConfig(), retriever)

		req, err := http.NewRequest(http.MethodPost, "https://domain1.com", bytes.NewBuffer(payload))
		require.NoError(t, err)

		require.NoError(t, signer.SignRequest(privKey, publicKey.ID.String(), req, payload))

		ok, actorID, err := v.VerifyRequest(req)
		require.Error(t, err)
		require.False(t, ok)
		require.Nil(t, actorID)
	})

	t.Run("Actor not found -> error", func(t *testing.T) {
		retriever := servicemocks.NewActorRetriever().WithPublicKey(publicKey)

		v := NewVerifier(DefaultVerifierConfig(), retriever)

		req, err := http.NewRequest(http.MethodPost, "https://domain1.com", bytes.NewBuffer(payload))
		require.NoError(t, err)

		require.NoError(t, signer.SignRequest(privKey, publicKey.ID.String(), req, payload))

		ok, actorID, err := v.VerifyRequest(req)
		require.Error(t, err)
		require.False(t, ok)
		require.Nil(t, actorID)
	})

	t.Run("Actor nil public key -> error", func(t *testing.T) {
		retriever := servicemocks.NewActorRetriever().WithPublicKey(publicKey).
			WithActor(aptestutil.NewMockService(actorIRI, aptestutil.WithPublicKey(nil)))

		v := NewVerifier(DefaultVerifierConfig(), retriever)

		req, err := http.NewRequest(http.MethodPost, "https://domain1.com", bytes.NewBuffer(payload))
		require.NoError(t, err)

		require.NoError(t, signer.SignRequest(privKey, publicKey.ID.String(), req, payload))

		ok, actorID, err := v.VerifyRequest(req)
		require.Error(t, err)
		require.False(t, ok)
		require.Nil(t, actorID)
	})

	t.Run("Actor key mismatch -> error", func(t *testing.T) {
		actorPublicKey := vocab.NewPublicKey(
			vocab.WithID(testutil.NewMockID(actorIRI, "/keys/key-1")),
			vocab.WithOwner(actorIRI),
			vocab.WithPublicKeyPem(string(pubKeyPem)),
		)

		retriever := servicemocks.NewActorRetriever().WithPublicKey(publicKey).
			WithActor(aptestutil.NewMockService(actorIRI, aptestutil.WithPublicKey(actorPublicKey)))

		v := NewVerifier(DefaultVerifierConfig(), retriever)

		req, err := http.NewRequest(http.MethodPost, "https://domain1.com", bytes.NewBuffer(payload))
		require.NoError(t, err)

		require.NoError(t, signer.SignRequest(privKey, publicKey.ID.String(), req, payload))

		ok, actorID, err := v.VerifyRequest(req)
		require.Error(t, err)
		require.False(t, ok)
		require.Nil(t, actorID)
	})
}

func getPublicKeyPem(pubKey interface{}) ([]byte, error) {
	keyBytes, err := x509.MarshalPKIXPublicKey(pubKey)
	if err != nil {
		return nil, err
	}

	return pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: keyBytes,
	}), nil
}
