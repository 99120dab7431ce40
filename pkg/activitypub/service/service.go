/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/trustbloc/sidetree-core-go/pkg/restapi/common"

	"github.com/fediforge/fediforge/pkg/activitypub/client"
	"github.com/fediforge/fediforge/pkg/activitypub/client/transport"
	"github.com/fediforge/fediforge/pkg/activitypub/resthandler"
	"github.com/fediforge/fediforge/pkg/activitypub/service/activityhandler"
	"github.com/fediforge/fediforge/pkg/activitypub/service/inbox"
	"github.com/fediforge/fediforge/pkg/activitypub/service/outbox"
	"github.com/fediforge/fediforge/pkg/activitypub/service/outbox/deliveryworker"
	"github.com/fediforge/fediforge/pkg/activitypub/service/spi"
	store "github.com/fediforge/fediforge/pkg/activitypub/store/spi"
	"github.com/fediforge/fediforge/pkg/activitypub/vocab"
	"github.com/fediforge/fediforge/pkg/httpserver/auth"
	"github.com/fediforge/fediforge/pkg/lifecycle"
	pubsubspi "github.com/fediforge/fediforge/pkg/pubsub/spi"
)

const (
	inboxActivitiesTopic  = "fediforge.activity.inbox"
	outboxActivitiesTopic = "fediforge.activity.outbox"
)

// PubSub defines the functions for a publisher/subscriber.
type PubSub interface {
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
	SubscribeWithOpts(ctx context.Context, topic string, opts ...pubsubspi.Option) (<-chan *message.Message, error)
	Publish(topic string, messages ...*message.Message) error
	Close() error
}

// Config holds the configuration parameters for an ActivityPub service.
type Config struct {
	ServiceEndpoint           string
	ServiceIRI                *url.URL
	ActivityHandlerBufferSize int
	VerifyActorInSignature    bool
	SubscriberPoolSize        int

	// DeliveryWorkerConfig configures the outbox's delivery worker, including poll interval and batch size.
	DeliveryWorkerConfig *deliveryworker.Config

	// AuthTokens determines which bearer tokens are required to post to the inbox.
	AuthTokens auth.Config

	MaxRecipients         int
	MaxConcurrentRequests int
}

// Service implements an ActivityPub service which has an inbox, outbox, and
// handlers for the various ActivityPub activities.
type Service struct {
	*lifecycle.Lifecycle

	inbox           *inbox.Inbox
	outbox          *outbox.Outbox
	activityHandler *activityhandler.Inbox
}

type httpTransport interface {
	Post(ctx context.Context, req *transport.Request, payload []byte) (*http.Response, error)
	Get(ctx context.Context, req *transport.Request) (*http.Response, error)
}

type signatureVerifier interface {
	VerifyRequest(req *http.Request) (bool, *url.URL, error)
}

type activityPubClient interface {
	GetActor(iri *url.URL) (*vocab.ActorType, error)
	GetReferences(iri *url.URL) (client.ReferenceIterator, error)
	GetActivities(iri *url.URL, order client.Order) (client.ActivityIterator, error)
}

type metricsProvider interface {
	InboxHandlerTime(activityType string, value time.Duration)
}

// New returns a new ActivityPub service.
func New(cfg *Config, activityStore store.Store, t httpTransport, sigVerifier signatureVerifier,
	pubSub PubSub, activityPubClient activityPubClient,
	m metricsProvider, handlerOpts ...spi.HandlerOpt,
) (*Service, error) {
	outboxHandler := activityhandler.NewOutbox(
		&activityhandler.Config{
			ServiceName: cfg.ServiceEndpoint + "/outbox",
			BufferSize:  cfg.ActivityHandlerBufferSize,
			ServiceIRI:  cfg.ServiceIRI,
		},
		activityStore, t)

	ob, err := outbox.New(
		&outbox.Config{
			ServiceName:           cfg.ServiceEndpoint,
			ServiceIRI:            cfg.ServiceIRI,
			Topic:                 outboxActivitiesTopic,
			DeliveryWorkerConfig:  cfg.DeliveryWorkerConfig,
			MaxRecipients:         cfg.MaxRecipients,
			MaxConcurrentRequests: cfg.MaxConcurrentRequests,
		},
		activityStore, pubSub, t, outboxHandler, handlerOpts...,
	)
	if err != nil {
		return nil, fmt.Errorf("create outbox failed: %w", err)
	}

	inboxHandler := activityhandler.NewInbox(
		&activityhandler.Config{
			ServiceName: cfg.ServiceEndpoint + "/inbox",
			BufferSize:  cfg.ActivityHandlerBufferSize,
			ServiceIRI:  cfg.ServiceIRI,
		},
		activityStore, ob, t, handlerOpts...)

	ib, err := inbox.New(
		&inbox.Config{
			ServiceEndpoint:        cfg.ServiceEndpoint + resthandler.InboxPath,
			ServiceIRI:             cfg.ServiceIRI,
			Topic:                  inboxActivitiesTopic,
			VerifyActorInSignature: cfg.VerifyActorInSignature,
			SubscriberPoolSize:     cfg.SubscriberPoolSize,
		},
		activityStore, pubSub,
		inboxHandler, sigVerifier, cfg.AuthTokens, m,
	)
	if err != nil {
		return nil, fmt.Errorf("create inbox failed: %w", err)
	}

	s := &Service{
		inbox:           ib,
		outbox:          ob,
		activityHandler: inboxHandler,
	}

	s.Lifecycle = lifecycle.New(cfg.ServiceEndpoint,
		lifecycle.WithStart(s.start),
		lifecycle.WithStop(s.stop),
	)

	return s, nil
}

func (s *Service) start() {
	s.activityHandler.Start()
	s.outbox.Start()
	s.inbox.Start()
}

func (s *Service) stop() {
	s.inbox.Stop()
	s.outbox.Stop()
	s.activityHandler.Stop()
}

// Outbox returns the outbox, which allows clients to post activities.
func (s *Service) Outbox() spi.Outbox {
	return s.outbox
}

// InboxHTTPHandler returns the HTTP handler for the inbox which is invoked by the HTTP server.
// This handler must be registered with an HTTP server.
func (s *Service) InboxHTTPHandler() common.HTTPHandler {
	return s.inbox.HTTPHandler()
}

// Subscribe allows a client to receive published activities.
func (s *Service) Subscribe() <-chan *vocab.ActivityType {
	return s.activityHandler.Subscribe()
}
