/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package lifecycle provides a generic started/stopped state machine that may be embedded in a
// service implementation.
package lifecycle

import (
	"errors"
	"sync/atomic"

	"github.com/fediforge/fediforge/internal/pkg/log"
)

var logger = log.New("lifecycle")

// State is the state of a service.
type State = uint32

// Service states.
const (
	StateNotStarted State = iota
	StateStarting
	StateStarted
	StateStopping
	StateStopped
)

// ErrNotStarted is returned by a service operation that requires the service to be started.
var ErrNotStarted = errors.New("service not started")

// Opt sets an option on a Lifecycle.
type Opt func(h *Lifecycle)

// WithStart sets the function to be invoked when the service is started.
func WithStart(start func()) Opt {
	return func(h *Lifecycle) {
		h.start = start
	}
}

// WithStop sets the function to be invoked when the service is stopped.
func WithStop(stop func()) Opt {
	return func(h *Lifecycle) {
		h.stop = stop
	}
}

// Lifecycle implements the lifecycle of a service, i.e. Start and Stop.
type Lifecycle struct {
	name  string
	state uint32
	start func()
	stop  func()
}

// New returns a new Lifecycle with the given name.
func New(name string, opts ...Opt) *Lifecycle {
	h := &Lifecycle{
		name:  name,
		start: func() {},
		stop:  func() {},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Start starts the service. If the service is already started then this function is a no-op.
func (h *Lifecycle) Start() {
	if !atomic.CompareAndSwapUint32(&h.state, StateNotStarted, StateStarting) {
		logger.Debug("Service already started", log.WithServiceName(h.name))

		return
	}

	logger.Debug("Starting service", log.WithServiceName(h.name))

	h.start()

	atomic.StoreUint32(&h.state, StateStarted)

	logger.Debug("... service started", log.WithServiceName(h.name))
}

// Stop stops the service. If the service isn't in a started state then this function is a no-op.
func (h *Lifecycle) Stop() {
	if !atomic.CompareAndSwapUint32(&h.state, StateStarted, StateStopping) {
		logger.Debug("Service already stopped", log.WithServiceName(h.name))

		return
	}

	logger.Debug("Stopping service", log.WithServiceName(h.name))

	h.stop()

	atomic.StoreUint32(&h.state, StateStopped)

	logger.Debug("... service stopped", log.WithServiceName(h.name))
}

// State returns the current state of the service.
func (h *Lifecycle) State() State {
	return atomic.LoadUint32(&h.state)
}
