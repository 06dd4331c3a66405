/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package profile

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Agent is a Profile whose sessions expose a fixed wallet and event bus.
type Agent struct {
	name   string
	wallet Wallet
	bus    EventBus
	open   int64
}

// Option configures the Agent profile
type Option func(a *Agent)

func WithWallet(w Wallet) Option {
	return func(a *Agent) {
		a.wallet = w
	}
}

func WithEventBus(bus EventBus) Option {
	return func(a *Agent) {
		a.bus = bus
	}
}

func NewAgent(name string, opts ...Option) *Agent {
	a := &Agent{name: name}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

func (r *Agent) Name() string {
	return r.name
}

func (r *Agent) Session(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(err, "unable to open session for profile %s", r.name)
	}

	atomic.AddInt64(&r.open, 1)
	return &session{agent: r}, nil
}

// OpenSessions reports sessions handed out and not yet closed.
func (r *Agent) OpenSessions() int {
	return int(atomic.LoadInt64(&r.open))
}

type session struct {
	agent  *Agent
	once   sync.Once
	closed int32
}

func (r *session) Wallet() (Wallet, bool) {
	if atomic.LoadInt32(&r.closed) == 1 || r.agent.wallet == nil {
		return nil, false
	}

	return r.agent.wallet, true
}

func (r *session) EventBus() (EventBus, bool) {
	if atomic.LoadInt32(&r.closed) == 1 || r.agent.bus == nil {
		return nil, false
	}

	return r.agent.bus, true
}

func (r *session) Close() error {
	r.once.Do(func() {
		atomic.StoreInt32(&r.closed, 1)
		atomic.AddInt64(&r.agent.open, -1)
	})

	return nil
}
