/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/hyperledger/aries-framework-go/pkg/common/log"
	"github.com/pkg/errors"

	"github.com/scoir/anoncreds-registry/pkg/amqp"
	"github.com/scoir/anoncreds-registry/pkg/notifier"
)

var logger = log.New("anoncreds/events")

// Handler receives events for the topic it subscribed to. scope names the
// profile that emitted the event.
type Handler func(ctx context.Context, scope string, ev Event)

type subscription struct {
	id      int
	handler Handler
}

// Bus delivers events synchronously to in-process subscribers and, when a
// publisher is configured, forwards them to the notifier queue.
type Bus struct {
	lock      sync.RWMutex
	handlers  map[string][]subscription
	nextID    int
	publisher amqp.Publisher
}

// Option configures the Bus
type Option func(b *Bus)

// WithPublisher forwards every notified event to pub as a notifier.Notification.
func WithPublisher(pub amqp.Publisher) Option {
	return func(b *Bus) {
		b.publisher = pub
	}
}

func NewBus(opts ...Option) *Bus {
	b := &Bus{handlers: map[string][]subscription{}}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Subscribe registers h for topic and returns a function that removes it.
func (r *Bus) Subscribe(topic string, h Handler) func() {
	r.lock.Lock()
	id := r.nextID
	r.nextID++
	r.handlers[topic] = append(r.handlers[topic], subscription{id: id, handler: h})
	r.lock.Unlock()

	return func() {
		r.lock.Lock()
		defer r.lock.Unlock()

		subs := r.handlers[topic]
		out := subs[:0]
		for _, s := range subs {
			if s.id != id {
				out = append(out, s)
			}
		}
		r.handlers[topic] = out
	}
}

func (r *Bus) Notify(ctx context.Context, scope string, ev Event) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "event not delivered")
	}

	r.lock.RLock()
	subs := append([]subscription(nil), r.handlers[ev.Topic]...)
	r.lock.RUnlock()

	for _, s := range subs {
		s.handler(ctx, scope, ev)
	}

	if r.publisher == nil {
		return nil
	}

	note := &notifier.Notification{
		Topic:     ev.Topic,
		Event:     ev.ID,
		EventData: map[string]interface{}{"scope": scope, "payload": ev.Payload},
	}
	d, err := json.Marshal(note)
	if err != nil {
		return errors.Wrapf(err, "unable to encode event %s", ev.Topic)
	}

	err = r.publisher.Publish(d, "application/json")
	if err != nil {
		logger.Errorf("unable to forward event %s (%s): %v", ev.ID, ev.Topic, err)
		return errors.Wrapf(err, "unable to forward event %s", ev.Topic)
	}

	return nil
}
