/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/scoir/anoncreds-registry/pkg/amqp/mocks"
	"github.com/scoir/anoncreds-registry/pkg/notifier"
)

func TestNewRevListFinished(t *testing.T) {
	revoked := []int{3, 5}
	ev := NewRevListFinished("did:indy:test:abc/anoncreds/v0/REV_REG_DEF/7/default/0", revoked)
	revoked[0] = 99

	require.Equal(t, RevListFinishedTopic, ev.Topic)
	require.NotEmpty(t, ev.ID)
	payload, ok := ev.Payload.(*RevListFinishedPayload)
	require.True(t, ok)
	require.Equal(t, "did:indy:test:abc/anoncreds/v0/REV_REG_DEF/7/default/0", payload.RevRegDefID)
	require.Equal(t, []int{3, 5}, payload.Revoked)
}

func TestBus_Notify(t *testing.T) {
	t.Run("delivers to topic subscribers only", func(t *testing.T) {
		bus := NewBus()

		var got []Event
		var scopes []string
		unsub := bus.Subscribe(RevListFinishedTopic, func(_ context.Context, scope string, ev Event) {
			got = append(got, ev)
			scopes = append(scopes, scope)
		})
		other := 0
		bus.Subscribe("other", func(_ context.Context, _ string, _ Event) {
			other++
		})

		ev := NewRevListFinished("rev-reg", []int{1})
		require.NoError(t, bus.Notify(context.Background(), "issuer", ev))
		require.Len(t, got, 1)
		require.Equal(t, ev.ID, got[0].ID)
		require.Equal(t, []string{"issuer"}, scopes)
		require.Equal(t, 0, other)

		unsub()
		require.NoError(t, bus.Notify(context.Background(), "issuer", ev))
		require.Len(t, got, 1)
	})

	t.Run("forwards to publisher", func(t *testing.T) {
		pub := &mocks.Publisher{}
		var body []byte
		pub.On("Publish", mock.Anything, "application/json").Run(func(args mock.Arguments) {
			body = args.Get(0).([]byte)
		}).Return(nil)

		bus := NewBus(WithPublisher(pub))
		ev := NewRevListFinished("rev-reg", []int{3})
		require.NoError(t, bus.Notify(context.Background(), "issuer", ev))

		note := &notifier.Notification{}
		require.NoError(t, json.Unmarshal(body, note))
		require.Equal(t, RevListFinishedTopic, note.Topic)
		require.Equal(t, ev.ID, note.Event)
		data := note.EventData.(map[string]interface{})
		require.Equal(t, "issuer", data["scope"])
		require.Equal(t, map[string]interface{}{"rev_reg_id": "rev-reg", "revoked": []interface{}{float64(3)}}, data["payload"])
		pub.AssertExpectations(t)
	})

	t.Run("publisher failure is reported", func(t *testing.T) {
		pub := &mocks.Publisher{}
		pub.On("Publish", mock.Anything, mock.Anything).Return(errors.New("channel closed"))

		bus := NewBus(WithPublisher(pub))
		err := bus.Notify(context.Background(), "issuer", NewRevListFinished("rev-reg", nil))
		require.Error(t, err)
		require.Contains(t, err.Error(), "channel closed")
	})

	t.Run("cancelled context", func(t *testing.T) {
		bus := NewBus()
		called := false
		bus.Subscribe(RevListFinishedTopic, func(_ context.Context, _ string, _ Event) {
			called = true
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.Error(t, bus.Notify(ctx, "issuer", NewRevListFinished("rev-reg", nil)))
		require.False(t, called)
	})
}
