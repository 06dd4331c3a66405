/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scoir/anoncreds-registry/pkg/events"
)

type walletStub struct{}

func (walletStub) GetPrivateKeyDer(_ context.Context, _ string) ([]byte, error) {
	return []byte{0x30}, nil
}

func TestAgent_Session(t *testing.T) {
	t.Run("capabilities are exposed until close", func(t *testing.T) {
		a := NewAgent("issuer", WithWallet(walletStub{}), WithEventBus(events.NewBus()))
		require.Equal(t, "issuer", a.Name())

		sess, err := a.Session(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, a.OpenSessions())

		w, ok := sess.Wallet()
		require.True(t, ok)
		require.NotNil(t, w)

		bus, ok := sess.EventBus()
		require.True(t, ok)
		require.NotNil(t, bus)

		require.NoError(t, sess.Close())
		require.NoError(t, sess.Close())
		require.Equal(t, 0, a.OpenSessions())

		_, ok = sess.Wallet()
		require.False(t, ok)
		_, ok = sess.EventBus()
		require.False(t, ok)
	})

	t.Run("missing capabilities", func(t *testing.T) {
		a := NewAgent("reader")
		sess, err := a.Session(context.Background())
		require.NoError(t, err)
		defer sess.Close()

		_, ok := sess.Wallet()
		require.False(t, ok)
		_, ok = sess.EventBus()
		require.False(t, ok)
	})

	t.Run("cancelled context", func(t *testing.T) {
		a := NewAgent("issuer")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		sess, err := a.Session(ctx)
		require.Error(t, err)
		require.Nil(t, sess)
		require.Equal(t, 0, a.OpenSessions())
	})
}
