/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/scoir/anoncreds-registry/pkg/framework"
	mockconfig "github.com/scoir/anoncreds-registry/pkg/mock/config/viper"
	"github.com/scoir/anoncreds-registry/pkg/notifier"
)

const masterLockKey = "OTsonzgWMNAqR24bgGcZVHVBB_oqLoXntW4s_vCs6uQ="

func testConfig() mockconfig.MockConfig {
	return mockconfig.MockConfig{
		LedgerConfig:      &framework.LedgerConfig{Method: "indy", Namespace: "test"},
		WalletStoreConfig: &framework.WalletStoreConfig{Database: "mem", MasterLockKey: masterLockKey},
		ProfileConfig:     &framework.ProfileConfig{Name: "issuer"},
	}
}

func TestProvider_GetWallet(t *testing.T) {
	t.Run("mem store", func(t *testing.T) {
		p := NewProvider(testConfig())

		w, err := p.GetWallet()
		require.NoError(t, err)

		d, err := w.CreateDID("000000000000000000000000Steward1")
		require.NoError(t, err)
		require.Equal(t, "did:indy:test:Th7MpTaRZVRYnPiabds81Y", d.DID)

		again, err := p.GetWallet()
		require.NoError(t, err)
		require.Same(t, w, again)
	})

	t.Run("bad ledger config", func(t *testing.T) {
		conf := testConfig()
		conf.LedgerErr = errors.New("ledger.method is required")

		w, err := NewProvider(conf).GetWallet()
		require.Error(t, err)
		require.Nil(t, w)
	})

	t.Run("no wallet store", func(t *testing.T) {
		conf := testConfig()
		conf.WalletStoreConfig = &framework.WalletStoreConfig{}

		w, err := NewProvider(conf).GetWallet()
		require.Error(t, err)
		require.Contains(t, err.Error(), "no wallet store configuration was provided")
		require.Nil(t, w)
	})

	t.Run("no master lock key", func(t *testing.T) {
		conf := testConfig()
		conf.WalletStoreConfig = &framework.WalletStoreConfig{Database: "mem"}

		w, err := NewProvider(conf).GetWallet()
		require.Error(t, err)
		require.Contains(t, err.Error(), "wallet.masterLockKey is required")
		require.Nil(t, w)
	})
}

func TestProvider_GetEventBus(t *testing.T) {
	t.Run("in process only", func(t *testing.T) {
		p := NewProvider(testConfig())

		bus, err := p.GetEventBus()
		require.NoError(t, err)
		require.NotNil(t, bus)
		require.Nil(t, p.pub)

		again, err := p.GetEventBus()
		require.NoError(t, err)
		require.Same(t, bus, again)
	})

	t.Run("bad amqp config", func(t *testing.T) {
		conf := testConfig()
		conf.AMQPErr = errors.New("bad")

		bus, err := NewProvider(conf).GetEventBus()
		require.Error(t, err)
		require.Nil(t, bus)
	})
}

func TestProvider_GetProfile(t *testing.T) {
	t.Run("issuer capabilities", func(t *testing.T) {
		prof, err := NewProvider(testConfig()).GetProfile()
		require.NoError(t, err)
		require.Equal(t, "issuer", prof.Name())

		sess, err := prof.Session(context.Background())
		require.NoError(t, err)
		defer sess.Close()

		_, ok := sess.Wallet()
		require.True(t, ok)
		_, ok = sess.EventBus()
		require.True(t, ok)
	})

	t.Run("bad profile config", func(t *testing.T) {
		conf := testConfig()
		conf.ProfileErr = errors.New("bad")

		prof, err := NewProvider(conf).GetProfile()
		require.Error(t, err)
		require.Nil(t, prof)
	})
}

func TestProvider_GetRouter(t *testing.T) {
	t.Run("no genesis", func(t *testing.T) {
		router, err := NewProvider(testConfig()).GetRouter()
		require.Error(t, err)
		require.Contains(t, err.Error(), "no ledger genesis file was provided")
		require.Nil(t, router)
	})

	t.Run("bad ledger config", func(t *testing.T) {
		conf := testConfig()
		conf.LedgerErr = errors.New("bad")

		cl, err := NewProvider(conf).GetLedgerClient()
		require.Error(t, err)
		require.Nil(t, cl)
	})
}

func TestProvider_GetWebhookStore(t *testing.T) {
	conf := testConfig()
	conf.Hooks = []*notifier.Webhook{{Topic: "anoncreds::revocation-list::finished", URL: "http://localhost:9000"}}

	store := NewProvider(conf).GetWebhookStore()
	hooks, err := store.ListWebhooks("anoncreds::revocation-list::finished")
	require.NoError(t, err)
	require.Len(t, hooks, 1)

	_, err = store.ListWebhooks("other")
	require.Error(t, err)
}
