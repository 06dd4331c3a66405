/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/
package framework

import (
	"testing"

	"github.com/hyperledger/aries-framework-go/pkg/secretlock"
	"github.com/stretchr/testify/require"
)

func TestWalletStoreConfig(t *testing.T) {
	t.Run("no database", func(t *testing.T) {
		wsc := &WalletStoreConfig{
			Database: "",
		}

		sp, err := wsc.StorageProvider()
		require.Error(t, err)
		require.Contains(t, err.Error(), "no wallet store configuration was provided")
		require.Nil(t, sp)
	})

	t.Run("unknown database", func(t *testing.T) {
		wsc := &WalletStoreConfig{Database: "leveldb"}

		sp, err := wsc.StorageProvider()
		require.Error(t, err)
		require.Nil(t, sp)
	})

	t.Run("mem", func(t *testing.T) {
		wsc := &WalletStoreConfig{Database: "mem"}

		sp, err := wsc.StorageProvider()
		require.NoError(t, err)
		require.NotNil(t, sp)

		store, err := sp.OpenStore("wallet")
		require.NoError(t, err)
		require.NoError(t, store.Put("k", []byte("v")))
	})

	t.Run("couchdb requires url", func(t *testing.T) {
		wsc := &WalletStoreConfig{Database: "couchdb"}

		sp, err := wsc.StorageProvider()
		require.Error(t, err)
		require.Contains(t, err.Error(), "unable to create wallet store based on config")
		require.Nil(t, sp)
	})

	t.Run("mysql requires url", func(t *testing.T) {
		wsc := &WalletStoreConfig{Database: "mysql"}

		sp, err := wsc.StorageProvider()
		require.Error(t, err)
		require.Nil(t, sp)
	})

	t.Run("secret lock", func(t *testing.T) {
		wsc := &WalletStoreConfig{MasterLockKey: "OTsonzgWMNAqR24bgGcZVHVBB_oqLoXntW4s_vCs6uQ="}

		lock, err := wsc.SecretLock()
		require.NoError(t, err)

		enc, err := lock.Encrypt("", &secretlock.EncryptRequest{Plaintext: "seed"})
		require.NoError(t, err)
		require.NotEqual(t, "seed", enc.Ciphertext)

		dec, err := lock.Decrypt("", &secretlock.DecryptRequest{Ciphertext: enc.Ciphertext})
		require.NoError(t, err)
		require.Equal(t, "seed", dec.Plaintext)
	})

	t.Run("secret lock requires master key", func(t *testing.T) {
		lock, err := (&WalletStoreConfig{Database: "mem"}).SecretLock()
		require.Error(t, err)
		require.Contains(t, err.Error(), "wallet.masterLockKey is required")
		require.Nil(t, lock)
	})

	t.Run("prefix default", func(t *testing.T) {
		require.Equal(t, "anoncreds", (&WalletStoreConfig{}).prefix())
		require.Equal(t, "issuer", (&WalletStoreConfig{Prefix: "issuer"}).prefix())
	})
}
