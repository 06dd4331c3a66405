/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package wallet

import (
	"context"
	"crypto/ed25519"
	"crypto/x509"
	"strings"
	"testing"

	storagemock "github.com/hyperledger/aries-framework-go/pkg/mock/storage"
	"github.com/hyperledger/aries-framework-go/pkg/secretlock"
	"github.com/hyperledger/aries-framework-go/pkg/secretlock/local"
	"github.com/hyperledger/aries-framework-go/pkg/storage/mem"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const (
	stewardSeed   = "000000000000000000000000Steward1"
	masterLockKey = "OTsonzgWMNAqR24bgGcZVHVBB_oqLoXntW4s_vCs6uQ="
)

func newLock(t *testing.T, key string) secretlock.Service {
	lock, err := local.NewService(strings.NewReader(key), nil)
	require.NoError(t, err)
	return lock
}

func TestNew(t *testing.T) {
	t.Run("opens the wallet store", func(t *testing.T) {
		w, err := New(mem.NewProvider(), newLock(t, masterLockKey), "indy", "test")
		require.NoError(t, err)
		require.NotNil(t, w)
	})

	t.Run("method required", func(t *testing.T) {
		w, err := New(mem.NewProvider(), newLock(t, masterLockKey), "", "test")
		require.Error(t, err)
		require.Nil(t, w)
	})

	t.Run("secret lock required", func(t *testing.T) {
		w, err := New(mem.NewProvider(), nil, "indy", "test")
		require.Error(t, err)
		require.Contains(t, err.Error(), "a secret lock is required")
		require.Nil(t, w)
	})

	t.Run("store failure", func(t *testing.T) {
		prov := &storagemock.MockStoreProvider{
			Store:              &storagemock.MockStore{Store: map[string][]byte{}},
			ErrOpenStoreHandle: errors.New("boom"),
		}
		w, err := New(prov, newLock(t, masterLockKey), "indy", "test")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unable to open wallet store")
		require.Nil(t, w)
	})
}

func TestWallet_CreateDID(t *testing.T) {
	t.Run("seeded", func(t *testing.T) {
		w, err := New(mem.NewProvider(), newLock(t, masterLockKey), "indy", "test")
		require.NoError(t, err)

		d, err := w.CreateDID(stewardSeed)
		require.NoError(t, err)
		require.Equal(t, "Th7MpTaRZVRYnPiabds81Y", d.Nym)
		require.Equal(t, "did:indy:test:Th7MpTaRZVRYnPiabds81Y", d.DID)

		verkey, err := base58.Decode(d.Verkey)
		require.NoError(t, err)
		require.Len(t, verkey, ed25519.PublicKeySize)
		require.Equal(t, d.Nym, base58.Encode(verkey[:16]))

		again, err := w.GetDID(d.DID)
		require.NoError(t, err)
		require.Equal(t, d, again)
	})

	t.Run("seed encrypted at rest", func(t *testing.T) {
		store := &storagemock.MockStore{Store: map[string][]byte{}}
		w, err := New(&storagemock.MockStoreProvider{Store: store}, newLock(t, masterLockKey), "indy", "test")
		require.NoError(t, err)

		d, err := w.CreateDID(stewardSeed)
		require.NoError(t, err)

		stored, ok := store.Store[d.DID]
		require.True(t, ok)
		require.NotContains(t, string(stored), stewardSeed)
		require.NotContains(t, string(stored), base58.Encode([]byte(stewardSeed)))
		require.Contains(t, string(stored), d.Verkey)
	})

	t.Run("encrypt failure", func(t *testing.T) {
		w, err := New(mem.NewProvider(), &failingLock{}, "indy", "test")
		require.NoError(t, err)

		d, err := w.CreateDID(stewardSeed)
		require.Error(t, err)
		require.Contains(t, err.Error(), "unable to encrypt key")
		require.Nil(t, d)
	})

	t.Run("no namespace", func(t *testing.T) {
		w, err := New(mem.NewProvider(), newLock(t, masterLockKey), "sov", "")
		require.NoError(t, err)

		d, err := w.CreateDID(stewardSeed)
		require.NoError(t, err)
		require.Equal(t, "did:sov:Th7MpTaRZVRYnPiabds81Y", d.DID)
	})

	t.Run("generated", func(t *testing.T) {
		w, err := New(mem.NewProvider(), newLock(t, masterLockKey), "indy", "test")
		require.NoError(t, err)

		a, err := w.CreateDID("")
		require.NoError(t, err)
		b, err := w.CreateDID("")
		require.NoError(t, err)
		require.NotEqual(t, a.DID, b.DID)
	})

	t.Run("bad seed", func(t *testing.T) {
		w, err := New(mem.NewProvider(), newLock(t, masterLockKey), "indy", "test")
		require.NoError(t, err)

		d, err := w.CreateDID("short")
		require.Error(t, err)
		require.Nil(t, d)
	})

	t.Run("put failure", func(t *testing.T) {
		prov := &storagemock.MockStoreProvider{
			Store: &storagemock.MockStore{Store: map[string][]byte{}, ErrPut: errors.New("boom")},
		}
		w, err := New(prov, newLock(t, masterLockKey), "indy", "test")
		require.NoError(t, err)

		d, err := w.CreateDID(stewardSeed)
		require.Error(t, err)
		require.Contains(t, err.Error(), "unable to store key")
		require.Nil(t, d)
	})
}

func TestWallet_GetPrivateKeyDer(t *testing.T) {
	w, err := New(mem.NewProvider(), newLock(t, masterLockKey), "indy", "test")
	require.NoError(t, err)

	d, err := w.CreateDID(stewardSeed)
	require.NoError(t, err)

	t.Run("pkcs8 ed25519", func(t *testing.T) {
		der, err := w.GetPrivateKeyDer(context.Background(), d.DID)
		require.NoError(t, err)

		key, err := x509.ParsePKCS8PrivateKey(der)
		require.NoError(t, err)
		priv, ok := key.(ed25519.PrivateKey)
		require.True(t, ok)
		require.Equal(t, []byte(stewardSeed), priv.Seed())
		require.Equal(t, d.Verkey, base58.Encode(priv.Public().(ed25519.PublicKey)))
	})

	t.Run("unknown did", func(t *testing.T) {
		der, err := w.GetPrivateKeyDer(context.Background(), "did:indy:test:nobody")
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrKeyNotFound))
		require.Nil(t, der)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		der, err := w.GetPrivateKeyDer(ctx, d.DID)
		require.Error(t, err)
		require.Nil(t, der)
	})

	t.Run("wrong master key", func(t *testing.T) {
		store := &storagemock.MockStore{Store: map[string][]byte{}}
		prov := &storagemock.MockStoreProvider{Store: store}
		first, err := New(prov, newLock(t, masterLockKey), "indy", "test")
		require.NoError(t, err)
		created, err := first.CreateDID(stewardSeed)
		require.NoError(t, err)

		other, err := New(prov, newLock(t, "jSYp8d1tVh_rAP5XFtiB4d9oQCKGGC0YDdFlgMtuXUs="), "indy", "test")
		require.NoError(t, err)

		der, err := other.GetPrivateKeyDer(context.Background(), created.DID)
		require.Error(t, err)
		require.Contains(t, err.Error(), "unable to decrypt key")
		require.Nil(t, der)
	})

	t.Run("corrupt record", func(t *testing.T) {
		prov := &storagemock.MockStoreProvider{
			Store: &storagemock.MockStore{Store: map[string][]byte{
				"did:indy:test:bad": []byte("{not json"),
			}},
		}
		bad, err := New(prov, newLock(t, masterLockKey), "indy", "test")
		require.NoError(t, err)

		der, err := bad.GetPrivateKeyDer(context.Background(), "did:indy:test:bad")
		require.Error(t, err)
		require.Contains(t, err.Error(), "corrupt key record")
		require.Nil(t, der)
	})

	t.Run("read failure", func(t *testing.T) {
		prov := &storagemock.MockStoreProvider{
			Store: &storagemock.MockStore{Store: map[string][]byte{}, ErrGet: errors.New("boom")},
		}
		broken, err := New(prov, newLock(t, masterLockKey), "indy", "test")
		require.NoError(t, err)

		_, err = broken.GetPrivateKeyDer(context.Background(), d.DID)
		require.Error(t, err)
		require.False(t, errors.Is(err, ErrKeyNotFound))
	})
}

type failingLock struct{}

func (f *failingLock) Encrypt(string, *secretlock.EncryptRequest) (*secretlock.EncryptResponse, error) {
	return nil, errors.New("locked")
}

func (f *failingLock) Decrypt(string, *secretlock.DecryptRequest) (*secretlock.DecryptResponse, error) {
	return nil, errors.New("locked")
}
