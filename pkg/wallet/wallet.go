/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package wallet

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/json"
	"fmt"

	"github.com/hyperledger/aries-framework-go/pkg/secretlock"
	"github.com/hyperledger/aries-framework-go/pkg/storage"
	"github.com/hyperledger/indy-vdr/wrappers/golang/identifiers"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

const (
	storeName  = "anoncreds_wallet"
	lockKeyURI = "local-lock://default/master/key/"
)

var ErrKeyNotFound = errors.New("key not found")

type DID struct {
	DID    string `json:"did"`
	Nym    string `json:"nym"`
	Verkey string `json:"verkey"`
}

type keyRecord struct {
	DID
	EncryptedSeed string `json:"encryptedSeed"`
}

// Wallet keeps Ed25519 issuer keys indexed by their fully qualified DID. Seeds are
// encrypted with lock before they reach the store.
type Wallet struct {
	store     storage.Store
	lock      secretlock.Service
	method    string
	namespace string
}

func New(prov storage.Provider, lock secretlock.Service, method, namespace string) (*Wallet, error) {
	if method == "" {
		return nil, errors.New("a DID method is required")
	}

	if lock == nil {
		return nil, errors.New("a secret lock is required")
	}

	store, err := prov.OpenStore(storeName)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open wallet store")
	}

	return &Wallet{
		store:     store,
		lock:      lock,
		method:    method,
		namespace: namespace,
	}, nil
}

func (r *Wallet) qualify(nym string) string {
	if r.namespace == "" {
		return fmt.Sprintf("did:%s:%s", r.method, nym)
	}

	return fmt.Sprintf("did:%s:%s:%s", r.method, r.namespace, nym)
}

// CreateDID stores a key derived from seed, or a fresh key when seed is empty.
// A non-empty seed must be 32 characters long.
func (r *Wallet) CreateDID(seed string) (*DID, error) {
	var privkey ed25519.PrivateKey
	if len(seed) == 0 {
		_, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, errors.Wrap(err, "unable to generate key")
		}
		privkey = priv
	} else {
		edseed, err := identifiers.ConvertSeed(seed)
		if err != nil {
			return nil, errors.Wrap(err, "failed to convert seed")
		}
		if len(edseed) != ed25519.SeedSize {
			return nil, errors.New("invalid seed")
		}
		privkey = ed25519.NewKeyFromSeed(edseed)
	}

	pubkey := privkey.Public().(ed25519.PublicKey)
	nym := base58.Encode(pubkey[:16])
	did := r.qualify(nym)

	enc, err := r.lock.Encrypt(lockKeyURI, &secretlock.EncryptRequest{
		Plaintext:                   string(privkey.Seed()),
		AdditionalAuthenticatedData: did,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to encrypt key for %s", did)
	}

	rec := &keyRecord{
		DID: DID{
			DID:    did,
			Nym:    nym,
			Verkey: base58.Encode(pubkey),
		},
		EncryptedSeed: enc.Ciphertext,
	}

	d, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode key record")
	}

	err = r.store.Put(rec.DID.DID, d)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to store key for %s", rec.DID.DID)
	}

	out := rec.DID
	return &out, nil
}

func (r *Wallet) GetDID(did string) (*DID, error) {
	rec, err := r.load(did)
	if err != nil {
		return nil, err
	}

	return &rec.DID, nil
}

// GetPrivateKeyDer returns the PKCS#8 DER encoding of the private key behind did.
func (r *Wallet) GetPrivateKeyDer(ctx context.Context, did string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "key lookup cancelled")
	}

	rec, err := r.load(did)
	if err != nil {
		return nil, err
	}

	dec, err := r.lock.Decrypt(lockKeyURI, &secretlock.DecryptRequest{
		Ciphertext:                  rec.EncryptedSeed,
		AdditionalAuthenticatedData: rec.DID.DID,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decrypt key for %s", did)
	}

	seed := []byte(dec.Plaintext)
	if len(seed) != ed25519.SeedSize {
		return nil, errors.Errorf("corrupt key record for %s", did)
	}

	der, err := x509.MarshalPKCS8PrivateKey(ed25519.NewKeyFromSeed(seed))
	if err != nil {
		return nil, errors.Wrapf(err, "unable to encode key for %s", did)
	}

	return der, nil
}

func (r *Wallet) load(did string) (*keyRecord, error) {
	d, err := r.store.Get(did)
	if errors.Is(err, storage.ErrDataNotFound) {
		return nil, errors.Wrapf(ErrKeyNotFound, "no key for %s", did)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load key for %s", did)
	}

	rec := &keyRecord{}
	err = json.Unmarshal(d, rec)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt key record for %s", did)
	}

	return rec, nil
}
