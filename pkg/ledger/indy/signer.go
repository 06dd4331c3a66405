/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package indy

import (
	"crypto/ed25519"
	"crypto/x509"

	"github.com/google/tink/go/signature/subtle"
	"github.com/hyperledger/indy-vdr/wrappers/golang/vdr"
	"github.com/pkg/errors"
)

// signerFromDer builds a ledger request signer from a PKCS#8 DER encoded ed25519 key.
func signerFromDer(der []byte) (vdr.Signer, error) {
	if len(der) == 0 {
		return nil, errors.New("issuer key is empty")
	}

	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse issuer key")
	}

	priv, ok := key.(ed25519.PrivateKey)
	if !ok {
		return nil, errors.Errorf("issuer key is %T, ed25519 required", key)
	}

	sig, err := subtle.NewED25519Signer(priv.Seed())
	if err != nil {
		return nil, errors.Wrap(err, "unable to load signer primitives")
	}

	return sig, nil
}
