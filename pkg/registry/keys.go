/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package registry

import (
	"context"
	"fmt"

	"github.com/hyperledger/aries-framework-go/pkg/doc/did"

	"github.com/scoir/anoncreds-registry/pkg/anoncreds"
	"github.com/scoir/anoncreds-registry/pkg/profile"
)

// resolveIssuerKey fetches the DER encoded private key the issuer signs ledger writes with.
func resolveIssuerKey(ctx context.Context, w profile.Wallet, issuerID string) ([]byte, error) {
	if w == nil {
		return nil, anoncreds.NewResolutionError("wallet not available")
	}

	if _, err := did.Parse(issuerID); err != nil {
		return nil, anoncreds.WrapResolutionError(err, fmt.Sprintf("issuer %q is not a DID", issuerID))
	}

	der, err := w.GetPrivateKeyDer(ctx, issuerID)
	if err != nil {
		return nil, anoncreds.WrapResolutionError(err, fmt.Sprintf("unable to load signing key for %s", issuerID))
	}

	if len(der) == 0 {
		return nil, anoncreds.NewResolutionError(fmt.Sprintf("no signing key for %s", issuerID))
	}

	return der, nil
}
