/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledger

import (
	"context"
)

// Client is the ledger SDK surface used by the registry. Reads report ledger
// side failures in the returned ResolutionMetadata; a non-nil error means the
// ledger could not be asked at all. Writes are signed with the issuer's DER
// encoded private key.
//go:generate mockery -name=Client
type Client interface {
	GetSchema(ctx context.Context, schemaID string) (*GetSchemaResult, error)
	GetCredDef(ctx context.Context, credDefID string) (*GetCredDefResult, error)
	GetRevRegDef(ctx context.Context, revRegDefID string) (*GetRevRegDefResult, error)
	GetRevList(ctx context.Context, revRegDefID string, timestamp int64) (*GetRevListResult, error)

	RegisterSchema(ctx context.Context, schema *Schema, issuerKeyDer []byte) (*RegisterSchemaResult, error)
	RegisterCredDef(ctx context.Context, credDef *CredDef, issuerKeyDer []byte) (*RegisterCredDefResult, error)
	RegisterRevRegDef(ctx context.Context, revRegDef *RevRegDef, issuerKeyDer []byte) (*RegisterRevRegDefResult, error)
	RegisterRevList(ctx context.Context, revList *RevList, issuerKeyDer []byte) (*RegisterRevListResult, error)
	UpdateRevList(ctx context.Context, prevList, currList *RevList, revoked []int, issuerKeyDer []byte) (*RegisterRevListResult, error)
}
