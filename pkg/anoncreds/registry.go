/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package anoncreds

import (
	"context"
	"regexp"

	"github.com/scoir/anoncreds-registry/pkg/profile"
)

//go:generate mockery -name=Resolver
type Resolver interface {
	SupportedIdentifiers() *regexp.Regexp
	GetSchema(ctx context.Context, prof profile.Profile, schemaID string) (*GetSchemaResult, error)
	GetCredentialDefinition(ctx context.Context, prof profile.Profile, credDefID string) (*GetCredDefResult, error)
	GetRevocationRegistryDefinition(ctx context.Context, prof profile.Profile, revRegDefID string) (*GetRevRegDefResult, error)
	GetRevocationList(ctx context.Context, prof profile.Profile, revRegDefID string, timestamp int64) (*GetRevListResult, error)
	GetSchemaInfo(ctx context.Context, prof profile.Profile, schemaID string) (*SchemaInfo, error)
}

//go:generate mockery -name=Registrar
type Registrar interface {
	SupportedIdentifiers() *regexp.Regexp
	RegisterSchema(ctx context.Context, prof profile.Profile, schema *Schema) (*SchemaResult, error)
	RegisterCredentialDefinition(ctx context.Context, prof profile.Profile, schema *GetSchemaResult, credDef *CredDef) (*CredDefResult, error)
	RegisterRevocationRegistryDefinition(ctx context.Context, prof profile.Profile, revRegDef *RevRegDef) (*RevRegDefResult, error)
	RegisterRevocationList(ctx context.Context, prof profile.Profile, revRegDef *RevRegDef, revList *RevList) (*RevListResult, error)
	UpdateRevocationList(ctx context.Context, prof profile.Profile, revRegDef *RevRegDef, prevList, currList *RevList, revoked []int) (*RevListResult, error)
}

// Registry is a ledger adapter that can both read and write AnonCreds objects.
type Registry interface {
	Resolver
	Registrar
}
