/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scoir/anoncreds-registry/pkg/anoncreds"
	"github.com/scoir/anoncreds-registry/pkg/ledger"
)

func TestValidateResponse(t *testing.T) {
	found := &ledger.GetSchemaResult{SchemaID: "s1", Schema: &ledger.Schema{Name: "degree"}}

	tests := []struct {
		name    string
		res     ledger.Resolution
		field   string
		checkFn func(error) bool
		msg     string
	}{
		{
			name:    "nil envelope",
			res:     nil,
			field:   fieldSchema,
			checkFn: anoncreds.IsResolutionError,
			msg:     "Failed to retrieve schema",
		},
		{
			name:    "typed nil envelope",
			res:     (*ledger.GetCredDefResult)(nil),
			field:   fieldCredDef,
			checkFn: anoncreds.IsResolutionError,
			msg:     "Failed to retrieve credential_definition",
		},
		{
			name: "error code without message",
			res: &ledger.GetRevRegDefResult{
				ResolutionMetadata: ledger.ResolutionMetadata{Error: "bad"},
			},
			field:   fieldRevRegDef,
			checkFn: anoncreds.IsResolutionError,
			msg:     "Unknown error",
		},
		{
			name: "not found without message is still unknown",
			res: &ledger.GetRevListResult{
				ResolutionMetadata: ledger.ResolutionMetadata{Error: ledger.ErrorNotFound},
			},
			field:   fieldRevList,
			checkFn: anoncreds.IsResolutionError,
			msg:     "Unknown error",
		},
		{
			name: "not found",
			res: &ledger.GetRevListResult{
				ResolutionMetadata: ledger.ResolutionMetadata{Error: ledger.ErrorNotFound, Message: "no such list"},
			},
			field:   fieldRevList,
			checkFn: anoncreds.IsObjectNotFound,
			msg:     "no such list",
		},
		{
			name: "other error code",
			res: &ledger.GetSchemaResult{
				ResolutionMetadata: ledger.ResolutionMetadata{Error: "invalidIdentifier", Message: "bad id"},
			},
			field:   fieldSchema,
			checkFn: anoncreds.IsResolutionError,
			msg:     "bad id",
		},
		{
			name:    "missing payload",
			res:     &ledger.GetRevRegDefResult{RevocationRegistryDefinitionID: "r1"},
			field:   fieldRevRegDef,
			checkFn: anoncreds.IsResolutionError,
			msg:     "Failed to retrieve revocation_registry_definition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(tt.res, tt.field)
			require.Error(t, err)
			require.True(t, tt.checkFn(err))
			require.Equal(t, tt.msg, err.Error())
		})
	}

	t.Run("success", func(t *testing.T) {
		require.NoError(t, validateResponse(found, fieldSchema))
	})

	t.Run("not found is not a resolution error", func(t *testing.T) {
		err := validateResponse(&ledger.GetCredDefResult{
			ResolutionMetadata: ledger.ResolutionMetadata{Error: ledger.ErrorNotFound, Message: "gone"},
		}, fieldCredDef)
		require.False(t, anoncreds.IsResolutionError(err))
	})
}
