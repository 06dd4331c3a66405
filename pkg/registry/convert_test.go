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

func testCredDef() *anoncreds.CredDef {
	return &anoncreds.CredDef{
		IssuerID: "did:indy:test:abc",
		SchemaID: "did:indy:test:abc/anoncreds/v0/SCHEMA/degree/1.0",
		Type:     anoncreds.CLSignatureType,
		Tag:      "default",
		Value: anoncreds.CredDefValue{
			Primary: anoncreds.CredDefValuePrimary{
				N:     "1",
				S:     "2",
				R:     map[string]string{"name": "3", "master_secret": "4"},
				Rctxt: "5",
				Z:     "6",
			},
			Revocation: &anoncreds.CredDefValueRevocation{G: "g", GDash: "gd", H: "h", Y: "y"},
		},
	}
}

func testRevRegDef() *anoncreds.RevRegDef {
	return &anoncreds.RevRegDef{
		IssuerID:  "did:indy:test:abc",
		Type:      anoncreds.CLAccumType,
		CredDefID: "did:indy:test:abc/anoncreds/v0/CLAIM_DEF/12/default",
		Tag:       "r1",
		Value: anoncreds.RevRegDefValue{
			PublicKeys:    map[string]interface{}{"accumKey": map[string]interface{}{"z": "1 0"}},
			MaxCredNum:    5,
			TailsLocation: "https://tails.example.com/abc",
			TailsHash:     "hash",
		},
	}
}

func TestSchemaConversion(t *testing.T) {
	in := &anoncreds.Schema{IssuerID: "did:ledger:abc", Name: "degree", Version: "1.0", AttrNames: []string{"name", "date"}}

	wire, err := toLedgerSchema(in)
	require.NoError(t, err)
	require.Equal(t, &ledger.Schema{IssuerID: "did:ledger:abc", Name: "degree", Version: "1.0",
		AttrNames: []string{"name", "date"}}, wire)

	wire.AttrNames[0] = "changed"
	require.Equal(t, "name", in.AttrNames[0])

	_, err = toLedgerSchema(nil)
	require.Error(t, err)
	_, err = schemaFromLedger(nil)
	require.Error(t, err)
}

func TestCredDefConversion(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		in := testCredDef()
		wire, err := toLedgerCredDef(in)
		require.NoError(t, err)
		require.Equal(t, "3", wire.Value.Primary.R["name"])

		out, err := credDefFromLedger(wire)
		require.NoError(t, err)
		require.Equal(t, in, out)

		wire.Value.Primary.R["name"] = "changed"
		require.Equal(t, "3", in.Value.Primary.R["name"])
	})

	t.Run("without revocation", func(t *testing.T) {
		in := testCredDef()
		in.Value.Revocation = nil
		wire, err := toLedgerCredDef(in)
		require.NoError(t, err)
		require.Nil(t, wire.Value.Revocation)

		out, err := credDefFromLedger(wire)
		require.NoError(t, err)
		require.Nil(t, out.Value.Revocation)
	})

	t.Run("missing primary", func(t *testing.T) {
		_, err := credDefFromLedger(&ledger.CredDef{Tag: "default"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "no primary key")
	})
}

func TestRevRegDefConversion(t *testing.T) {
	in := testRevRegDef()
	wire, err := toLedgerRevRegDef(in)
	require.NoError(t, err)
	require.Equal(t, 5, wire.Value.MaxCredNum)

	out, err := revRegDefFromLedger(wire)
	require.NoError(t, err)
	require.Equal(t, in, out)

	wire.Value.PublicKeys["other"] = true
	_, ok := in.Value.PublicKeys["other"]
	require.False(t, ok)

	in.Value.MaxCredNum = -1
	_, err = toLedgerRevRegDef(in)
	require.Error(t, err)
}

func TestRevListConversion(t *testing.T) {
	t.Run("round trip keeps timestamp", func(t *testing.T) {
		ts := int64(1000)
		in := &anoncreds.RevList{
			IssuerID:           "did:indy:test:abc",
			RevRegDefID:        "rev1",
			RevocationList:     []int{0, 1, 0},
			CurrentAccumulator: "acc",
			Timestamp:          &ts,
		}

		wire, err := toLedgerRevList(in)
		require.NoError(t, err)
		out, err := revListFromLedger(wire)
		require.NoError(t, err)
		require.Equal(t, in, out)

		*wire.Timestamp = 5
		require.Equal(t, int64(1000), *in.Timestamp)
	})

	t.Run("absent timestamp stays absent", func(t *testing.T) {
		out, err := revListFromLedger(&ledger.RevList{RevRegDefID: "rev1", RevocationList: []int{}})
		require.NoError(t, err)
		require.Nil(t, out.Timestamp)
		require.Empty(t, out.RevocationList)
	})

	t.Run("invalid entry", func(t *testing.T) {
		_, err := toLedgerRevList(&anoncreds.RevList{RevocationList: []int{0, 2}})
		require.Error(t, err)
		_, err = revListFromLedger(&ledger.RevList{RevocationList: []int{-1}})
		require.Error(t, err)
	})
}

func TestRegistrationResults(t *testing.T) {
	t.Run("schema", func(t *testing.T) {
		res, err := schemaResultFromLedger(&ledger.RegisterSchemaResult{
			JobID: "job",
			SchemaState: &ledger.SchemaState{
				State:    ledger.StateFinished,
				SchemaID: "s1",
				Schema:   &ledger.Schema{Name: "degree", Version: "1.0", IssuerID: "did:indy:test:abc"},
			},
			RegistrationMetadata: ledger.Metadata{"seqNo": 12},
		})
		require.NoError(t, err)
		require.Equal(t, anoncreds.StateFinished, res.SchemaState.State)
		require.Equal(t, "s1", res.SchemaState.SchemaID)
		require.Equal(t, "degree", res.SchemaState.Schema.Name)
		require.Equal(t, 12, res.RegistrationMetadata["seqNo"])
		require.Nil(t, res.SchemaMetadata)
	})

	t.Run("unknown state", func(t *testing.T) {
		_, err := credDefResultFromLedger(&ledger.RegisterCredDefResult{
			CredentialDefinitionState: &ledger.CredDefState{State: "pending"},
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "pending")
	})

	t.Run("missing state", func(t *testing.T) {
		_, err := revRegDefResultFromLedger(&ledger.RegisterRevRegDefResult{})
		require.Error(t, err)
		_, err = revListResultFromLedger(nil)
		require.Error(t, err)
	})

	t.Run("wait state without payload", func(t *testing.T) {
		res, err := revListResultFromLedger(&ledger.RegisterRevListResult{
			JobID:               "job",
			RevocationListState: &ledger.RevListState{State: ledger.StateWait},
		})
		require.NoError(t, err)
		require.Equal(t, anoncreds.StateWait, res.RevocationListState.State)
		require.Nil(t, res.RevocationListState.RevocationList)
	})
}

func TestGetResults(t *testing.T) {
	res, err := getRevRegDefResultFromLedger(&ledger.GetRevRegDefResult{
		RevocationRegistryDefinitionID:       "rev1",
		RevocationRegistryDefinition:         &ledger.RevRegDef{Tag: "r1"},
		RevocationRegistryDefinitionMetadata: ledger.Metadata{"issuanceType": "ISSUANCE_BY_DEFAULT"},
	})
	require.NoError(t, err)
	require.Equal(t, "rev1", res.RevocationRegistryID)
	require.Equal(t, "r1", res.RevocationRegistry.Tag)
	require.Nil(t, res.ResolutionMetadata)
	require.Equal(t, "ISSUANCE_BY_DEFAULT", res.RevocationRegistryMetadata["issuanceType"])

	_, err = getCredDefResultFromLedger(&ledger.GetCredDefResult{
		CredentialDefinition: &ledger.CredDef{},
	})
	require.Error(t, err)
}
