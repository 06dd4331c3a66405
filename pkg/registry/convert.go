/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package registry

import (
	"github.com/pkg/errors"

	"github.com/scoir/anoncreds-registry/pkg/anoncreds"
	"github.com/scoir/anoncreds-registry/pkg/ledger"
)

func toLedgerSchema(s *anoncreds.Schema) (*ledger.Schema, error) {
	if s == nil {
		return nil, errors.New("schema is required")
	}

	return &ledger.Schema{
		Name:      s.Name,
		IssuerID:  s.IssuerID,
		AttrNames: copyStrings(s.AttrNames),
		Version:   s.Version,
	}, nil
}

func schemaFromLedger(s *ledger.Schema) (*anoncreds.Schema, error) {
	if s == nil {
		return nil, errors.New("ledger schema is missing")
	}

	return &anoncreds.Schema{
		IssuerID:  s.IssuerID,
		AttrNames: copyStrings(s.AttrNames),
		Name:      s.Name,
		Version:   s.Version,
	}, nil
}

func toLedgerCredDef(cd *anoncreds.CredDef) (*ledger.CredDef, error) {
	if cd == nil {
		return nil, errors.New("credential definition is required")
	}

	p := cd.Value.Primary
	out := &ledger.CredDef{
		SchemaID: cd.SchemaID,
		IssuerID: cd.IssuerID,
		Type:     cd.Type,
		Tag:      cd.Tag,
		Value: ledger.CredDefValue{
			Primary: &ledger.CredDefPrimary{
				N:     p.N,
				S:     p.S,
				R:     copyStringMap(p.R),
				Rctxt: p.Rctxt,
				Z:     p.Z,
			},
		},
	}

	if r := cd.Value.Revocation; r != nil {
		out.Value.Revocation = &ledger.CredDefRevocation{
			G:      r.G,
			GDash:  r.GDash,
			H:      r.H,
			H0:     r.H0,
			H1:     r.H1,
			H2:     r.H2,
			HTilde: r.HTilde,
			HCap:   r.HCap,
			U:      r.U,
			Pk:     r.Pk,
			Y:      r.Y,
		}
	}

	return out, nil
}

func credDefFromLedger(cd *ledger.CredDef) (*anoncreds.CredDef, error) {
	if cd == nil {
		return nil, errors.New("ledger credential definition is missing")
	}

	p := cd.Value.Primary
	if p == nil {
		return nil, errors.Errorf("credential definition %s has no primary key", cd.Tag)
	}

	out := &anoncreds.CredDef{
		IssuerID: cd.IssuerID,
		SchemaID: cd.SchemaID,
		Type:     cd.Type,
		Tag:      cd.Tag,
		Value: anoncreds.CredDefValue{
			Primary: anoncreds.CredDefValuePrimary{
				N:     p.N,
				S:     p.S,
				R:     copyStringMap(p.R),
				Rctxt: p.Rctxt,
				Z:     p.Z,
			},
		},
	}

	if r := cd.Value.Revocation; r != nil {
		out.Value.Revocation = &anoncreds.CredDefValueRevocation{
			G:      r.G,
			GDash:  r.GDash,
			H:      r.H,
			H0:     r.H0,
			H1:     r.H1,
			H2:     r.H2,
			HTilde: r.HTilde,
			HCap:   r.HCap,
			U:      r.U,
			Pk:     r.Pk,
			Y:      r.Y,
		}
	}

	return out, nil
}

func toLedgerRevRegDef(rd *anoncreds.RevRegDef) (*ledger.RevRegDef, error) {
	if rd == nil {
		return nil, errors.New("revocation registry definition is required")
	}

	if rd.Value.MaxCredNum < 0 {
		return nil, errors.Errorf("invalid max credential count %d", rd.Value.MaxCredNum)
	}

	return &ledger.RevRegDef{
		IssuerID:  rd.IssuerID,
		Type:      rd.Type,
		CredDefID: rd.CredDefID,
		Tag:       rd.Tag,
		Value: ledger.RevRegDefValue{
			PublicKeys:    copyMap(rd.Value.PublicKeys),
			MaxCredNum:    rd.Value.MaxCredNum,
			TailsLocation: rd.Value.TailsLocation,
			TailsHash:     rd.Value.TailsHash,
		},
	}, nil
}

func revRegDefFromLedger(rd *ledger.RevRegDef) (*anoncreds.RevRegDef, error) {
	if rd == nil {
		return nil, errors.New("ledger revocation registry definition is missing")
	}

	if rd.Value.MaxCredNum < 0 {
		return nil, errors.Errorf("invalid max credential count %d", rd.Value.MaxCredNum)
	}

	return &anoncreds.RevRegDef{
		IssuerID:  rd.IssuerID,
		Type:      rd.Type,
		CredDefID: rd.CredDefID,
		Tag:       rd.Tag,
		Value: anoncreds.RevRegDefValue{
			PublicKeys:    copyMap(rd.Value.PublicKeys),
			MaxCredNum:    rd.Value.MaxCredNum,
			TailsLocation: rd.Value.TailsLocation,
			TailsHash:     rd.Value.TailsHash,
		},
	}, nil
}

func toLedgerRevList(rl *anoncreds.RevList) (*ledger.RevList, error) {
	if rl == nil {
		return nil, errors.New("revocation list is required")
	}

	entries, err := copyRevocationEntries(rl.RevocationList)
	if err != nil {
		return nil, err
	}

	return &ledger.RevList{
		IssuerID:           rl.IssuerID,
		RevRegDefID:        rl.RevRegDefID,
		RevocationList:     entries,
		CurrentAccumulator: rl.CurrentAccumulator,
		Timestamp:          copyTimestamp(rl.Timestamp),
	}, nil
}

func revListFromLedger(rl *ledger.RevList) (*anoncreds.RevList, error) {
	if rl == nil {
		return nil, errors.New("ledger revocation list is missing")
	}

	entries, err := copyRevocationEntries(rl.RevocationList)
	if err != nil {
		return nil, err
	}

	return &anoncreds.RevList{
		IssuerID:           rl.IssuerID,
		RevRegDefID:        rl.RevRegDefID,
		RevocationList:     entries,
		CurrentAccumulator: rl.CurrentAccumulator,
		Timestamp:          copyTimestamp(rl.Timestamp),
	}, nil
}

func schemaResultFromLedger(res *ledger.RegisterSchemaResult) (*anoncreds.SchemaResult, error) {
	if res == nil || res.SchemaState == nil {
		return nil, errors.New("ledger returned no schema state")
	}

	st, err := registrationState(res.SchemaState.State)
	if err != nil {
		return nil, err
	}

	out := &anoncreds.SchemaResult{
		JobID: res.JobID,
		SchemaState: anoncreds.SchemaState{
			State:    st,
			SchemaID: res.SchemaState.SchemaID,
			Reason:   res.SchemaState.Reason,
		},
		RegistrationMetadata: copyMetadata(res.RegistrationMetadata),
		SchemaMetadata:       copyMetadata(res.SchemaMetadata),
	}

	if res.SchemaState.Schema != nil {
		out.SchemaState.Schema, err = schemaFromLedger(res.SchemaState.Schema)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

func credDefResultFromLedger(res *ledger.RegisterCredDefResult) (*anoncreds.CredDefResult, error) {
	if res == nil || res.CredentialDefinitionState == nil {
		return nil, errors.New("ledger returned no credential definition state")
	}

	state := res.CredentialDefinitionState
	st, err := registrationState(state.State)
	if err != nil {
		return nil, err
	}

	out := &anoncreds.CredDefResult{
		JobID: res.JobID,
		CredentialDefinitionState: anoncreds.CredDefState{
			State:                  st,
			CredentialDefinitionID: state.CredentialDefinitionID,
			Reason:                 state.Reason,
		},
		RegistrationMetadata:         copyMetadata(res.RegistrationMetadata),
		CredentialDefinitionMetadata: copyMetadata(res.CredentialDefinitionMetadata),
	}

	if state.CredentialDefinition != nil {
		out.CredentialDefinitionState.CredentialDefinition, err = credDefFromLedger(state.CredentialDefinition)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

func revRegDefResultFromLedger(res *ledger.RegisterRevRegDefResult) (*anoncreds.RevRegDefResult, error) {
	if res == nil || res.RevocationRegistryDefinitionState == nil {
		return nil, errors.New("ledger returned no revocation registry definition state")
	}

	state := res.RevocationRegistryDefinitionState
	st, err := registrationState(state.State)
	if err != nil {
		return nil, err
	}

	out := &anoncreds.RevRegDefResult{
		JobID: res.JobID,
		RevocationRegistryDefinitionState: anoncreds.RevRegDefState{
			State:                          st,
			RevocationRegistryDefinitionID: state.RevocationRegistryDefinitionID,
			Reason:                         state.Reason,
		},
		RegistrationMetadata:                 copyMetadata(res.RegistrationMetadata),
		RevocationRegistryDefinitionMetadata: copyMetadata(res.RevocationRegistryDefinitionMetadata),
	}

	if state.RevocationRegistryDefinition != nil {
		out.RevocationRegistryDefinitionState.RevocationRegistryDefinition, err = revRegDefFromLedger(state.RevocationRegistryDefinition)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

func revListResultFromLedger(res *ledger.RegisterRevListResult) (*anoncreds.RevListResult, error) {
	if res == nil || res.RevocationListState == nil {
		return nil, errors.New("ledger returned no revocation list state")
	}

	state := res.RevocationListState
	st, err := registrationState(state.State)
	if err != nil {
		return nil, err
	}

	out := &anoncreds.RevListResult{
		JobID: res.JobID,
		RevocationListState: anoncreds.RevListState{
			State:  st,
			Reason: state.Reason,
		},
		RegistrationMetadata:   copyMetadata(res.RegistrationMetadata),
		RevocationListMetadata: copyMetadata(res.RevocationListMetadata),
	}

	if state.RevocationList != nil {
		out.RevocationListState.RevocationList, err = revListFromLedger(state.RevocationList)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

func getSchemaResultFromLedger(res *ledger.GetSchemaResult) (*anoncreds.GetSchemaResult, error) {
	if res == nil {
		return nil, errors.New("ledger returned no schema")
	}

	s, err := schemaFromLedger(res.Schema)
	if err != nil {
		return nil, err
	}

	return &anoncreds.GetSchemaResult{
		SchemaID:           res.SchemaID,
		Schema:             s,
		ResolutionMetadata: resolutionMetadata(res.ResolutionMetadata),
		SchemaMetadata:     copyMetadata(res.SchemaMetadata),
	}, nil
}

func getCredDefResultFromLedger(res *ledger.GetCredDefResult) (*anoncreds.GetCredDefResult, error) {
	if res == nil {
		return nil, errors.New("ledger returned no credential definition")
	}

	cd, err := credDefFromLedger(res.CredentialDefinition)
	if err != nil {
		return nil, err
	}

	return &anoncreds.GetCredDefResult{
		CredentialDefinitionID:       res.CredentialDefinitionID,
		CredentialDefinition:         cd,
		ResolutionMetadata:           resolutionMetadata(res.ResolutionMetadata),
		CredentialDefinitionMetadata: copyMetadata(res.CredentialDefinitionMetadata),
	}, nil
}

func getRevRegDefResultFromLedger(res *ledger.GetRevRegDefResult) (*anoncreds.GetRevRegDefResult, error) {
	if res == nil {
		return nil, errors.New("ledger returned no revocation registry definition")
	}

	rd, err := revRegDefFromLedger(res.RevocationRegistryDefinition)
	if err != nil {
		return nil, err
	}

	return &anoncreds.GetRevRegDefResult{
		RevocationRegistryID:       res.RevocationRegistryDefinitionID,
		RevocationRegistry:         rd,
		ResolutionMetadata:         resolutionMetadata(res.ResolutionMetadata),
		RevocationRegistryMetadata: copyMetadata(res.RevocationRegistryDefinitionMetadata),
	}, nil
}

func getRevListResultFromLedger(res *ledger.GetRevListResult) (*anoncreds.GetRevListResult, error) {
	if res == nil {
		return nil, errors.New("ledger returned no revocation list")
	}

	rl, err := revListFromLedger(res.RevocationList)
	if err != nil {
		return nil, err
	}

	return &anoncreds.GetRevListResult{
		RevocationList:         rl,
		ResolutionMetadata:     resolutionMetadata(res.ResolutionMetadata),
		RevocationListMetadata: copyMetadata(res.RevocationListMetadata),
	}, nil
}

func registrationState(st string) (string, error) {
	switch st {
	case ledger.StateFinished:
		return anoncreds.StateFinished, nil
	case ledger.StateFailed:
		return anoncreds.StateFailed, nil
	case ledger.StateAction:
		return anoncreds.StateAction, nil
	case ledger.StateWait:
		return anoncreds.StateWait, nil
	}

	return "", errors.Errorf("unknown registration state %q", st)
}

func resolutionMetadata(md ledger.ResolutionMetadata) anoncreds.Metadata {
	if md.Error == "" && md.Message == "" {
		return nil
	}

	out := anoncreds.Metadata{}
	if md.Error != "" {
		out["error"] = md.Error
	}
	if md.Message != "" {
		out["message"] = md.Message
	}

	return out
}

func copyRevocationEntries(in []int) ([]int, error) {
	if in == nil {
		return nil, nil
	}

	out := make([]int, len(in))
	for i, v := range in {
		if v != 0 && v != 1 {
			return nil, errors.Errorf("revocation list entry %d has invalid value %d", i, v)
		}
		out[i] = v
	}

	return out, nil
}

func copyTimestamp(ts *int64) *int64 {
	if ts == nil {
		return nil
	}

	v := *ts
	return &v
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}

	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyStringMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}

	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyMap(in map[string]interface{}) map[string]interface{} {
	if in == nil {
		return nil
	}

	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func copyMetadata(in map[string]interface{}) anoncreds.Metadata {
	if in == nil {
		return nil
	}

	return copyMap(in)
}
