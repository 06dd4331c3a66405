/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledger

// ErrorNotFound is the resolution error code for identifiers unknown to the ledger.
const ErrorNotFound = "notFound"

// Registration states.
const (
	StateFinished = "finished"
	StateFailed   = "failed"
	StateAction   = "action"
	StateWait     = "wait"
)

// ResolutionMetadata is attached to every read response. Error is empty on success.
type ResolutionMetadata struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func (r ResolutionMetadata) Failed() bool {
	return r.Error != ""
}

// Resolution is implemented by every read response.
type Resolution interface {
	Metadata() ResolutionMetadata
	HasPayload() bool
}

type Metadata map[string]interface{}

type GetSchemaResult struct {
	SchemaID           string             `json:"schema_id"`
	Schema             *Schema            `json:"schema,omitempty"`
	ResolutionMetadata ResolutionMetadata `json:"resolution_metadata"`
	SchemaMetadata     Metadata           `json:"schema_metadata,omitempty"`
}

func (r *GetSchemaResult) Metadata() ResolutionMetadata {
	if r == nil {
		return ResolutionMetadata{}
	}

	return r.ResolutionMetadata
}

func (r *GetSchemaResult) HasPayload() bool {
	return r != nil && r.Schema != nil
}

type GetCredDefResult struct {
	CredentialDefinitionID       string             `json:"credential_definition_id"`
	CredentialDefinition         *CredDef           `json:"credential_definition,omitempty"`
	ResolutionMetadata           ResolutionMetadata `json:"resolution_metadata"`
	CredentialDefinitionMetadata Metadata           `json:"credential_definition_metadata,omitempty"`
}

func (r *GetCredDefResult) Metadata() ResolutionMetadata {
	if r == nil {
		return ResolutionMetadata{}
	}

	return r.ResolutionMetadata
}

func (r *GetCredDefResult) HasPayload() bool {
	return r != nil && r.CredentialDefinition != nil
}

type GetRevRegDefResult struct {
	RevocationRegistryDefinitionID       string             `json:"revocation_registry_definition_id"`
	RevocationRegistryDefinition         *RevRegDef         `json:"revocation_registry_definition,omitempty"`
	ResolutionMetadata                   ResolutionMetadata `json:"resolution_metadata"`
	RevocationRegistryDefinitionMetadata Metadata           `json:"revocation_registry_definition_metadata,omitempty"`
}

func (r *GetRevRegDefResult) Metadata() ResolutionMetadata {
	if r == nil {
		return ResolutionMetadata{}
	}

	return r.ResolutionMetadata
}

func (r *GetRevRegDefResult) HasPayload() bool {
	return r != nil && r.RevocationRegistryDefinition != nil
}

type GetRevListResult struct {
	RevocationList         *RevList           `json:"revocation_list,omitempty"`
	ResolutionMetadata     ResolutionMetadata `json:"resolution_metadata"`
	RevocationListMetadata Metadata           `json:"revocation_list_metadata,omitempty"`
}

func (r *GetRevListResult) Metadata() ResolutionMetadata {
	if r == nil {
		return ResolutionMetadata{}
	}

	return r.ResolutionMetadata
}

func (r *GetRevListResult) HasPayload() bool {
	return r != nil && r.RevocationList != nil
}

type SchemaState struct {
	State    string  `json:"state"`
	SchemaID string  `json:"schema_id,omitempty"`
	Schema   *Schema `json:"schema,omitempty"`
	Reason   string  `json:"reason,omitempty"`
}

type RegisterSchemaResult struct {
	JobID                string       `json:"job_id,omitempty"`
	SchemaState          *SchemaState `json:"schema_state"`
	RegistrationMetadata Metadata     `json:"registration_metadata,omitempty"`
	SchemaMetadata       Metadata     `json:"schema_metadata,omitempty"`
}

type CredDefState struct {
	State                  string   `json:"state"`
	CredentialDefinitionID string   `json:"credential_definition_id,omitempty"`
	CredentialDefinition   *CredDef `json:"credential_definition,omitempty"`
	Reason                 string   `json:"reason,omitempty"`
}

type RegisterCredDefResult struct {
	JobID                        string        `json:"job_id,omitempty"`
	CredentialDefinitionState    *CredDefState `json:"credential_definition_state"`
	RegistrationMetadata         Metadata      `json:"registration_metadata,omitempty"`
	CredentialDefinitionMetadata Metadata      `json:"credential_definition_metadata,omitempty"`
}

type RevRegDefState struct {
	State                          string     `json:"state"`
	RevocationRegistryDefinitionID string     `json:"revocation_registry_definition_id,omitempty"`
	RevocationRegistryDefinition   *RevRegDef `json:"revocation_registry_definition,omitempty"`
	Reason                         string     `json:"reason,omitempty"`
}

type RegisterRevRegDefResult struct {
	JobID                                string          `json:"job_id,omitempty"`
	RevocationRegistryDefinitionState    *RevRegDefState `json:"revocation_registry_definition_state"`
	RegistrationMetadata                 Metadata        `json:"registration_metadata,omitempty"`
	RevocationRegistryDefinitionMetadata Metadata        `json:"revocation_registry_definition_metadata,omitempty"`
}

type RevListState struct {
	State          string   `json:"state"`
	RevocationList *RevList `json:"revocation_list,omitempty"`
	Reason         string   `json:"reason,omitempty"`
}

type RegisterRevListResult struct {
	JobID                  string        `json:"job_id,omitempty"`
	RevocationListState    *RevListState `json:"revocation_list_state"`
	RegistrationMetadata   Metadata      `json:"registration_metadata,omitempty"`
	RevocationListMetadata Metadata      `json:"revocation_list_metadata,omitempty"`
}
