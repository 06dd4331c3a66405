/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package anoncreds

type Metadata map[string]interface{}

type SchemaState struct {
	State    string  `json:"state"`
	SchemaID string  `json:"schema_id,omitempty"`
	Schema   *Schema `json:"schema,omitempty"`
	Reason   string  `json:"reason,omitempty"`
}

type SchemaResult struct {
	JobID                string      `json:"job_id,omitempty"`
	SchemaState          SchemaState `json:"schema_state"`
	RegistrationMetadata Metadata    `json:"registration_metadata,omitempty"`
	SchemaMetadata       Metadata    `json:"schema_metadata,omitempty"`
}

type GetSchemaResult struct {
	SchemaID           string   `json:"schema_id"`
	Schema             *Schema  `json:"schema"`
	ResolutionMetadata Metadata `json:"resolution_metadata,omitempty"`
	SchemaMetadata     Metadata `json:"schema_metadata,omitempty"`
}

type CredDefState struct {
	State                  string   `json:"state"`
	CredentialDefinitionID string   `json:"credential_definition_id,omitempty"`
	CredentialDefinition   *CredDef `json:"credential_definition,omitempty"`
	Reason                 string   `json:"reason,omitempty"`
}

type CredDefResult struct {
	JobID                        string       `json:"job_id,omitempty"`
	CredentialDefinitionState    CredDefState `json:"credential_definition_state"`
	RegistrationMetadata         Metadata     `json:"registration_metadata,omitempty"`
	CredentialDefinitionMetadata Metadata     `json:"credential_definition_metadata,omitempty"`
}

type GetCredDefResult struct {
	CredentialDefinitionID       string   `json:"credential_definition_id"`
	CredentialDefinition         *CredDef `json:"credential_definition"`
	ResolutionMetadata           Metadata `json:"resolution_metadata,omitempty"`
	CredentialDefinitionMetadata Metadata `json:"credential_definition_metadata,omitempty"`
}

type RevRegDefState struct {
	State                          string     `json:"state"`
	RevocationRegistryDefinitionID string     `json:"revocation_registry_definition_id,omitempty"`
	RevocationRegistryDefinition   *RevRegDef `json:"revocation_registry_definition,omitempty"`
	Reason                         string     `json:"reason,omitempty"`
}

type RevRegDefResult struct {
	JobID                                string         `json:"job_id,omitempty"`
	RevocationRegistryDefinitionState    RevRegDefState `json:"revocation_registry_definition_state"`
	RegistrationMetadata                 Metadata       `json:"registration_metadata,omitempty"`
	RevocationRegistryDefinitionMetadata Metadata       `json:"revocation_registry_definition_metadata,omitempty"`
}

type GetRevRegDefResult struct {
	RevocationRegistryID       string     `json:"revocation_registry_id"`
	RevocationRegistry         *RevRegDef `json:"revocation_registry"`
	ResolutionMetadata         Metadata   `json:"resolution_metadata,omitempty"`
	RevocationRegistryMetadata Metadata   `json:"revocation_registry_metadata,omitempty"`
}

type RevListState struct {
	State          string   `json:"state"`
	RevocationList *RevList `json:"revocation_list,omitempty"`
	Reason         string   `json:"reason,omitempty"`
}

type RevListResult struct {
	JobID                  string       `json:"job_id,omitempty"`
	RevocationListState    RevListState `json:"revocation_list_state"`
	RegistrationMetadata   Metadata     `json:"registration_metadata,omitempty"`
	RevocationListMetadata Metadata     `json:"revocation_list_metadata,omitempty"`
}

type GetRevListResult struct {
	RevocationList         *RevList `json:"revocation_list"`
	ResolutionMetadata     Metadata `json:"resolution_metadata,omitempty"`
	RevocationListMetadata Metadata `json:"revocation_list_metadata,omitempty"`
}
