/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledger

// Schema and the other types in this file are the ledger's wire shapes. They
// mirror the agent's AnonCreds model but evolve independently of it.
type Schema struct {
	Name      string   `json:"name"`
	IssuerID  string   `json:"issuer_id"`
	AttrNames []string `json:"attr_names"`
	Version   string   `json:"version"`
}

type CredDefPrimary struct {
	N     string            `json:"n"`
	S     string            `json:"s"`
	R     map[string]string `json:"r"`
	Rctxt string            `json:"rctxt"`
	Z     string            `json:"z"`
}

type CredDefRevocation struct {
	G      string `json:"g"`
	GDash  string `json:"g_dash"`
	H      string `json:"h"`
	H0     string `json:"h0"`
	H1     string `json:"h1"`
	H2     string `json:"h2"`
	HTilde string `json:"htilde"`
	HCap   string `json:"h_cap"`
	U      string `json:"u"`
	Pk     string `json:"pk"`
	Y      string `json:"y"`
}

type CredDefValue struct {
	Primary    *CredDefPrimary    `json:"primary"`
	Revocation *CredDefRevocation `json:"revocation,omitempty"`
}

type CredDef struct {
	SchemaID string       `json:"schema_id"`
	IssuerID string       `json:"issuer_id"`
	Type     string       `json:"type"`
	Tag      string       `json:"tag"`
	Value    CredDefValue `json:"value"`
}

type RevRegDefValue struct {
	PublicKeys    map[string]interface{} `json:"public_keys"`
	MaxCredNum    int                    `json:"max_cred_num"`
	TailsLocation string                 `json:"tails_location"`
	TailsHash     string                 `json:"tails_hash"`
}

type RevRegDef struct {
	IssuerID  string         `json:"issuer_id"`
	Type      string         `json:"revoc_def_type"`
	CredDefID string         `json:"cred_def_id"`
	Tag       string         `json:"tag"`
	Value     RevRegDefValue `json:"value"`
}

type RevList struct {
	IssuerID           string `json:"issuer_id"`
	RevRegDefID        string `json:"rev_reg_def_id"`
	RevocationList     []int  `json:"revocation_list"`
	CurrentAccumulator string `json:"current_accumulator"`
	Timestamp          *int64 `json:"timestamp,omitempty"`
}
