/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package anoncreds

// Registration states reported in the *State objects of register results.
const (
	StateFinished = "finished"
	StateFailed   = "failed"
	StateAction   = "action"
	StateWait     = "wait"
)

const (
	CLSignatureType = "CL"
	CLAccumType     = "CL_ACCUM"
)

type Schema struct {
	IssuerID  string   `json:"issuerId"`
	AttrNames []string `json:"attrNames"`
	Name      string   `json:"name"`
	Version   string   `json:"version"`
}

type CredDefValuePrimary struct {
	N     string            `json:"n"`
	S     string            `json:"s"`
	R     map[string]string `json:"r"`
	Rctxt string            `json:"rctxt"`
	Z     string            `json:"z"`
}

type CredDefValueRevocation struct {
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
	Primary    CredDefValuePrimary     `json:"primary"`
	Revocation *CredDefValueRevocation `json:"revocation,omitempty"`
}

type CredDef struct {
	IssuerID string       `json:"issuerId"`
	SchemaID string       `json:"schemaId"`
	Type     string       `json:"type"`
	Tag      string       `json:"tag"`
	Value    CredDefValue `json:"value"`
}

type RevRegDefValue struct {
	PublicKeys    map[string]interface{} `json:"publicKeys"`
	MaxCredNum    int                    `json:"maxCredNum"`
	TailsLocation string                 `json:"tailsLocation"`
	TailsHash     string                 `json:"tailsHash"`
}

type RevRegDef struct {
	IssuerID  string         `json:"issuerId"`
	Type      string         `json:"revocDefType"`
	CredDefID string         `json:"credDefId"`
	Tag       string         `json:"tag"`
	Value     RevRegDefValue `json:"value"`
}

// RevList is one timestamped snapshot of a revocation registry. RevocationList
// holds one entry per credential index, 1 meaning revoked.
type RevList struct {
	IssuerID           string `json:"issuerId"`
	RevRegDefID        string `json:"revRegDefId"`
	RevocationList     []int  `json:"revocationList"`
	CurrentAccumulator string `json:"currentAccumulator"`
	Timestamp          *int64 `json:"timestamp,omitempty"`
}

// Revoked returns the indices marked revoked in the list.
func (r *RevList) Revoked() []int {
	var out []int
	for i, v := range r.RevocationList {
		if v == 1 {
			out = append(out, i)
		}
	}

	return out
}

type SchemaInfo struct {
	IssuerID string `json:"issuer_id"`
	Name     string `json:"name"`
	Version  string `json:"version"`
}
