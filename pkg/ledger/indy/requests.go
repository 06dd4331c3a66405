/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package indy

import (
	"github.com/google/uuid"
	"github.com/hyperledger/indy-vdr/wrappers/golang/vdr"

	"github.com/scoir/anoncreds-registry/pkg/ledger"
)

const protocolVersion = 2

// Ledger transaction types.
const (
	typeGetTxn           = "3"
	typeSchema           = "101"
	typeClaimDef         = "102"
	typeGetSchema        = "107"
	typeGetClaimDef      = "108"
	typeRevocRegDef      = "113"
	typeRevocRegEntry    = "114"
	typeGetRevocRegDef   = "115"
	typeGetRevocReg      = "116"
	typeGetRevocRegDelta = "117"

	domainLedger = 1
)

const (
	issuanceByDefault = "ISSUANCE_BY_DEFAULT"
	issuanceOnDemand  = "ISSUANCE_ON_DEMAND"
)

type operation struct {
	Type string `json:"type"`
}

type schemaData struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	AttrNames []string `json:"attr_names,omitempty"`
}

type getSchemaOp struct {
	operation
	Dest string     `json:"dest"`
	Data schemaData `json:"data"`
}

type schemaOp struct {
	operation
	Data schemaData `json:"data"`
}

type getTxnOp struct {
	operation
	LedgerID int `json:"ledgerId"`
	Data     int `json:"data"`
}

type claimDefData struct {
	Primary    *ledger.CredDefPrimary    `json:"primary"`
	Revocation *ledger.CredDefRevocation `json:"revocation,omitempty"`
}

type getClaimDefOp struct {
	operation
	Origin        string `json:"origin"`
	Ref           int    `json:"ref"`
	SignatureType string `json:"signature_type"`
	Tag           string `json:"tag"`
}

type claimDefOp struct {
	operation
	Ref           int          `json:"ref"`
	SignatureType string       `json:"signature_type"`
	Tag           string       `json:"tag"`
	Data          claimDefData `json:"data"`
}

type revocRegDefValue struct {
	IssuanceType  string                 `json:"issuanceType"`
	MaxCredNum    int                    `json:"maxCredNum"`
	PublicKeys    map[string]interface{} `json:"publicKeys"`
	TailsHash     string                 `json:"tailsHash"`
	TailsLocation string                 `json:"tailsLocation"`
}

type revocRegDef struct {
	ID           string           `json:"id"`
	RevocDefType string           `json:"revocDefType"`
	Tag          string           `json:"tag"`
	CredDefID    string           `json:"credDefId"`
	Value        revocRegDefValue `json:"value"`
}

type revocRegDefOp struct {
	operation
	revocRegDef
}

type getRevocRegDefOp struct {
	operation
	ID string `json:"id"`
}

type revocRegEntryValue struct {
	PrevAccum string `json:"prevAccum,omitempty"`
	Accum     string `json:"accum"`
	Issued    []int  `json:"issued,omitempty"`
	Revoked   []int  `json:"revoked,omitempty"`
}

type revocRegEntryOp struct {
	operation
	RevocDefType  string             `json:"revocDefType"`
	RevocRegDefID string             `json:"revocRegDefId"`
	Value         revocRegEntryValue `json:"value"`
}

type getRevocRegOp struct {
	operation
	RevocRegDefID string `json:"revocRegDefId"`
	Timestamp     int64  `json:"timestamp"`
}

type getRevocRegDeltaOp struct {
	operation
	RevocRegDefID string `json:"revocRegDefId"`
	To            int64  `json:"to"`
}

type accumState struct {
	Value struct {
		Accum string `json:"accum"`
	} `json:"value"`
	TxnTime int64 `json:"txnTime"`
	SeqNo   int   `json:"seqNo"`
}

type revocRegDelta struct {
	RevocRegDefID string `json:"revocRegDefId"`
	Value         struct {
		AccumTo *accumState `json:"accum_to"`
		Issued  []int       `json:"issued"`
		Revoked []int       `json:"revoked"`
	} `json:"value"`
}

type revocReg struct {
	RevocRegDefID string `json:"revocRegDefId"`
	Value         struct {
		Accum string `json:"accum"`
	} `json:"value"`
}

type txnReply struct {
	Txn struct {
		Type string `json:"type"`
		Data struct {
			Data schemaData `json:"data"`
		} `json:"data"`
		Metadata struct {
			From string `json:"from"`
		} `json:"metadata"`
	} `json:"txn"`
}

func newRequest(op interface{}, from string) *vdr.Request {
	return &vdr.Request{
		Operation:       op,
		Identifier:      from,
		ProtocolVersion: protocolVersion,
		ReqID:           uuid.New().ID(),
	}
}
