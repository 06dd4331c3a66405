/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package indy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/hyperledger/aries-framework-go/pkg/common/log"
	"github.com/hyperledger/indy-vdr/wrappers/golang/vdr"
	"github.com/pkg/errors"

	"github.com/scoir/anoncreds-registry/pkg/anoncreds"
	"github.com/scoir/anoncreds-registry/pkg/ledger"
)

const DefaultMethod = "indy"

const errorInvalidIdentifier = "invalidIdentifier"

// VDRClient is the part of the indy-vdr pool client used to read and write ledger transactions.
type VDRClient interface {
	Submit(request []byte) (*vdr.ReadReply, error)
	SubmitWrite(req *vdr.Request, signer vdr.Signer) (*vdr.WriteReply, error)
	RefreshPool() error
	Close() error
}

var _ ledger.Client = (*Client)(nil)

// Client implements ledger.Client against an Indy ledger, addressing objects with did:indy identifiers.
type Client struct {
	vdr    VDRClient
	ids    naming
	now    func() time.Time
	logger *log.Log
}

type Option func(*Client)

func WithVDRClient(cl VDRClient) Option {
	return func(r *Client) {
		r.vdr = cl
	}
}

func WithMethod(method string) Option {
	return func(r *Client) {
		r.ids.method = method
	}
}

// WithNamespace sets the ledger namespace, e.g. sovrin:staging, that issuer DIDs must carry.
func WithNamespace(ns string) Option {
	return func(r *Client) {
		r.ids.namespace = ns
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Client) {
		r.now = now
	}
}

func New(opts ...Option) (*Client, error) {
	c := &Client{
		ids:    naming{method: DefaultMethod},
		now:    time.Now,
		logger: log.New("anoncreds/ledger/indy"),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.vdr == nil {
		return nil, errors.New("an Indy ledger client must be set with an option to New")
	}

	if c.ids.method == "" {
		return nil, errors.New("DID method must not be empty")
	}

	err := c.vdr.RefreshPool()
	if err != nil {
		return nil, errors.Wrap(err, "refreshing indy pool failed")
	}

	return c, nil
}

// Open connects to the pool described by the genesis transactions.
func Open(genesis io.ReadCloser, opts ...Option) (*Client, error) {
	cl, err := vdr.New(genesis)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create VDR client")
	}

	return New(append([]Option{WithVDRClient(cl)}, opts...)...)
}

func (r *Client) Close() error {
	return r.vdr.Close()
}

func (r *Client) GetSchema(ctx context.Context, schemaID string) (*ledger.GetSchemaResult, error) {
	nym, name, version, err := r.ids.parseSchemaID(schemaID)
	if err != nil {
		return &ledger.GetSchemaResult{SchemaID: schemaID, ResolutionMetadata: invalidIdentifier(err)}, nil
	}

	s, seqNo, err := r.fetchSchema(ctx, nym, name, version)
	if err != nil {
		return nil, err
	}

	if s == nil {
		return &ledger.GetSchemaResult{
			SchemaID:           schemaID,
			ResolutionMetadata: notFound("schema %s not found", schemaID),
		}, nil
	}

	return &ledger.GetSchemaResult{
		SchemaID:       schemaID,
		Schema:         s,
		SchemaMetadata: ledger.Metadata{"seqNo": seqNo, "legacySchemaId": legacySchemaID(nym, name, version)},
	}, nil
}

func (r *Client) GetCredDef(ctx context.Context, credDefID string) (*ledger.GetCredDefResult, error) {
	nym, seqNo, tag, err := r.ids.parseCredDefID(credDefID)
	if err != nil {
		return &ledger.GetCredDefResult{CredentialDefinitionID: credDefID, ResolutionMetadata: invalidIdentifier(err)}, nil
	}

	rply, err := r.submit(ctx, &getClaimDefOp{
		operation:     operation{Type: typeGetClaimDef},
		Origin:        nym,
		Ref:           seqNo,
		SignatureType: anoncreds.CLSignatureType,
		Tag:           tag,
	})
	if err != nil {
		return nil, err
	}

	data := claimDefData{}
	ok, err := decodeData(rply, &data)
	if err != nil {
		return nil, err
	}

	if !ok || data.Primary == nil {
		return &ledger.GetCredDefResult{
			CredentialDefinitionID: credDefID,
			ResolutionMetadata:     notFound("credential definition %s not found", credDefID),
		}, nil
	}

	schemaID, err := r.schemaIDBySeqNo(ctx, seqNo)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to resolve schema of credential definition %s", credDefID)
	}

	return &ledger.GetCredDefResult{
		CredentialDefinitionID: credDefID,
		CredentialDefinition: &ledger.CredDef{
			SchemaID: schemaID,
			IssuerID: r.ids.issuer(nym),
			Type:     anoncreds.CLSignatureType,
			Tag:      tag,
			Value:    ledger.CredDefValue{Primary: data.Primary, Revocation: data.Revocation},
		},
		CredentialDefinitionMetadata: ledger.Metadata{"seqNo": int(rply.SeqNo)},
	}, nil
}

func (r *Client) GetRevRegDef(ctx context.Context, revRegDefID string) (*ledger.GetRevRegDefResult, error) {
	nym, seqNo, credDefTag, tag, err := r.ids.parseRevRegDefID(revRegDefID)
	if err != nil {
		return &ledger.GetRevRegDefResult{
			RevocationRegistryDefinitionID: revRegDefID,
			ResolutionMetadata:             invalidIdentifier(err),
		}, nil
	}

	def, err := r.fetchRevRegDef(ctx, legacyRevRegDefID(nym, seqNo, credDefTag, tag))
	if err != nil {
		return nil, err
	}

	if def == nil {
		return &ledger.GetRevRegDefResult{
			RevocationRegistryDefinitionID: revRegDefID,
			ResolutionMetadata:             notFound("revocation registry definition %s not found", revRegDefID),
		}, nil
	}

	return &ledger.GetRevRegDefResult{
		RevocationRegistryDefinitionID: revRegDefID,
		RevocationRegistryDefinition: &ledger.RevRegDef{
			IssuerID:  r.ids.issuer(nym),
			Type:      def.RevocDefType,
			CredDefID: r.ids.credDefID(nym, seqNo, credDefTag),
			Tag:       tag,
			Value: ledger.RevRegDefValue{
				PublicKeys:    def.Value.PublicKeys,
				MaxCredNum:    def.Value.MaxCredNum,
				TailsLocation: def.Value.TailsLocation,
				TailsHash:     def.Value.TailsHash,
			},
		},
		RevocationRegistryDefinitionMetadata: ledger.Metadata{"issuanceType": def.Value.IssuanceType},
	}, nil
}

// GetRevList rebuilds the full revocation list as of timestamp from the registry's delta.
func (r *Client) GetRevList(ctx context.Context, revRegDefID string, timestamp int64) (*ledger.GetRevListResult, error) {
	nym, seqNo, credDefTag, tag, err := r.ids.parseRevRegDefID(revRegDefID)
	if err != nil {
		return &ledger.GetRevListResult{ResolutionMetadata: invalidIdentifier(err)}, nil
	}

	legacyID := legacyRevRegDefID(nym, seqNo, credDefTag, tag)
	def, err := r.fetchRevRegDef(ctx, legacyID)
	if err != nil {
		return nil, err
	}

	if def == nil {
		return &ledger.GetRevListResult{
			ResolutionMetadata: notFound("revocation registry definition %s not found", revRegDefID),
		}, nil
	}

	rply, err := r.submit(ctx, &getRevocRegDeltaOp{
		operation:     operation{Type: typeGetRevocRegDelta},
		RevocRegDefID: legacyID,
		To:            timestamp,
	})
	if err != nil {
		return nil, err
	}

	delta := revocRegDelta{}
	ok, err := decodeData(rply, &delta)
	if err != nil {
		return nil, err
	}

	if !ok || delta.Value.AccumTo == nil {
		return &ledger.GetRevListResult{
			ResolutionMetadata: notFound("no revocation list for %s at %d", revRegDefID, timestamp),
		}, nil
	}

	list, err := buildRevocationList(def.Value.MaxCredNum, def.Value.IssuanceType, delta.Value.Issued, delta.Value.Revoked)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid revocation delta for %s", revRegDefID)
	}

	ts := delta.Value.AccumTo.TxnTime
	return &ledger.GetRevListResult{
		RevocationList: &ledger.RevList{
			IssuerID:           r.ids.issuer(nym),
			RevRegDefID:        revRegDefID,
			RevocationList:     list,
			CurrentAccumulator: delta.Value.AccumTo.Value.Accum,
			Timestamp:          &ts,
		},
	}, nil
}

func (r *Client) RegisterSchema(ctx context.Context, s *ledger.Schema, issuerKeyDer []byte) (*ledger.RegisterSchemaResult, error) {
	if s == nil {
		return nil, errors.New("schema is required")
	}

	nym, err := r.ids.nym(s.IssuerID)
	if err != nil {
		return nil, err
	}

	signer, err := signerFromDer(issuerKeyDer)
	if err != nil {
		return nil, err
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := r.vdr.SubmitWrite(newRequest(&schemaOp{
		operation: operation{Type: typeSchema},
		Data:      schemaData{Name: s.Name, Version: s.Version, AttrNames: s.AttrNames},
	}, nym), signer)
	if err != nil {
		r.logger.Warnf("schema %s:%s rejected by ledger: %v", s.Name, s.Version, err)
		return &ledger.RegisterSchemaResult{
			SchemaState: &ledger.SchemaState{State: ledger.StateFailed, Reason: err.Error()},
		}, nil
	}

	out := *s
	out.AttrNames = append([]string(nil), s.AttrNames...)

	return &ledger.RegisterSchemaResult{
		SchemaState: &ledger.SchemaState{
			State:    ledger.StateFinished,
			SchemaID: r.ids.schemaID(nym, s.Name, s.Version),
			Schema:   &out,
		},
		RegistrationMetadata: writeMetadata(resp),
	}, nil
}

func (r *Client) RegisterCredDef(ctx context.Context, cd *ledger.CredDef, issuerKeyDer []byte) (*ledger.RegisterCredDefResult, error) {
	if cd == nil || cd.Value.Primary == nil {
		return nil, errors.New("credential definition with a primary key is required")
	}

	nym, err := r.ids.nym(cd.IssuerID)
	if err != nil {
		return nil, err
	}

	schemaNym, name, version, err := r.ids.parseSchemaID(cd.SchemaID)
	if err != nil {
		return nil, err
	}

	signer, err := signerFromDer(issuerKeyDer)
	if err != nil {
		return nil, err
	}

	_, seqNo, err := r.fetchSchema(ctx, schemaNym, name, version)
	if err != nil {
		return nil, err
	}

	if seqNo == 0 {
		return &ledger.RegisterCredDefResult{
			CredentialDefinitionState: &ledger.CredDefState{
				State:  ledger.StateFailed,
				Reason: fmt.Sprintf("schema %s not found on ledger", cd.SchemaID),
			},
		}, nil
	}

	sigType := cd.Type
	if sigType == "" {
		sigType = anoncreds.CLSignatureType
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := r.vdr.SubmitWrite(newRequest(&claimDefOp{
		operation:     operation{Type: typeClaimDef},
		Ref:           seqNo,
		SignatureType: sigType,
		Tag:           cd.Tag,
		Data:          claimDefData{Primary: cd.Value.Primary, Revocation: cd.Value.Revocation},
	}, nym), signer)
	if err != nil {
		r.logger.Warnf("credential definition %s on schema %d rejected by ledger: %v", cd.Tag, seqNo, err)
		return &ledger.RegisterCredDefResult{
			CredentialDefinitionState: &ledger.CredDefState{State: ledger.StateFailed, Reason: err.Error()},
		}, nil
	}

	out := *cd
	out.Type = sigType

	return &ledger.RegisterCredDefResult{
		CredentialDefinitionState: &ledger.CredDefState{
			State:                  ledger.StateFinished,
			CredentialDefinitionID: r.ids.credDefID(nym, seqNo, cd.Tag),
			CredentialDefinition:   &out,
		},
		RegistrationMetadata:         writeMetadata(resp),
		CredentialDefinitionMetadata: ledger.Metadata{"schemaSeqNo": seqNo},
	}, nil
}

func (r *Client) RegisterRevRegDef(ctx context.Context, rd *ledger.RevRegDef, issuerKeyDer []byte) (*ledger.RegisterRevRegDefResult, error) {
	if rd == nil {
		return nil, errors.New("revocation registry definition is required")
	}

	nym, err := r.ids.nym(rd.IssuerID)
	if err != nil {
		return nil, err
	}

	credDefNym, seqNo, credDefTag, err := r.ids.parseCredDefID(rd.CredDefID)
	if err != nil {
		return nil, err
	}

	if credDefNym != nym {
		return nil, errors.Errorf("credential definition %s is not owned by %s", rd.CredDefID, rd.IssuerID)
	}

	signer, err := signerFromDer(issuerKeyDer)
	if err != nil {
		return nil, err
	}

	defType := rd.Type
	if defType == "" {
		defType = anoncreds.CLAccumType
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := r.vdr.SubmitWrite(newRequest(&revocRegDefOp{
		operation: operation{Type: typeRevocRegDef},
		revocRegDef: revocRegDef{
			ID:           legacyRevRegDefID(nym, seqNo, credDefTag, rd.Tag),
			RevocDefType: defType,
			Tag:          rd.Tag,
			CredDefID:    legacyCredDefID(nym, seqNo, credDefTag),
			Value: revocRegDefValue{
				IssuanceType:  issuanceByDefault,
				MaxCredNum:    rd.Value.MaxCredNum,
				PublicKeys:    rd.Value.PublicKeys,
				TailsHash:     rd.Value.TailsHash,
				TailsLocation: rd.Value.TailsLocation,
			},
		},
	}, nym), signer)
	if err != nil {
		r.logger.Warnf("revocation registry definition %s rejected by ledger: %v", rd.Tag, err)
		return &ledger.RegisterRevRegDefResult{
			RevocationRegistryDefinitionState: &ledger.RevRegDefState{State: ledger.StateFailed, Reason: err.Error()},
		}, nil
	}

	out := *rd
	out.Type = defType

	return &ledger.RegisterRevRegDefResult{
		RevocationRegistryDefinitionState: &ledger.RevRegDefState{
			State:                          ledger.StateFinished,
			RevocationRegistryDefinitionID: r.ids.revRegDefID(nym, seqNo, credDefTag, rd.Tag),
			RevocationRegistryDefinition:   &out,
		},
		RegistrationMetadata:                 writeMetadata(resp),
		RevocationRegistryDefinitionMetadata: ledger.Metadata{"issuanceType": issuanceByDefault},
	}, nil
}

func (r *Client) RegisterRevList(ctx context.Context, rl *ledger.RevList, issuerKeyDer []byte) (*ledger.RegisterRevListResult, error) {
	if rl == nil {
		return nil, errors.New("revocation list is required")
	}

	return r.writeRevList(ctx, rl, revocRegEntryValue{
		Accum:   rl.CurrentAccumulator,
		Revoked: revokedIndices(rl.RevocationList),
	}, issuerKeyDer)
}

// UpdateRevList writes the accumulator transition from prevList to currList. Indices
// revoked in prevList and active in currList are sent as issued. revoked holds list
// positions, which the ledger numbers from 1.
func (r *Client) UpdateRevList(ctx context.Context, prevList, currList *ledger.RevList, revoked []int,
	issuerKeyDer []byte) (*ledger.RegisterRevListResult, error) {
	if prevList == nil || currList == nil {
		return nil, errors.New("previous and current revocation lists are required")
	}

	if prevList.RevRegDefID != currList.RevRegDefID {
		return nil, errors.Errorf("revocation lists belong to different registries: %s, %s",
			prevList.RevRegDefID, currList.RevRegDefID)
	}

	var issued []int
	for i, v := range prevList.RevocationList {
		if v == 1 && i < len(currList.RevocationList) && currList.RevocationList[i] == 0 {
			issued = append(issued, i+1)
		}
	}

	ids, err := revocationIDs(revoked, len(currList.RevocationList))
	if err != nil {
		return nil, err
	}

	return r.writeRevList(ctx, currList, revocRegEntryValue{
		PrevAccum: prevList.CurrentAccumulator,
		Accum:     currList.CurrentAccumulator,
		Issued:    issued,
		Revoked:   ids,
	}, issuerKeyDer)
}

func (r *Client) writeRevList(ctx context.Context, rl *ledger.RevList, value revocRegEntryValue,
	issuerKeyDer []byte) (*ledger.RegisterRevListResult, error) {
	regNym, seqNo, credDefTag, tag, err := r.ids.parseRevRegDefID(rl.RevRegDefID)
	if err != nil {
		return nil, err
	}

	nym, err := r.ids.nym(rl.IssuerID)
	if err != nil {
		return nil, err
	}

	if nym != regNym {
		return nil, errors.Errorf("revocation registry %s is not owned by %s", rl.RevRegDefID, rl.IssuerID)
	}

	signer, err := signerFromDer(issuerKeyDer)
	if err != nil {
		return nil, err
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	legacyID := legacyRevRegDefID(nym, seqNo, credDefTag, tag)
	resp, err := r.vdr.SubmitWrite(newRequest(&revocRegEntryOp{
		operation:     operation{Type: typeRevocRegEntry},
		RevocDefType:  anoncreds.CLAccumType,
		RevocRegDefID: legacyID,
		Value:         value,
	}, nym), signer)
	if err != nil {
		r.logger.Warnf("revocation registry entry for %s rejected by ledger: %v", rl.RevRegDefID, err)
		return &ledger.RegisterRevListResult{
			RevocationListState: &ledger.RevListState{State: ledger.StateFailed, Reason: err.Error()},
		}, nil
	}

	if resp == nil {
		return nil, errors.Errorf("empty write reply for revocation registry entry %s", rl.RevRegDefID)
	}

	ts := int64(resp.TxnMetadata.TxnTime)
	if ts == 0 {
		ts = r.now().Unix()
	}

	rply, err := r.submit(ctx, &getRevocRegOp{
		operation:     operation{Type: typeGetRevocReg},
		RevocRegDefID: legacyID,
		Timestamp:     ts,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to confirm revocation registry entry for %s", rl.RevRegDefID)
	}

	entry := revocReg{}
	ok, err := decodeData(rply, &entry)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, errors.Errorf("revocation registry entry for %s not visible at %d", rl.RevRegDefID, ts)
	}

	if entry.Value.Accum != rl.CurrentAccumulator {
		return &ledger.RegisterRevListResult{
			RevocationListState: &ledger.RevListState{
				State:  ledger.StateFailed,
				Reason: fmt.Sprintf("ledger accumulator for %s does not match the written value", rl.RevRegDefID),
			},
		}, nil
	}

	out := *rl
	out.RevocationList = append([]int(nil), rl.RevocationList...)
	out.Timestamp = &ts

	return &ledger.RegisterRevListResult{
		RevocationListState: &ledger.RevListState{
			State:          ledger.StateFinished,
			RevocationList: &out,
		},
		RegistrationMetadata: writeMetadata(resp),
	}, nil
}

func (r *Client) submit(ctx context.Context, op interface{}) (*vdr.ReadReply, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req, err := json.Marshal(newRequest(op, ""))
	if err != nil {
		return nil, errors.Wrap(err, "unable to marshal ledger request")
	}

	rply, err := r.vdr.Submit(req)
	if err != nil {
		return nil, errors.Wrap(err, "ledger read failed")
	}

	return rply, nil
}

func (r *Client) fetchSchema(ctx context.Context, nym, name, version string) (*ledger.Schema, int, error) {
	rply, err := r.submit(ctx, &getSchemaOp{
		operation: operation{Type: typeGetSchema},
		Dest:      nym,
		Data:      schemaData{Name: name, Version: version},
	})
	if err != nil {
		return nil, 0, err
	}

	data := schemaData{}
	ok, err := decodeData(rply, &data)
	if err != nil {
		return nil, 0, err
	}

	if !ok || rply.SeqNo == 0 || len(data.AttrNames) == 0 {
		return nil, 0, nil
	}

	return &ledger.Schema{
		Name:      data.Name,
		IssuerID:  r.ids.issuer(nym),
		AttrNames: data.AttrNames,
		Version:   data.Version,
	}, int(rply.SeqNo), nil
}

func (r *Client) schemaIDBySeqNo(ctx context.Context, seqNo int) (string, error) {
	rply, err := r.submit(ctx, &getTxnOp{
		operation: operation{Type: typeGetTxn},
		LedgerID:  domainLedger,
		Data:      seqNo,
	})
	if err != nil {
		return "", err
	}

	txn := txnReply{}
	ok, err := decodeData(rply, &txn)
	if err != nil {
		return "", err
	}

	if !ok || txn.Txn.Type != typeSchema {
		return "", errors.Errorf("transaction %d is not a schema", seqNo)
	}

	data := txn.Txn.Data.Data
	return r.ids.schemaID(txn.Txn.Metadata.From, data.Name, data.Version), nil
}

func (r *Client) fetchRevRegDef(ctx context.Context, legacyID string) (*revocRegDef, error) {
	rply, err := r.submit(ctx, &getRevocRegDefOp{
		operation: operation{Type: typeGetRevocRegDef},
		ID:        legacyID,
	})
	if err != nil {
		return nil, err
	}

	def := &revocRegDef{}
	ok, err := decodeData(rply, def)
	if err != nil {
		return nil, err
	}

	if !ok || def.ID == "" {
		return nil, nil
	}

	return def, nil
}

// decodeData unmarshals the reply payload into out. Replies carry data either as
// an embedded JSON document or as a JSON encoded string.
func decodeData(rply *vdr.ReadReply, out interface{}) (bool, error) {
	if rply == nil {
		return false, nil
	}

	raw, err := json.Marshal(rply.Data)
	if err != nil {
		return false, errors.Wrap(err, "invalid reply data from ledger")
	}

	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err = json.Unmarshal(raw, &s); err != nil {
			return false, errors.Wrap(err, "invalid reply data from ledger")
		}
		raw = []byte(s)
	}

	if len(raw) == 0 || string(raw) == "null" {
		return false, nil
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return false, errors.Wrap(err, "invalid reply data from ledger")
	}

	return true, nil
}

// buildRevocationList expands a ledger delta into a list with one entry per
// credential. Ledger revocation ids run from 1 to maxCredNum.
func buildRevocationList(maxCredNum int, issuanceType string, issued, revoked []int) ([]int, error) {
	list := make([]int, maxCredNum)
	if issuanceType == issuanceOnDemand {
		for i := range list {
			list[i] = 1
		}
	}

	for _, id := range issued {
		if id < 1 || id > maxCredNum {
			return nil, errors.Errorf("issued index %d out of range", id)
		}
		list[id-1] = 0
	}

	for _, id := range revoked {
		if id < 1 || id > maxCredNum {
			return nil, errors.Errorf("revoked index %d out of range", id)
		}
		list[id-1] = 1
	}

	return list, nil
}

func revokedIndices(list []int) []int {
	var out []int
	for i, v := range list {
		if v == 1 {
			out = append(out, i+1)
		}
	}

	return out
}

func revocationIDs(positions []int, size int) ([]int, error) {
	out := make([]int, 0, len(positions))
	for _, p := range positions {
		if p < 0 || p >= size {
			return nil, errors.Errorf("revoked index %d out of range", p)
		}
		out = append(out, p+1)
	}

	return out, nil
}

func writeMetadata(resp *vdr.WriteReply) ledger.Metadata {
	if resp == nil || resp.TxnMetadata.TxnID == "" {
		return nil
	}

	return ledger.Metadata{
		"txnId":   resp.TxnMetadata.TxnID,
		"seqNo":   resp.TxnMetadata.SeqNo,
		"txnTime": int64(resp.TxnMetadata.TxnTime),
	}
}

func notFound(format string, args ...interface{}) ledger.ResolutionMetadata {
	return ledger.ResolutionMetadata{Error: ledger.ErrorNotFound, Message: fmt.Sprintf(format, args...)}
}

func invalidIdentifier(err error) ledger.ResolutionMetadata {
	return ledger.ResolutionMetadata{Error: errorInvalidIdentifier, Message: err.Error()}
}
