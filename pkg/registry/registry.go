/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package registry

import (
	"context"
	"fmt"
	"regexp"

	"github.com/hyperledger/aries-framework-go/pkg/common/log"
	"github.com/pkg/errors"

	"github.com/scoir/anoncreds-registry/pkg/anoncreds"
	"github.com/scoir/anoncreds-registry/pkg/events"
	"github.com/scoir/anoncreds-registry/pkg/ledger"
	"github.com/scoir/anoncreds-registry/pkg/profile"
)

const DefaultMethod = "indy"

// Registry adapts a ledger.Client to the agent's AnonCreds resolver and registrar roles.
type Registry struct {
	client ledger.Client
	method string
	ids    *regexp.Regexp
	logger *log.Log
}

type Option func(*Registry)

// WithMethod sets the DID method whose identifiers this registry accepts.
func WithMethod(method string) Option {
	return func(r *Registry) {
		r.method = method
	}
}

func WithLogger(l *log.Log) Option {
	return func(r *Registry) {
		r.logger = l
	}
}

func New(client ledger.Client, opts ...Option) (*Registry, error) {
	if client == nil {
		return nil, errors.New("ledger client is required")
	}

	r := &Registry{
		client: client,
		method: DefaultMethod,
		logger: log.New("anoncreds/registry"),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.method == "" {
		return nil, errors.New("DID method must not be empty")
	}

	r.ids = regexp.MustCompile("^did:" + regexp.QuoteMeta(r.method) + ":.*$")
	return r, nil
}

func (r *Registry) SupportedIdentifiers() *regexp.Regexp {
	return r.ids
}

func (r *Registry) GetSchema(ctx context.Context, _ profile.Profile, schemaID string) (*anoncreds.GetSchemaResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, anoncreds.WrapResolutionError(err, "schema lookup cancelled")
	}

	res, err := r.client.GetSchema(ctx, schemaID)
	if err != nil {
		return nil, anoncreds.WrapResolutionError(err, fmt.Sprintf("unable to resolve schema %s", schemaID))
	}

	if err = validateResponse(res, fieldSchema); err != nil {
		r.logger.Debugf("schema %s not resolved: %v", schemaID, err)
		return nil, err
	}

	out, err := getSchemaResultFromLedger(res)
	if err != nil {
		return nil, anoncreds.WrapResolutionError(err, "invalid schema from ledger")
	}

	return out, nil
}

func (r *Registry) GetCredentialDefinition(ctx context.Context, _ profile.Profile, credDefID string) (*anoncreds.GetCredDefResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, anoncreds.WrapResolutionError(err, "credential definition lookup cancelled")
	}

	res, err := r.client.GetCredDef(ctx, credDefID)
	if err != nil {
		return nil, anoncreds.WrapResolutionError(err, fmt.Sprintf("unable to resolve credential definition %s", credDefID))
	}

	if err = validateResponse(res, fieldCredDef); err != nil {
		r.logger.Debugf("credential definition %s not resolved: %v", credDefID, err)
		return nil, err
	}

	out, err := getCredDefResultFromLedger(res)
	if err != nil {
		return nil, anoncreds.WrapResolutionError(err, "invalid credential definition from ledger")
	}

	return out, nil
}

func (r *Registry) GetRevocationRegistryDefinition(ctx context.Context, _ profile.Profile, revRegDefID string) (*anoncreds.GetRevRegDefResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, anoncreds.WrapResolutionError(err, "revocation registry definition lookup cancelled")
	}

	res, err := r.client.GetRevRegDef(ctx, revRegDefID)
	if err != nil {
		return nil, anoncreds.WrapResolutionError(err, fmt.Sprintf("unable to resolve revocation registry definition %s", revRegDefID))
	}

	if err = validateResponse(res, fieldRevRegDef); err != nil {
		r.logger.Debugf("revocation registry definition %s not resolved: %v", revRegDefID, err)
		return nil, err
	}

	out, err := getRevRegDefResultFromLedger(res)
	if err != nil {
		return nil, anoncreds.WrapResolutionError(err, "invalid revocation registry definition from ledger")
	}

	return out, nil
}

// GetRevocationList returns the state of the registry as of timestamp, in seconds since the epoch.
func (r *Registry) GetRevocationList(ctx context.Context, _ profile.Profile, revRegDefID string, timestamp int64) (*anoncreds.GetRevListResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, anoncreds.WrapResolutionError(err, "revocation list lookup cancelled")
	}

	res, err := r.client.GetRevList(ctx, revRegDefID, timestamp)
	if err != nil {
		return nil, anoncreds.WrapResolutionError(err, fmt.Sprintf("unable to resolve revocation list for %s", revRegDefID))
	}

	if err = validateResponse(res, fieldRevList); err != nil {
		r.logger.Debugf("revocation list for %s at %d not resolved: %v", revRegDefID, timestamp, err)
		return nil, err
	}

	out, err := getRevListResultFromLedger(res)
	if err != nil {
		return nil, anoncreds.WrapResolutionError(err, "invalid revocation list from ledger")
	}

	return out, nil
}

func (r *Registry) GetSchemaInfo(ctx context.Context, prof profile.Profile, schemaID string) (*anoncreds.SchemaInfo, error) {
	res, err := r.GetSchema(ctx, prof, schemaID)
	if err != nil {
		return nil, err
	}

	return &anoncreds.SchemaInfo{
		IssuerID: res.Schema.IssuerID,
		Name:     res.Schema.Name,
		Version:  res.Schema.Version,
	}, nil
}

func (r *Registry) RegisterSchema(ctx context.Context, prof profile.Profile, schema *anoncreds.Schema) (*anoncreds.SchemaResult, error) {
	if schema == nil {
		return nil, anoncreds.NewResolutionError("schema is required")
	}

	var out *anoncreds.SchemaResult
	err := r.withSession(ctx, prof, func(sess profile.Session) error {
		key, err := r.issuerKey(ctx, sess, schema.IssuerID)
		if err != nil {
			return err
		}

		req, err := toLedgerSchema(schema)
		if err != nil {
			return anoncreds.WrapResolutionError(err, "invalid schema")
		}

		if err = ctx.Err(); err != nil {
			return anoncreds.WrapResolutionError(err, "schema registration cancelled")
		}

		res, err := r.client.RegisterSchema(ctx, req, key)
		if err != nil {
			return anoncreds.WrapResolutionError(err, "unable to register schema")
		}

		if res != nil && res.SchemaState != nil {
			if err = failedWrite(res.SchemaState.State, res.SchemaState.Reason, "schema"); err != nil {
				return err
			}
		}

		out, err = schemaResultFromLedger(res)
		if err != nil {
			return anoncreds.WrapResolutionError(err, "invalid schema registration result")
		}

		r.logger.Infof("registered schema %s for %s", out.SchemaState.SchemaID, schema.IssuerID)
		return nil
	})

	return out, err
}

// RegisterCredentialDefinition signs with the key of the schema's issuer.
func (r *Registry) RegisterCredentialDefinition(ctx context.Context, prof profile.Profile, schema *anoncreds.GetSchemaResult,
	credDef *anoncreds.CredDef) (*anoncreds.CredDefResult, error) {
	if schema == nil || schema.Schema == nil {
		return nil, anoncreds.NewResolutionError("schema is required")
	}

	if credDef == nil {
		return nil, anoncreds.NewResolutionError("credential definition is required")
	}

	// the ledger takes the signing nym from the credential definition issuer
	if credDef.IssuerID != schema.Schema.IssuerID {
		return nil, anoncreds.NewResolutionError(fmt.Sprintf(
			"credential definition issuer %s does not match schema issuer %s", credDef.IssuerID, schema.Schema.IssuerID))
	}

	var out *anoncreds.CredDefResult
	err := r.withSession(ctx, prof, func(sess profile.Session) error {
		key, err := r.issuerKey(ctx, sess, schema.Schema.IssuerID)
		if err != nil {
			return err
		}

		req, err := toLedgerCredDef(credDef)
		if err != nil {
			return anoncreds.WrapResolutionError(err, "invalid credential definition")
		}

		if err = ctx.Err(); err != nil {
			return anoncreds.WrapResolutionError(err, "credential definition registration cancelled")
		}

		res, err := r.client.RegisterCredDef(ctx, req, key)
		if err != nil {
			return anoncreds.WrapResolutionError(err, "unable to register credential definition")
		}

		if res != nil && res.CredentialDefinitionState != nil {
			st := res.CredentialDefinitionState
			if err = failedWrite(st.State, st.Reason, "credential definition"); err != nil {
				return err
			}
		}

		out, err = credDefResultFromLedger(res)
		if err != nil {
			return anoncreds.WrapResolutionError(err, "invalid credential definition registration result")
		}

		r.logger.Infof("registered credential definition %s on schema %s",
			out.CredentialDefinitionState.CredentialDefinitionID, schema.SchemaID)
		return nil
	})

	return out, err
}

func (r *Registry) RegisterRevocationRegistryDefinition(ctx context.Context, prof profile.Profile,
	revRegDef *anoncreds.RevRegDef) (*anoncreds.RevRegDefResult, error) {
	if revRegDef == nil {
		return nil, anoncreds.NewResolutionError("revocation registry definition is required")
	}

	var out *anoncreds.RevRegDefResult
	err := r.withSession(ctx, prof, func(sess profile.Session) error {
		key, err := r.issuerKey(ctx, sess, revRegDef.IssuerID)
		if err != nil {
			return err
		}

		req, err := toLedgerRevRegDef(revRegDef)
		if err != nil {
			return anoncreds.WrapResolutionError(err, "invalid revocation registry definition")
		}

		if err = ctx.Err(); err != nil {
			return anoncreds.WrapResolutionError(err, "revocation registry definition registration cancelled")
		}

		res, err := r.client.RegisterRevRegDef(ctx, req, key)
		if err != nil {
			return anoncreds.WrapResolutionError(err, "unable to register revocation registry definition")
		}

		if res != nil && res.RevocationRegistryDefinitionState != nil {
			st := res.RevocationRegistryDefinitionState
			if err = failedWrite(st.State, st.Reason, "revocation registry definition"); err != nil {
				return err
			}
		}

		if res == nil || res.RevocationRegistryDefinitionState == nil ||
			res.RevocationRegistryDefinitionState.RevocationRegistryDefinitionID == "" {
			r.logger.Errorf("ledger acknowledged revocation registry definition %s/%s without an identifier",
				revRegDef.CredDefID, revRegDef.Tag)
			return anoncreds.NewInternalConsistencyError("revocation registry definition registered without an identifier")
		}

		out, err = revRegDefResultFromLedger(res)
		if err != nil {
			return anoncreds.WrapResolutionError(err, "invalid revocation registry definition registration result")
		}

		r.logger.Infof("registered revocation registry definition %s",
			out.RevocationRegistryDefinitionState.RevocationRegistryDefinitionID)
		return nil
	})

	return out, err
}

func (r *Registry) RegisterRevocationList(ctx context.Context, prof profile.Profile, revRegDef *anoncreds.RevRegDef,
	revList *anoncreds.RevList) (*anoncreds.RevListResult, error) {
	if revRegDef == nil {
		return nil, anoncreds.NewResolutionError("revocation registry definition is required")
	}

	if revList == nil {
		return nil, anoncreds.NewResolutionError("revocation list is required")
	}

	var out *anoncreds.RevListResult
	err := r.withSession(ctx, prof, func(sess profile.Session) error {
		key, err := r.issuerKey(ctx, sess, revRegDef.IssuerID)
		if err != nil {
			return err
		}

		req, err := toLedgerRevList(revList)
		if err != nil {
			return anoncreds.WrapResolutionError(err, "invalid revocation list")
		}

		if err = ctx.Err(); err != nil {
			return anoncreds.WrapResolutionError(err, "revocation list registration cancelled")
		}

		res, err := r.client.RegisterRevList(ctx, req, key)
		if err != nil {
			return anoncreds.WrapResolutionError(err, "unable to register revocation list")
		}

		if res != nil && res.RevocationListState != nil {
			st := res.RevocationListState
			if err = failedWrite(st.State, st.Reason, "revocation list"); err != nil {
				return err
			}
		}

		out, err = revListResultFromLedger(res)
		if err != nil {
			return anoncreds.WrapResolutionError(err, "invalid revocation list registration result")
		}

		return nil
	})

	return out, err
}

// UpdateRevocationList writes the delta between prevList and currList and, once the
// ledger acknowledges it, publishes a RevListFinished event on the session's bus.
func (r *Registry) UpdateRevocationList(ctx context.Context, prof profile.Profile, revRegDef *anoncreds.RevRegDef,
	prevList, currList *anoncreds.RevList, revoked []int) (*anoncreds.RevListResult, error) {
	if revRegDef == nil {
		return nil, anoncreds.NewResolutionError("revocation registry definition is required")
	}

	if prevList == nil || currList == nil {
		return nil, anoncreds.NewResolutionError("previous and current revocation lists are required")
	}

	var out *anoncreds.RevListResult
	err := r.withSession(ctx, prof, func(sess profile.Session) error {
		wallet, ok := sess.Wallet()
		if !ok {
			return anoncreds.NewResolutionError("wallet not available in session")
		}

		bus, ok := sess.EventBus()
		if !ok {
			return anoncreds.NewResolutionError("event bus not available in session")
		}

		key, err := resolveIssuerKey(ctx, wallet, revRegDef.IssuerID)
		if err != nil {
			return err
		}

		prev, err := toLedgerRevList(prevList)
		if err != nil {
			return anoncreds.WrapResolutionError(err, "invalid previous revocation list")
		}

		curr, err := toLedgerRevList(currList)
		if err != nil {
			return anoncreds.WrapResolutionError(err, "invalid current revocation list")
		}

		if err = ctx.Err(); err != nil {
			return anoncreds.WrapResolutionError(err, "revocation list update cancelled")
		}

		res, err := r.client.UpdateRevList(ctx, prev, curr, revoked, key)
		if err != nil {
			return anoncreds.WrapResolutionError(err, "unable to update revocation list")
		}

		if res != nil && res.RevocationListState != nil {
			st := res.RevocationListState
			if err = failedWrite(st.State, st.Reason, "revocation list update"); err != nil {
				return err
			}
		}

		out, err = revListResultFromLedger(res)
		if err != nil {
			return anoncreds.WrapResolutionError(err, "invalid revocation list update result")
		}

		err = bus.Notify(ctx, prof.Name(), events.NewRevListFinished(currList.RevRegDefID, revoked))
		if err != nil {
			out = nil
			return anoncreds.WrapResolutionError(err, "revocation list updated but notification failed")
		}

		r.logger.Infof("updated revocation list %s, %d newly revoked", currList.RevRegDefID, len(revoked))
		return nil
	})

	return out, err
}

func (r *Registry) withSession(ctx context.Context, prof profile.Profile, fn func(profile.Session) error) error {
	if prof == nil {
		return anoncreds.NewResolutionError("profile is required")
	}

	sess, err := prof.Session(ctx)
	if err != nil {
		return anoncreds.WrapResolutionError(err, "unable to open profile session")
	}

	if sess == nil {
		return anoncreds.NewResolutionError("profile returned no session")
	}

	defer func() {
		if cerr := sess.Close(); cerr != nil {
			r.logger.Warnf("unable to close session for profile %s: %v", prof.Name(), cerr)
		}
	}()

	return fn(sess)
}

func (r *Registry) issuerKey(ctx context.Context, sess profile.Session, issuerID string) ([]byte, error) {
	wallet, ok := sess.Wallet()
	if !ok {
		return nil, anoncreds.NewResolutionError("wallet not available in session")
	}

	return resolveIssuerKey(ctx, wallet, issuerID)
}

func failedWrite(state, reason, what string) error {
	if state != ledger.StateFailed {
		return nil
	}

	if reason == "" {
		reason = what + " registration failed"
	}

	return anoncreds.NewResolutionError(reason)
}
