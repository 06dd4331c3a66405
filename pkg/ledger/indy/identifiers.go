/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package indy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidIdentifier = errors.New("invalid identifier")

const (
	objectFamily  = "anoncreds"
	objectVersion = "v0"

	kindSchema    = "SCHEMA"
	kindCredDef   = "CLAIM_DEF"
	kindRevRegDef = "REV_REG_DEF"
)

// naming maps between the DID qualified object identifiers agents use and the
// unqualified identifiers stored on an Indy ledger.
type naming struct {
	method    string
	namespace string
}

func (r naming) prefix() string {
	if r.namespace == "" {
		return "did:" + r.method + ":"
	}

	return "did:" + r.method + ":" + r.namespace + ":"
}

func (r naming) issuer(nym string) string {
	return r.prefix() + nym
}

// nym extracts the unqualified ledger identifier from an issuer DID in this namespace.
func (r naming) nym(did string) (string, error) {
	if !strings.HasPrefix(did, r.prefix()) {
		return "", errors.Wrapf(ErrInvalidIdentifier, "%s is not in namespace %s", did, r.prefix())
	}

	nym := strings.TrimPrefix(did, r.prefix())
	if nym == "" || strings.ContainsAny(nym, ":/") {
		return "", errors.Wrapf(ErrInvalidIdentifier, "%s has no valid nym", did)
	}

	return nym, nil
}

func (r naming) object(nym, kind string, parts ...string) string {
	return strings.Join(append([]string{r.issuer(nym), objectFamily, objectVersion, kind}, parts...), "/")
}

func (r naming) schemaID(nym, name, version string) string {
	return r.object(nym, kindSchema, name, version)
}

func (r naming) credDefID(nym string, schemaSeqNo int, tag string) string {
	return r.object(nym, kindCredDef, strconv.Itoa(schemaSeqNo), tag)
}

func (r naming) revRegDefID(nym string, schemaSeqNo int, credDefTag, tag string) string {
	return r.object(nym, kindRevRegDef, strconv.Itoa(schemaSeqNo), credDefTag, tag)
}

// split validates id as an object of the given kind and returns the issuer nym
// and the want path segments following the kind.
func (r naming) split(id, kind string, want int) (string, []string, error) {
	segs := strings.Split(id, "/")
	if len(segs) != 4+want {
		return "", nil, errors.Wrapf(ErrInvalidIdentifier, "%s is not a %s identifier", id, kind)
	}

	if segs[1] != objectFamily || segs[2] != objectVersion || segs[3] != kind {
		return "", nil, errors.Wrapf(ErrInvalidIdentifier, "%s is not a %s identifier", id, kind)
	}

	nym, err := r.nym(segs[0])
	if err != nil {
		return "", nil, err
	}

	parts := segs[4:]
	for _, p := range parts {
		if p == "" {
			return "", nil, errors.Wrapf(ErrInvalidIdentifier, "%s has an empty segment", id)
		}
	}

	return nym, parts, nil
}

func (r naming) parseSchemaID(id string) (nym, name, version string, err error) {
	nym, parts, err := r.split(id, kindSchema, 2)
	if err != nil {
		return "", "", "", err
	}

	return nym, parts[0], parts[1], nil
}

func (r naming) parseCredDefID(id string) (nym string, schemaSeqNo int, tag string, err error) {
	nym, parts, err := r.split(id, kindCredDef, 2)
	if err != nil {
		return "", 0, "", err
	}

	schemaSeqNo, err = seqNo(id, parts[0])
	if err != nil {
		return "", 0, "", err
	}

	return nym, schemaSeqNo, parts[1], nil
}

func (r naming) parseRevRegDefID(id string) (nym string, schemaSeqNo int, credDefTag, tag string, err error) {
	nym, parts, err := r.split(id, kindRevRegDef, 3)
	if err != nil {
		return "", 0, "", "", err
	}

	schemaSeqNo, err = seqNo(id, parts[0])
	if err != nil {
		return "", 0, "", "", err
	}

	return nym, schemaSeqNo, parts[1], parts[2], nil
}

func seqNo(id, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.Wrapf(ErrInvalidIdentifier, "%s has invalid sequence number %q", id, s)
	}

	return n, nil
}

func legacySchemaID(nym, name, version string) string {
	return fmt.Sprintf("%s:2:%s:%s", nym, name, version)
}

func legacyCredDefID(nym string, schemaSeqNo int, tag string) string {
	return fmt.Sprintf("%s:3:CL:%d:%s", nym, schemaSeqNo, tag)
}

func legacyRevRegDefID(nym string, schemaSeqNo int, credDefTag, tag string) string {
	return fmt.Sprintf("%s:4:%s:CL_ACCUM:%s", nym, legacyCredDefID(nym, schemaSeqNo, credDefTag), tag)
}
