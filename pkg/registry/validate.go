/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package registry

import (
	"github.com/scoir/anoncreds-registry/pkg/anoncreds"
	"github.com/scoir/anoncreds-registry/pkg/ledger"
)

const (
	fieldSchema    = "schema"
	fieldCredDef   = "credential_definition"
	fieldRevRegDef = "revocation_registry_definition"
	fieldRevList   = "revocation_list"
)

// validateResponse maps a ledger read envelope onto the error taxonomy. A nil
// return means the envelope carries a payload and no error.
func validateResponse(res ledger.Resolution, field string) error {
	if res == nil {
		return anoncreds.NewResolutionError("Failed to retrieve " + field)
	}

	md := res.Metadata()
	if md.Failed() {
		switch {
		case md.Message == "":
			return anoncreds.NewResolutionError("Unknown error")
		case md.Error == ledger.ErrorNotFound:
			return anoncreds.NewObjectNotFound(md.Message)
		default:
			return anoncreds.NewResolutionError(md.Message)
		}
	}

	if !res.HasPayload() {
		return anoncreds.NewResolutionError("Failed to retrieve " + field)
	}

	return nil
}
