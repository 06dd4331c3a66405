/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package anoncreds

import (
	"github.com/pkg/errors"
)

// ObjectNotFoundError reports that the ledger has no object for the requested identifier.
type ObjectNotFoundError struct {
	Message string
}

func NewObjectNotFound(msg string) *ObjectNotFoundError {
	return &ObjectNotFoundError{Message: msg}
}

func (r *ObjectNotFoundError) Error() string {
	return r.Message
}

// ResolutionError covers every other failure to read or write a ledger object.
type ResolutionError struct {
	Message string
	cause   error
}

func NewResolutionError(msg string) *ResolutionError {
	return &ResolutionError{Message: msg}
}

// WrapResolutionError keeps err reachable through errors.Unwrap.
func WrapResolutionError(err error, msg string) *ResolutionError {
	if err == nil {
		return NewResolutionError(msg)
	}

	return &ResolutionError{Message: msg + ": " + err.Error(), cause: err}
}

func (r *ResolutionError) Error() string {
	return r.Message
}

func (r *ResolutionError) Unwrap() error {
	return r.cause
}

// InternalConsistencyError means a collaborator acknowledged an operation but broke its
// contract doing so, e.g. the ledger accepted a write without assigning an identifier.
type InternalConsistencyError struct {
	Message string
}

func NewInternalConsistencyError(msg string) *InternalConsistencyError {
	return &InternalConsistencyError{Message: msg}
}

func (r *InternalConsistencyError) Error() string {
	return "internal consistency violation: " + r.Message
}

func IsObjectNotFound(err error) bool {
	var target *ObjectNotFoundError
	return errors.As(err, &target)
}

func IsResolutionError(err error) bool {
	var target *ResolutionError
	return errors.As(err, &target)
}

func IsInternalConsistency(err error) bool {
	var target *InternalConsistencyError
	return errors.As(err, &target)
}
