/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package anoncreds

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorTaxonomy(t *testing.T) {
	t.Run("not found survives wrapping", func(t *testing.T) {
		err := errors.Wrap(NewObjectNotFound("no such list"), "get revocation list")
		require.True(t, IsObjectNotFound(err))
		require.False(t, IsResolutionError(err))
		require.False(t, IsInternalConsistency(err))
	})

	t.Run("resolution error keeps its cause", func(t *testing.T) {
		cause := errors.New("pool timeout")
		err := WrapResolutionError(cause, "unable to register schema")
		require.True(t, IsResolutionError(err))
		require.Equal(t, "unable to register schema: pool timeout", err.Error())
		require.True(t, errors.Is(err, cause))
	})

	t.Run("resolution error without cause", func(t *testing.T) {
		err := WrapResolutionError(nil, "Unknown error")
		require.Equal(t, "Unknown error", err.Error())
		require.Nil(t, err.Unwrap())
	})

	t.Run("internal consistency is distinct", func(t *testing.T) {
		err := NewInternalConsistencyError("missing id")
		require.True(t, IsInternalConsistency(err))
		require.False(t, IsResolutionError(err))
		require.Contains(t, err.Error(), "missing id")
	})
}

func TestRevList_Revoked(t *testing.T) {
	l := &RevList{RevocationList: []int{0, 1, 0, 1, 1}}
	require.Equal(t, []int{1, 3, 4}, l.Revoked())
	require.Nil(t, (&RevList{RevocationList: []int{0, 0}}).Revoked())
}
