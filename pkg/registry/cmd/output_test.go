/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scoir/anoncreds-registry/pkg/anoncreds"
)

func TestReadJSON(t *testing.T) {
	dir, err := ioutil.TempDir("", "anoncreds-cmd")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	t.Run("schema file", func(t *testing.T) {
		path := filepath.Join(dir, "schema.json")
		d := []byte(`{"issuerId":"did:indy:test:abc","name":"degree","version":"1.0","attrNames":["name","gpa"]}`)
		require.NoError(t, ioutil.WriteFile(path, d, 0600))

		s := &anoncreds.Schema{}
		require.NoError(t, readJSON(path, s))
		require.Equal(t, "did:indy:test:abc", s.IssuerID)
		require.Equal(t, []string{"name", "gpa"}, s.AttrNames)
	})

	t.Run("no file", func(t *testing.T) {
		err := readJSON("", &anoncreds.Schema{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "an input file is required")
	})

	t.Run("missing file", func(t *testing.T) {
		err := readJSON(filepath.Join(dir, "nope.json"), &anoncreds.Schema{})
		require.Error(t, err)
	})

	t.Run("bad json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, ioutil.WriteFile(path, []byte("{"), 0600))

		err := readJSON(path, &anoncreds.Schema{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid JSON")
	})
}

func TestWriteJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	err := writeJSON(buf, &anoncreds.SchemaInfo{IssuerID: "did:indy:test:abc", Name: "degree", Version: "1.0"})
	require.NoError(t, err)
	require.JSONEq(t, `{"issuer_id":"did:indy:test:abc","name":"degree","version":"1.0"}`, buf.String())
}

func TestNewlyRevoked(t *testing.T) {
	tests := []struct {
		name string
		prev []int
		curr []int
		want []int
	}{
		{name: "nothing revoked", prev: []int{0, 0}, curr: []int{0, 0}},
		{name: "new revocation", prev: []int{0, 0, 0}, curr: []int{0, 1, 0}, want: []int{1}},
		{name: "already revoked", prev: []int{1, 0}, curr: []int{1, 1}, want: []int{1}},
		{name: "empty previous", curr: []int{1, 0, 1}, want: []int{0, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, newlyRevoked(tt.prev, tt.curr))
		})
	}
}
