/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

// readJSON decodes file into v. A file of "-" reads standard input.
func readJSON(file string, v interface{}) error {
	if file == "" {
		return errors.New("an input file is required")
	}

	var in io.Reader = os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return errors.Wrapf(err, "unable to open %s", file)
		}
		defer f.Close()
		in = f
	}

	d, err := ioutil.ReadAll(in)
	if err != nil {
		return errors.Wrapf(err, "unable to read %s", file)
	}

	err = json.Unmarshal(d, v)
	if err != nil {
		return errors.Wrapf(err, "invalid JSON in %s", file)
	}

	return nil
}

func writeJSON(out io.Writer, v interface{}) error {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "unable to encode result")
	}

	_, err = out.Write(append(d, '\n'))
	return err
}

// newlyRevoked lists indices revoked in curr but not in prev.
func newlyRevoked(prev, curr []int) []int {
	var out []int
	for i, v := range curr {
		if v != 1 {
			continue
		}
		if i < len(prev) && prev[i] == 1 {
			continue
		}
		out = append(out, i)
	}

	return out
}
