/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/scoir/anoncreds-registry/pkg/anoncreds"
	"github.com/scoir/anoncreds-registry/pkg/profile"
)

func resolverFor(id string) anoncreds.Resolver {
	router, err := prov.GetRouter()
	if err != nil {
		log.Fatalln("unable to connect to ledger", err)
	}

	res, err := router.Resolver(id)
	if err != nil {
		log.Fatalln(err)
	}

	return res
}

func registrarFor(id string) anoncreds.Registrar {
	router, err := prov.GetRouter()
	if err != nil {
		log.Fatalln("unable to connect to ledger", err)
	}

	reg, err := router.Registrar(id)
	if err != nil {
		log.Fatalln(err)
	}

	return reg
}

// reader is the profile for resolution, which never opens a session.
func reader() profile.Profile {
	return profile.NewAgent("reader")
}

func issuer() profile.Profile {
	prof, err := prov.GetProfile()
	if err != nil {
		log.Fatalln("unable to load issuer profile", err)
	}

	return prof
}

func show(cmd *cobra.Command, v interface{}) {
	err := writeJSON(cmd.OutOrStdout(), v)
	if err != nil {
		log.Fatalln(err)
	}
}
