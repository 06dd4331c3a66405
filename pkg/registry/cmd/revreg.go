/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/scoir/anoncreds-registry/pkg/anoncreds"
)

var revRegDefFile string

var revRegCmd = &cobra.Command{
	Use:   "revreg",
	Short: "Resolve and register revocation registry definitions",
}

var revRegGetCmd = &cobra.Command{
	Use:   "get <revocation registry definition id>",
	Short: "Resolves a revocation registry definition",
	Args:  cobra.ExactArgs(1),
	Run:   runRevRegGet,
}

var revRegRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Registers the revocation registry definition in --file",
	Args:  cobra.NoArgs,
	Run:   runRevRegRegister,
}

func runRevRegGet(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	out, err := resolverFor(args[0]).GetRevocationRegistryDefinition(ctx, reader(), args[0])
	if err != nil {
		log.Fatalln(err)
	}

	show(cmd, out)
}

func runRevRegRegister(cmd *cobra.Command, _ []string) {
	def := &anoncreds.RevRegDef{}
	err := readJSON(revRegDefFile, def)
	if err != nil {
		log.Fatalln(err)
	}

	ctx, cancel := commandContext()
	defer cancel()
	defer prov.Close()

	out, err := registrarFor(def.IssuerID).RegisterRevocationRegistryDefinition(ctx, issuer(), def)
	if err != nil {
		log.Fatalln(err)
	}

	show(cmd, out)
}

func init() {
	revRegRegisterCmd.Flags().StringVar(&revRegDefFile, "file", "", "revocation registry definition JSON, - for stdin")
	revRegCmd.AddCommand(revRegGetCmd, revRegRegisterCmd)
	rootCmd.AddCommand(revRegCmd)
}
