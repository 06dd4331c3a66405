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

var credDefFile string

var credDefCmd = &cobra.Command{
	Use:   "creddef",
	Short: "Resolve and register credential definitions",
}

var credDefGetCmd = &cobra.Command{
	Use:   "get <credential definition id>",
	Short: "Resolves a credential definition",
	Args:  cobra.ExactArgs(1),
	Run:   runCredDefGet,
}

var credDefRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Registers the credential definition in --file",
	Long: `Registers the credential definition in --file. Its schema is resolved first and
the write is signed with the schema issuer's key.`,
	Args: cobra.NoArgs,
	Run:  runCredDefRegister,
}

func runCredDefGet(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	out, err := resolverFor(args[0]).GetCredentialDefinition(ctx, reader(), args[0])
	if err != nil {
		log.Fatalln(err)
	}

	show(cmd, out)
}

func runCredDefRegister(cmd *cobra.Command, _ []string) {
	credDef := &anoncreds.CredDef{}
	err := readJSON(credDefFile, credDef)
	if err != nil {
		log.Fatalln(err)
	}

	ctx, cancel := commandContext()
	defer cancel()
	defer prov.Close()

	schema, err := resolverFor(credDef.SchemaID).GetSchema(ctx, reader(), credDef.SchemaID)
	if err != nil {
		log.Fatalln("unable to resolve schema", credDef.SchemaID, err)
	}

	out, err := registrarFor(credDef.IssuerID).RegisterCredentialDefinition(ctx, issuer(), schema, credDef)
	if err != nil {
		log.Fatalln(err)
	}

	show(cmd, out)
}

func init() {
	credDefRegisterCmd.Flags().StringVar(&credDefFile, "file", "", "credential definition JSON, - for stdin")
	credDefCmd.AddCommand(credDefGetCmd, credDefRegisterCmd)
	rootCmd.AddCommand(credDefCmd)
}
