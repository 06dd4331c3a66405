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

var schemaFile string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Resolve and register schemas",
}

var schemaGetCmd = &cobra.Command{
	Use:   "get <schema id>",
	Short: "Resolves a schema",
	Args:  cobra.ExactArgs(1),
	Run:   runSchemaGet,
}

var schemaInfoCmd = &cobra.Command{
	Use:   "info <schema id>",
	Short: "Shows the issuer, name and version of a schema",
	Args:  cobra.ExactArgs(1),
	Run:   runSchemaInfo,
}

var schemaRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Registers the schema in --file, signed with its issuer's key",
	Args:  cobra.NoArgs,
	Run:   runSchemaRegister,
}

func runSchemaGet(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	out, err := resolverFor(args[0]).GetSchema(ctx, reader(), args[0])
	if err != nil {
		log.Fatalln(err)
	}

	show(cmd, out)
}

func runSchemaInfo(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()

	out, err := resolverFor(args[0]).GetSchemaInfo(ctx, reader(), args[0])
	if err != nil {
		log.Fatalln(err)
	}

	show(cmd, out)
}

func runSchemaRegister(cmd *cobra.Command, _ []string) {
	schema := &anoncreds.Schema{}
	err := readJSON(schemaFile, schema)
	if err != nil {
		log.Fatalln(err)
	}

	ctx, cancel := commandContext()
	defer cancel()
	defer prov.Close()

	out, err := registrarFor(schema.IssuerID).RegisterSchema(ctx, issuer(), schema)
	if err != nil {
		log.Fatalln(err)
	}

	show(cmd, out)
}

func init() {
	schemaRegisterCmd.Flags().StringVar(&schemaFile, "file", "", "schema JSON, - for stdin")
	schemaCmd.AddCommand(schemaGetCmd, schemaInfoCmd, schemaRegisterCmd)
	rootCmd.AddCommand(schemaCmd)
}
