/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"context"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/scoir/anoncreds-registry/pkg/anoncreds"
)

var (
	revListFile string
	prevFile    string
	revokedIdx  []int
	at          int64
)

var revListCmd = &cobra.Command{
	Use:   "revlist",
	Short: "Resolve, register and update revocation lists",
}

var revListGetCmd = &cobra.Command{
	Use:   "get <revocation registry definition id>",
	Short: "Resolves the revocation list in force at --timestamp",
	Args:  cobra.ExactArgs(1),
	Run:   runRevListGet,
}

var revListRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Registers the initial revocation list in --file",
	Args:  cobra.NoArgs,
	Run:   runRevListRegister,
}

var revListUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Writes the revocation list in --file as the successor of --prev",
	Long: `Writes the revocation list in --file as the successor of the list in --prev.
The newly revoked indices default to those set in --file and not in --prev.
Updates of one registry must not run concurrently.`,
	Args: cobra.NoArgs,
	Run:  runRevListUpdate,
}

func runRevListGet(cmd *cobra.Command, args []string) {
	ts := at
	if ts == 0 {
		ts = time.Now().Unix()
	}

	ctx, cancel := commandContext()
	defer cancel()

	out, err := resolverFor(args[0]).GetRevocationList(ctx, reader(), args[0], ts)
	if err != nil {
		log.Fatalln(err)
	}

	show(cmd, out)
}

func runRevListRegister(cmd *cobra.Command, _ []string) {
	list := &anoncreds.RevList{}
	err := readJSON(revListFile, list)
	if err != nil {
		log.Fatalln(err)
	}

	ctx, cancel := commandContext()
	defer cancel()
	defer prov.Close()

	def := revRegDefFor(ctx, list.RevRegDefID)
	out, err := registrarFor(list.RevRegDefID).RegisterRevocationList(ctx, issuer(), def, list)
	if err != nil {
		log.Fatalln(err)
	}

	show(cmd, out)
}

func runRevListUpdate(cmd *cobra.Command, _ []string) {
	prev := &anoncreds.RevList{}
	err := readJSON(prevFile, prev)
	if err != nil {
		log.Fatalln(err)
	}

	curr := &anoncreds.RevList{}
	err = readJSON(revListFile, curr)
	if err != nil {
		log.Fatalln(err)
	}

	revoked := revokedIdx
	if len(revoked) == 0 {
		revoked = newlyRevoked(prev.RevocationList, curr.RevocationList)
	}

	ctx, cancel := commandContext()
	defer cancel()
	defer prov.Close()

	def := revRegDefFor(ctx, curr.RevRegDefID)
	out, err := registrarFor(curr.RevRegDefID).UpdateRevocationList(ctx, issuer(), def, prev, curr, revoked)
	if err != nil {
		log.Fatalln(err)
	}

	show(cmd, out)
}

func revRegDefFor(ctx context.Context, id string) *anoncreds.RevRegDef {
	res, err := resolverFor(id).GetRevocationRegistryDefinition(ctx, reader(), id)
	if err != nil {
		log.Fatalln("unable to resolve revocation registry definition", id, err)
	}

	return res.RevocationRegistry
}

func init() {
	revListGetCmd.Flags().Int64Var(&at, "timestamp", 0, "unix time of the list to resolve (default now)")
	revListRegisterCmd.Flags().StringVar(&revListFile, "file", "", "revocation list JSON, - for stdin")
	revListUpdateCmd.Flags().StringVar(&revListFile, "file", "", "updated revocation list JSON, - for stdin")
	revListUpdateCmd.Flags().StringVar(&prevFile, "prev", "", "previous revocation list JSON")
	revListUpdateCmd.Flags().IntSliceVar(&revokedIdx, "revoked", nil, "indices revoked by this update")
	revListCmd.AddCommand(revListGetCmd, revListRegisterCmd, revListUpdateCmd)
	rootCmd.AddCommand(revListCmd)
}
