/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var seed string

var didCmd = &cobra.Command{
	Use:   "did",
	Short: "Manage issuer DIDs held in the wallet",
}

var didCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Creates an issuer DID and stores its key in the wallet",
	Long: `Creates an issuer DID from a 32 character seed, or from a random key when no
seed is given. The DID must be written to the ledger by a steward before it can register objects.`,
	Args: cobra.NoArgs,
	Run:  runDIDCreate,
}

var didShowCmd = &cobra.Command{
	Use:   "show <did>",
	Short: "Shows the nym and verkey of a wallet DID",
	Args:  cobra.ExactArgs(1),
	Run:   runDIDShow,
}

func runDIDCreate(cmd *cobra.Command, _ []string) {
	w, err := prov.GetWallet()
	if err != nil {
		log.Fatalln("unable to open wallet", err)
	}

	d, err := w.CreateDID(seed)
	if err != nil {
		log.Fatalln("unable to create DID", err)
	}

	show(cmd, d)
}

func runDIDShow(cmd *cobra.Command, args []string) {
	w, err := prov.GetWallet()
	if err != nil {
		log.Fatalln("unable to open wallet", err)
	}

	d, err := w.GetDID(args[0])
	if err != nil {
		log.Fatalln(err)
	}

	show(cmd, d)
}

func init() {
	didCreateCmd.Flags().StringVar(&seed, "seed", "", "32 character seed for the DID key")
	didCmd.AddCommand(didCreateCmd, didShowCmd)
	rootCmd.AddCommand(didCmd)
}
