/*
Copyright Scoir Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/scoir/anoncreds-registry/pkg/notifier"
)

var notifierCmd = &cobra.Command{
	Use:   "notifier",
	Short: "Relay registry events to webhooks",
}

var notifierStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Starts the webhook notifier",
	Long:  `Consumes registry events from the notifier queue and posts them to the configured webhooks.`,
	Run:   runNotifierStart,
}

func runNotifierStart(_ *cobra.Command, _ []string) {
	srv, err := notifier.New(prov)
	if err != nil {
		log.Fatalln("unable to create notifier", err)
	}

	errs, err := srv.Errors()
	if err != nil {
		log.Fatalln(err)
	}
	go func() {
		for err := range errs {
			log.Println("notifier:", err)
		}
	}()

	err = srv.Start()
	if err != nil {
		log.Println("notifier exited with", err)
	}
}

func init() {
	notifierCmd.AddCommand(notifierStartCmd)
	rootCmd.AddCommand(notifierCmd)
}
