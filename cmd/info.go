// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// infoCmd prints the implementation-defined payload of the server root
// endpoint, pretty-printed.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show analysis server information",

	RunE: func(cmd *cobra.Command, args []string) error {
		api, _, err := newClient()
		if err != nil {
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "fetching server info", spinnerFrames, 100*time.Millisecond)
		payload, err := api.ServerInfo(cmd.Context())
		stopSpinner()
		if err != nil {
			pterm.Println("❌ " + errMessage(err))
			return err
		}

		pretty, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		pterm.Println(string(pretty))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
