// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"time"

	apperr "contascan/cli/internal/errors"
	"contascan/cli/internal/httperrors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// healthCmd checks whether the analysis backend is reachable and healthy.
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the analysis server status",
	Long: `The health command calls the backend health endpoint and reports whether the
service is reachable, its overall status, and which AI provider it is using.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		api, cfg, err := newClient()
		if err != nil {
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "checking server status", spinnerFrames, 100*time.Millisecond)
		hs, err := api.Health(cmd.Context())
		stopSpinner()

		if err != nil {
			pterm.Println("❌ Server: disconnected")
			if apperr.KindOf(err) == apperr.Connection {
				httperrors.ShowNetworkError(err, "checking server status")
			} else {
				pterm.Println("   " + apperr.Message(err))
			}
			return err
		}

		glyph := "✅"
		if hs.Status != "healthy" {
			glyph = "⚠️"
		}
		lines := fmt.Sprintf("%s Status: %s", glyph, hs.Status)
		if hs.AIProvider != "" {
			lines += fmt.Sprintf("\n🤖 Provider: %s", hs.AIProvider)
		}
		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(httperrors.ExtractHostFromURL(cfg.BackendURL))).
			WithPadding(1).
			Println(lines)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
