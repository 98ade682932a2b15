// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	apperr "contascan/cli/internal/errors"
	"contascan/cli/internal/httperrors"
	"contascan/cli/internal/upload"
	"contascan/cli/internal/view"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	analyzePrompt   string
	analyzeOpenChat bool
)

// analyzeCmd submits one or more spreadsheets for analysis and renders the
// returned findings and recommendations.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.xlsx> [more files...]",
	Short: "Upload spreadsheets for AI accounting analysis",
	Long: `The analyze command validates the given Excel files locally (type and size),
uploads them to the analysis service, and renders the returned summary,
findings and recommendations.

Validation is all-or-nothing: if any file in the batch is rejected, nothing
is uploaded. An optional free-text instruction can be passed with --prompt
and is forwarded verbatim to the backend.`,
	Args: cobra.MinimumNArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		api, cfg, err := newClient()
		if err != nil {
			return err
		}

		files, err := upload.ReadFiles(args)
		if err != nil {
			pterm.Println("❌ " + errMessage(err))
			return err
		}

		validator := upload.New(cfg.MaxFileBytes())
		if err := validator.CheckBatch(files); err != nil {
			// Rejected client-side; nothing was sent.
			pterm.Println("❌ " + errMessage(err))
			return err
		}

		bar, _ := pterm.DefaultProgressbar.
			WithTotal(100).
			WithTitle("Uploading").
			WithRemoveWhenDone(true).
			Start()
		lastPct := 0
		onProgress := func(frac float64) {
			pct := int(frac * 100)
			if pct > lastPct && bar != nil {
				bar.Add(pct - lastPct)
				lastPct = pct
			}
		}

		res, err := api.Analyze(cmd.Context(), files, analyzePrompt, onProgress)
		if bar != nil {
			// Loading indicator is cleared on every outcome.
			_, _ = bar.Stop()
		}

		if err != nil {
			pterm.Println("❌ " + errMessage(err))
			if apperr.KindOf(err) == apperr.Connection {
				httperrors.ShowNetworkError(err, "analyzing files")
			}
			return err
		}

		pterm.Println()
		view.RenderAnalysis(res)

		if analyzeOpenChat && res.HasSession() {
			return runChatPanel(cmd.Context(), api, res.SessionID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&analyzePrompt, "prompt", "p", "", "Optional instruction forwarded to the analysis")
	analyzeCmd.Flags().BoolVar(&analyzeOpenChat, "chat", false, "Open the chat panel after a successful analysis")
}
