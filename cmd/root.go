// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the Contascan client.
// It implements subcommands for spreadsheet analysis, chat, session
// management and workbook editing using the Cobra CLI framework, with a rich
// terminal UI built on pterm.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"contascan/cli/internal/backend"
	"contascan/cli/internal/config"
	"contascan/cli/internal/keychain"
	"contascan/cli/internal/logging"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "contascan",
	Short:         "Contascan CLI for AI-driven accounting spreadsheet analysis",
	Long:          `Contascan is a command-line client for the accounting analysis service. It uploads Excel workbooks for AI analysis, lets you chat about the findings, and edits extracted workbooks in an interactive grid.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("contascan %s\n", Version)

			api, _, err := newClient()
			if err != nil {
				return nil
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			defer cancel()
			if hs, err := api.Health(ctx); err == nil {
				fmt.Printf("backend %s", hs.Status)
				if hs.AIProvider != "" {
					fmt.Printf(" (provider: %s)", hs.AIProvider)
				}
				fmt.Println()
			} else {
				fmt.Println("backend unreachable")
			}
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("contascan", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show client and backend version information")
}

// newClient builds the backend API client from the stored configuration.
// The API token is resolved from the environment first, then the OS
// keychain; both are optional. The client is constructed here and injected
// into the commands rather than living as a package-level singleton, so
// tests can substitute a fake transport.
func newClient() (backend.API, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}

	token := strings.TrimSpace(os.Getenv(config.EnvAPIToken))
	if token == "" {
		if km, err := keychain.GetManager(); err == nil {
			if t, err := km.LoadAPIToken(); err == nil {
				token = strings.TrimSpace(t)
			}
		}
	}

	api := backend.New(cfg.BackendURL, token, time.Duration(cfg.TimeoutSecs)*time.Second)
	return api, cfg, nil
}
