// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"net/url"
	"strings"

	"contascan/cli/internal/config"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	configureURL  string
	configureShow bool
)

// configureCmd stores client settings such as the backend URL.
var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Configure the analysis server connection",
	Long: `The configure command stores the backend base URL in the user config file.
The CONTASCAN_BACKEND_URL environment variable (or a .env file in the working
directory) overrides the stored value at runtime.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if configureShow || configureURL == "" {
			pterm.DefaultBox.
				WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Configuration")).
				WithPadding(1).
				Println(fmt.Sprintf("Backend URL: %s\nMax file size: %d MiB\nTimeout: %d s",
					cfg.BackendURL, cfg.MaxFileMiB, cfg.TimeoutSecs))
			return nil
		}

		raw := strings.TrimSpace(configureURL)
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			pterm.Println("❌ Invalid URL. Expected something like http://localhost:8000")
			return fmt.Errorf("invalid backend url %q", raw)
		}

		cfg.BackendURL = strings.TrimRight(raw, "/")
		if err := config.Save(cfg); err != nil {
			pterm.Println("❌ Failed to save the configuration")
			return err
		}
		pterm.Println("✅ Backend URL saved: " + cfg.BackendURL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)
	configureCmd.Flags().StringVar(&configureURL, "url", "", "Backend base URL to store")
	configureCmd.Flags().BoolVar(&configureShow, "show", false, "Show the effective configuration")
}
