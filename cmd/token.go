// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"contascan/cli/internal/keychain"
	"contascan/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// tokenCmd groups API token management. The token is optional; when present
// it is sent as a Bearer header with every request and stored only in the
// OS keychain, never in the config file.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage the optional backend API token",
}

var tokenSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store an API token in the OS keychain",

	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)
		promptText := "Enter API token: "
		fmt.Print(promptText)
		raw, _ := reader.ReadString('\n')
		raw = strings.TrimSpace(raw)

		// Clear the prompt and the token from the terminal
		terminal.ClearEnteredInput(promptText, raw)

		if raw == "" {
			return errors.New("token is required")
		}

		km, err := keychain.GetManager()
		if err != nil {
			pterm.Println("❌ Secure storage is not available on this system.")
			pterm.Println("   Keychain is only supported on macOS and Windows.")
			pterm.Println("   Set CONTASCAN_API_TOKEN in the environment instead.")
			return err
		}
		if err := km.SaveAPIToken(raw); err != nil {
			pterm.Println("❌ Failed to save the token securely.")
			return err
		}
		pterm.Println("✅ API token saved")
		return nil
	},
}

var tokenClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored API token",

	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := keychain.GetManager()
		if err != nil {
			pterm.Println("❌ Secure storage is not available on this system.")
			return err
		}
		if err := km.DeleteAPIToken(); err != nil {
			return err
		}
		pterm.Println("✅ API token removed")
		return nil
	},
}

var tokenShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show whether an API token is configured",

	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(os.Getenv("CONTASCAN_API_TOKEN")) != "" {
			pterm.Println("Using token from CONTASCAN_API_TOKEN environment variable")
			return nil
		}
		km, err := keychain.GetManager()
		if err != nil {
			pterm.Println("⚠️  No secure storage available and no environment token set")
			return nil
		}
		if _, err := km.LoadAPIToken(); err != nil {
			pterm.Println("⚠️  No API token configured (requests are sent unauthenticated)")
			return nil
		}
		pterm.Println("✅ An API token is stored in the OS keychain")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenSetCmd)
	tokenCmd.AddCommand(tokenClearCmd)
	tokenCmd.AddCommand(tokenShowCmd)
}
