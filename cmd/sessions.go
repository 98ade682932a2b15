// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// sessionsCmd groups the session management subcommands.
var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List, inspect and delete analysis sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the active analysis sessions",

	RunE: func(cmd *cobra.Command, args []string) error {
		api, _, err := newClient()
		if err != nil {
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "fetching sessions", spinnerFrames, 100*time.Millisecond)
		list, err := api.ListSessions(cmd.Context())
		stopSpinner()
		if err != nil {
			pterm.Println("❌ " + errMessage(err))
			return err
		}

		if list.Total == 0 {
			pterm.Println("No active sessions")
			return nil
		}

		data := pterm.TableData{{"Session", "Files", "Messages", "Last activity"}}
		for _, s := range list.Sessions {
			data = append(data, []string{
				s.SessionID,
				strings.Join(s.FileNames, ", "),
				pterm.Sprintf("%d", s.MessageCount),
				s.LastActivity,
			})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show the full record of one session",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		api, _, err := newClient()
		if err != nil {
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "fetching session", spinnerFrames, 100*time.Millisecond)
		detail, err := api.GetSession(cmd.Context(), args[0])
		stopSpinner()
		if err != nil {
			pterm.Println("❌ " + errMessage(err))
			return err
		}

		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Session "+detail.SessionID)).
			WithPadding(1).
			Println(sessionSummaryLines(detail.FileNames, detail.CreatedAt, detail.LastActivity))

		if len(detail.ConversationHistory) > 0 {
			pterm.DefaultSection.Println("Conversation")
			for _, m := range detail.ConversationHistory {
				renderChatMessage(m)
			}
		}
		return nil
	},
}

var sessionsDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session from the server",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		api, _, err := newClient()
		if err != nil {
			return err
		}

		stopSpinner := startInlineSpinner(os.Stdout, "deleting session", spinnerFrames, 100*time.Millisecond)
		msg, err := api.DeleteSession(cmd.Context(), args[0])
		stopSpinner()
		if err != nil {
			pterm.Println("❌ " + errMessage(err))
			return err
		}
		pterm.Println("✅ " + msg)
		return nil
	},
}

// sessionSummaryLines formats the header lines of the session box.
func sessionSummaryLines(files []string, created, lastActivity string) string {
	lines := []string{}
	if len(files) > 0 {
		lines = append(lines, "Files: "+strings.Join(files, ", "))
	}
	if created != "" {
		lines = append(lines, "Created: "+created)
	}
	if lastActivity != "" {
		lines = append(lines, "Last activity: "+lastActivity)
	}
	if len(lines) == 0 {
		return "(no metadata)"
	}
	return strings.Join(lines, "\n")
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsShowCmd)
	sessionsCmd.AddCommand(sessionsDeleteCmd)
}
