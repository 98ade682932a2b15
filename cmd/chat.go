// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"contascan/cli/internal/backend"
	"contascan/cli/internal/chat"
	"contascan/cli/internal/models"
	"contascan/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// chatCmd opens an interactive conversation about one analysis session.
var chatCmd = &cobra.Command{
	Use:   "chat <session-id>",
	Short: "Chat with the assistant about an analysis session",
	Long: `The chat command opens an interactive panel tied to a server-side analysis
session. Messages you type are sent to the assistant; replies are appended to
the conversation. The local log lives only while the panel is open; the
server keeps the durable history.

Type /quit (or press Ctrl-D) to close the panel.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		api, _, err := newClient()
		if err != nil {
			return err
		}
		return runChatPanel(cmd.Context(), api, strings.TrimSpace(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// runChatPanel drives the interactive conversation loop. The in-memory log
// is discarded when the loop exits.
func runChatPanel(ctx context.Context, api backend.API, sessionID string) error {
	if sessionID == "" {
		pterm.Println("❌ A session id is required to chat")
		return fmt.Errorf("missing session id")
	}

	log := chat.NewLog(sessionID, api)

	pterm.DefaultBox.
		WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Chat")).
		WithPadding(1).
		Println("Session " + sessionID + "\nType a message and press Enter. /quit to close.")
	pterm.Println()

	reader := bufio.NewReader(os.Stdin)
	for {
		prompt := "you> "
		fmt.Print(prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			// EOF closes the panel; the log is discarded.
			pterm.Println()
			return nil
		}
		text := strings.TrimRight(line, "\n")
		terminal.ClearEnteredInput(prompt, text)

		switch strings.TrimSpace(text) {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		}

		if log.Busy() {
			pterm.Println("⚠️  A message is already being sent")
			continue
		}

		renderChatMessage(models.ChatMessage{Role: models.RoleUser, Content: text})

		stopSpinner := startInlineSpinner(os.Stdout, "waiting for the assistant", spinnerFrames, 100*time.Millisecond)
		err = log.Send(ctx, text)
		stopSpinner()

		if err != nil {
			// Inline and additive: the user entry above stays in place.
			pterm.Println("❌ " + errMessage(err))
			continue
		}

		msgs := log.Messages()
		renderChatMessage(msgs[len(msgs)-1])
	}
}

// renderChatMessage prints one log entry, newest always last.
func renderChatMessage(m models.ChatMessage) {
	switch m.Role {
	case models.RoleUser:
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint("you ") + m.Content)
	case models.RoleAssistant:
		pterm.Println(pterm.NewStyle(pterm.FgLightGreen, pterm.Bold).Sprint("assistant ") + m.Content)
	default:
		pterm.Println(m.Content)
	}
	pterm.Println()
}
