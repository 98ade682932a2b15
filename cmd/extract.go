// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"contascan/cli/internal/backend"
	apperr "contascan/cli/internal/errors"
	"contascan/cli/internal/models"
	"contascan/cli/internal/upload"
	"contascan/cli/internal/view"
	"contascan/cli/internal/workbook"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var extractLocal bool

// extractCmd loads a spreadsheet into the interactive grid editor.
var extractCmd = &cobra.Command{
	Use:   "extract <file.xlsx>",
	Short: "Load a spreadsheet into the interactive grid editor",
	Long: `The extract command parses a spreadsheet into an editable multi-sheet grid.
By default the backend does the parsing; --local parses the file on this
machine without any network call.

Inside the editor, cell edits stay in memory until you run download, which
asks the server to regenerate the workbook with your changes and saves it
under the original filename.`,
	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		api, cfg, err := newClient()
		if err != nil {
			return err
		}

		files, err := upload.ReadFiles(args[:1])
		if err != nil {
			pterm.Println("❌ " + errMessage(err))
			return err
		}
		file := files[0]

		validator := upload.New(cfg.MaxFileBytes())
		if err := validator.CheckFile(file.Name, file.Content); err != nil {
			pterm.Println("❌ " + errMessage(err))
			return err
		}

		var wb *models.StructuredWorkbook
		if extractLocal {
			wb, err = workbook.ExtractLocalBytes(file.Name, file.Content)
		} else {
			stopSpinner := startInlineSpinner(os.Stdout, "extracting workbook", spinnerFrames, 100*time.Millisecond)
			wb, err = api.Extract(cmd.Context(), file)
			stopSpinner()
		}
		if err != nil {
			pterm.Println("❌ " + errMessage(err))
			return err
		}
		// The local path rejects empty workbooks; the server may still
		// return one.
		if len(wb.Sheets) == 0 {
			err := apperr.New(apperr.Validation,
				fmt.Sprintf("%s has no sheets with data", file.Name))
			pterm.Println("❌ " + errMessage(err))
			return err
		}

		return runGridEditor(cmd.Context(), api, workbook.NewSession(wb))
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().BoolVar(&extractLocal, "local", false, "Parse the file locally instead of calling the backend")
}

const gridHelp = `Commands:
  show                 redraw the active sheet
  sheet <n>            switch to sheet n (a pending edit on the old sheet commits)
  edit <row> <column>  edit one cell; Enter commits, /cancel discards
  download             regenerate the workbook server-side and save it
  sync                 push committed edits to the server one by one
  help                 show this help
  quit                 leave the editor`

// runGridEditor drives the interactive edit loop over one workbook session.
func runGridEditor(ctx context.Context, api backend.API, session *workbook.Session) error {
	pterm.DefaultBox.
		WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(session.Workbook().Filename)).
		WithPadding(1).
		Println(gridHelp)
	pterm.Println()
	redraw(session)

	reader := bufio.NewReader(os.Stdin)
	downloading := false
	for {
		fmt.Print("grid> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			pterm.Println()
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit", "q":
			return nil
		case "help":
			pterm.Println(gridHelp)
		case "show":
			redraw(session)
		case "sheet":
			if len(fields) != 2 {
				pterm.Println("usage: sheet <n>")
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				pterm.Println("usage: sheet <n>")
				continue
			}
			if err := session.SetActiveSheet(n - 1); err != nil {
				pterm.Println("❌ " + errMessage(err))
				continue
			}
			redraw(session)
		case "edit":
			if len(fields) < 3 {
				pterm.Println("usage: edit <row> <column>")
				continue
			}
			row, err := strconv.Atoi(fields[1])
			if err != nil {
				pterm.Println("usage: edit <row> <column>")
				continue
			}
			column := strings.Join(fields[2:], " ")
			if err := editCell(reader, session, row-1, column); err != nil {
				pterm.Println("❌ " + errMessage(err))
			}
		case "download":
			if downloading {
				pterm.Println("⚠️  A download is already in progress")
				continue
			}
			downloading = true
			err := downloadWorkbook(ctx, api, session)
			downloading = false
			if err != nil {
				pterm.Println("❌ " + errMessage(err))
			}
		case "sync":
			if err := syncEdits(ctx, api, session); err != nil {
				pterm.Println("❌ " + errMessage(err))
			}
		default:
			pterm.Printf("unknown command %q (try help)\n", fields[0])
		}
	}
}

// redraw prints the sheet tabs and the active sheet grid. A workbook with no
// sheets renders a notice instead of a grid.
func redraw(session *workbook.Session) {
	wb := session.Workbook()
	if len(wb.Sheets) == 0 {
		pterm.Println("⚠️  " + wb.Filename + " has no sheets with data")
		pterm.Println()
		return
	}
	view.RenderSheetTabs(wb, session.ActiveSheet())
	view.RenderSheet(&wb.Sheets[session.ActiveSheet()])
	pterm.Println()
}

// editCell runs one begin → commit/cancel interaction. The prompt seeds the
// working buffer with the current value; an empty commit stores null.
func editCell(reader *bufio.Reader, session *workbook.Session, row int, column string) error {
	if err := session.Begin(row, column); err != nil {
		return err
	}

	pterm.Printf("editing row %d, column %q (current: %q)\n", row+1, column, session.Buffer())
	fmt.Print("new value> ")
	line, err := reader.ReadString('\n')
	if err != nil {
		// Treat EOF like an explicit cancel: buffer discarded, data untouched.
		session.Cancel()
		pterm.Println()
		return nil
	}
	input := strings.TrimRight(line, "\n")
	if strings.TrimSpace(input) == "/cancel" {
		session.Cancel()
		pterm.Println("edit discarded")
		return nil
	}

	session.SetBuffer(input)
	session.Commit()
	pterm.Println("✅ committed")
	redraw(session)
	return nil
}

// downloadWorkbook sends the full in-memory dataset to the server for
// regeneration and saves the returned binary under the original filename.
func downloadWorkbook(ctx context.Context, api backend.API, session *workbook.Session) error {
	// A pending edit commits before serialization, same as any other blur.
	session.Commit()
	wb := session.Workbook()

	stopSpinner := startInlineSpinner(os.Stdout, "regenerating workbook", spinnerFrames, 100*time.Millisecond)
	data, err := api.Download(ctx, wb.Filename, wb.Sheets)
	stopSpinner()
	if err != nil {
		return err
	}

	if err := os.WriteFile(wb.Filename, data, 0o644); err != nil {
		return err
	}
	pterm.Printf("✅ saved %s (%d bytes)\n", wb.Filename, len(data))
	return nil
}

// syncEdits pushes the committed cell edits to the per-cell edit endpoint,
// in commit order.
func syncEdits(ctx context.Context, api backend.API, session *workbook.Session) error {
	edits := session.CommittedEdits()
	if len(edits) == 0 {
		pterm.Println("nothing to sync")
		return nil
	}

	wb := session.Workbook()
	stopSpinner := startInlineSpinner(os.Stdout, "syncing edits", spinnerFrames, 100*time.Millisecond)
	var err error
	for _, e := range edits {
		sh := wb.Sheets[e.SheetIndex]
		value := sh.Rows[e.RowIndex][e.Column]
		if err = api.EditCell(ctx, sh.SheetName, e.RowIndex, e.Column, value); err != nil {
			break
		}
	}
	stopSpinner()
	if err != nil {
		return err
	}
	pterm.Printf("✅ synced %d edit(s)\n", len(edits))
	return nil
}
