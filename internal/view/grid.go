// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package view

import (
	"fmt"
	"strings"

	"contascan/cli/internal/models"

	"github.com/pterm/pterm"
)

// maxCellWidth caps column width so wide text columns do not blow up the
// terminal; longer values are truncated with an ellipsis.
const maxCellWidth = 24

// numericMarker flags numeric columns in the header.
const numericMarker = "#"

// RenderSheet prints one sheet as a grid. Numeric columns are right-aligned
// and carry the marker glyph in their header; all others are left-aligned.
// Row numbers are 1-based for display.
func RenderSheet(sh *models.Sheet) {
	headers := make([]string, len(sh.Columns))
	for i, col := range sh.Columns {
		if sh.IsNumeric(col) {
			headers[i] = col + " " + numericMarker
		} else {
			headers[i] = col
		}
	}

	widths := columnWidths(sh, headers)

	var b strings.Builder
	b.WriteString(pad("row", 5, false))
	for i, h := range headers {
		b.WriteString("  ")
		b.WriteString(pterm.NewStyle(pterm.Bold).Sprint(pad(h, widths[i], sh.IsNumeric(sh.Columns[i]))))
	}
	pterm.Println(b.String())

	for r, row := range sh.Rows {
		var lb strings.Builder
		lb.WriteString(pad(fmt.Sprintf("%d", r+1), 5, false))
		for i, col := range sh.Columns {
			lb.WriteString("  ")
			lb.WriteString(pad(models.CellString(row[col]), widths[i], sh.IsNumeric(col)))
		}
		pterm.Println(lb.String())
	}
	pterm.Println()
	pterm.Println(pterm.NewStyle(pterm.FgGray).Sprintf("%d rows × %d columns · %s right-aligned columns are numeric",
		sh.Shape[0], sh.Shape[1], numericMarker))
}

// RenderSheetTabs prints the sheet names with the active one highlighted.
func RenderSheetTabs(wb *models.StructuredWorkbook, active int) {
	parts := make([]string, len(wb.Sheets))
	for i, sh := range wb.Sheets {
		label := fmt.Sprintf("%d:%s", i+1, sh.SheetName)
		if i == active {
			parts[i] = pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("[" + label + "]")
		} else {
			parts[i] = " " + label + " "
		}
	}
	pterm.Println(strings.Join(parts, " "))
	pterm.Println()
}

// columnWidths computes display widths from headers and cell contents.
func columnWidths(sh *models.Sheet, headers []string) []int {
	widths := make([]int, len(sh.Columns))
	for i, h := range headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range sh.Rows {
		for i, col := range sh.Columns {
			if n := len([]rune(models.CellString(row[col]))); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i := range widths {
		if widths[i] > maxCellWidth {
			widths[i] = maxCellWidth
		}
	}
	return widths
}

// pad fits s into width runes, truncating with an ellipsis when necessary.
// rightAlign pads on the left (numeric columns).
func pad(s string, width int, rightAlign bool) string {
	runes := []rune(s)
	if len(runes) > width {
		if width > 1 {
			return string(runes[:width-1]) + "…"
		}
		return string(runes[:width])
	}
	fill := strings.Repeat(" ", width-len(runes))
	if rightAlign {
		return fill + s
	}
	return s + fill
}
