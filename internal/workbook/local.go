// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package workbook

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	apperr "contascan/cli/internal/errors"
	"contascan/cli/internal/models"

	"github.com/xuri/excelize/v2"
)

// numericThreshold is the share of parseable values above which a column is
// treated as numeric.
const numericThreshold = 0.8

// ExtractLocal parses a spreadsheet into the same structured dataset shape
// the server's extract operation returns, without any network call. The
// first row of each sheet is taken as the header; blank header cells get
// positional names.
func ExtractLocal(filename string, r io.Reader) (*models.StructuredWorkbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperr.Wrap(apperr.Validation,
			fmt.Sprintf("%s is not a readable Excel workbook", filepath.Base(filename)), err)
	}
	defer f.Close()

	wb := &models.StructuredWorkbook{Filename: filepath.Base(filename)}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, apperr.Wrap(apperr.Validation,
				fmt.Sprintf("cannot read sheet %q", name), err)
		}
		if len(rows) == 0 {
			continue
		}
		wb.Sheets = append(wb.Sheets, buildSheet(name, rows))
	}
	if len(wb.Sheets) == 0 {
		return nil, apperr.New(apperr.Validation, "the workbook has no sheets with data")
	}
	return wb, nil
}

// ExtractLocalBytes is ExtractLocal over an in-memory file.
func ExtractLocalBytes(filename string, content []byte) (*models.StructuredWorkbook, error) {
	return ExtractLocal(filename, bytes.NewReader(content))
}

// buildSheet converts raw cell rows into the structured sheet model.
func buildSheet(name string, raw [][]string) models.Sheet {
	columns := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Column_%d", i+1)
		}
		columns[i] = h
	}

	rows := make([]models.Row, 0, len(raw)-1)
	for _, rr := range raw[1:] {
		row := make(models.Row, len(columns))
		for i, col := range columns {
			if i >= len(rr) || strings.TrimSpace(rr[i]) == "" {
				row[col] = nil
				continue
			}
			cell := rr[i]
			if n, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err == nil {
				row[col] = n
			} else {
				row[col] = cell
			}
		}
		rows = append(rows, row)
	}

	return models.Sheet{
		SheetName:      name,
		Columns:        columns,
		Rows:           rows,
		Shape:          [2]int{len(rows), len(columns)},
		NumericColumns: detectNumericColumns(columns, rows),
	}
}

// detectNumericColumns returns the columns where at least numericThreshold
// of the non-empty values parse as numbers.
func detectNumericColumns(columns []string, rows []models.Row) []string {
	numeric := []string{}
	for _, col := range columns {
		if isColumnNumeric(col, rows) {
			numeric = append(numeric, col)
		}
	}
	return numeric
}

func isColumnNumeric(column string, rows []models.Row) bool {
	numericCount := 0
	totalCount := 0
	for _, row := range rows {
		v, ok := row[column]
		if !ok || v == nil {
			continue
		}
		totalCount++
		switch t := v.(type) {
		case float64:
			numericCount++
		case string:
			if _, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
				numericCount++
			}
		}
	}
	if totalCount == 0 {
		return false
	}
	return float64(numericCount)/float64(totalCount) >= numericThreshold
}
