// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package models

import "fmt"

// Row maps a column name to a scalar cell value (string, number or nil).
// Columns missing from a row render as empty cells.
type Row map[string]any

// Sheet is one tab of a structured workbook as returned by the extract
// operation.
type Sheet struct {
	SheetName      string   `json:"sheet_name"`
	Columns        []string `json:"columns"`
	Rows           []Row    `json:"rows"`
	Shape          [2]int   `json:"shape"`
	NumericColumns []string `json:"numeric_columns"`
}

// IsNumeric reports whether the named column was detected as numeric.
func (s *Sheet) IsNumeric(column string) bool {
	for _, c := range s.NumericColumns {
		if c == column {
			return true
		}
	}
	return false
}

// StructuredWorkbook is the editable dataset extracted from a spreadsheet.
// Edits never mutate a workbook in place; they produce a full replacement
// copy via Clone, so earlier references stay valid.
type StructuredWorkbook struct {
	Filename string  `json:"filename"`
	Sheets   []Sheet `json:"sheets"`
}

// Clone returns a deep copy of the workbook. Row maps and all slices are
// copied; scalar cell values are shared, which is safe because they are
// never mutated.
func (w *StructuredWorkbook) Clone() *StructuredWorkbook {
	out := &StructuredWorkbook{
		Filename: w.Filename,
		Sheets:   make([]Sheet, len(w.Sheets)),
	}
	for i, s := range w.Sheets {
		ns := Sheet{
			SheetName:      s.SheetName,
			Columns:        append([]string(nil), s.Columns...),
			Rows:           make([]Row, len(s.Rows)),
			Shape:          s.Shape,
			NumericColumns: append([]string(nil), s.NumericColumns...),
		}
		for j, r := range s.Rows {
			nr := make(Row, len(r))
			for k, v := range r {
				nr[k] = v
			}
			ns.Rows[j] = nr
		}
		out.Sheets[i] = ns
	}
	return out
}

// CellString renders a cell value for display. Nil and missing values
// render as the empty string; float64 values that are whole numbers render
// without a decimal point, matching how the backend serializes them.
func CellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
