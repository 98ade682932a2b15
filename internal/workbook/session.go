// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package workbook manages the interactive edit session over a structured
// workbook: one pending cell edit at a time, copy-on-write commits, and
// sheet navigation. It also provides local spreadsheet extraction for
// offline use.
package workbook

import (
	"fmt"

	apperr "contascan/cli/internal/errors"
	"contascan/cli/internal/models"
)

// EditTarget identifies the cell currently being edited. At most one target
// is live at a time; it is cleared on commit or cancel.
type EditTarget struct {
	SheetIndex int
	RowIndex   int
	Column     string
}

// Session holds the editable dataset and the edit state machine. Commits
// replace the dataset with a deep copy carrying the change; the previous
// copy is never mutated, so references handed out earlier stay intact.
type Session struct {
	wb     *models.StructuredWorkbook
	active int
	target *EditTarget
	buffer string
	edits  []EditTarget // committed cells, in commit order
}

// NewSession starts an edit session over the given dataset.
func NewSession(wb *models.StructuredWorkbook) *Session {
	return &Session{wb: wb}
}

// Workbook returns the current dataset. Callers must treat it as read-only.
func (s *Session) Workbook() *models.StructuredWorkbook { return s.wb }

// ActiveSheet returns the index of the sheet currently displayed.
func (s *Session) ActiveSheet() int { return s.active }

// Target returns the pending edit target, or nil when idle.
func (s *Session) Target() *EditTarget { return s.target }

// Buffer returns the working value of the pending edit.
func (s *Session) Buffer() string { return s.buffer }

// CommittedEdits returns the cells committed so far, in order.
func (s *Session) CommittedEdits() []EditTarget { return s.edits }

// sheet returns the active sheet, or nil when the workbook has none.
func (s *Session) sheet() *models.Sheet {
	if s.active < 0 || s.active >= len(s.wb.Sheets) {
		return nil
	}
	return &s.wb.Sheets[s.active]
}

// Begin starts editing cell (row, column) on the active sheet and seeds the
// working buffer with the cell's current value (empty when null or absent).
// A pending edit is committed first, matching the commit-on-blur rule of
// starting a new edit elsewhere.
func (s *Session) Begin(row int, column string) error {
	sh := s.sheet()
	if sh == nil {
		return apperr.New(apperr.Validation, "the workbook has no sheets")
	}
	if row < 0 || row >= len(sh.Rows) {
		return apperr.New(apperr.Validation,
			fmt.Sprintf("row %d is out of range (sheet has %d rows)", row+1, len(sh.Rows)))
	}
	if !hasColumn(sh, column) {
		return apperr.New(apperr.Validation,
			fmt.Sprintf("sheet %q has no column %q", sh.SheetName, column))
	}
	if s.target != nil {
		s.Commit()
	}
	s.target = &EditTarget{SheetIndex: s.active, RowIndex: row, Column: column}
	s.buffer = models.CellString(sh.Rows[row][column])
	return nil
}

// SetBuffer replaces the working value of the pending edit.
func (s *Session) SetBuffer(v string) {
	if s.target != nil {
		s.buffer = v
	}
}

// Commit writes the working buffer into a new copy of the dataset at the
// target cell and replaces the held dataset with that copy. An empty buffer
// commits as null. Committing with no pending edit is a no-op.
func (s *Session) Commit() {
	t := s.target
	if t == nil {
		return
	}
	next := s.wb.Clone()
	var value any
	if s.buffer != "" {
		value = s.buffer
	}
	next.Sheets[t.SheetIndex].Rows[t.RowIndex][t.Column] = value
	s.wb = next
	s.edits = append(s.edits, *t)
	s.target = nil
	s.buffer = ""
}

// Cancel discards the working buffer and clears the target. The dataset is
// untouched.
func (s *Session) Cancel() {
	s.target = nil
	s.buffer = ""
}

// SetActiveSheet navigates to the given sheet. A pending edit on the sheet
// being navigated away from is committed first; the commit-on-blur rule
// applies to sheet switches the same as to starting another edit.
func (s *Session) SetActiveSheet(i int) error {
	if i < 0 || i >= len(s.wb.Sheets) {
		return apperr.New(apperr.Validation,
			fmt.Sprintf("sheet %d is out of range (workbook has %d sheets)", i+1, len(s.wb.Sheets)))
	}
	if s.target != nil && s.target.SheetIndex != i {
		s.Commit()
	}
	s.active = i
	return nil
}

func hasColumn(sh *models.Sheet, column string) bool {
	for _, c := range sh.Columns {
		if c == column {
			return true
		}
	}
	return false
}
