// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package models

import "testing"

func TestCloneIsDeep(t *testing.T) {
	wb := &StructuredWorkbook{
		Filename: "ventas.xlsx",
		Sheets: []Sheet{{
			SheetName:      "Ventas",
			Columns:        []string{"Producto", "Total"},
			Rows:           []Row{{"Producto": "A", "Total": float64(8505)}},
			Shape:          [2]int{1, 2},
			NumericColumns: []string{"Total"},
		}},
	}

	cp := wb.Clone()
	cp.Sheets[0].Rows[0]["Total"] = float64(9000)
	cp.Sheets[0].Columns[0] = "Changed"
	cp.Sheets[0].NumericColumns[0] = "Changed"

	if wb.Sheets[0].Rows[0]["Total"] != float64(8505) {
		t.Errorf("original row mutated: %v", wb.Sheets[0].Rows[0]["Total"])
	}
	if wb.Sheets[0].Columns[0] != "Producto" {
		t.Errorf("original columns mutated: %v", wb.Sheets[0].Columns)
	}
	if wb.Sheets[0].NumericColumns[0] != "Total" {
		t.Errorf("original numeric columns mutated: %v", wb.Sheets[0].NumericColumns)
	}
}

func TestCellString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "string", in: "hola", want: "hola"},
		{name: "whole float", in: float64(8505), want: "8505"},
		{name: "fractional float", in: 12.5, want: "12.5"},
		{name: "bool", in: true, want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CellString(tt.in); got != tt.want {
				t.Errorf("CellString(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsNumeric(t *testing.T) {
	s := Sheet{NumericColumns: []string{"Total"}}
	if !s.IsNumeric("Total") {
		t.Error("Total not reported numeric")
	}
	if s.IsNumeric("Producto") {
		t.Error("Producto reported numeric")
	}
}
