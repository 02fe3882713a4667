package model

import (
	"math"
	"strconv"
	"strings"
)

// CurveTable holds the numeric log data: one row per depth sample, one
// column per curve mnemonic. Columns correspond 1:1 and in order to the
// curve section's mnemonic sequence.
type CurveTable struct {
	Columns []string
	Rows    [][]float64
}

// NewCurveTable creates an empty table with the given column mnemonics.
func NewCurveTable(columns []string) *CurveTable {
	return &CurveTable{
		Columns: columns,
		Rows:    make([][]float64, 0),
	}
}

// RowCount returns the number of depth samples.
func (t *CurveTable) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of curves.
func (t *CurveTable) ColCount() int {
	return len(t.Columns)
}

// ColumnIndex returns the position of the given mnemonic, or -1.
func (t *CurveTable) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns a copy of the values for the given mnemonic, or nil if the
// mnemonic is not a column.
func (t *CurveTable) Column(name string) []float64 {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out
}

// Row returns the values at the given sample index (0-indexed), or nil if
// out of bounds.
func (t *CurveTable) Row(i int) []float64 {
	if i < 0 || i >= len(t.Rows) {
		return nil
	}
	return t.Rows[i]
}

// Value returns the cell at the given row and column and whether the
// indices are in bounds.
func (t *CurveTable) Value(row, col int) (float64, bool) {
	if row < 0 || row >= len(t.Rows) {
		return 0, false
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return 0, false
	}
	return t.Rows[row][col], true
}

// ReplaceNull returns a copy of the table with every occurrence of the
// given null sentinel replaced by NaN. Downstream calculations treat
// missing samples as NaN rather than a magic number.
func (t *CurveTable) ReplaceNull(null float64) *CurveTable {
	out := &CurveTable{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]float64, len(t.Rows)),
	}
	for i, row := range t.Rows {
		newRow := make([]float64, len(row))
		for j, v := range row {
			if v == null {
				newRow[j] = math.NaN()
			} else {
				newRow[j] = v
			}
		}
		out.Rows[i] = newRow
	}
	return out
}

// ToCSV converts the table to CSV format with a mnemonic header row.
func (t *CurveTable) ToCSV() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(t.Columns, ","))
	sb.WriteString("\n")
	for _, row := range t.Rows {
		for j, v := range row {
			if j > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToMarkdown converts the table to markdown format.
func (t *CurveTable) ToMarkdown() string {
	if len(t.Columns) == 0 {
		return ""
	}

	var sb strings.Builder

	for _, c := range t.Columns {
		sb.WriteString("| ")
		sb.WriteString(c)
		sb.WriteString(" ")
	}
	sb.WriteString("|\n")

	for range t.Columns {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")

	for _, row := range t.Rows {
		for _, v := range row {
			sb.WriteString("| ")
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	return sb.String()
}
