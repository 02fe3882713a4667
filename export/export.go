// Package export writes parsed well-log documents to tabular file formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sergiomr04/petrolog/model"
)

// Format defines the available export formats.
type Format int

const (
	// FormatCSV exports as comma-separated values.
	FormatCSV Format = iota
	// FormatTSV exports as tab-separated values.
	FormatTSV
	// FormatXLSX exports as an Excel workbook with a curve-data sheet and
	// a well-header sheet.
	FormatXLSX
)

// String returns a human-readable representation of the export format.
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatTSV:
		return "tsv"
	case FormatXLSX:
		return "xlsx"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format.
func (f Format) FileExtension() string {
	switch f {
	case FormatCSV:
		return ".csv"
	case FormatTSV:
		return ".tsv"
	case FormatXLSX:
		return ".xlsx"
	default:
		return ".txt"
	}
}

// DetectFormat determines the export format from a filename extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".tsv":
		return FormatTSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return FormatCSV, fmt.Errorf("unsupported export extension %q", filepath.Ext(path))
	}
}

// Write writes the document's curve table to w in the given format.
func Write(w io.Writer, doc *model.Document, f Format) error {
	switch f {
	case FormatCSV:
		return writeDelimited(w, doc.Curves, ',')
	case FormatTSV:
		return writeDelimited(w, doc.Curves, '\t')
	case FormatXLSX:
		return writeXLSX(w, doc)
	default:
		return fmt.Errorf("unsupported export format %v", f)
	}
}

// WriteFile writes the document to path, inferring the format from the
// file extension.
func WriteFile(path string, doc *model.Document) error {
	f, err := DetectFormat(path)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}

	if err := Write(out, doc, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writeDelimited(w io.Writer, table *model.CurveTable, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma

	if err := cw.Write(table.Columns); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing data row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

const (
	curveSheet  = "Curves"
	headerSheet = "Header"
)

func writeXLSX(w io.Writer, doc *model.Document) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", curveSheet); err != nil {
		return fmt.Errorf("renaming curve sheet: %w", err)
	}

	header := make([]interface{}, len(doc.Curves.Columns))
	for j, c := range doc.Curves.Columns {
		header[j] = c
	}
	if err := f.SetSheetRow(curveSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing curve header: %w", err)
	}

	for i, row := range doc.Curves.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(curveSheet, cell, &values); err != nil {
			return fmt.Errorf("writing curve row %d: %w", i, err)
		}
	}

	if err := writeHeaderSheet(f, doc); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// writeHeaderSheet adds a sheet listing the well-section parameters plus
// the resolved identifier and null sentinel.
func writeHeaderSheet(f *excelize.File, doc *model.Document) error {
	if _, err := f.NewSheet(headerSheet); err != nil {
		return fmt.Errorf("adding header sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Mnemonic", "Unit", "Value", "Description"},
	}
	for _, name := range doc.Well.Names() {
		p, _ := doc.Well.Get(name)
		value := p.Value
		if value == "" {
			value = p.AltValue
		}
		rows = append(rows, []interface{}{p.Name, p.Unit, value, p.Description})
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"UWI", "", doc.UWI, "resolved unique well identifier"},
		[]interface{}{"NULL", "", doc.Null, "resolved null sentinel"},
	)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(headerSheet, cell, &row); err != nil {
			return fmt.Errorf("writing header sheet row %d: %w", i, err)
		}
	}
	return nil
}
