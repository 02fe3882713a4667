package las

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sergiomr04/petrolog/model"
)

// WrapMode controls how wrap mode is decided for the data block.
type WrapMode int

const (
	// WrapAuto resolves wrap mode from the version section's WRAP
	// parameter.
	WrapAuto WrapMode = iota
	// WrapOn forces wrapped reconstruction.
	WrapOn
	// WrapOff forces one line per depth sample.
	WrapOff
)

// Options adjusts parsing behavior.
type Options struct {
	// Wrap overrides wrap-mode resolution; the zero value is WrapAuto.
	Wrap WrapMode
}

// Parse parses the lines of one LAS file into a Document.
func Parse(lines []string) (*model.Document, error) {
	return ParseWithOptions(lines, Options{})
}

// ParseWithOptions parses the lines of one LAS file into a Document.
//
// On any failure no partial document is returned; the error identifies the
// failure kind via the package's sentinel and typed errors.
func ParseWithOptions(lines []string, opts Options) (*model.Document, error) {
	s, err := classify(lines)
	if err != nil {
		return nil, err
	}

	wrapped := opts.Wrap == WrapOn
	if opts.Wrap == WrapAuto {
		wrapped = wrapDeclared(s.version)
	}

	columns := s.curve.Names()
	rows, err := reconstruct(s.dataLines, wrapped, len(columns))
	if err != nil {
		return nil, err
	}

	table, err := castTable(columns, rows)
	if err != nil {
		return nil, err
	}

	null, err := resolveNull(s.well)
	if err != nil {
		return nil, err
	}

	return &model.Document{
		Version:   s.version,
		Well:      s.well,
		Params:    s.parameter,
		CurveInfo: s.curve,
		Curves:    table,
		UWI:       resolveUWI(s.well),
		Null:      null,
	}, nil
}

// wrapDeclared reports whether the version section declares wrap mode.
// Vendors put the YES in the value, the alternate value, or the
// description; any of the three counts.
func wrapDeclared(version *model.Section) bool {
	wrap, ok := version.Get("WRAP")
	if !ok {
		return false
	}
	for _, candidate := range []string{wrap.Value, wrap.AltValue, wrap.Description} {
		if strings.Contains(strings.ToUpper(candidate), "YES") {
			return true
		}
	}
	return false
}

// castTable casts every cell of the row matrix to float64, producing the
// typed curve table. A token that is not numeric is fatal.
func castTable(columns []string, rows [][]string) (*model.CurveTable, error) {
	table := model.NewCurveTable(columns)
	for i, row := range rows {
		vals := make([]float64, len(row))
		for j, tok := range row {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, &CurveCastError{Column: columns[j], Row: i, Token: tok, cause: err}
			}
			vals[j] = v
		}
		table.Rows = append(table.Rows, vals)
	}
	return table, nil
}

// uwiMnemonics is the lookup priority for the unique well identifier.
// Case variants are distinct mnemonics, not normalized.
var uwiMnemonics = []string{"UWI", "uwi", "API", "api"}

// resolveUWI resolves the unique well identifier from the well section.
// For the first mnemonic present, the candidates are tried in the order
// value, description, alternate value; a candidate whose upper-cased text
// contains WELL or UNIQUE is a column label left in place of real data and
// is skipped. Hyphens are stripped from the accepted identifier. An
// unresolvable identifier is empty, not an error.
func resolveUWI(well *model.Section) string {
	for _, mnem := range uwiMnemonics {
		p, ok := well.Get(mnem)
		if !ok {
			continue
		}
		for _, candidate := range []string{p.Value, p.Description, p.AltValue} {
			if candidate == "" {
				continue
			}
			upper := strings.ToUpper(candidate)
			if strings.Contains(upper, "WELL") || strings.Contains(upper, "UNIQUE") {
				continue
			}
			return strings.ReplaceAll(candidate, "-", "")
		}
		// Only the first present mnemonic is consulted.
		return ""
	}
	return ""
}

// resolveNull resolves the null sentinel from the well section's NULL
// (then null) parameter, taking the first non-empty of value and alternate
// value. Only the first present mnemonic is consulted.
func resolveNull(well *model.Section) (float64, error) {
	for _, mnem := range []string{"NULL", "null"} {
		p, ok := well.Get(mnem)
		if !ok {
			continue
		}
		for _, candidate := range []string{p.Value, p.AltValue} {
			if candidate == "" {
				continue
			}
			v, err := strconv.ParseFloat(candidate, 64)
			if err != nil {
				return 0, fmt.Errorf("las: parsing %s value %q: %w", mnem, candidate, err)
			}
			return v, nil
		}
		return 0, fmt.Errorf("%w: %s parameter has no value", ErrMissingNullValue, mnem)
	}
	return 0, ErrMissingNullValue
}
