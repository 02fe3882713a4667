package las

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/sergiomr04/petrolog/model"
)

// ParseParameter parses one header line into a Parameter.
//
// The line grammar is two fixed splits:
//
//	MNEM.UNIT  VALUE : DESCRIPTION
//
// The first '.' separates the mnemonic from the remainder; within the
// remainder the first ':' separates the unit/value portion from the
// description. The unit is the token attached directly to the '.' (a
// space after the dot means no unit); the remaining fields, rejoined,
// are the value. Because vendors sometimes put the real value after the
// ':' instead, the first token of the description is kept as an alternate
// value candidate alongside the full description text.
//
// Fails with ErrMalformedParameterLine only when no mnemonic token exists;
// blank and comment lines must be filtered out before calling.
func ParseParameter(line string) (model.Parameter, error) {
	mnem, rest, _ := strings.Cut(line, ".")
	mnem = strings.TrimSpace(mnem)
	if mnem == "" {
		return model.Parameter{}, fmt.Errorf("%w: %q", ErrMalformedParameterLine, line)
	}

	p := model.Parameter{Name: mnem}

	left, right, _ := strings.Cut(rest, ":")

	fields := strings.Fields(left)
	if len(fields) > 0 {
		if startsWithSpace(left) {
			// No unit: whitespace between the '.' and the first token.
			p.Value = strings.Join(fields, " ")
		} else {
			p.Unit = fields[0]
			p.Value = strings.Join(fields[1:], " ")
		}
	}

	p.Description = strings.TrimSpace(right)
	if rf := strings.Fields(right); len(rf) > 0 {
		p.AltValue = rf[0]
	}

	return p, nil
}

func startsWithSpace(s string) bool {
	for _, r := range s {
		return unicode.IsSpace(r)
	}
	return false
}
