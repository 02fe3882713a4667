package las

import (
	"errors"
	"fmt"
)

// ErrMalformedParameterLine indicates a header line with no mnemonic token.
var ErrMalformedParameterLine = errors.New("las: header line has no mnemonic")

// ErrInconsistentWrapLayout indicates a wrapped data block whose row-length
// pattern matches neither supported wrap layout.
var ErrInconsistentWrapLayout = errors.New("las: inconsistent row lengths in wrapped data")

// ErrMissingNullValue indicates a well section with no usable NULL
// declaration.
var ErrMissingNullValue = errors.New("las: no NULL value declared in well section")

// CurveCastError indicates a data token that could not be parsed as a
// number. It identifies the offending cell so batch callers can report
// without re-parsing the file.
type CurveCastError struct {
	Column string // curve mnemonic
	Row    int    // 0-indexed logical row
	Token  string // the offending text
	cause  error
}

func (e *CurveCastError) Error() string {
	return fmt.Sprintf("las: curve %s row %d: cannot cast %q to float", e.Column, e.Row, e.Token)
}

func (e *CurveCastError) Unwrap() error {
	return e.cause
}
