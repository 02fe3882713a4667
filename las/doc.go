// Package las implements parsing of LAS (Log ASCII Standard) well-log
// files into the model IR.
//
// LAS is a line-oriented text format with no rigid grammar enforcement
// across vendors, so this package is built to tolerate an inconsistently
// specified input and still recover a well-formed document.
//
// # Parsing Phases
//
// A parse is a single forward pass over already-split lines:
//
//  1. Section classification - a state machine walks the header, routes
//     each line to the parameter-line parser, and hands off the raw data
//     block when the ASCII data tag is reached.
//  2. Wrap reconstruction - when the version section declares wrap mode,
//     logical rows split across physical lines are reassembled using
//     row-length patterns as the disambiguation signal.
//  3. Assembly - the row matrix is cast to a numeric table named by the
//     curve section, and the unique well identifier and null sentinel are
//     resolved from the well section's candidate fields.
//
// # Entry Point
//
// [Parse] runs all phases:
//
//	doc, err := las.Parse(lines)
//
// [ParseWithOptions] additionally allows forcing wrap mode on or off when
// the version section's WRAP declaration is wrong or absent.
//
// # Errors
//
// Failures are classified by sentinel ([ErrMalformedParameterLine],
// [ErrInconsistentWrapLayout], [ErrMissingNullValue]) or typed value
// ([CurveCastError]) so batch callers can decide per failure kind whether
// to skip a file or abort. All failures are fatal to the parse of that
// file; no partial document is returned.
package las
