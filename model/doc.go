// Package model provides the intermediate representation (IR) for parsed
// LAS well-log content.
//
// This package defines the user-facing data structures produced by parsing.
// All parsing operations ultimately produce these types, making them the
// primary API for consuming well-log data.
//
// # Document Structure
//
// The [Document] type represents one fully parsed LAS file:
//
//   - four header [Section] collections (version, well, parameter, curve)
//   - a [CurveTable] holding the numeric log data, one row per depth sample
//   - the resolved unique well identifier and null-value sentinel
//
// # Sections and Parameters
//
// A [Section] is an ordered collection of [Parameter] records keyed by
// mnemonic. Order matters: the curve section's mnemonic order defines the
// column order of the curve table.
//
// Each [Parameter] carries every candidate field a vendor might have put the
// real value in (value, alternate value, description), because LAS writers
// are inconsistent about which side of the description delimiter holds data.
//
// # Curve Data
//
// The [CurveTable] type provides row/column access to the numeric data plus
// export helpers: ToCSV() and ToMarkdown().
//
// All types are constructed once during a parse and are read-only afterwards.
package model
