// Package reader handles file intake for the petrolog library.
//
// It reads a whole LAS file into memory, normalizes its character encoding
// and line endings, and hands the parser a slice of lines. Vendor LAS
// exports are frequently Windows-1252 rather than UTF-8 (degree signs and
// accented names in header descriptions), so content that is not valid
// UTF-8 is decoded as Windows-1252 unless an encoding is forced.
//
// Parsing itself lives in the las package; this package is deliberately
// thin plumbing so the parser can stay a pure function of lines.
package reader
