// Package petrolog provides a fluent API for parsing LAS (Log ASCII
// Standard) well-log files into structured documents.
//
// Basic usage:
//
//	doc, err := petrolog.Open("well.las").Document()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(doc.UWI, doc.Null)
//
// With options:
//
//	doc, err := petrolog.Open("well.las").
//	    Wrap(petrolog.WrapOn).
//	    Encoding(petrolog.EncodingWindows1252).
//	    Document()
//
// For advanced use cases, the lower-level las, reader, and model packages
// are also available.
package petrolog

import (
	"io"

	"github.com/sergiomr04/petrolog/las"
	"github.com/sergiomr04/petrolog/reader"
)

// Open prepares a LAS file for parsing and returns an Extractor for fluent
// configuration. The file is read when a terminal operation such as
// Document() is called.
//
// Example:
//
//	doc, err := petrolog.Open("well.las").Document()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultParseOptions(),
	}
}

// FromReader creates an Extractor from an already-opened reader. No format
// detection is performed; the content is assumed to be LAS. The caller
// remains responsible for closing r if it needs closing.
func FromReader(r io.Reader) *Extractor {
	return &Extractor{
		input:   r,
		options: defaultParseOptions(),
	}
}

// FromLines creates an Extractor from already-split lines, for callers
// that own their file I/O.
func FromLines(lines []string) *Extractor {
	return &Extractor{
		lines:     lines,
		haveLines: true,
		options:   defaultParseOptions(),
	}
}

// WrapMode controls how data-block wrap mode is decided; see the las
// package for the underlying semantics.
type WrapMode = las.WrapMode

const (
	// WrapAuto resolves wrap mode from the version section's WRAP parameter.
	WrapAuto = las.WrapAuto
	// WrapOn forces wrapped reconstruction.
	WrapOn = las.WrapOn
	// WrapOff forces one line per depth sample.
	WrapOff = las.WrapOff
)

// Encoding selects how raw file bytes are decoded; see the reader package.
type Encoding = reader.Encoding

const (
	// EncodingAuto decodes UTF-8 and falls back to Windows-1252.
	EncodingAuto = reader.EncodingAuto
	// EncodingUTF8 forces UTF-8.
	EncodingUTF8 = reader.EncodingUTF8
	// EncodingWindows1252 forces Windows-1252.
	EncodingWindows1252 = reader.EncodingWindows1252
)

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := petrolog.Must(petrolog.Open("well.las").Document())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
