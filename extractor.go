package petrolog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/sergiomr04/petrolog/format"
	"github.com/sergiomr04/petrolog/las"
	"github.com/sergiomr04/petrolog/model"
	"github.com/sergiomr04/petrolog/reader"
)

// Extractor provides a fluent interface for parsing LAS files. Each
// configuration method returns a new Extractor instance, making it safe
// for concurrent use and allowing method chaining.
type Extractor struct {
	// Source (exactly one is used)
	filename  string
	input     io.Reader
	lines     []string
	haveLines bool

	// Configuration
	options ParseOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Extractor with a copy of its options. This
// ensures immutability: each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:  e.filename,
		input:     e.input,
		lines:     e.lines,
		haveLines: e.haveLines,
		options:   e.options.clone(),
		err:       e.err,
	}
}

// Wrap overrides wrap-mode resolution for the data block.
func (e *Extractor) Wrap(mode WrapMode) *Extractor {
	ne := e.clone()
	ne.options.wrap = mode
	return ne
}

// Encoding forces the character encoding used to decode the file.
func (e *Extractor) Encoding(enc Encoding) *Extractor {
	ne := e.clone()
	ne.options.encoding = enc
	return ne
}

// Lines is a terminal operation returning the decoded, split lines of the
// input without parsing them.
func (e *Extractor) Lines() ([]string, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.haveLines {
		return e.lines, nil
	}
	if e.input != nil {
		return reader.Read(e.input, e.options.encoding)
	}

	data, err := os.ReadFile(e.filename)
	if err != nil {
		return nil, fmt.Errorf("opening LAS file: %w", err)
	}
	if format.Detect(e.filename) == format.Unknown && format.DetectFromMagic(data) == format.Unknown {
		return nil, fmt.Errorf("%s: not a LAS file", e.filename)
	}
	return reader.Read(bytes.NewReader(data), e.options.encoding)
}

// Document is a terminal operation that parses the input into a Document.
func (e *Extractor) Document() (*model.Document, error) {
	lines, err := e.Lines()
	if err != nil {
		return nil, err
	}
	return las.ParseWithOptions(lines, las.Options{Wrap: e.options.wrap})
}

// Table is a terminal operation that parses the input and returns just
// the numeric curve table.
func (e *Extractor) Table() (*model.CurveTable, error) {
	doc, err := e.Document()
	if err != nil {
		return nil, err
	}
	return doc.Curves, nil
}
