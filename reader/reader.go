package reader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding selects how raw file bytes are decoded to text.
type Encoding int

const (
	// EncodingAuto decodes UTF-8 content as-is and falls back to
	// Windows-1252 when the content is not valid UTF-8.
	EncodingAuto Encoding = iota
	// EncodingUTF8 treats the content as UTF-8.
	EncodingUTF8
	// EncodingWindows1252 decodes the content as Windows-1252.
	EncodingWindows1252
)

// String returns the string representation of the encoding.
func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "utf-8"
	case EncodingWindows1252:
		return "windows-1252"
	default:
		return "auto"
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadFile reads the file at path and returns its lines.
func ReadFile(path string, enc Encoding) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening LAS file: %w", err)
	}
	defer f.Close()
	return Read(f, enc)
}

// Read reads all content from r and returns its lines. Line endings may
// be LF, CRLF, or bare CR; trailing empty lines are dropped.
func Read(r io.Reader, enc Encoding) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading LAS content: %w", err)
	}

	text, err := decode(data, enc)
	if err != nil {
		return nil, err
	}
	return splitLines(text), nil
}

// decode converts raw bytes to a string according to the encoding policy,
// stripping a UTF-8 byte order mark if present.
func decode(data []byte, enc Encoding) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	switch enc {
	case EncodingUTF8:
		return string(data), nil
	case EncodingWindows1252:
		return decodeWindows1252(data)
	default:
		if utf8.Valid(data) {
			return string(data), nil
		}
		return decodeWindows1252(data)
	}
}

func decodeWindows1252(data []byte) (string, error) {
	decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decoding Windows-1252 content: %w", err)
	}
	return string(decoded), nil
}

// splitLines splits text on line boundaries, tolerating all three ending
// conventions, and drops trailing empty lines so a final newline does not
// produce a phantom data row.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
