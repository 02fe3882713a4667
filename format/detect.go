// Package format provides file format detection for the petrolog library.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported well-log file format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// LAS indicates a Log ASCII Standard file.
	LAS
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case LAS:
		return "LAS"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case LAS:
		return ".las"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".las":
		return LAS
	default:
		return Unknown
	}
}

// DetectFromMagic checks file content to determine format. This is more
// reliable than extension-based detection: a LAS file opens with comment
// lines ('#') and/or a section tag ('~'), usually ~VERSION. Returns
// Unknown if the content cannot be identified.
func DetectFromMagic(data []byte) Format {
	for _, line := range bytes.Split(data, []byte("\n")) {
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) == 0 || trimmed[0] == '#' {
			continue
		}
		if trimmed[0] == '~' {
			return LAS
		}
		return Unknown
	}
	return Unknown
}
