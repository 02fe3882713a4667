package las

import (
	"fmt"
	"strings"
)

// reconstruct converts the raw data-block lines into a rectangular row
// matrix, one row per depth sample, with wantCols columns.
//
// In wrap mode a logical row is split across physical lines, and the only
// disambiguation signal is the pattern of per-line token counts:
//
//   - three distinct counts: continuation lines end with a partial line,
//     so every single-token line is a genuine depth marker;
//   - two distinct counts: the partial line itself carries exactly one
//     token and is indistinguishable from a depth marker by width alone,
//     so only every second single-token line is a depth marker.
//
// Any other pattern fails with ErrInconsistentWrapLayout, as does a row
// that does not come out at wantCols values.
func reconstruct(rawLines []string, wrapped bool, wantCols int) ([][]string, error) {
	tokenized := make([][]string, 0, len(rawLines))
	for _, line := range rawLines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		tokenized = append(tokenized, fields)
	}

	if !wrapped {
		for i, row := range tokenized {
			if len(row) != wantCols {
				return nil, fmt.Errorf("%w: row %d has %d values, want %d",
					ErrInconsistentWrapLayout, i, len(row), wantCols)
			}
		}
		return tokenized, nil
	}

	markers, err := depthMarkers(tokenized)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(markers))
	for i, m := range markers {
		end := len(tokenized)
		if i+1 < len(markers) {
			end = markers[i+1]
		}
		row := append([]string(nil), tokenized[m]...)
		for _, cont := range tokenized[m+1 : end] {
			row = append(row, cont...)
		}
		rows = append(rows, row)
	}

	for i, row := range rows {
		if len(row) != wantCols {
			return nil, fmt.Errorf("%w: depth step %d has %d values, want %d",
				ErrInconsistentWrapLayout, i, len(row), wantCols)
		}
	}
	return rows, nil
}

// depthMarkers selects the indices of the tokenized lines carrying a depth
// value, based on how many distinct token counts appear in the block.
func depthMarkers(tokenized [][]string) ([]int, error) {
	distinct := make(map[int]struct{})
	var singles []int
	for i, row := range tokenized {
		distinct[len(row)] = struct{}{}
		if len(row) == 1 {
			singles = append(singles, i)
		}
	}

	var markers []int
	switch len(distinct) {
	case 3:
		markers = singles
	case 2:
		// The single-token lines alternate depth marker / one-token
		// continuation; keep every second one starting from the first.
		for i := 0; i < len(singles); i += 2 {
			markers = append(markers, singles[i])
		}
	default:
		return nil, fmt.Errorf("%w: %d distinct row lengths", ErrInconsistentWrapLayout, len(distinct))
	}

	if len(markers) < 2 {
		return nil, fmt.Errorf("%w: need at least two depth steps, got %d",
			ErrInconsistentWrapLayout, len(markers))
	}
	return markers, nil
}
