package las

import (
	"errors"
	"reflect"
	"testing"
)

func TestReconstruct_Unwrapped(t *testing.T) {
	raw := []string{
		"1670.0   92.5   2.35",
		"1670.5   94.1   2.34",
		"1671.0   95.0   2.33",
	}

	rows, err := reconstruct(raw, false, 3)
	if err != nil {
		t.Fatalf("reconstruct returned error: %v", err)
	}
	if len(rows) != len(raw) {
		t.Fatalf("got %d rows, want %d (one per line)", len(rows), len(raw))
	}
	for i, row := range rows {
		if len(row) != 3 {
			t.Errorf("row %d has %d values, want 3", i, len(row))
		}
	}
	if !reflect.DeepEqual(rows[0], []string{"1670.0", "92.5", "2.35"}) {
		t.Errorf("row 0 = %v", rows[0])
	}
}

func TestReconstruct_UnwrappedWidthMismatch(t *testing.T) {
	raw := []string{
		"1670.0   92.5   2.35",
		"1670.5   94.1",
	}

	_, err := reconstruct(raw, false, 3)
	if !errors.Is(err, ErrInconsistentWrapLayout) {
		t.Fatalf("error = %v, want ErrInconsistentWrapLayout", err)
	}
}

// Three distinct row lengths: the partial continuation line is wider than
// one token, so every single-token line is a depth marker.
func TestReconstruct_WrappedThreeLengthClasses(t *testing.T) {
	raw := []string{
		"1670.0",
		"12.1  13.2  14.3  15.4",
		"16.5  17.6",
		"1670.5",
		"22.1  23.2  24.3  25.4",
		"26.5  27.6",
	}

	rows, err := reconstruct(raw, true, 7)
	if err != nil {
		t.Fatalf("reconstruct returned error: %v", err)
	}
	// One reconstructed row per single-token line.
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	want := []string{"1670.0", "12.1", "13.2", "14.3", "15.4", "16.5", "17.6"}
	if !reflect.DeepEqual(rows[0], want) {
		t.Errorf("row 0 = %v, want %v", rows[0], want)
	}
	if rows[1][0] != "1670.5" || rows[1][6] != "27.6" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

// Two distinct row lengths: the partial continuation line carries exactly
// one token, so the single-token lines alternate depth / continuation and
// only every second one is a depth marker.
func TestReconstruct_WrappedTwoLengthClasses(t *testing.T) {
	raw := []string{
		"1670.0",
		"12.1  13.2  14.3  15.4",
		"16.5",
		"1670.5",
		"22.1  23.2  24.3  25.4",
		"26.5",
	}

	rows, err := reconstruct(raw, true, 6)
	if err != nil {
		t.Fatalf("reconstruct returned error: %v", err)
	}
	// Four single-token lines, half of them depth markers.
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	want := []string{"1670.0", "12.1", "13.2", "14.3", "15.4", "16.5"}
	if !reflect.DeepEqual(rows[0], want) {
		t.Errorf("row 0 = %v, want %v", rows[0], want)
	}
	if rows[1][0] != "1670.5" || rows[1][5] != "26.5" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestReconstruct_WrappedBlankLinesIgnored(t *testing.T) {
	raw := []string{
		"1670.0",
		"12.1  13.2  14.3  15.4",
		"16.5  17.6",
		"",
		"1670.5",
		"22.1  23.2  24.3  25.4",
		"26.5  27.6",
	}

	rows, err := reconstruct(raw, true, 7)
	if err != nil {
		t.Fatalf("reconstruct returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
}

func TestReconstruct_InconsistentLayout(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
	}{
		{
			name: "four distinct row lengths",
			raw: []string{
				"1670.0",
				"12.1  13.2  14.3  15.4",
				"16.5  17.6",
				"18.1  19.2  20.3",
			},
		},
		{
			name: "uniform row length in wrap mode",
			raw: []string{
				"1670.0  92.5  2.35",
				"1670.5  94.1  2.34",
			},
		},
		{
			name: "single depth step",
			raw: []string{
				"1670.0",
				"12.1  13.2",
				"14.3",
			},
		},
		{
			name: "reconstructed width does not match curve count",
			raw: []string{
				"1670.0",
				"12.1  13.2  14.3  15.4",
				"16.5  17.6",
				"1670.5",
				"22.1  23.2  24.3  25.4",
				"26.5  27.6",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reconstruct(tt.raw, true, 9)
			if !errors.Is(err, ErrInconsistentWrapLayout) {
				t.Errorf("error = %v, want ErrInconsistentWrapLayout", err)
			}
		})
	}
}
