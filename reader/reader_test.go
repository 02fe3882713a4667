package reader

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead_LineEndings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "unix",
			input: "~VERSION\nVERS. 2.0 :\n",
			want:  []string{"~VERSION", "VERS. 2.0 :"},
		},
		{
			name:  "windows",
			input: "~VERSION\r\nVERS. 2.0 :\r\n",
			want:  []string{"~VERSION", "VERS. 2.0 :"},
		},
		{
			name:  "classic mac",
			input: "~VERSION\rVERS. 2.0 :\r",
			want:  []string{"~VERSION", "VERS. 2.0 :"},
		},
		{
			name:  "trailing blank lines dropped",
			input: "~A\n1670.0\n\n   \n",
			want:  []string{"~A", "1670.0"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input), EncodingAuto)
			if err != nil {
				t.Fatalf("Read returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Read = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRead_StripsUTF8BOM(t *testing.T) {
	input := "\xEF\xBB\xBF~VERSION\n"
	got, err := Read(strings.NewReader(input), EncodingAuto)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if len(got) != 1 || got[0] != "~VERSION" {
		t.Errorf("Read = %q, want [~VERSION]", got)
	}
}

func TestRead_Windows1252Fallback(t *testing.T) {
	// 0xB0 is the degree sign in Windows-1252 and invalid as UTF-8.
	input := "~WELL\nBHT .\xB0F  90.0 : BOTTOM HOLE TEMP\n"
	got, err := Read(strings.NewReader(input), EncodingAuto)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if len(got) != 2 || !strings.Contains(got[1], "°F") {
		t.Errorf("Read = %q, want degree sign decoded", got)
	}
}

func TestRead_ForcedEncodings(t *testing.T) {
	// 0xC3 0xA9 is 'é' in UTF-8 but 'Ã©' when forced to Windows-1252.
	input := "COMP. P\xC3\xA9trel : COMPANY\n"

	utf, err := Read(strings.NewReader(input), EncodingUTF8)
	if err != nil {
		t.Fatalf("Read utf-8 returned error: %v", err)
	}
	if !strings.Contains(utf[0], "Pétrel") {
		t.Errorf("utf-8 decode = %q", utf[0])
	}

	win, err := Read(strings.NewReader(input), EncodingWindows1252)
	if err != nil {
		t.Fatalf("Read windows-1252 returned error: %v", err)
	}
	if !strings.Contains(win[0], "PÃ©trel") {
		t.Errorf("windows-1252 decode = %q", win[0])
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "well.las")
	if err := os.WriteFile(path, []byte("~VERSION\nVERS. 2.0 :\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path, EncodingAuto)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("ReadFile = %q, want 2 lines", got)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.las"), EncodingAuto); err == nil {
		t.Error("ReadFile on a missing path should fail")
	}
}

func TestEncoding_String(t *testing.T) {
	if EncodingAuto.String() != "auto" || EncodingUTF8.String() != "utf-8" || EncodingWindows1252.String() != "windows-1252" {
		t.Error("Encoding.String mismatch")
	}
}
