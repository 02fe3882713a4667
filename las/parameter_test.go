package las

import (
	"errors"
	"testing"

	"github.com/sergiomr04/petrolog/model"
)

func TestParseParameter(t *testing.T) {
	tests := []struct {
		name string
		line string
		want model.Parameter
	}{
		{
			name: "version declaration without unit",
			line: "VERS.                 2.0 : CWLS log ASCII Standard",
			want: model.Parameter{
				Name:        "VERS",
				Value:       "2.0",
				AltValue:    "CWLS",
				Description: "CWLS log ASCII Standard",
			},
		},
		{
			name: "wrap declaration",
			line: "WRAP.                  NO : Single line per depth",
			want: model.Parameter{
				Name:        "WRAP",
				Value:       "NO",
				AltValue:    "Single",
				Description: "Single line per depth",
			},
		},
		{
			name: "unit attached to the dot",
			line: "STRT.M              1670.0 : START DEPTH",
			want: model.Parameter{
				Name:        "STRT",
				Unit:        "M",
				Value:       "1670.0",
				AltValue:    "START",
				Description: "START DEPTH",
			},
		},
		{
			name: "value only in description",
			line: "NULL.                     : -999.25",
			want: model.Parameter{
				Name:        "NULL",
				AltValue:    "-999.25",
				Description: "-999.25",
			},
		},
		{
			name: "multi token value",
			line: "SRVC.     SCHLUMBERGER WIRELINE : SERVICE COMPANY",
			want: model.Parameter{
				Name:        "SRVC",
				Value:       "SCHLUMBERGER WIRELINE",
				AltValue:    "SERVICE",
				Description: "SERVICE COMPANY",
			},
		},
		{
			name: "mnemonic with trailing space before dot",
			line: "UWI .     42-303-32104 : UNIQUE WELL ID",
			want: model.Parameter{
				Name:        "UWI",
				Value:       "42-303-32104",
				AltValue:    "UNIQUE",
				Description: "UNIQUE WELL ID",
			},
		},
		{
			name: "no description delimiter",
			line: "STOP.M              1669.75",
			want: model.Parameter{
				Name:  "STOP",
				Unit:  "M",
				Value: "1669.75",
			},
		},
		{
			name: "no dot at all",
			line: "PROPRIETARY",
			want: model.Parameter{
				Name: "PROPRIETARY",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseParameter(tt.line)
			if err != nil {
				t.Fatalf("ParseParameter(%q) returned error: %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("ParseParameter(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseParameter_NoMnemonic(t *testing.T) {
	for _, line := range []string{"", "   ", ".", "  . 2.0 : no mnemonic"} {
		_, err := ParseParameter(line)
		if !errors.Is(err, ErrMalformedParameterLine) {
			t.Errorf("ParseParameter(%q) error = %v, want ErrMalformedParameterLine", line, err)
		}
	}
}
