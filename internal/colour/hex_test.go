package colour

import (
	"slices"
	"strings"
	"testing"
)

func TestFindHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "single", input: "#FF0000", want: []string{"#FF0000"}},
		{name: "lower case", input: "#00ff00", want: []string{"#00ff00"}},
		{name: "multiple", input: "fore:#ff0000,back:#00FF00", want: []string{"#ff0000", "#00FF00"}},
		{name: "repeated", input: "#abcdef #abcdef", want: []string{"#abcdef", "#abcdef"}},
		{name: "unanchored prefix", input: "notacolor#1234567", want: []string{"#123456"}},
		{name: "too short", input: "#fff", want: nil},
		{name: "non hex", input: "#GGGGGG", want: nil},
		{name: "no literal", input: "bold,italics", want: nil},
		{name: "adjacent", input: "#111111#222222", want: []string{"#111111", "#222222"}},
		{name: "empty", input: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindHex(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("FindHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormaliseHex(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"#abc123", "#ABC123"},
		{"#ABC123", "#ABC123"},
		{"#AbCdEf", "#ABCDEF"},
	}

	for _, tt := range tests {
		if got := NormaliseHex(tt.input); got != tt.want {
			t.Errorf("NormaliseHex(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		input   string
		want    RGB
		wantErr bool
	}{
		{input: "#FF8000", want: RGB{R: 255, G: 128, B: 0}},
		{input: "1a2b3c", want: RGB{R: 0x1a, G: 0x2b, B: 0x3c}},
		{input: "#fff", wantErr: true},
		{input: "#zz0000", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHex(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHex(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestSwatch(t *testing.T) {
	s := Swatch(RGB{R: 255}, 0)
	if !strings.HasPrefix(s, "\033[48;2;255;0;0m") {
		t.Errorf("Swatch missing background escape: %q", s)
	}
	if !strings.HasSuffix(s, ansiReset) {
		t.Errorf("Swatch missing reset: %q", s)
	}
	if strings.Count(s, " ") != SwatchWidth {
		t.Errorf("Swatch width = %d, want %d", strings.Count(s, " "), SwatchWidth)
	}
}
