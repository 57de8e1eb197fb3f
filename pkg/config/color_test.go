package config

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#e63946", color.RGBA{R: 0xe6, G: 0x39, B: 0x46, A: 0xff}, false},
		{"2a9d8f", color.RGBA{R: 0x2a, G: 0x9d, B: 0x8f, A: 0xff}, false},
		{" #ffffff80 ", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}, false},
		{"#fff", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatHexColor(t *testing.T) {
	if got := FormatHexColor(color.RGBA{R: 0x45, G: 0x7b, B: 0x9d, A: 0xff}); got != "#457b9d" {
		t.Errorf("FormatHexColor() = %q, want #457b9d", got)
	}
}
