package deck

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestInches(t *testing.T) {
	tests := []struct {
		in   float64
		want Emu
	}{
		{0, 0},
		{1, 914400},
		{7.5, 6858000},
		{13.333, 12191695},
		{0.015, 13716},
	}

	for _, tt := range tests {
		if got := Inches(tt.in); got != tt.want {
			t.Errorf("Inches(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestInchesRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		milli := rapid.IntRange(0, 100000).Draw(t, "milli")
		in := float64(milli) / 1000

		back := Inches(in).Inches()
		if math.Abs(back-in) > 1.0/EmuPerInch {
			t.Fatalf("round trip drifted: %v -> %v", in, back)
		}
	})
}

func TestPt(t *testing.T) {
	if Pt(18) != 1800 {
		t.Errorf("Pt(18) = %d", Pt(18))
	}
	if Pt(13).Points() != 13 {
		t.Errorf("Points() = %v", Pt(13).Points())
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#0F0F19", RGB(15, 15, 25), false},
		{"8a2be2", RGB(138, 43, 226), false},
		{"blueviolet", RGB(138, 43, 226), false},
		{" White ", RGB(255, 255, 255), false},
		{"", Color{}, true},
		{"#12345", Color{}, true},
		{"#GG0000", Color{}, true},
		{"not-a-color", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := RGB(
			uint8(rapid.IntRange(0, 255).Draw(t, "r")),
			uint8(rapid.IntRange(0, 255).Draw(t, "g")),
			uint8(rapid.IntRange(0, 255).Draw(t, "b")),
		)

		got, err := ParseColor(c.String())
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", c.String(), err)
		}
		if got != c {
			t.Fatalf("expected %v, got %v", c, got)
		}
		if len(c.Hex()) != 6 {
			t.Fatalf("hex should be 6 digits: %q", c.Hex())
		}
	})
}
