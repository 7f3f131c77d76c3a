package deck

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Emu is an English Metric Unit, the coordinate unit of DrawingML.
type Emu int64

const (
	EmuPerInch  = 914400
	EmuPerPoint = 12700
)

// Inches converts a length in inches to EMU.
func Inches(in float64) Emu {
	return Emu(math.Round(in * EmuPerInch))
}

// Points converts a length in points to EMU (line widths).
func Points(pt float64) Emu {
	return Emu(math.Round(pt * EmuPerPoint))
}

// Inches returns the length back in inches.
func (e Emu) Inches() float64 {
	return float64(e) / EmuPerInch
}

// FontSize is a font size in hundredths of a point, as stored in a:rPr/@sz.
type FontSize int

// Pt returns a font size of the given number of points.
func Pt(pt float64) FontSize {
	return FontSize(math.Round(pt * 100))
}

// Points returns the size in points.
func (s FontSize) Points() float64 {
	return float64(s) / 100
}

// Color is an opaque 24-bit sRGB color.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as RRGGBB, the form a:srgbClr expects.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return "#" + c.Hex()
}

// ParseColor accepts "#RRGGBB", "RRGGBB" or an SVG color name ("blueviolet").
func ParseColor(s string) (Color, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return Color{}, fmt.Errorf("empty color")
	}

	if named, ok := colornames.Map[strings.ToLower(v)]; ok {
		return Color{R: named.R, G: named.G, B: named.B}, nil
	}

	v = strings.TrimPrefix(v, "#")
	if len(v) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want #RRGGBB or a color name", s)
	}

	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
}
