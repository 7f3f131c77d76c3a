package analyzer

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/megaagentai/pitchdeck/internal/deck"
)

// Default text frame insets: 0.1in left/right, 0.05in top/bottom
const (
	insetX = 0.1
	insetY = 0.05
)

// OverflowChecker estimates wrapped text height with a fixed-width reference
// face scaled to the run's font size and reports frames it cannot hold.
type OverflowChecker struct {
	Face        *basicfont.Face
	LineSpacing float64 // line height as a multiple of the font size
}

func NewOverflowChecker() *OverflowChecker {
	return &OverflowChecker{
		Face:        basicfont.Face7x13,
		LineSpacing: 1.2,
	}
}

func (c *OverflowChecker) Check(d *deck.Deck) []Issue {
	var issues []Issue
	for _, s := range d.Slides {
		for _, sh := range s.Shapes {
			if sh.Text == nil {
				continue
			}
			if msg := c.overflow(sh); msg != "" {
				issues = append(issues, Issue{
					Slide:   s.Index + 1,
					Shape:   sh.Name,
					Kind:    "overflow",
					Message: msg,
				})
			}
		}
	}
	return issues
}

// overflow returns a description of the problem, or "" when the text fits.
// Text boxes are written with spAutoFit and grow to their text, so only an
// unwrapped line wider than the box is reported for them. Autoshapes keep
// their frame and wrap by default, so their text height is checked.
func (c *OverflowChecker) overflow(sh *deck.Shape) string {
	innerW := (sh.Frame.W.Inches() - 2*insetX) * 72
	innerH := (sh.Frame.H.Inches() - 2*insetY) * 72
	autoFit := sh.Kind == deck.TextBox
	wraps := sh.Text.WordWrap || !autoFit

	lines := 0
	lineHeight := 0.0
	widest := 0.0
	for _, p := range sh.Text.Paragraphs {
		size := p.Font.Size.Points()
		if size <= 0 {
			size = 18
		}
		lineHeight = math.Max(lineHeight, size*c.LineSpacing)
		width := c.TextWidth(p.Text, size)

		n := 1
		if wraps && innerW > 0 {
			n = max(1, int(math.Ceil(width/innerW)))
		} else {
			widest = math.Max(widest, width)
		}
		lines += n
	}
	if lines == 0 {
		return ""
	}

	if widest > innerW {
		return fmt.Sprintf("unwrapped text is ~%.0fpt wide, frame holds %.0fpt", widest, innerW)
	}
	if autoFit {
		return ""
	}

	fit := 1
	if lineHeight > 0 {
		fit = max(1, int(math.Floor(innerH/lineHeight)))
	}
	if lines <= fit {
		return ""
	}
	return fmt.Sprintf("text needs ~%d lines, frame holds %d", lines, fit)
}

// TextWidth estimates the width in points of text set at size points
func (c *OverflowChecker) TextWidth(text string, size float64) float64 {
	px := toFloat(font.MeasureString(c.Face, text))
	return px * size / float64(c.Face.Height)
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
