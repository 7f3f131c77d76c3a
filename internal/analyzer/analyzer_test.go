package analyzer

import (
	"math"
	"strings"
	"testing"

	"github.com/megaagentai/pitchdeck/internal/deck"
	"github.com/megaagentai/pitchdeck/internal/pitch"
)

func textBox(s *deck.Slide, x, y, w, h float64, text string, size float64, wrap bool) *deck.Shape {
	tb := s.AddTextBox(deck.Inches(x), deck.Inches(y), deck.Inches(w), deck.Inches(h))
	tb.Text.WordWrap = wrap
	p := tb.Text.First()
	p.Text = text
	p.Font.Size = deck.Pt(size)
	return tb
}

func TestBoundsChecker(t *testing.T) {
	d := deck.New(deck.Inches(10), deck.Inches(5))
	s := d.AddSlide()
	s.AddShape(deck.Rectangle, 0, 0, d.Width, d.Height)
	s.AddShape(deck.Rectangle, deck.Inches(9), deck.Inches(1), deck.Inches(2), deck.Inches(1))
	s.AddShape(deck.RoundedRectangle, deck.Inches(-0.5), 0, deck.Inches(1), deck.Inches(1))

	issues := NewBoundsChecker().Check(d)
	if len(issues) != 2 {
		t.Fatalf("Expected 2 issues, got %d: %v", len(issues), issues)
	}
	if issues[0].Shape != "Rectangle 2" || issues[0].Slide != 1 || issues[0].Kind != "bounds" {
		t.Errorf("unexpected first issue: %+v", issues[0])
	}
	if issues[1].Shape != "Rounded Rectangle 3" {
		t.Errorf("unexpected second issue: %+v", issues[1])
	}
}

func TestOverflowChecker(t *testing.T) {
	d := deck.New(deck.Inches(10), deck.Inches(5))
	s := d.AddSlide()
	textBox(s, 0, 0, 4, 0.4, "short", 14, true)
	textBox(s, 0, 1, 1, 0.3, strings.Repeat("overflowing words ", 10), 12, true) // grows to fit
	textBox(s, 0, 2, 1, 0.3, strings.Repeat("unwrapped ", 10), 12, false)
	textBox(s, 0, 3, 1, 2, strings.Repeat("tall ", 8), 12, true)

	card := s.AddShape(deck.RoundedRectangle, 0, deck.Inches(4), deck.Inches(1), deck.Inches(0.3))
	p := card.TextFrame().First()
	p.Text = strings.Repeat("overflowing words ", 10)
	p.Font.Size = deck.Pt(12)

	label := s.AddShape(deck.RoundedRectangle, deck.Inches(2), deck.Inches(4), deck.Inches(2.3), deck.Inches(0.6))
	p = label.TextFrame().First()
	p.Text = "Stanford"
	p.Font.Size = deck.Pt(18)

	issues := NewOverflowChecker().Check(d)
	if len(issues) != 2 {
		t.Fatalf("Expected 2 issues, got %d: %v", len(issues), issues)
	}
	if issues[0].Shape != "TextBox 3" || issues[0].Kind != "overflow" ||
		!strings.Contains(issues[0].Message, "wide") {
		t.Errorf("unexpected first issue: %+v", issues[0])
	}
	if issues[1].Shape != "Rounded Rectangle 5" || !strings.Contains(issues[1].Message, "lines") {
		t.Errorf("unexpected second issue: %+v", issues[1])
	}
}

func TestPitchHasNoOverflow(t *testing.T) {
	opts := pitch.DefaultOptions()
	opts.QRURL = "https://megaagentai.com"
	d, err := pitch.Build(opts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if issues := NewOverflowChecker().Check(d); len(issues) != 0 {
		t.Errorf("stock deck reports overflow: %v", issues)
	}
}

func TestTextWidth(t *testing.T) {
	c := NewOverflowChecker()

	// 7px advance on a 13px face: at 13pt every glyph is 7pt wide
	if got := c.TextWidth("abcd", 13); math.Abs(got-28) > 1e-9 {
		t.Errorf("TextWidth = %v, want 28", got)
	}
	if got := c.TextWidth("abcd", 26); math.Abs(got-56) > 1e-9 {
		t.Errorf("TextWidth = %v, want 56", got)
	}
	if c.TextWidth("", 20) != 0 {
		t.Error("empty text should have zero width")
	}
}

func TestPitchStaysOnPage(t *testing.T) {
	d, err := pitch.Build(pitch.DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if issues := NewBoundsChecker().Check(d); len(issues) != 0 {
		t.Errorf("pitch has shapes off the page: %v", issues)
	}
}

func TestCheckerRegistry(t *testing.T) {
	tests := []struct {
		variant string
		wantErr bool
	}{
		{"bounds", false},
		{"overflow", false},
		{"all", false},
		{"", false}, // default
		{"contrast", true},
		{"invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			checker, err := NewChecker(tt.variant)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if checker == nil {
					t.Error("Expected checker, got nil")
				}
			}
		})
	}
}

func TestAllRunsEveryCheck(t *testing.T) {
	d := deck.New(deck.Inches(10), deck.Inches(5))
	s := d.AddSlide()
	textBox(s, 9.5, 0, 1, 0.3, strings.Repeat("overflowing words ", 10), 12, false)

	c, err := NewChecker("all")
	if err != nil {
		t.Fatal(err)
	}
	issues := c.Check(d)
	if len(issues) != 2 || issues[0].Kind != "bounds" || issues[1].Kind != "overflow" {
		t.Errorf("unexpected issues: %v", issues)
	}
}
