package pitch

import (
	"reflect"
	"slices"
	"testing"

	"github.com/megaagentai/pitchdeck/internal/deck"
)

func TestBuildSlides(t *testing.T) {
	d, err := Build(DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(d.Slides) != 2 {
		t.Fatalf("Expected 2 slides, got %d", len(d.Slides))
	}

	if d.Width != deck.Inches(13.333) || d.Height != deck.Inches(7.5) {
		t.Errorf("Unexpected page size %dx%d", d.Width, d.Height)
	}

	tests := []struct {
		slide     int
		shapes    int
		textBoxes int
		rects     int
		rounded   int
		mustHave  []string
	}{
		{0, 13, 9, 2, 2, []string{"MegaAgentAI", "Meet the Founder", "Chandra Suda", "Stanford", "xAI"}},
		{1, 49, 40, 2, 7, []string{
			"Problem · Value · Differentiation",
			"• Reactive—damage done first",
			"→ Us: Voice+Text+Images",
			"🛡️ Authenticity",
			"Time to Insight: 12-16 weeks → 24-72 hours",
		}},
	}

	for _, tt := range tests {
		s := d.Slides[tt.slide]
		if got := len(s.Shapes); got != tt.shapes {
			t.Errorf("slide %d: expected %d shapes, got %d", tt.slide+1, tt.shapes, got)
		}

		counts := map[deck.ShapeKind]int{}
		for _, sh := range s.Shapes {
			counts[sh.Kind]++
		}
		if counts[deck.TextBox] != tt.textBoxes {
			t.Errorf("slide %d: expected %d text boxes, got %d", tt.slide+1, tt.textBoxes, counts[deck.TextBox])
		}
		if counts[deck.Rectangle] != tt.rects {
			t.Errorf("slide %d: expected %d rectangles, got %d", tt.slide+1, tt.rects, counts[deck.Rectangle])
		}
		if counts[deck.RoundedRectangle] != tt.rounded {
			t.Errorf("slide %d: expected %d rounded rectangles, got %d", tt.slide+1, tt.rounded, counts[deck.RoundedRectangle])
		}

		texts := s.Texts()
		for _, want := range tt.mustHave {
			if !slices.Contains(texts, want) {
				t.Errorf("slide %d: missing text %q", tt.slide+1, want)
			}
		}
	}
}

func TestBackgroundIsBehindEverything(t *testing.T) {
	d, err := Build(DefaultOptions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	pal := DefaultPalette()
	for i, s := range d.Slides {
		bg := s.Shapes[0]
		if bg.Kind != deck.Rectangle || bg.Frame != d.Canvas() {
			t.Errorf("slide %d: first shape is not a full-canvas rectangle: %+v", i+1, bg.Frame)
		}
		if bg.Fill == nil || *bg.Fill != pal.DarkBG {
			t.Errorf("slide %d: background fill %v", i+1, bg.Fill)
		}
		if bg.Line == nil || !bg.Line.NoFill {
			t.Errorf("slide %d: background should have no outline", i+1)
		}
	}
}

func TestTextBoxDefaults(t *testing.T) {
	d := deck.New(deck.Inches(10), deck.Inches(5))
	s := d.AddSlide()

	tb := AddTextBox(s, 1, 2, 3, 0.5, "hello")
	p := tb.Text.Paragraphs[0]

	if !tb.Text.WordWrap {
		t.Error("text boxes should wrap")
	}
	if p.Font.Size != deck.Pt(18) || p.Font.Bold || p.Align != deck.AlignLeft {
		t.Errorf("unexpected defaults: %+v align=%s", p.Font, p.Align)
	}
	if p.Font.Color == nil || *p.Font.Color != deck.RGB(255, 255, 255) {
		t.Errorf("default color should be white, got %v", p.Font.Color)
	}
	if tb.Frame.X != deck.Inches(1) || tb.Frame.H != deck.Inches(0.5) {
		t.Errorf("unexpected frame %+v", tb.Frame)
	}

	tb = AddTextBox(s, 0, 0, 1, 1, "x", Size(44), Bold(), Color(deck.RGB(1, 2, 3)), Align(deck.AlignRight))
	p = tb.Text.Paragraphs[0]
	if p.Font.Size != deck.Pt(44) || !p.Font.Bold || *p.Font.Color != deck.RGB(1, 2, 3) || p.Align != deck.AlignRight {
		t.Errorf("options not applied: %+v align=%s", p.Font, p.Align)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a, err := Build(DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(deck.LayoutOf(a), deck.LayoutOf(b)) {
		t.Error("two builds produced different layouts")
	}
}

func TestBuildWithQRCode(t *testing.T) {
	opts := DefaultOptions()
	opts.QRURL = "https://megaagentai.com"

	d, err := Build(opts)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	s := d.Slides[1]
	last := s.Shapes[len(s.Shapes)-1]
	if last.Kind != deck.Picture {
		t.Fatalf("expected trailing picture, got %s", last.Kind)
	}
	if len(last.Image) < 8 || string(last.Image[1:4]) != "PNG" {
		t.Errorf("picture is not a PNG")
	}
	if d.ShapeCount(1) != 50 {
		t.Errorf("expected 50 shapes with QR code, got %d", d.ShapeCount(1))
	}
	if last.Frame.Right() > d.Width || last.Frame.Bottom() > d.Height {
		t.Errorf("QR code leaves the slide: %+v", last.Frame)
	}
}

func TestPaletteOverrides(t *testing.T) {
	pal, err := DefaultPalette().WithOverrides(map[string]string{
		"dark_bg":     "#000000",
		"ACCENT_BLUE": "royalblue",
	})
	if err != nil {
		t.Fatalf("WithOverrides failed: %v", err)
	}
	if pal.DarkBG != deck.RGB(0, 0, 0) {
		t.Errorf("dark_bg not applied: %v", pal.DarkBG)
	}
	if pal.AccentBlue != deck.RGB(65, 105, 225) {
		t.Errorf("accent_blue not applied: %v", pal.AccentBlue)
	}
	if pal.White != DefaultPalette().White {
		t.Errorf("untouched entries must keep their value")
	}

	if _, err := DefaultPalette().WithOverrides(map[string]string{"neon": "#fff000"}); err == nil {
		t.Error("expected error for unknown entry")
	}
	if _, err := DefaultPalette().WithOverrides(map[string]string{"white": "nope"}); err == nil {
		t.Error("expected error for bad color")
	}
}
