package pitch

import "github.com/megaagentai/pitchdeck/internal/deck"

// TextOption adjusts the paragraph AddTextBox writes
type TextOption func(*deck.Paragraph)

// Size sets the font size in points (default 18)
func Size(pt float64) TextOption {
	return func(p *deck.Paragraph) { p.Font.Size = deck.Pt(pt) }
}

// Bold makes the text bold
func Bold() TextOption {
	return func(p *deck.Paragraph) { p.Font.Bold = true }
}

// Color sets the font color (default white)
func Color(c deck.Color) TextOption {
	return func(p *deck.Paragraph) { p.Font.Color = &c }
}

// Align sets the paragraph alignment (default left)
func Align(a deck.Align) TextOption {
	return func(p *deck.Paragraph) { p.Align = a }
}

// Centered is Align(deck.AlignCenter)
func Centered() TextOption {
	return Align(deck.AlignCenter)
}

// AddDarkBackground covers the whole slide with a borderless DarkBG rectangle
// and moves it behind everything already on the slide.
func AddDarkBackground(d *deck.Deck, s *deck.Slide, pal Palette) *deck.Shape {
	bg := s.AddShape(deck.Rectangle, 0, 0, d.Width, d.Height)
	bg.SetFill(pal.DarkBG).SetNoLine()
	s.SendToBack(bg)
	return bg
}

// AddTextBox places a word-wrapped text box; coordinates are in inches.
func AddTextBox(s *deck.Slide, left, top, width, height float64, text string, opts ...TextOption) *deck.Shape {
	tb := s.AddTextBox(deck.Inches(left), deck.Inches(top), deck.Inches(width), deck.Inches(height))
	tb.Text.WordWrap = true

	white := deck.RGB(255, 255, 255)
	p := tb.Text.First()
	p.Text = text
	p.Align = deck.AlignLeft
	p.Font = deck.Font{Size: deck.Pt(18), Color: &white}
	for _, opt := range opts {
		opt(p)
	}
	return tb
}

// addBox places a filled autoshape in inches
func addBox(s *deck.Slide, kind deck.ShapeKind, left, top, width, height float64, fill deck.Color) *deck.Shape {
	sh := s.AddShape(kind, deck.Inches(left), deck.Inches(top), deck.Inches(width), deck.Inches(height))
	sh.SetFill(fill)
	return sh
}

// labelBox writes a single centered bold label into an autoshape
func labelBox(sh *deck.Shape, text string, size float64, c deck.Color) {
	p := sh.TextFrame().First()
	p.Text = text
	p.Align = deck.AlignCenter
	p.Font = deck.Font{Size: deck.Pt(size), Bold: true, Color: &c}
}
