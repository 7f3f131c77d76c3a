package deck

import (
	"fmt"
	"strings"
)

// Deck is an in-memory presentation: fixed page geometry and an ordered list of slides
type Deck struct {
	Width      Emu
	Height     Emu
	Slides     []*Slide
	Properties Properties
}

// New creates an empty deck with the given page size
func New(width, height Emu) *Deck {
	return &Deck{
		Width:  width,
		Height: height,
	}
}

// AddSlide appends a blank slide
func (d *Deck) AddSlide() *Slide {
	s := &Slide{
		Index:  len(d.Slides),
		nextID: 2, // id 1 belongs to the slide's shape tree
	}
	d.Slides = append(d.Slides, s)
	return s
}

// Canvas returns the full-page rectangle
func (d *Deck) Canvas() Rect {
	return Rect{W: d.Width, H: d.Height}
}

// ShapeCount returns the number of shapes on slide i
func (d *Deck) ShapeCount(i int) int {
	if i < 0 || i >= len(d.Slides) {
		return 0
	}
	return len(d.Slides[i].Shapes)
}

// Texts returns the non-empty paragraph texts of slide i in z-order
func (d *Deck) Texts(i int) []string {
	if i < 0 || i >= len(d.Slides) {
		return nil
	}
	return d.Slides[i].Texts()
}

// Slide holds shapes in z-order: index 0 is drawn first (furthest back)
type Slide struct {
	Index  int
	Shapes []*Shape
	nextID int
}

// AddShape places an autoshape (rectangle or rounded rectangle)
func (s *Slide) AddShape(kind ShapeKind, x, y, w, h Emu) *Shape {
	return s.add(kind, Rect{X: x, Y: y, W: w, H: h})
}

// AddTextBox places an empty text box. Word wrap is off until the caller enables it.
func (s *Slide) AddTextBox(x, y, w, h Emu) *Shape {
	sh := s.add(TextBox, Rect{X: x, Y: y, W: w, H: h})
	sh.Text = &TextFrame{Anchor: AnchorTop}
	return sh
}

// AddPicture places a PNG image
func (s *Slide) AddPicture(x, y, w, h Emu, png []byte) *Shape {
	sh := s.add(Picture, Rect{X: x, Y: y, W: w, H: h})
	sh.Image = png
	return sh
}

func (s *Slide) add(kind ShapeKind, frame Rect) *Shape {
	id := s.nextID
	s.nextID++

	sh := &Shape{
		ID:    id,
		Name:  fmt.Sprintf("%s %d", kindName(kind), id-1),
		Kind:  kind,
		Frame: frame,
	}
	s.Shapes = append(s.Shapes, sh)
	return sh
}

// SendToBack moves sh to the first z-order position. Shapes not on the slide are ignored.
func (s *Slide) SendToBack(sh *Shape) {
	for i, cur := range s.Shapes {
		if cur != sh {
			continue
		}
		copy(s.Shapes[1:i+1], s.Shapes[:i])
		s.Shapes[0] = sh
		return
	}
}

// Texts returns the non-empty paragraph texts on the slide
func (s *Slide) Texts() []string {
	var out []string
	for _, sh := range s.Shapes {
		if sh.Text == nil {
			continue
		}
		for _, p := range sh.Text.Paragraphs {
			if strings.TrimSpace(p.Text) != "" {
				out = append(out, p.Text)
			}
		}
	}
	return out
}

// Shape is a drawable primitive on a slide
type Shape struct {
	ID    int
	Name  string
	Kind  ShapeKind
	Frame Rect
	Fill  *Color
	Line  *Line
	Text  *TextFrame
	Image []byte
}

// SetFill gives the shape a solid fill
func (sh *Shape) SetFill(c Color) *Shape {
	sh.Fill = &c
	return sh
}

// SetNoLine hides the outline
func (sh *Shape) SetNoLine() *Shape {
	sh.Line = &Line{NoFill: true}
	return sh
}

// SetLine draws a solid outline
func (sh *Shape) SetLine(c Color, width Emu) *Shape {
	sh.Line = &Line{Color: c, Width: width}
	return sh
}

// TextFrame returns the shape's text body, creating one centered vertically
// (the autoshape default) when missing.
func (sh *Shape) TextFrame() *TextFrame {
	if sh.Text == nil {
		sh.Text = &TextFrame{Anchor: AnchorMiddle}
	}
	return sh.Text
}

// First returns the first paragraph, creating it when the frame is empty
func (tf *TextFrame) First() *Paragraph {
	if len(tf.Paragraphs) == 0 {
		tf.Paragraphs = append(tf.Paragraphs, &Paragraph{})
	}
	return tf.Paragraphs[0]
}

// AddParagraph appends an empty paragraph
func (tf *TextFrame) AddParagraph() *Paragraph {
	p := &Paragraph{}
	tf.Paragraphs = append(tf.Paragraphs, p)
	return p
}

func kindName(k ShapeKind) string {
	switch k {
	case Rectangle:
		return "Rectangle"
	case RoundedRectangle:
		return "Rounded Rectangle"
	case TextBox:
		return "TextBox"
	case Picture:
		return "Picture"
	default:
		return "Shape"
	}
}
