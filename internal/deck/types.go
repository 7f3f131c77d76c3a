package deck

// ShapeKind selects the drawing primitive behind a shape
type ShapeKind string

const (
	Rectangle        ShapeKind = "rect"
	RoundedRectangle ShapeKind = "roundRect"
	TextBox          ShapeKind = "textBox"
	Picture          ShapeKind = "picture"
)

// Align is the horizontal alignment of a paragraph (a:pPr/@algn)
type Align string

const (
	AlignLeft   Align = "l"
	AlignCenter Align = "ctr"
	AlignRight  Align = "r"
)

// Anchor is the vertical anchoring of text inside its frame (a:bodyPr/@anchor)
type Anchor string

const (
	AnchorTop    Anchor = "t"
	AnchorMiddle Anchor = "ctr"
	AnchorBottom Anchor = "b"
)

// Rect is a position and size on the slide canvas
type Rect struct {
	X, Y, W, H Emu
}

// Right and Bottom return the far edges of the rectangle
func (r Rect) Right() Emu  { return r.X + r.W }
func (r Rect) Bottom() Emu { return r.Y + r.H }

// Line describes a shape outline. NoFill hides it entirely.
type Line struct {
	NoFill bool
	Color  Color
	Width  Emu
}

// Font holds run properties of a paragraph
type Font struct {
	Size  FontSize
	Bold  bool
	Color *Color
}

// Paragraph is a single line of styled text (one run)
type Paragraph struct {
	Text  string
	Align Align
	Font  Font
}

// TextFrame is the text body of a shape
type TextFrame struct {
	WordWrap   bool
	Anchor     Anchor
	Paragraphs []*Paragraph
}

// Properties are the document properties written to docProps/core.xml
type Properties struct {
	Title   string
	Subject string
	Author  string
	Company string
}
