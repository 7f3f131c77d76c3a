package deck

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestAddShapesAssignsIDsAndNames(t *testing.T) {
	d := New(Inches(13.333), Inches(7.5))
	s := d.AddSlide()

	bg := s.AddShape(Rectangle, 0, 0, d.Width, d.Height)
	tb := s.AddTextBox(Inches(0.5), Inches(0.3), Inches(12.3), Inches(0.8))
	rr := s.AddShape(RoundedRectangle, Inches(4), Inches(6.5), Inches(2.3), Inches(0.6))

	if bg.ID != 2 || tb.ID != 3 || rr.ID != 4 {
		t.Errorf("unexpected ids: %d %d %d", bg.ID, tb.ID, rr.ID)
	}
	if bg.Name != "Rectangle 1" {
		t.Errorf("expected name 'Rectangle 1', got %q", bg.Name)
	}
	if tb.Name != "TextBox 2" {
		t.Errorf("expected name 'TextBox 2', got %q", tb.Name)
	}
	if rr.Name != "Rounded Rectangle 3" {
		t.Errorf("expected name 'Rounded Rectangle 3', got %q", rr.Name)
	}
	if tb.Text == nil || tb.Text.Anchor != AnchorTop {
		t.Errorf("text box should start with a top-anchored frame")
	}
	if d.ShapeCount(0) != 3 {
		t.Errorf("expected 3 shapes, got %d", d.ShapeCount(0))
	}
}

func TestSendToBack(t *testing.T) {
	d := New(Inches(10), Inches(5))
	s := d.AddSlide()

	a := s.AddTextBox(0, 0, 10, 10)
	b := s.AddTextBox(0, 0, 10, 10)
	bg := s.AddShape(Rectangle, 0, 0, d.Width, d.Height)

	s.SendToBack(bg)

	want := []*Shape{bg, a, b}
	if !reflect.DeepEqual(s.Shapes, want) {
		t.Fatalf("unexpected z-order: %v, %v, %v", s.Shapes[0].Name, s.Shapes[1].Name, s.Shapes[2].Name)
	}

	// Already at the back: no-op
	s.SendToBack(bg)
	if s.Shapes[0] != bg || len(s.Shapes) != 3 {
		t.Errorf("second SendToBack changed the slide")
	}

	// Unknown shape: no-op
	s.SendToBack(&Shape{})
	if len(s.Shapes) != 3 {
		t.Errorf("foreign shape must not be inserted")
	}
}

func TestTexts(t *testing.T) {
	d := New(Inches(10), Inches(5))
	s := d.AddSlide()

	s.AddShape(Rectangle, 0, 0, 1, 1)
	tb := s.AddTextBox(0, 0, 1, 1)
	tb.Text.First().Text = "Chandra Suda"
	box := s.AddShape(RoundedRectangle, 0, 0, 1, 1)
	box.TextFrame().First().Text = "Stanford"
	box.TextFrame().AddParagraph().Text = "  "

	got := d.Texts(0)
	want := []string{"Chandra Suda", "Stanford"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if d.Texts(5) != nil {
		t.Errorf("out-of-range slide should have no texts")
	}
	if box.Text.Anchor != AnchorMiddle {
		t.Errorf("autoshape text should be centered vertically")
	}
}

func TestLayoutWriteRead(t *testing.T) {
	d := New(Inches(13.333), Inches(7.5))
	s := d.AddSlide()
	s.AddShape(Rectangle, 0, 0, d.Width, d.Height).SetFill(RGB(15, 15, 25)).SetNoLine()
	tb := s.AddTextBox(Inches(0.5), Inches(2.0), Inches(12.3), Inches(0.6))
	p := tb.Text.First()
	p.Text = "Chandra Suda"
	p.Align = AlignCenter
	p.Font = Font{Size: Pt(48), Bold: true}

	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := WriteLayout(d, path); err != nil {
		t.Fatalf("WriteLayout failed: %v", err)
	}

	layout, err := ReadLayout(path)
	if err != nil {
		t.Fatalf("ReadLayout failed: %v", err)
	}

	if !reflect.DeepEqual(layout, LayoutOf(d)) {
		t.Errorf("layout changed across write/read:\n%+v\n%+v", layout, LayoutOf(d))
	}

	shapes := layout.Slides[0].Shapes
	if shapes[0].Fill != "#0F0F19" || shapes[0].Line != "none" {
		t.Errorf("unexpected background styling: %+v", shapes[0])
	}
	if shapes[1].Texts[0].Size != 48 || !shapes[1].Texts[0].Bold {
		t.Errorf("unexpected text styling: %+v", shapes[1].Texts[0])
	}
	if layout.Width != 13.333 || layout.Height != 7.5 {
		t.Errorf("unexpected page size %.3fx%.3f", layout.Width, layout.Height)
	}
}

func TestLayoutPathFor(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"output/MegaAgentAI_SamaClub_Pitch.pptx", "output/MegaAgentAI_SamaClub_Pitch.layout.yaml"},
		{"deck.PPTX", "deck.layout.yaml"},
		{"noext", "noext.layout.yaml"},
	}
	for _, tt := range tests {
		if got := LayoutPathFor(tt.in); got != tt.want {
			t.Errorf("LayoutPathFor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadLayoutErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := ReadLayout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("slides: {not: [a, list"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadLayout(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
