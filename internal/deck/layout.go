package deck

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Layout is a human-readable projection of a deck, used to diff builds
type Layout struct {
	Version string        `yaml:"version"`
	Width   float64       `yaml:"width_in"`
	Height  float64       `yaml:"height_in"`
	Slides  []LayoutSlide `yaml:"slides"`
}

// LayoutSlide lists the shapes of one slide in z-order
type LayoutSlide struct {
	Index  int           `yaml:"index"`
	Shapes []LayoutShape `yaml:"shapes"`
}

// LayoutShape is one shape with its geometry in inches
type LayoutShape struct {
	ID    int          `yaml:"id"`
	Name  string       `yaml:"name"`
	Kind  string       `yaml:"kind"`
	X     float64      `yaml:"x"`
	Y     float64      `yaml:"y"`
	W     float64      `yaml:"w"`
	H     float64      `yaml:"h"`
	Fill  string       `yaml:"fill,omitempty"`
	Line  string       `yaml:"line,omitempty"`
	Texts []LayoutText `yaml:"texts,omitempty"`
}

// LayoutText is one paragraph
type LayoutText struct {
	Text  string  `yaml:"text"`
	Size  float64 `yaml:"size_pt,omitempty"`
	Bold  bool    `yaml:"bold,omitempty"`
	Color string  `yaml:"color,omitempty"`
	Align string  `yaml:"align,omitempty"`
}

// LayoutOf projects a deck into its layout description
func LayoutOf(d *Deck) *Layout {
	l := &Layout{
		Version: "1.0",
		Width:   round3(d.Width.Inches()),
		Height:  round3(d.Height.Inches()),
	}

	for _, s := range d.Slides {
		ls := LayoutSlide{Index: s.Index + 1}
		for _, sh := range s.Shapes {
			ls.Shapes = append(ls.Shapes, layoutShape(sh))
		}
		l.Slides = append(l.Slides, ls)
	}
	return l
}

func layoutShape(sh *Shape) LayoutShape {
	out := LayoutShape{
		ID:   sh.ID,
		Name: sh.Name,
		Kind: string(sh.Kind),
		X:    round3(sh.Frame.X.Inches()),
		Y:    round3(sh.Frame.Y.Inches()),
		W:    round3(sh.Frame.W.Inches()),
		H:    round3(sh.Frame.H.Inches()),
	}
	if sh.Fill != nil {
		out.Fill = sh.Fill.String()
	}
	if sh.Line != nil {
		if sh.Line.NoFill {
			out.Line = "none"
		} else {
			out.Line = sh.Line.Color.String()
		}
	}
	if sh.Text != nil {
		for _, p := range sh.Text.Paragraphs {
			t := LayoutText{
				Text:  p.Text,
				Size:  p.Font.Size.Points(),
				Bold:  p.Font.Bold,
				Align: string(p.Align),
			}
			if p.Font.Color != nil {
				t.Color = p.Font.Color.String()
			}
			out.Texts = append(out.Texts, t)
		}
	}
	return out
}

// WriteLayout writes the deck's layout to a YAML file
func WriteLayout(d *Deck, path string) error {
	data, err := yaml.Marshal(LayoutOf(d))
	if err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write layout %s: %w", path, err)
	}
	return nil
}

// ReadLayout reads a layout from a YAML file
func ReadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}

	return &layout, nil
}

// LayoutPathFor returns the layout dump path that sits next to a deck file
func LayoutPathFor(deckPath string) string {
	ext := filepath.Ext(deckPath)
	return strings.TrimSuffix(deckPath, ext) + ".layout.yaml"
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
