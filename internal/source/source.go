package source

import (
	"fmt"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/megaagentai/pitchdeck/internal/pptx"
)

// Source is a saved presentation opened for inspection
type Source interface {
	PageCount() int
	PageTexts(index int) ([]string, error)
	ShapeCount(index int) (int, error)
	Close() error
}

// Open opens path with the named reader: "goppt" or "native" (default)
func Open(path, reader string) (Source, error) {
	switch reader {
	case "native", "":
		return NewPackageSource(path)
	case "goppt":
		return NewGoPPTSource(path)
	default:
		return nil, fmt.Errorf("unknown reader: %s", reader)
	}
}

// GoPPTSource reads a presentation through GoPPT's PPTXReader. Slides are
// walked once on open.
type GoPPTSource struct {
	texts  [][]string
	shapes []int
}

func NewGoPPTSource(path string) (*GoPPTSource, error) {
	reader := &ppt.PPTXReader{}
	pres, err := reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	g := &GoPPTSource{}
	for _, slide := range pres.GetAllSlides() {
		var texts []string
		shapes := slide.GetShapes()
		for _, shape := range shapes {
			switch sh := shape.(type) {
			case *ppt.RichTextShape:
				for _, para := range sh.GetParagraphs() {
					var text string
					for _, elem := range para.GetElements() {
						if run, ok := elem.(*ppt.TextRun); ok {
							text += run.GetText()
						}
					}
					if strings.TrimSpace(text) != "" {
						texts = append(texts, text)
					}
				}
			case *ppt.AutoShape:
				// GoPPT flattens autoshape paragraphs into one string
				for _, line := range strings.Split(sh.GetText(), "\n") {
					if strings.TrimSpace(line) != "" {
						texts = append(texts, line)
					}
				}
			}
		}
		g.texts = append(g.texts, texts)
		g.shapes = append(g.shapes, len(shapes))
	}
	return g, nil
}

func (g *GoPPTSource) PageCount() int {
	return len(g.texts)
}

func (g *GoPPTSource) PageTexts(index int) ([]string, error) {
	if err := checkIndex(index, len(g.texts)); err != nil {
		return nil, err
	}
	return g.texts[index], nil
}

func (g *GoPPTSource) ShapeCount(index int) (int, error) {
	if err := checkIndex(index, len(g.shapes)); err != nil {
		return 0, err
	}
	return g.shapes[index], nil
}

func (g *GoPPTSource) Close() error {
	return nil
}

func checkIndex(index, n int) error {
	if index < 0 || index >= n {
		return fmt.Errorf("slide %d out of range (%d slides)", index+1, n)
	}
	return nil
}

// PackageSource reads a presentation with the package's own PresentationML reader
type PackageSource struct {
	slides []pptx.SlideInfo
}

func NewPackageSource(path string) (*PackageSource, error) {
	r, err := pptx.Open(path)
	if err != nil {
		return nil, err
	}
	slides, err := r.Slides()
	if err != nil {
		return nil, fmt.Errorf("failed to read slides of %s: %w", path, err)
	}
	return &PackageSource{slides: slides}, nil
}

func (p *PackageSource) PageCount() int {
	return len(p.slides)
}

func (p *PackageSource) page(index int) (pptx.SlideInfo, error) {
	if err := checkIndex(index, len(p.slides)); err != nil {
		return pptx.SlideInfo{}, err
	}
	return p.slides[index], nil
}

func (p *PackageSource) PageTexts(index int) ([]string, error) {
	s, err := p.page(index)
	if err != nil {
		return nil, err
	}
	return s.Texts(), nil
}

func (p *PackageSource) ShapeCount(index int) (int, error) {
	s, err := p.page(index)
	if err != nil {
		return 0, err
	}
	return len(s.Shapes), nil
}

func (p *PackageSource) Close() error {
	return nil
}
