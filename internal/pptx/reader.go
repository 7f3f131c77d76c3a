package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/megaagentai/pitchdeck/internal/deck"
)

// Reader gives read access to the parts of a .pptx package
type Reader struct {
	reader *zip.Reader
	Parts  map[string]*zip.File
}

// SlideInfo is what the reader recovers from one slide
type SlideInfo struct {
	Number int
	Shapes []ShapeInfo
}

// ShapeInfo is one drawable element of a slide, in z-order
type ShapeInfo struct {
	ID    int
	Name  string
	Kind  deck.ShapeKind
	Frame deck.Rect
	Texts []string
}

// Texts returns the non-empty paragraph texts of the slide
func (s SlideInfo) Texts() []string {
	var out []string
	for _, sh := range s.Shapes {
		out = append(out, sh.Texts...)
	}
	return out
}

// NewReader opens a package from r
func NewReader(r io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read zip file: %w", err)
	}

	pr := &Reader{
		reader: zr,
		Parts:  make(map[string]*zip.File),
	}
	for _, f := range zr.File {
		pr.Parts[f.Name] = f
	}

	if _, ok := pr.Parts["ppt/presentation.xml"]; !ok {
		return nil, fmt.Errorf("not a valid PPTX file: missing ppt/presentation.xml")
	}
	return pr, nil
}

// Open reads the whole file at path into memory and opens it
func Open(path string) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return NewReader(bytes.NewReader(data), int64(len(data)))
}

// Part returns the raw bytes of a part
func (pr *Reader) Part(name string) ([]byte, error) {
	f, ok := pr.Parts[name]
	if !ok {
		return nil, fmt.Errorf("%s not found", name)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return content, nil
}

// Relationships returns the relationships of a part; a missing .rels part
// yields an empty list.
func (pr *Reader) Relationships(partName string) ([]Relationship, error) {
	dir, base := path.Split(partName)
	relPath := dir + "_rels/" + base + ".rels"

	if _, ok := pr.Parts[relPath]; !ok {
		return []Relationship{}, nil
	}
	content, err := pr.Part(relPath)
	if err != nil {
		return nil, err
	}

	var rels Relationships
	if err := xml.Unmarshal(content, &rels); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", relPath, err)
	}
	return rels.Relationship, nil
}

type presentationDoc struct {
	SldIDLst []struct {
		RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
	} `xml:"sldIdLst>sldId"`
	SldSz struct {
		Cx int64 `xml:"cx,attr"`
		Cy int64 `xml:"cy,attr"`
	} `xml:"sldSz"`
}

func (pr *Reader) presentation() (*presentationDoc, error) {
	content, err := pr.Part("ppt/presentation.xml")
	if err != nil {
		return nil, err
	}
	var doc presentationDoc
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse ppt/presentation.xml: %w", err)
	}
	return &doc, nil
}

// SlideSize returns the page size declared in presentation.xml
func (pr *Reader) SlideSize() (deck.Emu, deck.Emu, error) {
	doc, err := pr.presentation()
	if err != nil {
		return 0, 0, err
	}
	return deck.Emu(doc.SldSz.Cx), deck.Emu(doc.SldSz.Cy), nil
}

// SlideParts returns the slide part names in presentation order
func (pr *Reader) SlideParts() ([]string, error) {
	doc, err := pr.presentation()
	if err != nil {
		return nil, err
	}
	rels, err := pr.Relationships("ppt/presentation.xml")
	if err != nil {
		return nil, err
	}

	targets := make(map[string]string, len(rels))
	for _, r := range rels {
		targets[r.ID] = r.Target
	}

	var names []string
	for _, id := range doc.SldIDLst {
		target, ok := targets[id.RID]
		if !ok {
			return nil, fmt.Errorf("slide relationship %s not found", id.RID)
		}
		names = append(names, resolve("ppt", target))
	}
	return names, nil
}

// Slides parses every slide in presentation order
func (pr *Reader) Slides() ([]SlideInfo, error) {
	names, err := pr.SlideParts()
	if err != nil {
		return nil, err
	}

	slides := make([]SlideInfo, 0, len(names))
	for i, name := range names {
		content, err := pr.Part(name)
		if err != nil {
			return nil, err
		}
		var doc slideDoc
		if err := xml.Unmarshal(content, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		slides = append(slides, SlideInfo{Number: i + 1, Shapes: doc.CSld.SpTree.Shapes})
	}
	return slides, nil
}

func resolve(base, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(base, target)
}

type slideDoc struct {
	CSld struct {
		SpTree shapeTreeDoc `xml:"spTree"`
	} `xml:"cSld"`
}

type shapeTreeDoc struct {
	Shapes []ShapeInfo
}

type xfrmDoc struct {
	Off struct {
		X int64 `xml:"x,attr"`
		Y int64 `xml:"y,attr"`
	} `xml:"off"`
	Ext struct {
		Cx int64 `xml:"cx,attr"`
		Cy int64 `xml:"cy,attr"`
	} `xml:"ext"`
}

func (x xfrmDoc) rect() deck.Rect {
	return deck.Rect{X: deck.Emu(x.Off.X), Y: deck.Emu(x.Off.Y), W: deck.Emu(x.Ext.Cx), H: deck.Emu(x.Ext.Cy)}
}

type cNvPrDoc struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type spDoc struct {
	NvSpPr struct {
		CNvPr   cNvPrDoc `xml:"cNvPr"`
		CNvSpPr struct {
			TxBox string `xml:"txBox,attr"`
		} `xml:"cNvSpPr"`
	} `xml:"nvSpPr"`
	SpPr struct {
		Xfrm     xfrmDoc `xml:"xfrm"`
		PrstGeom struct {
			Prst string `xml:"prst,attr"`
		} `xml:"prstGeom"`
	} `xml:"spPr"`
	TxBody *struct {
		Paragraphs []struct {
			Runs []struct {
				Text string `xml:"t"`
			} `xml:"r"`
		} `xml:"p"`
	} `xml:"txBody"`
}

type picDoc struct {
	NvPicPr struct {
		CNvPr cNvPrDoc `xml:"cNvPr"`
	} `xml:"nvPicPr"`
	SpPr struct {
		Xfrm xfrmDoc `xml:"xfrm"`
	} `xml:"spPr"`
}

// UnmarshalXML keeps sp and pic elements in document order
func (t *shapeTreeDoc) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "sp":
				var sp spDoc
				if err := d.DecodeElement(&sp, &el); err != nil {
					return err
				}
				t.Shapes = append(t.Shapes, sp.info())
			case "pic":
				var pic picDoc
				if err := d.DecodeElement(&pic, &el); err != nil {
					return err
				}
				t.Shapes = append(t.Shapes, ShapeInfo{
					ID:    pic.NvPicPr.CNvPr.ID,
					Name:  pic.NvPicPr.CNvPr.Name,
					Kind:  deck.Picture,
					Frame: pic.SpPr.Xfrm.rect(),
				})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (sp spDoc) info() ShapeInfo {
	info := ShapeInfo{
		ID:    sp.NvSpPr.CNvPr.ID,
		Name:  sp.NvSpPr.CNvPr.Name,
		Kind:  deck.Rectangle,
		Frame: sp.SpPr.Xfrm.rect(),
	}
	switch {
	case sp.NvSpPr.CNvSpPr.TxBox == "1":
		info.Kind = deck.TextBox
	case sp.SpPr.PrstGeom.Prst == string(deck.RoundedRectangle):
		info.Kind = deck.RoundedRectangle
	}

	if sp.TxBody != nil {
		for _, p := range sp.TxBody.Paragraphs {
			var sb strings.Builder
			for _, r := range p.Runs {
				sb.WriteString(r.Text)
			}
			if text := sb.String(); strings.TrimSpace(text) != "" {
				info.Texts = append(info.Texts, text)
			}
		}
	}
	return info
}
