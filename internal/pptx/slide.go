package pptx

import (
	"encoding/xml"
	"fmt"

	"github.com/megaagentai/pitchdeck/internal/deck"
)

// Slide is the root element of ppt/slides/slideN.xml
type Slide struct {
	XMLName   xml.Name     `xml:"p:sld"`
	XmlnsA    string       `xml:"xmlns:a,attr"`
	XmlnsR    string       `xml:"xmlns:r,attr"`
	XmlnsP    string       `xml:"xmlns:p,attr"`
	CSld      CommonSlide  `xml:"p:cSld"`
	ClrMapOvr ColorMapOver `xml:"p:clrMapOvr"`
}

type CommonSlide struct {
	SpTree ShapeTree `xml:"p:spTree"`
}

type ColorMapOver struct {
	MasterClrMapping struct{} `xml:"a:masterClrMapping"`
}

// ShapeTree holds *Sp and *Pic elements in z-order
type ShapeTree struct {
	Shapes []any
}

// MarshalXML writes the group header and then every shape in order
func (t ShapeTree) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "p:spTree"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	header := groupHeader()
	if err := e.EncodeElement(header.NvGrpSpPr, xml.StartElement{Name: xml.Name{Local: "p:nvGrpSpPr"}}); err != nil {
		return err
	}
	if err := e.EncodeElement(header.GrpSpPr, xml.StartElement{Name: xml.Name{Local: "p:grpSpPr"}}); err != nil {
		return err
	}

	for _, sh := range t.Shapes {
		if err := e.Encode(sh); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

type groupProps struct {
	NvGrpSpPr NvGroupProps
	GrpSpPr   GroupShapeProps
}

type NvGroupProps struct {
	CNvPr      CNvPr    `xml:"p:cNvPr"`
	CNvGrpSpPr struct{} `xml:"p:cNvGrpSpPr"`
	NvPr       struct{} `xml:"p:nvPr"`
}

type GroupShapeProps struct {
	Xfrm GroupXfrm `xml:"a:xfrm"`
}

type GroupXfrm struct {
	Off   Point `xml:"a:off"`
	Ext   Size  `xml:"a:ext"`
	ChOff Point `xml:"a:chOff"`
	ChExt Size  `xml:"a:chExt"`
}

func groupHeader() groupProps {
	return groupProps{
		NvGrpSpPr: NvGroupProps{CNvPr: CNvPr{ID: 1, Name: ""}},
	}
}

// Sp is an autoshape or text box
type Sp struct {
	XMLName xml.Name     `xml:"p:sp"`
	NvSpPr  NvShapeProps `xml:"p:nvSpPr"`
	SpPr    ShapeProps   `xml:"p:spPr"`
	TxBody  *TextBody    `xml:"p:txBody"`
}

type NvShapeProps struct {
	CNvPr   CNvPr    `xml:"p:cNvPr"`
	CNvSpPr CNvSpPr  `xml:"p:cNvSpPr"`
	NvPr    struct{} `xml:"p:nvPr"`
}

type CNvPr struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type CNvSpPr struct {
	TxBox string `xml:"txBox,attr,omitempty"`
}

type ShapeProps struct {
	Xfrm      Xfrm       `xml:"a:xfrm"`
	PrstGeom  PrstGeom   `xml:"a:prstGeom"`
	NoFill    *struct{}  `xml:"a:noFill"`
	SolidFill *SolidFill `xml:"a:solidFill"`
	Ln        *Outline   `xml:"a:ln"`
}

type Xfrm struct {
	Off Point `xml:"a:off"`
	Ext Size  `xml:"a:ext"`
}

type Point struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type Size struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

type PrstGeom struct {
	Prst  string   `xml:"prst,attr"`
	AvLst struct{} `xml:"a:avLst"`
}

type SolidFill struct {
	SrgbClr SrgbColor `xml:"a:srgbClr"`
}

type SrgbColor struct {
	Val string `xml:"val,attr"`
}

type Outline struct {
	W         int64      `xml:"w,attr,omitempty"`
	NoFill    *struct{}  `xml:"a:noFill"`
	SolidFill *SolidFill `xml:"a:solidFill"`
}

type TextBody struct {
	BodyPr     BodyProps   `xml:"a:bodyPr"`
	LstStyle   struct{}    `xml:"a:lstStyle"`
	Paragraphs []Paragraph `xml:"a:p"`
}

type BodyProps struct {
	Wrap      string    `xml:"wrap,attr,omitempty"`
	RtlCol    string    `xml:"rtlCol,attr"`
	Anchor    string    `xml:"anchor,attr,omitempty"`
	SpAutoFit *struct{} `xml:"a:spAutoFit"`
}

type Paragraph struct {
	PPr  *ParagraphProps `xml:"a:pPr"`
	Runs []Run           `xml:"a:r"`
}

type ParagraphProps struct {
	Algn string `xml:"algn,attr,omitempty"`
}

type Run struct {
	RPr  RunProps `xml:"a:rPr"`
	Text string   `xml:"a:t"`
}

type RunProps struct {
	Lang      string     `xml:"lang,attr"`
	Sz        int        `xml:"sz,attr,omitempty"`
	B         string     `xml:"b,attr,omitempty"`
	Dirty     string     `xml:"dirty,attr"`
	SolidFill *SolidFill `xml:"a:solidFill"`
}

// Pic is a picture shape referencing an image part through r:embed
type Pic struct {
	XMLName  xml.Name       `xml:"p:pic"`
	NvPicPr  NvPictureProps `xml:"p:nvPicPr"`
	BlipFill BlipFill       `xml:"p:blipFill"`
	SpPr     ShapeProps     `xml:"p:spPr"`
}

type NvPictureProps struct {
	CNvPr    CNvPr    `xml:"p:cNvPr"`
	CNvPicPr CNvPicPr `xml:"p:cNvPicPr"`
	NvPr     struct{} `xml:"p:nvPr"`
}

type CNvPicPr struct {
	PicLocks PicLocks `xml:"a:picLocks"`
}

type PicLocks struct {
	NoChangeAspect string `xml:"noChangeAspect,attr"`
}

type BlipFill struct {
	Blip    Blip    `xml:"a:blip"`
	Stretch Stretch `xml:"a:stretch"`
}

type Blip struct {
	Embed string `xml:"r:embed,attr"`
}

type Stretch struct {
	FillRect struct{} `xml:"a:fillRect"`
}

// slidePart is a slide ready to be written: its XML model, its relationships
// and the media it references.
type slidePart struct {
	xml   *Slide
	rels  *Relationships
	media []mediaRef
}

type mediaRef struct {
	name string // ppt/media/imageN.png
	data []byte
}

// buildSlide converts a deck slide. nextImage numbers media parts across the
// whole package and is advanced for every picture.
func buildSlide(s *deck.Slide, nextImage *int) (*slidePart, error) {
	part := &slidePart{
		xml: &Slide{
			XmlnsA: nsA,
			XmlnsR: nsR,
			XmlnsP: nsP,
		},
		rels: newRelationships(Relationship{
			ID:     "rId1",
			Type:   relSlideLayout,
			Target: "../slideLayouts/slideLayout1.xml",
		}),
	}

	for _, sh := range s.Shapes {
		switch sh.Kind {
		case deck.Rectangle, deck.RoundedRectangle, deck.TextBox:
			part.xml.CSld.SpTree.Shapes = append(part.xml.CSld.SpTree.Shapes, autoShape(sh))

		case deck.Picture:
			if len(sh.Image) == 0 {
				return nil, fmt.Errorf("shape %q: picture has no image data", sh.Name)
			}
			*nextImage++
			rid := fmt.Sprintf("rId%d", len(part.rels.Relationship)+1)
			target := fmt.Sprintf("image%d.png", *nextImage)

			part.rels.Relationship = append(part.rels.Relationship, Relationship{
				ID:     rid,
				Type:   relImage,
				Target: "../media/" + target,
			})
			part.media = append(part.media, mediaRef{name: "ppt/media/" + target, data: sh.Image})
			part.xml.CSld.SpTree.Shapes = append(part.xml.CSld.SpTree.Shapes, picture(sh, rid))

		default:
			return nil, fmt.Errorf("shape %q: unsupported kind %q", sh.Name, sh.Kind)
		}
	}

	return part, nil
}

func autoShape(sh *deck.Shape) *Sp {
	sp := &Sp{
		NvSpPr: NvShapeProps{
			CNvPr: CNvPr{ID: sh.ID, Name: sh.Name},
		},
		SpPr: ShapeProps{
			Xfrm:     xfrm(sh.Frame),
			PrstGeom: PrstGeom{Prst: string(deck.Rectangle)},
		},
	}

	switch sh.Kind {
	case deck.RoundedRectangle:
		sp.SpPr.PrstGeom.Prst = string(deck.RoundedRectangle)
	case deck.TextBox:
		sp.NvSpPr.CNvSpPr.TxBox = "1"
	}

	if sh.Fill != nil {
		sp.SpPr.SolidFill = solid(*sh.Fill)
	} else if sh.Kind == deck.TextBox {
		sp.SpPr.NoFill = &struct{}{}
	}

	if sh.Line != nil {
		sp.SpPr.Ln = outline(*sh.Line)
	}

	switch {
	case sh.Text != nil:
		sp.TxBody = textBody(sh.Kind, sh.Text)
	case sh.Kind != deck.TextBox:
		// autoshapes always carry a text body, even an empty one
		sp.TxBody = emptyBody()
	}
	return sp
}

func emptyBody() *TextBody {
	return &TextBody{
		BodyPr:     BodyProps{RtlCol: "0", Anchor: string(deck.AnchorMiddle)},
		Paragraphs: []Paragraph{{PPr: &ParagraphProps{Algn: string(deck.AlignCenter)}}},
	}
}

func picture(sh *deck.Shape, rid string) *Pic {
	return &Pic{
		NvPicPr: NvPictureProps{
			CNvPr:    CNvPr{ID: sh.ID, Name: sh.Name},
			CNvPicPr: CNvPicPr{PicLocks: PicLocks{NoChangeAspect: "1"}},
		},
		BlipFill: BlipFill{Blip: Blip{Embed: rid}},
		SpPr: ShapeProps{
			Xfrm:     xfrm(sh.Frame),
			PrstGeom: PrstGeom{Prst: string(deck.Rectangle)},
		},
	}
}

func xfrm(r deck.Rect) Xfrm {
	return Xfrm{
		Off: Point{X: int64(r.X), Y: int64(r.Y)},
		Ext: Size{Cx: int64(r.W), Cy: int64(r.H)},
	}
}

func solid(c deck.Color) *SolidFill {
	return &SolidFill{SrgbClr: SrgbColor{Val: c.Hex()}}
}

func outline(l deck.Line) *Outline {
	if l.NoFill {
		return &Outline{NoFill: &struct{}{}}
	}
	return &Outline{W: int64(l.Width), SolidFill: solid(l.Color)}
}

func textBody(kind deck.ShapeKind, tf *deck.TextFrame) *TextBody {
	body := &TextBody{
		BodyPr: BodyProps{
			RtlCol: "0",
			Anchor: string(tf.Anchor),
		},
	}
	switch {
	case tf.WordWrap:
		body.BodyPr.Wrap = "square"
	case kind == deck.TextBox:
		body.BodyPr.Wrap = "none"
	}
	if kind == deck.TextBox {
		body.BodyPr.SpAutoFit = &struct{}{}
	}

	for _, p := range tf.Paragraphs {
		body.Paragraphs = append(body.Paragraphs, paragraph(p))
	}
	// a:txBody requires at least one a:p
	if len(body.Paragraphs) == 0 {
		body.Paragraphs = append(body.Paragraphs, Paragraph{})
	}
	return body
}

func paragraph(p *deck.Paragraph) Paragraph {
	out := Paragraph{}
	if p.Align != "" {
		out.PPr = &ParagraphProps{Algn: string(p.Align)}
	}
	if p.Text == "" {
		return out
	}

	rpr := RunProps{
		Lang:  "en-US",
		Sz:    int(p.Font.Size),
		Dirty: "0",
	}
	if p.Font.Bold {
		rpr.B = "1"
	}
	if p.Font.Color != nil {
		rpr.SolidFill = solid(*p.Font.Color)
	}
	out.Runs = []Run{{RPr: rpr, Text: p.Text}}
	return out
}
