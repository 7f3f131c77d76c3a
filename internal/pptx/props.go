package pptx

import (
	"encoding/xml"
	"time"

	"github.com/megaagentai/pitchdeck/internal/deck"
)

// Presentation is the root of ppt/presentation.xml
type Presentation struct {
	XMLName         xml.Name        `xml:"p:presentation"`
	XmlnsA          string          `xml:"xmlns:a,attr"`
	XmlnsR          string          `xml:"xmlns:r,attr"`
	XmlnsP          string          `xml:"xmlns:p,attr"`
	SaveSubsetFonts string          `xml:"saveSubsetFonts,attr"`
	SldMasterIDLst  []SlideMasterID `xml:"p:sldMasterIdLst>p:sldMasterId"`
	SldIDLst        []SlideID       `xml:"p:sldIdLst>p:sldId"`
	SldSz           Size            `xml:"p:sldSz"`
	NotesSz         Size            `xml:"p:notesSz"`
}

type SlideMasterID struct {
	ID  uint32 `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

type SlideID struct {
	ID  uint32 `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

// CoreProperties is docProps/core.xml
type CoreProperties struct {
	XMLName        xml.Name `xml:"cp:coreProperties"`
	XmlnsCP        string   `xml:"xmlns:cp,attr"`
	XmlnsDC        string   `xml:"xmlns:dc,attr"`
	XmlnsDCTerms   string   `xml:"xmlns:dcterms,attr"`
	XmlnsDCMIType  string   `xml:"xmlns:dcmitype,attr"`
	XmlnsXSI       string   `xml:"xmlns:xsi,attr"`
	Title          string   `xml:"dc:title"`
	Subject        string   `xml:"dc:subject"`
	Creator        string   `xml:"dc:creator"`
	LastModifiedBy string   `xml:"cp:lastModifiedBy"`
	Revision       int      `xml:"cp:revision"`
	Created        W3CDTF   `xml:"dcterms:created"`
	Modified       W3CDTF   `xml:"dcterms:modified"`
}

// W3CDTF is a dcterms timestamp
type W3CDTF struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

// AppProperties is docProps/app.xml
type AppProperties struct {
	XMLName     xml.Name `xml:"Properties"`
	Xmlns       string   `xml:"xmlns,attr"`
	XmlnsVT     string   `xml:"xmlns:vt,attr"`
	Application string   `xml:"Application"`
	Slides      int      `xml:"Slides"`
	Company     string   `xml:"Company,omitempty"`
	AppVersion  string   `xml:"AppVersion"`
}

func newPresentation(d *deck.Deck) *Presentation {
	p := &Presentation{
		XmlnsA:          nsA,
		XmlnsR:          nsR,
		XmlnsP:          nsP,
		SaveSubsetFonts: "1",
		SldMasterIDLst:  []SlideMasterID{{ID: 2147483648, RID: "rId1"}},
		SldSz:           Size{Cx: int64(d.Width), Cy: int64(d.Height)},
		NotesSz:         Size{Cx: 6858000, Cy: 9144000},
	}
	// rId1 is the master, slides follow
	for i := range d.Slides {
		p.SldIDLst = append(p.SldIDLst, SlideID{
			ID:  uint32(256 + i),
			RID: slideRelID(i),
		})
	}
	return p
}

func newCoreProperties(props deck.Properties, created time.Time) *CoreProperties {
	stamp := W3CDTF{Type: "dcterms:W3CDTF", Value: created.UTC().Format(time.RFC3339)}
	return &CoreProperties{
		XmlnsCP:        "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
		XmlnsDC:        "http://purl.org/dc/elements/1.1/",
		XmlnsDCTerms:   "http://purl.org/dc/terms/",
		XmlnsDCMIType:  "http://purl.org/dc/dcmitype/",
		XmlnsXSI:       "http://www.w3.org/2001/XMLSchema-instance",
		Title:          props.Title,
		Subject:        props.Subject,
		Creator:        props.Author,
		LastModifiedBy: props.Author,
		Revision:       1,
		Created:        stamp,
		Modified:       stamp,
	}
}

func newAppProperties(d *deck.Deck) *AppProperties {
	return &AppProperties{
		Xmlns:       "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties",
		XmlnsVT:     "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes",
		Application: "pitchdeck",
		Slides:      len(d.Slides),
		Company:     d.Properties.Company,
		AppVersion:  "16.0000",
	}
}
