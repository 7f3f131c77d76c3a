package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/megaagentai/pitchdeck/internal/deck"
)

// Writer serializes a deck.Deck into a PresentationML package
type Writer struct {
	// Created is stamped into docProps/core.xml. Zero means time.Now().
	Created time.Time
}

// Write encodes d as a .pptx package to w
func Write(w io.Writer, d *deck.Deck) error {
	return (&Writer{}).Write(w, d)
}

// WriteFile encodes d into the file at path, replacing it if present
func WriteFile(path string, d *deck.Deck) error {
	return (&Writer{}).WriteFile(path, d)
}

// WriteFile encodes d into the file at path. The package is assembled in
// memory first so a failed build never leaves a truncated file behind.
func (pw *Writer) WriteFile(path string, d *deck.Deck) error {
	var buf bytes.Buffer
	if err := pw.Write(&buf, d); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Write encodes d as a .pptx package to w
func (pw *Writer) Write(w io.Writer, d *deck.Deck) error {
	if d == nil {
		return fmt.Errorf("nil deck")
	}
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("invalid page size %dx%d", d.Width, d.Height)
	}

	created := pw.Created
	if created.IsZero() {
		created = time.Now()
	}

	var slides []*slidePart
	images := 0
	for _, s := range d.Slides {
		part, err := buildSlide(s, &images)
		if err != nil {
			return fmt.Errorf("slide %d: %w", s.Index+1, err)
		}
		slides = append(slides, part)
	}

	// slide XML is independent per slide; encode in parallel, write in order
	encoded := make([][]byte, len(slides))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, part := range slides {
		g.Go(func() error {
			body, err := xml.Marshal(part.xml)
			if err != nil {
				return fmt.Errorf("failed to encode ppt/slides/slide%d.xml: %w", i+1, err)
			}
			encoded[i] = append([]byte(xmlHeader), body...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	zw := zip.NewWriter(w)

	parts := []struct {
		name string
		v    any
	}{
		{"[Content_Types].xml", contentTypes(len(slides), images > 0)},
		{"_rels/.rels", packageRels()},
		{"docProps/core.xml", newCoreProperties(d.Properties, created)},
		{"docProps/app.xml", newAppProperties(d)},
		{"ppt/presentation.xml", newPresentation(d)},
		{"ppt/_rels/presentation.xml.rels", presentationRels(len(slides))},
	}
	for _, p := range parts {
		if err := writeXML(zw, p.name, p.v); err != nil {
			return err
		}
	}

	static := []struct {
		name, body string
	}{
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
		{"ppt/theme/theme1.xml", themeXML},
		{"ppt/presProps.xml", presPropsXML},
		{"ppt/viewProps.xml", viewPropsXML},
		{"ppt/tableStyles.xml", tableStylesXML},
	}
	for _, p := range static {
		if err := writeRaw(zw, p.name, []byte(p.body)); err != nil {
			return err
		}
	}

	if err := writeXML(zw, "ppt/slideMasters/_rels/slideMaster1.xml.rels", newRelationships(
		Relationship{ID: "rId1", Type: relSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
		Relationship{ID: "rId2", Type: relTheme, Target: "../theme/theme1.xml"},
	)); err != nil {
		return err
	}
	if err := writeXML(zw, "ppt/slideLayouts/_rels/slideLayout1.xml.rels", newRelationships(
		Relationship{ID: "rId1", Type: relSlideMaster, Target: "../slideMasters/slideMaster1.xml"},
	)); err != nil {
		return err
	}

	for i, part := range slides {
		if err := writeRaw(zw, fmt.Sprintf("ppt/slides/slide%d.xml", i+1), encoded[i]); err != nil {
			return err
		}
		if err := writeXML(zw, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), part.rels); err != nil {
			return err
		}
		for _, m := range part.media {
			if err := writeRaw(zw, m.name, m.data); err != nil {
				return err
			}
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to close package: %w", err)
	}
	return nil
}

func writeXML(zw *zip.Writer, name string, v any) error {
	body, err := xml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	return writeRaw(zw, name, append([]byte(xmlHeader), body...))
}

func writeRaw(zw *zip.Writer, name string, body []byte) error {
	f, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	if _, err := f.Write(body); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func slideRelID(i int) string {
	return fmt.Sprintf("rId%d", i+2)
}

func contentTypes(slides int, png bool) *ContentTypes {
	ct := &ContentTypes{
		Namespace: nsCT,
		Defaults: []Default{
			{Extension: "rels", ContentType: ctRelationships},
			{Extension: "xml", ContentType: ctXML},
		},
		Overrides: []Override{
			{PartName: "/ppt/presentation.xml", ContentType: ctPresentation},
			{PartName: "/ppt/slideMasters/slideMaster1.xml", ContentType: ctSlideMaster},
			{PartName: "/ppt/slideLayouts/slideLayout1.xml", ContentType: ctSlideLayout},
			{PartName: "/ppt/theme/theme1.xml", ContentType: ctTheme},
			{PartName: "/ppt/presProps.xml", ContentType: ctPresProps},
			{PartName: "/ppt/viewProps.xml", ContentType: ctViewProps},
			{PartName: "/ppt/tableStyles.xml", ContentType: ctTableStyles},
			{PartName: "/docProps/core.xml", ContentType: ctCoreProps},
			{PartName: "/docProps/app.xml", ContentType: ctExtendedProps},
		},
	}
	if png {
		ct.Defaults = append(ct.Defaults, Default{Extension: "png", ContentType: ctPNG})
	}
	for i := 1; i <= slides; i++ {
		ct.Overrides = append(ct.Overrides, Override{
			PartName:    fmt.Sprintf("/ppt/slides/slide%d.xml", i),
			ContentType: ctSlide,
		})
	}
	return ct
}

func packageRels() *Relationships {
	return newRelationships(
		Relationship{ID: "rId1", Type: relOfficeDocument, Target: "ppt/presentation.xml"},
		Relationship{ID: "rId2", Type: relCoreProps, Target: "docProps/core.xml"},
		Relationship{ID: "rId3", Type: relExtendedProps, Target: "docProps/app.xml"},
	)
}

func presentationRels(slides int) *Relationships {
	rels := newRelationships(Relationship{
		ID:     "rId1",
		Type:   relSlideMaster,
		Target: "slideMasters/slideMaster1.xml",
	})
	for i := 0; i < slides; i++ {
		rels.Relationship = append(rels.Relationship, Relationship{
			ID:     slideRelID(i),
			Type:   relSlide,
			Target: fmt.Sprintf("slides/slide%d.xml", i+1),
		})
	}
	next := slides + 2
	for _, r := range []struct{ typ, target string }{
		{relPresProps, "presProps.xml"},
		{relViewProps, "viewProps.xml"},
		{relTheme, "theme/theme1.xml"},
		{relTableStyles, "tableStyles.xml"},
	} {
		rels.Relationship = append(rels.Relationship, Relationship{
			ID:     fmt.Sprintf("rId%d", next),
			Type:   r.typ,
			Target: r.target,
		})
		next++
	}
	return rels
}
