package outline

import (
	"reflect"
	"testing"

	"github.com/prakriti82/adobe-hackathon-round-1a/internal/docmodel"
)

func textBlock(text string, size float64, font string, y0 float64) docmodel.Block {
	return docmodel.Block{
		Lines: []docmodel.Line{{Spans: []docmodel.Span{{Text: text, Size: size, Font: font}}}},
		Y0:    y0,
		Y1:    y0 + size,
	}
}

// twoPageDoc is the canonical style-path scenario: body text at
// (11, regular), two headings at (16, bold), one per page.
func twoPageDoc() *docmodel.Document {
	return &docmodel.Document{
		Name: "paper.pdf",
		Pages: []docmodel.Page{
			{
				Number: 1, Width: 612, Height: 792,
				Blocks: []docmodel.Block{
					textBlock("Introduction", 16, "Helvetica-Bold", 72),
					textBlock("This is the intro paragraph.", 11, "Helvetica", 110),
					textBlock("More body text follows here.", 11, "Helvetica", 140),
				},
			},
			{
				Number: 2, Width: 612, Height: 792,
				Blocks: []docmodel.Block{
					textBlock("Methods", 16, "Helvetica-Bold", 72),
					textBlock("Body text on the second page.", 11, "Helvetica", 110),
				},
			},
		},
	}
}

func TestExtractStylePathWithTitleSuppressed(t *testing.T) {
	opts := DefaultOptions()
	opts.TitleExempt = []string{"paper.pdf"}

	got := Extract(twoPageDoc(), opts)
	if got.Title != "" {
		t.Errorf("expected suppressed title, got %q", got.Title)
	}
	want := []Entry{
		{Level: "H1", Text: "Introduction", Page: 0},
		{Level: "H1", Text: "Methods", Page: 1},
	}
	if !reflect.DeepEqual(got.Outline, want) {
		t.Errorf("expected %+v, got %+v", want, got.Outline)
	}
}

func TestExtractStylePathTitleSubsumesHeading(t *testing.T) {
	// Without suppression the 16pt span on page one becomes the
	// title and its heading entry is subsumed.
	got := Extract(twoPageDoc(), DefaultOptions())
	if got.Title != "Introduction" {
		t.Errorf("expected title %q, got %q", "Introduction", got.Title)
	}
	want := []Entry{{Level: "H1", Text: "Methods", Page: 1}}
	if !reflect.DeepEqual(got.Outline, want) {
		t.Errorf("expected %+v, got %+v", want, got.Outline)
	}
}

func TestExtractTocPrecedence(t *testing.T) {
	doc := twoPageDoc()
	doc.Toc = []docmodel.TocEntry{
		{Level: 1, Title: "Chapter One", Page: 1},
		{Level: 2, Title: "Background", Page: 1},
		{Level: 2, Title: "42", Page: 2}, // page-number leakage
		{Level: 1, Title: "Chapter Two", Page: 2},
		{Level: 2, Title: "Details ", Page: 2},
	}
	opts := DefaultOptions()
	opts.TitleExempt = []string{"paper.pdf"}

	got := Extract(doc, opts)
	want := []Entry{
		{Level: "H1", Text: "Chapter One", Page: 0},
		{Level: "H2", Text: "Background", Page: 0},
		{Level: "H1", Text: "Chapter Two", Page: 1},
		{Level: "H2", Text: "Details", Page: 1},
	}
	if !reflect.DeepEqual(got.Outline, want) {
		t.Errorf("expected TOC-derived outline %+v, got %+v", want, got.Outline)
	}
}

func TestExtractSmallTocFallsBackToStyles(t *testing.T) {
	doc := twoPageDoc()
	doc.Toc = []docmodel.TocEntry{
		{Level: 1, Title: "Partial", Page: 1},
		{Level: 1, Title: "Bookmarks", Page: 2},
	}
	opts := DefaultOptions()
	opts.TitleExempt = []string{"paper.pdf"}

	got := Extract(doc, opts)
	// Three entries or fewer: not worth trusting, style path wins.
	want := []Entry{
		{Level: "H1", Text: "Introduction", Page: 0},
		{Level: "H1", Text: "Methods", Page: 1},
	}
	if !reflect.DeepEqual(got.Outline, want) {
		t.Errorf("expected style-derived outline %+v, got %+v", want, got.Outline)
	}
}

func TestExtractNativeTocTrustedAtAnyCount(t *testing.T) {
	doc := &docmodel.Document{
		Name:      "notes.md",
		Title:     "Release Notes",
		TocNative: true,
		Toc: []docmodel.TocEntry{
			{Level: 1, Title: "Release Notes", Page: 1},
			{Level: 2, Title: "Fixes", Page: 1},
		},
	}
	got := Extract(doc, DefaultOptions())
	if got.Title != "Release Notes" {
		t.Errorf("expected provider title, got %q", got.Title)
	}
	// "Release Notes" itself is subsumed by the title.
	want := []Entry{{Level: "H2", Text: "Fixes", Page: 0}}
	if !reflect.DeepEqual(got.Outline, want) {
		t.Errorf("expected %+v, got %+v", want, got.Outline)
	}
}

func TestExtractLevelsAcrossStyles(t *testing.T) {
	doc := &docmodel.Document{
		Name: "levels.pdf",
		Pages: []docmodel.Page{
			{
				Number: 1, Width: 612, Height: 792,
				Blocks: []docmodel.Block{
					textBlock("Top Heading", 24, "Helvetica", 300),
					textBlock("Sub Heading Bold", 18, "Helvetica-Bold", 340),
					textBlock("Sub Heading Plain", 18, "Helvetica", 380),
					textBlock("Running body text one.", 11, "Helvetica", 420),
					textBlock("Running body text two.", 11, "Helvetica", 450),
				},
			},
		},
	}
	opts := DefaultOptions()
	opts.TitleExempt = []string{"levels.pdf"}

	got := Extract(doc, opts)
	want := []Entry{
		{Level: "H1", Text: "Top Heading", Page: 0},
		{Level: "H2", Text: "Sub Heading Bold", Page: 0},
		{Level: "H3", Text: "Sub Heading Plain", Page: 0},
	}
	if !reflect.DeepEqual(got.Outline, want) {
		t.Errorf("expected %+v, got %+v", want, got.Outline)
	}
}

func TestExtractTocPageContributesOnlyMarker(t *testing.T) {
	doc := &docmodel.Document{
		Name: "manual.pdf",
		Pages: []docmodel.Page{
			{
				Number: 1, Width: 612, Height: 792,
				Blocks: []docmodel.Block{
					textBlock("Table of Contents", 16, "Helvetica-Bold", 72),
					textBlock("Installation Guide", 16, "Helvetica-Bold", 110),
					textBlock("Troubleshooting", 16, "Helvetica-Bold", 140),
				},
			},
			{
				Number: 2, Width: 612, Height: 792,
				Blocks: []docmodel.Block{
					textBlock("Installation Guide", 16, "Helvetica-Bold", 72),
					textBlock("Plain body text for the installer.", 11, "Helvetica", 110),
					textBlock("Even more body text here.", 11, "Helvetica", 140),
					textBlock("And another body paragraph.", 11, "Helvetica", 170),
					textBlock("Body keeps going for a while.", 11, "Helvetica", 200),
					textBlock("Final paragraph of the page.", 11, "Helvetica", 230),
				},
			},
		},
	}
	opts := DefaultOptions()
	opts.TitleExempt = []string{"manual.pdf"}

	got := Extract(doc, opts)
	want := []Entry{
		{Level: "H1", Text: "Table of Contents", Page: 0},
		{Level: "H1", Text: "Installation Guide", Page: 1},
	}
	if !reflect.DeepEqual(got.Outline, want) {
		t.Errorf("expected only the marker from the TOC page, got %+v", got.Outline)
	}
}

func TestExtractZeroPages(t *testing.T) {
	got := Extract(&docmodel.Document{Name: "blank.pdf"}, DefaultOptions())
	if got.Title != "" {
		t.Errorf("expected empty title, got %q", got.Title)
	}
	if got.Outline == nil || len(got.Outline) != 0 {
		t.Errorf("expected an empty, non-nil outline, got %#v", got.Outline)
	}
}

func TestExtractZeroBlocks(t *testing.T) {
	doc := &docmodel.Document{
		Name:  "scanned.pdf",
		Pages: []docmodel.Page{{Number: 1, Width: 612, Height: 792}},
	}
	got := Extract(doc, DefaultOptions())
	if got.Title != "" {
		t.Errorf("expected empty title, got %q", got.Title)
	}
	if got.Outline == nil || len(got.Outline) != 0 {
		t.Errorf("expected an empty, non-nil outline, got %#v", got.Outline)
	}
}

func TestExtractBlockGranularityDominantStyle(t *testing.T) {
	// A two-line block: heading line in bold 16pt plus a short bold
	// 16pt continuation; dominant style is (16, bold).
	block := docmodel.Block{
		Lines: []docmodel.Line{
			{Spans: []docmodel.Span{{Text: "Safety ", Size: 16, Font: "Arial-Bold"}}},
			{Spans: []docmodel.Span{{Text: "Instructions", Size: 16, Font: "Arial-Bold"}}},
		},
		Y0: 72, Y1: 110,
	}
	doc := &docmodel.Document{
		Name: "flyer.pdf",
		Pages: []docmodel.Page{
			{
				Number: 1, Width: 612, Height: 792,
				Blocks: []docmodel.Block{
					block,
					textBlock("Body text explaining the details.", 11, "Arial", 150),
					textBlock("Second paragraph of body text.", 11, "Arial", 180),
				},
			},
		},
	}
	opts := DefaultOptions()
	opts.Granularity = GranularityBlock
	opts.Rules = DefaultBlockRules()
	opts.TitleExempt = []string{"flyer.pdf"}

	got := Extract(doc, opts)
	want := []Entry{{Level: "H1", Text: "Safety Instructions", Page: 0}}
	if !reflect.DeepEqual(got.Outline, want) {
		t.Errorf("expected %+v, got %+v", want, got.Outline)
	}
}
