package source

import (
	"fmt"
	"io"
	"os"
	"sort"

	pdflib "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/prakriti82/adobe-hackathon-round-1a/internal/docmodel"
)

// PDFSource reads PDFs. Text spans with font metadata come from
// ledongthuc/pdf; the embedded table of contents (bookmarks with page
// numbers) comes from pdfcpu.
type PDFSource struct{}

// Geometry thresholds for grouping raw glyph runs, all relative to
// the current font size. PDF output has no block structure of its
// own, so lines are grouped by baseline and blocks by vertical gap.
const (
	lineTolerance = 2.0 // max baseline Y delta within one line, points
	spaceGapRatio = 0.3 // X gap beyond which a space is inserted
	blockGapRatio = 1.8 // baseline gap beyond which a new block starts
)

func (s *PDFSource) Load(r io.Reader, filename string) (*docmodel.Document, error) {
	// Both readers need a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "outliner-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	doc := &docmodel.Document{Name: filename}

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		width, height := pageSize(page)
		p := docmodel.Page{Number: i, Width: width, Height: height}

		// Content extraction can panic on malformed streams; an
		// unreadable page is treated as empty rather than failing
		// the whole document.
		texts := pageTexts(page)
		p.Blocks = buildBlocks(texts, height)
		doc.Pages = append(doc.Pages, p)
	}

	doc.Toc = readBookmarks(tmpPath)
	return doc, nil
}

func pageTexts(page pdflib.Page) (texts []pdflib.Text) {
	defer func() {
		if r := recover(); r != nil {
			texts = nil
		}
	}()
	return page.Content().Text
}

// pageSize resolves the MediaBox, walking up the page tree for
// inherited values.
func pageSize(page pdflib.Page) (w, h float64) {
	v := page.V
	for depth := 0; depth < 16 && !v.IsNull(); depth++ {
		mb := v.Key("MediaBox")
		if !mb.IsNull() && mb.Len() == 4 {
			w = mb.Index(2).Float64() - mb.Index(0).Float64()
			h = mb.Index(3).Float64() - mb.Index(1).Float64()
			return w, h
		}
		v = v.Key("Parent")
	}
	// US Letter fallback.
	return 612, 792
}

type pdfLine struct {
	y     float64 // baseline, bottom-origin
	size  float64 // largest font size on the line
	x0    float64
	x1    float64
	spans []docmodel.Span
}

// buildBlocks groups raw glyph runs into lines by baseline Y, then
// lines into paragraph blocks by vertical gap. Coordinates flip to
// top-origin so the engine's upper-region check is origin-agnostic.
func buildBlocks(texts []pdflib.Text, pageHeight float64) []docmodel.Block {
	if len(texts) == 0 {
		return nil
	}

	ordered := make([]pdflib.Text, len(texts))
	copy(ordered, texts)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Y != ordered[j].Y {
			return ordered[i].Y > ordered[j].Y // top of page first
		}
		return ordered[i].X < ordered[j].X
	})

	var lines []pdfLine
	var run []pdflib.Text
	flushLine := func() {
		if len(run) == 0 {
			return
		}
		lines = append(lines, assembleLine(run))
		run = nil
	}
	for _, t := range ordered {
		if len(run) > 0 && abs(t.Y-run[0].Y) > lineTolerance {
			flushLine()
		}
		run = append(run, t)
	}
	flushLine()

	var blocks []docmodel.Block
	var cur []pdfLine
	flushBlock := func() {
		if len(cur) == 0 {
			return
		}
		blocks = append(blocks, assembleBlock(cur, pageHeight))
		cur = nil
	}
	for _, l := range lines {
		if len(cur) > 0 {
			prev := cur[len(cur)-1]
			gap := prev.y - l.y
			if gap > blockGapRatio*max(prev.size, 1) {
				flushBlock()
			}
		}
		cur = append(cur, l)
	}
	flushBlock()

	return blocks
}

// assembleLine merges glyph runs on one baseline into spans, starting
// a new span on font changes and inserting spaces across visible X
// gaps.
func assembleLine(run []pdflib.Text) pdfLine {
	l := pdfLine{y: run[0].Y, x0: run[0].X, x1: run[0].X + run[0].W}

	var cur docmodel.Span
	var prevEnd float64
	for i, t := range run {
		if t.FontSize > l.size {
			l.size = t.FontSize
		}
		if t.X+t.W > l.x1 {
			l.x1 = t.X + t.W
		}
		if i == 0 {
			cur = docmodel.Span{Text: t.S, Size: t.FontSize, Font: t.Font}
			prevEnd = t.X + t.W
			continue
		}
		gap := t.X - prevEnd
		if t.Font != cur.Font || t.FontSize != cur.Size {
			l.spans = append(l.spans, cur)
			cur = docmodel.Span{Size: t.FontSize, Font: t.Font}
			if gap > spaceGapRatio*t.FontSize {
				cur.Text = " "
			}
		} else if gap > spaceGapRatio*t.FontSize {
			cur.Text += " "
		}
		cur.Text += t.S
		prevEnd = t.X + t.W
	}
	l.spans = append(l.spans, cur)
	return l
}

func assembleBlock(lines []pdfLine, pageHeight float64) docmodel.Block {
	b := docmodel.Block{X0: lines[0].x0, X1: lines[0].x1}
	for _, l := range lines {
		if l.x0 < b.X0 {
			b.X0 = l.x0
		}
		if l.x1 > b.X1 {
			b.X1 = l.x1
		}
		b.Lines = append(b.Lines, docmodel.Line{Spans: l.spans})
	}
	top := lines[0]
	bottom := lines[len(lines)-1]
	b.Y0 = max(pageHeight-(top.y+top.size), 0)
	b.Y1 = max(pageHeight-bottom.y, 0)
	return b
}

// readBookmarks flattens the PDF bookmark tree into ordered TOC
// entries. Missing or unreadable bookmarks are simply an empty TOC.
func readBookmarks(path string) []docmodel.TocEntry {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	bms, err := api.Bookmarks(f, nil)
	if err != nil {
		return nil
	}

	var toc []docmodel.TocEntry
	var walk func(bs []pdfcpu.Bookmark, level int)
	walk = func(bs []pdfcpu.Bookmark, level int) {
		for _, b := range bs {
			toc = append(toc, docmodel.TocEntry{
				Level: level,
				Title: b.Title,
				Page:  b.PageFrom,
			})
			walk(b.Kids, level+1)
		}
	}
	walk(bms, 1)
	return toc
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
