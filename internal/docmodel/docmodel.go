// Package docmodel defines the flat document model consumed by the
// outline engine: ordered pages of positioned text blocks plus an
// optional embedded table of contents. Sources (internal/source)
// produce it; the engine never touches a file format directly.
package docmodel

// Span is a run of text sharing one font.
type Span struct {
	Text string
	Size float64 // font size in points
	Font string  // font name as reported by the document
}

// Line is a horizontal run of spans sharing a baseline.
type Line struct {
	Spans []Span
}

// Block is a paragraph-like region of consecutive lines.
// Coordinates are top-origin: Y0 is the distance from the top of the
// page to the top of the block.
type Block struct {
	Lines          []Line
	X0, Y0, X1, Y1 float64
}

// Page holds the blocks of one page. Number is 1-based and matches
// the natural page-enumeration order of the source document.
type Page struct {
	Number int
	Width  float64
	Height float64
	Blocks []Block
}

// TocEntry is one entry of an embedded table of contents.
// Page is 1-based.
type TocEntry struct {
	Level int
	Title string
	Page  int
}

// Document is one parsed input document. It carries no state shared
// with any other document.
type Document struct {
	Name  string // source file name, used for per-document overrides
	Title string // provider title hint, used only when Pages is empty
	Pages []Page
	Toc   []TocEntry

	// TocNative marks a Toc built from structural markup (HTML
	// headings, DOCX styles, Markdown) rather than PDF bookmark
	// data. Native TOCs are trusted regardless of entry count.
	TocNative bool
}

// Text returns the concatenated span text of a line, joined as-is.
func (l Line) Text() string {
	var out string
	for _, s := range l.Spans {
		out += s.Text
	}
	return out
}
