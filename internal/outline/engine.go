// Package outline infers a hierarchical document outline from
// typographic signals. When a document carries a substantial embedded
// table of contents that is trusted instead; otherwise blocks whose
// style stands out from the running-text baseline are classified as
// headings and ranked into levels by prominence.
package outline

import (
	"strings"

	"github.com/prakriti82/adobe-hackathon-round-1a/internal/docmodel"
)

// Granularity selects the unit of classification.
type Granularity string

const (
	// GranularityLine classifies individual lines.
	GranularityLine Granularity = "line"
	// GranularityBlock classifies whole paragraph blocks.
	GranularityBlock Granularity = "block"
)

// Entry is one heading of the extracted outline. Page is zero-based
// in the final output.
type Entry struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Document is the extraction result for one input document.
type Document struct {
	Title   string  `json:"title"`
	Outline []Entry `json:"outline"`
}

// Options configures one extraction run. All thresholds and denylists
// live here rather than in the classifier, so document-set specific
// tuning stays configuration data.
type Options struct {
	Granularity   Granularity
	Rules         RuleSet
	TitleDenylist []string // span texts never used as title parts
	TitleExempt   []string // document names whose title is suppressed
	// TitleUpperRegion restricts the title search to blocks whose
	// top lies in the upper 60% of the first page.
	TitleUpperRegion bool
	// MinTocEntries is the entry count an embedded (non-native) TOC
	// must exceed to be trusted over style analysis.
	MinTocEntries int
}

// DefaultOptions returns line-granularity extraction with the stock
// rule set.
func DefaultOptions() Options {
	return Options{
		Granularity:      GranularityLine,
		Rules:            DefaultLineRules(),
		TitleUpperRegion: true,
		MinTocEntries:    3,
	}
}

// Extract runs the full pipeline on one document. It holds no state
// beyond the call: documents are independent and may be processed
// concurrently.
func Extract(doc *docmodel.Document, opts Options) Document {
	out := Document{Outline: []Entry{}}

	switch {
	case doc.TocNative && len(doc.Toc) > 0:
		out.Outline = fromToc(doc.Toc)
	case len(doc.Toc) > opts.MinTocEntries:
		out.Outline = fromToc(doc.Toc)
	default:
		out.Outline = styleOutline(doc, opts)
	}

	out.Title = ExtractTitle(doc, opts)
	out.Outline = finalize(out.Title, out.Outline)
	return out
}

// styleOutline is the typographic fallback: profile the body style,
// classify distinct blocks as headings and rank their styles.
func styleOutline(doc *docmodel.Document, opts Options) []Entry {
	blocks := collectBlocks(doc, opts.Granularity)
	body, ok := BodyStyle(blocks)
	if !ok {
		return []Entry{}
	}

	// Pages carrying a table-of-contents marker contribute only the
	// marker itself; their body lines are TOC data, not headings.
	tocPages := make(map[int]int)
	for i, b := range blocks {
		if _, flagged := tocPages[b.Page]; !flagged && tocMarker(b.Text) {
			tocPages[b.Page] = i
		}
	}

	cls := NewClassifier(opts.Rules)
	var accepted []Block
	styleSeen := make(map[Style]bool)
	var styles []Style
	for i, b := range blocks {
		if marker, flagged := tocPages[b.Page]; flagged {
			if i != marker {
				continue
			}
		} else if !cls.IsHeading(b, body) {
			continue
		}
		accepted = append(accepted, b)
		if !styleSeen[b.Style] {
			styleSeen[b.Style] = true
			styles = append(styles, b.Style)
		}
	}

	levels := AssignLevels(styles)
	entries := make([]Entry, 0, len(accepted))
	for _, b := range accepted {
		entries = append(entries, Entry{
			Level: levels[b.Style],
			Text:  b.Text,
			Page:  b.Page,
		})
	}
	return entries
}

// collectBlocks flattens the document into classification units with
// normalized text and a dominant style each. Empty units are dropped.
func collectBlocks(doc *docmodel.Document, g Granularity) []Block {
	var blocks []Block
	for _, page := range doc.Pages {
		for _, b := range page.Blocks {
			if g == GranularityBlock {
				var texts []string
				var spans []docmodel.Span
				for _, l := range b.Lines {
					texts = append(texts, l.Text())
					spans = append(spans, l.Spans...)
				}
				text := Normalize(strings.Join(texts, " "))
				style, ok := DominantStyle(spans)
				if text == "" || !ok {
					continue
				}
				blocks = append(blocks, Block{
					Text:  text,
					Style: style,
					Lines: len(b.Lines),
					Page:  page.Number,
				})
				continue
			}
			for _, l := range b.Lines {
				text := Normalize(l.Text())
				style, ok := DominantStyle(l.Spans)
				if text == "" || !ok {
					continue
				}
				blocks = append(blocks, Block{
					Text:  text,
					Style: style,
					Lines: 1,
					Page:  page.Number,
				})
			}
		}
	}
	return blocks
}
