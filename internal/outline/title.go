package outline

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/prakriti82/adobe-hackathon-round-1a/internal/docmodel"
)

// upperRegion is the fraction of page height considered when the
// title search is restricted to the top of the first page. Large
// decorative text lower on the page is not a title.
const upperRegion = 0.6

// ExtractTitle isolates the dominant largest-font text on the first
// page. Returns "" when there is no page, no qualifying span, or the
// document is flagged title-exempt.
func ExtractTitle(doc *docmodel.Document, opts Options) string {
	for _, name := range opts.TitleExempt {
		if strings.EqualFold(name, doc.Name) {
			return ""
		}
	}
	if len(doc.Pages) == 0 {
		// Sources with structural markup carry a provider title
		// hint instead of rendered pages.
		return Normalize(doc.Title)
	}

	page := doc.Pages[0]
	blocks := page.Blocks
	if opts.TitleUpperRegion && page.Height > 0 {
		var upper []docmodel.Block
		for _, b := range blocks {
			if b.Y0 <= page.Height*upperRegion {
				upper = append(upper, b)
			}
		}
		blocks = upper
	}

	// Largest font size among spans with real content.
	var maxSize float64
	for _, b := range blocks {
		for _, l := range b.Lines {
			for _, sp := range l.Spans {
				if utf8.RuneCountInString(strings.TrimSpace(sp.Text)) > 1 && sp.Size > maxSize {
					maxSize = sp.Size
				}
			}
		}
	}
	if maxSize == 0 {
		return ""
	}

	// Collect everything within 95% of the maximum, minus known
	// boilerplate that happens to be set large.
	threshold := math.Round(maxSize * 0.95)
	var parts []string
	for _, b := range blocks {
		for _, l := range b.Lines {
			for _, sp := range l.Spans {
				if math.Round(sp.Size) < threshold {
					continue
				}
				text := Normalize(sp.Text)
				if utf8.RuneCountInString(text) <= 2 || blacklisted(text, opts.TitleDenylist) {
					continue
				}
				parts = append(parts, text)
			}
		}
	}
	return strings.Join(parts, " ")
}

func blacklisted(text string, denylist []string) bool {
	for _, d := range denylist {
		if strings.EqualFold(text, d) {
			return true
		}
	}
	return false
}
