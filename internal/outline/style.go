package outline

import (
	"math"
	"strings"

	"github.com/prakriti82/adobe-hackathon-round-1a/internal/docmodel"
)

// Style identifies a typographic style by rounded font size and
// boldness. It is a plain value type usable as a map key.
type Style struct {
	Size int
	Bold bool
}

// MoreProminent reports whether s denotes a shallower heading level
// than other: larger size wins, bold breaks ties.
func (s Style) MoreProminent(other Style) bool {
	if s.Size != other.Size {
		return s.Size > other.Size
	}
	return s.Bold && !other.Bold
}

// StyleOf derives the style of a single span. Boldness is inferred
// from the font name, which is how PDF readers expose it.
func StyleOf(span docmodel.Span) Style {
	return Style{
		Size: int(math.Round(span.Size)),
		Bold: strings.Contains(strings.ToLower(span.Font), "bold"),
	}
}

// Block is one classified unit: a line or paragraph with normalized
// text, its dominant style, its physical line count and its 1-based
// page number.
type Block struct {
	Text  string
	Style Style
	Lines int
	Page  int
}

// DominantStyle returns the most frequent span style, ties broken by
// first-seen order. ok is false when there are no spans.
func DominantStyle(spans []docmodel.Span) (Style, bool) {
	if len(spans) == 0 {
		return Style{}, false
	}
	counts := make(map[Style]int, len(spans))
	var order []Style
	for _, sp := range spans {
		st := StyleOf(sp)
		if _, seen := counts[st]; !seen {
			order = append(order, st)
		}
		counts[st]++
	}
	best := order[0]
	for _, st := range order[1:] {
		if counts[st] > counts[best] {
			best = st
		}
	}
	return best, true
}

// BodyStyle finds the running-text baseline: the style with the
// highest block count across the whole document. Each block counts
// once regardless of how many spans it holds. ok is false for a
// document with zero blocks, in which case classification must
// short-circuit to an empty outline.
func BodyStyle(blocks []Block) (Style, bool) {
	if len(blocks) == 0 {
		return Style{}, false
	}
	counts := make(map[Style]int, len(blocks))
	var order []Style
	for _, b := range blocks {
		if _, seen := counts[b.Style]; !seen {
			order = append(order, b.Style)
		}
		counts[b.Style]++
	}
	best := order[0]
	for _, st := range order[1:] {
		if counts[st] > counts[best] {
			best = st
		}
	}
	return best, true
}
