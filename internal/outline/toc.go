package outline

import (
	"strconv"

	"github.com/prakriti82/adobe-hackathon-round-1a/internal/docmodel"
)

// fromToc maps embedded table-of-contents entries directly to outline
// entries. Entries whose normalized title is purely numeric are
// dropped: page numbers sometimes leak into TOC data.
func fromToc(entries []docmodel.TocEntry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		title := Normalize(e.Title)
		if title == "" || allDigits(title) {
			continue
		}
		out = append(out, Entry{
			Level: "H" + strconv.Itoa(e.Level),
			Text:  title,
			Page:  e.Page,
		})
	}
	return out
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
