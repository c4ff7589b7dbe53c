package outline

import (
	"regexp"
	"strings"
)

// RuleSet holds the classifier thresholds and denylists. Both the
// line-level and block-level granularities use the same rules with
// different ceilings.
type RuleSet struct {
	MaxWords int      // word-count ceiling, exceeding disqualifies
	MaxLines int      // physical-line ceiling per block, 0 = no cap
	Labels   []string // form/table labels, case-insensitive exact match
	Phrases  []string // known non-heading boilerplate, case-insensitive exact match
}

// DefaultLineRules returns the rule set for line-level analysis.
func DefaultLineRules() RuleSet {
	return RuleSet{
		MaxWords: 15,
		Labels:   defaultLabels(),
	}
}

// DefaultBlockRules returns the rule set for block-level analysis.
func DefaultBlockRules() RuleSet {
	return RuleSet{
		MaxWords: 30,
		MaxLines: 5,
		Labels:   defaultLabels(),
	}
}

func defaultLabels() []string {
	return []string{"name", "age", "s.no", "date", "relationship", "remarks", "version", "goals"}
}

var (
	pureNumber   = regexp.MustCompile(`^[\d.]+$`)
	versionLabel = regexp.MustCompile(`^(?i:version)\s+\d+(\.\d+)*$`)
	listMarker   = regexp.MustCompile(`^\d+[.)]\s`)
	dashRun      = regexp.MustCompile(`----`)
	letter       = regexp.MustCompile(`[a-zA-Z]`)
)

// Classifier decides whether a block is a heading candidate relative
// to the document's body style.
type Classifier struct {
	rules   RuleSet
	labels  map[string]bool
	phrases map[string]bool
}

func NewClassifier(rules RuleSet) *Classifier {
	c := &Classifier{
		rules:   rules,
		labels:  make(map[string]bool, len(rules.Labels)),
		phrases: make(map[string]bool, len(rules.Phrases)),
	}
	for _, l := range rules.Labels {
		c.labels[strings.ToLower(l)] = true
	}
	for _, p := range rules.Phrases {
		c.phrases[strings.ToLower(p)] = true
	}
	return c
}

// IsHeading evaluates the rule chain, short-circuiting on the first
// failure. The rules are independent conjuncts; ordering only matters
// for speed.
func (c *Classifier) IsHeading(b Block, body Style) bool {
	// Style must be distinct from running text: larger, or bold at
	// equal size against a non-bold body.
	if !b.Style.MoreProminent(body) {
		return false
	}

	// Headings are concise.
	words := len(strings.Fields(b.Text))
	if words > c.rules.MaxWords {
		return false
	}
	if c.rules.MaxLines > 0 && b.Lines > c.rules.MaxLines {
		return false
	}

	// Sentences and clauses end with punctuation, labels do not.
	if strings.HasSuffix(b.Text, ".") || strings.HasSuffix(b.Text, ":") || strings.HasSuffix(b.Text, ",") {
		return false
	}

	// Form/table labels and bare numbering.
	lower := strings.ToLower(b.Text)
	if c.labels[lower] || pureNumber.MatchString(b.Text) || versionLabel.MatchString(b.Text) {
		return false
	}
	if listMarker.MatchString(b.Text) && words > 10 {
		return false
	}

	// Junk: URLs, separator runs, symbol soup.
	if strings.Contains(lower, "www.") || strings.Contains(lower, ".com") {
		return false
	}
	if dashRun.MatchString(b.Text) || len(letter.FindAllString(b.Text, -1)) < 3 {
		return false
	}

	// Document-specific boilerplate.
	if c.phrases[lower] {
		return false
	}

	return true
}

// tocMarker matches the page-level table-of-contents flag. A page
// containing a marker block contributes only that block as a heading;
// the TOC body lines themselves are not usable outline entries.
func tocMarker(text string) bool {
	return strings.Contains(strings.ToLower(text), "table of contents")
}
