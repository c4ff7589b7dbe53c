package outline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// rulesFile is the on-disk shape of an extraction rules override.
// Every field is optional; absent fields keep their defaults.
type rulesFile struct {
	Granularity      string   `yaml:"granularity"` // "line" or "block"
	MaxWords         int      `yaml:"max_words"`
	MaxLines         int      `yaml:"max_lines"`
	LabelDenylist    []string `yaml:"label_denylist"`
	PhraseDenylist   []string `yaml:"phrase_denylist"`
	TitleDenylist    []string `yaml:"title_denylist"`
	TitleExempt      []string `yaml:"title_exempt"`
	TitleUpperRegion *bool    `yaml:"title_upper_region"`
	MinTocEntries    *int     `yaml:"min_toc_entries"`
}

// LoadOptions reads a YAML rules file and merges it over the
// defaults. Documents differ in their boilerplate, so the denylists
// are supplied as data rather than compiled into the classifier.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read rules file: %w", err)
	}
	var rf rulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return opts, fmt.Errorf("parse rules file: %w", err)
	}

	switch rf.Granularity {
	case "":
	case string(GranularityLine):
		opts.Granularity = GranularityLine
		opts.Rules = DefaultLineRules()
	case string(GranularityBlock):
		opts.Granularity = GranularityBlock
		opts.Rules = DefaultBlockRules()
	default:
		return opts, fmt.Errorf("unknown granularity %q", rf.Granularity)
	}

	if rf.MaxWords > 0 {
		opts.Rules.MaxWords = rf.MaxWords
	}
	if rf.MaxLines > 0 {
		opts.Rules.MaxLines = rf.MaxLines
	}
	if rf.LabelDenylist != nil {
		opts.Rules.Labels = rf.LabelDenylist
	}
	if rf.PhraseDenylist != nil {
		opts.Rules.Phrases = rf.PhraseDenylist
	}
	if rf.TitleDenylist != nil {
		opts.TitleDenylist = rf.TitleDenylist
	}
	if rf.TitleExempt != nil {
		opts.TitleExempt = rf.TitleExempt
	}
	if rf.TitleUpperRegion != nil {
		opts.TitleUpperRegion = *rf.TitleUpperRegion
	}
	if rf.MinTocEntries != nil {
		opts.MinTocEntries = *rf.MinTocEntries
	}
	return opts, nil
}
