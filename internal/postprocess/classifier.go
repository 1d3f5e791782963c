// Package postprocess repairs ASR segment boundaries: it re-joins
// sentences that were falsely split (titles, abbreviations, date
// ordinals, missing punctuation), normalizes capitalization, and
// re-splits over-long sentences while keeping timings consistent.
package postprocess

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Classifier decides whether a text fragment is a complete sentence
// or must be buffered and merged with the following fragment.
//
// The detection is a fixed lexicon plus two compiled patterns, not a
// language model: a cheap, false-positive-tolerant filter for the
// ASR model's habit of breaking segments at abbreviation periods and
// mid-sentence pauses.
type Classifier struct {
	titles              []string
	endsWithTitle       *regexp.Regexp
	endsWithNumber      *regexp.Regexp
	endsWithoutTerminal *regexp.Regexp
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithTitles adds entries to the title/abbreviation lexicon.
func WithTitles(titles ...string) ClassifierOption {
	return func(c *Classifier) {
		c.titles = append(c.titles, titles...)
	}
}

// NewClassifier creates a Classifier with the default lexicon and any
// options applied.
func NewClassifier(opts ...ClassifierOption) *Classifier {
	c := &Classifier{
		titles: append([]string(nil), defaultTitles...),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.endsWithTitle = regexp.MustCompile(
		`(?i)\b(` + titleAlternation(c.titles) + `)[.,:;!?]*$`)
	c.endsWithNumber = regexp.MustCompile(`\b([1-9]|[12][0-9]|3[01])\.$`)
	c.endsWithoutTerminal = regexp.MustCompile(`[^.?!]$`)
	return c
}

// titleAlternation builds the quoted alternation for the title
// pattern, dropping duplicate lexicon entries.
func titleAlternation(titles []string) string {
	seen := make(map[string]bool, len(titles))
	quoted := make([]string, 0, len(titles))
	for _, title := range titles {
		key := strings.ToLower(title)
		if title == "" || seen[key] {
			continue
		}
		seen[key] = true
		quoted = append(quoted, regexp.QuoteMeta(title))
	}
	return strings.Join(quoted, "|")
}

// IsIncomplete reports whether text must be buffered because it does
// not form a complete sentence. The caller passes trimmed text.
//
// A fragment is incomplete when it ends with a lexicon title or
// abbreviation (trailing punctuation ignored), with a 1-31 ordinal
// followed by a single period (date-like, "am 3."), or with anything
// other than '.', '?' or '!'. Empty text is incomplete: with no
// terminal punctuation there is nothing to end a sentence.
func (c *Classifier) IsIncomplete(text string) bool {
	if text == "" {
		return true
	}
	return c.endsWithTitle.MatchString(text) ||
		c.endsWithNumber.MatchString(text) ||
		c.endsWithoutTerminal.MatchString(text)
}

// IsComplete reports the opposite of IsIncomplete.
func (c *Classifier) IsComplete(text string) bool {
	return !c.IsIncomplete(text)
}

// LoadTitles reads a lexicon file with one title per line. Blank
// lines and lines starting with # are ignored.
func LoadTitles(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- lexicon path comes from user config
	if err != nil {
		return nil, fmt.Errorf("cannot open lexicon file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var titles []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		titles = append(titles, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read lexicon file: %w", err)
	}
	return titles, nil
}
