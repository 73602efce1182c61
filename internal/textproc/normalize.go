package textproc

import (
	"regexp"
	"strings"
)

var (
	urlRe   = regexp.MustCompile(`https?://\S+`)
	emailRe = regexp.MustCompile(`[^\s@]+@[^\s@]+\.[^\s@]+`)
	htmlRe  = regexp.MustCompile(`<[^>]*>`)
	// Everything that is not a word character, apostrophe, or hyphen
	// becomes a space. Word characters include combining marks, which
	// Bengali script needs for its vowel signs. Punctuation boundaries
	// become token boundaries; this is lossy and intentional.
	specialRe = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\s'-]`)
	spaceRe   = regexp.MustCompile(`\s+`)
)

// Options controls the normalization pipeline. Each step is independently
// toggleable; the zero value disables everything.
type Options struct {
	StripSpecialChars    bool
	CollapseWhitespace   bool
	Lowercase            bool
	RemoveDuplicateLines bool
	MaxLength            int // 0 means no truncation
}

// DefaultOptions is the pipeline used ahead of vocabulary extraction.
func DefaultOptions() Options {
	return Options{
		StripSpecialChars:  true,
		CollapseWhitespace: true,
		Lowercase:          true,
	}
}

// Normalize runs the preprocessing pipeline over raw extracted text.
// Empty input yields empty output; Normalize never fails.
func Normalize(text string, opts Options) string {
	if opts.StripSpecialChars {
		text = stripSpecialCharacters(text)
	}
	if opts.CollapseWhitespace {
		text = collapseWhitespace(text)
	}
	if opts.Lowercase {
		text = strings.ToLower(text)
	}
	if opts.RemoveDuplicateLines {
		text = removeDuplicateLines(text)
	}
	if opts.MaxLength > 0 {
		text = Truncate(text, opts.MaxLength)
	}
	return text
}

// stripSpecialCharacters removes URLs, email-like tokens, and HTML tags, then
// replaces remaining special characters with spaces (apostrophes and hyphens
// survive inside words).
func stripSpecialCharacters(text string) string {
	text = urlRe.ReplaceAllString(text, "")
	text = emailRe.ReplaceAllString(text, "")
	text = htmlRe.ReplaceAllString(text, "")
	text = specialRe.ReplaceAllString(text, " ")
	return text
}

func collapseWhitespace(text string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}

func removeDuplicateLines(text string) string {
	lines := strings.Split(text, "\n")
	seen := make(map[string]struct{}, len(lines))
	unique := lines[:0]
	for _, line := range lines {
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		unique = append(unique, line)
	}
	return strings.Join(unique, "\n")
}

// Truncate limits text to maxLength runes, cutting at the last word boundary
// when one falls within 80% of the limit, and appends an ellipsis marker.
func Truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}

	// The boundary position must be measured in runes so multibyte text
	// does not overshoot the 80% threshold.
	truncated := runes[:maxLength]
	lastSpace := -1
	for i, r := range truncated {
		if r == ' ' {
			lastSpace = i
		}
	}
	if lastSpace > maxLength*8/10 {
		return string(truncated[:lastSpace]) + "..."
	}
	return string(truncated) + "..."
}
