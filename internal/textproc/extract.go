package textproc

import (
	"regexp"
	"sort"
	"strings"
)

// tokenCleanRe strips characters a token may not contain: anything outside
// word characters (letters, combining marks, digits, underscore),
// apostrophe, and hyphen.
var tokenCleanRe = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_'-]`)

// Tokenize splits text on whitespace with no filtering.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// CleanToken strips disallowed characters from a raw token.
func CleanToken(token string) string {
	return tokenCleanRe.ReplaceAllString(token, "")
}

// ExtractUniqueWords lowercases and tokenizes text, cleans each token, and
// keeps tokens of at least minLength that are not stop words (when removal is
// enabled). The result is deduplicated and sorted lexicographically.
func ExtractUniqueWords(text string, removeStopWords bool, minLength int, stopWords map[string]struct{}) []string {
	if stopWords == nil {
		stopWords = englishStopWords
	}

	unique := make(map[string]struct{})
	for _, token := range Tokenize(strings.ToLower(text)) {
		clean := CleanToken(token)
		if len([]rune(clean)) < minLength {
			continue
		}
		if removeStopWords {
			if _, isStop := stopWords[clean]; isStop {
				continue
			}
		}
		unique[clean] = struct{}{}
	}

	words := make([]string, 0, len(unique))
	for w := range unique {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// CountFrequencies makes a second pass over the raw token stream and counts
// occurrences of tokens already accepted into the vocabulary. Tokens filtered
// out of the vocabulary (stop words, short tokens) never accumulate frequency
// even though the raw stream still contains them. The two passes share the
// vocabulary as an explicit membership set to keep that invariant auditable.
func CountFrequencies(text string, vocabulary []string) map[string]int {
	allowed := make(map[string]struct{}, len(vocabulary))
	for _, w := range vocabulary {
		allowed[w] = struct{}{}
	}

	freq := make(map[string]int, len(vocabulary))
	for _, token := range Tokenize(text) {
		clean := strings.ToLower(CleanToken(token))
		if _, ok := allowed[clean]; !ok {
			continue
		}
		freq[clean]++
	}
	return freq
}

// FrequencyEntry is one row of the capped frequency table.
type FrequencyEntry struct {
	Word      string
	Frequency int
}

// FrequencyTable lists each counted word in order of its first occurrence in
// the text and caps the table at maxEntries (0 means no cap). The cap is a
// bulk-insert throughput ceiling, not an analytical choice; callers configure
// it explicitly.
func FrequencyTable(text string, freq map[string]int, maxEntries int) []FrequencyEntry {
	seen := make(map[string]struct{}, len(freq))
	entries := make([]FrequencyEntry, 0, len(freq))
	for _, token := range Tokenize(text) {
		clean := strings.ToLower(CleanToken(token))
		count, ok := freq[clean]
		if !ok {
			continue
		}
		if _, dup := seen[clean]; dup {
			continue
		}
		seen[clean] = struct{}{}
		entries = append(entries, FrequencyEntry{Word: clean, Frequency: count})
		if maxEntries > 0 && len(entries) >= maxEntries {
			break
		}
	}
	return entries
}
