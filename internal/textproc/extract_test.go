package textproc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanvir/vocabflash/internal/textproc"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"one", "two", "three"}, textproc.Tokenize("one  two\tthree"))
	assert.Empty(t, textproc.Tokenize("   "))
}

func TestExtractUniqueWords_DedupLowercaseSort(t *testing.T) {
	words := textproc.ExtractUniqueWords(
		"The Quick quick FOX fox jumps", true, 3,
		textproc.StopWords(textproc.LangEnglish),
	)

	// "the" is a stop word; "quick" and "fox" appear twice but count once.
	assert.Equal(t, []string{"fox", "jumps", "quick"}, words)
}

func TestExtractUniqueWords_MinLength(t *testing.T) {
	words := textproc.ExtractUniqueWords("go is ok but lexicon survives", false, 3, nil)
	assert.NotContains(t, words, "go")
	assert.NotContains(t, words, "is")
	assert.NotContains(t, words, "ok")
	assert.Contains(t, words, "lexicon")
	assert.Contains(t, words, "survives")
}

func TestExtractUniqueWords_StopWordRemovalToggle(t *testing.T) {
	withRemoval := textproc.ExtractUniqueWords("with the words", true, 3, nil)
	assert.NotContains(t, withRemoval, "the")
	assert.NotContains(t, withRemoval, "with")

	withoutRemoval := textproc.ExtractUniqueWords("with the words", false, 3, nil)
	assert.Contains(t, withoutRemoval, "the")
	assert.Contains(t, withoutRemoval, "with")
}

func TestExtractUniqueWords_CleansStrayPunctuation(t *testing.T) {
	words := textproc.ExtractUniqueWords(`"lexicon," (vocabulary)`, true, 3, nil)
	assert.Equal(t, []string{"lexicon", "vocabulary"}, words)
}

func TestExtractUniqueWords_Idempotent(t *testing.T) {
	text := "epsilon delta gamma beta alpha epsilon delta"
	first := textproc.ExtractUniqueWords(text, true, 3, nil)
	second := textproc.ExtractUniqueWords(text, true, 3, nil)
	assert.Equal(t, first, second)
}

func TestCountFrequencies_OnlyFilteredVocabularyAccumulates(t *testing.T) {
	raw := "the quick fox jumps over the quick fox"
	vocab := []string{"fox", "jumps", "quick"}

	freq := textproc.CountFrequencies(raw, vocab)

	assert.Equal(t, 2, freq["quick"])
	assert.Equal(t, 2, freq["fox"])
	assert.Equal(t, 1, freq["jumps"])
	// Stop words present in the raw stream never accumulate frequency.
	assert.NotContains(t, freq, "the")
	assert.NotContains(t, freq, "over")
}

func TestCountFrequencies_CaseInsensitive(t *testing.T) {
	freq := textproc.CountFrequencies("Fox FOX fox", []string{"fox"})
	assert.Equal(t, 3, freq["fox"])
}

func TestFrequencyTable_CapIsHardCeiling(t *testing.T) {
	var sb strings.Builder
	vocab := make([]string, 0, 600)
	for i := 0; i < 600; i++ {
		word := wordForIndex(i)
		vocab = append(vocab, word)
		sb.WriteString(word)
		sb.WriteString(" ")
	}

	text := sb.String()
	freq := textproc.CountFrequencies(text, vocab)
	require.Len(t, freq, 600)

	capped := textproc.FrequencyTable(text, freq, 500)
	assert.Len(t, capped, 500)

	uncapped := textproc.FrequencyTable(text, freq, 0)
	assert.Len(t, uncapped, 600)
}

func TestFrequencyTable_FollowsFirstOccurrenceOrder(t *testing.T) {
	text := "beta alpha gamma beta alpha"
	freq := map[string]int{"beta": 2, "alpha": 2, "gamma": 1}
	table := textproc.FrequencyTable(text, freq, 0)

	require.Len(t, table, 3)
	assert.Equal(t, "beta", table[0].Word)
	assert.Equal(t, 2, table[0].Frequency)
	assert.Equal(t, "alpha", table[1].Word)
	assert.Equal(t, "gamma", table[2].Word)
}

func TestFrequencyTable_CapKeepsEarliestWords(t *testing.T) {
	// The cap keeps the words seen earliest in the text, not the ones
	// that sort first.
	text := "zebra yak xylophone"
	freq := textproc.CountFrequencies(text, []string{"xylophone", "yak", "zebra"})

	table := textproc.FrequencyTable(text, freq, 2)

	require.Len(t, table, 2)
	assert.Equal(t, "zebra", table[0].Word)
	assert.Equal(t, "yak", table[1].Word)
}

func TestFrequencyTable_IgnoresUncountedTokens(t *testing.T) {
	text := "the zebra the yak"
	freq := map[string]int{"zebra": 1, "yak": 1}

	table := textproc.FrequencyTable(text, freq, 0)

	require.Len(t, table, 2)
	assert.Equal(t, "zebra", table[0].Word)
	assert.Equal(t, "yak", table[1].Word)
}

// wordForIndex builds distinct words long enough to survive filtering.
func wordForIndex(i int) string {
	letters := "abcdefghijklmnopqrstuvwxyz"
	return "word" + string(letters[i/26%26]) + string(letters[i%26]) + string(letters[i/676%26])
}
