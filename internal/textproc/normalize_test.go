package textproc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanvir/vocabflash/internal/textproc"
)

func TestNormalize_StripsURLsEmailsAndHTML(t *testing.T) {
	in := `Visit https://example.com/page?x=1 or mail me@example.com <b>now</b>!`
	out := textproc.Normalize(in, textproc.DefaultOptions())

	assert.NotContains(t, out, "http")
	assert.NotContains(t, out, "@")
	assert.NotContains(t, out, "<")
	assert.Equal(t, "visit or mail now", out)
}

func TestNormalize_PunctuationBecomesTokenBoundary(t *testing.T) {
	out := textproc.Normalize("hello,world;foo.bar", textproc.DefaultOptions())
	assert.Equal(t, "hello world foo bar", out)
}

func TestNormalize_KeepsApostrophesAndHyphens(t *testing.T) {
	out := textproc.Normalize("it's a well-known fact!", textproc.DefaultOptions())
	assert.Equal(t, "it's a well-known fact", out)
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	out := textproc.Normalize("  too\t\tmany \n\n spaces  ", textproc.Options{CollapseWhitespace: true})
	assert.Equal(t, "too many spaces", out)
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Equal(t, "", textproc.Normalize("", textproc.DefaultOptions()))
}

func TestNormalize_StepsAreToggleable(t *testing.T) {
	in := "Hello, WORLD"

	// Nothing enabled: text passes through untouched.
	assert.Equal(t, in, textproc.Normalize(in, textproc.Options{}))

	// Only lowercasing.
	assert.Equal(t, "hello, world", textproc.Normalize(in, textproc.Options{Lowercase: true}))
}

func TestNormalize_RemovesDuplicateLines(t *testing.T) {
	in := "alpha\nbeta\nalpha\ngamma\nbeta"
	out := textproc.Normalize(in, textproc.Options{RemoveDuplicateLines: true})
	assert.Equal(t, "alpha\nbeta\ngamma", out)
}

func TestNormalize_PreservesBengaliText(t *testing.T) {
	in := "আমি বাংলায় গান গাই!"
	out := textproc.Normalize(in, textproc.DefaultOptions())
	assert.Equal(t, "আমি বাংলায় গান গাই", out)
}

func TestTruncate(t *testing.T) {
	t.Run("short text untouched", func(t *testing.T) {
		assert.Equal(t, "short", textproc.Truncate("short", 100))
	})

	t.Run("cuts at word boundary within 80 percent of limit", func(t *testing.T) {
		in := "the quick brown fox jumps over the lazy dog"
		out := textproc.Truncate(in, 20)
		// First 20 chars are "the quick brown fox "; the last space at
		// position 19 is beyond 80% of 20, so we cut there.
		assert.Equal(t, "the quick brown fox...", out)
		assert.True(t, strings.HasSuffix(out, "..."))
	})

	t.Run("hard cut when no late word boundary", func(t *testing.T) {
		out := textproc.Truncate("abcdefghijklmnopqrstuvwxyz", 10)
		assert.Equal(t, "abcdefghij...", out)
	})

	t.Run("boundary threshold measured in runes for multibyte text", func(t *testing.T) {
		// Runes 0-19 are "আমার সোনার বাংলা আমি" with the last space at
		// rune 16, exactly 80% of the limit. Byte positions would put
		// that space far past the threshold and wrongly cut there.
		in := "আমার সোনার বাংলা আমি তোমায় ভালোবাসি"
		out := textproc.Truncate(in, 20)
		assert.Equal(t, "আমার সোনার বাংলা আমি...", out)
	})

	t.Run("multibyte cut at word boundary past threshold", func(t *testing.T) {
		// The last space within the first 19 runes sits at rune 16,
		// beyond 80% of 19, so the cut lands on the boundary.
		in := "আমার সোনার বাংলা আমি তোমায় ভালোবাসি"
		out := textproc.Truncate(in, 19)
		assert.Equal(t, "আমার সোনার বাংলা...", out)
	})
}
