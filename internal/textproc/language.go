package textproc

import (
	"unicode/utf8"

	"github.com/abadojack/whatlanggo"
)

// Language is a detected language tag.
type Language string

const (
	LangEnglish Language = "en"
	LangBengali Language = "bn"
	LangUnknown Language = "unknown"
)

// minSampleLength is the minimum number of runes the classifier needs before
// it attempts detection; shorter samples return LangUnknown.
const minSampleLength = 20

// Detector classifies text into a supported language. It is an interface so
// additional languages can be added without touching the extractor.
type Detector interface {
	Detect(text string) Language
}

// WhatlangDetector classifies text with whatlanggo's trigram model.
type WhatlangDetector struct{}

// NewDetector returns the default statistical language detector.
func NewDetector() *WhatlangDetector {
	return &WhatlangDetector{}
}

// Detect returns en, bn, or unknown. Deterministic for a given input.
func (d *WhatlangDetector) Detect(text string) Language {
	if utf8.RuneCountInString(text) < minSampleLength {
		return LangUnknown
	}

	info := whatlanggo.Detect(text)
	switch info.Lang {
	case whatlanggo.Eng:
		return LangEnglish
	case whatlanggo.Ben:
		return LangBengali
	default:
		return LangUnknown
	}
}

// StopWords returns the stop-word set for a language. Unknown falls back to
// the English set.
func StopWords(lang Language) map[string]struct{} {
	if lang == LangBengali {
		return bengaliStopWords
	}
	return englishStopWords
}
