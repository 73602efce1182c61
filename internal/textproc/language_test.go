package textproc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanvir/vocabflash/internal/textproc"
)

const englishSample = "The study of vocabulary acquisition shows that repeated exposure " +
	"to words in meaningful contexts improves long-term retention considerably."

const bengaliSample = "বাংলা ভাষা দক্ষিণ এশিয়ার একটি সমৃদ্ধ ভাষা এবং পৃথিবীর অন্যতম বেশি " +
	"মানুষের মাতৃভাষা হিসেবে পরিচিত একটি ভাষা।"

func TestDetect_English(t *testing.T) {
	d := textproc.NewDetector()
	assert.Equal(t, textproc.LangEnglish, d.Detect(englishSample))
}

func TestDetect_Bengali(t *testing.T) {
	d := textproc.NewDetector()
	assert.Equal(t, textproc.LangBengali, d.Detect(bengaliSample))
}

func TestDetect_ShortSampleIsUnknown(t *testing.T) {
	d := textproc.NewDetector()
	assert.Equal(t, textproc.LangUnknown, d.Detect("hello there"))
	assert.Equal(t, textproc.LangUnknown, d.Detect(""))
}

func TestDetect_Deterministic(t *testing.T) {
	d := textproc.NewDetector()
	first := d.Detect(englishSample)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, d.Detect(englishSample))
	}
}

func TestStopWords(t *testing.T) {
	en := textproc.StopWords(textproc.LangEnglish)
	_, hasThe := en["the"]
	assert.True(t, hasThe)

	bn := textproc.StopWords(textproc.LangBengali)
	_, hasEbong := bn["এবং"]
	assert.True(t, hasEbong)

	// Unknown falls back to the English set.
	assert.Equal(t, len(en), len(textproc.StopWords(textproc.LangUnknown)))
}
