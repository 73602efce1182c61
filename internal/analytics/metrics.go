package analytics

import (
	"math"
	"sort"

	"github.com/tanvir/vocabflash/internal/models"
)

// Metrics summarizes the vocabulary of one project: volume, frequency
// distribution shape, and lexical diversity.
type Metrics struct {
	TotalWords    int     `json:"total_words"`
	UniqueWords   int     `json:"unique_words"`
	MeanFrequency float64 `json:"mean_frequency"`
	MedianFreq    float64 `json:"median_frequency"`
	ModeFreq      int     `json:"mode_frequency"`
	StdDevFreq    float64 `json:"std_dev_frequency"`
	AvgWordLength float64 `json:"avg_word_length"`

	// TypeTokenRatio is unique words over total occurrences; higher means a
	// more varied vocabulary.
	TypeTokenRatio float64 `json:"type_token_ratio"`
	// HapaxLegomena counts words occurring exactly once, HapaxDislegomena
	// exactly twice. Large hapax counts indicate text that keeps
	// introducing new vocabulary.
	HapaxLegomena    int `json:"hapax_legomena"`
	HapaxDislegomena int `json:"hapax_dislegomena"`
	// SimpsonIndex is the probability that two occurrences drawn at random
	// are the same word; lower means more diverse.
	SimpsonIndex float64 `json:"simpson_index"`
}

// Compute derives the full metric set from a project's word list. An empty
// list yields the zero Metrics.
func Compute(words []models.Word) Metrics {
	var m Metrics
	m.UniqueWords = len(words)
	if len(words) == 0 {
		return m
	}

	freqs := make([]int, len(words))
	var totalLength int
	for i, w := range words {
		freqs[i] = w.Frequency
		m.TotalWords += w.Frequency
		totalLength += w.WordLength
		switch w.Frequency {
		case 1:
			m.HapaxLegomena++
		case 2:
			m.HapaxDislegomena++
		}
	}

	m.MeanFrequency = float64(m.TotalWords) / float64(m.UniqueWords)
	m.AvgWordLength = float64(totalLength) / float64(m.UniqueWords)
	m.MedianFreq = median(freqs)
	m.ModeFreq = mode(freqs)
	m.StdDevFreq = stdDev(freqs, m.MeanFrequency)
	m.TypeTokenRatio = float64(m.UniqueWords) / float64(m.TotalWords)
	m.SimpsonIndex = simpson(freqs, m.TotalWords)
	return m
}

func median(values []int) float64 {
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return float64(sorted[mid-1]+sorted[mid]) / 2
	}
	return float64(sorted[mid])
}

func mode(values []int) int {
	counts := make(map[int]int, len(values))
	best, bestCount := 0, 0
	for _, v := range values {
		counts[v]++
		if counts[v] > bestCount || (counts[v] == bestCount && v < best) {
			best, bestCount = v, counts[v]
		}
	}
	return best
}

func stdDev(values []int, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var sum float64
	for _, v := range values {
		d := float64(v) - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// simpson computes Simpson's index sum(n_i*(n_i-1)) / (N*(N-1)).
func simpson(freqs []int, total int) float64 {
	if total < 2 {
		return 0
	}
	var sum float64
	for _, f := range freqs {
		sum += float64(f) * float64(f-1)
	}
	return sum / (float64(total) * float64(total-1))
}
