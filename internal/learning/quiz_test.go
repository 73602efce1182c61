package learning_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanvir/vocabflash/internal/learning"
	"github.com/tanvir/vocabflash/internal/models"
)

func quizWords() []models.Word {
	return []models.Word{
		{ID: 1, Word: "retention", Frequency: 9},
		{ID: 2, Word: "curve", Frequency: 7},
		{ID: 3, Word: "practice", Frequency: 5},
		{ID: 4, Word: "interval", Frequency: 3},
		{ID: 5, Word: "recall", Frequency: 2},
	}
}

func TestBuildQuiz_SubjectsFollowFrequencyRank(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	questions := learning.BuildQuiz(quizWords(), 3, rng)

	require.Len(t, questions, 3)
	assert.Equal(t, "retention", questions[0].Word)
	assert.Equal(t, "curve", questions[1].Word)
	assert.Equal(t, "practice", questions[2].Word)
}

func TestBuildQuiz_OptionsContainAnswer(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	questions := learning.BuildQuiz(quizWords(), 5, rng)

	for _, q := range questions {
		assert.Len(t, q.Options, learning.QuizOptionCount)
		assert.Contains(t, q.Options, q.Answer)
		assert.Equal(t, "Definition of "+q.Word, q.Answer)

		seen := make(map[string]struct{}, len(q.Options))
		for _, opt := range q.Options {
			_, dup := seen[opt]
			assert.False(t, dup, "duplicate option %q for %q", opt, q.Word)
			seen[opt] = struct{}{}
		}
	}
}

func TestBuildQuiz_CountClampedToWordCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	questions := learning.BuildQuiz(quizWords(), 50, rng)
	assert.Len(t, questions, 5)
}

func TestBuildQuiz_TooFewWords(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Nil(t, learning.BuildQuiz(nil, 5, rng))
	assert.Nil(t, learning.BuildQuiz([]models.Word{{ID: 1, Word: "alone"}}, 5, rng))
}

func TestBuildQuiz_FewerWordsThanOptionSlots(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	words := []models.Word{
		{ID: 1, Word: "alpha", Frequency: 2},
		{ID: 2, Word: "beta", Frequency: 1},
	}
	questions := learning.BuildQuiz(words, 1, rng)

	require.Len(t, questions, 1)
	assert.Len(t, questions[0].Options, 2)
	assert.Contains(t, questions[0].Options, questions[0].Answer)
}
