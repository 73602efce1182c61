package learning

import (
	"fmt"
	"math/rand"

	"github.com/tanvir/vocabflash/internal/models"
)

// QuizOptionCount is the number of choices per multiple-choice question.
const QuizOptionCount = 4

// BuildQuiz generates up to count multiple-choice questions from a project's
// words. Words arrive ranked by frequency; the highest-ranked become question
// subjects and distractors are drawn from the remaining words. Option
// definitions are placeholders built from the word itself until a dictionary
// source exists.
func BuildQuiz(words []models.Word, count int, rng *rand.Rand) []models.QuizQuestion {
	if count <= 0 || len(words) < 2 {
		return nil
	}
	if count > len(words) {
		count = len(words)
	}

	questions := make([]models.QuizQuestion, 0, count)
	for i := 0; i < count; i++ {
		subject := words[i]
		answer := quizDefinition(subject.Word)

		options := []string{answer}
		for _, j := range rng.Perm(len(words)) {
			if len(options) == QuizOptionCount {
				break
			}
			if words[j].ID == subject.ID {
				continue
			}
			options = append(options, quizDefinition(words[j].Word))
		}
		rng.Shuffle(len(options), func(a, b int) {
			options[a], options[b] = options[b], options[a]
		})

		questions = append(questions, models.QuizQuestion{
			WordID:  subject.ID,
			Word:    subject.Word,
			Options: options,
			Answer:  answer,
		})
	}
	return questions
}

func quizDefinition(word string) string {
	return fmt.Sprintf("Definition of %s", word)
}
