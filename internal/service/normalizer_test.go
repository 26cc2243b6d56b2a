package service

import (
	"testing"

	"evalboard/internal/domain"
	"evalboard/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promptDefaults() *domain.GenerationRequest {
	return &domain.GenerationRequest{
		Mode:         domain.ModePrompt,
		Prompt:       "AI ethics",
		NumQuestions: 3,
		QuestionType: domain.TypeShortAnswer,
		Difficulty:   domain.DifficultyHard,
	}
}

func TestNormalizeQuestion(t *testing.T) {
	t.Run("ContentFieldPreferred", func(t *testing.T) {
		q, err := NormalizeQuestion(dto.RawQuestion{
			ID:           "q1",
			Content:      "What is utilitarianism?",
			QuestionText: "older field, ignored",
			Type:         "short_answer",
			Answer:       "A consequentialist theory",
			Difficulty:   "easy",
		}, promptDefaults())
		require.NoError(t, err)
		assert.Equal(t, "What is utilitarianism?", q.Content)
		assert.Equal(t, domain.DifficultyEasy, q.Difficulty)
	})

	t.Run("LegacyQuestionField", func(t *testing.T) {
		q, err := NormalizeQuestion(dto.RawQuestion{
			ID:           "q2",
			QuestionText: "Define informed consent",
			Type:         "short_answer",
			Answer:       "Agreement given with full knowledge",
			Difficulty:   "medium",
		}, promptDefaults())
		require.NoError(t, err)
		assert.Equal(t, "Define informed consent", q.Content)
	})

	t.Run("DifficultyFallsBackToRequest", func(t *testing.T) {
		q, err := NormalizeQuestion(dto.RawQuestion{
			ID:      "q3",
			Content: "Name one risk of automated decision making",
			Type:    "short_answer",
			Answer:  "Opaque bias",
		}, promptDefaults())
		require.NoError(t, err)
		assert.Equal(t, domain.DifficultyHard, q.Difficulty)
	})

	t.Run("CategoryNeverInvented", func(t *testing.T) {
		defaults := promptDefaults()
		defaults.Category = "philosophy"
		q, err := NormalizeQuestion(dto.RawQuestion{
			ID:      "q4",
			Content: "Who coined the term robot?",
			Type:    "short_answer",
			Answer:  "Karel Capek",
		}, defaults)
		require.NoError(t, err)
		assert.Empty(t, q.Category)
	})

	t.Run("MissingID", func(t *testing.T) {
		_, err := NormalizeQuestion(dto.RawQuestion{
			Content: "orphaned question",
			Type:    "short_answer",
			Answer:  "x",
		}, promptDefaults())
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrNormalization))
	})

	t.Run("MissingText", func(t *testing.T) {
		_, err := NormalizeQuestion(dto.RawQuestion{
			ID:     "q5",
			Type:   "short_answer",
			Answer: "x",
		}, promptDefaults())
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrNormalization))
	})

	t.Run("ChoiceWithoutOptions", func(t *testing.T) {
		_, err := NormalizeQuestion(dto.RawQuestion{
			ID:      "q6",
			Content: "Pick one",
			Type:    "multiple_choice",
			Answer:  "A",
		}, promptDefaults())
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrNormalization))
	})

	t.Run("Idempotent", func(t *testing.T) {
		raw := dto.RawQuestion{
			ID:      "q7",
			Content: "Stable under repeated normalization?",
			Type:    "short_answer",
			Answer:  "yes",
		}
		first, err := NormalizeQuestion(raw, promptDefaults())
		require.NoError(t, err)

		again := dto.RawQuestion{
			ID:         first.ID,
			Content:    first.Content,
			Type:       string(first.Type),
			Options:    first.Options,
			Answer:     first.Answer,
			Difficulty: string(first.Difficulty),
			Category:   first.Category,
		}
		second, err := NormalizeQuestion(again, promptDefaults())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestNormalizeBatch(t *testing.T) {
	t.Run("AllOrNothing", func(t *testing.T) {
		raw := []dto.RawQuestion{
			{ID: "ok-1", Content: "fine", Type: "short_answer", Answer: "a"},
			{ID: "", Content: "broken item"},
			{ID: "ok-2", Content: "also fine", Type: "short_answer", Answer: "b"},
		}
		questions, err := NormalizeBatch(raw, promptDefaults())
		require.Error(t, err)
		assert.Nil(t, questions)
		assert.True(t, domain.IsCode(err, domain.ErrNormalization))
	})

	// The service attaches a four-entry option list to every item it
	// generates, whatever the requested type. Non-choice batches must
	// normalize with those options copied verbatim, not be rejected.
	t.Run("ServiceShapeWithOptionsOnTrueFalse", func(t *testing.T) {
		defaults := &domain.GenerationRequest{
			Mode:         domain.ModePrompt,
			Prompt:       "AI ethics",
			NumQuestions: 2,
			QuestionType: domain.TypeTrueFalse,
			Difficulty:   domain.DifficultyMedium,
		}
		raw := []dto.RawQuestion{
			{ID: "q1", Content: "Bias audits are optional", Type: "true_false",
				Options: []string{"A", "B", "C", "D"}, Answer: "B"},
			{ID: "q2", Content: "Consent can be withdrawn", Type: "true_false",
				Options: []string{"A", "B", "C", "D"}, Answer: "A"},
		}
		questions, err := NormalizeBatch(raw, defaults)
		require.NoError(t, err)
		require.Len(t, questions, 2)
		assert.Equal(t, []string{"A", "B", "C", "D"}, questions[0].Options)
		assert.Equal(t, domain.TypeTrueFalse, questions[0].Type)
	})

	t.Run("ServiceShapeWithOptionsOnShortAnswer", func(t *testing.T) {
		raw := []dto.RawQuestion{
			{ID: "q1", Content: "Name the principle behind data minimization", Type: "short_answer",
				Options: []string{"A", "B", "C", "D"}, Answer: "collect only what is needed"},
		}
		questions, err := NormalizeBatch(raw, promptDefaults())
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C", "D"}, questions[0].Options)
	})

	t.Run("OrderPreserved", func(t *testing.T) {
		raw := []dto.RawQuestion{
			{ID: "a", Content: "first", Type: "short_answer", Answer: "1"},
			{ID: "b", Content: "second", Type: "short_answer", Answer: "2"},
			{ID: "c", Content: "third", Type: "short_answer", Answer: "3"},
		}
		questions, err := NormalizeBatch(raw, promptDefaults())
		require.NoError(t, err)
		require.Len(t, questions, 3)
		assert.Equal(t, "a", questions[0].ID)
		assert.Equal(t, "b", questions[1].ID)
		assert.Equal(t, "c", questions[2].ID)
	})
}
