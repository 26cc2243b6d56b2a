package service

import (
	"fmt"

	"evalboard/internal/domain"
	"evalboard/internal/dto"
)

// NormalizeQuestion maps one raw service response item onto the
// canonical Question shape. Field-name drift between the two endpoints
// ("content" vs "question") is absorbed here. When the raw item omits a
// difficulty, the difficulty of the originating request is substituted;
// a category is never invented for items that lack one.
func NormalizeQuestion(raw dto.RawQuestion, defaults *domain.GenerationRequest) (domain.Question, error) {
	content := raw.Content
	if content == "" {
		content = raw.QuestionText
	}
	if raw.ID == "" {
		return domain.Question{}, domain.NewNormalizationError("response item is missing an id")
	}
	if content == "" {
		return domain.Question{}, domain.NewNormalizationError("response item " + raw.ID + " is missing question text")
	}

	qType := domain.QuestionType(raw.Type)
	if raw.Type == "" {
		qType = defaults.QuestionType
	}
	difficulty := domain.Difficulty(raw.Difficulty)
	if raw.Difficulty == "" {
		difficulty = defaults.Difficulty
	}

	var options []string
	if len(raw.Options) > 0 {
		options = make([]string, len(raw.Options))
		copy(options, raw.Options)
	}

	question := domain.Question{
		ID:         raw.ID,
		Content:    content,
		Type:       qType,
		Options:    options,
		Answer:     raw.Answer,
		Difficulty: difficulty,
		Category:   raw.Category,
	}
	if err := question.Validate(); err != nil {
		return domain.Question{}, domain.NewNormalizationError(
			fmt.Sprintf("response item %s is inconsistent: %v", raw.ID, err))
	}
	return question, nil
}

// NormalizeBatch normalizes a full response. Normalization is
// all-or-nothing: one bad item rejects the whole batch rather than
// letting a generation operation report success with a truncated set.
func NormalizeBatch(raw []dto.RawQuestion, defaults *domain.GenerationRequest) ([]domain.Question, error) {
	questions := make([]domain.Question, 0, len(raw))
	for _, item := range raw {
		question, err := NormalizeQuestion(item, defaults)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	return questions, nil
}
