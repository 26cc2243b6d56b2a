package domain

import (
	"testing"
)

func validChoiceQuestion() Question {
	return Question{
		ID:         "q1",
		Content:    "Which model was developed by OpenAI?",
		Type:       TypeMultipleChoice,
		Options:    []string{"Claude", "GPT-4", "LLaMA", "PaLM"},
		Answer:     "GPT-4",
		Difficulty: DifficultyEasy,
	}
}

func TestQuestion_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(q *Question)
		wantErr bool
	}{
		{"valid choice question", func(q *Question) {}, false},
		{"missing id", func(q *Question) { q.ID = "" }, true},
		{"missing content", func(q *Question) { q.Content = "  " }, true},
		{"unsupported type", func(q *Question) { q.Type = "matching" }, true},
		{"choice with single option", func(q *Question) { q.Options = []string{"only"} }, true},
		{"choice missing answer", func(q *Question) { q.Answer = "" }, true},
		{"unsupported difficulty", func(q *Question) { q.Difficulty = "brutal" }, true},
		{"empty difficulty allowed", func(q *Question) { q.Difficulty = "" }, false},
		{
			// The service attaches options to every item it emits,
			// regardless of question type.
			"options tolerated on non-choice type",
			func(q *Question) { q.Type = TypeShortAnswer },
			false,
		},
		{
			"options tolerated on true/false",
			func(q *Question) {
				q.Type = TypeTrueFalse
				q.Answer = "true"
			},
			false,
		},
		{
			"valid short answer",
			func(q *Question) {
				q.Type = TypeShortAnswer
				q.Options = nil
				q.Answer = "fine-tuning continues pretraining"
			},
			false,
		},
		{
			"essay without answer",
			func(q *Question) {
				q.Type = TypeEssay
				q.Options = nil
				q.Answer = ""
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validChoiceQuestion()
			tt.mutate(&q)
			err := q.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !IsCode(err, ErrValidation) {
				t.Errorf("Validate() returned non-validation error: %v", err)
			}
		})
	}
}

func TestQuestion_AnswerIndex(t *testing.T) {
	literal := validChoiceQuestion()
	if got := literal.AnswerIndex(MatchLiteral); got != 1 {
		t.Errorf("AnswerIndex(MatchLiteral) = %d, want 1", got)
	}

	// Options tagged with a leading letter, answer stored as the tag only.
	tagged := Question{
		ID:      "q2",
		Content: "Pick one",
		Type:    TypeMultipleChoice,
		Options: []string{"A. First", "B. Second", "C. Third"},
		Answer:  "B",
	}
	if got := tagged.AnswerIndex(MatchLeadingLetter); got != 1 {
		t.Errorf("AnswerIndex(MatchLeadingLetter) = %d, want 1", got)
	}
	// The same fixture under literal matching must not resolve: the two
	// conventions are intentionally not unified.
	if got := tagged.AnswerIndex(MatchLiteral); got != -1 {
		t.Errorf("AnswerIndex(MatchLiteral) on tagged options = %d, want -1", got)
	}

	noAnswer := validChoiceQuestion()
	noAnswer.Answer = ""
	if got := noAnswer.AnswerIndex(MatchLiteral); got != -1 {
		t.Errorf("AnswerIndex with empty answer = %d, want -1", got)
	}
}
