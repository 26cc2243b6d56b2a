package domain

import (
	"strings"
)

// QuestionType identifies the kind of question the generation service produced.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeTrueFalse      QuestionType = "true_false"
	TypeShortAnswer    QuestionType = "short_answer"
	TypeEssay          QuestionType = "essay"
	TypeMixed          QuestionType = "mixed"
)

// IsValid reports whether t is one of the supported question types.
func (t QuestionType) IsValid() bool {
	switch t {
	case TypeMultipleChoice, TypeTrueFalse, TypeShortAnswer, TypeEssay, TypeMixed:
		return true
	}
	return false
}

// IsChoice reports whether the type carries candidate options.
func (t QuestionType) IsChoice() bool {
	return t == TypeMultipleChoice
}

// RequiresAnswer reports whether the type must carry a non-empty answer.
// Essay and mixed sets are graded free-form, so an answer is optional there.
func (t QuestionType) RequiresAnswer() bool {
	switch t {
	case TypeMultipleChoice, TypeTrueFalse, TypeShortAnswer:
		return true
	}
	return false
}

// Difficulty is the difficulty label attached to a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// IsValid reports whether d is one of the supported difficulty labels.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// AnswerMatchMode selects how an answer value is matched against the
// option list. The dashboard's call sites disagree on this: one compares
// the full option text, another only the option's leading letter. Both
// behaviors are kept addressable until the product settles on one.
type AnswerMatchMode int

const (
	// MatchLiteral matches the answer against the full option value.
	MatchLiteral AnswerMatchMode = iota
	// MatchLeadingLetter matches the answer against the option's first rune.
	MatchLeadingLetter
)

// Question is the canonical, service-shape-independent representation of
// a generated question. Instances are immutable by replacement: edits go
// through DraftStore.Edit, which swaps the stored value.
type Question struct {
	ID         string
	Content    string
	Type       QuestionType
	Options    []string
	Answer     string
	Difficulty Difficulty
	Category   string
}

// Validate validates the question against the canonical invariants.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.ID) == "" {
		return NewValidationError("question ID is required")
	}
	if strings.TrimSpace(q.Content) == "" {
		return NewValidationError("question content is required")
	}
	if !q.Type.IsValid() {
		return NewValidationError("unsupported question type: " + string(q.Type))
	}
	// The generation service attaches an option list to every item it
	// emits, whatever the question_type. Options are therefore tolerated
	// on any type and copied verbatim; only choice questions require them.
	if q.Type.IsChoice() && len(q.Options) < 2 {
		return NewValidationError("choice questions require at least two options")
	}
	if q.Type.RequiresAnswer() && strings.TrimSpace(q.Answer) == "" {
		return NewValidationError("answer is required for type " + string(q.Type))
	}
	if q.Difficulty != "" && !q.Difficulty.IsValid() {
		return NewValidationError("unsupported difficulty: " + string(q.Difficulty))
	}
	return nil
}

// AnswerIndex returns the index of the option matching the answer under
// the given match mode, or -1 when no option matches or the question
// carries no options.
func (q *Question) AnswerIndex(mode AnswerMatchMode) int {
	if q.Answer == "" {
		return -1
	}
	for i, option := range q.Options {
		switch mode {
		case MatchLeadingLetter:
			runes := []rune(option)
			if len(runes) > 0 && string(runes[0]) == q.Answer {
				return i
			}
		default:
			if option == q.Answer {
				return i
			}
		}
	}
	return -1
}

// Clone returns a deep copy so callers cannot alias the store's option slice.
func (q Question) Clone() Question {
	if q.Options != nil {
		options := make([]string, len(q.Options))
		copy(options, q.Options)
		q.Options = options
	}
	return q
}
