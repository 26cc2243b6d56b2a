package domain

import "strings"

// GenerationMode is one of the two supported question-sourcing strategies.
type GenerationMode string

const (
	ModePrompt   GenerationMode = "prompt"
	ModeDocument GenerationMode = "document"
)

// Bounds for the number of questions in a single generation request.
// Zero means "unset" and takes the default.
const (
	MinQuestions        = 1
	MaxQuestions        = 30
	DefaultNumQuestions = 5
)

// DocumentPayload is the textual content extracted from an uploaded file
// or supplied directly as pasted text.
type DocumentPayload struct {
	Name string
	Text string
}

// GenerationRequest is the transient, per-submission description of one
// generation call. It is discarded once the operation resolves.
type GenerationRequest struct {
	Mode         GenerationMode
	Prompt       string
	Document     *DocumentPayload
	NumQuestions int
	QuestionType QuestionType
	Difficulty   Difficulty
	Category     string
}

// Validate validates the request for its mode.
func (r *GenerationRequest) Validate() error {
	switch r.Mode {
	case ModePrompt:
		if strings.TrimSpace(r.Prompt) == "" {
			return NewValidationError("prompt text is required in prompt mode")
		}
		if r.Document != nil {
			return NewValidationError("document payload is not allowed in prompt mode")
		}
	case ModeDocument:
		if r.Document == nil || strings.TrimSpace(r.Document.Text) == "" {
			return NewValidationError("document content is required in document mode")
		}
		if r.Prompt != "" {
			return NewValidationError("prompt text is not allowed in document mode")
		}
	default:
		return NewValidationError("unsupported generation mode: " + string(r.Mode))
	}
	if r.NumQuestions < MinQuestions || r.NumQuestions > MaxQuestions {
		return NewValidationError("num_questions must be between 1 and 30")
	}
	if !r.QuestionType.IsValid() {
		return NewValidationError("unsupported question type: " + string(r.QuestionType))
	}
	if !r.Difficulty.IsValid() {
		return NewValidationError("unsupported difficulty: " + string(r.Difficulty))
	}
	return nil
}

// OperationState is the lifecycle state of a single generation operation.
type OperationState int

const (
	StateIdle OperationState = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s OperationState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
