package validation

import (
	"path/filepath"
	"strings"

	"evalboard/internal/domain"
	"evalboard/internal/dto"
)

// Extensions the ingestion adapter accepts. The adapter itself only
// performs a byte-to-text decode; format-specific extraction for PDF and
// DOCX is the analysis service's responsibility.
var allowedDocumentExtensions = map[string]bool{
	".txt":  true,
	".pdf":  true,
	".docx": true,
}

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidatePromptGeneration validates the prompt-mode generation request
// before a GenerationRequest is built from it.
func (v *Validator) ValidatePromptGeneration(req *dto.PromptGenerationRequest) error {
	if strings.TrimSpace(req.Prompt) == "" {
		return domain.NewValidationError("prompt is required")
	}
	return validateSharedFields(req.NumQuestions, req.QuestionType, req.Difficulty)
}

// ValidateDocumentGeneration validates the document-mode generation
// request. Exactly one of an uploaded file or pasted text must be given.
func (v *Validator) ValidateDocumentGeneration(req *dto.DocumentGenerationRequest, hasFile bool) error {
	hasText := strings.TrimSpace(req.DocumentText) != ""
	if hasFile && hasText {
		return domain.NewValidationError("provide either a file or document_text, not both")
	}
	if !hasFile && !hasText {
		return domain.NewValidationError("either a file or document_text is required")
	}
	return validateSharedFields(req.NumQuestions, req.QuestionType, req.Difficulty)
}

// ValidateDocumentFilename checks the uploaded file's extension against
// the ingestion allow-list.
func (v *Validator) ValidateDocumentFilename(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedDocumentExtensions[ext] {
		return domain.NewValidationError("unsupported document type: " + ext)
	}
	return nil
}

// ValidateDraftPatch rejects empty patches and malformed enum values
// before they reach the draft store.
func (v *Validator) ValidateDraftPatch(patch *dto.DraftPatchRequest) error {
	if patch.Content == nil && patch.Type == nil && patch.Options == nil &&
		patch.Answer == nil && patch.Difficulty == nil && patch.Category == nil {
		return domain.NewValidationError("patch must set at least one field")
	}
	if patch.Type != nil && !domain.QuestionType(*patch.Type).IsValid() {
		return domain.NewValidationError("unsupported question type: " + *patch.Type)
	}
	if patch.Difficulty != nil && !domain.Difficulty(*patch.Difficulty).IsValid() {
		return domain.NewValidationError("unsupported difficulty: " + *patch.Difficulty)
	}
	return nil
}

func validateSharedFields(numQuestions int, questionType, difficulty string) error {
	// Zero means unset; the builder substitutes the default count.
	if numQuestions != 0 && (numQuestions < domain.MinQuestions || numQuestions > domain.MaxQuestions) {
		return domain.NewValidationError("num_questions must be between 1 and 30")
	}
	if questionType != "" && !domain.QuestionType(questionType).IsValid() {
		return domain.NewValidationError("unsupported question type: " + questionType)
	}
	if difficulty != "" && !domain.Difficulty(difficulty).IsValid() {
		return domain.NewValidationError("unsupported difficulty: " + difficulty)
	}
	return nil
}
