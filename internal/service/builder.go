package service

import (
	"strings"

	"evalboard/internal/domain"
	"evalboard/internal/dto"
	"evalboard/internal/validation"
)

// RequestBuilder constructs GenerationRequests from dashboard input for
// each of the two supported modes. Construction is pure: no side effects,
// no network traffic, and a ValidationError when the input is malformed.
type RequestBuilder struct {
	validator *validation.Validator
}

// NewRequestBuilder creates a new RequestBuilder instance
func NewRequestBuilder(validator *validation.Validator) *RequestBuilder {
	return &RequestBuilder{validator: validator}
}

// BuildPromptRequest builds a prompt-mode GenerationRequest.
func (b *RequestBuilder) BuildPromptRequest(req *dto.PromptGenerationRequest) (*domain.GenerationRequest, error) {
	if err := b.validator.ValidatePromptGeneration(req); err != nil {
		return nil, err
	}

	genReq := &domain.GenerationRequest{
		Mode:         domain.ModePrompt,
		Prompt:       strings.TrimSpace(req.Prompt),
		NumQuestions: req.NumQuestions,
		QuestionType: domain.QuestionType(req.QuestionType),
		Difficulty:   domain.Difficulty(req.Difficulty),
		Category:     strings.TrimSpace(req.Category),
	}
	applyDefaults(genReq)

	if err := genReq.Validate(); err != nil {
		return nil, err
	}
	return genReq, nil
}

// BuildDocumentRequest builds a document-mode GenerationRequest from an
// already-ingested payload (or pasted text wrapped into one by the caller).
func (b *RequestBuilder) BuildDocumentRequest(req *dto.DocumentGenerationRequest, payload *domain.DocumentPayload) (*domain.GenerationRequest, error) {
	if err := b.validator.ValidateDocumentGeneration(req, payload != nil && payload.Name != ""); err != nil {
		return nil, err
	}
	if payload == nil {
		payload = &domain.DocumentPayload{Text: req.DocumentText}
	}

	genReq := &domain.GenerationRequest{
		Mode:         domain.ModeDocument,
		Document:     payload,
		NumQuestions: req.NumQuestions,
		QuestionType: domain.QuestionType(req.QuestionType),
		Difficulty:   domain.Difficulty(req.Difficulty),
		Category:     strings.TrimSpace(req.Category),
	}
	applyDefaults(genReq)

	if err := genReq.Validate(); err != nil {
		return nil, err
	}
	return genReq, nil
}

// applyDefaults fills unset shared fields with the dashboard defaults:
// five questions, multiple choice, medium difficulty.
func applyDefaults(req *domain.GenerationRequest) {
	if req.NumQuestions == 0 {
		req.NumQuestions = domain.DefaultNumQuestions
	}
	if req.QuestionType == "" {
		req.QuestionType = domain.TypeMultipleChoice
	}
	if req.Difficulty == "" {
		req.Difficulty = domain.DifficultyMedium
	}
}
