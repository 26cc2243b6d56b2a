package dto

// PromptGenerationRequest is the dashboard's request body for prompt-mode
// generation.
// @Description Request body for generating questions from a prompt
type PromptGenerationRequest struct {
	SessionID    string `json:"session_id,omitempty"`
	Prompt       string `json:"prompt"`
	NumQuestions int    `json:"num_questions"`
	QuestionType string `json:"question_type"`
	Difficulty   string `json:"difficulty,omitempty"`
	Category     string `json:"category,omitempty"`
}

// DocumentGenerationRequest is the dashboard's request for document-mode
// generation. The uploaded file, when present, travels as a multipart part
// next to this form payload; exactly one of file or DocumentText must be set.
type DocumentGenerationRequest struct {
	SessionID    string `json:"session_id,omitempty" form:"session_id"`
	DocumentText string `json:"document_text,omitempty" form:"document_text"`
	NumQuestions int    `json:"num_questions" form:"num_questions"`
	QuestionType string `json:"question_type" form:"question_type"`
	Difficulty   string `json:"difficulty,omitempty" form:"difficulty"`
	Category     string `json:"category,omitempty" form:"category"`
}

// RawQuestion is one item of the generation service's response body.
// The two endpoints are not perfectly aligned on field names: prompt-mode
// responses carry the text under "content" while older document-mode
// payloads use "question". Both are decoded; normalization picks one.
type RawQuestion struct {
	ID           string   `json:"id"`
	Content      string   `json:"content"`
	QuestionText string   `json:"question,omitempty"`
	Type         string   `json:"type"`
	Options      []string `json:"options"`
	Answer       string   `json:"answer"`
	Difficulty   string   `json:"difficulty,omitempty"`
	Category     string   `json:"category,omitempty"`
}

// GenerationServiceResponse is the envelope returned by both generation
// endpoints.
type GenerationServiceResponse struct {
	Questions []RawQuestion `json:"questions"`
}

// QuestionResponse represents a canonical question in the API response
// @Description Canonical question information
type QuestionResponse struct {
	ID         string   `json:"id"`
	Content    string   `json:"content"`
	Type       string   `json:"type"`
	Options    []string `json:"options"`
	Answer     string   `json:"answer"`
	Difficulty string   `json:"difficulty"`
	Category   string   `json:"category,omitempty"`
}

// GenerationResponse is returned to the dashboard after a generation
// operation resolves.
type GenerationResponse struct {
	SessionID string             `json:"session_id"`
	State     string             `json:"state"`
	Questions []QuestionResponse `json:"questions"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
