package dto

// DraftPatchRequest carries a partial update for one draft question.
// Absent fields are left untouched.
type DraftPatchRequest struct {
	Content    *string   `json:"content,omitempty"`
	Type       *string   `json:"type,omitempty"`
	Options    *[]string `json:"options,omitempty"`
	Answer     *string   `json:"answer,omitempty"`
	Difficulty *string   `json:"difficulty,omitempty"`
	Category   *string   `json:"category,omitempty"`
}

// DraftListResponse is the current draft collection in arrival order.
type DraftListResponse struct {
	Questions []QuestionResponse `json:"questions"`
	Total     int                `json:"total"`
}

// SaveDraftsResponse reports the outcome of a save-all operation.
type SaveDraftsResponse struct {
	SetID string `json:"set_id"`
	Saved int    `json:"saved"`
}
