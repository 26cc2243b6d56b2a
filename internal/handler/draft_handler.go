package handler

import (
	"strings"

	"evalboard/internal/domain"
	"evalboard/internal/dto"
	"evalboard/internal/service"
	"evalboard/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// DraftHandler handles draft-collection HTTP requests
type DraftHandler struct {
	service   service.DraftService
	validator *validation.Validator
}

// NewDraftHandler creates a new DraftHandler instance
func NewDraftHandler(svc service.DraftService, validator *validation.Validator) *DraftHandler {
	return &DraftHandler{
		service:   svc,
		validator: validator,
	}
}

// List handles GET /api/drafts
func (h *DraftHandler) List(c *fiber.Ctx) error {
	questions := h.service.List()
	return c.JSON(toDraftListResponse(questions))
}

// Edit handles PATCH /api/drafts/:id
func (h *DraftHandler) Edit(c *fiber.Ctx) error {
	var patch dto.DraftPatchRequest
	if err := c.BodyParser(&patch); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	if err := h.validator.ValidateDraftPatch(&patch); err != nil {
		return err
	}

	updated, err := h.service.Edit(c.Params("id"), &patch)
	if err != nil {
		return err
	}
	return c.JSON(toQuestionResponse(updated))
}

// Remove handles DELETE /api/drafts/:id
func (h *DraftHandler) Remove(c *fiber.Ctx) error {
	if err := h.service.Remove(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SaveAll handles POST /api/drafts/save
func (h *DraftHandler) SaveAll(c *fiber.Ctx) error {
	setID, saved, err := h.service.SaveAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.SaveDraftsResponse{
		SetID: setID,
		Saved: saved,
	})
}

// Restore handles POST /api/drafts/sets/:id/restore
func (h *DraftHandler) Restore(c *fiber.Ctx) error {
	count, err := h.service.Restore(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"set_id":   c.Params("id"),
		"restored": count,
	})
}

// Export handles GET /api/drafts/export. An empty ids parameter exports
// the whole working set.
func (h *DraftHandler) Export(c *fiber.Ctx) error {
	var ids []string
	if raw := c.Query("ids"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}

	questions, err := h.service.Export(ids)
	if err != nil {
		return err
	}
	return c.JSON(toDraftListResponse(questions))
}

func toDraftListResponse(questions []domain.Question) dto.DraftListResponse {
	resp := dto.DraftListResponse{
		Questions: make([]dto.QuestionResponse, 0, len(questions)),
		Total:     len(questions),
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, toQuestionResponse(q))
	}
	return resp
}
