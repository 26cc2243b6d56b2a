package handler

import (
	"evalboard/internal/adapter/ingest"
	"evalboard/internal/domain"
	"evalboard/internal/dto"
	"evalboard/internal/logger"
	"evalboard/internal/service"
	"evalboard/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GenerationHandler handles generation-related HTTP requests
type GenerationHandler struct {
	service   service.GenerationService
	builder   *service.RequestBuilder
	ingestor  *ingest.FileIngestor
	validator *validation.Validator
}

// NewGenerationHandler creates a new GenerationHandler instance
func NewGenerationHandler(
	svc service.GenerationService,
	builder *service.RequestBuilder,
	ingestor *ingest.FileIngestor,
	validator *validation.Validator,
) *GenerationHandler {
	return &GenerationHandler{
		service:   svc,
		builder:   builder,
		ingestor:  ingestor,
		validator: validator,
	}
}

// CreateSession handles POST /api/sessions
func (h *GenerationHandler) CreateSession(c *fiber.Ctx) error {
	session := h.service.NewSession()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"session_id": session.ID(),
		"state":      session.State().String(),
	})
}

// ResetSession handles POST /api/sessions/:id/reset
func (h *GenerationHandler) ResetSession(c *fiber.Ctx) error {
	if err := h.service.ResetSession(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DisposeSession handles DELETE /api/sessions/:id
func (h *GenerationHandler) DisposeSession(c *fiber.Ctx) error {
	if err := h.service.DisposeSession(c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GenerateFromPrompt handles POST /api/generation/prompt
func (h *GenerationHandler) GenerateFromPrompt(c *fiber.Ctx) error {
	var req dto.PromptGenerationRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("invalid request body")
	}

	genReq, err := h.builder.BuildPromptRequest(&req)
	if err != nil {
		return err
	}

	session, anonymous, err := h.resolveSession(req.SessionID)
	if err != nil {
		return err
	}
	if anonymous {
		defer h.service.DisposeSession(session.ID())
	}

	questions, err := h.service.Generate(c.Context(), session, genReq)
	if err != nil {
		return err
	}
	return c.JSON(toGenerationResponse(session, questions))
}

// GenerateFromDocument handles POST /api/generation/document. The
// request arrives as multipart form data carrying either an uploaded
// file part or a document_text field, never both.
func (h *GenerationHandler) GenerateFromDocument(c *fiber.Ctx) error {
	var req dto.DocumentGenerationRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("invalid request body")
	}

	var payload *domain.DocumentPayload
	if fileHeader, err := c.FormFile("file"); err == nil && fileHeader != nil {
		if err := h.validator.ValidateDocumentFilename(fileHeader.Filename); err != nil {
			return err
		}
		file, err := fileHeader.Open()
		if err != nil {
			return domain.NewIngestionError("failed to open uploaded file", err)
		}
		defer file.Close()

		payload, err = h.ingestor.Ingest(fileHeader.Filename, file)
		if err != nil {
			logger.Get().Warn("Document ingestion failed",
				zap.String("filename", fileHeader.Filename),
				zap.Error(err))
			return err
		}
	}

	genReq, err := h.builder.BuildDocumentRequest(&req, payload)
	if err != nil {
		return err
	}

	session, anonymous, err := h.resolveSession(req.SessionID)
	if err != nil {
		return err
	}
	if anonymous {
		defer h.service.DisposeSession(session.ID())
	}

	questions, err := h.service.Generate(c.Context(), session, genReq)
	if err != nil {
		return err
	}
	return c.JSON(toGenerationResponse(session, questions))
}

// resolveSession looks up the caller's session, creating an anonymous
// one for requests that don't carry a session_id. Anonymous sessions
// live for exactly one operation; the caller disposes them once the
// response is written so the registry does not grow with every request.
func (h *GenerationHandler) resolveSession(sessionID string) (*service.FormSession, bool, error) {
	if sessionID == "" {
		return h.service.NewSession(), true, nil
	}
	session, ok := h.service.Session(sessionID)
	if !ok {
		return nil, false, domain.NewNotFoundError(sessionID)
	}
	return session, false, nil
}

func toGenerationResponse(session *service.FormSession, questions []domain.Question) dto.GenerationResponse {
	resp := dto.GenerationResponse{
		SessionID: session.ID(),
		State:     session.State().String(),
		Questions: make([]dto.QuestionResponse, 0, len(questions)),
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, toQuestionResponse(q))
	}
	return resp
}

func toQuestionResponse(q domain.Question) dto.QuestionResponse {
	return dto.QuestionResponse{
		ID:         q.ID,
		Content:    q.Content,
		Type:       string(q.Type),
		Options:    q.Options,
		Answer:     q.Answer,
		Difficulty: string(q.Difficulty),
		Category:   q.Category,
	}
}
