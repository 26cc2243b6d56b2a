package genclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"evalboard/internal/domain"
	"evalboard/internal/dto"
	"evalboard/internal/logger"

	"go.uber.org/zap"
)

const (
	fromPromptPath   = "/api/question-generation/from-prompt"
	fromDocumentPath = "/api/question-generation/from-document"
)

// promptRequestBody is the JSON body of the prompt-mode endpoint.
type promptRequestBody struct {
	Prompt       string `json:"prompt"`
	NumQuestions int    `json:"num_questions"`
	QuestionType string `json:"question_type"`
	Difficulty   string `json:"difficulty,omitempty"`
	Category     string `json:"category,omitempty"`
}

// Client calls the external question-generation service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a generation service client. The timeout applies to
// each request; the upstream enforces none of its own, so this is the
// only bound on a stuck generation call.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("generation service base URL cannot be empty")
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     10 * time.Second,
			},
		},
	}, nil
}

// GenerateFromPrompt issues the prompt-mode generation call and returns
// the raw response items.
func (c *Client) GenerateFromPrompt(ctx context.Context, genReq *domain.GenerationRequest) ([]dto.RawQuestion, error) {
	body := promptRequestBody{
		Prompt:       genReq.Prompt,
		NumQuestions: genReq.NumQuestions,
		QuestionType: string(genReq.QuestionType),
		Difficulty:   string(genReq.Difficulty),
		Category:     genReq.Category,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, domain.NewInternalError("Failed to encode prompt generation request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+fromPromptPath, bytes.NewReader(payload))
	if err != nil {
		return nil, domain.NewInternalError("Failed to build prompt generation request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// GenerateFromDocument issues the document-mode generation call as a
// multipart form. Exactly one of the file part or the document_text field
// is present; the request builder guarantees this before the call.
func (c *Client) GenerateFromDocument(ctx context.Context, genReq *domain.GenerationRequest) ([]dto.RawQuestion, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	doc := genReq.Document
	if doc.Name != "" {
		part, err := writer.CreateFormFile("file", doc.Name)
		if err != nil {
			return nil, domain.NewInternalError("Failed to build document form file", err)
		}
		if _, err := io.WriteString(part, doc.Text); err != nil {
			return nil, domain.NewInternalError("Failed to write document form file", err)
		}
	} else {
		if err := writer.WriteField("document_text", doc.Text); err != nil {
			return nil, domain.NewInternalError("Failed to write document_text field", err)
		}
	}
	if err := writer.WriteField("num_questions", strconv.Itoa(genReq.NumQuestions)); err != nil {
		return nil, domain.NewInternalError("Failed to write num_questions field", err)
	}
	if err := writer.WriteField("question_type", string(genReq.QuestionType)); err != nil {
		return nil, domain.NewInternalError("Failed to write question_type field", err)
	}
	if err := writer.WriteField("difficulty", string(genReq.Difficulty)); err != nil {
		return nil, domain.NewInternalError("Failed to write difficulty field", err)
	}
	if err := writer.Close(); err != nil {
		return nil, domain.NewInternalError("Failed to finalize multipart body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+fromDocumentPath, &buf)
	if err != nil {
		return nil, domain.NewInternalError("Failed to build document generation request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.do(req)
}

// do executes the request and classifies the outcome: connection trouble
// becomes a TransportError, a non-2xx status a ServiceError (its body is
// ignored), and an undecodable success body a NormalizationError.
func (c *Client) do(req *http.Request) ([]dto.RawQuestion, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Get().Warn("Generation service call failed",
			zap.String("url", req.URL.String()),
			zap.Error(err))
		return nil, domain.NewTransportError(err)
	}
	defer resp.Body.Close()

	logger.Get().Info("Generation service responded",
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, domain.NewServiceError(resp.StatusCode)
	}

	var envelope dto.GenerationServiceResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, domain.NewNormalizationError("generation service returned a malformed body")
	}
	return envelope.Questions, nil
}
