package ingest

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"evalboard/internal/domain"
	"evalboard/internal/logger"

	"go.uber.org/zap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileIngestor reads an uploaded file and yields the document payload
// consumed by the request builder. It only performs a byte-to-text
// decode; format-specific extraction for PDF and DOCX files belongs to
// the document-analysis collaborator, not to this adapter. When the
// caller supplies pasted text instead of a file, ingestion is skipped
// entirely and the pasted text is used directly.
type FileIngestor struct {
	maxBytes int64
}

// NewFileIngestor creates an ingestor that refuses documents larger than
// maxBytes (0 means a 10 MiB default, matching the server body limit).
func NewFileIngestor(maxBytes int64) *FileIngestor {
	if maxBytes <= 0 {
		maxBytes = 10 * 1024 * 1024
	}
	return &FileIngestor{maxBytes: maxBytes}
}

// Ingest reads the file's bytes in full and decodes them as UTF-8 text.
func (i *FileIngestor) Ingest(name string, r io.Reader) (*domain.DocumentPayload, error) {
	limited := io.LimitReader(r, i.maxBytes+1)
	content, err := io.ReadAll(limited)
	if err != nil {
		return nil, domain.NewIngestionError("failed to read uploaded file", err)
	}
	if int64(len(content)) > i.maxBytes {
		return nil, domain.NewIngestionError(
			fmt.Sprintf("document exceeds the %d byte limit", i.maxBytes), nil)
	}

	content = bytes.TrimPrefix(content, utf8BOM)
	if !utf8.Valid(content) {
		return nil, domain.NewIngestionError("file content is not decodable as text", nil)
	}

	text := string(content)
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewIngestionError("file content is empty", nil)
	}

	logger.Get().Debug("Document ingested",
		zap.String("name", name),
		zap.Int("bytes", len(content)))

	return &domain.DocumentPayload{Name: name, Text: text}, nil
}
