package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"evalboard/internal/domain"
)

const (
	GlobalKeyPrefix = "evalboard"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// FingerprintGenerationRequest derives a stable identifier for a
// generation request so identical prompt submissions share one cache
// entry. Document-mode requests are fingerprinted over the document text.
func FingerprintGenerationRequest(req *domain.GenerationRequest) string {
	h := sha256.New()
	h.Write([]byte(string(req.Mode)))
	h.Write([]byte{0})
	if req.Mode == domain.ModeDocument && req.Document != nil {
		h.Write([]byte(req.Document.Text))
	} else {
		h.Write([]byte(req.Prompt))
	}
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(req.NumQuestions)))
	h.Write([]byte{0})
	h.Write([]byte(string(req.QuestionType)))
	h.Write([]byte{0})
	h.Write([]byte(string(req.Difficulty)))
	h.Write([]byte{0})
	h.Write([]byte(req.Category))
	return hex.EncodeToString(h.Sum(nil))
}
