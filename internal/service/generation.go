package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"evalboard/internal/cache"
	"evalboard/internal/domain"
	"evalboard/internal/dto"
	"evalboard/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// GenerationClient is the outbound port to the question-generation
// service, one method per endpoint.
type GenerationClient interface {
	GenerateFromPrompt(ctx context.Context, req *domain.GenerationRequest) ([]dto.RawQuestion, error)
	GenerateFromDocument(ctx context.Context, req *domain.GenerationRequest) ([]dto.RawQuestion, error)
}

// GenerationService orchestrates the generation lifecycle: it owns the
// per-form sessions, issues the outbound call for a submission, and
// appends the normalized result to the draft store.
type GenerationService interface {
	NewSession() *FormSession
	Session(id string) (*FormSession, bool)
	DisposeSession(id string) error
	ResetSession(id string) error
	Generate(ctx context.Context, session *FormSession, req *domain.GenerationRequest) ([]domain.Question, error)
}

// generationService implements GenerationService
type generationService struct {
	client   GenerationClient
	store    *domain.DraftStore
	cache    domain.Cache
	cacheTTL time.Duration

	sessionsMu sync.RWMutex
	sessions   map[string]*FormSession
	sfGroup    singleflight.Group
}

// NewGenerationService creates a new instance of generationService.
// cacheClient may be nil, which disables response caching.
func NewGenerationService(
	client GenerationClient,
	store *domain.DraftStore,
	cacheClient domain.Cache,
	cacheTTL time.Duration,
) GenerationService {
	return &generationService{
		client:   client,
		store:    store,
		cache:    cacheClient,
		cacheTTL: cacheTTL,
		sessions: make(map[string]*FormSession),
	}
}

// NewSession registers and returns a fresh form session.
func (s *generationService) NewSession() *FormSession {
	session := newFormSession()
	s.sessionsMu.Lock()
	s.sessions[session.id] = session
	s.sessionsMu.Unlock()
	return session
}

// Session looks up a registered session by ID.
func (s *generationService) Session(id string) (*FormSession, bool) {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// DisposeSession tears a session down. An operation still in flight will
// have its response discarded on arrival.
func (s *generationService) DisposeSession(id string) error {
	s.sessionsMu.Lock()
	session, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.sessionsMu.Unlock()
	if !ok {
		return domain.NewNotFoundError(id)
	}
	session.dispose()
	return nil
}

// ResetSession re-arms a session to Idle.
func (s *generationService) ResetSession(id string) error {
	session, ok := s.Session(id)
	if !ok {
		return domain.NewNotFoundError(id)
	}
	session.Reset()
	return nil
}

// Generate runs one full lifecycle for the given session: Submitting,
// the outbound call, normalization, then Succeeded with the questions
// appended to the draft store, or Failed carrying the classified error.
// A failed or stale operation never touches the store.
func (s *generationService) Generate(ctx context.Context, session *FormSession, req *domain.GenerationRequest) ([]domain.Question, error) {
	token, err := session.begin(req)
	if err != nil {
		return nil, err
	}

	raw, err := s.fetch(ctx, req)
	if err != nil {
		if !session.fail(token, err) {
			logger.Get().Info("Discarding failure of a stale generation operation",
				zap.String("session_id", session.id))
		}
		return nil, err
	}

	questions, err := NormalizeBatch(raw, req)
	if err != nil {
		if !session.fail(token, err) {
			logger.Get().Info("Discarding failure of a stale generation operation",
				zap.String("session_id", session.id))
		}
		return nil, err
	}

	if !session.succeed(token) {
		logger.Get().Info("Discarding response of a stale generation operation",
			zap.String("session_id", session.id),
			zap.Int("questions", len(questions)))
		return nil, domain.NewStaleOperationError()
	}

	s.store.Append(questions)
	logger.Get().Info("Generation succeeded",
		zap.String("session_id", session.id),
		zap.String("mode", string(req.Mode)),
		zap.Int("questions", len(questions)))
	return questions, nil
}

// fetch retrieves the raw response items, serving repeated prompt-mode
// requests from the cache. Identical concurrent misses collapse into a
// single upstream call. Document-mode requests always go upstream.
func (s *generationService) fetch(ctx context.Context, req *domain.GenerationRequest) ([]dto.RawQuestion, error) {
	if req.Mode == domain.ModeDocument {
		return s.client.GenerateFromDocument(ctx, req)
	}
	if s.cache == nil {
		return s.client.GenerateFromPrompt(ctx, req)
	}

	key := cache.GenerateCacheKey("generation", "response", cache.FingerprintGenerationRequest(req))
	if cached, errGet := s.cache.Get(ctx, key); errGet == nil {
		var items []dto.RawQuestion
		if errDecode := json.Unmarshal([]byte(cached), &items); errDecode == nil {
			logger.Get().Debug("Generation cache hit", zap.String("key", key))
			return items, nil
		}
		// Corrupt entry, drop it and fall through to the service.
		_ = s.cache.Delete(ctx, key)
	} else if errGet != domain.ErrCacheMiss {
		logger.Get().Warn("Generation cache read failed, calling service directly",
			zap.String("key", key), zap.Error(errGet))
	}

	res, err, _ := s.sfGroup.Do(key, func() (interface{}, error) {
		items, errCall := s.client.GenerateFromPrompt(ctx, req)
		if errCall != nil {
			return nil, errCall
		}
		if encoded, errEncode := json.Marshal(items); errEncode == nil {
			if errSet := s.cache.Set(ctx, key, string(encoded), s.cacheTTL); errSet != nil {
				logger.Get().Warn("Failed to cache generation response",
					zap.String("key", key), zap.Error(errSet))
			}
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	items, ok := res.([]dto.RawQuestion)
	if !ok {
		return nil, domain.NewInternalError("unexpected type from deduplicated generation fetch", nil)
	}
	return items, nil
}
