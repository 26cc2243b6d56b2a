package service

import (
	"context"
	"time"

	"evalboard/internal/domain"
	"evalboard/internal/dto"

	"github.com/stretchr/testify/mock"
)

// --- MockGenerationClient ---
type MockGenerationClient struct {
	mock.Mock
}

func (m *MockGenerationClient) GenerateFromPrompt(ctx context.Context, req *domain.GenerationRequest) ([]dto.RawQuestion, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RawQuestion), args.Error(1)
}

func (m *MockGenerationClient) GenerateFromDocument(ctx context.Context, req *domain.GenerationRequest) ([]dto.RawQuestion, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RawQuestion), args.Error(1)
}

// --- MockDraftPersister ---
type MockDraftPersister struct {
	mock.Mock
}

func (m *MockDraftPersister) ReplaceSet(ctx context.Context, setID string, questions []domain.Question) error {
	args := m.Called(ctx, setID, questions)
	return args.Error(0)
}

func (m *MockDraftPersister) LoadSet(ctx context.Context, setID string) ([]domain.Question, error) {
	args := m.Called(ctx, setID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
