package service

import (
	"context"

	"evalboard/internal/domain"
	"evalboard/internal/dto"
	"evalboard/internal/logger"
	"evalboard/internal/util"

	"go.uber.org/zap"
)

// DraftService exposes the working set of generated questions: listing,
// inline edits, removal, and saving the whole set out to storage.
type DraftService interface {
	List() []domain.Question
	Get(id string) (domain.Question, error)
	Edit(id string, patch *dto.DraftPatchRequest) (domain.Question, error)
	Remove(id string) error
	SaveAll(ctx context.Context) (string, int, error)
	Restore(ctx context.Context, setID string) (int, error)
	Export(ids []string) ([]domain.Question, error)
}

// draftService implements DraftService
type draftService struct {
	store     *domain.DraftStore
	persister domain.DraftPersister
}

// NewDraftService creates a new instance of draftService.
func NewDraftService(store *domain.DraftStore, persister domain.DraftPersister) DraftService {
	return &draftService{
		store:     store,
		persister: persister,
	}
}

// List returns the drafts in arrival order.
func (s *draftService) List() []domain.Question {
	return s.store.List()
}

// Get returns a single draft by ID.
func (s *draftService) Get(id string) (domain.Question, error) {
	q, ok := s.store.Get(id)
	if !ok {
		return domain.Question{}, domain.NewNotFoundError(id)
	}
	return q, nil
}

// Edit applies a partial update to one draft. An edit that would leave
// the question invalid is rejected and the stored draft is unchanged.
func (s *draftService) Edit(id string, patch *dto.DraftPatchRequest) (domain.Question, error) {
	domainPatch := domain.QuestionPatch{
		Content:    patch.Content,
		Answer:     patch.Answer,
		Category:   patch.Category,
		Options:    patch.Options,
		Type:       questionTypePtr(patch.Type),
		Difficulty: difficultyPtr(patch.Difficulty),
	}
	updated, err := s.store.Edit(id, domainPatch)
	if err != nil {
		return domain.Question{}, err
	}
	logger.Get().Debug("Draft edited", zap.String("question_id", id))
	return updated, nil
}

// Remove deletes one draft from the working set.
func (s *draftService) Remove(id string) error {
	return s.store.Remove(id)
}

// SaveAll persists the current working set as one draft set and returns
// its ID. The in-memory set keeps its contents so the user can continue
// editing after a save.
func (s *draftService) SaveAll(ctx context.Context) (string, int, error) {
	questions := s.store.List()
	if len(questions) == 0 {
		return "", 0, domain.NewValidationError("no draft questions to save")
	}
	setID := util.NewULID()
	if err := s.persister.ReplaceSet(ctx, setID, questions); err != nil {
		return "", 0, domain.NewInternalError("failed to persist draft set", err)
	}
	logger.Get().Info("Draft set saved",
		zap.String("set_id", setID),
		zap.Int("count", len(questions)))
	return setID, len(questions), nil
}

// Restore loads a previously saved draft set back into the working set.
// Restored questions merge into the store under the usual upsert rule.
func (s *draftService) Restore(ctx context.Context, setID string) (int, error) {
	questions, err := s.persister.LoadSet(ctx, setID)
	if err != nil {
		return 0, err
	}
	s.store.Append(questions)
	logger.Get().Info("Draft set restored",
		zap.String("set_id", setID),
		zap.Int("count", len(questions)))
	return len(questions), nil
}

// Export returns the requested drafts in store order. Every requested
// ID must exist; otherwise nothing is exported.
func (s *draftService) Export(ids []string) ([]domain.Question, error) {
	if len(ids) == 0 {
		return s.store.List(), nil
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := s.store.Get(id); !ok {
			return nil, domain.NewNotFoundError(id)
		}
		wanted[id] = true
	}
	all := s.store.List()
	selected := make([]domain.Question, 0, len(wanted))
	for _, q := range all {
		if wanted[q.ID] {
			selected = append(selected, q)
		}
	}
	return selected, nil
}

func questionTypePtr(s *string) *domain.QuestionType {
	if s == nil {
		return nil
	}
	qt := domain.QuestionType(*s)
	return &qt
}

func difficultyPtr(s *string) *domain.Difficulty {
	if s == nil {
		return nil
	}
	d := domain.Difficulty(*s)
	return &d
}
