package domain

import (
	"sync"
)

// QuestionPatch is a partial update applied to exactly one stored question.
// Nil fields are left untouched.
type QuestionPatch struct {
	Content    *string
	Type       *QuestionType
	Options    *[]string
	Answer     *string
	Difficulty *Difficulty
	Category   *string
}

// DraftStore is the in-memory, mutable ordered collection of questions
// produced by generation or loaded from persisted storage. Entries are
// keyed by ID; appending an entry whose ID already exists replaces the
// existing entry in place (last-write-wins) without changing its position.
// The store holds no network state.
type DraftStore struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]Question
}

// NewDraftStore creates an empty draft store.
func NewDraftStore() *DraftStore {
	return &DraftStore{
		byID: make(map[string]Question),
	}
}

// Append adds questions preserving arrival order. An ID collision with an
// existing entry replaces that entry in place rather than duplicating it.
func (s *DraftStore) Append(questions []Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range questions {
		q = q.Clone()
		if _, exists := s.byID[q.ID]; !exists {
			s.order = append(s.order, q.ID)
		}
		s.byID[q.ID] = q
	}
}

// Edit applies a partial update to exactly one entry. The patched entity
// is re-validated before replacing the stored value.
func (s *DraftStore) Edit(id string, patch QuestionPatch) (Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.byID[id]
	if !ok {
		return Question{}, NewNotFoundError(id)
	}

	updated := current.Clone()
	if patch.Content != nil {
		updated.Content = *patch.Content
	}
	if patch.Type != nil {
		updated.Type = *patch.Type
	}
	if patch.Options != nil {
		options := make([]string, len(*patch.Options))
		copy(options, *patch.Options)
		updated.Options = options
	}
	if patch.Answer != nil {
		updated.Answer = *patch.Answer
	}
	if patch.Difficulty != nil {
		updated.Difficulty = *patch.Difficulty
	}
	if patch.Category != nil {
		updated.Category = *patch.Category
	}

	if err := updated.Validate(); err != nil {
		return Question{}, err
	}

	s.byID[id] = updated
	return updated.Clone(), nil
}

// Remove deletes exactly one entry.
func (s *DraftStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return NewNotFoundError(id)
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns a copy of the entry with the given ID.
func (s *DraftStore) Get(id string) (Question, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.byID[id]
	if !ok {
		return Question{}, false
	}
	return q.Clone(), true
}

// List returns a copy of the full sequence in arrival order.
func (s *DraftStore) List() []Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	questions := make([]Question, 0, len(s.order))
	for _, id := range s.order {
		questions = append(questions, s.byID[id].Clone())
	}
	return questions
}

// Len returns the number of stored questions.
func (s *DraftStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
