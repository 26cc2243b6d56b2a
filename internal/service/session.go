package service

import (
	"sync"

	"evalboard/internal/domain"
	"evalboard/internal/util"
)

// FormSession owns the generation lifecycle of one dashboard form
// instance. Each prompt-mode and document-mode panel holds its own
// session; sessions never share an in-flight operation. The session's
// operation token is the guard against stale writes: a response arriving
// after Reset or Dispose no longer matches the token and is discarded.
type FormSession struct {
	id string

	mu       sync.Mutex
	state    domain.OperationState
	token    string
	request  *domain.GenerationRequest
	lastErr  error
	disposed bool
}

func newFormSession() *FormSession {
	return &FormSession{
		id:    util.NewULID(),
		state: domain.StateIdle,
	}
}

// ID returns the session identifier.
func (s *FormSession) ID() string {
	return s.id
}

// State returns the current lifecycle state.
func (s *FormSession) State() domain.OperationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastError returns the error classification of the last failed
// operation, nil otherwise.
func (s *FormSession) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Reset returns the session to Idle, discarding any stale result or
// error. Clearing the token also supersedes an operation still in
// flight: its eventual response will not be applied.
func (s *FormSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.StateIdle
	s.token = ""
	s.request = nil
	s.lastErr = nil
}

// begin transitions Idle/Succeeded/Failed to Submitting and arms a fresh
// operation token. A session already Submitting rejects the second
// submission without changing state.
func (s *FormSession) begin(req *domain.GenerationRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed {
		return "", domain.NewStaleOperationError()
	}
	if s.state == domain.StateSubmitting {
		return "", domain.NewOperationInFlightError()
	}
	s.state = domain.StateSubmitting
	s.token = util.NewULID()
	s.request = req
	s.lastErr = nil
	return s.token, nil
}

// succeed moves the operation identified by token to Succeeded. It
// reports false when the session was disposed or reset in the meantime,
// in which case the caller must discard the response.
func (s *FormSession) succeed(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed || token == "" || token != s.token {
		return false
	}
	s.state = domain.StateSucceeded
	s.request = nil
	return true
}

// fail moves the operation identified by token to Failed, recording the
// classified error. Stale tokens are ignored.
func (s *FormSession) fail(token string, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.disposed || token == "" || token != s.token {
		return false
	}
	s.state = domain.StateFailed
	s.request = nil
	s.lastErr = err
	return true
}

// dispose marks the session as torn down. Any late-arriving response is
// dropped rather than applied to a store the form no longer observes.
func (s *FormSession) dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disposed = true
	s.token = ""
}
