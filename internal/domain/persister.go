package domain

import "context"

// DraftPersister is the port to the external persistence collaborator.
// Its contract is "replace or upsert the caller's question set": the full
// current draft sequence is handed over, and success or failure of the
// write never mutates the in-memory store.
type DraftPersister interface {
	ReplaceSet(ctx context.Context, setID string, questions []Question) error
	LoadSet(ctx context.Context, setID string) ([]Question, error)
}
