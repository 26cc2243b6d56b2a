package domain

import (
	"testing"
)

func storeQuestion(id, content string) Question {
	return Question{
		ID:         id,
		Content:    content,
		Type:       TypeMultipleChoice,
		Options:    []string{"A", "B", "C", "D"},
		Answer:     "A",
		Difficulty: DifficultyMedium,
	}
}

func TestDraftStore_AppendPreservesOrder(t *testing.T) {
	store := NewDraftStore()
	store.Append([]Question{
		storeQuestion("q1", "first"),
		storeQuestion("q2", "second"),
	})
	store.Append([]Question{storeQuestion("q3", "third")})

	list := store.List()
	if len(list) != 3 {
		t.Fatalf("List() returned %d entries, want 3", len(list))
	}
	for i, wantID := range []string{"q1", "q2", "q3"} {
		if list[i].ID != wantID {
			t.Errorf("List()[%d].ID = %s, want %s", i, list[i].ID, wantID)
		}
	}
}

func TestDraftStore_AppendUpsertsOnCollision(t *testing.T) {
	store := NewDraftStore()
	store.Append([]Question{
		storeQuestion("q1", "original"),
		storeQuestion("q2", "second"),
	})

	replacement := storeQuestion("q1", "replaced")
	store.Append([]Question{replacement})

	if store.Len() != 2 {
		t.Fatalf("Len() = %d after upsert, want 2", store.Len())
	}
	got, ok := store.Get("q1")
	if !ok {
		t.Fatal("Get(q1) not found after upsert")
	}
	if got.Content != "replaced" {
		t.Errorf("Get(q1).Content = %q, want %q", got.Content, "replaced")
	}
	// The replaced entry keeps its original position.
	if list := store.List(); list[0].ID != "q1" {
		t.Errorf("List()[0].ID = %s, want q1", list[0].ID)
	}
}

func TestDraftStore_Edit(t *testing.T) {
	store := NewDraftStore()
	store.Append([]Question{storeQuestion("q1", "original")})

	newContent := "edited content"
	newDifficulty := DifficultyHard
	updated, err := store.Edit("q1", QuestionPatch{
		Content:    &newContent,
		Difficulty: &newDifficulty,
	})
	if err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if updated.Content != newContent || updated.Difficulty != newDifficulty {
		t.Errorf("Edit() returned %+v, want patched content and difficulty", updated)
	}
	if updated.Answer != "A" {
		t.Errorf("Edit() touched unpatched field Answer = %q", updated.Answer)
	}

	_, err = store.Edit("missing", QuestionPatch{Content: &newContent})
	if !IsCode(err, ErrNotFound) {
		t.Errorf("Edit(missing) error = %v, want NOT_FOUND", err)
	}

	// A patch producing an invalid entity is rejected and the stored
	// value stays intact.
	empty := ""
	_, err = store.Edit("q1", QuestionPatch{Content: &empty})
	if !IsCode(err, ErrValidation) {
		t.Errorf("Edit with empty content error = %v, want VALIDATION_ERROR", err)
	}
	got, _ := store.Get("q1")
	if got.Content != newContent {
		t.Errorf("stored content = %q after rejected patch, want %q", got.Content, newContent)
	}
}

func TestDraftStore_Remove(t *testing.T) {
	store := NewDraftStore()
	store.Append([]Question{
		storeQuestion("q1", "first"),
		storeQuestion("q2", "second"),
	})

	if err := store.Remove("q1"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d after remove, want 1", store.Len())
	}
	if _, ok := store.Get("q1"); ok {
		t.Error("Get(q1) still present after Remove")
	}
	if err := store.Remove("q1"); !IsCode(err, ErrNotFound) {
		t.Errorf("Remove(q1) twice error = %v, want NOT_FOUND", err)
	}
}

func TestDraftStore_ListReturnsCopies(t *testing.T) {
	store := NewDraftStore()
	store.Append([]Question{storeQuestion("q1", "first")})

	list := store.List()
	list[0].Options[0] = "mutated"

	got, _ := store.Get("q1")
	if got.Options[0] != "A" {
		t.Errorf("store option mutated through List() result: %q", got.Options[0])
	}
}
