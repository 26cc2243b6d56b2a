package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"evalboard/internal/domain"
	"evalboard/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// DraftDatabaseAdapter implements domain.DraftPersister using sqlx.DB
type DraftDatabaseAdapter struct {
	db *sqlx.DB
}

// NewDraftDatabaseAdapter creates a new instance of DraftDatabaseAdapter
func NewDraftDatabaseAdapter(db *sqlx.DB) domain.DraftPersister {
	return &DraftDatabaseAdapter{db: db}
}

// ReplaceSet persists the given questions as the full content of one
// draft set in a single transaction: the set's previous rows are removed
// and the new snapshot is written in arrival order.
func (a *DraftDatabaseAdapter) ReplaceSet(ctx context.Context, setID string, questions []domain.Question) error {
	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for draft set %s: %w", setID, err)
	}
	defer tx.Rollback()

	now := time.Now()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO draft_sets (id, created_at, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET updated_at = excluded.updated_at`,
		setID, now, now); err != nil {
		return fmt.Errorf("failed to upsert draft set %s: %w", setID, err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM draft_questions WHERE set_id = ?`, setID); err != nil {
		return fmt.Errorf("failed to clear draft set %s: %w", setID, err)
	}

	insert := `INSERT INTO draft_questions
		(id, set_id, position, content, question_type, options, answer, difficulty, category, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, q := range questions {
		row := toModelDraftQuestion(setID, i, &q, now)
		if _, err := tx.ExecContext(ctx, insert,
			row.ID, row.SetID, row.Position, row.Content, row.Type,
			row.Options, row.Answer, row.Difficulty, row.Category,
			row.CreatedAt, row.UpdatedAt); err != nil {
			return fmt.Errorf("failed to insert draft question %s: %w", q.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit draft set %s: %w", setID, err)
	}
	return nil
}

// LoadSet reads a persisted draft set back in its stored order.
func (a *DraftDatabaseAdapter) LoadSet(ctx context.Context, setID string) ([]domain.Question, error) {
	var rows []models.DraftQuestion
	query := `SELECT id, set_id, position, content, question_type, options, answer, difficulty, category, created_at, updated_at
		FROM draft_questions
		WHERE set_id = ?
		ORDER BY position ASC`
	if err := a.db.SelectContext(ctx, &rows, query, setID); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NewNotFoundError(setID)
		}
		return nil, fmt.Errorf("failed to load draft set %s: %w", setID, err)
	}
	if len(rows) == 0 {
		return nil, domain.NewNotFoundError(setID)
	}

	questions := make([]domain.Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, toDomainQuestion(&rows[i]))
	}
	return questions, nil
}

func toModelDraftQuestion(setID string, position int, q *domain.Question, now time.Time) *models.DraftQuestion {
	return &models.DraftQuestion{
		ID:         q.ID,
		SetID:      setID,
		Position:   position,
		Content:    q.Content,
		Type:       string(q.Type),
		Options:    models.StringSlice(q.Options),
		Answer:     q.Answer,
		Difficulty: string(q.Difficulty),
		Category:   q.Category,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func toDomainQuestion(row *models.DraftQuestion) domain.Question {
	return domain.Question{
		ID:         row.ID,
		Content:    row.Content,
		Type:       domain.QuestionType(row.Type),
		Options:    []string(row.Options),
		Answer:     row.Answer,
		Difficulty: domain.Difficulty(row.Difficulty),
		Category:   row.Category,
	}
}
