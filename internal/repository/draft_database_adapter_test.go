package repository

import (
	"context"
	"testing"
	"time"

	"evalboard/internal/domain"
	"evalboard/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupDraftTestDB creates a new sqlx.DB instance and sqlmock for draft repository testing.
func setupDraftTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func sampleQuestions() []domain.Question {
	return []domain.Question{
		{
			ID:         "q-1",
			Content:    "Which layer owns retransmission in TCP/IP?",
			Type:       domain.TypeMultipleChoice,
			Options:    []string{"A. Link", "B. Transport", "C. Application"},
			Answer:     "B",
			Difficulty: domain.DifficultyMedium,
			Category:   "networking",
		},
		{
			ID:         "q-2",
			Content:    "UDP guarantees in-order delivery",
			Type:       domain.TypeTrueFalse,
			Answer:     "false",
			Difficulty: domain.DifficultyEasy,
		},
	}
}

func TestReplaceSet(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := setupDraftTestDB(t)
		defer db.Close()
		adapter := NewDraftDatabaseAdapter(db)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO draft_sets`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM draft_questions`).
			WithArgs("set-1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`INSERT INTO draft_questions`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO draft_questions`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := adapter.ReplaceSet(context.Background(), "set-1", sampleQuestions())
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollbackOnInsertFailure", func(t *testing.T) {
		db, mock := setupDraftTestDB(t)
		defer db.Close()
		adapter := NewDraftDatabaseAdapter(db)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO draft_sets`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM draft_questions`).
			WithArgs("set-1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`INSERT INTO draft_questions`).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := adapter.ReplaceSet(context.Background(), "set-1", sampleQuestions())
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("EmptySetStillReplaces", func(t *testing.T) {
		db, mock := setupDraftTestDB(t)
		defer db.Close()
		adapter := NewDraftDatabaseAdapter(db)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO draft_sets`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM draft_questions`).
			WithArgs("set-1").
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		err := adapter.ReplaceSet(context.Background(), "set-1", nil)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLoadSet(t *testing.T) {
	columns := []string{"id", "set_id", "position", "content", "question_type", "options", "answer", "difficulty", "category", "created_at", "updated_at"}

	t.Run("Success", func(t *testing.T) {
		db, mock := setupDraftTestDB(t)
		defer db.Close()
		adapter := NewDraftDatabaseAdapter(db)

		now := time.Now()
		rows := sqlmock.NewRows(columns).
			AddRow("q-1", "set-1", 0, "first", "short_answer", `[]`, "a", "easy", "", now, now).
			AddRow("q-2", "set-1", 1, "second", "multiple_choice", `["A. x","B. y"]`, "A", "medium", "nets", now, now)
		mock.ExpectQuery(`SELECT .* FROM draft_questions`).
			WithArgs("set-1").
			WillReturnRows(rows)

		questions, err := adapter.LoadSet(context.Background(), "set-1")
		require.NoError(t, err)
		require.Len(t, questions, 2)
		assert.Equal(t, "q-1", questions[0].ID)
		assert.Equal(t, domain.TypeMultipleChoice, questions[1].Type)
		assert.Equal(t, []string{"A. x", "B. y"}, questions[1].Options)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := setupDraftTestDB(t)
		defer db.Close()
		adapter := NewDraftDatabaseAdapter(db)

		mock.ExpectQuery(`SELECT .* FROM draft_questions`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := adapter.LoadSet(context.Background(), "missing")
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrNotFound))
	})
}

func TestDraftQuestionConversion(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	q := sampleQuestions()[0]

	row := toModelDraftQuestion("set-1", 3, &q, now)
	assert.Equal(t, "set-1", row.SetID)
	assert.Equal(t, 3, row.Position)
	assert.Equal(t, models.StringSlice(q.Options), row.Options)
	assert.Equal(t, string(q.Type), row.Type)

	back := toDomainQuestion(row)
	assert.Equal(t, q, back)
}
