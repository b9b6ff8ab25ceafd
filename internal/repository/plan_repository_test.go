package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axis-planner/axis-api/internal/models"
)

func TestPlanRepositoryReplaceForUser(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPlanRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM scheduled_blocks WHERE user_id = $1`)).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO scheduled_blocks`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	blocks := []models.ScheduledBlock{{
		TaskID:   "task-1",
		TaskName: "essay",
		StartAt:  start,
		EndAt:    start.Add(30 * time.Minute),
	}}
	require.NoError(t, repo.ReplaceForUser(context.Background(), "user-1", blocks))
	assert.NotEmpty(t, blocks[0].ID, "blocks get ids on insert")
	assert.Equal(t, "user-1", blocks[0].UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanRepositoryReplaceRollsBackOnFailure(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPlanRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM scheduled_blocks WHERE user_id = $1`)).
		WithArgs("user-1").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.ReplaceForUser(context.Background(), "user-1", nil)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlanRepositoryListByUser(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPlanRepository(db)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "user_id", "task_id", "task_name", "category", "start_at", "end_at"}).
		AddRow("block-1", "user-1", "task-1", "essay", "school", start, start.Add(30*time.Minute))

	mock.ExpectQuery(`SELECT id, user_id, task_id, task_name, category, start_at, end_at`).
		WithArgs("user-1").
		WillReturnRows(rows)

	blocks, err := repo.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "essay", blocks[0].TaskName)
	require.NoError(t, mock.ExpectationsWereMet())
}
