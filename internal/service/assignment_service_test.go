package service

import (
	"regexp"
	"testing"
	"trainrec_backend/internal/model"
	"trainrec_backend/internal/repository"
	"trainrec_backend/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentServiceUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc := NewAssignmentService(nil, nil, nil)

	_, err := svc.UpdateStatus(1, "done")
	assert.ErrorIs(t, err, util.ErrInvalidStatus)
}

func TestAssignmentServiceUpdateStatus_CompletedAt(t *testing.T) {
	expectFindAndUpdate := func(mock sqlmock.Sqlmock, current model.AssignmentStatus) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "course_assignments"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "personnel_id", "course_id", "status"}).
				AddRow(1, 5, 10, string(current)))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "course_assignments"`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()
	}

	t.Run("completed stamps the time", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		svc := NewAssignmentService(repository.NewAssignmentRepository(gdb), nil, nil)
		expectFindAndUpdate(mock, model.StatusInProgress)

		a, err := svc.UpdateStatus(1, model.StatusCompleted)

		require.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, a.Status)
		assert.NotNil(t, a.CompletedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("leaving completed clears the time", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		svc := NewAssignmentService(repository.NewAssignmentRepository(gdb), nil, nil)
		expectFindAndUpdate(mock, model.StatusCompleted)

		a, err := svc.UpdateStatus(1, model.StatusFailed)

		require.NoError(t, err)
		assert.Equal(t, model.StatusFailed, a.Status)
		assert.Nil(t, a.CompletedAt)
	})
}
