package repository

import (
	"regexp"
	"testing"
	"trainrec_backend/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAssignmentRepository_FindByPersonnelAndCourse(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewAssignmentRepository(gdb)

		mock.ExpectQuery(regexp.QuoteMeta(`personnel_id = $1 AND course_id = $2`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "personnel_id", "course_id", "status"}).
				AddRow(1, 5, 10, "in_progress"))

		a, err := repo.FindByPersonnelAndCourse(5, 10)

		require.NoError(t, err)
		assert.Equal(t, model.StatusInProgress, a.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewAssignmentRepository(gdb)

		mock.ExpectQuery(regexp.QuoteMeta(`personnel_id = $1 AND course_id = $2`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByPersonnelAndCourse(5, 99)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestAssignmentRepository_IsLessonCompleted(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewAssignmentRepository(gdb)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "lesson_completions"`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	done, err := repo.IsLessonCompleted(5, 30)

	require.NoError(t, err)
	assert.True(t, done)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_CountCompletedLessons(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewAssignmentRepository(gdb)

	mock.ExpectQuery(regexp.QuoteMeta(`JOIN course_modules ON course_modules.id = lessons.module_id`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := repo.CountCompletedLessons(5, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestAssignmentRepository_CountModuleCompletedLessons(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewAssignmentRepository(gdb)

	mock.ExpectQuery(regexp.QuoteMeta(`JOIN lessons ON lessons.id = lesson_completions.lesson_id`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.CountModuleCompletedLessons(5, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
