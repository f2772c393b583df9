package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestCourseRepository_ListOrdering(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCourseRepository(gdb)

	rows := sqlmock.NewRows([]string{"id", "title", "is_published", "order_index"}).
		AddRow(3, "Basics", true, 0).
		AddRow(1, "Advanced", true, 1).
		AddRow(2, "Refresher", false, 2)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY order_index ASC, created_at DESC`)).
		WillReturnRows(rows)

	courses, err := repo.List()

	require.NoError(t, err)
	require.Len(t, courses, 3)
	assert.Equal(t, uint(3), courses[0].ID)
	assert.Equal(t, uint(1), courses[1].ID)
	assert.Equal(t, uint(2), courses[2].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseRepository_FindByID(t *testing.T) {
	t.Run("found with nested preloads", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewCourseRepository(gdb)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "courses"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "is_published"}).
				AddRow(10, "Basics", true))

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "course_modules"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "course_id", "title", "order_index"}).
				AddRow(20, 10, "Intro", 0))

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "lessons"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "module_id", "title", "order_index"}).
				AddRow(30, 20, "Welcome", 0))

		course, err := repo.FindByID(10)

		require.NoError(t, err)
		assert.Equal(t, uint(10), course.ID)
		require.Len(t, course.Modules, 1)
		require.Len(t, course.Modules[0].Lessons, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row yields ErrRecordNotFound", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		repo := NewCourseRepository(gdb)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "courses"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByID(99)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestCourseRepository_CountLessons(t *testing.T) {
	gdb, mock := newMockDB(t)
	repo := NewCourseRepository(gdb)

	mock.ExpectQuery(regexp.QuoteMeta(`JOIN course_modules ON course_modules.id = lessons.module_id`)).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	n, err := repo.CountLessons(10)

	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
