package service

import (
	"context"
	"regexp"
	"testing"
	"trainrec_backend/internal/authz"
	"trainrec_backend/internal/model"
	"trainrec_backend/internal/repository"

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

func newCourseService(t *testing.T, gate *AccessService) (*CourseService, sqlmock.Sqlmock) {
	gdb, mock := newMockDB(t)
	return NewCourseService(
		repository.NewCourseRepository(gdb),
		repository.NewAssignmentRepository(gdb),
		gate,
		nil,
	), mock
}

func expectCourseRow(mock sqlmock.Sqlmock, id uint, published bool) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "courses"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "is_published"}).
			AddRow(id, "Course", published))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "course_modules"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
}

// For the User role an unpublished or inaccessible course must be
// indistinguishable from one that does not exist.
func TestCourseServiceGet_UserFacing404(t *testing.T) {
	p := &model.Personnel{}
	p.ID = 5

	t.Run("unpublished answers not found", func(t *testing.T) {
		svc, mock := newCourseService(t, newGate(map[uint]*model.Personnel{1: p}, nil))
		expectCourseRow(mock, 10, false)

		_, err := svc.Get(userClaims(1, authz.User), 10)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("published without assignment answers not found", func(t *testing.T) {
		svc, mock := newCourseService(t, newGate(map[uint]*model.Personnel{1: p}, nil))
		expectCourseRow(mock, 10, true)

		_, err := svc.Get(userClaims(1, authz.User), 10)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("published with assignment opens", func(t *testing.T) {
		gate := newGate(
			map[uint]*model.Personnel{1: p},
			map[assignmentKey]*model.CourseAssignment{
				{5, 10}: {Status: model.StatusAssigned},
			},
		)
		svc, mock := newCourseService(t, gate)
		expectCourseRow(mock, 10, true)

		view, err := svc.Get(userClaims(1, authz.User), 10)
		require.NoError(t, err)
		assert.True(t, view.CanAccess)
	})

	t.Run("admin sees unpublished", func(t *testing.T) {
		svc, mock := newCourseService(t, newGate(nil, nil))
		expectCourseRow(mock, 10, false)

		view, err := svc.Get(userClaims(1, authz.Admin), 10)
		require.NoError(t, err)
		assert.False(t, view.IsPublished)
		assert.True(t, view.CanAccess)
	})
}

// Catalog order comes from the repository; visibility filtering must not
// reorder surviving entries, and access flags ride along per caller.
func TestCourseServiceList_FiltersUnpublishedForUser(t *testing.T) {
	p := &model.Personnel{}
	p.ID = 5

	gate := newGate(
		map[uint]*model.Personnel{1: p},
		map[assignmentKey]*model.CourseAssignment{
			{5, 2}: {Status: model.StatusAssigned},
		},
	)
	svc, mock := newCourseService(t, gate)

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY order_index ASC, created_at DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "is_published", "order_index"}).
			AddRow(1, "Draft", false, 0).
			AddRow(2, "Assigned", true, 1).
			AddRow(3, "Locked", true, 2))

	views, err := svc.List(context.Background(), userClaims(1, authz.User))

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, uint(2), views[0].ID)
	assert.True(t, views[0].CanAccess)
	assert.Equal(t, uint(3), views[1].ID)
	assert.False(t, views[1].CanAccess)
}

func TestCourseServiceList_NonUserSeesUnpublished(t *testing.T) {
	svc, mock := newCourseService(t, newGate(nil, nil))

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY order_index ASC, created_at DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "is_published"}).
			AddRow(1, "Draft", false).
			AddRow(2, "Live", true))

	views, err := svc.List(context.Background(), userClaims(1, authz.Readit))

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.False(t, views[0].IsPublished)
	assert.True(t, views[0].CanAccess)
}
