package service

import (
	"testing"
	"trainrec_backend/internal/authz"
	"trainrec_backend/internal/model"
	"trainrec_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePersonnel struct {
	byUserID map[uint]*model.Personnel
}

func (f *fakePersonnel) FindByUserID(userID uint) (*model.Personnel, error) {
	if p, ok := f.byUserID[userID]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type assignmentKey struct {
	personnelID uint
	courseID    uint
}

type fakeAssignments struct {
	rows map[assignmentKey]*model.CourseAssignment
}

func (f *fakeAssignments) FindByPersonnelAndCourse(personnelID, courseID uint) (*model.CourseAssignment, error) {
	if a, ok := f.rows[assignmentKey{personnelID, courseID}]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type lessonKey struct {
	personnelID uint
	lessonID    uint
}

type fakeProgress struct {
	completed     map[lessonKey]bool
	moduleLessons map[uint]int64
	moduleDone    map[lessonKey]int64 // lessonID field reused as moduleID
}

func (f *fakeProgress) IsLessonCompleted(personnelID, lessonID uint) (bool, error) {
	return f.completed[lessonKey{personnelID, lessonID}], nil
}

func (f *fakeProgress) CountModuleLessons(moduleID uint) (int64, error) {
	return f.moduleLessons[moduleID], nil
}

func (f *fakeProgress) CountModuleCompletedLessons(personnelID, moduleID uint) (int64, error) {
	return f.moduleDone[lessonKey{personnelID, moduleID}], nil
}

func newGate(personnel map[uint]*model.Personnel, assignments map[assignmentKey]*model.CourseAssignment) *AccessService {
	return NewAccessService(
		&fakePersonnel{byUserID: personnel},
		&fakeAssignments{rows: assignments},
		&fakeProgress{
			completed:     map[lessonKey]bool{},
			moduleLessons: map[uint]int64{},
			moduleDone:    map[lessonKey]int64{},
		},
	)
}

func userClaims(userID uint, role authz.Role) *util.Claims {
	return &util.Claims{UserID: userID, Email: "someone@example.com", Role: role}
}

func course(id uint, prereq *uint) *model.Course {
	c := &model.Course{RequiresPreviousCourseID: prereq}
	c.ID = id
	return c
}

func TestCanAccessCourse_RoleBypass(t *testing.T) {
	gate := newGate(nil, nil)

	for _, role := range []authz.Role{authz.SystemAdmin, authz.Admin, authz.Readit} {
		ok, err := gate.CanAccessCourse(userClaims(1, role), course(10, nil))
		require.NoError(t, err)
		assert.True(t, ok, "role %s must bypass the gate", role)
	}
}

func TestCanAccessCourse_NoPersonnelRecord(t *testing.T) {
	gate := newGate(nil, nil)

	ok, err := gate.CanAccessCourse(userClaims(1, authz.User), course(10, nil))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanAccessCourse_AssignmentGrantsRegardlessOfStatus(t *testing.T) {
	p := &model.Personnel{}
	p.ID = 5

	for _, status := range []model.AssignmentStatus{
		model.StatusAssigned, model.StatusInProgress, model.StatusCompleted, model.StatusFailed,
	} {
		gate := newGate(
			map[uint]*model.Personnel{1: p},
			map[assignmentKey]*model.CourseAssignment{
				{5, 10}: {Status: status},
			},
		)

		ok, err := gate.CanAccessCourse(userClaims(1, authz.User), course(10, nil))
		require.NoError(t, err)
		assert.True(t, ok, "status %s must still grant access to the course itself", status)
	}
}

func TestCanAccessCourse_MissingAssignmentDenies(t *testing.T) {
	p := &model.Personnel{}
	p.ID = 5

	gate := newGate(map[uint]*model.Personnel{1: p}, nil)

	ok, err := gate.CanAccessCourse(userClaims(1, authz.User), course(10, nil))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanAccessCourse_Prerequisite(t *testing.T) {
	p := &model.Personnel{}
	p.ID = 5
	prereq := uint(9)

	cases := []struct {
		name         string
		prereqStatus *model.AssignmentStatus
		want         bool
	}{
		{"completed grants", ptr(model.StatusCompleted), true},
		{"in_progress denies", ptr(model.StatusInProgress), false},
		{"failed denies", ptr(model.StatusFailed), false},
		{"assigned denies", ptr(model.StatusAssigned), false},
		{"missing row denies", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows := map[assignmentKey]*model.CourseAssignment{
				{5, 10}: {Status: model.StatusAssigned},
			}
			if tc.prereqStatus != nil {
				rows[assignmentKey{5, 9}] = &model.CourseAssignment{Status: *tc.prereqStatus}
			}
			gate := newGate(map[uint]*model.Personnel{1: p}, rows)

			ok, err := gate.CanAccessCourse(userClaims(1, authz.User), course(10, &prereq))
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

// The prerequisite pointer is followed exactly one step: completing course B
// unlocks C even while B's own prerequisite A was never completed.
func TestCanAccessCourse_SingleHopOnly(t *testing.T) {
	p := &model.Personnel{}
	p.ID = 5
	prereqB := uint(2)

	gate := newGate(
		map[uint]*model.Personnel{1: p},
		map[assignmentKey]*model.CourseAssignment{
			{5, 2}: {Status: model.StatusCompleted},
			{5, 3}: {Status: model.StatusAssigned},
		},
	)

	ok, err := gate.CanAccessCourse(userClaims(1, authz.User), course(3, &prereqB))
	require.NoError(t, err)
	assert.True(t, ok)
}

// Gate checks are read-only: asking twice with the same rows must give the
// same answer.
func TestCanAccessCourse_Idempotent(t *testing.T) {
	p := &model.Personnel{}
	p.ID = 5

	gate := newGate(
		map[uint]*model.Personnel{1: p},
		map[assignmentKey]*model.CourseAssignment{
			{5, 10}: {Status: model.StatusInProgress},
		},
	)

	claims := userClaims(1, authz.User)
	first, err := gate.CanAccessCourse(claims, course(10, nil))
	require.NoError(t, err)
	second, err := gate.CanAccessCourse(claims, course(10, nil))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCanAccessModule(t *testing.T) {
	p := &model.Personnel{}
	p.ID = 5
	prereqModule := uint(7)

	module := func(prereq *uint) *model.CourseModule {
		m := &model.CourseModule{RequiresPreviousModuleID: prereq}
		m.ID = 20
		return m
	}

	t.Run("no prerequisite opens", func(t *testing.T) {
		gate := newGate(map[uint]*model.Personnel{1: p}, nil)
		ok, err := gate.CanAccessModule(userClaims(1, authz.User), module(nil))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("all prerequisite lessons done opens", func(t *testing.T) {
		gate := newGate(map[uint]*model.Personnel{1: p}, nil)
		gate.Progress = &fakeProgress{
			moduleLessons: map[uint]int64{7: 3},
			moduleDone:    map[lessonKey]int64{{5, 7}: 3},
		}
		ok, err := gate.CanAccessModule(userClaims(1, authz.User), module(&prereqModule))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("partial prerequisite denies", func(t *testing.T) {
		gate := newGate(map[uint]*model.Personnel{1: p}, nil)
		gate.Progress = &fakeProgress{
			moduleLessons: map[uint]int64{7: 3},
			moduleDone:    map[lessonKey]int64{{5, 7}: 2},
		}
		ok, err := gate.CanAccessModule(userClaims(1, authz.User), module(&prereqModule))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty prerequisite module denies", func(t *testing.T) {
		gate := newGate(map[uint]*model.Personnel{1: p}, nil)
		gate.Progress = &fakeProgress{
			moduleLessons: map[uint]int64{},
			moduleDone:    map[lessonKey]int64{},
		}
		ok, err := gate.CanAccessModule(userClaims(1, authz.User), module(&prereqModule))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("non-user role bypasses", func(t *testing.T) {
		gate := newGate(nil, nil)
		ok, err := gate.CanAccessModule(userClaims(1, authz.Readit), module(&prereqModule))
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestCanAccessLesson(t *testing.T) {
	p := &model.Personnel{}
	p.ID = 5
	prereqLesson := uint(30)

	lesson := func(prereq *uint) *model.Lesson {
		l := &model.Lesson{RequiresPreviousLessonID: prereq}
		l.ID = 31
		return l
	}

	t.Run("no prerequisite opens", func(t *testing.T) {
		gate := newGate(map[uint]*model.Personnel{1: p}, nil)
		ok, err := gate.CanAccessLesson(userClaims(1, authz.User), lesson(nil))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("completed prerequisite opens", func(t *testing.T) {
		gate := newGate(map[uint]*model.Personnel{1: p}, nil)
		gate.Progress = &fakeProgress{
			completed: map[lessonKey]bool{{5, 30}: true},
		}
		ok, err := gate.CanAccessLesson(userClaims(1, authz.User), lesson(&prereqLesson))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("incomplete prerequisite denies", func(t *testing.T) {
		gate := newGate(map[uint]*model.Personnel{1: p}, nil)
		gate.Progress = &fakeProgress{completed: map[lessonKey]bool{}}
		ok, err := gate.CanAccessLesson(userClaims(1, authz.User), lesson(&prereqLesson))
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestResolvePersonnelID(t *testing.T) {
	p := &model.Personnel{}
	p.ID = 5

	gate := newGate(map[uint]*model.Personnel{1: p}, nil)

	id, ok, err := gate.ResolvePersonnelID(userClaims(1, authz.User))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(5), id)

	_, ok, err = gate.ResolvePersonnelID(userClaims(99, authz.User))
	require.NoError(t, err)
	assert.False(t, ok)
}

func ptr[T any](v T) *T { return &v }
