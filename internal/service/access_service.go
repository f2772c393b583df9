package service

import (
	"errors"
	"trainrec_backend/internal/authz"
	"trainrec_backend/internal/model"
	"trainrec_backend/internal/util"

	"gorm.io/gorm"
)

type PersonnelFinder interface {
	FindByUserID(userID uint) (*model.Personnel, error)
}

type AssignmentFinder interface {
	FindByPersonnelAndCourse(personnelID, courseID uint) (*model.CourseAssignment, error)
}

type LessonProgressFinder interface {
	IsLessonCompleted(personnelID, lessonID uint) (bool, error)
	CountModuleLessons(moduleID uint) (int64, error)
	CountModuleCompletedLessons(personnelID, moduleID uint) (int64, error)
}

// AccessService decides, per (caller, course/module/lesson) pair, whether
// the target is openable. Checks are read-only: repeated calls with
// unchanged assignment rows give identical answers.
//
// Rules for the User role (all other roles bypass every check):
//   - a course is accessible when a CourseAssignment row exists for the
//     caller's Personnel record, regardless of that row's status;
//   - when the course names a prerequisite, the prerequisite's assignment
//     must exist with status "completed" — in_progress, failed or a missing
//     row all deny;
//   - prerequisites are a single direct pointer, never walked transitively;
//   - a caller without a Personnel record is denied without error.
type AccessService struct {
	Personnel   PersonnelFinder
	Assignments AssignmentFinder
	Progress    LessonProgressFinder
}

func NewAccessService(personnel PersonnelFinder, assignments AssignmentFinder, progress LessonProgressFinder) *AccessService {
	return &AccessService{
		Personnel:   personnel,
		Assignments: assignments,
		Progress:    progress,
	}
}

// ResolvePersonnelID maps the caller to their Personnel record. A missing
// record is not an error, just "no personnel".
func (s *AccessService) ResolvePersonnelID(claims *util.Claims) (uint, bool, error) {
	p, err := s.Personnel.FindByUserID(claims.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return p.ID, true, nil
}

func (s *AccessService) CanAccessCourse(claims *util.Claims, course *model.Course) (bool, error) {
	if claims.Role != authz.User {
		return true, nil
	}

	personnelID, ok, err := s.ResolvePersonnelID(claims)
	if err != nil || !ok {
		return false, err
	}

	if _, err := s.Assignments.FindByPersonnelAndCourse(personnelID, course.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if course.RequiresPreviousCourseID != nil {
		prev, err := s.Assignments.FindByPersonnelAndCourse(personnelID, *course.RequiresPreviousCourseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, nil
			}
			return false, err
		}
		if prev.Status != model.StatusCompleted {
			return false, nil
		}
	}

	return true, nil
}

// CanAccessModule applies the same deny-by-default rule at module level: a
// module's prerequisite counts as met once every lesson of the referenced
// module is recorded complete.
func (s *AccessService) CanAccessModule(claims *util.Claims, module *model.CourseModule) (bool, error) {
	if claims.Role != authz.User {
		return true, nil
	}

	if module.RequiresPreviousModuleID == nil {
		return true, nil
	}

	personnelID, ok, err := s.ResolvePersonnelID(claims)
	if err != nil || !ok {
		return false, err
	}

	total, err := s.Progress.CountModuleLessons(*module.RequiresPreviousModuleID)
	if err != nil {
		return false, err
	}
	if total == 0 {
		return false, nil
	}
	done, err := s.Progress.CountModuleCompletedLessons(personnelID, *module.RequiresPreviousModuleID)
	if err != nil {
		return false, err
	}
	return done >= total, nil
}

func (s *AccessService) CanAccessLesson(claims *util.Claims, lesson *model.Lesson) (bool, error) {
	if claims.Role != authz.User {
		return true, nil
	}

	if lesson.RequiresPreviousLessonID == nil {
		return true, nil
	}

	personnelID, ok, err := s.ResolvePersonnelID(claims)
	if err != nil || !ok {
		return false, err
	}

	return s.Progress.IsLessonCompleted(personnelID, *lesson.RequiresPreviousLessonID)
}
