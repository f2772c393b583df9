package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"
	"trainrec_backend/internal/authz"
	"trainrec_backend/internal/model"
	"trainrec_backend/internal/repository"
	"trainrec_backend/internal/util"
	"trainrec_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	catalogCacheKey = "courses:catalog"
	catalogCacheTTL = 5 * time.Minute
)

// CourseView is a catalog entry with the caller's access flag attached.
// The flag never changes the entry's position in the list.
type CourseView struct {
	model.Course
	CanAccess bool `json:"canAccess"`
}

type CourseService struct {
	Courses     *repository.CourseRepository
	Assignments *repository.AssignmentRepository
	Access      *AccessService
	Redis       *redis.Client
}

func NewCourseService(courses *repository.CourseRepository, assignments *repository.AssignmentRepository, access *AccessService, rdb *redis.Client) *CourseService {
	return &CourseService{
		Courses:     courses,
		Assignments: assignments,
		Access:      access,
		Redis:       rdb,
	}
}

func (s *CourseService) listCatalog(ctx context.Context) ([]model.Course, error) {
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, catalogCacheKey).Result(); err == nil {
			var cached []model.Course
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	courses, err := s.Courses.List()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(courses); err == nil {
			if err := s.Redis.Set(ctx, catalogCacheKey, data, catalogCacheTTL).Err(); err != nil {
				logger.Log.Warn("course catalog cache write failed", zap.Error(err))
			}
		}
	}

	return courses, nil
}

func (s *CourseService) invalidateCatalog(ctx context.Context) {
	if s.Redis != nil {
		s.Redis.Del(ctx, catalogCacheKey)
	}
}

// List returns the catalog in (order_index ASC, created_at DESC) order.
// User-role callers never see unpublished courses; everyone else sees them
// with isPublished visible. Access flags are computed after the sort.
func (s *CourseService) List(ctx context.Context, claims *util.Claims) ([]CourseView, error) {
	courses, err := s.listCatalog(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]CourseView, 0, len(courses))
	for i := range courses {
		course := courses[i]
		if claims.Role == authz.User && !course.IsPublished {
			continue
		}
		canAccess, err := s.Access.CanAccessCourse(claims, &course)
		if err != nil {
			return nil, err
		}
		views = append(views, CourseView{Course: course, CanAccess: canAccess})
	}
	return views, nil
}

// Get fetches one course. For the User role an unpublished or inaccessible
// course is indistinguishable from an absent one.
func (s *CourseService) Get(claims *util.Claims, id uint) (*CourseView, error) {
	course, err := s.Courses.FindByID(id)
	if err != nil {
		return nil, err
	}

	if claims.Role == authz.User && !course.IsPublished {
		return nil, gorm.ErrRecordNotFound
	}

	canAccess, err := s.Access.CanAccessCourse(claims, course)
	if err != nil {
		return nil, err
	}
	if claims.Role == authz.User && !canAccess {
		return nil, gorm.ErrRecordNotFound
	}

	return &CourseView{Course: *course, CanAccess: canAccess}, nil
}

func (s *CourseService) Create(ctx context.Context, course *model.Course) error {
	if err := s.Courses.Create(course); err != nil {
		return err
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *CourseService) Update(ctx context.Context, course *model.Course) error {
	if err := s.Courses.Update(course); err != nil {
		return err
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *CourseService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Courses.FindByID(id); err != nil {
		return err
	}
	if err := s.Courses.Delete(id); err != nil {
		return err
	}
	s.invalidateCatalog(ctx)
	return nil
}

// CompleteCourse marks the caller's own assignment completed. The caller
// must hold access to the course under the usual gate.
func (s *CourseService) CompleteCourse(claims *util.Claims, courseID uint) (*model.CourseAssignment, error) {
	course, err := s.Courses.FindByID(courseID)
	if err != nil {
		return nil, err
	}

	if claims.Role == authz.User && !course.IsPublished {
		return nil, gorm.ErrRecordNotFound
	}

	canAccess, err := s.Access.CanAccessCourse(claims, course)
	if err != nil {
		return nil, err
	}
	if !canAccess {
		return nil, gorm.ErrRecordNotFound
	}

	personnelID, ok, err := s.Access.ResolvePersonnelID(claims)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, util.ErrNotAssigned
	}

	assignment, err := s.Assignments.FindByPersonnelAndCourse(personnelID, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotAssigned
		}
		return nil, err
	}

	now := time.Now()
	assignment.Status = model.StatusCompleted
	assignment.CompletedAt = &now
	if err := s.Assignments.Update(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// CompleteLesson records a lesson completion for the caller and, once every
// lesson of the course is complete, promotes the assignment to completed.
func (s *CourseService) CompleteLesson(claims *util.Claims, lessonID uint) error {
	lesson, err := s.Courses.FindLessonByID(lessonID)
	if err != nil {
		return err
	}
	module, err := s.Courses.FindModuleByID(lesson.ModuleID)
	if err != nil {
		return err
	}
	course, err := s.Courses.FindByID(module.CourseID)
	if err != nil {
		return err
	}

	if claims.Role == authz.User && !course.IsPublished {
		return gorm.ErrRecordNotFound
	}
	canAccess, err := s.Access.CanAccessCourse(claims, course)
	if err != nil {
		return err
	}
	if !canAccess {
		return gorm.ErrRecordNotFound
	}
	canOpen, err := s.Access.CanAccessLesson(claims, lesson)
	if err != nil {
		return err
	}
	if !canOpen {
		return util.ErrLessonNotAccessible
	}

	personnelID, ok, err := s.Access.ResolvePersonnelID(claims)
	if err != nil {
		return err
	}
	if !ok {
		return util.ErrNotAssigned
	}

	if err := s.Assignments.CompleteLesson(personnelID, lessonID); err != nil {
		return err
	}

	total, err := s.Courses.CountLessons(course.ID)
	if err != nil {
		return err
	}
	done, err := s.Assignments.CountCompletedLessons(personnelID, course.ID)
	if err != nil {
		return err
	}
	if total > 0 && done >= total {
		assignment, err := s.Assignments.FindByPersonnelAndCourse(personnelID, course.ID)
		if err != nil {
			return err
		}
		if assignment.Status != model.StatusCompleted {
			now := time.Now()
			assignment.Status = model.StatusCompleted
			assignment.CompletedAt = &now
			return s.Assignments.Update(assignment)
		}
	}
	return nil
}

func (s *CourseService) CreateModule(m *model.CourseModule) error {
	if _, err := s.Courses.FindByID(m.CourseID); err != nil {
		return err
	}
	return s.Courses.CreateModule(m)
}

func (s *CourseService) GetModule(claims *util.Claims, id uint) (*model.CourseModule, bool, error) {
	module, err := s.Courses.FindModuleByID(id)
	if err != nil {
		return nil, false, err
	}
	course, err := s.Courses.FindByID(module.CourseID)
	if err != nil {
		return nil, false, err
	}

	if claims.Role == authz.User && !course.IsPublished {
		return nil, false, gorm.ErrRecordNotFound
	}
	canAccessCourse, err := s.Access.CanAccessCourse(claims, course)
	if err != nil {
		return nil, false, err
	}
	if claims.Role == authz.User && !canAccessCourse {
		return nil, false, gorm.ErrRecordNotFound
	}

	canOpen, err := s.Access.CanAccessModule(claims, module)
	if err != nil {
		return nil, false, err
	}
	return module, canOpen, nil
}

func (s *CourseService) UpdateModule(m *model.CourseModule) error {
	return s.Courses.UpdateModule(m)
}

func (s *CourseService) DeleteModule(id uint) error {
	if _, err := s.Courses.FindModuleByID(id); err != nil {
		return err
	}
	return s.Courses.DeleteModule(id)
}

func (s *CourseService) CreateLesson(l *model.Lesson) error {
	if _, err := s.Courses.FindModuleByID(l.ModuleID); err != nil {
		return err
	}
	return s.Courses.CreateLesson(l)
}

func (s *CourseService) GetLesson(claims *util.Claims, id uint) (*model.Lesson, bool, error) {
	lesson, err := s.Courses.FindLessonByID(id)
	if err != nil {
		return nil, false, err
	}
	module, err := s.Courses.FindModuleByID(lesson.ModuleID)
	if err != nil {
		return nil, false, err
	}
	course, err := s.Courses.FindByID(module.CourseID)
	if err != nil {
		return nil, false, err
	}

	if claims.Role == authz.User && !course.IsPublished {
		return nil, false, gorm.ErrRecordNotFound
	}
	canAccessCourse, err := s.Access.CanAccessCourse(claims, course)
	if err != nil {
		return nil, false, err
	}
	if claims.Role == authz.User && !canAccessCourse {
		return nil, false, gorm.ErrRecordNotFound
	}

	canOpen, err := s.Access.CanAccessLesson(claims, lesson)
	if err != nil {
		return nil, false, err
	}
	return lesson, canOpen, nil
}

func (s *CourseService) UpdateLesson(l *model.Lesson) error {
	return s.Courses.UpdateLesson(l)
}

func (s *CourseService) DeleteLesson(id uint) error {
	if _, err := s.Courses.FindLessonByID(id); err != nil {
		return err
	}
	return s.Courses.DeleteLesson(id)
}
