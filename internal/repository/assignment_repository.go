package repository

import (
	"time"
	"trainrec_backend/internal/model"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) Create(a *model.CourseAssignment) error {
	return r.DB.Create(a).Error
}

func (r *AssignmentRepository) FindByID(id uint) (*model.CourseAssignment, error) {
	var a model.CourseAssignment
	err := r.DB.First(&a, id).Error
	return &a, err
}

func (r *AssignmentRepository) FindByPersonnelAndCourse(personnelID, courseID uint) (*model.CourseAssignment, error) {
	var a model.CourseAssignment
	err := r.DB.Where("personnel_id = ? AND course_id = ?", personnelID, courseID).First(&a).Error
	return &a, err
}

func (r *AssignmentRepository) ListByCourse(courseID uint) ([]model.CourseAssignment, error) {
	var list []model.CourseAssignment
	err := r.DB.Preload("Personnel").Where("course_id = ?", courseID).Find(&list).Error
	return list, err
}

func (r *AssignmentRepository) ListByPersonnel(personnelID uint) ([]model.CourseAssignment, error) {
	var list []model.CourseAssignment
	err := r.DB.Where("personnel_id = ?", personnelID).Find(&list).Error
	return list, err
}

func (r *AssignmentRepository) Update(a *model.CourseAssignment) error {
	return r.DB.Save(a).Error
}

func (r *AssignmentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.CourseAssignment{}, id).Error
}

// CompleteLesson records a lesson completion; repeating it is a no-op.
func (r *AssignmentRepository) CompleteLesson(personnelID, lessonID uint) error {
	completion := model.LessonCompletion{
		PersonnelID: personnelID,
		LessonID:    lessonID,
		CompletedAt: time.Now(),
	}
	return r.DB.Where(model.LessonCompletion{PersonnelID: personnelID, LessonID: lessonID}).
		FirstOrCreate(&completion).Error
}

func (r *AssignmentRepository) IsLessonCompleted(personnelID, lessonID uint) (bool, error) {
	var n int64
	err := r.DB.Model(&model.LessonCompletion{}).
		Where("personnel_id = ? AND lesson_id = ?", personnelID, lessonID).
		Count(&n).Error
	return n > 0, err
}

// CountCompletedLessons counts the personnel's completions across all
// lessons of the given course.
func (r *AssignmentRepository) CountCompletedLessons(personnelID, courseID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&model.LessonCompletion{}).
		Joins("JOIN lessons ON lessons.id = lesson_completions.lesson_id").
		Joins("JOIN course_modules ON course_modules.id = lessons.module_id").
		Where("lesson_completions.personnel_id = ? AND course_modules.course_id = ?", personnelID, courseID).
		Count(&n).Error
	return n, err
}

func (r *AssignmentRepository) CountModuleLessons(moduleID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&model.Lesson{}).Where("module_id = ?", moduleID).Count(&n).Error
	return n, err
}

func (r *AssignmentRepository) CountModuleCompletedLessons(personnelID, moduleID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&model.LessonCompletion{}).
		Joins("JOIN lessons ON lessons.id = lesson_completions.lesson_id").
		Where("lesson_completions.personnel_id = ? AND lessons.module_id = ?", personnelID, moduleID).
		Count(&n).Error
	return n, err
}
