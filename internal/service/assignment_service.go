package service

import (
	"errors"
	"time"
	"trainrec_backend/internal/model"
	"trainrec_backend/internal/repository"
	"trainrec_backend/internal/util"

	"gorm.io/gorm"
)

type AssignmentService struct {
	Assignments *repository.AssignmentRepository
	Courses     *repository.CourseRepository
	Personnel   *repository.PersonnelRepository
}

func NewAssignmentService(assignments *repository.AssignmentRepository, courses *repository.CourseRepository, personnel *repository.PersonnelRepository) *AssignmentService {
	return &AssignmentService{
		Assignments: assignments,
		Courses:     courses,
		Personnel:   personnel,
	}
}

// Assign grants one Personnel access to one Course. (personnel, course) is
// unique; re-assigning is rejected rather than upserted.
func (s *AssignmentService) Assign(courseID, personnelID uint) (*model.CourseAssignment, error) {
	if _, err := s.Courses.FindByID(courseID); err != nil {
		return nil, err
	}
	if _, err := s.Personnel.FindByID(personnelID); err != nil {
		return nil, err
	}

	if _, err := s.Assignments.FindByPersonnelAndCourse(personnelID, courseID); err == nil {
		return nil, util.ErrAssignmentExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	assignment := &model.CourseAssignment{
		PersonnelID: personnelID,
		CourseID:    courseID,
		Status:      model.StatusAssigned,
	}
	if err := s.Assignments.Create(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *AssignmentService) UpdateStatus(id uint, status model.AssignmentStatus) (*model.CourseAssignment, error) {
	if !status.Valid() {
		return nil, util.ErrInvalidStatus
	}

	assignment, err := s.Assignments.FindByID(id)
	if err != nil {
		return nil, err
	}

	assignment.Status = status
	if status == model.StatusCompleted {
		now := time.Now()
		assignment.CompletedAt = &now
	} else {
		assignment.CompletedAt = nil
	}

	if err := s.Assignments.Update(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *AssignmentService) ListByCourse(courseID uint) ([]model.CourseAssignment, error) {
	if _, err := s.Courses.FindByID(courseID); err != nil {
		return nil, err
	}
	return s.Assignments.ListByCourse(courseID)
}

func (s *AssignmentService) Remove(id uint) error {
	if _, err := s.Assignments.FindByID(id); err != nil {
		return err
	}
	return s.Assignments.Delete(id)
}
