package model

import "time"

type AssignmentStatus string

const (
	StatusAssigned   AssignmentStatus = "assigned"
	StatusInProgress AssignmentStatus = "in_progress"
	StatusCompleted  AssignmentStatus = "completed"
	StatusFailed     AssignmentStatus = "failed"
)

func (s AssignmentStatus) Valid() bool {
	switch s {
	case StatusAssigned, StatusInProgress, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// CourseAssignment grants a Personnel access to a Course. The row's
// existence gates visibility; Status matters only when the course acts as
// a prerequisite for another one (it must then be "completed").
type CourseAssignment struct {
	BaseModel
	PersonnelID uint             `gorm:"not null;uniqueIndex:idx_personnel_course" json:"personnelId"`
	CourseID    uint             `gorm:"not null;uniqueIndex:idx_personnel_course" json:"courseId"`
	Status      AssignmentStatus `gorm:"size:20;default:'assigned'" json:"status"`
	CompletedAt *time.Time       `json:"completedAt"`
	Personnel   Personnel        `json:"personnel,omitempty"`
	Course      Course           `json:"course,omitempty"`
}

func (CourseAssignment) TableName() string {
	return "course_assignments"
}
