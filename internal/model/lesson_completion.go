package model

import "time"

type LessonCompletion struct {
	BaseModel
	PersonnelID uint      `gorm:"not null;uniqueIndex:idx_personnel_lesson" json:"personnelId"`
	LessonID    uint      `gorm:"not null;uniqueIndex:idx_personnel_lesson" json:"lessonId"`
	CompletedAt time.Time `json:"completedAt"`
}

func (LessonCompletion) TableName() string {
	return "lesson_completions"
}
