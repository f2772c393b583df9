package model

type Lesson struct {
	BaseModel
	ModuleID                 uint   `gorm:"not null;index" json:"moduleId"`
	Title                    string `gorm:"size:200;not null" json:"title"`
	Content                  string `gorm:"type:text" json:"content"`
	OrderIndex               int    `gorm:"default:0" json:"orderIndex"`
	RequiresPreviousLessonID *uint  `json:"requiresPreviousLessonId"`
}

func (Lesson) TableName() string {
	return "lessons"
}
