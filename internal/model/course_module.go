package model

type CourseModule struct {
	BaseModel
	CourseID                 uint     `gorm:"not null;index" json:"courseId"`
	Title                    string   `gorm:"size:200;not null" json:"title"`
	Description              string   `gorm:"size:1000" json:"description"`
	OrderIndex               int      `gorm:"default:0" json:"orderIndex"`
	RequiresPreviousModuleID *uint    `json:"requiresPreviousModuleId"`
	Lessons                  []Lesson `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE" json:"lessons,omitempty"`
}

func (CourseModule) TableName() string {
	return "course_modules"
}
