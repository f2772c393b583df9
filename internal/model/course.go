package model

// Course content is gated per (user, course): User-role callers see a course
// only through a CourseAssignment, and may open it only after the course
// named by RequiresPreviousCourseID (at most one, never a chain walk) has
// been completed.
type Course struct {
	BaseModel
	Title                    string         `gorm:"size:200;not null" json:"title"`
	Description              string         `gorm:"size:1000" json:"description"`
	Content                  string         `gorm:"type:text" json:"content"`
	IsPublished              bool           `gorm:"default:false;index" json:"isPublished"`
	OrderIndex               int            `gorm:"default:0;index" json:"orderIndex"`
	RequiresPreviousCourseID *uint          `json:"requiresPreviousCourseId"`
	Modules                  []CourseModule `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"modules,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}
