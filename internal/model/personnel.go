package model

// Personnel is a service-member record. It exists independently of a login:
// UserID is set only once an account has been provisioned for the person.
type Personnel struct {
	BaseModel
	LastName   string `gorm:"size:100;not null" json:"lastName"`
	FirstName  string `gorm:"size:100;not null" json:"firstName"`
	MiddleName string `gorm:"size:100" json:"middleName"`
	Rank       string `gorm:"size:100" json:"rank"`
	Position   string `gorm:"size:150" json:"position"`
	UserID     *uint  `gorm:"uniqueIndex" json:"userId"`
	User       *User  `json:"user,omitempty"`
	CrewID     *uint  `gorm:"index" json:"crewId"`
	Crew       *Crew  `gorm:"constraint:OnDelete:SET NULL" json:"crew,omitempty"`
}

func (Personnel) TableName() string {
	return "personnel"
}
