package model

type Crew struct {
	BaseModel
	Name          string      `gorm:"size:150;not null" json:"name"`
	EquipmentType string      `gorm:"size:150" json:"equipmentType"`
	Description   string      `gorm:"size:500" json:"description"`
	Members       []Personnel `gorm:"foreignKey:CrewID" json:"members,omitempty"`
}

func (Crew) TableName() string {
	return "crews"
}
