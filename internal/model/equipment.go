package model

type Equipment struct {
	BaseModel
	Name         string `gorm:"size:150;not null" json:"name"`
	Type         string `gorm:"size:150" json:"type"`
	Manufacturer string `gorm:"size:150" json:"manufacturer"`
	SerialNumber string `gorm:"size:100" json:"serialNumber"`
	Notes        string `gorm:"type:text" json:"notes"`
}

func (Equipment) TableName() string {
	return "equipment"
}
