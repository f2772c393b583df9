package model

import (
	"time"
)

type User struct {
	BaseModel
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	RoleID    uint      `gorm:"not null;index" json:"roleId"`
	Role      Role      `json:"role"`
	Active    bool      `gorm:"default:true" json:"active"`
	LastLogin time.Time `json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}
