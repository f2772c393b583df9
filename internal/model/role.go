package model

import "trainrec_backend/internal/authz"

// Role is the persisted counterpart of authz.Role. The set is fixed and
// seeded at migration; rows are never created through the API.
type Role struct {
	BaseModel
	Name        authz.Role `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Description string     `gorm:"size:255" json:"description"`
}

func (Role) TableName() string {
	return "roles"
}
