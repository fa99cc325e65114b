package entity

import (
	"gorm.io/gorm"
)

// Group names mirror the staff groups managed through /groups/*.
const (
	RoleManager      = "Manager"
	RoleDeliveryCrew = "Delivery Crew"
)

type Role struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Users []User `gorm:"many2many:user_roles;" json:"-"`
}
