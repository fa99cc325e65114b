package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	IsSuperuser bool   `gorm:"not null;default:false" json:"-"`

	Roles []Role `gorm:"many2many:user_roles;" json:"-"`

	// Relations, preload only when needed
	Orders         []Order    `json:"-"`
	AssignedOrders []Order    `gorm:"foreignKey:DeliveryCrewID" json:"-"`
	CartLines      []CartLine `json:"-"`
}
