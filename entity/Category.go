package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Slug  string `gorm:"index" json:"slug"`
	Title string `gorm:"uniqueIndex;not null" json:"title"`

	MenuItems []MenuItem `json:"-"`
}
