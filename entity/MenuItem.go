package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Title    string          `gorm:"uniqueIndex;not null" json:"title"`
	Price    decimal.Decimal `gorm:"type:decimal(6,2);not null;index" json:"price"`
	Featured bool            `gorm:"index" json:"featured"`

	CategoryID uint     `gorm:"not null" json:"categoryId"`
	Category   Category `json:"-"` // preload on detail only
}
