package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is immutable once placed except for status and delivery-crew
// assignment. Total is fixed at checkout from the cart snapshots and is
// never recomputed from current catalog prices.
type Order struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	DeliveryCrewID *uint `gorm:"index" json:"deliveryCrewId"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	Status OrderStatus     `gorm:"type:varchar(16);index;not null;default:PLACED" json:"status"`
	Total  decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"total"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
