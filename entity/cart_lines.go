package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one prospective order line in a user's cart. UnitPrice is a
// snapshot of the catalog price taken when the line was added or last
// updated, never a live read. The (user, menuitem) unique index is the
// backstop that keeps concurrent adds of the same item from producing
// two lines.
//
// No DeletedAt: cart lines are hard-deleted on remove and on checkout,
// otherwise a dead row would keep occupying the unique index and block
// re-adding the same item.
type CartLine struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID uint `gorm:"uniqueIndex:idx_cart_user_menuitem;not null" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_user_menuitem;not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"unitPrice"`
	Price     decimal.Decimal `gorm:"type:decimal(6,2);not null" json:"price"`
}
