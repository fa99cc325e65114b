package services

import "errors"

// Service-level failure taxonomy. Controllers translate these with
// errors.Is; persistence errors outside this set surface as 500 and the
// enclosing transaction rolls back.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrForbidden       = errors.New("forbidden")
	ErrAlreadyMember   = errors.New("user is already in this group")
	ErrNotMember       = errors.New("user is not in this group")
	ErrInvalidStatus   = errors.New("invalid status transition")
	ErrNotDeliveryCrew = errors.New("assigned user must be in the delivery crew group")
	ErrCategoryInUse   = errors.New("category still has menu items")
)

// Actor identifies the authenticated caller of a role-scoped operation.
// It carries identity only; privileges are resolved against the store.
type Actor struct {
	UserID uint
}
