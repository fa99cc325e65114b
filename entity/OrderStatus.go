package entity

// OrderStatus is the ordered delivery state of an order. The legacy
// system stored a bare boolean; the enum leaves room for the delivery
// workflow without changing the transition rules.
type OrderStatus string

const (
	OrderPlaced    OrderStatus = "PLACED"
	OrderAssigned  OrderStatus = "ASSIGNED"
	OrderDelivered OrderStatus = "DELIVERED"
)

var statusRank = map[OrderStatus]int{
	OrderPlaced:    0,
	OrderAssigned:  1,
	OrderDelivered: 2,
}

func (s OrderStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// Before reports whether s comes strictly earlier than other in the
// PLACED < ASSIGNED < DELIVERED ordering. Transitions only move forward.
func (s OrderStatus) Before(other OrderStatus) bool {
	return statusRank[s] < statusRank[other]
}
