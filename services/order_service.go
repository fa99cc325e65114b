package services

import (
	"errors"

	"github.com/gihanchamila/Little-Lemon-capston/entity"
	"github.com/gihanchamila/Little-Lemon-capston/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService converts carts into orders and guards every later
// mutation behind the role gate.
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	Roles    *RoleService
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, roles *RoleService) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, Roles: roles}
}

// PlaceOrder drains the user's cart into a new order atomically: the
// order and all its items are created and the cart emptied in one
// transaction, or nothing happens. Prices are carried over from the
// cart snapshots verbatim, never re-read from the catalog.
func (s *OrderService) PlaceOrder(userID uint) (*entity.Order, error) {
	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.ListLinesTx(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		for _, l := range lines {
			total = total.Add(l.Price)
		}

		order := entity.Order{
			UserID: userID,
			Status: entity.OrderPlaced,
			Total:  total,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				Price:      l.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		if err := s.CartRepo.ClearCart(tx, userID); err != nil {
			return err
		}

		out = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListOrders applies the mandatory visibility filter in SQL: managers
// and superusers see everything, delivery crew see their assignments,
// everyone else sees only their own orders.
func (s *OrderService) ListOrders(actor Actor, page, limit int) ([]entity.Order, int64, error) {
	filter, err := s.scopeFor(actor)
	if err != nil {
		return nil, 0, err
	}
	return s.Repo.ListOrders(filter, page, limit)
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) GetOrder(actor Actor, orderID uint) (*OrderDetail, error) {
	o, err := s.visibleOrder(actor, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

// OrderPatch is the mutable surface of an order after checkout.
type OrderPatch struct {
	DeliveryCrewID *uint               `json:"deliveryCrewId"`
	Status         *entity.OrderStatus `json:"status"`
}

// UpdateOrder applies role-scoped transition rules: only a manager may
// assign or reassign the delivery crew (which moves the order to
// ASSIGNED), and status may be advanced by a manager or by the
// assigned crew member marking the order DELIVERED. Transitions only
// move forward and are guarded at the SQL level against concurrent
// updates.
func (s *OrderService) UpdateOrder(actor Actor, orderID uint, patch OrderPatch) (*entity.Order, error) {
	o, err := s.visibleOrder(actor, orderID)
	if err != nil {
		return nil, err
	}
	if patch.DeliveryCrewID == nil && patch.Status == nil {
		return o, nil
	}

	manager, err := s.Roles.IsManager(actor)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if patch.DeliveryCrewID != nil {
			if !manager {
				return ErrForbidden
			}
			crew, err := s.Roles.IsDeliveryCrew(*patch.DeliveryCrewID)
			if err != nil {
				return err
			}
			if !crew {
				return ErrNotDeliveryCrew
			}
			affected, err := s.Repo.AssignCrewGuard(tx, o.ID, *patch.DeliveryCrewID)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrInvalidStatus
			}
			o.Status = entity.OrderAssigned
			o.DeliveryCrewID = patch.DeliveryCrewID
		}

		if patch.Status != nil {
			to := *patch.Status
			if !to.Valid() || !o.Status.Before(to) {
				return ErrInvalidStatus
			}
			assigned := o.DeliveryCrewID != nil && *o.DeliveryCrewID == actor.UserID
			if !manager {
				// assigned crew may only close the order out
				if !assigned || to != entity.OrderDelivered {
					return ErrForbidden
				}
			}
			affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, to)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrInvalidStatus
			}
			o.Status = to
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

// DeleteOrder is manager-only and cascades to the order's items.
func (s *OrderService) DeleteOrder(actor Actor, orderID uint) error {
	manager, err := s.Roles.IsManager(actor)
	if err != nil {
		return err
	}
	if !manager {
		return ErrForbidden
	}
	if _, err := s.Repo.GetOrder(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteOrder(tx, orderID)
	})
}

// scopeFor builds the SQL visibility filter for the actor's strongest
// role.
func (s *OrderService) scopeFor(actor Actor) (repository.OrderFilter, error) {
	manager, err := s.Roles.IsManager(actor)
	if err != nil {
		return repository.OrderFilter{}, err
	}
	if manager {
		return repository.OrderFilter{}, nil
	}
	crew, err := s.Roles.IsDeliveryCrew(actor.UserID)
	if err != nil {
		return repository.OrderFilter{}, err
	}
	if crew {
		return repository.OrderFilter{DeliveryCrewID: actor.UserID}, nil
	}
	return repository.OrderFilter{UserID: actor.UserID}, nil
}

// visibleOrder resolves the order inside the actor's visibility scope;
// anything outside it is reported as not found rather than forbidden,
// so existence never leaks.
func (s *OrderService) visibleOrder(actor Actor, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if o.UserID == actor.UserID {
		return o, nil
	}
	manager, err := s.Roles.IsManager(actor)
	if err != nil {
		return nil, err
	}
	if manager {
		return o, nil
	}
	if o.DeliveryCrewID != nil && *o.DeliveryCrewID == actor.UserID {
		return o, nil
	}
	return nil, ErrNotFound
}
