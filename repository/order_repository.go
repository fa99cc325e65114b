package repository

import (
	"github.com/gihanchamila/Little-Lemon-capston/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderFilter narrows listing to one visibility scope. Zero-value means
// no scoping (manager view); at most one of the two fields is set.
type OrderFilter struct {
	UserID         uint
	DeliveryCrewID uint
}

func (r *OrderRepository) ListOrders(f OrderFilter, page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}

	q := r.DB.Model(&entity.Order{})
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.DeliveryCrewID != 0 {
		q = q.Where("delivery_crew_id = ?", f.DeliveryCrewID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Order
	err := q.Order("id DESC").Limit(limit).Offset((page - 1) * limit).Find(&out).Error
	return out, total, err
}

// UpdateStatusGuard flips status only when the row still holds the
// expected current status; a zero rows-affected result means the order
// moved concurrently or the transition was invalid.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// AssignCrewGuard sets the delivery crew and moves the order to
// ASSIGNED, refusing to touch orders already delivered.
func (r *OrderRepository) AssignCrewGuard(tx *gorm.DB, orderID, crewID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status <> ?", orderID, entity.OrderDelivered).
		Updates(map[string]any{
			"delivery_crew_id": crewID,
			"status":           entity.OrderAssigned,
		})
	return res.RowsAffected, res.Error
}

// DeleteOrder removes the order and its items together.
func (r *OrderRepository) DeleteOrder(tx *gorm.DB, orderID uint) error {
	if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Order{}, orderID).Error
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}
