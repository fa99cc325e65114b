package services

import (
	"errors"

	"github.com/gihanchamila/Little-Lemon-capston/entity"
	"github.com/gihanchamila/Little-Lemon-capston/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartService owns the per-user working set of prospective order lines
// and the price-snapshot policy: every add or set copies the current
// catalog price onto the line, so cart prices track the catalog right
// up to checkout but never change inside an order.
type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

// AddLine merges into an existing line for the same menu item instead
// of creating a duplicate; the (user, menuitem) unique index backstops
// that invariant against concurrent adds.
func (s *CartService) AddLine(userID, menuItemID uint, quantity int) (*entity.CartLine, error) {
	return s.upsertLine(userID, menuItemID, quantity, false)
}

// SetLineQuantity overwrites the quantity instead of incrementing it.
func (s *CartService) SetLineQuantity(userID, menuItemID uint, quantity int) (*entity.CartLine, error) {
	return s.upsertLine(userID, menuItemID, quantity, true)
}

func (s *CartService) upsertLine(userID, menuItemID uint, quantity int, absolute bool) (*entity.CartLine, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.MenuRepo.GetMenuItem(menuItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var out *entity.CartLine
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		line, err := s.CartRepo.GetLine(tx, userID, menuItemID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			line = &entity.CartLine{
				UserID:     userID,
				MenuItemID: menuItemID,
				Quantity:   quantity,
				UnitPrice:  item.Price,
			}
			line.Price = linePrice(line.UnitPrice, line.Quantity)
			out = line
			return s.CartRepo.CreateLine(tx, line)
		}
		if err != nil {
			return err
		}

		if absolute {
			line.Quantity = quantity
		} else {
			line.Quantity += quantity
		}
		line.UnitPrice = item.Price // re-snapshot on every touch
		line.Price = linePrice(line.UnitPrice, line.Quantity)
		out = line
		return s.CartRepo.SaveLine(tx, line)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CartService) RemoveLine(userID, menuItemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.CartRepo.RemoveLine(tx, userID, menuItemID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Clear drains the whole cart; clearing an empty cart succeeds.
func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, userID)
	})
}

func (s *CartService) ListLines(userID uint) ([]entity.CartLine, decimal.Decimal, error) {
	lines, err := s.CartRepo.ListLines(userID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Price)
	}
	return lines, subtotal, nil
}

func linePrice(unit decimal.Decimal, qty int) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(qty)))
}
