package repository

import (
	"github.com/gihanchamila/Little-Lemon-capston/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) ListLines(userID uint) ([]entity.CartLine, error) {
	var lines []entity.CartLine
	err := r.DB.Where("user_id = ?", userID).Find(&lines).Error
	return lines, err
}

// ListLinesTx reads the cart inside a checkout transaction so the lines
// drained into the order are the same ones deleted afterwards.
func (r *CartRepository) ListLinesTx(tx *gorm.DB, userID uint) ([]entity.CartLine, error) {
	var lines []entity.CartLine
	err := tx.Where("user_id = ?", userID).Find(&lines).Error
	return lines, err
}

func (r *CartRepository) GetLine(tx *gorm.DB, userID, menuItemID uint) (*entity.CartLine, error) {
	var line entity.CartLine
	err := tx.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) CreateLine(tx *gorm.DB, line *entity.CartLine) error {
	return tx.Create(line).Error
}

func (r *CartRepository) SaveLine(tx *gorm.DB, line *entity.CartLine) error {
	return tx.Save(line).Error
}

// RemoveLine deletes one line and reports how many rows went away, so
// the service can distinguish a missing line from a removed one.
func (r *CartRepository) RemoveLine(tx *gorm.DB, userID, menuItemID uint) (int64, error) {
	res := tx.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Delete(&entity.CartLine{})
	return res.RowsAffected, res.Error
}

// ClearCart drains every line for the user. Clearing an already-empty
// cart is not an error.
func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartLine{}).Error
}
