package repository

import (
	"github.com/gihanchamila/Little-Lemon-capston/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// ---------------- Categories ----------------

func (r *MenuRepository) CreateCategory(c *entity.Category) error {
	return r.DB.Create(c).Error
}

func (r *MenuRepository) GetCategory(id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MenuRepository) ListCategories(page, limit int) ([]entity.Category, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	var total int64
	if err := r.DB.Model(&entity.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []entity.Category
	err := r.DB.Order("id").Limit(limit).Offset((page - 1) * limit).Find(&out).Error
	return out, total, err
}

func (r *MenuRepository) SaveCategory(c *entity.Category) error {
	return r.DB.Save(c).Error
}

// DeleteCategory removes the row for real. A soft delete would leave
// the title occupying its unique index and block re-creating it.
func (r *MenuRepository) DeleteCategory(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Category{}, id).Error
}

func (r *MenuRepository) CountItemsInCategory(categoryID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.MenuItem{}).Where("category_id = ?", categoryID).Count(&cnt).Error
	return cnt, err
}

// ---------------- Menu items ----------------

func (r *MenuRepository) CreateMenuItem(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) GetMenuItem(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) ListMenuItems(categoryID *uint, page, limit int) ([]entity.MenuItem, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	q := r.DB.Model(&entity.MenuItem{})
	if categoryID != nil && *categoryID != 0 {
		q = q.Where("category_id = ?", *categoryID)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []entity.MenuItem
	err := q.Order("id").Limit(limit).Offset((page - 1) * limit).Find(&out).Error
	return out, total, err
}

func (r *MenuRepository) SaveMenuItem(m *entity.MenuItem) error {
	return r.DB.Save(m).Error
}

// DeleteMenuItem removes the row for real, freeing the title for reuse.
func (r *MenuRepository) DeleteMenuItem(id uint) error {
	return r.DB.Unscoped().Delete(&entity.MenuItem{}, id).Error
}
