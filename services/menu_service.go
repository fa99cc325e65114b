package services

import (
	"errors"

	"github.com/gihanchamila/Little-Lemon-capston/entity"
	"github.com/gihanchamila/Little-Lemon-capston/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuService is the catalog: categories and menu items. Reads are
// public, writes are manager-gated at the controller.
type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

// ---------------- Categories ----------------

type CategoryIn struct {
	Slug  string `json:"slug"`
	Title string `json:"title" binding:"required"`
}

func (s *MenuService) CreateCategory(in *CategoryIn) (*entity.Category, error) {
	c := &entity.Category{Slug: in.Slug, Title: in.Title}
	if err := s.Repo.CreateCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *MenuService) GetCategory(id uint) (*entity.Category, error) {
	c, err := s.Repo.GetCategory(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return c, err
}

func (s *MenuService) ListCategories(page, limit int) ([]entity.Category, int64, error) {
	return s.Repo.ListCategories(page, limit)
}

func (s *MenuService) UpdateCategory(id uint, in *CategoryIn) (*entity.Category, error) {
	c, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}
	c.Slug = in.Slug
	c.Title = in.Title
	if err := s.Repo.SaveCategory(c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory refuses while menu items still reference the
// category, mirroring the catalog's PROTECT relationship.
func (s *MenuService) DeleteCategory(id uint) error {
	if _, err := s.GetCategory(id); err != nil {
		return err
	}
	cnt, err := s.Repo.CountItemsInCategory(id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return ErrCategoryInUse
	}
	return s.Repo.DeleteCategory(id)
}

// ---------------- Menu items ----------------

type MenuItemIn struct {
	Title      string          `json:"title" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	Featured   bool            `json:"featured"`
	CategoryID uint            `json:"categoryId" binding:"required"`
}

func (s *MenuService) CreateMenuItem(in *MenuItemIn) (*entity.MenuItem, error) {
	if _, err := s.GetCategory(in.CategoryID); err != nil {
		return nil, err
	}
	m := &entity.MenuItem{
		Title:      in.Title,
		Price:      in.Price,
		Featured:   in.Featured,
		CategoryID: in.CategoryID,
	}
	if err := s.Repo.CreateMenuItem(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) GetMenuItem(id uint) (*entity.MenuItem, error) {
	m, err := s.Repo.GetMenuItem(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return m, err
}

func (s *MenuService) ListMenuItems(categoryID *uint, page, limit int) ([]entity.MenuItem, int64, error) {
	return s.Repo.ListMenuItems(categoryID, page, limit)
}

func (s *MenuService) UpdateMenuItem(id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	m, err := s.GetMenuItem(id)
	if err != nil {
		return nil, err
	}
	if _, err := s.GetCategory(in.CategoryID); err != nil {
		return nil, err
	}
	m.Title = in.Title
	m.Price = in.Price
	m.Featured = in.Featured
	m.CategoryID = in.CategoryID
	if err := s.Repo.SaveMenuItem(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) DeleteMenuItem(id uint) error {
	if _, err := s.GetMenuItem(id); err != nil {
		return err
	}
	return s.Repo.DeleteMenuItem(id)
}
