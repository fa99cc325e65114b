package repository

import (
	"github.com/gihanchamila/Little-Lemon-capston/entity"

	"gorm.io/gorm"
)

// RoleRepository backs the role gate with the user_roles join table.
type RoleRepository struct{ DB *gorm.DB }

func NewRoleRepository(db *gorm.DB) *RoleRepository { return &RoleRepository{DB: db} }

func (r *RoleRepository) RoleByName(name string) (*entity.Role, error) {
	var role entity.Role
	if err := r.DB.Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *RoleRepository) HasRole(userID uint, name string) (bool, error) {
	var cnt int64
	err := r.DB.Table("user_roles").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("user_roles.user_id = ? AND roles.name = ?", userID, name).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *RoleRepository) AddUserToRole(userID uint, name string) error {
	role, err := r.RoleByName(name)
	if err != nil {
		return err
	}
	return r.DB.Model(&entity.User{Model: gorm.Model{ID: userID}}).
		Association("Roles").Append(role)
}

func (r *RoleRepository) RemoveUserFromRole(userID uint, name string) error {
	role, err := r.RoleByName(name)
	if err != nil {
		return err
	}
	return r.DB.Model(&entity.User{Model: gorm.Model{ID: userID}}).
		Association("Roles").Delete(role)
}

func (r *RoleRepository) ListMembers(name string) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.
		Joins("JOIN user_roles ON user_roles.user_id = users.id").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("roles.name = ?", name).
		Find(&users).Error
	return users, err
}

func (r *RoleRepository) UserExists(userID uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.User{}).Where("id = ?", userID).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *RoleRepository) IsSuperuser(userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.User{}).
		Where("id = ? AND is_superuser = ?", userID, true).
		Count(&cnt).Error
	return cnt > 0, err
}
