package services

import (
	"errors"

	"github.com/gihanchamila/Little-Lemon-capston/entity"

	"gorm.io/gorm"
)

// RoleStore is the membership store behind the role gate: user-id to
// set of role names, plus the mutations the group endpoints need.
type RoleStore interface {
	HasRole(userID uint, role string) (bool, error)
	AddUserToRole(userID uint, role string) error
	RemoveUserFromRole(userID uint, role string) error
	ListMembers(role string) ([]entity.User, error)
	UserExists(userID uint) (bool, error)
	IsSuperuser(userID uint) (bool, error)
}

// RoleService answers "does user U hold role R" and guards group
// membership changes so callers get explicit errors instead of silent
// no-ops.
type RoleService struct {
	Store RoleStore
}

func NewRoleService(store RoleStore) *RoleService { return &RoleService{Store: store} }

func (s *RoleService) HasRole(userID uint, role string) (bool, error) {
	return s.Store.HasRole(userID, role)
}

// IsManager treats superusers as managers everywhere a manager check
// appears. Both checks hit the store rather than token claims, so
// revoking superuser or the group takes effect on the next request.
func (s *RoleService) IsManager(actor Actor) (bool, error) {
	super, err := s.Store.IsSuperuser(actor.UserID)
	if err != nil {
		return false, err
	}
	if super {
		return true, nil
	}
	return s.Store.HasRole(actor.UserID, entity.RoleManager)
}

func (s *RoleService) IsDeliveryCrew(userID uint) (bool, error) {
	return s.Store.HasRole(userID, entity.RoleDeliveryCrew)
}

func (s *RoleService) AddUserToRole(userID uint, role string) error {
	ok, err := s.Store.UserExists(userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	member, err := s.Store.HasRole(userID, role)
	if err != nil {
		return err
	}
	if member {
		return ErrAlreadyMember
	}
	return s.Store.AddUserToRole(userID, role)
}

func (s *RoleService) RemoveUserFromRole(userID uint, role string) error {
	ok, err := s.Store.UserExists(userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	member, err := s.Store.HasRole(userID, role)
	if err != nil {
		return err
	}
	if !member {
		return ErrNotMember
	}
	return s.Store.RemoveUserFromRole(userID, role)
}

func (s *RoleService) ListMembers(role string) ([]entity.User, error) {
	users, err := s.Store.ListMembers(role)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return users, err
}
