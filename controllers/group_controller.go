package controllers

import (
	"github.com/gihanchamila/Little-Lemon-capston/pkg/resp"
	"github.com/gihanchamila/Little-Lemon-capston/services"

	"github.com/gin-gonic/gin"
)

// GroupController manages staff group membership. Every endpoint is
// manager-gated; the role name is fixed per route group at
// registration time.
type GroupController struct {
	Roles *services.RoleService
}

func NewGroupController(roles *services.RoleService) *GroupController {
	return &GroupController{Roles: roles}
}

func (h *GroupController) requireManager(c *gin.Context) bool {
	manager, err := h.Roles.IsManager(currentActor(c))
	if err != nil {
		resp.ServerError(c, err)
		return false
	}
	if !manager {
		resp.Forbidden(c, "forbidden")
		return false
	}
	return true
}

// List returns a GET handler for the group's members.
func (h *GroupController) List(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.requireManager(c) {
			return
		}
		users, err := h.Roles.ListMembers(role)
		if err != nil {
			fail(c, err)
			return
		}
		resp.OK(c, gin.H{"items": users})
	}
}

// Add returns a POST handler enrolling a user into the group. Adding a
// user already in the group is a 400, not a silent no-op.
func (h *GroupController) Add(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.requireManager(c) {
			return
		}
		var req struct {
			UserID uint `json:"user_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		if err := h.Roles.AddUserToRole(req.UserID, role); err != nil {
			fail(c, err)
			return
		}
		resp.Created(c, gin.H{"userId": req.UserID, "group": role})
	}
}

// Remove returns a DELETE handler dropping a user from the group.
// Removing a user who is not a member is a 400.
func (h *GroupController) Remove(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.requireManager(c) {
			return
		}
		id, ok := paramID(c)
		if !ok {
			return
		}
		if err := h.Roles.RemoveUserFromRole(id, role); err != nil {
			fail(c, err)
			return
		}
		resp.OK(c, gin.H{"userId": id, "group": role})
	}
}
