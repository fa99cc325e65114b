package controllers

import (
	"strconv"

	"github.com/gihanchamila/Little-Lemon-capston/pkg/resp"
	"github.com/gihanchamila/Little-Lemon-capston/services"

	"github.com/gin-gonic/gin"
)

// MenuController serves the catalog. Reads are public; writes require
// the Manager group.
type MenuController struct {
	Svc   *services.MenuService
	Roles *services.RoleService
}

func NewMenuController(s *services.MenuService, roles *services.RoleService) *MenuController {
	return &MenuController{Svc: s, Roles: roles}
}

func (h *MenuController) requireManager(c *gin.Context) bool {
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

// ---------------- Categories ----------------

// GET /categories
func (h *MenuController) ListCategories(c *gin.Context) {
	page, limit := pageLimit(c)
	items, total, err := h.Svc.ListCategories(page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}

// POST /categories
func (h *MenuController) CreateCategory(c *gin.Context) {
	if !h.requireManager(c) {
		return
	}
	var in services.CategoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.CreateCategory(&in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, cat)
}

// GET /categories/:id
func (h *MenuController) GetCategory(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	cat, err := h.Svc.GetCategory(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cat)
}

// PUT /categories/:id
func (h *MenuController) UpdateCategory(c *gin.Context) {
	if !h.requireManager(c) {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	var in services.CategoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.UpdateCategory(id, &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /categories/:id
func (h *MenuController) DeleteCategory(c *gin.Context) {
	if !h.requireManager(c) {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteCategory(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// ---------------- Menu items ----------------

// GET /menu-items?category=
func (h *MenuController) ListMenuItems(c *gin.Context) {
	page, limit := pageLimit(c)
	var categoryID *uint
	if v := c.Query("category"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			id := uint(n)
			categoryID = &id
		}
	}
	items, total, err := h.Svc.ListMenuItems(categoryID, page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}

// POST /menu-items
func (h *MenuController) CreateMenuItem(c *gin.Context) {
	if !h.requireManager(c) {
		return
	}
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := h.Svc.CreateMenuItem(&in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, m)
}

// GET /menu-items/:id
func (h *MenuController) GetMenuItem(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	m, err := h.Svc.GetMenuItem(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, m)
}

// PUT /menu-items/:id
func (h *MenuController) UpdateMenuItem(c *gin.Context) {
	if !h.requireManager(c) {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := h.Svc.UpdateMenuItem(id, &in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, m)
}

// DELETE /menu-items/:id
func (h *MenuController) DeleteMenuItem(c *gin.Context) {
	if !h.requireManager(c) {
		return
	}
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteMenuItem(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
