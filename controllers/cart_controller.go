package controllers

import (
	"errors"
	"io"

	"github.com/gihanchamila/Little-Lemon-capston/pkg/resp"
	"github.com/gihanchamila/Little-Lemon-capston/services"
	"github.com/gihanchamila/Little-Lemon-capston/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

type cartLineReq struct {
	MenuItemID uint `json:"menuitem_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

// GET /cart/menu-items
func (h *CartController) List(c *gin.Context) {
	lines, subtotal, err := h.Svc.ListLines(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": lines, "subtotal": subtotal})
}

// POST /cart/menu-items merge-adds; duplicate adds fold into the
// existing line.
func (h *CartController) Add(c *gin.Context) {
	var req cartLineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	line, err := h.Svc.AddLine(utils.CurrentUserID(c), req.MenuItemID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, line)
}

// PUT /cart/menu-items sets the quantity to an absolute value.
func (h *CartController) Set(c *gin.Context) {
	var req cartLineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	line, err := h.Svc.SetLineQuantity(utils.CurrentUserID(c), req.MenuItemID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, line)
}

// DELETE /cart/menu-items removes one line when menuitem_id is given,
// otherwise clears the whole cart (always succeeds, even when empty).
func (h *CartController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req struct {
		MenuItemID *uint `json:"menuitem_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.MenuItemID == nil {
		if err := h.Svc.Clear(uid); err != nil {
			fail(c, err)
			return
		}
		resp.OK(c, gin.H{"cleared": true})
		return
	}

	if err := h.Svc.RemoveLine(uid, *req.MenuItemID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": *req.MenuItemID})
}
