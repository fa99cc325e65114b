package controllers

import (
	"github.com/gihanchamila/Little-Lemon-capston/pkg/resp"
	"github.com/gihanchamila/Little-Lemon-capston/services"
	"github.com/gihanchamila/Little-Lemon-capston/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /orders drains the cart into a new order.
func (h *OrderController) Create(c *gin.Context) {
	order, err := h.Svc.PlaceOrder(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"message": "order placed", "order_id": order.ID, "total": order.Total})
}

// GET /orders lists orders within the caller's visibility scope.
func (h *OrderController) List(c *gin.Context) {
	page, limit := pageLimit(c)
	orders, total, err := h.Svc.ListOrders(currentActor(c), page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders, "total": total, "page": page, "limit": limit})
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	detail, err := h.Svc.GetOrder(currentActor(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, detail)
}

// PUT /orders/:id handles delivery-crew assignment and status
// transitions.
func (h *OrderController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var patch services.OrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.UpdateOrder(currentActor(c), id, patch)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id is manager only.
func (h *OrderController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteOrder(currentActor(c), id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
