package controllers

import (
	"errors"
	"strconv"

	"github.com/gihanchamila/Little-Lemon-capston/pkg/resp"
	"github.com/gihanchamila/Little-Lemon-capston/services"
	"github.com/gihanchamila/Little-Lemon-capston/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func currentActor(c *gin.Context) services.Actor {
	return services.Actor{UserID: utils.CurrentUserID(c)}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		resp.NotFound(c, "not found")
		return 0, false
	}
	return uint(id), true
}

func pageLimit(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return page, limit
}

// fail maps the service error taxonomy onto HTTP. Record-not-found and
// out-of-scope collapse to 404 so existence never leaks; unclassified
// errors surface as 500 after the transaction rolled back.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, "forbidden")
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrAlreadyMember),
		errors.Is(err, services.ErrNotMember),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrNotDeliveryCrew),
		errors.Is(err, services.ErrCategoryInUse):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
