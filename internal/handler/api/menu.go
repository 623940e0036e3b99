package api

import (
	"net/http"

	"coasters/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuQueries queries.MenuQueries
}

func NewMenuHandler(menuQueries queries.MenuQueries) *MenuHandler {
	return &MenuHandler{
		menuQueries: menuQueries,
	}
}

// @Summary List menu
// @Description List the outlet's product catalog
// @Tags menu
// @Produce json
// @Success 200 {array} queries.MenuItemView
// @Router /menu [get]
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.menuQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, items)
}
