package api

import (
	"net/http"

	reqdto "coasters/internal/handler/dto/request"
	resdto "coasters/internal/handler/dto/response"
	"coasters/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	couponCommands commands.CouponCommands
}

func NewCouponHandler(couponCommands commands.CouponCommands) *CouponHandler {
	return &CouponHandler{
		couponCommands: couponCommands,
	}
}

// @Summary Grant reward coupons
// @Description Credit free-coffee reward coupons to a customer session (staff only)
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.GrantRewardsRequest true "Grant request"
// @Success 200 {object} resdto.GrantRewardsResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /coupons/grant [post]
func (h *CouponHandler) GrantRewards(c *gin.Context) {
	var req reqdto.GrantRewardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.couponCommands.GrantRewards(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromGrantRewardsResult(result))
}
