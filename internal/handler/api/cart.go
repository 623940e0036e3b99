package api

import (
	"errors"
	"net/http"

	reqdto "coasters/internal/handler/dto/request"
	resdto "coasters/internal/handler/dto/response"
	"coasters/internal/handler/middleware"
	"coasters/internal/usecase/commands"
	"coasters/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartCommands     commands.CartCommands
	checkoutCommands commands.CheckoutCommands
	cartQueries      queries.CartQueries
}

func NewCartHandler(cartCommands commands.CartCommands, checkoutCommands commands.CheckoutCommands, cartQueries queries.CartQueries) *CartHandler {
	return &CartHandler{
		cartCommands:     cartCommands,
		checkoutCommands: checkoutCommands,
		cartQueries:      cartQueries,
	}
}

// @Summary Get cart
// @Description Get the session's cart with totals
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.cartQueries.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.CartResponse{Cart: view})
}

// @Summary Add item
// @Description Add an item to the cart, merging quantities by item id
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Cart item"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.cartCommands.AddItem(c.Request.Context(), sessionID, req)
	if err != nil {
		h.handleCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartResult(result))
}

// @Summary Update quantity
// @Description Set an item's quantity; zero or below removes the item
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body reqdto.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /cart/items/{id} [patch]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.cartCommands.UpdateQuantity(c.Request.Context(), sessionID, c.Param("id"), *req.Quantity)
	if err != nil {
		h.handleCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartResult(result))
}

// @Summary Remove item
// @Description Remove an item from the cart; absent ids are a no-op
// @Tags cart
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.CartResponse
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	result, err := h.cartCommands.RemoveItem(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		h.handleCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartResult(result))
}

// @Summary Clear cart
// @Description Empty the cart; reward coupons are kept
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	result, err := h.cartCommands.Clear(c.Request.Context(), sessionID)
	if err != nil {
		h.handleCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartResult(result))
}

// @Summary Apply coupon
// @Description Apply a reward or promotional coupon code to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.ApplyCouponRequest true "Coupon code"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/coupon [post]
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.cartCommands.ApplyCoupon(c.Request.Context(), sessionID, req.Code)
	if err != nil {
		h.handleCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartResult(result))
}

// @Summary Remove coupon
// @Description Remove the active coupon and its discount
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart/coupon [delete]
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	result, err := h.cartCommands.RemoveCoupon(c.Request.Context(), sessionID)
	if err != nil {
		h.handleCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartResult(result))
}

// @Summary List reward coupons
// @Description List the session's unredeemed reward coupons
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.RewardCouponsResponse
// @Router /cart/coupons [get]
func (h *CartHandler) ListRewardCoupons(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.cartQueries.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.RewardCouponsResponse{Coupons: view.RewardCoupons})
}

// @Summary Redeem reward coupon
// @Description Apply the oldest pending reward coupon to the cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/coupons/redeem [post]
func (h *CartHandler) RedeemReward(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	result, err := h.cartCommands.RedeemReward(c.Request.Context(), sessionID)
	if err != nil {
		h.handleCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartResult(result))
}

// @Summary Checkout
// @Description Place the order with the outlet POS; the cart is cleared only on success
// @Tags cart
// @Produce json
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /cart/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	result, err := h.checkoutCommands.Checkout(c.Request.Context(), sessionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCartEmpty):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		case errors.Is(err, commands.ErrInvalidProductID):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Cart contains an item that cannot be ordered"})
		case errors.Is(err, commands.ErrUpstreamFailure):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Order could not be placed, please try again"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCheckoutResult(result))
}

func (h *CartHandler) handleCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidCartItem):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item"})
	case errors.Is(err, commands.ErrInvalidCoupon):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon code"})
	case errors.Is(err, commands.ErrNoEligibleItem):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "This coupon can only be applied to coffee items"})
	case errors.Is(err, commands.ErrNoRewardCoupons):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No reward coupons available"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
