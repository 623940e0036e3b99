package response

import (
	"coasters/internal/usecase/commands"
	"coasters/internal/usecase/queries"
)

type CartResponse struct {
	Cart   *queries.CartView `json:"cart"`
	Notice string            `json:"notice,omitempty"`
}

func FromCartResult(result *commands.CartResult) *CartResponse {
	return &CartResponse{
		Cart:   result.Cart,
		Notice: result.Notice,
	}
}

type RewardCouponsResponse struct {
	Coupons []queries.RewardCouponView `json:"coupons"`
}

type CheckoutResponse struct {
	OrderID     int64   `json:"orderId"`
	OrderNumber string  `json:"orderNumber"`
	Amount      float64 `json:"amount"`
	Notice      string  `json:"notice"`
}

func FromCheckoutResult(result *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		OrderID:     result.OrderID,
		OrderNumber: result.OrderNumber,
		Amount:      result.Amount,
		Notice:      result.Notice,
	}
}
