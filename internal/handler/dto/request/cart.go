package request

import (
	"coasters/internal/domain/cart"

	"github.com/shopspring/decimal"
)

type CustomizationRequest struct {
	Preparation string `json:"preparation" binding:"required"`
	Sweetness   string `json:"sweetness" binding:"required"`
}

type AddCartItemRequest struct {
	ID            string                `json:"id" binding:"required"`
	Name          string                `json:"name" binding:"required"`
	Price         float64               `json:"price" binding:"gte=0"`
	Quantity      int                   `json:"quantity" binding:"required,gt=0"`
	Image         string                `json:"image,omitempty"`
	Customization *CustomizationRequest `json:"customization,omitempty"`
}

func (r AddCartItemRequest) ToDomain() (cart.LineItem, error) {
	price, err := cart.NewMoney(decimal.NewFromFloat(r.Price))
	if err != nil {
		return cart.LineItem{}, err
	}

	var customization *cart.Customization
	if r.Customization != nil {
		c, err := cart.NewCustomization(
			cart.Preparation(r.Customization.Preparation),
			cart.Sweetness(r.Customization.Sweetness),
		)
		if err != nil {
			return cart.LineItem{}, err
		}
		customization = &c
	}

	return cart.NewLineItem(r.ID, r.Name, price, r.Quantity, r.Image, customization)
}

// Quantity is a pointer so that an explicit zero (remove the item) can be
// told apart from a missing field.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}
