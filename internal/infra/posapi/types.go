package posapi

import "github.com/shopspring/decimal"

// Product is a catalog entry as served by GET /api/v1/get_product/.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description *string         `json:"description,omitempty"`
	Image       *string         `json:"image,omitempty"`
}

// CreateOrderRequest is the body for POST /api/v1/create_order/.
type CreateOrderRequest struct {
	User          string          `json:"user"`
	Outlet        string          `json:"outlet"`
	OrderNumber   string          `json:"order_number"`
	Status        string          `json:"status"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	PaymentMode   string          `json:"payment_mode"`
	PaymentStatus string          `json:"payment_status"`
}

type CreateOrderResponse struct {
	ID int64 `json:"id"`
}

// CreateOrderItem is one element of the POST /api/v1/create_order_item/ array.
type CreateOrderItem struct {
	Order       int64           `json:"order"`
	Product     int64           `json:"product"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// Order is one entry from GET /api/v1/get_order/?user=<id>.
type Order struct {
	ID            int64           `json:"id"`
	OrderNumber   string          `json:"order_number"`
	Status        string          `json:"status"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	PaymentMode   string          `json:"payment_mode"`
	PaymentStatus string          `json:"payment_status"`
}

// OrderItem is one entry from GET /api/v1/get_order_item/?order=<id>.
type OrderItem struct {
	ID          int64           `json:"id"`
	Order       int64           `json:"order"`
	Product     int64           `json:"product"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
