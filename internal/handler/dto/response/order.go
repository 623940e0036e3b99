package response

import (
	"coasters/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type OrderItemResponse struct {
	Product     int64   `json:"product"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	TotalAmount float64 `json:"totalAmount"`
}

type OrderResponse struct {
	ID            int64               `json:"id"`
	OrderNumber   string              `json:"orderNumber"`
	Status        string              `json:"status"`
	Date          string              `json:"date"`
	Amount        float64             `json:"amount"`
	Type          string              `json:"type"`
	PaymentMode   string              `json:"paymentMode"`
	PaymentStatus string              `json:"paymentStatus"`
	Items         []OrderItemResponse `json:"items"`
}

func FromOrderViews(views []queries.OrderView) ([]OrderResponse, error) {
	responses := make([]OrderResponse, 0, len(views))
	if err := copier.Copy(&responses, views); err != nil {
		return nil, err
	}
	return responses, nil
}
