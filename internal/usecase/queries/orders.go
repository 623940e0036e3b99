package queries

import (
	"context"

	"coasters/internal/infra/posapi"
	"coasters/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var ErrOrderLookupFailed = errs.New("order lookup failed")

type OrderQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]OrderView, error)
}

type orderQueriesImpl struct {
	pos POSGateway
}

func NewOrderQueries(pos POSGateway) OrderQueries {
	return &orderQueriesImpl{pos: pos}
}

// ListByUser reads a user's order history from the POS API, one item
// lookup per order. Any upstream failure surfaces as-is; there is no
// partial result.
func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]OrderView, error) {
	orders, err := q.pos.GetOrders(ctx, userID.String())
	if err != nil {
		return nil, errs.Mark(err, ErrOrderLookupFailed)
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		items, err := q.pos.GetOrderItems(ctx, order.ID)
		if err != nil {
			return nil, errs.Mark(err, ErrOrderLookupFailed)
		}

		views = append(views, OrderView{
			ID:            order.ID,
			OrderNumber:   order.OrderNumber,
			Status:        order.Status,
			Date:          order.Date,
			Amount:        order.Amount.InexactFloat64(),
			Type:          order.Type,
			PaymentMode:   order.PaymentMode,
			PaymentStatus: order.PaymentStatus,
			Items: lo.Map(items, func(item posapi.OrderItem, _ int) OrderItemView {
				return OrderItemView{
					Product:     item.Product,
					Quantity:    item.Quantity,
					Price:       item.Price.InexactFloat64(),
					TotalAmount: item.TotalAmount.InexactFloat64(),
				}
			}),
		})
	}

	return views, nil
}
