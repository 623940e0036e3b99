//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"coasters/internal/infra/posapi"
	"coasters/internal/usecase/queries"
	queriesmock "coasters/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderQueries_ListByUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	pos := queriesmock.NewMockPOSGateway(ctrl)
	q := queries.NewOrderQueries(pos)
	userID := uuid.New()

	orders := []posapi.Order{
		{ID: 42, OrderNumber: "CST-abc123", Status: "pending", Date: "2026-08-31", Amount: decimal.NewFromInt(210), Type: "online", PaymentMode: "online", PaymentStatus: "pending"},
	}
	items := []posapi.OrderItem{
		{ID: 7, Order: 42, Product: 1, Quantity: 2, Price: decimal.NewFromInt(100), TotalAmount: decimal.NewFromInt(200)},
	}
	pos.EXPECT().GetOrders(gomock.Any(), userID.String()).Return(orders, nil).Times(1)
	pos.EXPECT().GetOrderItems(gomock.Any(), int64(42)).Return(items, nil).Times(1)

	views, err := q.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "CST-abc123", views[0].OrderNumber)
	assert.Equal(t, 210.0, views[0].Amount)
	require.Len(t, views[0].Items, 1)
	assert.Equal(t, int64(1), views[0].Items[0].Product)
	assert.Equal(t, 200.0, views[0].Items[0].TotalAmount)
}

func TestOrderQueries_ListByUser_UpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	pos := queriesmock.NewMockPOSGateway(ctrl)
	q := queries.NewOrderQueries(pos)
	userID := uuid.New()

	t.Run("order list fails", func(t *testing.T) {
		pos.EXPECT().GetOrders(gomock.Any(), userID.String()).
			Return(nil, errors.New("pos down")).Times(1)

		_, err := q.ListByUser(context.Background(), userID)
		assert.ErrorIs(t, err, queries.ErrOrderLookupFailed)
	})

	t.Run("item lookup fails", func(t *testing.T) {
		pos.EXPECT().GetOrders(gomock.Any(), userID.String()).
			Return([]posapi.Order{{ID: 42}}, nil).Times(1)
		pos.EXPECT().GetOrderItems(gomock.Any(), int64(42)).
			Return(nil, errors.New("pos down")).Times(1)

		_, err := q.ListByUser(context.Background(), userID)
		assert.ErrorIs(t, err, queries.ErrOrderLookupFailed)
	})
}
