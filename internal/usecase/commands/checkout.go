package commands

import (
	"context"
	"fmt"
	"strconv"

	cartdomain "coasters/internal/domain/cart"
	"coasters/internal/infra/posapi"
	"coasters/internal/pkg/clock"
	"coasters/internal/pkg/config"
	"coasters/internal/pkg/errs"
	"coasters/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/teris-io/shortid"
)

var (
	ErrCartEmpty        = errs.New("cart is empty")
	ErrInvalidProductID = errs.New("cart contains an item without a product id")
	ErrUpstreamFailure  = errs.New("order could not be placed")
)

const (
	orderStatusPending = "pending"
	orderTypeOnline    = "online"
	guestUser          = "guest"
	orderNumberPrefix  = "CST-"
	orderDateLayout    = "2006-01-02"
)

type CheckoutResult struct {
	OrderID     int64
	OrderNumber string
	Amount      float64
	Notice      string
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, sessionID string, userID *uuid.UUID) (*CheckoutResult, error)
}

type checkoutCommandsImpl struct {
	store SessionStore
	pos   queries.POSGateway
	cfg   config.UpstreamConfig
	clock clock.Clock
}

func NewCheckoutCommands(store SessionStore, pos queries.POSGateway, cfg config.UpstreamConfig, clock clock.Clock) CheckoutCommands {
	return &checkoutCommandsImpl{
		store: store,
		pos:   pos,
		cfg:   cfg,
		clock: clock,
	}
}

// Checkout places the order with the POS API: the order header first,
// then its items. Either call failing aborts the checkout with the cart
// left intact; a header created without items is not compensated, the
// outlet reconciles those manually. The cart is cleared only after both
// calls succeed.
func (c *checkoutCommandsImpl) Checkout(ctx context.Context, sessionID string, userID *uuid.UUID) (*CheckoutResult, error) {
	cart := c.store.Cart(sessionID)
	if cart.IsEmpty() {
		return nil, ErrCartEmpty
	}

	items, err := c.buildOrderItems(cart)
	if err != nil {
		return nil, err
	}

	code, err := shortid.Generate()
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate order number")
	}
	orderNumber := orderNumberPrefix + code

	orderUser := guestUser
	if userID != nil {
		orderUser = userID.String()
	}

	created, err := c.pos.CreateOrder(ctx, posapi.CreateOrderRequest{
		User:          orderUser,
		Outlet:        c.cfg.OutletID,
		OrderNumber:   orderNumber,
		Status:        orderStatusPending,
		Date:          c.clock.Now().Format(orderDateLayout),
		Amount:        cart.Total().Amount(),
		Type:          orderTypeOnline,
		PaymentMode:   orderTypeOnline,
		PaymentStatus: orderStatusPending,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrUpstreamFailure)
	}

	for i := range items {
		items[i].Order = created.ID
	}
	if err := c.pos.CreateOrderItems(ctx, items); err != nil {
		return nil, errs.Mark(err, ErrUpstreamFailure)
	}

	total := cart.Total().Float64()
	cart.Clear()
	c.store.SaveCart(sessionID, cart)

	return &CheckoutResult{
		OrderID:     created.ID,
		OrderNumber: orderNumber,
		Amount:      total,
		Notice:      fmt.Sprintf("Order placed! Your order number is %s", orderNumber),
	}, nil
}

func (c *checkoutCommandsImpl) buildOrderItems(cart *cartdomain.Cart) ([]posapi.CreateOrderItem, error) {
	lineItems := cart.Items()
	items := make([]posapi.CreateOrderItem, 0, len(lineItems))
	for _, item := range lineItems {
		productID, err := strconv.ParseInt(item.ID(), 10, 64)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidProductID)
		}
		items = append(items, posapi.CreateOrderItem{
			Product:     productID,
			Quantity:    item.Quantity(),
			Price:       item.Price().Amount(),
			TotalAmount: item.LineTotal().Amount(),
		})
	}
	return items, nil
}
