package commands

import (
	"context"
	"errors"
	"fmt"

	cartdomain "coasters/internal/domain/cart"
	"coasters/internal/domain/coupon"
	reqdto "coasters/internal/handler/dto/request"
	"coasters/internal/pkg/errs"
	"coasters/internal/usecase/queries"
)

var (
	ErrInvalidCartItem = errs.New("invalid cart item")
	ErrInvalidCoupon   = errs.New("invalid coupon code")
	ErrNoEligibleItem  = errs.New("coupon requires a qualifying coffee item")
	ErrNoRewardCoupons = errs.New("no reward coupons to redeem")
)

// CartResult pairs the updated cart snapshot with a user-facing notice,
// mirroring the toast the storefront shows after each mutation.
type CartResult struct {
	Cart   *queries.CartView
	Notice string
}

type CartCommands interface {
	AddItem(ctx context.Context, sessionID string, req reqdto.AddCartItemRequest) (*CartResult, error)
	UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*CartResult, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (*CartResult, error)
	Clear(ctx context.Context, sessionID string) (*CartResult, error)
	ApplyCoupon(ctx context.Context, sessionID, code string) (*CartResult, error)
	RemoveCoupon(ctx context.Context, sessionID string) (*CartResult, error)
	RedeemReward(ctx context.Context, sessionID string) (*CartResult, error)
}

type cartCommandsImpl struct {
	store SessionStore
}

func NewCartCommands(store SessionStore) CartCommands {
	return &cartCommandsImpl{store: store}
}

func (c *cartCommandsImpl) AddItem(_ context.Context, sessionID string, req reqdto.AddCartItemRequest) (*CartResult, error) {
	item, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCartItem)
	}

	cart := c.store.Cart(sessionID)
	merged := cart.AddItem(item)
	c.store.SaveCart(sessionID, cart)

	notice := fmt.Sprintf("Added %s to cart", item.Name())
	if merged {
		notice = fmt.Sprintf("Updated quantity of %s", item.Name())
	}
	return c.result(cart, notice), nil
}

func (c *cartCommandsImpl) UpdateQuantity(_ context.Context, sessionID, itemID string, quantity int) (*CartResult, error) {
	cart := c.store.Cart(sessionID)
	outcome := cart.UpdateQuantity(itemID, quantity)
	c.store.SaveCart(sessionID, cart)

	var notice string
	switch outcome {
	case cartdomain.OutcomeRemoved:
		notice = "Item removed from cart"
	case cartdomain.OutcomeUpdated:
		notice = "Quantity updated"
	}
	return c.result(cart, notice), nil
}

func (c *cartCommandsImpl) RemoveItem(_ context.Context, sessionID, itemID string) (*CartResult, error) {
	cart := c.store.Cart(sessionID)
	removed := cart.RemoveItem(itemID)
	c.store.SaveCart(sessionID, cart)

	var notice string
	if removed {
		notice = "Item removed from cart"
	}
	return c.result(cart, notice), nil
}

func (c *cartCommandsImpl) Clear(_ context.Context, sessionID string) (*CartResult, error) {
	cart := c.store.Cart(sessionID)
	cart.Clear()
	c.store.SaveCart(sessionID, cart)
	return c.result(cart, "Cart cleared"), nil
}

func (c *cartCommandsImpl) ApplyCoupon(_ context.Context, sessionID, rawCode string) (*CartResult, error) {
	code, err := coupon.NewCode(rawCode)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCoupon)
	}

	cart := c.store.Cart(sessionID)
	applied, err := cart.ApplyCoupon(code)
	if err != nil {
		switch {
		case errors.Is(err, cartdomain.ErrNoEligibleItem):
			return nil, errs.Mark(err, ErrNoEligibleItem)
		default:
			return nil, errs.Mark(err, ErrInvalidCoupon)
		}
	}
	c.store.SaveCart(sessionID, cart)

	notice := fmt.Sprintf("Coupon applied! You saved ₹%s", applied.Discount)
	if applied.Kind == coupon.KindFreeItem {
		notice = fmt.Sprintf("Free coffee coupon applied! You saved ₹%s", applied.Discount)
	}
	return c.result(cart, notice), nil
}

func (c *cartCommandsImpl) RemoveCoupon(_ context.Context, sessionID string) (*CartResult, error) {
	cart := c.store.Cart(sessionID)
	cart.RemoveCoupon()
	c.store.SaveCart(sessionID, cart)
	return c.result(cart, "Coupon removed"), nil
}

// RedeemReward applies the oldest pending reward coupon without the
// caller naming its code.
func (c *cartCommandsImpl) RedeemReward(_ context.Context, sessionID string) (*CartResult, error) {
	cart := c.store.Cart(sessionID)
	applied, err := cart.ConsumeOneRewardCoupon()
	if err != nil {
		switch {
		case errors.Is(err, cartdomain.ErrNoRewardCoupons):
			return nil, errs.Mark(err, ErrNoRewardCoupons)
		case errors.Is(err, cartdomain.ErrNoEligibleItem):
			return nil, errs.Mark(err, ErrNoEligibleItem)
		default:
			return nil, errs.Mark(err, ErrInvalidCoupon)
		}
	}
	c.store.SaveCart(sessionID, cart)

	notice := fmt.Sprintf("Free coffee coupon applied! You saved ₹%s", applied.Discount)
	return c.result(cart, notice), nil
}

func (c *cartCommandsImpl) result(cart *cartdomain.Cart, notice string) *CartResult {
	return &CartResult{
		Cart:   queries.NewCartView(cart),
		Notice: notice,
	}
}
