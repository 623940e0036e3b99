//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "coasters/internal/handler/dto/request"
	"coasters/internal/infra/memstore"
	"coasters/internal/pkg/clock"
	"coasters/internal/pkg/config"
	"coasters/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionStore() *memstore.Sessions {
	return memstore.NewSessions(config.SessionConfig{TTL: time.Hour})
}

func cappuccinoReq() reqdto.AddCartItemRequest {
	return reqdto.AddCartItemRequest{ID: "1", Name: "Cappuccino", Price: 100, Quantity: 1}
}

func TestCartCommands_AddItem(t *testing.T) {
	ctx := context.Background()
	store := newSessionStore()
	cmds := commands.NewCartCommands(store)

	result, err := cmds.AddItem(ctx, "s1", cappuccinoReq())
	require.NoError(t, err)
	assert.Equal(t, "Added Cappuccino to cart", result.Notice)
	require.Len(t, result.Cart.Items, 1)
	assert.Equal(t, 100.0, result.Cart.Subtotal)
	assert.Equal(t, 5.0, result.Cart.Tax)
	assert.Equal(t, 105.0, result.Cart.Total)

	// same item again merges quantities
	result, err = cmds.AddItem(ctx, "s1", cappuccinoReq())
	require.NoError(t, err)
	assert.Equal(t, "Updated quantity of Cappuccino", result.Notice)
	require.Len(t, result.Cart.Items, 1)
	assert.Equal(t, 2, result.Cart.Items[0].Quantity)
}

func TestCartCommands_AddItem_Invalid(t *testing.T) {
	cmds := commands.NewCartCommands(newSessionStore())

	req := cappuccinoReq()
	req.Price = -1
	_, err := cmds.AddItem(context.Background(), "s1", req)
	assert.ErrorIs(t, err, commands.ErrInvalidCartItem)
}

func TestCartCommands_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	cmds := commands.NewCartCommands(newSessionStore())
	_, err := cmds.AddItem(ctx, "s1", cappuccinoReq())
	require.NoError(t, err)

	result, err := cmds.UpdateQuantity(ctx, "s1", "1", 3)
	require.NoError(t, err)
	assert.Equal(t, "Quantity updated", result.Notice)
	assert.Equal(t, 3, result.Cart.Items[0].Quantity)

	// zero removes the item
	result, err = cmds.UpdateQuantity(ctx, "s1", "1", 0)
	require.NoError(t, err)
	assert.Equal(t, "Item removed from cart", result.Notice)
	assert.Empty(t, result.Cart.Items)

	// absent ids are a silent no-op
	result, err = cmds.UpdateQuantity(ctx, "s1", "missing", 2)
	require.NoError(t, err)
	assert.Empty(t, result.Notice)
}

func TestCartCommands_RemoveItem(t *testing.T) {
	ctx := context.Background()
	cmds := commands.NewCartCommands(newSessionStore())
	_, err := cmds.AddItem(ctx, "s1", cappuccinoReq())
	require.NoError(t, err)

	result, err := cmds.RemoveItem(ctx, "s1", "1")
	require.NoError(t, err)
	assert.Equal(t, "Item removed from cart", result.Notice)
	assert.Empty(t, result.Cart.Items)
}

func TestCartCommands_Clear(t *testing.T) {
	ctx := context.Background()
	cmds := commands.NewCartCommands(newSessionStore())
	_, err := cmds.AddItem(ctx, "s1", cappuccinoReq())
	require.NoError(t, err)

	result, err := cmds.Clear(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Cart cleared", result.Notice)
	assert.Empty(t, result.Cart.Items)
	assert.Equal(t, 0.0, result.Cart.Total)
}

func TestCartCommands_ApplyCoupon(t *testing.T) {
	ctx := context.Background()
	cmds := commands.NewCartCommands(newSessionStore())

	req := cappuccinoReq()
	req.Quantity = 3
	_, err := cmds.AddItem(ctx, "s1", req)
	require.NoError(t, err)

	// 25% of 300 exceeds the 50 rupee cap
	result, err := cmds.ApplyCoupon(ctx, "s1", "COASTERS50")
	require.NoError(t, err)
	assert.Equal(t, "Coupon applied! You saved ₹50", result.Notice)
	assert.Equal(t, 50.0, result.Cart.Discount)
	require.NotNil(t, result.Cart.CouponCode)
	assert.Equal(t, "COASTERS50", *result.Cart.CouponCode)

	result, err = cmds.RemoveCoupon(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Coupon removed", result.Notice)
	assert.Equal(t, 0.0, result.Cart.Discount)
}

func TestCartCommands_ApplyCoupon_Unknown(t *testing.T) {
	ctx := context.Background()
	cmds := commands.NewCartCommands(newSessionStore())
	_, err := cmds.AddItem(ctx, "s1", cappuccinoReq())
	require.NoError(t, err)

	_, err = cmds.ApplyCoupon(ctx, "s1", "WINNERSDICE")
	assert.ErrorIs(t, err, commands.ErrInvalidCoupon)

	_, err = cmds.ApplyCoupon(ctx, "s1", "??")
	assert.ErrorIs(t, err, commands.ErrInvalidCoupon)
}

func TestCartCommands_RedeemReward(t *testing.T) {
	ctx := context.Background()
	store := newSessionStore()
	cartCmds := commands.NewCartCommands(store)
	couponCmds := commands.NewCouponCommands(store, clock.NewMockClock(time.Now()))

	_, err := cartCmds.AddItem(ctx, "s1", cappuccinoReq())
	require.NoError(t, err)

	granted, err := couponCmds.GrantRewards(ctx, reqdto.GrantRewardsRequest{SessionID: "s1", Count: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, granted.Granted)
	assert.Equal(t, "1 Free Coffee Coupon added to your profile!", granted.Notice)
	require.Len(t, granted.Cart.RewardCoupons, 1)
	assert.Contains(t, granted.Cart.RewardCoupons[0].Code, "FREE-COFFEE-")

	// waives the full price of the qualifying coffee item
	result, err := cartCmds.RedeemReward(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Free coffee coupon applied! You saved ₹100", result.Notice)
	assert.Equal(t, 100.0, result.Cart.Discount)
	assert.Empty(t, result.Cart.RewardCoupons)
}

func TestCartCommands_RedeemReward_Errors(t *testing.T) {
	ctx := context.Background()
	store := newSessionStore()
	cartCmds := commands.NewCartCommands(store)
	couponCmds := commands.NewCouponCommands(store, clock.NewMockClock(time.Now()))

	_, err := cartCmds.AddItem(ctx, "s1", cappuccinoReq())
	require.NoError(t, err)

	// nothing granted yet
	_, err = cartCmds.RedeemReward(ctx, "s1")
	assert.ErrorIs(t, err, commands.ErrNoRewardCoupons)

	// a coupon held against a cart with no coffee item
	_, err = couponCmds.GrantRewards(ctx, reqdto.GrantRewardsRequest{SessionID: "s2", Count: 1})
	require.NoError(t, err)
	_, err = cartCmds.AddItem(ctx, "s2", reqdto.AddCartItemRequest{ID: "3", Name: "Croissant", Price: 90, Quantity: 1})
	require.NoError(t, err)
	_, err = cartCmds.RedeemReward(ctx, "s2")
	assert.ErrorIs(t, err, commands.ErrNoEligibleItem)
}
