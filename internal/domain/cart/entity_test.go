//go:build unit

package cart_test

import (
	"testing"
	"time"

	"coasters/internal/domain/cart"
	"coasters/internal/domain/coupon"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, id, name string, price int64, quantity int) cart.LineItem {
	t.Helper()
	money, err := cart.NewMoneyFromInt(price)
	require.NoError(t, err)
	item, err := cart.NewLineItem(id, name, money, quantity, "", nil)
	require.NoError(t, err)
	return item
}

func mustReward(t *testing.T) coupon.Coupon {
	t.Helper()
	return coupon.NewReward(time.Now())
}

func subtotalOf(c *cart.Cart) int64 {
	return c.Subtotal().Amount().IntPart()
}

func TestCart_AddItem(t *testing.T) {
	t.Run("distinct ids keep insertion order and sum subtotal", func(t *testing.T) {
		c := cart.NewCart()
		c.AddItem(mustItem(t, "1", "Cappuccino", 100, 2))
		c.AddItem(mustItem(t, "2", "Croissant", 80, 1))
		c.AddItem(mustItem(t, "3", "Latte", 120, 3))

		items := c.Items()
		require.Len(t, items, 3)
		assert.Equal(t, "1", items[0].ID())
		assert.Equal(t, "2", items[1].ID())
		assert.Equal(t, "3", items[2].ID())
		assert.Equal(t, int64(100*2+80*1+120*3), subtotalOf(c))
	})

	t.Run("existing id merges quantity instead of duplicating", func(t *testing.T) {
		c := cart.NewCart()
		merged := c.AddItem(mustItem(t, "1", "Cappuccino", 100, 1))
		assert.False(t, merged)

		merged = c.AddItem(mustItem(t, "1", "Cappuccino", 100, 2))
		assert.True(t, merged)

		items := c.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity())
	})
}

func TestCart_UpdateQuantity(t *testing.T) {
	c := cart.NewCart()
	c.AddItem(mustItem(t, "1", "Cappuccino", 100, 2))

	t.Run("replaces quantity in place", func(t *testing.T) {
		outcome := c.UpdateQuantity("1", 5)
		assert.Equal(t, cart.OutcomeUpdated, outcome)
		assert.Equal(t, 5, c.Items()[0].Quantity())
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		outcome := c.UpdateQuantity("missing", 3)
		assert.Equal(t, cart.OutcomeNotFound, outcome)
		require.Len(t, c.Items(), 1)
		assert.Equal(t, 5, c.Items()[0].Quantity())
	})

	t.Run("zero quantity removes the item", func(t *testing.T) {
		outcome := c.UpdateQuantity("1", 0)
		assert.Equal(t, cart.OutcomeRemoved, outcome)
		assert.True(t, c.IsEmpty())
	})
}

func TestCart_RemoveItem(t *testing.T) {
	c := cart.NewCart()
	c.AddItem(mustItem(t, "1", "Cappuccino", 100, 1))
	c.AddItem(mustItem(t, "2", "Croissant", 80, 1))

	assert.True(t, c.RemoveItem("1"))
	assert.False(t, c.RemoveItem("1"))
	require.Len(t, c.Items(), 1)
	assert.Equal(t, "2", c.Items()[0].ID())
}

func TestCart_Clear(t *testing.T) {
	c := cart.NewCart()
	c.AddItem(mustItem(t, "1", "Cappuccino", 100, 1))
	c.AddRewardCoupons(mustReward(t))

	_, err := c.ConsumeOneRewardCoupon()
	require.NoError(t, err)
	c.AddRewardCoupons(mustReward(t))

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.True(t, c.Discount().IsZero())
	assert.Nil(t, c.CouponCode())
	// reward wallet survives a clear
	assert.True(t, c.HasRewardCoupons())
}

func TestCart_Tax(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		quantity int
		wantTax  int64
	}{
		{name: "rounds half up", price: 10, quantity: 1, wantTax: 1},   // 0.5 -> 1
		{name: "rounds down below half", price: 9, quantity: 1, wantTax: 0}, // 0.45 -> 0
		{name: "exact", price: 100, quantity: 3, wantTax: 15},
		{name: "empty cart", price: 0, quantity: 0, wantTax: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cart.NewCart()
			if tt.quantity > 0 {
				c.AddItem(mustItem(t, "1", "Coffee", tt.price, tt.quantity))
			}
			assert.Equal(t, tt.wantTax, c.Tax().Amount().IntPart())
		})
	}
}

func TestCart_Total(t *testing.T) {
	t.Run("subtotal plus tax minus discount", func(t *testing.T) {
		c := cart.NewCart()
		c.AddItem(mustItem(t, "1", "Cappuccino", 300, 1))

		_, err := c.ApplyCoupon("COASTERS50")
		require.NoError(t, err)

		// 300 + 15 - 50
		assert.Equal(t, int64(265), c.Total().Amount().IntPart())
	})

	t.Run("floored at zero when discount exceeds payable amount", func(t *testing.T) {
		c := cart.NewCart()
		c.AddItem(mustItem(t, "1", "Cappuccino", 300, 1))

		_, err := c.ApplyCoupon("COASTERS50")
		require.NoError(t, err)

		// Stale discount: removing the item does not recompute the stored amount.
		c.RemoveItem("1")
		assert.Equal(t, int64(0), c.Total().Amount().IntPart())
	})
}

func TestCart_ApplyCoupon(t *testing.T) {
	t.Run("promotional codes", func(t *testing.T) {
		tests := []struct {
			name         string
			subtotal     int64
			code         string
			wantDiscount string
		}{
			{name: "COASTERS50 capped at 50", subtotal: 300, code: "COASTERS50", wantDiscount: "50"},
			{name: "COASTERS50 below cap", subtotal: 100, code: "COASTERS50", wantDiscount: "25"},
			{name: "FIRST100 capped at 100", subtotal: 400, code: "FIRST100", wantDiscount: "100"},
			{name: "FIRST100 keeps fractions", subtotal: 95, code: "FIRST100", wantDiscount: "28.5"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				c := cart.NewCart()
				c.AddItem(mustItem(t, "1", "Croissant", tt.subtotal, 1))

				applied, err := c.ApplyCoupon(coupon.Code(tt.code))
				require.NoError(t, err)

				want := decimal.RequireFromString(tt.wantDiscount)
				assert.True(t, applied.Discount.Amount().Equal(want),
					"discount = %s, want %s", applied.Discount, want)
				assert.True(t, c.Discount().Amount().Equal(want))
				require.NotNil(t, c.CouponCode())
				assert.Equal(t, tt.code, c.CouponCode().String())
			})
		}
	})

	t.Run("unrecognized code leaves state unchanged", func(t *testing.T) {
		c := cart.NewCart()
		c.AddItem(mustItem(t, "1", "Cappuccino", 100, 1))

		_, err := c.ApplyCoupon("NOPE")
		assert.ErrorIs(t, err, cart.ErrInvalidCoupon)
		assert.True(t, c.Discount().IsZero())
		assert.Nil(t, c.CouponCode())
	})

	t.Run("reward coupon waives the first matching coffee item", func(t *testing.T) {
		c := cart.NewCart()
		c.AddItem(mustItem(t, "1", "Chocolate Cookie", 60, 1))
		c.AddItem(mustItem(t, "2", "Cappuccino", 100, 1))

		reward := mustReward(t)
		c.AddRewardCoupons(reward)

		applied, err := c.ApplyCoupon(reward.Code())
		require.NoError(t, err)
		assert.Equal(t, coupon.KindFreeItem, applied.Kind)
		assert.Equal(t, "Cappuccino", applied.ItemName)
		assert.Equal(t, int64(100), c.Discount().Amount().IntPart())
		// single use: consumed from the wallet
		assert.False(t, c.HasRewardCoupons())
	})

	t.Run("reward coupon without a qualifying item fails cleanly", func(t *testing.T) {
		c := cart.NewCart()
		c.AddItem(mustItem(t, "1", "Chocolate Cookie", 60, 1))

		reward := mustReward(t)
		c.AddRewardCoupons(reward)

		_, err := c.ApplyCoupon(reward.Code())
		assert.ErrorIs(t, err, cart.ErrNoEligibleItem)
		assert.True(t, c.Discount().IsZero())
		assert.Nil(t, c.CouponCode())
		// not consumed on failure
		assert.True(t, c.HasRewardCoupons())
	})

	t.Run("re-applying overwrites without restoring the predecessor", func(t *testing.T) {
		c := cart.NewCart()
		c.AddItem(mustItem(t, "1", "Latte", 200, 1))

		reward := mustReward(t)
		c.AddRewardCoupons(reward)

		_, err := c.ApplyCoupon(reward.Code())
		require.NoError(t, err)

		_, err = c.ApplyCoupon("COASTERS50")
		require.NoError(t, err)

		require.NotNil(t, c.CouponCode())
		assert.Equal(t, "COASTERS50", c.CouponCode().String())
		assert.Equal(t, int64(50), c.Discount().Amount().IntPart())
		// the consumed reward coupon is gone for good
		assert.False(t, c.HasRewardCoupons())
	})
}

func TestCart_RemoveCoupon(t *testing.T) {
	c := cart.NewCart()
	c.AddItem(mustItem(t, "1", "Espresso", 150, 1))

	_, err := c.ApplyCoupon("FIRST100")
	require.NoError(t, err)

	c.RemoveCoupon()

	assert.True(t, c.Discount().IsZero())
	assert.Nil(t, c.CouponCode())
}

func TestCart_RewardWallet(t *testing.T) {
	t.Run("consume one applies the oldest pending reward", func(t *testing.T) {
		c := cart.NewCart()
		c.AddItem(mustItem(t, "1", "Filter Coffee", 90, 1))
		c.AddRewardCoupons(coupon.NewRewardBatch(2, time.Now())...)

		applied, err := c.ConsumeOneRewardCoupon()
		require.NoError(t, err)
		assert.Equal(t, int64(90), applied.Discount.Amount().IntPart())
		assert.True(t, c.HasRewardCoupons(), "second reward should remain")
	})

	t.Run("empty wallet", func(t *testing.T) {
		c := cart.NewCart()
		c.AddItem(mustItem(t, "1", "Filter Coffee", 90, 1))

		_, err := c.ConsumeOneRewardCoupon()
		assert.ErrorIs(t, err, cart.ErrNoRewardCoupons)
	})
}
