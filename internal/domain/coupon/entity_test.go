//go:build unit

package coupon_test

import (
	"strings"
	"testing"
	"time"

	"coasters/internal/domain/coupon"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "uppercases and trims", input: "  coasters50 ", want: "COASTERS50"},
		{name: "reward style code", input: "FREE-COFFEE-01HV9ABCDEF", want: "FREE-COFFEE-01HV9ABCDEF"},
		{name: "too short", input: "AB", wantErr: coupon.ErrInvalidCouponCode},
		{name: "invalid characters", input: "HELLO WORLD", wantErr: coupon.ErrInvalidCouponCode},
		{name: "empty", input: "", wantErr: coupon.ErrInvalidCouponCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := coupon.NewCode(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, code.String())
		})
	}
}

func TestIsCoffeeItem(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "Cappuccino", want: true},
		{name: "Iced LATTE", want: true},
		{name: "Double Espresso Shot", want: true},
		{name: "Filter coffee", want: true},
		{name: "Chocolate Cookie", want: false},
		{name: "Croissant", want: false},
		{name: "", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, coupon.IsCoffeeItem(tt.name), tt.name)
	}
}

func TestNewRewardBatch(t *testing.T) {
	now := time.Now()

	batch := coupon.NewRewardBatch(5, now)
	require.Len(t, batch, 5)

	seen := map[coupon.Code]bool{}
	for _, c := range batch {
		assert.True(t, c.IsFreeItem())
		assert.True(t, strings.HasPrefix(c.Code().String(), "FREE-COFFEE-"))
		assert.False(t, seen[c.Code()], "codes must be unique")
		seen[c.Code()] = true
	}

	assert.Empty(t, coupon.NewRewardBatch(0, now))
	assert.Empty(t, coupon.NewRewardBatch(-1, now))
}

func TestPromo_DiscountFor(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		subtotal int64
		want     string
	}{
		{name: "COASTERS50 capped", code: "COASTERS50", subtotal: 300, want: "50"},
		{name: "COASTERS50 quarter", code: "COASTERS50", subtotal: 100, want: "25"},
		{name: "FIRST100 capped", code: "FIRST100", subtotal: 400, want: "100"},
		{name: "FIRST100 thirty percent", code: "FIRST100", subtotal: 200, want: "60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promo, ok := coupon.FindPromo(tt.code)
			require.True(t, ok)

			got := promo.DiscountFor(decimal.NewFromInt(tt.subtotal))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestFindPromo_Unknown(t *testing.T) {
	_, ok := coupon.FindPromo("WINNERSDICE")
	assert.False(t, ok)
}
