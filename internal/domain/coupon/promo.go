package coupon

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Promo is a fixed promotional code from the outlet catalog: a percentage
// off the subtotal, capped at a maximum discount amount.
type Promo struct {
	Code        Code
	PercentOff  decimal.Decimal
	MaxDiscount decimal.Decimal
}

// DiscountFor returns min(MaxDiscount, subtotal × PercentOff).
func (p Promo) DiscountFor(subtotal decimal.Decimal) decimal.Decimal {
	discount := subtotal.Mul(p.PercentOff).Div(decimal.NewFromInt(100))
	if discount.GreaterThan(p.MaxDiscount) {
		return p.MaxDiscount
	}
	return discount
}

var promoCatalog = []Promo{
	{
		Code:        "COASTERS50",
		PercentOff:  decimal.NewFromInt(25),
		MaxDiscount: decimal.NewFromInt(50),
	},
	{
		Code:        "FIRST100",
		PercentOff:  decimal.NewFromInt(30),
		MaxDiscount: decimal.NewFromInt(100),
	},
}

// FindPromo looks a code up in the fixed promotional catalog.
func FindPromo(code string) (Promo, bool) {
	normalized := strings.TrimSpace(strings.ToUpper(code))
	for _, p := range promoCatalog {
		if p.Code.String() == normalized {
			return p, true
		}
	}
	return Promo{}, false
}

// Promos returns the catalog in declaration order.
func Promos() []Promo {
	out := make([]Promo, len(promoCatalog))
	copy(out, promoCatalog)
	return out
}
