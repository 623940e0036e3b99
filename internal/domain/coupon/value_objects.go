package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode = errors.New("invalid coupon code format")
	ErrInvalidKind       = errors.New("invalid coupon kind")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9-]{3,64}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Kind string

const (
	// KindPercentDiscount is a reusable promotional percentage off, capped at a fixed amount.
	KindPercentDiscount Kind = "percent_discount"
	// KindFreeItem is a single-use reward that waives the price of one qualifying item.
	KindFreeItem Kind = "free_item"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindPercentDiscount, KindFreeItem:
		return true
	default:
		return false
	}
}

// coffeeKeywords is the allowlist a FreeItem coupon can be redeemed against.
var coffeeKeywords = []string{"coffee", "cappuccino", "latte", "espresso"}

// IsCoffeeItem reports whether an item name qualifies for a FreeItem coupon.
// Matching is a case-insensitive substring check.
func IsCoffeeItem(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range coffeeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
