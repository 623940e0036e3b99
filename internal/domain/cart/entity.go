package cart

import (
	"errors"

	"coasters/internal/domain/coupon"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCoupon   = errors.New("invalid coupon code")
	ErrNoEligibleItem  = errors.New("coupon requires a qualifying coffee item in the cart")
	ErrNoRewardCoupons = errors.New("no reward coupons available")
)

var taxRate = decimal.NewFromFloat(0.05)

// UpdateOutcome describes the effect of a quantity update.
type UpdateOutcome string

const (
	OutcomeUpdated  UpdateOutcome = "updated"
	OutcomeRemoved  UpdateOutcome = "removed"
	OutcomeNotFound UpdateOutcome = "not_found"
)

// AppliedCoupon describes a successful coupon application.
type AppliedCoupon struct {
	Code     coupon.Code
	Kind     coupon.Kind
	Discount Money
	// ItemName is the cart item the discount was matched against; only
	// set for free-item reward coupons.
	ItemName string
}

// Cart is the single source of truth for order contents and pricing.
// At most one coupon is active at a time; the discount amount is derived
// from that coupon when it is applied and held until the coupon is removed
// or the cart is cleared. The reward-coupon wallet survives Clear so that
// dice-game wins outlive a checkout.
type Cart struct {
	items      []LineItem
	discount   Money
	couponCode *coupon.Code
	wallet     []coupon.Coupon
}

func NewCart() *Cart {
	return &Cart{
		discount: zeroMoney(),
	}
}

// AddItem merges by item id: an existing id has its quantity increased by
// the incoming quantity, otherwise the item is appended preserving
// insertion order. Returns true when the item was merged.
func (c *Cart) AddItem(item LineItem) bool {
	for i, existing := range c.items {
		if existing.id == item.id {
			c.items[i] = existing.withQuantity(existing.quantity + item.quantity)
			return true
		}
	}
	c.items = append(c.items, item)
	return false
}

// UpdateQuantity replaces an item's quantity in place. A quantity of zero
// or below removes the item. An unknown id is a deliberate no-op rather
// than an error: the quantity controls in the UI can race with removal.
func (c *Cart) UpdateQuantity(id string, quantity int) UpdateOutcome {
	if quantity <= 0 {
		if c.RemoveItem(id) {
			return OutcomeRemoved
		}
		return OutcomeNotFound
	}

	for i, existing := range c.items {
		if existing.id == id {
			c.items[i] = existing.withQuantity(quantity)
			return OutcomeUpdated
		}
	}
	return OutcomeNotFound
}

// RemoveItem deletes the entry with the given id; no-op if absent.
func (c *Cart) RemoveItem(id string) bool {
	for i, existing := range c.items {
		if existing.id == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the items and resets the coupon state. The reward wallet
// is intentionally left untouched.
func (c *Cart) Clear() {
	c.items = nil
	c.discount = zeroMoney()
	c.couponCode = nil
}

func (c *Cart) Subtotal() Money {
	sum := zeroMoney()
	for _, item := range c.items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

// Tax is 5% GST on the subtotal, rounded half-up to the nearest rupee.
func (c *Cart) Tax() Money {
	return Money{amount: c.Subtotal().amount.Mul(taxRate).Round(0)}
}

// Total is subtotal + tax − discount, floored at zero. The floor is a
// deliberate tightening: a discount larger than the payable amount makes
// the order free, it never produces a credit.
func (c *Cart) Total() Money {
	total := c.Subtotal().amount.Add(c.Tax().amount).Sub(c.discount.amount)
	if total.IsNegative() {
		return zeroMoney()
	}
	return Money{amount: total}
}

// ApplyCoupon resolves a code against the reward wallet first, then the
// fixed promotional catalog. Applying a second coupon overwrites the
// previous discount and code; a previously consumed reward coupon is not
// returned to the wallet.
func (c *Cart) ApplyCoupon(code coupon.Code) (AppliedCoupon, error) {
	for i, reward := range c.wallet {
		if reward.Code() != code || !reward.IsFreeItem() {
			continue
		}

		item, ok := c.firstCoffeeItem()
		if !ok {
			return AppliedCoupon{}, ErrNoEligibleItem
		}

		c.wallet = append(c.wallet[:i], c.wallet[i+1:]...)
		c.discount = item.price
		c.setActiveCoupon(code)
		return AppliedCoupon{
			Code:     code,
			Kind:     coupon.KindFreeItem,
			Discount: item.price,
			ItemName: item.name,
		}, nil
	}

	if promo, ok := coupon.FindPromo(code.String()); ok {
		discount := Money{amount: promo.DiscountFor(c.Subtotal().amount)}
		c.discount = discount
		c.setActiveCoupon(code)
		return AppliedCoupon{
			Code:     code,
			Kind:     coupon.KindPercentDiscount,
			Discount: discount,
		}, nil
	}

	return AppliedCoupon{}, ErrInvalidCoupon
}

// RemoveCoupon resets the discount and active code. A consumed reward
// coupon is not restored to the wallet.
func (c *Cart) RemoveCoupon() {
	c.discount = zeroMoney()
	c.couponCode = nil
}

// AddRewardCoupons credits freshly issued reward coupons to the wallet.
func (c *Cart) AddRewardCoupons(coupons ...coupon.Coupon) {
	c.wallet = append(c.wallet, coupons...)
}

func (c *Cart) HasRewardCoupons() bool {
	for _, reward := range c.wallet {
		if reward.IsFreeItem() {
			return true
		}
	}
	return false
}

// ConsumeOneRewardCoupon applies the oldest pending reward coupon without
// the caller having to know its code.
func (c *Cart) ConsumeOneRewardCoupon() (AppliedCoupon, error) {
	for _, reward := range c.wallet {
		if reward.IsFreeItem() {
			return c.ApplyCoupon(reward.Code())
		}
	}
	return AppliedCoupon{}, ErrNoRewardCoupons
}

func (c *Cart) firstCoffeeItem() (LineItem, bool) {
	for _, item := range c.items {
		if coupon.IsCoffeeItem(item.name) {
			return item, true
		}
	}
	return LineItem{}, false
}

func (c *Cart) setActiveCoupon(code coupon.Code) {
	active := code
	c.couponCode = &active
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) RewardCoupons() []coupon.Coupon {
	wallet := make([]coupon.Coupon, len(c.wallet))
	copy(wallet, c.wallet)
	return wallet
}

func (c *Cart) Discount() Money {
	return c.discount
}

func (c *Cart) CouponCode() *coupon.Code {
	if c.couponCode == nil {
		return nil
	}
	code := *c.couponCode
	return &code
}
