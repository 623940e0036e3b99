package coupon

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

const rewardCodePrefix = "FREE-COFFEE-"

// Coupon is immutable once issued. Reward coupons (KindFreeItem) are
// single-use and are consumed on successful application; promotional
// codes are reusable.
type Coupon struct {
	code     Code
	kind     Kind
	value    decimal.Decimal
	issuedAt time.Time
}

func New(code Code, kind Kind, value decimal.Decimal, issuedAt time.Time) (Coupon, error) {
	if !kind.IsValid() {
		return Coupon{}, ErrInvalidKind
	}
	return Coupon{
		code:     code,
		kind:     kind,
		value:    value,
		issuedAt: issuedAt,
	}, nil
}

// NewReward issues a single-use free-item coupon with a fresh unique code.
func NewReward(now time.Time) Coupon {
	id := ulid.MustNew(ulid.Timestamp(now), rand.Reader)
	return Coupon{
		code:     Code(rewardCodePrefix + id.String()),
		kind:     KindFreeItem,
		value:    decimal.NewFromInt(1),
		issuedAt: now,
	}
}

// NewRewardBatch issues count reward coupons. Count values below one
// produce an empty batch.
func NewRewardBatch(count int, now time.Time) []Coupon {
	if count <= 0 {
		return nil
	}
	coupons := make([]Coupon, 0, count)
	for i := 0; i < count; i++ {
		coupons = append(coupons, NewReward(now))
	}
	return coupons
}

func (c Coupon) IsFreeItem() bool {
	return c.kind == KindFreeItem
}

func (c Coupon) Code() Code             { return c.code }
func (c Coupon) Kind() Kind             { return c.kind }
func (c Coupon) Value() decimal.Decimal { return c.value }
func (c Coupon) IssuedAt() time.Time    { return c.issuedAt }
