package commands

import (
	"context"
	"fmt"

	"coasters/internal/domain/coupon"
	reqdto "coasters/internal/handler/dto/request"
	"coasters/internal/pkg/clock"
	"coasters/internal/usecase/queries"
)

type GrantRewardsResult struct {
	Granted int
	Cart    *queries.CartView
	Notice  string
}

// CouponCommands covers the staff-side coupon operations. Role checks
// happen in middleware, not here.
type CouponCommands interface {
	GrantRewards(ctx context.Context, req reqdto.GrantRewardsRequest) (*GrantRewardsResult, error)
}

type couponCommandsImpl struct {
	store SessionStore
	clock clock.Clock
}

func NewCouponCommands(store SessionStore, clock clock.Clock) CouponCommands {
	return &couponCommandsImpl{store: store, clock: clock}
}

// GrantRewards credits reward coupons to a customer session's wallet,
// the counter-side equivalent of winning them at the dice table.
func (c *couponCommandsImpl) GrantRewards(_ context.Context, req reqdto.GrantRewardsRequest) (*GrantRewardsResult, error) {
	cart := c.store.Cart(req.SessionID)
	batch := coupon.NewRewardBatch(req.Count, c.clock.Now())
	cart.AddRewardCoupons(batch...)
	c.store.SaveCart(req.SessionID, cart)

	plural := "Coupon"
	if len(batch) > 1 {
		plural = "Coupons"
	}
	return &GrantRewardsResult{
		Granted: len(batch),
		Cart:    queries.NewCartView(cart),
		Notice:  fmt.Sprintf("%d Free Coffee %s added to your profile!", len(batch), plural),
	}, nil
}
