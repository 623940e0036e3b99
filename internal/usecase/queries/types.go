package queries

import (
	"context"

	"coasters/internal/domain/cart"
	"coasters/internal/domain/coupon"
	"coasters/internal/domain/game"
	"coasters/internal/infra/posapi"

	"github.com/samber/lo"
)

// POSGateway is the slice of the upstream POS client used by the read and
// write sides. Defined here so both can share one mock.
type POSGateway interface {
	GetProducts(ctx context.Context) ([]posapi.Product, error)
	CreateOrder(ctx context.Context, req posapi.CreateOrderRequest) (posapi.CreateOrderResponse, error)
	CreateOrderItems(ctx context.Context, items []posapi.CreateOrderItem) error
	GetOrders(ctx context.Context, userID string) ([]posapi.Order, error)
	GetOrderItems(ctx context.Context, orderID int64) ([]posapi.OrderItem, error)
}

// Read models (DTO for read side)
type MenuItemView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       *string `json:"image,omitempty"`
}

type CustomizationView struct {
	Preparation string `json:"preparation"`
	Sweetness   string `json:"sweetness"`
}

type CartItemView struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Price         float64            `json:"price"`
	Quantity      int                `json:"quantity"`
	Image         string             `json:"image,omitempty"`
	LineTotal     float64            `json:"line_total"`
	Customization *CustomizationView `json:"customization,omitempty"`
}

type RewardCouponView struct {
	Code string `json:"code"`
	Kind string `json:"kind"`
}

type CartView struct {
	Items         []CartItemView     `json:"items"`
	Subtotal      float64            `json:"subtotal"`
	Tax           float64            `json:"tax"`
	Discount      float64            `json:"discount"`
	Total         float64            `json:"total"`
	CouponCode    *string            `json:"coupon_code,omitempty"`
	RewardCoupons []RewardCouponView `json:"reward_coupons"`
}

type GameItemView struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Selected bool    `json:"selected"`
}

type RollView struct {
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name"`
	Picked   int    `json:"picked"`
	Rolled   int    `json:"rolled"`
	Win      bool   `json:"win"`
}

type GameView struct {
	Stage        string         `json:"stage"`
	SlotPrice    float64        `json:"slot_price"`
	Selected     []GameItemView `json:"selected_items"`
	CurrentIndex int            `json:"current_index"`
	CurrentItem  *GameItemView  `json:"current_item,omitempty"`
	Pick         *int           `json:"pick,omitempty"`
	Rolls        []RollView     `json:"rolls"`
	Wins         int            `json:"wins"`
	AmountPaid   float64        `json:"amount_paid"`
}

type OrderItemView struct {
	Product     int64   `json:"product"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	TotalAmount float64 `json:"total_amount"`
}

type OrderView struct {
	ID            int64           `json:"id"`
	OrderNumber   string          `json:"order_number"`
	Status        string          `json:"status"`
	Date          string          `json:"date"`
	Amount        float64         `json:"amount"`
	Type          string          `json:"type"`
	PaymentMode   string          `json:"payment_mode"`
	PaymentStatus string          `json:"payment_status"`
	Items         []OrderItemView `json:"items"`
}

// NewCartView snapshots a cart into its read model.
func NewCartView(c *cart.Cart) *CartView {
	items := lo.Map(c.Items(), func(item cart.LineItem, _ int) CartItemView {
		view := CartItemView{
			ID:        item.ID(),
			Name:      item.Name(),
			Price:     item.Price().Float64(),
			Quantity:  item.Quantity(),
			Image:     item.Image(),
			LineTotal: item.LineTotal().Float64(),
		}
		if custom := item.Customization(); custom != nil {
			view.Customization = &CustomizationView{
				Preparation: string(custom.Preparation()),
				Sweetness:   string(custom.Sweetness()),
			}
		}
		return view
	})

	rewards := lo.Map(c.RewardCoupons(), func(reward coupon.Coupon, _ int) RewardCouponView {
		return RewardCouponView{
			Code: reward.Code().String(),
			Kind: reward.Kind().String(),
		}
	})

	var code *string
	if active := c.CouponCode(); active != nil {
		code = lo.ToPtr(active.String())
	}

	return &CartView{
		Items:         items,
		Subtotal:      c.Subtotal().Float64(),
		Tax:           c.Tax().Float64(),
		Discount:      c.Discount().Float64(),
		Total:         c.Total().Float64(),
		CouponCode:    code,
		RewardCoupons: rewards,
	}
}

// NewGameView snapshots a game session into its read model.
func NewGameView(s *game.Session) *GameView {
	selected := lo.Map(s.SelectedItems(), func(item game.Item, _ int) GameItemView {
		return newGameItemView(item, true)
	})

	rolls := lo.Map(s.Rolls(), func(roll game.RollResult, _ int) RollView {
		return RollView{
			ItemID:   roll.Item.ID,
			ItemName: roll.Item.Name,
			Picked:   roll.Picked.Int(),
			Rolled:   roll.Rolled.Int(),
			Win:      roll.Win,
		}
	})

	view := &GameView{
		Stage:        s.Stage().String(),
		SlotPrice:    game.SlotPriceRupees,
		Selected:     selected,
		CurrentIndex: s.CurrentIndex(),
		Rolls:        rolls,
		Wins:         s.Wins(),
		AmountPaid:   s.AmountPaid().Float64(),
	}

	if item, ok := s.CurrentItem(); ok {
		current := newGameItemView(item, true)
		view.CurrentItem = &current
	}
	if pick := s.Pick(); pick != nil {
		view.Pick = lo.ToPtr(pick.Int())
	}
	return view
}

// NewGameCatalogView lists the fixed game catalog with the session's
// current selection flags.
func NewGameCatalogView(s *game.Session) []GameItemView {
	selected := lo.SliceToMap(s.SelectedItems(), func(item game.Item) (string, struct{}) {
		return item.ID, struct{}{}
	})

	return lo.Map(game.Catalog(), func(item game.Item, _ int) GameItemView {
		_, isSelected := selected[item.ID]
		return newGameItemView(item, isSelected)
	})
}

func newGameItemView(item game.Item, selected bool) GameItemView {
	return GameItemView{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price.Float64(),
		Selected: selected,
	}
}
