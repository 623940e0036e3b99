package cart

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyItemID     = errors.New("item id cannot be empty")
	ErrEmptyItemName   = errors.New("item name cannot be empty")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidVariant  = errors.New("invalid customization variant")
)

// Money is an amount in rupees. Fractions are kept exact so percentage
// discounts are not lossy; rounding happens only where the pricing rules
// call for it (tax).
type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativePrice
	}
	return Money{amount: amount}, nil
}

func NewMoneyFromInt(rupees int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(rupees))
}

func zeroMoney() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) MulInt(n int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(n))}
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

func (m Money) String() string {
	return m.amount.String()
}

type Preparation string

const (
	PreparationLight Preparation = "light"
	PreparationDark  Preparation = "dark"
)

type Sweetness string

const (
	SweetnessSugar     Sweetness = "sugar"
	SweetnessSugarLess Sweetness = "sugar_less"
	SweetnessNoSugar   Sweetness = "no_sugar"
)

// Customization is an explicit optional variant on a line item. Absence is
// expressed by a nil pointer on the item, never by zero values.
type Customization struct {
	preparation Preparation
	sweetness   Sweetness
}

func NewCustomization(preparation Preparation, sweetness Sweetness) (Customization, error) {
	switch preparation {
	case PreparationLight, PreparationDark:
	default:
		return Customization{}, ErrInvalidVariant
	}
	switch sweetness {
	case SweetnessSugar, SweetnessSugarLess, SweetnessNoSugar:
	default:
		return Customization{}, ErrInvalidVariant
	}
	return Customization{preparation: preparation, sweetness: sweetness}, nil
}

func (c Customization) Preparation() Preparation { return c.preparation }
func (c Customization) Sweetness() Sweetness     { return c.sweetness }

// LineItem is one product entry in the cart with its quantity.
type LineItem struct {
	id            string
	name          string
	price         Money
	quantity      int
	image         string
	customization *Customization
}

func NewLineItem(id, name string, price Money, quantity int, image string, customization *Customization) (LineItem, error) {
	if id == "" {
		return LineItem{}, ErrEmptyItemID
	}
	if name == "" {
		return LineItem{}, ErrEmptyItemName
	}
	if quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}

	return LineItem{
		id:            id,
		name:          name,
		price:         price,
		quantity:      quantity,
		image:         image,
		customization: customization,
	}, nil
}

func (li LineItem) LineTotal() Money {
	return li.price.MulInt(int64(li.quantity))
}

func (li LineItem) withQuantity(quantity int) LineItem {
	li.quantity = quantity
	return li
}

func (li LineItem) ID() string                    { return li.id }
func (li LineItem) Name() string                  { return li.name }
func (li LineItem) Price() Money                  { return li.price }
func (li LineItem) Quantity() int                 { return li.quantity }
func (li LineItem) Image() string                 { return li.image }
func (li LineItem) Customization() *Customization { return li.customization }
