package game

import (
	"errors"

	"coasters/internal/domain/cart"
)

var (
	ErrNoItemsSelected   = errors.New("at least one item must be selected to play")
	ErrNumberNotPicked   = errors.New("a number must be picked before rolling")
	ErrInvalidDiceNumber = errors.New("dice number must be between 1 and 6")
	ErrInvalidStage      = errors.New("operation not allowed in current stage")
)

// Stage is a named point in the game's linear flow. The only backward
// transition is the explicit Back from the payment screen; Reset discards
// the session entirely.
type Stage string

const (
	StageSelectingItems Stage = "selecting_items"
	StagePaying         Stage = "paying"
	StagePickingNumber  Stage = "picking_number"
	StageRolling        Stage = "rolling"
	StageResolved       Stage = "resolved"
	StageAllResolved    Stage = "all_resolved"
)

func (s Stage) String() string {
	return string(s)
}

type DiceNumber int

func NewDiceNumber(n int) (DiceNumber, error) {
	if n < 1 || n > 6 {
		return 0, ErrInvalidDiceNumber
	}
	return DiceNumber(n), nil
}

func (d DiceNumber) Int() int {
	return int(d)
}

// Item is one entry from the fixed game catalog. Each selected item buys
// exactly one slot (one dice roll).
type Item struct {
	ID    string
	Name  string
	Price cart.Money
}

// RollResult is the recorded outcome of one slot.
type RollResult struct {
	Item   Item
	Picked DiceNumber
	Rolled DiceNumber
	Win    bool
}
