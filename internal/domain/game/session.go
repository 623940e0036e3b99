package game

import (
	"coasters/internal/domain/cart"
)

// Session runs one play-through of the dice game:
//
//	SelectingItems → Paying → (per slot: PickingNumber → Rolling → Resolved) → AllResolved
//
// A session is created fresh on game entry and discarded on reset; nothing
// persists. The rolled number always comes from outside: a physical die is
// rolled at the counter and its result is recorded here, never generated.
type Session struct {
	stage      Stage
	selected   []Item
	current    int
	pick       *DiceNumber
	rolls      []RollResult
	amountPaid cart.Money
}

func NewSession() *Session {
	return &Session{
		stage: StageSelectingItems,
	}
}

// ToggleItem flips an item's membership in the selection: selecting an
// already-selected item deselects it.
func (s *Session) ToggleItem(item Item) (bool, error) {
	if s.stage != StageSelectingItems {
		return false, ErrInvalidStage
	}

	for i, existing := range s.selected {
		if existing.ID == item.ID {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return false, nil
		}
	}
	s.selected = append(s.selected, item)
	return true, nil
}

// ProceedToPayment moves to the payment screen. Requires at least one
// selected item.
func (s *Session) ProceedToPayment() error {
	if s.stage != StageSelectingItems {
		return ErrInvalidStage
	}
	if len(s.selected) == 0 {
		return ErrNoItemsSelected
	}
	s.stage = StagePaying
	return nil
}

// Back returns from the payment screen to item selection.
func (s *Session) Back() error {
	if s.stage != StagePaying {
		return ErrInvalidStage
	}
	s.stage = StageSelectingItems
	return nil
}

// Pay simulates the flat per-slot charge. It always succeeds and moves to
// the first slot's number pick.
func (s *Session) Pay() (cart.Money, error) {
	if s.stage != StagePaying {
		return cart.Money{}, ErrInvalidStage
	}

	amount := slotPrice().MulInt(int64(len(s.selected)))
	s.amountPaid = amount
	s.current = 0
	s.stage = StagePickingNumber
	return amount, nil
}

// PickNumber records the player's guess for the current slot.
func (s *Session) PickNumber(n DiceNumber) error {
	if s.stage != StagePickingNumber {
		return ErrInvalidStage
	}
	pick := n
	s.pick = &pick
	s.stage = StageRolling
	return nil
}

// RecordRoll takes the number rolled on the physical die and resolves the
// current slot. The result is appended to the session history in order.
func (s *Session) RecordRoll(rolled DiceNumber) (RollResult, error) {
	if s.stage != StageRolling {
		return RollResult{}, ErrInvalidStage
	}
	if s.pick == nil {
		return RollResult{}, ErrNumberNotPicked
	}

	result := RollResult{
		Item:   s.selected[s.current],
		Picked: *s.pick,
		Rolled: rolled,
		Win:    *s.pick == rolled,
	}
	s.rolls = append(s.rolls, result)
	s.stage = StageResolved
	return result, nil
}

// Advance moves past a resolved slot: to the next slot's number pick, or
// to the results screen when no slots remain.
func (s *Session) Advance() (Stage, error) {
	if s.stage != StageResolved {
		return s.stage, ErrInvalidStage
	}

	if s.current < len(s.selected)-1 {
		s.current++
		s.pick = nil
		s.stage = StagePickingNumber
	} else {
		s.stage = StageAllResolved
	}
	return s.stage, nil
}

// Reset discards all progress and returns to item selection.
func (s *Session) Reset() {
	*s = Session{stage: StageSelectingItems}
}

// Wins counts the winning rolls recorded so far.
func (s *Session) Wins() int {
	wins := 0
	for _, roll := range s.rolls {
		if roll.Win {
			wins++
		}
	}
	return wins
}

// CurrentItem returns the item tied to the slot being played.
func (s *Session) CurrentItem() (Item, bool) {
	if s.current < 0 || s.current >= len(s.selected) {
		return Item{}, false
	}
	return s.selected[s.current], true
}

func (s *Session) Stage() Stage {
	return s.stage
}

func (s *Session) CurrentIndex() int {
	return s.current
}

func (s *Session) Pick() *DiceNumber {
	if s.pick == nil {
		return nil
	}
	pick := *s.pick
	return &pick
}

func (s *Session) SelectedItems() []Item {
	items := make([]Item, len(s.selected))
	copy(items, s.selected)
	return items
}

func (s *Session) Rolls() []RollResult {
	rolls := make([]RollResult, len(s.rolls))
	copy(rolls, s.rolls)
	return rolls
}

func (s *Session) AmountPaid() cart.Money {
	return s.amountPaid
}
