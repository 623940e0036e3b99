package commands

import (
	"context"
	"errors"
	"fmt"

	"coasters/internal/domain/coupon"
	"coasters/internal/domain/game"
	"coasters/internal/pkg/clock"
	"coasters/internal/pkg/errs"
	"coasters/internal/usecase/queries"
)

var (
	ErrUnknownGameItem   = errs.New("unknown game item")
	ErrNoItemsSelected   = errs.New("select at least one item to play")
	ErrInvalidGameStage  = errs.New("action not allowed in current game stage")
	ErrNumberNotPicked   = errs.New("pick a number before rolling")
	ErrInvalidDiceNumber = errs.New("dice number must be between 1 and 6")
)

type GameResult struct {
	Game   *queries.GameView
	Notice string
}

type GameCommands interface {
	ToggleItem(ctx context.Context, sessionID, itemID string) (*GameResult, error)
	ProceedToPayment(ctx context.Context, sessionID string) (*GameResult, error)
	Back(ctx context.Context, sessionID string) (*GameResult, error)
	Pay(ctx context.Context, sessionID string) (*GameResult, error)
	PickNumber(ctx context.Context, sessionID string, number int) (*GameResult, error)
	Roll(ctx context.Context, sessionID string, rolled int) (*GameResult, error)
	Advance(ctx context.Context, sessionID string) (*GameResult, error)
	Reset(ctx context.Context, sessionID string) (*GameResult, error)
}

type gameCommandsImpl struct {
	store SessionStore
	clock clock.Clock
}

func NewGameCommands(store SessionStore, clock clock.Clock) GameCommands {
	return &gameCommandsImpl{store: store, clock: clock}
}

func (g *gameCommandsImpl) ToggleItem(_ context.Context, sessionID, itemID string) (*GameResult, error) {
	item, ok := game.FindCatalogItem(itemID)
	if !ok {
		return nil, ErrUnknownGameItem
	}

	session := g.store.Game(sessionID)
	selected, err := session.ToggleItem(item)
	if err != nil {
		return nil, g.mapStageErr(err)
	}
	g.store.SaveGame(sessionID, session)

	notice := fmt.Sprintf("%s removed from the game", item.Name)
	if selected {
		notice = fmt.Sprintf("%s added to the game", item.Name)
	}
	return g.result(session, notice), nil
}

func (g *gameCommandsImpl) ProceedToPayment(_ context.Context, sessionID string) (*GameResult, error) {
	session := g.store.Game(sessionID)
	if err := session.ProceedToPayment(); err != nil {
		return nil, g.mapStageErr(err)
	}
	g.store.SaveGame(sessionID, session)
	return g.result(session, ""), nil
}

func (g *gameCommandsImpl) Back(_ context.Context, sessionID string) (*GameResult, error) {
	session := g.store.Game(sessionID)
	if err := session.Back(); err != nil {
		return nil, g.mapStageErr(err)
	}
	g.store.SaveGame(sessionID, session)
	return g.result(session, ""), nil
}

// Pay charges the flat per-slot amount. The charge is simulated and
// always succeeds.
func (g *gameCommandsImpl) Pay(_ context.Context, sessionID string) (*GameResult, error) {
	session := g.store.Game(sessionID)
	amount, err := session.Pay()
	if err != nil {
		return nil, g.mapStageErr(err)
	}
	g.store.SaveGame(sessionID, session)
	return g.result(session, fmt.Sprintf("Paid ₹%s. Good luck!", amount)), nil
}

func (g *gameCommandsImpl) PickNumber(_ context.Context, sessionID string, number int) (*GameResult, error) {
	pick, err := game.NewDiceNumber(number)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDiceNumber)
	}

	session := g.store.Game(sessionID)
	if err := session.PickNumber(pick); err != nil {
		return nil, g.mapStageErr(err)
	}
	g.store.SaveGame(sessionID, session)
	return g.result(session, ""), nil
}

// Roll records the number from the physical die and resolves the slot.
// A win credits one reward coupon to the session's cart on the spot.
func (g *gameCommandsImpl) Roll(_ context.Context, sessionID string, rolled int) (*GameResult, error) {
	number, err := game.NewDiceNumber(rolled)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDiceNumber)
	}

	session := g.store.Game(sessionID)
	result, err := session.RecordRoll(number)
	if err != nil {
		return nil, g.mapStageErr(err)
	}
	g.store.SaveGame(sessionID, session)

	var notice string
	if result.Win {
		cart := g.store.Cart(sessionID)
		cart.AddRewardCoupons(coupon.NewRewardBatch(1, g.clock.Now())...)
		g.store.SaveCart(sessionID, cart)
		notice = "You won! 1 Free Coffee Coupon added to your profile!"
	} else {
		notice = fmt.Sprintf("You picked %d, the die showed %d. Better luck next time!", result.Picked.Int(), result.Rolled.Int())
	}
	return g.result(session, notice), nil
}

func (g *gameCommandsImpl) Advance(_ context.Context, sessionID string) (*GameResult, error) {
	session := g.store.Game(sessionID)
	if _, err := session.Advance(); err != nil {
		return nil, g.mapStageErr(err)
	}
	g.store.SaveGame(sessionID, session)
	return g.result(session, ""), nil
}

func (g *gameCommandsImpl) Reset(_ context.Context, sessionID string) (*GameResult, error) {
	session := g.store.Game(sessionID)
	session.Reset()
	g.store.SaveGame(sessionID, session)
	return g.result(session, ""), nil
}

func (g *gameCommandsImpl) mapStageErr(err error) error {
	switch {
	case errors.Is(err, game.ErrNoItemsSelected):
		return errs.Mark(err, ErrNoItemsSelected)
	case errors.Is(err, game.ErrNumberNotPicked):
		return errs.Mark(err, ErrNumberNotPicked)
	case errors.Is(err, game.ErrInvalidDiceNumber):
		return errs.Mark(err, ErrInvalidDiceNumber)
	default:
		return errs.Mark(err, ErrInvalidGameStage)
	}
}

func (g *gameCommandsImpl) result(session *game.Session, notice string) *GameResult {
	return &GameResult{
		Game:   queries.NewGameView(session),
		Notice: notice,
	}
}
