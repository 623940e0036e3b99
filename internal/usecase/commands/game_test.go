//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"coasters/internal/pkg/clock"
	"coasters/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGameCommands() (commands.GameCommands, commands.CartCommands) {
	store := newSessionStore()
	return commands.NewGameCommands(store, clock.NewMockClock(time.Now())), commands.NewCartCommands(store)
}

func TestGameCommands_FullWinningRound(t *testing.T) {
	ctx := context.Background()
	gameCmds, cartCmds := newGameCommands()

	result, err := gameCmds.ToggleItem(ctx, "s1", "dice-item-1")
	require.NoError(t, err)
	assert.Equal(t, "Cappuccino added to the game", result.Notice)
	require.Len(t, result.Game.Selected, 1)

	result, err = gameCmds.ProceedToPayment(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "paying", result.Game.Stage)

	result, err = gameCmds.Pay(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "picking_number", result.Game.Stage)
	assert.Equal(t, "Paid ₹25. Good luck!", result.Notice)
	assert.Equal(t, 25.0, result.Game.AmountPaid)

	result, err = gameCmds.PickNumber(ctx, "s1", 4)
	require.NoError(t, err)
	assert.Equal(t, "rolling", result.Game.Stage)
	require.NotNil(t, result.Game.Pick)
	assert.Equal(t, 4, *result.Game.Pick)

	// matching roll wins and credits a reward coupon to the cart
	result, err = gameCmds.Roll(ctx, "s1", 4)
	require.NoError(t, err)
	assert.Equal(t, "You won! 1 Free Coffee Coupon added to your profile!", result.Notice)
	assert.Equal(t, 1, result.Game.Wins)
	require.Len(t, result.Game.Rolls, 1)
	assert.True(t, result.Game.Rolls[0].Win)

	cart, err := cartCmds.Clear(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Cart.RewardCoupons, 1)
	assert.Contains(t, cart.Cart.RewardCoupons[0].Code, "FREE-COFFEE-")

	// single slot, so advancing finishes the round
	result, err = gameCmds.Advance(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "all_resolved", result.Game.Stage)
}

func TestGameCommands_LosingRoll(t *testing.T) {
	ctx := context.Background()
	gameCmds, cartCmds := newGameCommands()

	_, err := gameCmds.ToggleItem(ctx, "s1", "dice-item-2")
	require.NoError(t, err)
	_, err = gameCmds.ProceedToPayment(ctx, "s1")
	require.NoError(t, err)
	_, err = gameCmds.Pay(ctx, "s1")
	require.NoError(t, err)
	_, err = gameCmds.PickNumber(ctx, "s1", 2)
	require.NoError(t, err)

	result, err := gameCmds.Roll(ctx, "s1", 5)
	require.NoError(t, err)
	assert.Equal(t, "You picked 2, the die showed 5. Better luck next time!", result.Notice)
	assert.Equal(t, 0, result.Game.Wins)

	cart, err := cartCmds.Clear(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Cart.RewardCoupons)
}

func TestGameCommands_ToggleItem(t *testing.T) {
	ctx := context.Background()
	gameCmds, _ := newGameCommands()

	_, err := gameCmds.ToggleItem(ctx, "s1", "no-such-item")
	assert.ErrorIs(t, err, commands.ErrUnknownGameItem)

	_, err = gameCmds.ToggleItem(ctx, "s1", "dice-item-1")
	require.NoError(t, err)

	// toggling again deselects
	result, err := gameCmds.ToggleItem(ctx, "s1", "dice-item-1")
	require.NoError(t, err)
	assert.Equal(t, "Cappuccino removed from the game", result.Notice)
	assert.Empty(t, result.Game.Selected)
}

func TestGameCommands_StageGuards(t *testing.T) {
	ctx := context.Background()
	gameCmds, _ := newGameCommands()

	_, err := gameCmds.ProceedToPayment(ctx, "s1")
	assert.ErrorIs(t, err, commands.ErrNoItemsSelected)

	_, err = gameCmds.Pay(ctx, "s1")
	assert.ErrorIs(t, err, commands.ErrInvalidGameStage)

	_, err = gameCmds.PickNumber(ctx, "s1", 3)
	assert.ErrorIs(t, err, commands.ErrInvalidGameStage)

	_, err = gameCmds.PickNumber(ctx, "s1", 9)
	assert.ErrorIs(t, err, commands.ErrInvalidDiceNumber)

	_, err = gameCmds.Roll(ctx, "s1", 3)
	assert.ErrorIs(t, err, commands.ErrInvalidGameStage)

	// selection cannot change once paid
	_, err = gameCmds.ToggleItem(ctx, "s1", "dice-item-1")
	require.NoError(t, err)
	_, err = gameCmds.ProceedToPayment(ctx, "s1")
	require.NoError(t, err)
	_, err = gameCmds.Pay(ctx, "s1")
	require.NoError(t, err)
	_, err = gameCmds.ToggleItem(ctx, "s1", "dice-item-2")
	assert.ErrorIs(t, err, commands.ErrInvalidGameStage)

	// rolling is only reachable after a pick
	_, err = gameCmds.Roll(ctx, "s1", 3)
	assert.ErrorIs(t, err, commands.ErrInvalidGameStage)
}

func TestGameCommands_BackAndReset(t *testing.T) {
	ctx := context.Background()
	gameCmds, _ := newGameCommands()

	_, err := gameCmds.ToggleItem(ctx, "s1", "dice-item-1")
	require.NoError(t, err)
	_, err = gameCmds.ProceedToPayment(ctx, "s1")
	require.NoError(t, err)

	// back returns to selection with the picks intact
	result, err := gameCmds.Back(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "selecting_items", result.Game.Stage)
	assert.Len(t, result.Game.Selected, 1)

	_, err = gameCmds.ProceedToPayment(ctx, "s1")
	require.NoError(t, err)
	_, err = gameCmds.Pay(ctx, "s1")
	require.NoError(t, err)

	// reset discards everything
	result, err = gameCmds.Reset(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "selecting_items", result.Game.Stage)
	assert.Empty(t, result.Game.Selected)
	assert.Equal(t, 0.0, result.Game.AmountPaid)
}
