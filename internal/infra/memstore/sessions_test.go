//go:build unit

package memstore_test

import (
	"testing"
	"time"

	"coasters/internal/domain/cart"
	"coasters/internal/domain/game"
	"coasters/internal/infra/memstore"
	"coasters/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessions() *memstore.Sessions {
	return memstore.NewSessions(config.SessionConfig{TTL: time.Hour})
}

func TestSessions_Cart(t *testing.T) {
	s := newSessions()

	c := s.Cart("session-a")
	require.NotNil(t, c)
	assert.True(t, c.IsEmpty())

	price, err := cart.NewMoneyFromInt(100)
	require.NoError(t, err)
	item, err := cart.NewLineItem("1", "Cappuccino", price, 1, "", nil)
	require.NoError(t, err)
	c.AddItem(item)
	s.SaveCart("session-a", c)

	// same session sees the same cart
	again := s.Cart("session-a")
	assert.Len(t, again.Items(), 1)

	// other sessions are isolated
	other := s.Cart("session-b")
	assert.True(t, other.IsEmpty())
}

func TestSessions_Game(t *testing.T) {
	s := newSessions()

	g := s.Game("session-a")
	require.NotNil(t, g)
	assert.Equal(t, game.StageSelectingItems, g.Stage())

	_, err := g.ToggleItem(game.Catalog()[0])
	require.NoError(t, err)
	s.SaveGame("session-a", g)

	again := s.Game("session-a")
	assert.Len(t, again.SelectedItems(), 1)

	other := s.Game("session-b")
	assert.Empty(t, other.SelectedItems())
}

func TestOTPStore(t *testing.T) {
	store := memstore.NewOTPStore(config.AuthConfig{OTPTTL: time.Minute})

	store.Put("9876543210", "hash")

	hash, ok := store.Get("9876543210")
	require.True(t, ok)
	assert.Equal(t, "hash", hash)

	store.Delete("9876543210")
	_, ok = store.Get("9876543210")
	assert.False(t, ok)
}
