package commands

import (
	"coasters/internal/domain/cart"
	"coasters/internal/domain/game"
	"coasters/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side ports over the in-memory stores (mocked in handler tests).

type SessionStore interface {
	Cart(sessionID string) *cart.Cart
	SaveCart(sessionID string, c *cart.Cart)
	Game(sessionID string) *game.Session
	SaveGame(sessionID string, g *game.Session)
}

type UserStore interface {
	Save(usr *user.User)
	FindByID(id uuid.UUID) (*user.User, bool)
	FindByPhone(phone user.Phone) (*user.User, bool)
}

type OTPStore interface {
	Put(phone, hash string)
	Get(phone string) (string, bool)
	Delete(phone string)
}
