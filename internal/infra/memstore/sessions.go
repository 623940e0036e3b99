package memstore

import (
	"sync"
	"time"

	"coasters/internal/domain/cart"
	"coasters/internal/domain/game"
	"coasters/internal/pkg/config"

	gocache "github.com/patrickmn/go-cache"
)

// Sessions holds per-session cart and game state in memory. State lives
// for the configured TTL and is gone on process restart: persistence
// across sessions is explicitly out of scope, the POS API owns anything
// durable.
type Sessions struct {
	mu    sync.Mutex
	ttl   time.Duration
	carts *gocache.Cache
	games *gocache.Cache
}

func NewSessions(cfg config.SessionConfig) *Sessions {
	cleanup := cfg.TTL
	if cleanup > 10*time.Minute {
		cleanup = 10 * time.Minute
	}
	return &Sessions{
		ttl:   cfg.TTL,
		carts: gocache.New(cfg.TTL, cleanup),
		games: gocache.New(cfg.TTL, cleanup),
	}
}

// Cart returns the session's cart, creating an empty one on first access.
func (s *Sessions) Cart(sessionID string) *cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.carts.Get(sessionID); ok {
		return v.(*cart.Cart)
	}
	c := cart.NewCart()
	s.carts.Set(sessionID, c, s.ttl)
	return c
}

// SaveCart writes the cart back and refreshes its TTL.
func (s *Sessions) SaveCart(sessionID string, c *cart.Cart) {
	s.carts.Set(sessionID, c, s.ttl)
}

// Game returns the session's game state, creating a fresh session on
// first access.
func (s *Sessions) Game(sessionID string) *game.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.games.Get(sessionID); ok {
		return v.(*game.Session)
	}
	g := game.NewSession()
	s.games.Set(sessionID, g, s.ttl)
	return g
}

// SaveGame writes the game session back and refreshes its TTL.
func (s *Sessions) SaveGame(sessionID string, g *game.Session) {
	s.games.Set(sessionID, g, s.ttl)
}
