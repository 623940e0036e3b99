package queries

import (
	"context"

	"coasters/internal/domain/cart"
	"coasters/internal/domain/game"
)

// SessionSource is the read-side slice of the session store.
type SessionSource interface {
	Cart(sessionID string) *cart.Cart
	Game(sessionID string) *game.Session
}

type CartQueries interface {
	Get(ctx context.Context, sessionID string) (*CartView, error)
}

type cartQueriesImpl struct {
	source SessionSource
}

func NewCartQueries(source SessionSource) CartQueries {
	return &cartQueriesImpl{source: source}
}

func (q *cartQueriesImpl) Get(_ context.Context, sessionID string) (*CartView, error) {
	return NewCartView(q.source.Cart(sessionID)), nil
}

type GameQueries interface {
	Get(ctx context.Context, sessionID string) (*GameView, error)
	ListItems(ctx context.Context, sessionID string) ([]GameItemView, error)
}

type gameQueriesImpl struct {
	source SessionSource
}

func NewGameQueries(source SessionSource) GameQueries {
	return &gameQueriesImpl{source: source}
}

func (q *gameQueriesImpl) Get(_ context.Context, sessionID string) (*GameView, error) {
	return NewGameView(q.source.Game(sessionID)), nil
}

func (q *gameQueriesImpl) ListItems(_ context.Context, sessionID string) ([]GameItemView, error) {
	return NewGameCatalogView(q.source.Game(sessionID)), nil
}
