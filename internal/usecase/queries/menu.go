package queries

import (
	"context"
	"log/slog"
	"strconv"

	"coasters/internal/infra/posapi"
	"coasters/internal/pkg/config"

	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"
)

const menuCacheKey = "menu:list"

type MenuQueries interface {
	List(ctx context.Context) ([]MenuItemView, error)
}

type menuQueriesImpl struct {
	pos   POSGateway
	cache *gocache.Cache
	cfg   config.UpstreamConfig
}

func NewMenuQueries(pos POSGateway, cfg config.UpstreamConfig) MenuQueries {
	return &menuQueriesImpl{
		pos:   pos,
		cache: gocache.New(cfg.CatalogCacheTTL, cfg.CatalogCacheTTL),
		cfg:   cfg,
	}
}

// List serves the product catalog from the POS API. Successful responses
// are cached briefly; an upstream failure falls back to the built-in
// catalog so the menu never 500s.
func (q *menuQueriesImpl) List(ctx context.Context) ([]MenuItemView, error) {
	if v, ok := q.cache.Get(menuCacheKey); ok {
		return v.([]MenuItemView), nil
	}

	products, err := q.pos.GetProducts(ctx)
	if err != nil {
		slog.Warn("menu fetch failed, serving fallback catalog", "error", err.Error())
		return fallbackMenu(), nil
	}

	views := lo.Map(products, func(p posapi.Product, _ int) MenuItemView {
		return MenuItemView{
			ID:          strconv.FormatInt(p.ID, 10),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price.InexactFloat64(),
			Image:       p.Image,
		}
	})

	q.cache.Set(menuCacheKey, views, q.cfg.CatalogCacheTTL)
	return views, nil
}

func fallbackMenu() []MenuItemView {
	return []MenuItemView{
		{ID: "1", Name: "Cappuccino", Price: 100, Description: lo.ToPtr("The perfect balance of espresso, steamed milk and foam.")},
		{ID: "2", Name: "Latte", Price: 120, Description: lo.ToPtr("Smooth espresso with steamed milk and a light layer of foam.")},
		{ID: "3", Name: "Espresso", Price: 80, Description: lo.ToPtr("Strong and concentrated shot of coffee.")},
		{ID: "4", Name: "Mocha", Price: 140, Description: lo.ToPtr("Espresso with chocolate and steamed milk.")},
		{ID: "5", Name: "Flat White", Price: 110, Description: lo.ToPtr("Espresso with microfoam - steamed milk with small bubbles.")},
		{ID: "6", Name: "Cold Brew", Price: 130, Description: lo.ToPtr("Coffee brewed with cold water for 12-24 hours.")},
	}
}
