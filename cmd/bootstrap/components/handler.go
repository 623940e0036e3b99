package components

import (
	"coasters/internal/handler"
	"coasters/internal/handler/api"
	"coasters/internal/handler/middleware"
	"coasters/internal/pkg/config"
	"coasters/internal/pkg/jwt"
	"coasters/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewMenuHandler,
		api.NewCartHandler,
		api.NewGameHandler,
		api.NewOrderHandler,
		api.NewCouponHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(authCommands commands.AuthCommands, users commands.UserStore, jwtService *jwt.Service, cfg config.Config) *api.AuthHandler {
	return api.NewAuthHandler(authCommands, users, jwtService, cfg.Cookie)
}

func NewHandlers(
	auth *api.AuthHandler,
	menu *api.MenuHandler,
	cart *api.CartHandler,
	game *api.GameHandler,
	order *api.OrderHandler,
	coupon *api.CouponHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:   auth,
		Menu:   menu,
		Cart:   cart,
		Game:   game,
		Order:  order,
		Coupon: coupon,
	}
}
