package components

import (
	"coasters/internal/pkg/clock"
	"coasters/internal/pkg/config"
	"coasters/internal/pkg/jwt"
	"coasters/internal/usecase"
	"coasters/internal/usecase/commands"
	"coasters/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewAuthCommands,
		commands.NewCartCommands,
		commands.NewGameCommands,
		NewCheckoutCommands,
		commands.NewCouponCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		NewMenuQueries,
		queries.NewOrderQueries,
		queries.NewCartQueries,
		queries.NewGameQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewAuthCommands(users commands.UserStore, otps commands.OTPStore, jwtService *jwt.Service, cfg config.Config, clock clock.Clock) commands.AuthCommands {
	return commands.NewAuthCommands(users, otps, jwtService, cfg.Auth, clock)
}

func NewCheckoutCommands(store commands.SessionStore, pos queries.POSGateway, cfg config.Config, clock clock.Clock) commands.CheckoutCommands {
	return commands.NewCheckoutCommands(store, pos, cfg.Upstream, clock)
}

func NewMenuQueries(pos queries.POSGateway, cfg config.Config) queries.MenuQueries {
	return queries.NewMenuQueries(pos, cfg.Upstream)
}
