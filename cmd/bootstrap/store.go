package bootstrap

import (
	"coasters/internal/infra/memstore"
	"coasters/internal/pkg/config"
	"coasters/internal/usecase/commands"
	"coasters/internal/usecase/queries"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			NewSessionStore,
			fx.As(new(commands.SessionStore)),
			fx.As(new(queries.SessionSource)),
		),
		fx.Annotate(
			memstore.NewUsers,
			fx.As(new(commands.UserStore)),
		),
		fx.Annotate(
			NewOTPStore,
			fx.As(new(commands.OTPStore)),
		),
	),
)

func NewSessionStore(cfg config.Config) *memstore.Sessions {
	return memstore.NewSessions(cfg.Session)
}

func NewOTPStore(cfg config.Config) *memstore.OTPStore {
	return memstore.NewOTPStore(cfg.Auth)
}
