package bootstrap

import (
	"log/slog"

	"coasters/internal/infra/posapi"
	"coasters/internal/pkg/config"
	"coasters/internal/usecase/queries"

	"go.uber.org/fx"
)

var UpstreamModule = fx.Module("upstream",
	fx.Provide(
		fx.Annotate(
			NewPOSClient,
			fx.As(new(queries.POSGateway)),
		),
	),
)

func NewPOSClient(cfg config.Config, logger *slog.Logger) *posapi.Client {
	return posapi.NewClient(cfg.Upstream, logger)
}
