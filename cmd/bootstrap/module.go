package bootstrap

import (
	"coasters/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	StoreModule,
	UpstreamModule,
	components.UseCaseModule,
	components.HandlerModule,
)
