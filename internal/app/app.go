package app

import (
	"time"

	"go.uber.org/fx"

	"exusiai.dev/beatmap/internal/app/appconfig"
	"exusiai.dev/beatmap/internal/app/appcontext"
	"exusiai.dev/beatmap/internal/core/beatmap"
	"exusiai.dev/beatmap/internal/infra"
	"exusiai.dev/beatmap/internal/pkg/logger"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Services
		beatmap.Module(),

		// fx Extra Options
		fx.StartTimeout(1 * time.Second),
		// StopTimeout mostly covers flushing pending trace spans to the exporter.
		fx.StopTimeout(10 * time.Second),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
