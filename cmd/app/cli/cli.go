package cli

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"exusiai.dev/beatmap/internal/app"
	"exusiai.dev/beatmap/internal/app/appcontext"
)

// Start builds and starts the application graph for a command. The returned app should
// be stopped once the command is done so exporters get flushed.
func Start(module fx.Option) *fx.App {
	a := app.New(appcontext.Declare(appcontext.EnvCLI), module)
	if err := a.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to start app")
	}
	return a
}

// DepsFn returns a function that starts the application and populates T from it, along
// with the function that stops the application again.
func DepsFn[T any]() func() (T, func()) {
	return func() (T, func()) {
		var deps T
		a := Start(fx.Populate(&deps))
		return deps, func() {
			if err := a.Stop(context.Background()); err != nil {
				log.Error().Err(err).Msg("failed to stop app")
			}
		}
	}
}
