package beatmap

import (
	"go.uber.org/fx"

	"exusiai.dev/beatmap/internal/util"
)

func Module() fx.Option {
	return fx.Module("beatmap", fx.Provide(
		util.NewValidator,
		NewService,
	))
}
