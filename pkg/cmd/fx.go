package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(check, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(run, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
