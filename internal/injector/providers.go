package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/raytrace/internal/core/observability/log"
	"github.com/zeusync/raytrace/internal/worksheet"
)

// App bundles what the command line needs.
type App struct {
	Logger    *log.Logger
	Evaluator *worksheet.Evaluator
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	worksheet.DefaultRegistry,
	worksheet.NewEvaluator,
	wire.Struct(new(App), "*"),
)

func ProvideLogger(level log.Level) *log.Logger {
	return log.New(level)
}
