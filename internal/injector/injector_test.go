package injector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/raytrace/internal/core/observability/log"
	"github.com/zeusync/raytrace/internal/worksheet"
	"github.com/zeusync/raytrace/pkg/vec3"
)

func TestInitializeApp(t *testing.T) {
	app := InitializeApp(log.LevelSilent)
	require.NotNil(t, app.Logger)
	require.NotNil(t, app.Evaluator)
	require.Equal(t, log.LevelSilent, app.Logger.GetLevel())
	require.Contains(t, app.Evaluator.Registry().Names(), "dot")

	report, err := app.Evaluator.Evaluate(context.Background(), &worksheet.Worksheet{
		Vectors: map[string]vec3.Vector3{"a": vec3.New(3, 4, 0)},
		Steps:   []worksheet.Step{{Name: "l", Op: "length", Args: []string{"a"}}},
	})
	require.NoError(t, err)
	require.Equal(t, 5.0, *report.Results[0].Scalar)
}
