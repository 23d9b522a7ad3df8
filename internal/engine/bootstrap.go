package engine

import (
	"context"
	"fmt"

	"morph/internal/harness"
	"morph/internal/pipeline"
	"morph/internal/telemetry"
	"morph/internal/transform"
	"morph/internal/transport"
	"morph/script"
)

func Bootstrap(ctx context.Context, cfg Config) (*Engine, error) {
	// 1. transform service over gRPC, backed by the configured dialect
	eng, err := script.New(cfg.ScriptEngine)
	if err != nil {
		return nil, fmt.Errorf("script engine: %w", err)
	}
	h, err := harness.NewFieldTransformer(eng)
	if err != nil {
		return nil, fmt.Errorf("harness: %w", err)
	}
	svc := transport.NewService(
		transform.NewScriptClient("inline", h, defaultSnippet(cfg.ScriptEngine), ""))

	srv, err := transport.StartServer(cfg.GRPCPort, svc)
	if err != nil {
		return nil, fmt.Errorf("transport: %w", err)
	}

	// 2. pipeline runner
	var runner *pipeline.Runner
	if cfg.PipelineYml != "" {
		runner, err = pipeline.Compile(cfg.PipelineYml)
		if err != nil {
			return nil, fmt.Errorf("pipeline: %w", err)
		}
		if err := runner.Start(ctx); err != nil {
			return nil, err
		}
	}

	// 3. metrics
	telemetry.Expose(cfg.MetricsPort)

	return &Engine{
		transport: srv,
		runner:    runner,
	}, nil
}

// defaultSnippet is what the served harness runs when a request carries no
// custom code.
func defaultSnippet(engine string) string {
	if engine == "shell" {
		return `output="$(field_transformer_to_upper "$input")"`
	}
	return `output := field_transformer.ToUpper(input)`
}
