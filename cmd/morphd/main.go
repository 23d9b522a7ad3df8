package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"morph/internal/engine"
	"morph/internal/logging"
	"morph/source/kafka"

	_ "morph/script/goscript"
	_ "morph/script/shell"
)

func main() {
	logging.InitFromEnv()

	cfg, err := engine.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	pipelineYml := flag.String("pipeline", cfg.PipelineYml, "pipeline YAML (empty = serve only)")
	flag.Parse()
	cfg.PipelineYml = *pipelineYml

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	kafka.Register("sarama", func() kafka.Adapter { return &kafka.SaramaDriver{} })

	e, err := engine.Bootstrap(ctx, cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	if err := e.Run(ctx); err != nil {
		log.Fatalf("engine: %v", err)
	}
}
