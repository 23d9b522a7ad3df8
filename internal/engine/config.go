package engine

import (
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	GRPCPort     int    `koanf:"grpc_port"`
	MetricsPort  int    `koanf:"metrics_port"`
	PipelineYml  string `koanf:"pipeline_yml"`
	ScriptEngine string `koanf:"script_engine"` // dialect of the served harness
}

// LoadConfig reads engine settings from env-vars
// (prefix `MORPH_ENGINE__`, delimiter `__`) and fills defaults.
func LoadConfig() (Config, error) {
	k := koanf.New(".")
	_ = k.Load(env.Provider("MORPH_ENGINE__", "__", nil), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(c *Config) {
	if c.GRPCPort == 0 {
		c.GRPCPort = 7070
	}
	if c.MetricsPort == 0 {
		c.MetricsPort = 9100
	}
	if c.ScriptEngine == "" {
		c.ScriptEngine = "goscript"
	}
}
