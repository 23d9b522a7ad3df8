package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	pb "morph/api/proto/v1"
	"morph/internal/config"
	"morph/internal/harness"
	"morph/internal/spec"
	"morph/internal/transform"
	"morph/script"
	"morph/sink"
	kafkasink "morph/sink/kafka"
	"morph/sink/stdout"
	"morph/source/kafka"
)

func Compile(path string) (*Runner, error) {
	r := NewRunner()
	if err := LoadYAML(path, r); err != nil {
		return nil, err
	}
	return r, nil
}

func LoadYAML(path string, r *Runner) error {
	cfg, confPath, err := config.LoadPipelineSpec(path)
	if err != nil {
		return err
	}

	if cfg.Source.Kind != "kafka" {
		return fmt.Errorf("unsupported source %q", cfg.Source.Kind)
	}
	kc, err := config.LoadKafkaConfig(confPath)
	if err != nil {
		return err
	}

	src, err := kafka.NewAdapter(cfg.Source.Driver)
	if err != nil {
		return err
	}
	if err = src.Configure(kc); err != nil {
		return err
	}
	r.SetSource(src)

	if aw, ok := src.(interface{ OnAck(*pb.SourceAck) }); ok {
		r.SubscribeAck(aw.OnAck)
	}

	for _, t := range cfg.Transformers {
		cli, err := buildStage(t, filepath.Dir(path))
		if err != nil {
			return err
		}
		to := time.Duration(t.TimeoutMS) * time.Millisecond
		attempts := t.RetryPolicy.Attempts
		backoff := time.Duration(t.RetryPolicy.BackoffMS) * time.Millisecond
		r.AddTransformer(t.Name, cli, to, attempts, backoff)
	}

	for _, name := range cfg.Sinks {
		sDrv, err := sink.NewAdapter(name)
		if err != nil {
			return err
		}

		switch name {
		case "stdout":
			delay := time.Duration(cfg.Debug.PerFrameDelayMS) * time.Millisecond
			err = sDrv.Configure(stdout.Config{
				DelayMS:       int(delay / time.Millisecond),
				PrintCounter:  cfg.Debug.PrintCounter,
				BatchSize:     cfg.Debug.AckBatchSize,
				FlushMS:       cfg.Debug.AckFlushMS,
				PrintValue:    cfg.Debug.PrintValue,
				ValueMaxBytes: cfg.Debug.ValueMaxBytes,
			})

		case "kafka":
			var kcfg kafkasink.Config
			if kcfg, err = decodeSinkConfig(cfg.SinkConfigs.Kafka); err == nil {
				err = sDrv.Configure(kcfg)
			}

		default:
			err = fmt.Errorf("no config block for sink %q", name)
		}
		if err != nil {
			return err
		}

		if ackAware, ok := sDrv.(sink.AckAware); ok {
			ackAware.BindAck(r.Ack)
		}
		r.AddSink(sDrv)
	}
	return nil
}

// buildStage turns one transformer spec into a runnable stage client.
// Script stages run in-process through the harness; grpc stages dial an
// external plugin.
func buildStage(t spec.TransformerSpec, baseDir string) (transform.Client, error) {
	switch t.Type {
	case "script", "":
		engName := t.Engine
		if engName == "" {
			engName = "goscript"
		}
		eng, err := script.New(engName)
		if err != nil {
			return nil, fmt.Errorf("transform %s: %w", t.Name, err)
		}
		h, err := harness.NewFieldTransformer(eng)
		if err != nil {
			return nil, fmt.Errorf("transform %s: %w", t.Name, err)
		}
		code := t.Code
		if t.CodeFile != "" {
			p := t.CodeFile
			if !filepath.IsAbs(p) {
				p = filepath.Join(baseDir, p)
			}
			raw, err := os.ReadFile(p)
			if err != nil {
				return nil, fmt.Errorf("transform %s: %w", t.Name, err)
			}
			code = string(raw)
		}
		if code == "" {
			return nil, fmt.Errorf("transform %s: script stage needs code or code_file", t.Name)
		}
		return transform.NewScriptClient(t.Name, h, code, t.OutputVar), nil

	case "grpc":
		cli, err := transform.NewGRPCClient(context.Background(), t.Address)
		if err != nil {
			return nil, fmt.Errorf("transform %s: dial %s: %w", t.Name, t.Address, err)
		}
		return cli, nil

	default:
		return nil, fmt.Errorf("unsupported transformer type %q for %s", t.Type, t.Name)
	}
}

// decodeSinkConfig re-marshals the free-form sink_configs block into the
// kafka sink's typed config.
func decodeSinkConfig(raw any) (kafkasink.Config, error) {
	var out kafkasink.Config
	if raw == nil {
		return out, fmt.Errorf("no config block for sink %q", "kafka")
	}
	buf, err := yaml.Marshal(raw)
	if err != nil {
		return out, err
	}
	if err := yaml.Unmarshal(buf, &out); err != nil {
		return out, err
	}
	return out, nil
}
