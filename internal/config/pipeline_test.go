package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPipelineSpec_ResolvesRelativeSourceConfigAndSchema(t *testing.T) {
	dir := t.TempDir()
	pipe := []byte(`schema_version: v1
source:
  kind: kafka
  driver: sarama
  config: kafka_source.yml
transformers: []
sinks: [stdout]
`)
	if err := os.WriteFile(filepath.Join(dir, "pipeline.yml"), pipe, 0o644); err != nil {
		t.Fatalf("write pipeline: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "kafka_source.yml"), []byte("schema_version: v1\n"), 0o644); err != nil {
		t.Fatalf("write kafka cfg: %v", err)
	}

	cfg, abs, err := LoadPipelineSpec(filepath.Join(dir, "pipeline.yml"))
	if err != nil {
		t.Fatalf("LoadPipelineSpec: %v", err)
	}
	if cfg.SchemaVersion != SupportedSchema {
		t.Fatalf("want schema %s, got %s", SupportedSchema, cfg.SchemaVersion)
	}
	if abs == "" || !filepath.IsAbs(abs) {
		t.Fatalf("want absolute kafka config path, got %q", abs)
	}
}

func TestLoadPipelineSpec_ScriptStageFields(t *testing.T) {
	dir := t.TempDir()
	pipe := []byte(`schema_version: v1
source:
  kind: kafka
  driver: sarama
transformers:
  - name: upper
    type: script
    engine: shell
    code: 'output="$(field_transformer_to_upper "$input")"'
    output_var: result
    timeout_ms: 250
    retry_policy: { attempts: 3, backoff_ms: 10 }
sinks: [stdout]
`)
	if err := os.WriteFile(filepath.Join(dir, "pipeline.yml"), pipe, 0o644); err != nil {
		t.Fatalf("write pipeline: %v", err)
	}

	cfg, _, err := LoadPipelineSpec(filepath.Join(dir, "pipeline.yml"))
	if err != nil {
		t.Fatalf("LoadPipelineSpec: %v", err)
	}
	if len(cfg.Transformers) != 1 {
		t.Fatalf("want 1 transformer, got %d", len(cfg.Transformers))
	}
	tr := cfg.Transformers[0]
	if tr.Type != "script" || tr.Engine != "shell" || tr.OutputVar != "result" {
		t.Fatalf("script fields lost: %+v", tr)
	}
	if tr.Code == "" || tr.RetryPolicy.Attempts != 3 {
		t.Fatalf("code/retry lost: %+v", tr)
	}
}

func TestLoadPipelineSpec_InvalidSchema(t *testing.T) {
	dir := t.TempDir()
	pipe := []byte(`schema_version: v999
source: { kind: kafka, driver: sarama, config: cf.yml }
transformers: []
sinks: [stdout]
`)
	if err := os.WriteFile(filepath.Join(dir, "pipeline.yml"), pipe, 0o644); err != nil {
		t.Fatalf("write pipeline: %v", err)
	}
	_, _, err := LoadPipelineSpec(filepath.Join(dir, "pipeline.yml"))
	if err == nil {
		t.Fatal("expected error for invalid schema_version")
	}
}
