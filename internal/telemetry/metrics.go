package telemetry

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	transformTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "morph_transform_total",
		Help: "Transform stage outcomes by status.",
	}, []string{"stage", "status"})

	transformDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "morph_transform_duration_seconds",
		Help:    "Latency of a single transform stage invocation.",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage"})

	scriptExecTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "morph_script_exec_total",
		Help: "Script engine executions by engine and outcome.",
	}, []string{"engine", "outcome"})
)

// ObserveTransform records one stage invocation. status is one of
// "ok", "drop", "error".
func ObserveTransform(stage, status string, d time.Duration) {
	transformTotal.WithLabelValues(stage, status).Inc()
	transformDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// ObserveScriptExec records one harness run. outcome is one of
// "ok", "execution_failure", "missing_output".
func ObserveScriptExec(engine, outcome string) {
	scriptExecTotal.WithLabelValues(engine, outcome).Inc()
}

func Expose(port int) {
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		_ = http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
	}()
}
