// Package harness implements the field transformation harness: a fixed
// prelude defining the field_transformer capability is concatenated with
// caller-supplied code, the combined script runs in a freshly created scope,
// and the value bound to the output variable is returned.
package harness

import (
	"context"
	"errors"

	"morph/internal/telemetry"
	"morph/script"
)

// OutputVar is the conventional variable custom code assigns its result to.
const OutputVar = "output"

// Harness owns one prelude and delegates execution to an injected engine.
// It keeps no state between invocations; each call gets its own scope.
type Harness struct {
	eng     script.Engine
	prelude string
}

func New(eng script.Engine, prelude string) *Harness {
	return &Harness{eng: eng, prelude: prelude}
}

// Request is the structured form of one transformation: the code to run
// after the prelude, variables to pre-bind into the scope, and the output
// variable to read back afterwards.
type Request struct {
	Code     string
	Bindings script.Bindings
	Output   string // defaults to OutputVar
}

// Transform runs custom code after the prelude and returns the value bound
// to the output variable.
func (h *Harness) Transform(ctx context.Context, customCode string) (string, error) {
	return h.Run(ctx, Request{Code: customCode})
}

// Run executes one transformation request. Failures split into two kinds:
// *ExecutionError when the combined script does not run to completion, and
// *MissingOutputError when it runs but never assigns the output variable.
func (h *Harness) Run(ctx context.Context, req Request) (string, error) {
	outVar := req.Output
	if outVar == "" {
		outVar = OutputVar
	}

	scope, err := h.eng.Exec(ctx, h.prelude+"\n"+req.Code, req.Bindings)
	if err != nil {
		telemetry.ObserveScriptExec(h.eng.Name(), "execution_failure")
		return "", &ExecutionError{Engine: h.eng.Name(), Err: err}
	}

	val, err := scope.Lookup(outVar)
	if err != nil {
		if errors.Is(err, script.ErrUnboundVar) {
			telemetry.ObserveScriptExec(h.eng.Name(), "missing_output")
			return "", &MissingOutputError{Var: outVar}
		}
		telemetry.ObserveScriptExec(h.eng.Name(), "execution_failure")
		return "", &ExecutionError{Engine: h.eng.Name(), Err: err}
	}
	telemetry.ObserveScriptExec(h.eng.Name(), "ok")
	return val, nil
}

// Engine exposes the injected engine, mainly for callers that report which
// dialect a harness speaks.
func (h *Harness) Engine() script.Engine { return h.eng }
