// Package shell runs transformation snippets with the mvdan.cc/sh
// interpreter. Bindings are exposed as environment variables; results are
// read back from the runner's variable table after the script completes.
// External commands are rejected, only builtins and shell expansion run.
package shell

import (
	"context"
	"fmt"
	"io"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"morph/script"
)

type driver struct{}

func (driver) Name() string { return "shell" }

// Exec recovers interpreter panics into plain errors: a bad operator
// snippet must never take the host process down.
func (driver) Exec(ctx context.Context, src string, binds script.Bindings) (sc script.Scope, err error) {
	defer func() {
		if p := recover(); p != nil {
			sc, err = nil, fmt.Errorf("shell: interpreter panic: %v", p)
		}
	}()

	prog, err := syntax.NewParser().Parse(strings.NewReader(src), "transform")
	if err != nil {
		return nil, fmt.Errorf("shell: parse: %w", err)
	}

	environ := make([]string, 0, len(binds))
	for name, val := range binds {
		environ = append(environ, name+"="+val)
	}

	runner, err := interp.New(
		interp.Env(expand.ListEnviron(environ...)),
		interp.StdIO(nil, io.Discard, io.Discard),
		interp.ExecHandlers(rejectExternals),
	)
	if err != nil {
		return nil, fmt.Errorf("shell: interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		return nil, fmt.Errorf("shell: run: %w", err)
	}
	return &scope{vars: runner.Vars}, nil
}

func rejectExternals(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(ctx context.Context, args []string) error {
		return fmt.Errorf("shell: external command %q not permitted", args[0])
	}
}

type scope struct {
	vars map[string]expand.Variable
}

func (s *scope) Lookup(name string) (string, error) {
	v, ok := s.vars[name]
	if !ok || v.Kind == expand.Unset {
		return "", fmt.Errorf("shell: %q: %w", name, script.ErrUnboundVar)
	}
	switch v.Kind {
	case expand.Indexed:
		return strings.Join(v.List, " "), nil
	default:
		return v.Str, nil
	}
}

func init() { script.Register("shell", func() script.Engine { return driver{} }) }
