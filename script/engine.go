package script

import (
	"context"
	"errors"
)

// Bindings are variables injected into the execution scope before the
// script runs.
type Bindings map[string]string

// Scope is the variable-binding context left behind by one execution.
// A scope belongs to exactly one Exec call and is never reused.
type Scope interface {
	// Lookup returns the string form of a bound variable, or an error
	// wrapping ErrUnboundVar when the script never assigned it.
	Lookup(name string) (string, error)
}

// Engine parses and runs script text against a fresh scope. Implementations
// must guarantee that concurrent executions do not observe each other's
// scopes; creating an independent interpreter per Exec is the usual way.
type Engine interface {
	Name() string
	Exec(ctx context.Context, src string, binds Bindings) (Scope, error)
}

// ErrUnboundVar marks a Lookup of a variable the script never assigned.
// Distinct from execution failure: the script ran to completion.
var ErrUnboundVar = errors.New("variable not bound in scope")
