// Package goscript runs transformation snippets with the yaegi Go
// interpreter. Every execution gets its own interpreter instance, so no
// state can leak between scopes and no global lock is needed.
package goscript

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"morph/script"
)

// Interpreted code may only import these stdlib packages. Filesystem,
// network and process access stay out of reach of operator snippets.
var allowedImports = map[string]bool{
	"bytes":         true,
	"encoding/json": true,
	"fmt":           true,
	"math":          true,
	"regexp":        true,
	"sort":          true,
	"strconv":       true,
	"strings":       true,
	"time":          true,
	"unicode":       true,
}

type driver struct{}

func (driver) Name() string { return "goscript" }

func (driver) Exec(ctx context.Context, src string, binds script.Bindings) (script.Scope, error) {
	if err := validateImports(src); err != nil {
		return nil, err
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("goscript: load stdlib: %w", err)
	}

	for name, val := range binds {
		if _, err := i.Eval(fmt.Sprintf("%s := %q", name, val)); err != nil {
			return nil, fmt.Errorf("goscript: bind %s: %w", name, err)
		}
	}

	if _, err := i.EvalWithContext(ctx, src); err != nil {
		return nil, fmt.Errorf("goscript: eval: %w", err)
	}
	return &scope{i: i}, nil
}

type scope struct {
	i *interp.Interpreter
}

func (s *scope) Lookup(name string) (string, error) {
	v, err := s.i.Eval(name)
	if err != nil {
		return "", fmt.Errorf("goscript: %q: %w", name, script.ErrUnboundVar)
	}
	if v.Kind() == reflect.String {
		return v.String(), nil
	}
	if !v.IsValid() {
		return "", fmt.Errorf("goscript: %q: %w", name, script.ErrUnboundVar)
	}
	return fmt.Sprint(v.Interface()), nil
}

func validateImports(src string) error {
	var forbidden []string
	inBlock := false
	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "import ("):
			inBlock = true
		case inBlock && strings.HasPrefix(trimmed, ")"):
			inBlock = false
		case inBlock:
			if pkg := strings.Trim(trimmed, `"`); pkg != "" && !allowedImports[pkg] {
				forbidden = append(forbidden, pkg)
			}
		case strings.HasPrefix(trimmed, "import "):
			pkg := strings.Trim(strings.TrimPrefix(trimmed, "import "), `"`)
			if !allowedImports[pkg] {
				forbidden = append(forbidden, pkg)
			}
		}
	}
	if len(forbidden) > 0 {
		return fmt.Errorf("goscript: forbidden imports: %v", forbidden)
	}
	return nil
}

func init() { script.Register("goscript", func() script.Engine { return driver{} }) }
