package script

import "fmt"

// Factory builds an Engine (e.g. the goscript or shell driver).
type Factory func() Engine

var registry = map[string]Factory{}

// Register is called from each driver's init().
func Register(name string, f Factory) {
	registry[name] = f
}

// New returns an engine driver by name ("goscript", "shell", ...).
func New(name string) (Engine, error) {
	if f, ok := registry[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("script: unsupported engine %q", name)
}
