package shell

import (
	"context"
	"errors"
	"testing"

	"morph/script"
)

func TestExec_AssignAndLookup(t *testing.T) {
	eng, err := script.New("shell")
	if err != nil {
		t.Fatalf("script.New: %v", err)
	}
	scope, err := eng.Exec(context.Background(), `output="hi there"`, nil)
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	got, err := scope.Lookup("output")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != "hi there" {
		t.Fatalf("want %q, got %q", "hi there", got)
	}
}

func TestExec_BindingsAsEnvironment(t *testing.T) {
	eng := driver{}
	scope, err := eng.Exec(context.Background(), `output="hello $name"`, script.Bindings{"name": "world"})
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	got, err := scope.Lookup("output")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("want %q, got %q", "hello world", got)
	}
}

func TestExec_ParseErrorSurfaces(t *testing.T) {
	eng := driver{}
	if _, err := eng.Exec(context.Background(), `fi`, nil); err == nil {
		t.Fatal("want parse error")
	}
}

func TestExec_ExternalCommandsRejected(t *testing.T) {
	eng := driver{}
	if _, err := eng.Exec(context.Background(), `ls /`, nil); err == nil {
		t.Fatal("want rejection of external command")
	}
}

func TestExec_InterpreterPanicBecomesError(t *testing.T) {
	eng := driver{}
	// negated character classes make the interpreter's pattern conversion
	// panic; Exec must turn that into an error, not kill the process
	_, err := eng.Exec(context.Background(), `x="${y%%[![:space:]]*}"`, script.Bindings{"y": " a "})
	if err == nil {
		t.Fatal("want error from interpreter panic")
	}
}

func TestLookup_UnboundVar(t *testing.T) {
	eng := driver{}
	scope, err := eng.Exec(context.Background(), `x=1`, nil)
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if _, err := scope.Lookup("output"); !errors.Is(err, script.ErrUnboundVar) {
		t.Fatalf("want ErrUnboundVar, got %v", err)
	}
}
