package goscript

import (
	"context"
	"errors"
	"strings"
	"testing"

	"morph/script"
)

func TestExec_AssignAndLookup(t *testing.T) {
	eng, err := script.New("goscript")
	if err != nil {
		t.Fatalf("script.New: %v", err)
	}
	scope, err := eng.Exec(context.Background(), "import \"strings\"\noutput := strings.ToUpper(\"abc\")", nil)
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	got, err := scope.Lookup("output")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != "ABC" {
		t.Fatalf("want ABC, got %q", got)
	}
}

func TestExec_BindingsVisibleToScript(t *testing.T) {
	eng := driver{}
	scope, err := eng.Exec(context.Background(), `output := input + "!"`, script.Bindings{"input": "x"})
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	got, err := scope.Lookup("output")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != "x!" {
		t.Fatalf("want x!, got %q", got)
	}
}

func TestExec_NonStringOutputStringified(t *testing.T) {
	eng := driver{}
	scope, err := eng.Exec(context.Background(), `output := 40 + 2`, nil)
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	got, err := scope.Lookup("output")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != "42" {
		t.Fatalf("want 42, got %q", got)
	}
}

func TestExec_ForbiddenImportRejected(t *testing.T) {
	eng := driver{}
	_, err := eng.Exec(context.Background(), "import \"os\"\noutput := os.Getenv(\"HOME\")", nil)
	if err == nil || !strings.Contains(err.Error(), "forbidden") {
		t.Fatalf("want forbidden import error, got %v", err)
	}
}

func TestExec_SyntaxErrorSurfaces(t *testing.T) {
	eng := driver{}
	if _, err := eng.Exec(context.Background(), `output := (`, nil); err == nil {
		t.Fatal("want error for invalid source")
	}
}

func TestLookup_UnboundVar(t *testing.T) {
	eng := driver{}
	scope, err := eng.Exec(context.Background(), `x := 1`, nil)
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if _, err := scope.Lookup("output"); !errors.Is(err, script.ErrUnboundVar) {
		t.Fatalf("want ErrUnboundVar, got %v", err)
	}
}

func TestExec_FreshScopePerCall(t *testing.T) {
	eng := driver{}
	if _, err := eng.Exec(context.Background(), `secret := "s"`, nil); err != nil {
		t.Fatalf("first Exec: %v", err)
	}
	if _, err := eng.Exec(context.Background(), `output := secret`, nil); err == nil {
		t.Fatal("second Exec saw first scope")
	}
}
