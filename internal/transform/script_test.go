package transform

import (
	"context"
	"errors"
	"strings"
	"testing"

	pb "morph/api/proto/v1"
	"morph/internal/harness"
	"morph/script"
)

type fakeScope struct{ vars map[string]string }

func (s *fakeScope) Lookup(name string) (string, error) {
	v, ok := s.vars[name]
	if !ok {
		return "", script.ErrUnboundVar
	}
	return v, nil
}

type fakeEngine struct {
	lastSrc   string
	lastBinds script.Bindings
	execErr   error
	vars      map[string]string
}

func (e *fakeEngine) Name() string { return "fake" }
func (e *fakeEngine) Exec(_ context.Context, src string, binds script.Bindings) (script.Scope, error) {
	e.lastSrc, e.lastBinds = src, binds
	if e.execErr != nil {
		return nil, e.execErr
	}
	return &fakeScope{vars: e.vars}, nil
}

func TestScriptClient_TransformOK(t *testing.T) {
	eng := &fakeEngine{vars: map[string]string{"output": "HELLO"}}
	c := NewScriptClient("upper", harness.New(eng, "prelude"), "code", "")

	resp, err := c.Transform(context.Background(), &pb.TransformRequest{
		Payload:      []byte("hello"),
		SourceOffset: "t[0]@7",
	})
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if resp.Status != pb.Status_OK {
		t.Fatalf("want OK, got %v (%s)", resp.Status, resp.Error)
	}
	if resp.Output != "HELLO" {
		t.Fatalf("want output HELLO, got %q", resp.Output)
	}
	if len(resp.Events) != 1 || string(resp.Events[0].Value) != "HELLO" {
		t.Fatalf("unexpected events: %+v", resp.Events)
	}
	if resp.Events[0].Id != "t[0]@7" {
		t.Fatalf("event id should carry the source offset, got %q", resp.Events[0].Id)
	}
	if eng.lastBinds[InputVar] != "hello" {
		t.Fatalf("payload not bound as %s: %v", InputVar, eng.lastBinds)
	}
}

func TestScriptClient_ExecutionFailureMapsToError(t *testing.T) {
	eng := &fakeEngine{execErr: errors.New("boom")}
	c := NewScriptClient("upper", harness.New(eng, "prelude"), "code", "")

	resp, err := c.Transform(context.Background(), &pb.TransformRequest{Payload: []byte("x")})
	if err != nil {
		t.Fatalf("Transform should not fail the RPC: %v", err)
	}
	if resp.Status != pb.Status_ERROR {
		t.Fatalf("want ERROR, got %v", resp.Status)
	}
	if !strings.Contains(resp.Error, "boom") {
		t.Fatalf("error text lost: %q", resp.Error)
	}
}

func TestScriptClient_MissingOutputMapsToError(t *testing.T) {
	eng := &fakeEngine{vars: map[string]string{}}
	c := NewScriptClient("upper", harness.New(eng, "prelude"), "code", "")

	resp, err := c.Transform(context.Background(), &pb.TransformRequest{Payload: []byte("x")})
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if resp.Status != pb.Status_ERROR {
		t.Fatalf("want ERROR for missing output, got %v", resp.Status)
	}
	if !strings.Contains(resp.Error, "output") {
		t.Fatalf("error should name the missing variable: %q", resp.Error)
	}
}

func TestScriptClient_CustomCodeOverridesStageCode(t *testing.T) {
	eng := &fakeEngine{vars: map[string]string{"output": "v"}}
	c := NewScriptClient("upper", harness.New(eng, "prelude"), "stage-code", "")

	_, err := c.Transform(context.Background(), &pb.TransformRequest{
		Payload:    []byte("x"),
		CustomCode: "request-code",
	})
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if !strings.Contains(eng.lastSrc, "request-code") || strings.Contains(eng.lastSrc, "stage-code") {
		t.Fatalf("custom code should replace stage code, ran: %q", eng.lastSrc)
	}
	if !strings.HasPrefix(eng.lastSrc, "prelude\n") {
		t.Fatalf("prelude must come first: %q", eng.lastSrc)
	}
}

func TestScriptClient_MetadataReportsEngine(t *testing.T) {
	eng := &fakeEngine{}
	c := NewScriptClient("upper", harness.New(eng, ""), "code", "")

	md, err := c.Metadata(context.Background())
	if err != nil {
		t.Fatalf("Metadata: %v", err)
	}
	if md.Name != "upper" || md.Engine != "fake" {
		t.Fatalf("unexpected metadata: %+v", md)
	}
}
