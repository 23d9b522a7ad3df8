package transform

import (
	"context"

	pb "morph/api/proto/v1"
	"morph/internal/harness"
	"morph/script"
)

// InputVar is the variable a script stage binds the frame payload to.
const InputVar = "input"

// ScriptClient runs a fixed custom-code snippet through the harness for
// every frame. Each Transform call executes in its own scope; the client
// carries no state between frames.
type ScriptClient struct {
	name      string
	h         *harness.Harness
	code      string
	outputVar string
}

func NewScriptClient(name string, h *harness.Harness, code, outputVar string) *ScriptClient {
	if outputVar == "" {
		outputVar = harness.OutputVar
	}
	return &ScriptClient{name: name, h: h, code: code, outputVar: outputVar}
}

func (c *ScriptClient) Metadata(ctx context.Context) (*pb.MetadataResponse, error) {
	return &pb.MetadataResponse{
		Name:    c.name,
		Version: "0.1.0",
		Engine:  c.h.Engine().Name(),
	}, nil
}

func (c *ScriptClient) Health(ctx context.Context) (*pb.HealthResponse, error) {
	return &pb.HealthResponse{Ok: true, Details: "OK"}, nil
}

// Transform binds the request payload as input, runs the stage's snippet
// (or, when set, the per-request custom code) after the prelude, and turns
// the extracted output into a single event. Harness failures map to
// Status_ERROR with the failure kind preserved in the error text.
func (c *ScriptClient) Transform(ctx context.Context, req *pb.TransformRequest) (*pb.TransformResponse, error) {
	code := req.GetCustomCode()
	if code == "" {
		code = c.code
	}

	out, err := c.h.Run(ctx, harness.Request{
		Code:     code,
		Bindings: script.Bindings{InputVar: string(req.GetPayload())},
		Output:   c.outputVar,
	})
	if err != nil {
		// both failure kinds (execution, missing output) terminate the frame
		return &pb.TransformResponse{Status: pb.Status_ERROR, Error: err.Error()}, nil
	}

	return &pb.TransformResponse{
		Status: pb.Status_OK,
		Output: out,
		Events: []*pb.Event{{Id: req.GetSourceOffset(), Value: []byte(out)}},
	}, nil
}

func (c *ScriptClient) Close() error { return nil }
