package transport

import (
	"context"
	"testing"

	pb "morph/api/proto/v1"
)

type fakeTransformer struct {
	lastReq *pb.TransformRequest
}

func (f *fakeTransformer) Metadata(context.Context) (*pb.MetadataResponse, error) {
	return &pb.MetadataResponse{Name: "fake", Engine: "none"}, nil
}
func (f *fakeTransformer) Health(context.Context) (*pb.HealthResponse, error) {
	return &pb.HealthResponse{Ok: true}, nil
}
func (f *fakeTransformer) Transform(_ context.Context, req *pb.TransformRequest) (*pb.TransformResponse, error) {
	f.lastReq = req
	return &pb.TransformResponse{Status: pb.Status_OK, Output: string(req.Payload)}, nil
}

func TestService_ForwardsToTransformer(t *testing.T) {
	impl := &fakeTransformer{}
	svc := NewService(impl)

	md, err := svc.Metadata(context.Background(), &pb.MetadataRequest{})
	if err != nil || md.Name != "fake" {
		t.Fatalf("Metadata: %v %+v", err, md)
	}

	hc, err := svc.Health(context.Background(), &pb.HealthRequest{})
	if err != nil || !hc.Ok {
		t.Fatalf("Health: %v %+v", err, hc)
	}

	resp, err := svc.Transform(context.Background(), &pb.TransformRequest{
		Payload:    []byte("hi"),
		CustomCode: "output := input",
	})
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if resp.Output != "hi" {
		t.Fatalf("want output hi, got %q", resp.Output)
	}
	if impl.lastReq.CustomCode != "output := input" {
		t.Fatal("custom code not forwarded")
	}
}
