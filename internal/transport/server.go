package transport

import (
	"context"
	"fmt"
	"net"

	pb "morph/api/proto/v1"
	"morph/internal/transform"

	"google.golang.org/grpc"
)

type Server struct {
	grpc *grpc.Server
	lis  net.Listener
}

// StartServer listens on port and serves svc as morph.v1.TransformService.
// A nil svc registers the unimplemented stub so the port still answers.
func StartServer(port int, svc pb.TransformServiceServer) (*Server, error) {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, err
	}
	s := &Server{
		grpc: grpc.NewServer(),
		lis:  lis,
	}
	if svc == nil {
		svc = pb.UnimplementedTransformServiceServer{}
	}
	pb.RegisterTransformServiceServer(s.grpc, svc)
	return s, nil
}

func (s *Server) Serve() error {
	return s.grpc.Serve(s.lis)
}
func (s *Server) Stop() {
	s.grpc.GracefulStop()
}

// Service adapts an in-process transformer to the gRPC server interface,
// letting remote callers submit custom code against the engine's harness.
type Service struct {
	pb.UnimplementedTransformServiceServer
	impl transform.Transformer
}

func NewService(impl transform.Transformer) *Service { return &Service{impl: impl} }

func (s *Service) Metadata(ctx context.Context, _ *pb.MetadataRequest) (*pb.MetadataResponse, error) {
	return s.impl.Metadata(ctx)
}

func (s *Service) Health(ctx context.Context, _ *pb.HealthRequest) (*pb.HealthResponse, error) {
	return s.impl.Health(ctx)
}

func (s *Service) Transform(ctx context.Context, req *pb.TransformRequest) (*pb.TransformResponse, error) {
	return s.impl.Transform(ctx, req)
}
