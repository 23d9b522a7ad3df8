package transform

// Client wraps a transformer stage (gRPC plugin or in-process harness) and
// exposes a uniform API so the runner can swap implementations.
import (
	"context"

	pb "morph/api/proto/v1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type Client interface {
	Metadata(ctx context.Context) (*pb.MetadataResponse, error)
	Health(ctx context.Context) (*pb.HealthResponse, error)
	Transform(ctx context.Context, req *pb.TransformRequest) (*pb.TransformResponse, error)
	Close() error
}

// GRPCClient dials a plugin over gRPC.
type GRPCClient struct {
	conn *grpc.ClientConn
	svc  pb.TransformServiceClient
}

func NewGRPCClient(ctx context.Context, target string, opts ...grpc.DialOption) (*GRPCClient, error) {
	if len(opts) == 0 {
		opts = append(opts, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}
	conn, err := grpc.DialContext(ctx, target, opts...)
	if err != nil {
		return nil, err
	}
	return &GRPCClient{
		conn: conn,
		svc:  pb.NewTransformServiceClient(conn),
	}, nil
}

func (c *GRPCClient) Metadata(ctx context.Context) (*pb.MetadataResponse, error) {
	return c.svc.Metadata(ctx, &pb.MetadataRequest{})
}
func (c *GRPCClient) Health(ctx context.Context) (*pb.HealthResponse, error) {
	return c.svc.Health(ctx, &pb.HealthRequest{})
}
func (c *GRPCClient) Transform(ctx context.Context, req *pb.TransformRequest) (*pb.TransformResponse, error) {
	return c.svc.Transform(ctx, req)
}
func (c *GRPCClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// InProcessClient adapts a transformer compiled into the engine.
type InProcessClient struct {
	impl Transformer
}

type Transformer interface {
	Metadata(context.Context) (*pb.MetadataResponse, error)
	Health(context.Context) (*pb.HealthResponse, error)
	Transform(context.Context, *pb.TransformRequest) (*pb.TransformResponse, error)
}

func NewInProcessClient(impl Transformer) *InProcessClient { return &InProcessClient{impl: impl} }
func (c *InProcessClient) Metadata(ctx context.Context) (*pb.MetadataResponse, error) {
	return c.impl.Metadata(ctx)
}
func (c *InProcessClient) Health(ctx context.Context) (*pb.HealthResponse, error) {
	return c.impl.Health(ctx)
}
func (c *InProcessClient) Transform(ctx context.Context, req *pb.TransformRequest) (*pb.TransformResponse, error) {
	return c.impl.Transform(ctx, req)
}
func (c *InProcessClient) Close() error { return nil }
