package transport

import (
	"fmt"

	pb "morph/api/proto/v1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func Dial(port int) (pb.TransformServiceClient, error) {
	cc, err := grpc.Dial(fmt.Sprintf("localhost:%d", port),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return pb.NewTransformServiceClient(cc), nil
}
