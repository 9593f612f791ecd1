package main

import (
	"context"

	"maintenance-gateway/internal/config"
	"maintenance-gateway/internal/gateway"
	"maintenance-gateway/pkg/server"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
)

var container *server.Container

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	container, err = server.NewContainer(context.Background(), cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func handler(ctx context.Context, event events.ALBTargetGroupRequest) (events.ALBTargetGroupResponse, error) {
	req := gateway.FromALBEvent(ctx, event)
	resp := container.Dispatcher.Handle(ctx, req)

	// The error is always nil: a handler error would surface as a 502 from
	// the balancer without the statusDescription contract.
	return resp.ToALBResponse(), nil
}

func main() {
	awslambda.Start(handler)
}
