package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"items-api/internal/config"
	"items-api/pkg/httpevent"
	"items-api/pkg/server"
)

var container *server.Container

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	container, err = server.NewContainer(context.Background(), cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

// handler accepts both API Gateway payload shapes: the Lambda runtime decodes
// the raw event JSON directly into the trigger-agnostic httpevent.Event, and
// the router resolves method, path and id through the documented fallbacks.
func handler(ctx context.Context, event *httpevent.Event) (events.APIGatewayProxyResponse, error) {
	resp := container.Router.Handle(ctx, event)

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}, nil
}

func main() {
	awslambda.Start(handler)
}
