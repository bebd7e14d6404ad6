package lambda

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/solsticeweb/blog-api/internal/telemetry"
	"github.com/solsticeweb/blog-api/pkg/aws"
)

// APIGatewayHandler is a function that handles API Gateway proxy events,
// suitable to use as a lambda handler.
type APIGatewayHandler func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// APIGatewayHandlerBuilder is a function that creates an APIGatewayHandler
// from a config.
type APIGatewayHandlerBuilder func(aws.Config) (APIGatewayHandler, error)

// StartAPIGatewayHandler starts a lambda handler that processes API Gateway
// proxy events.
func StartAPIGatewayHandler(makeHandler APIGatewayHandlerBuilder) {
	ctx := context.Background()
	cfg := aws.FromEnv(ctx)
	telemetry.SetupErrorReporting(cfg.SentryDSN, cfg.SentryEnvironment)

	handler, err := makeHandler(cfg)
	if err != nil {
		telemetry.ReportError(err)
		panic(err)
	}

	lambda.StartWithOptions(instrumentAPIGatewayHandler(handler), lambda.WithContext(ctx))
}

// instrumentAPIGatewayHandler wraps an APIGatewayHandler with error reporting.
func instrumentAPIGatewayHandler(handler APIGatewayHandler) APIGatewayHandler {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		res, err := handler(ctx, req)
		if err != nil {
			telemetry.ReportError(err)
		}

		return res, err
	}
}
