package invoke

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awslambda "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

// LambdaInvoker invokes a downstream AWS Lambda function with a synchronous
// RequestResponse call.
type LambdaInvoker struct {
	client *awslambda.Client
}

// NewLambdaInvoker creates a Lambda-backed invoker.
func NewLambdaInvoker(ctx context.Context, region string) (*LambdaInvoker, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &LambdaInvoker{client: awslambda.NewFromConfig(awsCfg)}, nil
}

// NewLambdaInvokerWithClient creates an invoker from an existing client.
func NewLambdaInvokerWithClient(client *awslambda.Client) *LambdaInvoker {
	return &LambdaInvoker{client: client}
}

// Invoke implements FunctionInvoker.Invoke
func (l *LambdaInvoker) Invoke(ctx context.Context, functionRef string, payload *Payload) (*Result, error) {
	if functionRef == "" {
		return nil, fmt.Errorf("%w: empty function reference", ErrFunctionUnavailable)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	out, err := l.client.Invoke(ctx, &awslambda.InvokeInput{
		FunctionName:   &functionRef,
		InvocationType: types.InvocationTypeRequestResponse,
		Payload:        body,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrFunctionUnavailable, err)
	}

	// A non-nil FunctionError means the function ran but failed; its
	// payload is an error document, not a response.
	if out.FunctionError != nil {
		return nil, fmt.Errorf("%w: function error %s", ErrFunctionUnavailable, *out.FunctionError)
	}

	var result Result
	if err := json.Unmarshal(out.Payload, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if result.StatusCode == 0 {
		return nil, fmt.Errorf("%w: missing statusCode", ErrMalformedResponse)
	}

	return &result, nil
}
