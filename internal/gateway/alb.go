package gateway

import (
	"context"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
)

// FromALBEvent builds a gateway Request from an ALB target-group event and
// the Lambda invocation context. Missing optional fields become empty
// strings; header keys are normalized to lower case.
func FromALBEvent(ctx context.Context, event events.ALBTargetGroupRequest) *Request {
	headers := make(map[string]string, len(event.Headers))
	for k, v := range event.Headers {
		headers[lowerASCII(k)] = v
	}

	req := &Request{
		Method:          event.HTTPMethod,
		Path:            event.Path,
		Headers:         headers,
		QueryParams:     event.QueryStringParameters,
		Body:            event.Body,
		SourceIP:        clientIP(headers),
		FunctionName:    lambdacontext.FunctionName,
		FunctionVersion: lambdacontext.FunctionVersion,
		MemoryLimitInMB: int32(lambdacontext.MemoryLimitInMB),
	}
	if req.Path == "" {
		req.Path = "/"
	}
	if req.Method == "" {
		req.Method = "GET"
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		req.RequestID = lc.AwsRequestID
	}

	return req
}

// ToALBResponse converts a gateway Response into the ALB target-group
// response shape.
func (r Response) ToALBResponse() events.ALBTargetGroupResponse {
	headers := r.Headers
	if headers == nil {
		headers = map[string]string{}
	}
	return events.ALBTargetGroupResponse{
		StatusCode:        r.StatusCode,
		StatusDescription: r.StatusDescription,
		Headers:           headers,
		Body:              r.Body,
		IsBase64Encoded:   r.IsBase64Encoded,
	}
}

// clientIP extracts the originating client address from the forwarding
// chain. The balancer appends its own hop, so the first entry is the
// client.
func clientIP(headers map[string]string) string {
	forwarded := headers["x-forwarded-for"]
	if forwarded == "" {
		return ""
	}
	if i := strings.IndexByte(forwarded, ','); i >= 0 {
		forwarded = forwarded[:i]
	}
	return strings.TrimSpace(forwarded)
}
