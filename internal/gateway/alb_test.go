package gateway

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
)

func TestFromALBEvent(t *testing.T) {
	event := events.ALBTargetGroupRequest{
		HTTPMethod: "POST",
		Path:       "/orders",
		Headers: map[string]string{
			"User-Agent":      "curl/8.0",
			"Host":            "example.com",
			"X-Forwarded-For": "203.0.113.9, 10.0.0.2",
		},
		QueryStringParameters: map[string]string{"q": "1"},
		Body:                  "payload",
	}

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{
		AwsRequestID: "req-42",
	})

	req := FromALBEvent(ctx, event)

	if req.Method != "POST" {
		t.Errorf("Method = %q, want %q", req.Method, "POST")
	}
	if req.Path != "/orders" {
		t.Errorf("Path = %q, want %q", req.Path, "/orders")
	}
	if req.RequestID != "req-42" {
		t.Errorf("RequestID = %q, want %q", req.RequestID, "req-42")
	}
	if req.SourceIP != "203.0.113.9" {
		t.Errorf("SourceIP = %q, want first forwarded hop", req.SourceIP)
	}
	if req.Body != "payload" {
		t.Errorf("Body = %q, want %q", req.Body, "payload")
	}

	// Header keys are normalized; lookup is case-insensitive either way.
	if got := req.Header("user-agent"); got != "curl/8.0" {
		t.Errorf("Header(user-agent) = %q, want %q", got, "curl/8.0")
	}
	if got := req.Header("Host"); got != "example.com" {
		t.Errorf("Header(Host) = %q, want %q", got, "example.com")
	}
}

func TestFromALBEvent_MissingFields(t *testing.T) {
	req := FromALBEvent(context.Background(), events.ALBTargetGroupRequest{})

	if req.Path != "/" {
		t.Errorf("Path = %q, want %q", req.Path, "/")
	}
	if req.Method != "GET" {
		t.Errorf("Method = %q, want %q", req.Method, "GET")
	}
	if req.RequestID != "" {
		t.Errorf("RequestID = %q, want empty without a Lambda context", req.RequestID)
	}
	if req.SourceIP != "" {
		t.Errorf("SourceIP = %q, want empty without forwarding headers", req.SourceIP)
	}
	if got := req.Header("user-agent"); got != "" {
		t.Errorf("Header(user-agent) = %q, want empty", got)
	}
}

func TestToALBResponse(t *testing.T) {
	resp := Response{
		StatusCode:        503,
		StatusDescription: "503 Service Unavailable",
		Headers:           map[string]string{"Retry-After": "3600"},
		Body:              "<html></html>",
	}

	alb := resp.ToALBResponse()

	if alb.StatusCode != 503 {
		t.Errorf("StatusCode = %d, want 503", alb.StatusCode)
	}
	if alb.StatusDescription != "503 Service Unavailable" {
		t.Errorf("StatusDescription = %q", alb.StatusDescription)
	}
	if alb.Headers["Retry-After"] != "3600" {
		t.Errorf("Retry-After = %q, want 3600", alb.Headers["Retry-After"])
	}
	if alb.Body != "<html></html>" {
		t.Errorf("Body = %q", alb.Body)
	}
	if alb.IsBase64Encoded {
		t.Error("IsBase64Encoded should be false")
	}
}

func TestToALBResponse_NilHeaders(t *testing.T) {
	alb := Response{StatusCode: 200, StatusDescription: "200 OK"}.ToALBResponse()
	if alb.Headers == nil {
		t.Error("Headers must never be nil in the ALB response")
	}
}
