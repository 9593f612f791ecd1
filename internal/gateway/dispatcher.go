package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"maintenance-gateway/internal/adapters/storage"
	"maintenance-gateway/internal/config"
	"maintenance-gateway/internal/invoke"

	"github.com/sirupsen/logrus"
)

// Fixed response bodies. Tests and the load balancer health checks compare
// against these verbatim.
const (
	NormalBody        = `{"message":"Service is operational"}`
	UpstreamErrorBody = `{"error":"Upstream function unavailable"}`
	InternalErrorBody = `{"error":"Internal server error"}`
)

// Dispatcher turns an inbound request into a response. Precedence:
// special-path delegation, then maintenance mode, then normal operation.
// Handle never returns an error and never panics; every failure path
// terminates in a well-formed response.
type Dispatcher struct {
	cfg     config.Config
	store   storage.PageStore
	invoker invoke.FunctionInvoker
	log     *logrus.Entry
}

// NewDispatcher creates a dispatcher. The config is captured by value;
// changing the environment after process start has no effect.
func NewDispatcher(cfg config.Config, store storage.PageStore, invoker invoke.FunctionInvoker, log *logrus.Entry) *Dispatcher {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Dispatcher{
		cfg:     cfg,
		store:   store,
		invoker: invoker,
		log:     log,
	}
}

// Handle evaluates the request against the configured branches.
func (d *Dispatcher) Handle(ctx context.Context, req *Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			d.log.WithField("panic", r).Error("Recovered from panic in dispatcher")
			resp = errorResponse(http.StatusInternalServerError, InternalErrorBody)
		}
	}()

	log := d.log.WithFields(logrus.Fields{
		"request_id": req.RequestID,
		"method":     req.Method,
		"path":       req.Path,
	})

	if d.cfg.SpecialRoutingEnabled() && strings.HasPrefix(req.Path, d.cfg.Special.PathPrefix) {
		return d.delegate(ctx, req, log)
	}

	if d.cfg.Maintenance.Enabled {
		return d.maintenancePage(ctx, req, log)
	}

	log.Debug("Serving normal operation response")
	return Response{
		StatusCode:        http.StatusOK,
		StatusDescription: statusDescription(http.StatusOK),
		Headers:           map[string]string{"Content-Type": "application/json"},
		Body:              NormalBody,
	}
}

// delegate forwards the request to the configured downstream function and
// relays its response. Any failure yields a 502; this branch never falls
// through to maintenance or normal handling.
func (d *Dispatcher) delegate(ctx context.Context, req *Request, log *logrus.Entry) Response {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.Special.Timeout)
	defer cancel()

	payload := &invoke.Payload{
		Event: req,
		Context: invoke.FunctionContext{
			FunctionName:    req.FunctionName,
			FunctionVersion: req.FunctionVersion,
			RequestID:       req.RequestID,
			MemoryLimitInMB: req.MemoryLimitInMB,
		},
	}

	result, err := d.invoker.Invoke(ctx, d.cfg.Special.FunctionARN, payload)
	if err != nil {
		log.WithError(err).Warn("Downstream invocation failed")
		return errorResponse(http.StatusBadGateway, UpstreamErrorBody)
	}

	log.WithField("status", result.StatusCode).Info("Relaying downstream response")

	resp := Response{
		StatusCode:        result.StatusCode,
		StatusDescription: result.StatusDescription,
		Headers:           result.Headers,
		Body:              result.Body,
		IsBase64Encoded:   result.IsBase64Encoded,
	}
	if resp.StatusDescription == "" {
		resp.StatusDescription = statusDescription(resp.StatusCode)
	}
	if resp.Headers == nil {
		resp.Headers = map[string]string{}
	}
	return resp
}

// maintenancePage serves the configured maintenance document, degrading to
// the compiled-in fallback page when the fetch fails.
func (d *Dispatcher) maintenancePage(ctx context.Context, req *Request, log *logrus.Entry) Response {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.Storage.Timeout)
	defer cancel()

	doc := fallbackPage
	data, err := d.store.Retrieve(ctx, d.cfg.Storage.Key)
	if err != nil {
		log.WithError(err).WithField("key", d.cfg.Storage.Key).Warn("Maintenance page fetch failed, serving fallback")
	} else {
		doc = string(data)
	}

	headers := map[string]string{
		"Content-Type": "text/html; charset=utf-8",
	}
	if d.cfg.Maintenance.RetryAfter > 0 {
		headers["Retry-After"] = strconv.Itoa(d.cfg.Maintenance.RetryAfter)
	}

	return Response{
		StatusCode:        http.StatusServiceUnavailable,
		StatusDescription: statusDescription(http.StatusServiceUnavailable),
		Headers:           headers,
		Body:              RenderPage(doc, NewTemplateValues(req)),
	}
}

func errorResponse(code int, body string) Response {
	return Response{
		StatusCode:        code,
		StatusDescription: statusDescription(code),
		Headers:           map[string]string{"Content-Type": "application/json"},
		Body:              body,
	}
}

func statusDescription(code int) string {
	return fmt.Sprintf("%d %s", code, http.StatusText(code))
}
