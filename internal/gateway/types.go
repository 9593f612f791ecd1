package gateway

// Request is the gateway's view of an inbound load-balancer request.
// Header keys are normalized to lower case on ingest so lookups don't
// depend on what the balancer happened to send.
type Request struct {
	Method       string            `json:"method"`
	Path         string            `json:"path"`
	Headers      map[string]string `json:"headers"`
	QueryParams  map[string]string `json:"query_params"`
	Body         string            `json:"body"`
	SourceIP     string            `json:"source_ip"`

	// Supplied by the invoking runtime; empty when unavailable.
	RequestID       string `json:"request_id"`
	FunctionName    string `json:"function_name"`
	FunctionVersion string `json:"function_version"`
	MemoryLimitInMB int32  `json:"memory_limit_in_mb"`
}

// Header returns the named header value, or the empty string when absent.
// Lookup is case-insensitive.
func (r *Request) Header(name string) string {
	if r.Headers == nil {
		return ""
	}
	if v, ok := r.Headers[name]; ok {
		return v
	}
	return r.Headers[lowerASCII(name)]
}

// Response is the gateway's response in the shape the ALB target-group
// integration requires. StatusDescription is mandatory; ALB rejects
// responses without it.
type Response struct {
	StatusCode        int               `json:"statusCode"`
	StatusDescription string            `json:"statusDescription"`
	Headers           map[string]string `json:"headers"`
	Body              string            `json:"body"`
	IsBase64Encoded   bool              `json:"isBase64Encoded"`
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
