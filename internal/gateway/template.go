package gateway

import (
	"regexp"
	"time"
)

// tokenPattern matches {{NAME}} placeholders. Tokens whose name is not in
// the recognized set are left untouched.
var tokenPattern = regexp.MustCompile(`\{\{([A-Z_]+)\}\}`)

// TemplateValues holds the substitution sources for a maintenance page.
// Absent sources substitute the empty string.
type TemplateValues struct {
	RequestID    string
	Timestamp    string
	Path         string
	Method       string
	SourceIP     string
	UserAgent    string
	Host         string
	FunctionName string
}

// NewTemplateValues extracts substitution values from a request. The
// timestamp is wall-clock UTC in RFC 3339 format.
func NewTemplateValues(req *Request) TemplateValues {
	return TemplateValues{
		RequestID:    req.RequestID,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Path:         req.Path,
		Method:       req.Method,
		SourceIP:     req.SourceIP,
		UserAgent:    req.Header("user-agent"),
		Host:         req.Header("host"),
		FunctionName: req.FunctionName,
	}
}

func (v TemplateValues) lookup(name string) (string, bool) {
	switch name {
	case "REQUEST_ID":
		return v.RequestID, true
	case "TIMESTAMP":
		return v.Timestamp, true
	case "PATH":
		return v.Path, true
	case "METHOD":
		return v.Method, true
	case "SOURCE_IP":
		return v.SourceIP, true
	case "USER_AGENT":
		return v.UserAgent, true
	case "HOST":
		return v.Host, true
	case "FUNCTION_NAME":
		return v.FunctionName, true
	}
	return "", false
}

// RenderPage replaces recognized {{NAME}} tokens in doc with the given
// values in a single pass. Resolved text no longer matches the token
// pattern, so rendering already-rendered output is a no-op.
func RenderPage(doc string, values TemplateValues) string {
	return tokenPattern.ReplaceAllStringFunc(doc, func(token string) string {
		name := token[2 : len(token)-2]
		if value, ok := values.lookup(name); ok {
			return value
		}
		return token
	})
}
